package checkin

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		text   string
		want   Status
		wantOK bool
	}{
		{"wfh today", StatusWFH, true},
		{"WFH", StatusWFH, true},
		{"Working From Home today", StatusWFH, true},
		{"I'm in office", StatusOffice, true},
		{"at the OFFICE until 6", StatusOffice, true},
		{"on leave today", "", false},
		{"", "", false},
		// Substring matching is intentional: "wfhing" still counts.
		{"wfhing it today", StatusWFH, true},
		// First-match-wins tie-break: both keyword sets present classifies WFH.
		{"leaving the office early, wfh after lunch", StatusWFH, true},
		{"wfh then heading to the office", StatusWFH, true},
	}
	for _, c := range cases {
		got, ok := Classify(c.text)
		if got != c.want || ok != c.wantOK {
			t.Errorf("Classify(%q) = (%q, %v), want (%q, %v)", c.text, got, ok, c.want, c.wantOK)
		}
	}
}
