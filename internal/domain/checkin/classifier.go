package checkin

import "strings"

// Keyword sets checked by Classify, in priority order.
var (
	wfhKeywords    = []string{"wfh", "working from home"}
	officeKeywords = []string{"office", "in office"}
)

// Classify maps free-text message content to a Status by substring match.
// WFH keywords are checked before Office keywords, so a message containing
// both ("leaving the office, wfh after lunch") classifies as WFH. That
// first-match-wins behavior is deliberate and relied on by operators.
// Returns ok=false when no keyword matches; such messages are not stored.
func Classify(text string) (Status, bool) {
	content := strings.ToLower(text)
	for _, kw := range wfhKeywords {
		if strings.Contains(content, kw) {
			return StatusWFH, true
		}
	}
	for _, kw := range officeKeywords {
		if strings.Contains(content, kw) {
			return StatusOffice, true
		}
	}
	return "", false
}
