package http

import (
	"html/template"
	"net/http"
	"time"

	"github.com/burningpaper/workfromhome/internal/domain/checkin"
)

type ReportHandler interface {
	Today(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	store checkin.Store
	loc   *time.Location
}

func NewReportHandler(store checkin.Store, loc *time.Location) ReportHandler {
	return &reportHandlerImpl{store: store, loc: loc}
}

var reportTemplate = template.Must(template.New("report").Parse(
	`<h1>WFH Beacon Report (Today)</h1><ul>{{range .}}<li><strong>{{.Name}}</strong>{{if .Email}} ({{.Email}}){{end}}: {{.Status}} (at {{.Time}})</li>{{end}}</ul>`,
))

type reportRow struct {
	Name   string
	Email  string
	Status checkin.Status
	Time   string
}

// Today handles GET /: a minimal HTML list of today's check-ins.
func (h *reportHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	checkins, err := h.store.ListToday(r.Context())
	if err != nil {
		http.Error(w, "Error generating report: "+err.Error(), http.StatusInternalServerError)
		return
	}

	rows := make([]reportRow, 0, len(checkins))
	for _, c := range checkins {
		row := reportRow{
			Name:   c.UserName,
			Status: c.Status,
			Time:   c.Timestamp.In(h.loc).Format("15:04:05"),
		}
		if c.UserEmail != nil {
			row.Email = *c.UserEmail
		}
		rows = append(rows, row)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := reportTemplate.Execute(w, rows); err != nil {
		http.Error(w, "Error generating report: "+err.Error(), http.StatusInternalServerError)
	}
}
