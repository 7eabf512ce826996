package checkin

import "time"

// Status is the classified work location for one check-in.
type Status string

const (
	StatusWFH    Status = "WFH"
	StatusOffice Status = "Office"
)

// UnknownUserID is the placeholder stored when the webhook payload carries
// no subject-user identifier. Records with this id are exempt from the
// one-checkin-per-user-per-day cap.
const UnknownUserID = "unknown"

// Checkin is one stored record of a person's reported work location.
type Checkin struct {
	ID        int64
	UserID    string
	UserName  string
	UserEmail *string
	Status    Status
	Timestamp time.Time
	MessageID string
}

// Outcome reports what the store did with a Record request.
type Outcome string

const (
	// OutcomeRecorded means a row was inserted or replaced.
	OutcomeRecorded Outcome = "recorded"
	// OutcomeSuppressed means the per-user-per-day cap dropped the write.
	OutcomeSuppressed Outcome = "suppressed"
)
