package checkin

import "context"

// Store owns the dedup/upsert policy for check-in writes.
type Store interface {
	// Record applies the write policy:
	//  1. a known (non-placeholder) user who already has a check-in on the
	//     calendar day of c.Timestamp is suppressed; no write, no update;
	//  2. otherwise the row is upserted by messageid, a redelivered message
	//     replacing the earlier row's fields wholesale.
	// The outcome is OutcomeRecorded for an insert or replace,
	// OutcomeSuppressed only for the per-day cap.
	Record(ctx context.Context, c Checkin) (Outcome, error)

	// ListToday returns all check-ins on the current calendar day in the
	// configured zone, newest first.
	ListToday(ctx context.Context) ([]Checkin, error)
}

// IngestResult tallies one webhook delivery.
type IngestResult struct {
	// Processed counts messages whose write outcome was OutcomeRecorded.
	Processed int
	// Seen collects the raw content of every normalized message, used in
	// the diagnostic response when nothing was recorded.
	Seen []string
}

// Ingest turns a raw webhook body into check-in writes.
type Ingest interface {
	// ProcessWebhook normalizes the payload, classifies each message and
	// records the classified ones. Messages are processed sequentially;
	// a storage failure on one message does not stop the rest, but the
	// first such error is returned alongside the partial tally.
	ProcessWebhook(ctx context.Context, body []byte) (IngestResult, error)
}
