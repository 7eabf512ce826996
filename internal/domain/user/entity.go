package user

// Profile is an out-of-band imported user record, joined to check-ins by
// email for reporting only. Email is the upsert key; everything else is
// best-effort enrichment.
type Profile struct {
	ID          int64
	Name        string
	Email       string
	City        string
	JobTitle    string
	CompanyName string
}
