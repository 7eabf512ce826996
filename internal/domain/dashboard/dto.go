package dashboard

// StatsResponse is the aggregate returned by GET /api/dashboard for the
// current calendar day.
type StatsResponse struct {
	WFHCount      int64             `json:"wfh_count"`
	TotalUsers    int64             `json:"total_users"`
	WFHPercentage int               `json:"wfh_percentage"`
	GroupBy       string            `json:"group_by"`
	Breakdown     []BreakdownItem   `json:"breakdown"`
	TimeBuckets   []TimeBucketCount `json:"time_buckets"`
}

// BreakdownItem is one group of distinct WFH users, labelled by the joined
// profile attribute or "Unknown" when no profile matched.
type BreakdownItem struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// TimeBucketCount is the number of check-ins (any status) inside one
// 15-minute bucket, labelled by bucket start time "HH:MM".
type TimeBucketCount struct {
	Bucket string `json:"bucket"`
	Count  int64  `json:"count"`
}
