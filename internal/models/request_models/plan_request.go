package request_models

// PlanUpsertRequest drives the single create-or-update endpoint. A non-empty
// ID selects the partial-update path; every mutable column gets its own
// optional slot so "no fields set" is a checkable state rather than an
// empty dictionary.
type PlanUpsertRequest struct {
	ID          string  `json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DayOfWeek   *int    `json:"day_of_week"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	IsCompleted *bool   `json:"is_completed"`
}

// HasUpdates reports whether any mutable field besides the ID is present.
func (r PlanUpsertRequest) HasUpdates() bool {
	return r.Title != nil || r.Description != nil || r.DayOfWeek != nil ||
		r.StartTime != nil || r.EndTime != nil || r.IsCompleted != nil
}

// PlanBulkItem is one entry of a bulk-create payload. Zero values mark
// missing fields; items failing validation are skipped, not rejected.
type PlanBulkItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DayOfWeek   int    `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

type PlanBulkRequest struct {
	Plans []PlanBulkItem `json:"plans"`
}
