package response_models

type PlanItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DayOfWeek   int    `json:"day_of_week"`
	StartTime   string `json:"start_time"` // "HH:MM"
	EndTime     string `json:"end_time"`   // "HH:MM"
	IsCompleted bool   `json:"is_completed"`
}

type PlanListResponse struct {
	Plans []PlanItem `json:"plans"`
	Count int        `json:"count"`
}

// PlanMutationResponse mirrors the write-path payloads: exactly one of the
// counters is meaningful per operation.
type PlanMutationResponse struct {
	Created int    `json:"created,omitempty"`
	Updated int    `json:"updated,omitempty"`
	Deleted int    `json:"deleted,omitempty"`
	ID      string `json:"id,omitempty"`
}

type RecentPlanItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	IsCompleted bool   `json:"is_completed"`
	UpdatedAt   int64  `json:"updated_at"`
	DisplayDate string `json:"display_date"`
}

type RecentPlansResponse struct {
	RecentPlans []RecentPlanItem `json:"recent_plans"`
}

type CompletedCountResponse struct {
	CompletedCount int64 `json:"completed_count"`
}

// CompletedByWeekdayResponse holds seven buckets; index i counts completed
// plans with day_of_week i+1.
type CompletedByWeekdayResponse struct {
	CompletedByWeekday []int64 `json:"completed_by_weekday"`
}
