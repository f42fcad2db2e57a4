package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"weekplan/internal/models/db_models"
	"weekplan/internal/models/request_models"
	"weekplan/internal/models/response_models"
	"weekplan/internal/repositories"
	"weekplan/pkg/utils"
)

// UserDirectory is the only thing the plan service needs to know about the
// account subsystem: whether a user id resolves to a real user.
type UserDirectory interface {
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type PlanServiceInterface interface {
	CreateOrUpdatePlan(ctx context.Context, userID string, req request_models.PlanUpsertRequest) (*response_models.PlanMutationResponse, error)
	ListPlans(ctx context.Context, userID string, dayOfWeek *int) (*response_models.PlanListResponse, error)
	DeletePlan(ctx context.Context, userID string, planID string) (*response_models.PlanMutationResponse, error)
	DeleteAllPlans(ctx context.Context, userID string, dayOfWeek *int) (*response_models.PlanMutationResponse, error)
	CreateBulkPlans(ctx context.Context, userID string, items []request_models.PlanBulkItem) (*response_models.PlanMutationResponse, error)
	GetRecentPlans(ctx context.Context, userID string, limit int) (*response_models.RecentPlansResponse, error)
	GetCompletedCount(ctx context.Context, userID string) (*response_models.CompletedCountResponse, error)
	GetCompletedByWeekday(ctx context.Context, userID string) (*response_models.CompletedByWeekdayResponse, error)
}

type PlanService struct {
	planRepo repositories.PlanRepository
	users    UserDirectory
}

func NewPlanService(planRepo repositories.PlanRepository, users UserDirectory) PlanServiceInterface {
	return &PlanService{
		planRepo: planRepo,
		users:    users,
	}
}

const defaultRecentLimit = 5

// CreateOrUpdatePlan dispatches on the presence of an id: with one it runs a
// partial update filtered on (id, user_id); without one it validates the full
// field set and inserts a new plan for the user.
func (p *PlanService) CreateOrUpdatePlan(ctx context.Context, userID string, req request_models.PlanUpsertRequest) (*response_models.PlanMutationResponse, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrUserNotFound
	}

	if req.ID != "" {
		return p.updatePlan(ctx, owner, req)
	}
	return p.createPlan(ctx, owner, req)
}

func (p *PlanService) updatePlan(ctx context.Context, owner uuid.UUID, req request_models.PlanUpsertRequest) (*response_models.PlanMutationResponse, error) {
	planID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, utils.ErrPlanNotFound
	}

	if !req.HasUpdates() {
		return nil, utils.ErrNoUpdateFields
	}

	upd := repositories.PlanUpdate{
		Title:       req.Title,
		Description: req.Description,
		DayOfWeek:   req.DayOfWeek,
		IsCompleted: req.IsCompleted,
	}
	if req.DayOfWeek != nil && (*req.DayOfWeek < 1 || *req.DayOfWeek > 7) {
		return nil, utils.ErrInvalidDayOfWeek
	}
	if req.StartTime != nil {
		start, err := utils.NormalizeClock(*req.StartTime)
		if err != nil {
			return nil, err
		}
		upd.StartTime = &start
	}
	if req.EndTime != nil {
		end, err := utils.NormalizeClock(*req.EndTime)
		if err != nil {
			return nil, err
		}
		upd.EndTime = &end
	}

	rows, err := p.planRepo.UpdateFields(ctx, planID, owner, upd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if rows == 0 {
		return nil, utils.ErrPlanNotFound
	}

	return &response_models.PlanMutationResponse{Updated: 1}, nil
}

func (p *PlanService) createPlan(ctx context.Context, owner uuid.UUID, req request_models.PlanUpsertRequest) (*response_models.PlanMutationResponse, error) {
	if strPtrEmpty(req.Title) || intPtrZero(req.DayOfWeek) ||
		strPtrEmpty(req.StartTime) || strPtrEmpty(req.EndTime) {
		return nil, utils.ErrMissingPlanFields
	}
	if *req.DayOfWeek < 1 || *req.DayOfWeek > 7 {
		return nil, utils.ErrInvalidDayOfWeek
	}

	start, err := utils.NormalizeClock(*req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := utils.NormalizeClock(*req.EndTime)
	if err != nil {
		return nil, err
	}

	exists, err := p.users.UserExists(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !exists {
		return nil, utils.ErrUserNotFound
	}

	plan := db_models.Plan{
		UserID:    owner,
		Title:     *req.Title,
		DayOfWeek: *req.DayOfWeek,
		StartTime: start,
		EndTime:   end,
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.IsCompleted != nil {
		plan.IsCompleted = *req.IsCompleted
	}

	if err := p.planRepo.Insert(ctx, &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &response_models.PlanMutationResponse{Created: 1, ID: plan.ID.String()}, nil
}

func (p *PlanService) ListPlans(ctx context.Context, userID string, dayOfWeek *int) (*response_models.PlanListResponse, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrUserNotFound
	}

	plans, err := p.planRepo.ListByUser(ctx, owner, dayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	items := make([]response_models.PlanItem, 0, len(plans))
	for _, plan := range plans {
		items = append(items, response_models.PlanItem{
			ID:          plan.ID.String(),
			Title:       plan.Title,
			Description: plan.Description,
			DayOfWeek:   plan.DayOfWeek,
			StartTime:   utils.FormatClock(plan.StartTime),
			EndTime:     utils.FormatClock(plan.EndTime),
			IsCompleted: plan.IsCompleted,
		})
	}

	return &response_models.PlanListResponse{Plans: items, Count: len(items)}, nil
}

func (p *PlanService) DeletePlan(ctx context.Context, userID string, planID string) (*response_models.PlanMutationResponse, error) {
	if planID == "" {
		return nil, utils.ErrPlanIDRequired
	}

	owner, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrUserNotFound
	}
	id, err := uuid.Parse(planID)
	if err != nil {
		return nil, utils.ErrPlanNotFound
	}

	rows, err := p.planRepo.DeleteByID(ctx, id, owner)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if rows == 0 {
		return nil, utils.ErrPlanNotFound
	}

	return &response_models.PlanMutationResponse{Deleted: 1}, nil
}

// DeleteAllPlans wipes a user's plans, optionally only those on one weekday.
// Removing zero rows is still a success.
func (p *PlanService) DeleteAllPlans(ctx context.Context, userID string, dayOfWeek *int) (*response_models.PlanMutationResponse, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrUserNotFound
	}

	rows, err := p.planRepo.DeleteByUser(ctx, owner, dayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &response_models.PlanMutationResponse{Deleted: int(rows)}, nil
}

// CreateBulkPlans inserts a batch in one transaction. Items missing a
// required field are dropped from the batch without failing the call; only a
// batch with nothing valid left is rejected.
func (p *PlanService) CreateBulkPlans(ctx context.Context, userID string, items []request_models.PlanBulkItem) (*response_models.PlanMutationResponse, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrUserNotFound
	}

	exists, err := p.users.UserExists(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !exists {
		return nil, utils.ErrUserNotFound
	}

	plans := make([]db_models.Plan, 0, len(items))
	for _, item := range items {
		if item.Title == "" || item.DayOfWeek < 1 || item.DayOfWeek > 7 ||
			item.StartTime == "" || item.EndTime == "" {
			continue
		}
		start, err := utils.NormalizeClock(item.StartTime)
		if err != nil {
			continue
		}
		end, err := utils.NormalizeClock(item.EndTime)
		if err != nil {
			continue
		}

		plans = append(plans, db_models.Plan{
			UserID:      owner,
			Title:       item.Title,
			Description: item.Description,
			DayOfWeek:   item.DayOfWeek,
			StartTime:   start,
			EndTime:     end,
		})
	}

	if len(plans) == 0 {
		return nil, utils.ErrNoValidPlans
	}

	if err := p.planRepo.InsertBatch(ctx, plans); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &response_models.PlanMutationResponse{Created: len(plans)}, nil
}

func (p *PlanService) GetRecentPlans(ctx context.Context, userID string, limit int) (*response_models.RecentPlansResponse, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrUserNotFound
	}
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	plans, err := p.planRepo.ListCompletedRecent(ctx, owner, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	items := make([]response_models.RecentPlanItem, 0, len(plans))
	for _, plan := range plans {
		items = append(items, response_models.RecentPlanItem{
			ID:          plan.ID.String(),
			Title:       plan.Title,
			Description: plan.Description,
			StartTime:   utils.FormatClock(plan.StartTime),
			IsCompleted: plan.IsCompleted,
			UpdatedAt:   plan.UpdatedAt,
			DisplayDate: utils.FormatDisplayDate(plan.UpdatedAt),
		})
	}

	return &response_models.RecentPlansResponse{RecentPlans: items}, nil
}

func (p *PlanService) GetCompletedCount(ctx context.Context, userID string) (*response_models.CompletedCountResponse, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrUserNotFound
	}

	n, err := p.planRepo.CountCompleted(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &response_models.CompletedCountResponse{CompletedCount: n}, nil
}

func (p *PlanService) GetCompletedByWeekday(ctx context.Context, userID string) (*response_models.CompletedByWeekdayResponse, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrUserNotFound
	}

	rows, err := p.planRepo.CountCompletedByWeekday(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	buckets := make([]int64, 7)
	for _, row := range rows {
		if row.DayOfWeek >= 1 && row.DayOfWeek <= 7 {
			buckets[row.DayOfWeek-1] = row.Count
		}
	}

	return &response_models.CompletedByWeekdayResponse{CompletedByWeekday: buckets}, nil
}

func strPtrEmpty(s *string) bool { return s == nil || *s == "" }

func intPtrZero(n *int) bool { return n == nil || *n == 0 }
