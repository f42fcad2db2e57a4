package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"weekplan/internal/models/db_models"
)

// PlanUpdate carries the optional column set of a partial update. Nil slots
// are left untouched by the generated UPDATE.
type PlanUpdate struct {
	Title       *string
	Description *string
	DayOfWeek   *int
	StartTime   *string
	EndTime     *string
	IsCompleted *bool
}

func (u PlanUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.DayOfWeek == nil &&
		u.StartTime == nil && u.EndTime == nil && u.IsCompleted == nil
}

func (u PlanUpdate) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if u.Title != nil {
		cols["title"] = *u.Title
	}
	if u.Description != nil {
		cols["description"] = *u.Description
	}
	if u.DayOfWeek != nil {
		cols["day_of_week"] = *u.DayOfWeek
	}
	if u.StartTime != nil {
		cols["start_time"] = *u.StartTime
	}
	if u.EndTime != nil {
		cols["end_time"] = *u.EndTime
	}
	if u.IsCompleted != nil {
		cols["is_completed"] = *u.IsCompleted
	}
	return cols
}

type WeekdayCount struct {
	DayOfWeek int   `gorm:"column:day_of_week"`
	Count     int64 `gorm:"column:count"`
}

type PlanRepository interface {
	Insert(ctx context.Context, plan *db_models.Plan) error
	InsertBatch(ctx context.Context, plans []db_models.Plan) error
	UpdateFields(ctx context.Context, planID, userID uuid.UUID, upd PlanUpdate) (int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID, dayOfWeek *int) ([]db_models.Plan, error)
	DeleteByID(ctx context.Context, planID, userID uuid.UUID) (int64, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID, dayOfWeek *int) (int64, error)
	ListCompletedRecent(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.Plan, error)
	CountCompleted(ctx context.Context, userID uuid.UUID) (int64, error)
	CountCompletedByWeekday(ctx context.Context, userID uuid.UUID) ([]WeekdayCount, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Insert(ctx context.Context, plan *db_models.Plan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *planRepository) InsertBatch(ctx context.Context, plans []db_models.Plan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&plans).Error
	})
}

func (r *planRepository) UpdateFields(ctx context.Context, planID, userID uuid.UUID, upd PlanUpdate) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Plan{}).
		Where("id = ? AND user_id = ?", planID, userID).
		Updates(upd.columns())
	return res.RowsAffected, res.Error
}

func (r *planRepository) ListByUser(ctx context.Context, userID uuid.UUID, dayOfWeek *int) ([]db_models.Plan, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if dayOfWeek != nil {
		query = query.Where("day_of_week = ?", *dayOfWeek)
	}

	var plans []db_models.Plan
	if err := query.Order("start_time asc").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *planRepository) DeleteByID(ctx context.Context, planID, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", planID, userID).
		Delete(&db_models.Plan{})
	return res.RowsAffected, res.Error
}

func (r *planRepository) DeleteByUser(ctx context.Context, userID uuid.UUID, dayOfWeek *int) (int64, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if dayOfWeek != nil {
		query = query.Where("day_of_week = ?", *dayOfWeek)
	}

	res := query.Delete(&db_models.Plan{})
	return res.RowsAffected, res.Error
}

func (r *planRepository) ListCompletedRecent(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Order("updated_at desc").
		Limit(limit).
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *planRepository) CountCompleted(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Plan{}).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Count(&n).Error
	return n, err
}

func (r *planRepository) CountCompletedByWeekday(ctx context.Context, userID uuid.UUID) ([]WeekdayCount, error) {
	var rows []WeekdayCount
	err := r.db.WithContext(ctx).
		Model(&db_models.Plan{}).
		Select("day_of_week, COUNT(*) AS count").
		Where("user_id = ? AND is_completed = ?", userID, true).
		Group("day_of_week").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
