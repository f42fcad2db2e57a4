package services_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekplan/internal/models/db_models"
	"weekplan/internal/models/request_models"
	"weekplan/internal/repositories"
	"weekplan/internal/services"
	"weekplan/pkg/utils"
)

// fakePlanRepo is an in-memory PlanRepository with the same filtering and
// ordering semantics as the real one.
type fakePlanRepo struct {
	plans       []db_models.Plan
	insertCalls int
	updateCalls int
}

func (f *fakePlanRepo) Insert(_ context.Context, plan *db_models.Plan) error {
	f.insertCalls++
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	plan.UpdatedAt = time.Now().Unix()
	f.plans = append(f.plans, *plan)
	return nil
}

func (f *fakePlanRepo) InsertBatch(ctx context.Context, plans []db_models.Plan) error {
	for i := range plans {
		if err := f.Insert(ctx, &plans[i]); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakePlanRepo) UpdateFields(_ context.Context, planID, userID uuid.UUID, upd repositories.PlanUpdate) (int64, error) {
	f.updateCalls++
	for i := range f.plans {
		p := &f.plans[i]
		if p.ID != planID || p.UserID != userID {
			continue
		}
		if upd.Title != nil {
			p.Title = *upd.Title
		}
		if upd.Description != nil {
			p.Description = *upd.Description
		}
		if upd.DayOfWeek != nil {
			p.DayOfWeek = *upd.DayOfWeek
		}
		if upd.StartTime != nil {
			p.StartTime = *upd.StartTime
		}
		if upd.EndTime != nil {
			p.EndTime = *upd.EndTime
		}
		if upd.IsCompleted != nil {
			p.IsCompleted = *upd.IsCompleted
		}
		p.UpdatedAt = time.Now().Unix()
		return 1, nil
	}
	return 0, nil
}

func (f *fakePlanRepo) ListByUser(_ context.Context, userID uuid.UUID, dayOfWeek *int) ([]db_models.Plan, error) {
	var out []db_models.Plan
	for _, p := range f.plans {
		if p.UserID != userID {
			continue
		}
		if dayOfWeek != nil && p.DayOfWeek != *dayOfWeek {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (f *fakePlanRepo) DeleteByID(_ context.Context, planID, userID uuid.UUID) (int64, error) {
	for i, p := range f.plans {
		if p.ID == planID && p.UserID == userID {
			f.plans = append(f.plans[:i], f.plans[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakePlanRepo) DeleteByUser(_ context.Context, userID uuid.UUID, dayOfWeek *int) (int64, error) {
	var kept []db_models.Plan
	var removed int64
	for _, p := range f.plans {
		if p.UserID == userID && (dayOfWeek == nil || p.DayOfWeek == *dayOfWeek) {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	f.plans = kept
	return removed, nil
}

func (f *fakePlanRepo) ListCompletedRecent(_ context.Context, userID uuid.UUID, limit int) ([]db_models.Plan, error) {
	var out []db_models.Plan
	for _, p := range f.plans {
		if p.UserID == userID && p.IsCompleted {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt > out[j].UpdatedAt })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePlanRepo) CountCompleted(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range f.plans {
		if p.UserID == userID && p.IsCompleted {
			n++
		}
	}
	return n, nil
}

func (f *fakePlanRepo) CountCompletedByWeekday(_ context.Context, userID uuid.UUID) ([]repositories.WeekdayCount, error) {
	counts := map[int]int64{}
	for _, p := range f.plans {
		if p.UserID == userID && p.IsCompleted {
			counts[p.DayOfWeek]++
		}
	}
	var rows []repositories.WeekdayCount
	for day, n := range counts {
		rows = append(rows, repositories.WeekdayCount{DayOfWeek: day, Count: n})
	}
	return rows, nil
}

type fakeUserDirectory struct {
	known map[uuid.UUID]bool
}

func (f *fakeUserDirectory) UserExists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.known[id], nil
}

func newTestService(userIDs ...uuid.UUID) (services.PlanServiceInterface, *fakePlanRepo) {
	repo := &fakePlanRepo{}
	users := &fakeUserDirectory{known: map[uuid.UUID]bool{}}
	for _, id := range userIDs {
		users.known[id] = true
	}
	return services.NewPlanService(repo, users), repo
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

func TestCreatePlan_Success(t *testing.T) {
	owner := uuid.New()
	svc, repo := newTestService(owner)

	result, err := svc.CreateOrUpdatePlan(context.Background(), owner.String(), request_models.PlanUpsertRequest{
		Title:       strPtr("Morning run"),
		Description: strPtr("5km around the park"),
		DayOfWeek:   intPtr(2),
		StartTime:   strPtr("7:30"),
		EndTime:     strPtr("08:15"),
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 1, result.Created)
	assert.NotEmpty(t, result.ID)

	require.Len(t, repo.plans, 1)
	stored := repo.plans[0]
	assert.Equal(t, owner, stored.UserID)
	assert.Equal(t, "Morning run", stored.Title)
	assert.Equal(t, "5km around the park", stored.Description)
	assert.Equal(t, 2, stored.DayOfWeek)
	assert.Equal(t, "07:30", stored.StartTime, "start time should be normalized to HH:MM")
	assert.Equal(t, "08:15", stored.EndTime)
	assert.False(t, stored.IsCompleted)
	assert.Equal(t, result.ID, stored.ID.String())
}

func TestCreatePlan_MissingFields(t *testing.T) {
	owner := uuid.New()
	svc, repo := newTestService(owner)

	_, err := svc.CreateOrUpdatePlan(context.Background(), owner.String(), request_models.PlanUpsertRequest{
		Title:     strPtr("No times"),
		DayOfWeek: intPtr(3),
	})
	require.ErrorIs(t, err, utils.ErrMissingPlanFields)
	assert.Zero(t, repo.insertCalls, "nothing should be written on a validation failure")
}

func TestCreatePlan_UnknownUser(t *testing.T) {
	svc, repo := newTestService() // no known users

	_, err := svc.CreateOrUpdatePlan(context.Background(), uuid.New().String(), request_models.PlanUpsertRequest{
		Title:     strPtr("Orphan plan"),
		DayOfWeek: intPtr(1),
		StartTime: strPtr("09:00"),
		EndTime:   strPtr("10:00"),
	})
	require.ErrorIs(t, err, utils.ErrUserNotFound)
	assert.Zero(t, repo.insertCalls)
}

func TestCreatePlan_InvalidDayOfWeek(t *testing.T) {
	owner := uuid.New()
	svc, _ := newTestService(owner)

	_, err := svc.CreateOrUpdatePlan(context.Background(), owner.String(), request_models.PlanUpsertRequest{
		Title:     strPtr("Day eight"),
		DayOfWeek: intPtr(8),
		StartTime: strPtr("09:00"),
		EndTime:   strPtr("10:00"),
	})
	require.ErrorIs(t, err, utils.ErrInvalidDayOfWeek)
}

func TestUpdatePlan_Success(t *testing.T) {
	owner := uuid.New()
	svc, repo := newTestService(owner)

	plan := db_models.Plan{UserID: owner, Title: "Old title", DayOfWeek: 1, StartTime: "08:00", EndTime: "09:00"}
	require.NoError(t, repo.Insert(context.Background(), &plan))

	result, err := svc.CreateOrUpdatePlan(context.Background(), owner.String(), request_models.PlanUpsertRequest{
		ID:          plan.ID.String(),
		Title:       strPtr("New title"),
		IsCompleted: boolPtr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, "New title", repo.plans[0].Title)
	assert.True(t, repo.plans[0].IsCompleted)
	assert.Equal(t, "08:00", repo.plans[0].StartTime, "untouched fields keep their values")
}

func TestUpdatePlan_NotOwned(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	svc, repo := newTestService(owner, stranger)

	plan := db_models.Plan{UserID: owner, Title: "Private plan", DayOfWeek: 4, StartTime: "10:00", EndTime: "11:00"}
	require.NoError(t, repo.Insert(context.Background(), &plan))

	_, err := svc.CreateOrUpdatePlan(context.Background(), stranger.String(), request_models.PlanUpsertRequest{
		ID:    plan.ID.String(),
		Title: strPtr("Hijacked"),
	})
	require.ErrorIs(t, err, utils.ErrPlanNotFound)
	assert.Equal(t, "Private plan", repo.plans[0].Title, "the row must be left unchanged")
}

func TestUpdatePlan_NoFields(t *testing.T) {
	owner := uuid.New()
	svc, repo := newTestService(owner)

	plan := db_models.Plan{UserID: owner, Title: "Untouched", DayOfWeek: 5, StartTime: "12:00", EndTime: "13:00"}
	require.NoError(t, repo.Insert(context.Background(), &plan))

	_, err := svc.CreateOrUpdatePlan(context.Background(), owner.String(), request_models.PlanUpsertRequest{
		ID: plan.ID.String(),
	})
	require.ErrorIs(t, err, utils.ErrNoUpdateFields)
	assert.Zero(t, repo.updateCalls, "an empty update must not reach the store")
}

func TestListPlans_Empty(t *testing.T) {
	owner := uuid.New()
	svc, _ := newTestService(owner)

	result, err := svc.ListPlans(context.Background(), owner.String(), nil)
	require.NoError(t, err, "having no plans is not an error")

	assert.Equal(t, 0, result.Count)
	assert.NotNil(t, result.Plans)
	assert.Empty(t, result.Plans)
}

func TestListPlans_OrderedByStartTime(t *testing.T) {
	owner := uuid.New()
	svc, repo := newTestService(owner)

	for _, p := range []db_models.Plan{
		{UserID: owner, Title: "Lunch", DayOfWeek: 1, StartTime: "12:00:00", EndTime: "13:00:00"},
		{UserID: owner, Title: "Breakfast", DayOfWeek: 1, StartTime: "07:00:00", EndTime: "07:30:00"},
		{UserID: owner, Title: "Dinner", DayOfWeek: 2, StartTime: "19:00:00", EndTime: "20:00:00"},
	} {
		plan := p
		require.NoError(t, repo.Insert(context.Background(), &plan))
	}

	result, err := svc.ListPlans(context.Background(), owner.String(), nil)
	require.NoError(t, err)
	require.Equal(t, 3, result.Count)

	assert.Equal(t, "Breakfast", result.Plans[0].Title)
	assert.Equal(t, "Lunch", result.Plans[1].Title)
	assert.Equal(t, "Dinner", result.Plans[2].Title)
	assert.Equal(t, "07:00", result.Plans[0].StartTime, "stored HH:MM:SS must come back as HH:MM")

	day := 2
	filtered, err := svc.ListPlans(context.Background(), owner.String(), &day)
	require.NoError(t, err)
	require.Equal(t, 1, filtered.Count)
	assert.Equal(t, "Dinner", filtered.Plans[0].Title)
}

func TestDeletePlan_Idempotence(t *testing.T) {
	owner := uuid.New()
	svc, repo := newTestService(owner)

	plan := db_models.Plan{UserID: owner, Title: "One shot", DayOfWeek: 6, StartTime: "09:00", EndTime: "10:00"}
	require.NoError(t, repo.Insert(context.Background(), &plan))

	result, err := svc.DeletePlan(context.Background(), owner.String(), plan.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Deleted)

	_, err = svc.DeletePlan(context.Background(), owner.String(), plan.ID.String())
	require.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestDeletePlan_MissingID(t *testing.T) {
	owner := uuid.New()
	svc, _ := newTestService(owner)

	_, err := svc.DeletePlan(context.Background(), owner.String(), "")
	require.ErrorIs(t, err, utils.ErrPlanIDRequired)
}

func TestDeleteAllPlans_DayScoped(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	svc, repo := newTestService(owner, other)

	for _, p := range []db_models.Plan{
		{UserID: owner, Title: "Wed yoga", DayOfWeek: 3, StartTime: "07:00", EndTime: "08:00"},
		{UserID: owner, Title: "Wed review", DayOfWeek: 3, StartTime: "17:00", EndTime: "18:00"},
		{UserID: owner, Title: "Fri swim", DayOfWeek: 5, StartTime: "07:00", EndTime: "08:00"},
		{UserID: other, Title: "Other wed", DayOfWeek: 3, StartTime: "07:00", EndTime: "08:00"},
	} {
		plan := p
		require.NoError(t, repo.Insert(context.Background(), &plan))
	}

	day := 3
	result, err := svc.DeleteAllPlans(context.Background(), owner.String(), &day)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Deleted)

	require.Len(t, repo.plans, 2)
	for _, p := range repo.plans {
		if p.UserID == owner {
			assert.NotEqual(t, 3, p.DayOfWeek, "only day-3 rows of the owner may be removed")
		}
	}
}

func TestDeleteAllPlans_NothingToDelete(t *testing.T) {
	owner := uuid.New()
	svc, _ := newTestService(owner)

	result, err := svc.DeleteAllPlans(context.Background(), owner.String(), nil)
	require.NoError(t, err, "deleting zero rows is still a success")
	assert.Equal(t, 0, result.Deleted)
}

func TestCreateBulkPlans_SkipsInvalidItems(t *testing.T) {
	owner := uuid.New()
	svc, repo := newTestService(owner)

	items := []request_models.PlanBulkItem{
		{Title: "Run", DayOfWeek: 1, StartTime: "06:00", EndTime: "07:00"},
		{DayOfWeek: 2, StartTime: "06:00", EndTime: "07:00"}, // no title
		{Title: "Swim", DayOfWeek: 3, StartTime: "06:00", EndTime: "07:00"},
		{DayOfWeek: 4, StartTime: "06:00", EndTime: "07:00"}, // no title
		{Title: "Bike", DayOfWeek: 5, StartTime: "06:00", EndTime: "07:00"},
	}

	result, err := svc.CreateBulkPlans(context.Background(), owner.String(), items)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Created)
	assert.Len(t, repo.plans, 3)
}

func TestCreateBulkPlans_AllInvalid(t *testing.T) {
	owner := uuid.New()
	svc, repo := newTestService(owner)

	items := []request_models.PlanBulkItem{
		{Title: "No day", StartTime: "06:00", EndTime: "07:00"},
		{Title: "Bad time", DayOfWeek: 2, StartTime: "late", EndTime: "07:00"},
	}

	_, err := svc.CreateBulkPlans(context.Background(), owner.String(), items)
	require.ErrorIs(t, err, utils.ErrNoValidPlans)
	assert.Empty(t, repo.plans)
}

func TestCreateBulkPlans_UnknownUser(t *testing.T) {
	svc, repo := newTestService()

	items := []request_models.PlanBulkItem{
		{Title: "Run", DayOfWeek: 1, StartTime: "06:00", EndTime: "07:00"},
	}

	_, err := svc.CreateBulkPlans(context.Background(), uuid.New().String(), items)
	require.ErrorIs(t, err, utils.ErrUserNotFound)
	assert.Empty(t, repo.plans, "the user check happens before any item is processed")
}

func TestGetRecentPlans_CompletedOnlyWithLimit(t *testing.T) {
	owner := uuid.New()
	svc, repo := newTestService(owner)

	now := time.Now().Unix()
	for i := 0; i < 7; i++ {
		repo.plans = append(repo.plans, db_models.Plan{
			BaseModel:   db_models.BaseModel{ID: uuid.New(), UpdatedAt: now + int64(i)},
			UserID:      owner,
			Title:       "Done",
			DayOfWeek:   1,
			StartTime:   "06:00",
			EndTime:     "07:00",
			IsCompleted: i%2 == 0, // 4 completed
		})
	}

	result, err := svc.GetRecentPlans(context.Background(), owner.String(), 3)
	require.NoError(t, err)
	require.Len(t, result.RecentPlans, 3)

	assert.GreaterOrEqual(t, result.RecentPlans[0].UpdatedAt, result.RecentPlans[1].UpdatedAt)
	assert.GreaterOrEqual(t, result.RecentPlans[1].UpdatedAt, result.RecentPlans[2].UpdatedAt)
	assert.NotEmpty(t, result.RecentPlans[0].DisplayDate)
}

func TestGetCompletedCount(t *testing.T) {
	owner := uuid.New()
	svc, repo := newTestService(owner)

	repo.plans = []db_models.Plan{
		{BaseModel: db_models.BaseModel{ID: uuid.New()}, UserID: owner, DayOfWeek: 1, IsCompleted: true},
		{BaseModel: db_models.BaseModel{ID: uuid.New()}, UserID: owner, DayOfWeek: 2, IsCompleted: false},
		{BaseModel: db_models.BaseModel{ID: uuid.New()}, UserID: uuid.New(), DayOfWeek: 3, IsCompleted: true},
	}

	result, err := svc.GetCompletedCount(context.Background(), owner.String())
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.CompletedCount)
}

func TestGetCompletedByWeekday_ZeroFilled(t *testing.T) {
	owner := uuid.New()
	svc, repo := newTestService(owner)

	repo.plans = []db_models.Plan{
		{BaseModel: db_models.BaseModel{ID: uuid.New()}, UserID: owner, DayOfWeek: 5, IsCompleted: true},
		{BaseModel: db_models.BaseModel{ID: uuid.New()}, UserID: owner, DayOfWeek: 2, IsCompleted: false},
	}

	result, err := svc.GetCompletedByWeekday(context.Background(), owner.String())
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0, 0, 1, 0, 0}, result.CompletedByWeekday)
}
