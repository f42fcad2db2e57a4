package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"weekplan/internal/models/request_models"
	"weekplan/internal/services"
	"weekplan/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// dayOfWeekQuery reads the optional day_of_week query parameter. The second
// return value is false when the parameter is present but unusable.
func dayOfWeekQuery(c *gin.Context) (*int, bool) {
	raw := c.Query("day_of_week")
	if raw == "" {
		return nil, true
	}
	day, err := strconv.Atoi(raw)
	if err != nil || day < 1 || day > 7 {
		return nil, false
	}
	return &day, true
}

// UpsertPlan godoc
// @Summary Create or partially update a plan
// @Description Creates a plan when no id is supplied; otherwise applies a partial update to the caller's plan
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.PlanUpsertRequest true "Plan payload"
// @Success 200 {object} utils.APIResponse
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans [post]
func (p *PlanController) UpsertPlan(c *gin.Context) {
	var req request_models.PlanUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeValidation, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")

	result, err := p.planService.CreateOrUpdatePlan(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if result.Created > 0 {
		utils.RespondCreated(c, result, "Plan created successfully")
		return
	}
	utils.RespondSuccess(c, result, "Plan updated successfully")
}

// ListPlans godoc
// @Summary List the caller's plans
// @Description Returns all plans for the authenticated user ordered by start time, optionally filtered to one weekday
// @Tags Plans
// @Produce json
// @Param day_of_week query int false "Weekday filter (1-7)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans [get]
func (p *PlanController) ListPlans(c *gin.Context) {
	day, ok := dayOfWeekQuery(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeValidation, "day_of_week must be an integer between 1 and 7")
		return
	}

	userID := c.GetString("user_id")

	result, err := p.planService.ListPlans(c.Request.Context(), userID, day)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Plans fetched successfully"
	if result.Count == 0 {
		message = "You don't have any plans yet"
	}
	utils.RespondSuccess(c, result, message)
}

// DeletePlan godoc
// @Summary Delete one plan
// @Tags Plans
// @Produce json
// @Param planId path string true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/{planId} [delete]
func (p *PlanController) DeletePlan(c *gin.Context) {
	planID := c.Param("planId")
	userID := c.GetString("user_id")

	result, err := p.planService.DeletePlan(c.Request.Context(), userID, planID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Plan deleted successfully")
}

// DeleteAllPlans godoc
// @Summary Delete all of the caller's plans
// @Description Wipes every plan for the authenticated user, or only one weekday's plans when day_of_week is given
// @Tags Plans
// @Produce json
// @Param day_of_week query int false "Weekday filter (1-7)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans [delete]
func (p *PlanController) DeleteAllPlans(c *gin.Context) {
	day, ok := dayOfWeekQuery(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeValidation, "day_of_week must be an integer between 1 and 7")
		return
	}

	userID := c.GetString("user_id")

	result, err := p.planService.DeleteAllPlans(c.Request.Context(), userID, day)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var message string
	switch {
	case result.Deleted == 0:
		message = "You have no plans to clear"
	case day != nil:
		message = fmt.Sprintf("Cleared %d plans for day %d", result.Deleted, *day)
	default:
		message = fmt.Sprintf("Cleared %d plans", result.Deleted)
	}
	utils.RespondSuccess(c, result, message)
}

// CreateBulkPlans godoc
// @Summary Create several plans at once
// @Description Inserts all valid items of the batch in one transaction; items missing required fields are skipped
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.PlanBulkRequest true "Bulk plan payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/bulk [post]
func (p *PlanController) CreateBulkPlans(c *gin.Context) {
	var req request_models.PlanBulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeValidation, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")

	result, err := p.planService.CreateBulkPlans(c.Request.Context(), userID, req.Plans)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, fmt.Sprintf("Created %d plans", result.Created))
}

// GetRecentPlans godoc
// @Summary List recently completed plans
// @Tags Plans
// @Produce json
// @Param limit query int false "Maximum number of plans" default(5)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/recent [get]
func (p *PlanController) GetRecentPlans(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "5")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeValidation, "limit must be a positive integer")
		return
	}

	userID := c.GetString("user_id")

	result, err := p.planService.GetRecentPlans(c.Request.Context(), userID, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Recent plans fetched successfully")
}

// GetCompletedCount godoc
// @Summary Count completed plans
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/stats/completed-count [get]
func (p *PlanController) GetCompletedCount(c *gin.Context) {
	userID := c.GetString("user_id")

	result, err := p.planService.GetCompletedCount(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Completed plan count fetched successfully")
}

// GetCompletedByWeekday godoc
// @Summary Count completed plans per weekday
// @Description Returns seven counters, one per weekday (index 0 = day 1)
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/stats/completed-by-weekday [get]
func (p *PlanController) GetCompletedByWeekday(c *gin.Context) {
	userID := c.GetString("user_id")

	result, err := p.planService.GetCompletedByWeekday(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Completed plan counts by weekday fetched successfully")
}
