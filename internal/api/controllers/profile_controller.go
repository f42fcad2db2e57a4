package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weekplan/internal/models/request_models"
	"weekplan/internal/services"
	"weekplan/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// GetProfile godoc
// @Summary Fetch the caller's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile [get]
func (p *ProfileController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := p.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// UpdateProfile godoc
// @Summary Save the caller's profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body request_models.ProfileUpdateRequest true "Profile payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile [put]
func (p *ProfileController) UpdateProfile(c *gin.Context) {
	var req request_models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeValidation, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")

	if err := p.profileService.UpdateProfile(c.Request.Context(), userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Profile saved successfully")
}
