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

type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, userID string) (*response_models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req request_models.ProfileUpdateRequest) error
}

type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileServiceInterface {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

// GetProfile returns an empty profile for users that never saved one;
// a missing row is not an error here.
func (p *ProfileService) GetProfile(ctx context.Context, userID string) (*response_models.ProfileResponse, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrUserNotFound
	}

	profile, err := p.profileRepo.FindByUser(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if profile == nil {
		return &response_models.ProfileResponse{}, nil
	}

	return &response_models.ProfileResponse{
		Information: profile.Information,
		Target:      profile.Target,
	}, nil
}

func (p *ProfileService) UpdateProfile(ctx context.Context, userID string, req request_models.ProfileUpdateRequest) error {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return utils.ErrUserNotFound
	}

	profile := &db_models.Profile{
		UserID:      owner,
		Information: req.Information,
		Target:      req.Target,
	}

	if err := p.profileRepo.Upsert(ctx, profile); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return nil
}
