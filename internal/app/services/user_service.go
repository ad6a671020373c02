package services

import (
	"context"
	"fmt"

	"github.com/muktarbdulkader/campus-connector/internal/app/models"
	"github.com/muktarbdulkader/campus-connector/internal/app/models/dto"
	"github.com/muktarbdulkader/campus-connector/internal/app/repositories"
	"github.com/muktarbdulkader/campus-connector/internal/pkg/apperrors"
)

// UserService defines the interface for profile and discovery operations
type UserService interface {
	ListUsers(ctx context.Context, callerID string) ([]models.Profile, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*models.Profile, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	store repositories.RecordStore
}

// NewUserService creates a new UserService
func NewUserService(store repositories.RecordStore) UserService {
	return &userServiceImpl{store: store}
}

// ListUsers returns every profile except the caller's, for discovery.
func (s *userServiceImpl) ListUsers(ctx context.Context, callerID string) ([]models.Profile, error) {
	profiles, err := repositories.ListRecords[models.Profile](ctx, s.store, models.PrefixUser)
	if err != nil {
		return nil, err
	}

	others := make([]models.Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.ID != callerID {
			others = append(others, p)
		}
	}
	return others, nil
}

// UpdateProfile applies partial updates to the caller's own profile. A
// version-checked write keeps a concurrent update from being lost.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	key := models.PrefixUser + userID

	for attempt := 0; attempt < casMaxAttempts; attempt++ {
		profile, version, err := repositories.GetRecord[models.Profile](ctx, s.store, key)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			return nil, apperrors.ErrProfileNotFound
		}

		if req.FullName != nil {
			profile.FullName = *req.FullName
		}
		if req.University != nil {
			profile.University = *req.University
		}
		if req.Department != nil {
			profile.Department = *req.Department
		}
		if req.Year != nil {
			profile.Year = *req.Year
		}
		if req.Skills != nil {
			profile.Skills = *req.Skills
		}

		ok, err := s.store.CompareAndSwap(ctx, key, profile, version)
		if err != nil {
			return nil, fmt.Errorf("update profile: %w", err)
		}
		if ok {
			return profile, nil
		}
	}

	return nil, apperrors.ErrWriteConflict
}
