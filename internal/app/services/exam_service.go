package services

import (
	"context"
	"fmt"
	"time"

	"github.com/muktarbdulkader/campus-connector/internal/app/models"
	"github.com/muktarbdulkader/campus-connector/internal/app/models/dto"
	"github.com/muktarbdulkader/campus-connector/internal/app/recommend"
	"github.com/muktarbdulkader/campus-connector/internal/app/repositories"
	"github.com/muktarbdulkader/campus-connector/internal/pkg/apperrors"
)

// ExamService defines the interface for exam-resource sharing operations
type ExamService interface {
	ListResources(ctx context.Context) ([]models.ExamResource, error)
	CreateResource(ctx context.Context, uploaderID string, req *dto.CreateResourceRequest) (*models.ExamResource, error)
	RecordDownload(ctx context.Context, resourceID string) (*models.ExamResource, error)
	MarkHelpful(ctx context.Context, resourceID string) (*models.ExamResource, error)
	DeleteResource(ctx context.Context, userID, resourceID string) error
	Recommendations(ctx context.Context, userID string) ([]recommend.ScoredResource, error)
}

// examServiceImpl implements ExamService
type examServiceImpl struct {
	store       repositories.RecordStore
	connections ConnectionService
	now         func() time.Time
}

// NewExamService creates a new ExamService
func NewExamService(store repositories.RecordStore, connections ConnectionService) ExamService {
	return &examServiceImpl{
		store:       store,
		connections: connections,
		now:         time.Now,
	}
}

// ListResources returns all shared resources, key-ordered.
func (s *examServiceImpl) ListResources(ctx context.Context) ([]models.ExamResource, error) {
	return repositories.ListRecords[models.ExamResource](ctx, s.store, models.PrefixExam)
}

// CreateResource stores a new resource with zeroed counters. The uploader's
// display name is resolved from their profile.
func (s *examServiceImpl) CreateResource(ctx context.Context, uploaderID string, req *dto.CreateResourceRequest) (*models.ExamResource, error) {
	uploaderName := "Anonymous"
	profile, _, err := repositories.GetRecord[models.Profile](ctx, s.store, models.PrefixUser+uploaderID)
	if err != nil {
		return nil, err
	}
	if profile != nil && profile.FullName != "" {
		uploaderName = profile.FullName
	}

	now := s.now().UTC()
	resource := models.ExamResource{
		ID:           repositories.NewRecordID(models.PrefixExam, now),
		Course:       req.Course,
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Year:         req.Year,
		Semester:     req.Semester,
		FileURL:      req.FileURL,
		UploaderID:   uploaderID,
		UploaderName: uploaderName,
		Downloads:    0,
		Helpful:      0,
		CreatedAt:    now,
	}

	if err := s.store.Set(ctx, resource.ID, resource); err != nil {
		return nil, fmt.Errorf("store exam resource: %w", err)
	}
	return &resource, nil
}

// RecordDownload increments the download counter.
func (s *examServiceImpl) RecordDownload(ctx context.Context, resourceID string) (*models.ExamResource, error) {
	return s.increment(ctx, resourceID, func(r *models.ExamResource) {
		r.Downloads++
	})
}

// MarkHelpful increments the helpful counter.
func (s *examServiceImpl) MarkHelpful(ctx context.Context, resourceID string) (*models.ExamResource, error) {
	return s.increment(ctx, resourceID, func(r *models.ExamResource) {
		r.Helpful++
	})
}

// increment applies a counter bump under a version-checked write so
// concurrent bumps are never lost.
func (s *examServiceImpl) increment(ctx context.Context, resourceID string, bump func(*models.ExamResource)) (*models.ExamResource, error) {
	if !hasRecordPrefix(resourceID, models.PrefixExam) {
		return nil, apperrors.ErrResourceMissing
	}

	for attempt := 0; attempt < casMaxAttempts; attempt++ {
		resource, version, err := repositories.GetRecord[models.ExamResource](ctx, s.store, resourceID)
		if err != nil {
			return nil, err
		}
		if resource == nil {
			return nil, apperrors.ErrResourceMissing
		}

		bump(resource)
		ok, err := s.store.CompareAndSwap(ctx, resourceID, resource, version)
		if err != nil {
			return nil, fmt.Errorf("update exam resource: %w", err)
		}
		if ok {
			return resource, nil
		}
	}

	return nil, apperrors.ErrWriteConflict
}

// DeleteResource removes a resource. Only the uploader may delete it.
func (s *examServiceImpl) DeleteResource(ctx context.Context, userID, resourceID string) error {
	if !hasRecordPrefix(resourceID, models.PrefixExam) {
		return apperrors.ErrResourceMissing
	}

	resource, _, err := repositories.GetRecord[models.ExamResource](ctx, s.store, resourceID)
	if err != nil {
		return err
	}
	if resource == nil {
		return apperrors.ErrResourceMissing
	}
	if resource.UploaderID != userID {
		return apperrors.NewForbiddenError("Only the uploader can delete this resource")
	}

	return s.store.Delete(ctx, resourceID)
}

// Recommendations ranks shared resources for the user.
func (s *examServiceImpl) Recommendations(ctx context.Context, userID string) ([]recommend.ScoredResource, error) {
	profile, _, err := repositories.GetRecord[models.Profile](ctx, s.store, models.PrefixUser+userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.ErrProfileNotFound
	}

	connections, err := s.connections.ConnectionsOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	resources, err := s.ListResources(ctx)
	if err != nil {
		return nil, err
	}

	return recommend.ExamResources(profile, connections, resources, s.now()), nil
}
