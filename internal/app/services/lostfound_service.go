package services

import (
	"context"
	"fmt"
	"time"

	"github.com/muktarbdulkader/campus-connector/internal/app/models"
	"github.com/muktarbdulkader/campus-connector/internal/app/models/dto"
	"github.com/muktarbdulkader/campus-connector/internal/app/repositories"
	"github.com/muktarbdulkader/campus-connector/internal/pkg/apperrors"
)

// LostFoundService defines the interface for lost & found operations
type LostFoundService interface {
	ListItems(ctx context.Context) ([]models.LostFoundItem, error)
	CreateItem(ctx context.Context, reporterID string, req *dto.CreateLostFoundRequest) (*models.LostFoundItem, error)
	UpdateItem(ctx context.Context, userID, itemID string, req *dto.UpdateLostFoundRequest) (*models.LostFoundItem, error)
}

// lostFoundServiceImpl implements LostFoundService
type lostFoundServiceImpl struct {
	store repositories.RecordStore
}

// NewLostFoundService creates a new LostFoundService
func NewLostFoundService(store repositories.RecordStore) LostFoundService {
	return &lostFoundServiceImpl{store: store}
}

// ListItems returns all reports, key-ordered.
func (s *lostFoundServiceImpl) ListItems(ctx context.Context) ([]models.LostFoundItem, error) {
	return repositories.ListRecords[models.LostFoundItem](ctx, s.store, models.PrefixLostFound)
}

// CreateItem stores a new report with status "active".
func (s *lostFoundServiceImpl) CreateItem(ctx context.Context, reporterID string, req *dto.CreateLostFoundRequest) (*models.LostFoundItem, error) {
	now := time.Now().UTC()
	item := models.LostFoundItem{
		ID:          repositories.NewRecordID(models.PrefixLostFound, now),
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Date:        req.Date,
		Contact:     req.Contact,
		ReporterID:  reporterID,
		Status:      "active",
		CreatedAt:   now,
	}

	if err := s.store.Set(ctx, item.ID, item); err != nil {
		return nil, fmt.Errorf("store lost & found item: %w", err)
	}
	return &item, nil
}

// UpdateItem applies partial updates to a report. Only the reporter may
// mutate it.
func (s *lostFoundServiceImpl) UpdateItem(ctx context.Context, userID, itemID string, req *dto.UpdateLostFoundRequest) (*models.LostFoundItem, error) {
	if !hasRecordPrefix(itemID, models.PrefixLostFound) {
		return nil, apperrors.ErrItemNotFound
	}

	for attempt := 0; attempt < casMaxAttempts; attempt++ {
		item, version, err := repositories.GetRecord[models.LostFoundItem](ctx, s.store, itemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, apperrors.ErrItemNotFound
		}
		if item.ReporterID != userID {
			return nil, apperrors.NewForbiddenError("Only the reporter can update this item")
		}

		if req.Status != nil {
			item.Status = *req.Status
		}
		if req.Description != nil {
			item.Description = *req.Description
		}
		if req.Contact != nil {
			item.Contact = *req.Contact
		}

		ok, err := s.store.CompareAndSwap(ctx, itemID, item, version)
		if err != nil {
			return nil, fmt.Errorf("update lost & found item: %w", err)
		}
		if ok {
			return item, nil
		}
	}

	return nil, apperrors.ErrWriteConflict
}
