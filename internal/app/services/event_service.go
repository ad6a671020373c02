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

// EventService defines the interface for campus event operations
type EventService interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	CreateEvent(ctx context.Context, creatorID string, req *dto.CreateEventRequest) (*models.Event, error)
	JoinEvent(ctx context.Context, userID, eventID string) (*models.Event, error)
}

// eventServiceImpl implements EventService
type eventServiceImpl struct {
	store repositories.RecordStore
}

// NewEventService creates a new EventService
func NewEventService(store repositories.RecordStore) EventService {
	return &eventServiceImpl{store: store}
}

// ListEvents returns all events, key-ordered.
func (s *eventServiceImpl) ListEvents(ctx context.Context) ([]models.Event, error) {
	return repositories.ListRecords[models.Event](ctx, s.store, models.PrefixEvent)
}

// CreateEvent stores a new event with the creator as its first attendee.
func (s *eventServiceImpl) CreateEvent(ctx context.Context, creatorID string, req *dto.CreateEventRequest) (*models.Event, error) {
	now := time.Now().UTC()
	event := models.Event{
		ID:          repositories.NewRecordID(models.PrefixEvent, now),
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Category:    req.Category,
		CreatorID:   creatorID,
		Attendees:   []string{creatorID},
		CreatedAt:   now,
	}

	if err := s.store.Set(ctx, event.ID, event); err != nil {
		return nil, fmt.Errorf("store event: %w", err)
	}
	return &event, nil
}

// JoinEvent adds the user to the attendee list. Joining twice is a no-op.
func (s *eventServiceImpl) JoinEvent(ctx context.Context, userID, eventID string) (*models.Event, error) {
	if !hasRecordPrefix(eventID, models.PrefixEvent) {
		return nil, apperrors.ErrEventNotFound
	}

	for attempt := 0; attempt < casMaxAttempts; attempt++ {
		event, version, err := repositories.GetRecord[models.Event](ctx, s.store, eventID)
		if err != nil {
			return nil, err
		}
		if event == nil {
			return nil, apperrors.ErrEventNotFound
		}

		if inList(event.Attendees, userID) {
			return event, nil
		}

		event.Attendees = append(event.Attendees, userID)
		ok, err := s.store.CompareAndSwap(ctx, eventID, event, version)
		if err != nil {
			return nil, fmt.Errorf("join event: %w", err)
		}
		if ok {
			return event, nil
		}
	}

	return nil, apperrors.ErrWriteConflict
}
