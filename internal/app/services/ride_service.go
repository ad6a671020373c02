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

// RideService defines the interface for ride-sharing operations
type RideService interface {
	ListRides(ctx context.Context) ([]models.Ride, error)
	CreateRide(ctx context.Context, driverID string, req *dto.CreateRideRequest) (*models.Ride, error)
	RequestSeat(ctx context.Context, userID, rideID string) (*models.Ride, error)
}

// rideServiceImpl implements RideService
type rideServiceImpl struct {
	store repositories.RecordStore
}

// NewRideService creates a new RideService
func NewRideService(store repositories.RecordStore) RideService {
	return &rideServiceImpl{store: store}
}

// ListRides returns all rides, key-ordered.
func (s *rideServiceImpl) ListRides(ctx context.Context) ([]models.Ride, error) {
	return repositories.ListRecords[models.Ride](ctx, s.store, models.PrefixRide)
}

// CreateRide stores a new ride offer with an empty passenger list.
func (s *rideServiceImpl) CreateRide(ctx context.Context, driverID string, req *dto.CreateRideRequest) (*models.Ride, error) {
	now := time.Now().UTC()
	ride := models.Ride{
		ID:         repositories.NewRecordID(models.PrefixRide, now),
		From:       req.From,
		To:         req.To,
		Date:       req.Date,
		Time:       req.Time,
		Seats:      req.Seats,
		Price:      req.Price,
		Notes:      req.Notes,
		DriverID:   driverID,
		Passengers: []string{},
		Status:     "available",
		CreatedAt:  now,
	}

	if err := s.store.Set(ctx, ride.ID, ride); err != nil {
		return nil, fmt.Errorf("store ride: %w", err)
	}
	return &ride, nil
}

// RequestSeat adds the user to the passenger list. Requesting twice is a
// no-op; a request against a full ride is rejected and the ride is
// unchanged. Racing requests cannot oversell the last seat thanks to the
// version-checked write.
func (s *rideServiceImpl) RequestSeat(ctx context.Context, userID, rideID string) (*models.Ride, error) {
	if !hasRecordPrefix(rideID, models.PrefixRide) {
		return nil, apperrors.ErrRideNotFound
	}

	for attempt := 0; attempt < casMaxAttempts; attempt++ {
		ride, version, err := repositories.GetRecord[models.Ride](ctx, s.store, rideID)
		if err != nil {
			return nil, err
		}
		if ride == nil {
			return nil, apperrors.ErrRideNotFound
		}

		if inList(ride.Passengers, userID) {
			return ride, nil
		}
		if ride.IsFull() {
			return nil, apperrors.ErrRideFull
		}

		ride.Passengers = append(ride.Passengers, userID)
		if ride.IsFull() {
			ride.Status = "full"
		}

		ok, err := s.store.CompareAndSwap(ctx, rideID, ride, version)
		if err != nil {
			return nil, fmt.Errorf("request seat: %w", err)
		}
		if ok {
			return ride, nil
		}
	}

	return nil, apperrors.ErrWriteConflict
}
