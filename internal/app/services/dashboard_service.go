package services

import (
	"context"

	"github.com/muktarbdulkader/campus-connector/internal/app/models"
	"github.com/muktarbdulkader/campus-connector/internal/app/models/dto"
	"github.com/muktarbdulkader/campus-connector/internal/app/repositories"
)

// DashboardService aggregates the caller's activity counts across all record
// types for the profile dashboard.
type DashboardService interface {
	Summary(ctx context.Context, userID string) (*dto.DashboardResponse, error)
}

// dashboardServiceImpl implements DashboardService
type dashboardServiceImpl struct {
	store       repositories.RecordStore
	connections ConnectionService
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(store repositories.RecordStore, connections ConnectionService) DashboardService {
	return &dashboardServiceImpl{store: store, connections: connections}
}

// Summary computes the caller's counts with linear scans over the store; the
// record counts here are campus-sized, not web-scale.
func (s *dashboardServiceImpl) Summary(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	summary := &dto.DashboardResponse{}

	events, err := repositories.ListRecords[models.Event](ctx, s.store, models.PrefixEvent)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		if inList(e.Attendees, userID) {
			summary.EventsJoined++
		}
	}

	groups, err := repositories.ListRecords[models.StudyGroup](ctx, s.store, models.PrefixGroup)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if inList(g.Members, userID) {
			summary.GroupsJoined++
		}
	}

	listings, err := repositories.ListRecords[models.Listing](ctx, s.store, models.PrefixListing)
	if err != nil {
		return nil, err
	}
	for _, l := range listings {
		if l.SellerID == userID && l.Status == "available" {
			summary.ActiveListings++
		}
	}

	rides, err := repositories.ListRecords[models.Ride](ctx, s.store, models.PrefixRide)
	if err != nil {
		return nil, err
	}
	for _, r := range rides {
		if r.DriverID == userID {
			summary.RidesOffered++
		}
	}

	resources, err := repositories.ListRecords[models.ExamResource](ctx, s.store, models.PrefixExam)
	if err != nil {
		return nil, err
	}
	for _, r := range resources {
		if r.UploaderID == userID {
			summary.ResourcesShared++
		}
	}

	connections, err := s.connections.ConnectionsOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary.Connections = len(connections)

	return summary, nil
}
