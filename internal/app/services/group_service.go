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

// GroupService defines the interface for study group operations
type GroupService interface {
	ListGroups(ctx context.Context) ([]models.StudyGroup, error)
	CreateGroup(ctx context.Context, creatorID string, req *dto.CreateGroupRequest) (*models.StudyGroup, error)
	JoinGroup(ctx context.Context, userID, groupID string) (*models.StudyGroup, error)
	Recommendations(ctx context.Context, userID string) ([]recommend.ScoredGroup, error)
}

// groupServiceImpl implements GroupService
type groupServiceImpl struct {
	store       repositories.RecordStore
	connections ConnectionService
	now         func() time.Time
}

// NewGroupService creates a new GroupService
func NewGroupService(store repositories.RecordStore, connections ConnectionService) GroupService {
	return &groupServiceImpl{
		store:       store,
		connections: connections,
		now:         time.Now,
	}
}

// ListGroups returns all study groups, key-ordered.
func (s *groupServiceImpl) ListGroups(ctx context.Context) ([]models.StudyGroup, error) {
	return repositories.ListRecords[models.StudyGroup](ctx, s.store, models.PrefixGroup)
}

// CreateGroup stores a new group with the creator as its first member.
func (s *groupServiceImpl) CreateGroup(ctx context.Context, creatorID string, req *dto.CreateGroupRequest) (*models.StudyGroup, error) {
	now := s.now().UTC()
	group := models.StudyGroup{
		ID:          repositories.NewRecordID(models.PrefixGroup, now),
		Subject:     req.Subject,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		MaxMembers:  req.MaxMembers,
		Members:     []string{creatorID},
		CreatorID:   creatorID,
		University:  req.University,
		CreatedAt:   now,
	}

	if err := s.store.Set(ctx, group.ID, group); err != nil {
		return nil, fmt.Errorf("store group: %w", err)
	}
	return &group, nil
}

// JoinGroup adds the user to the member list. Joining twice is a no-op; a
// join attempted at capacity is rejected and the group is unchanged. The
// version-checked write means two racing joins cannot push the group past
// capacity.
func (s *groupServiceImpl) JoinGroup(ctx context.Context, userID, groupID string) (*models.StudyGroup, error) {
	if !hasRecordPrefix(groupID, models.PrefixGroup) {
		return nil, apperrors.ErrGroupNotFound
	}

	for attempt := 0; attempt < casMaxAttempts; attempt++ {
		group, version, err := repositories.GetRecord[models.StudyGroup](ctx, s.store, groupID)
		if err != nil {
			return nil, err
		}
		if group == nil {
			return nil, apperrors.ErrGroupNotFound
		}

		if inList(group.Members, userID) {
			return group, nil
		}
		if group.IsFull() {
			return nil, apperrors.ErrGroupFull
		}

		group.Members = append(group.Members, userID)
		ok, err := s.store.CompareAndSwap(ctx, groupID, group, version)
		if err != nil {
			return nil, fmt.Errorf("join group: %w", err)
		}
		if ok {
			return group, nil
		}
	}

	return nil, apperrors.ErrWriteConflict
}

// Recommendations ranks joinable groups for the user.
func (s *groupServiceImpl) Recommendations(ctx context.Context, userID string) ([]recommend.ScoredGroup, error) {
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

	groups, err := s.ListGroups(ctx)
	if err != nil {
		return nil, err
	}

	return recommend.StudyGroups(profile, connections, groups, s.now()), nil
}
