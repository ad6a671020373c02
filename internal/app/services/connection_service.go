package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/muktarbdulkader/campus-connector/internal/app/models"
	"github.com/muktarbdulkader/campus-connector/internal/app/models/dto"
	"github.com/muktarbdulkader/campus-connector/internal/app/repositories"
	"github.com/muktarbdulkader/campus-connector/internal/pkg/apperrors"
)

// ConnectionService maintains the bidirectional connection-request state
// machine. Invariants: connections are symmetric across both users' records,
// a pending entry on one side always mirrors a received entry on the other,
// and a counterpart id never sits in more than one of the three sets.
type ConnectionService interface {
	GetState(ctx context.Context, userID string) (*dto.ConnectionsResponse, error)
	SendRequest(ctx context.Context, fromID, toID string) error
	AcceptRequest(ctx context.Context, userID, requesterID string) error
	RejectRequest(ctx context.Context, userID, requesterID string) error
	RemoveConnection(ctx context.Context, userID, otherID string) error
	ConnectionsOf(ctx context.Context, userID string) ([]string, error)
}

// connectionServiceImpl implements ConnectionService
type connectionServiceImpl struct {
	store  repositories.RecordStore
	logger zerolog.Logger

	// Every operation touching a pair of users runs under that pair's mutex,
	// so the two-record mutation cannot interleave with another operation on
	// the same pair. Writes still go through CompareAndSwap because a user's
	// record is shared across all of their pairs.
	pairMu sync.Mutex
	pairs  map[string]*sync.Mutex
}

// NewConnectionService creates a new ConnectionService
func NewConnectionService(store repositories.RecordStore, logger zerolog.Logger) ConnectionService {
	return &connectionServiceImpl{
		store:  store,
		logger: logger,
		pairs:  make(map[string]*sync.Mutex),
	}
}

func pairKey(a, b string) string {
	if a < b {
		return a + "|" + b
	}
	return b + "|" + a
}

func (s *connectionServiceImpl) lockPair(a, b string) func() {
	s.pairMu.Lock()
	key := pairKey(a, b)
	mu, ok := s.pairs[key]
	if !ok {
		mu = &sync.Mutex{}
		s.pairs[key] = mu
	}
	s.pairMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

func emptyState(userID string) *models.ConnectionState {
	return &models.ConnectionState{
		UserID:      userID,
		Connections: []string{},
		Pending:     []string{},
		Received:    []string{},
	}
}

// loadState returns the user's state, defaulting to empty sets when no record
// exists yet. Missing records are version 0, which CompareAndSwap treats as
// a conditional insert.
func (s *connectionServiceImpl) loadState(ctx context.Context, userID string) (*models.ConnectionState, int64, error) {
	state, version, err := repositories.GetRecord[models.ConnectionState](ctx, s.store, models.PrefixConnection+userID)
	if err != nil {
		return nil, 0, err
	}
	if state == nil {
		return emptyState(userID), 0, nil
	}
	if state.Connections == nil {
		state.Connections = []string{}
	}
	if state.Pending == nil {
		state.Pending = []string{}
	}
	if state.Received == nil {
		state.Received = []string{}
	}
	return state, version, nil
}

// mutateState applies fn to the user's state under a version-checked write,
// retrying on conflict.
func (s *connectionServiceImpl) mutateState(ctx context.Context, userID string, fn func(*models.ConnectionState)) error {
	key := models.PrefixConnection + userID

	for attempt := 0; attempt < casMaxAttempts; attempt++ {
		state, version, err := s.loadState(ctx, userID)
		if err != nil {
			return err
		}

		fn(state)

		ok, err := s.store.CompareAndSwap(ctx, key, state, version)
		if err != nil {
			return fmt.Errorf("write connection state: %w", err)
		}
		if ok {
			return nil
		}
	}

	return apperrors.ErrWriteConflict
}

// GetState returns the caller's graph state with connection profiles
// hydrated. It never fails for a user with no record yet.
func (s *connectionServiceImpl) GetState(ctx context.Context, userID string) (*dto.ConnectionsResponse, error) {
	state, _, err := s.loadState(ctx, userID)
	if err != nil {
		return nil, err
	}

	profiles := make([]models.Profile, 0, len(state.Connections))
	for _, id := range state.Connections {
		profile, _, err := repositories.GetRecord[models.Profile](ctx, s.store, models.PrefixUser+id)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			profiles = append(profiles, *profile)
		}
	}

	return &dto.ConnectionsResponse{
		Connections: profiles,
		Pending:     state.Pending,
		Received:    state.Received,
	}, nil
}

// ConnectionsOf returns the raw accepted-connection id set for a user.
func (s *connectionServiceImpl) ConnectionsOf(ctx context.Context, userID string) ([]string, error) {
	state, _, err := s.loadState(ctx, userID)
	if err != nil {
		return nil, err
	}
	return state.Connections, nil
}

// SendRequest records a pending request on the sender and mirrors it as
// received on the target. Idempotent: repeating the call changes nothing.
// Self-requests and requests to an already-connected user are rejected.
func (s *connectionServiceImpl) SendRequest(ctx context.Context, fromID, toID string) error {
	if fromID == toID {
		return apperrors.ErrSelfConnection
	}

	target, _, err := repositories.GetRecord[models.Profile](ctx, s.store, models.PrefixUser+toID)
	if err != nil {
		return err
	}
	if target == nil {
		return apperrors.ErrUserNotFound
	}

	unlock := s.lockPair(fromID, toID)
	defer unlock()

	sender, _, err := s.loadState(ctx, fromID)
	if err != nil {
		return err
	}
	if containsString(sender.Connections, toID) {
		return apperrors.ErrAlreadyConnected
	}

	if err := s.mutateState(ctx, fromID, func(st *models.ConnectionState) {
		st.Pending = addString(st.Pending, toID)
	}); err != nil {
		return err
	}
	if err := s.mutateState(ctx, toID, func(st *models.ConnectionState) {
		st.Received = addString(st.Received, fromID)
	}); err != nil {
		return err
	}

	s.logger.Debug().Str("from", fromID).Str("to", toID).Msg("Connection request sent")
	return nil
}

// AcceptRequest promotes a received request into a mutual connection on both
// records. The requester must actually be in the caller's received set.
func (s *connectionServiceImpl) AcceptRequest(ctx context.Context, userID, requesterID string) error {
	unlock := s.lockPair(userID, requesterID)
	defer unlock()

	state, _, err := s.loadState(ctx, userID)
	if err != nil {
		return err
	}
	if !containsString(state.Received, requesterID) {
		return apperrors.ErrRequestNotFound
	}

	if err := s.mutateState(ctx, userID, func(st *models.ConnectionState) {
		st.Received = removeString(st.Received, requesterID)
		st.Connections = addString(st.Connections, requesterID)
	}); err != nil {
		return err
	}
	if err := s.mutateState(ctx, requesterID, func(st *models.ConnectionState) {
		st.Pending = removeString(st.Pending, userID)
		st.Connections = addString(st.Connections, userID)
	}); err != nil {
		return err
	}

	s.logger.Debug().Str("user", userID).Str("requester", requesterID).Msg("Connection accepted")
	return nil
}

// RejectRequest drops a received request from both sides without touching
// connections.
func (s *connectionServiceImpl) RejectRequest(ctx context.Context, userID, requesterID string) error {
	unlock := s.lockPair(userID, requesterID)
	defer unlock()

	state, _, err := s.loadState(ctx, userID)
	if err != nil {
		return err
	}
	if !containsString(state.Received, requesterID) {
		return apperrors.ErrRequestNotFound
	}

	if err := s.mutateState(ctx, userID, func(st *models.ConnectionState) {
		st.Received = removeString(st.Received, requesterID)
	}); err != nil {
		return err
	}
	return s.mutateState(ctx, requesterID, func(st *models.ConnectionState) {
		st.Pending = removeString(st.Pending, userID)
	})
}

// RemoveConnection drops a mutual connection from both records. Removing a
// pair that is not connected is a no-op; a later SendRequest starts a fresh
// pending/received cycle.
func (s *connectionServiceImpl) RemoveConnection(ctx context.Context, userID, otherID string) error {
	unlock := s.lockPair(userID, otherID)
	defer unlock()

	if err := s.mutateState(ctx, userID, func(st *models.ConnectionState) {
		st.Connections = removeString(st.Connections, otherID)
	}); err != nil {
		return err
	}
	return s.mutateState(ctx, otherID, func(st *models.ConnectionState) {
		st.Connections = removeString(st.Connections, userID)
	})
}
