package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/muktarbdulkader/campus-connector/internal/app/models"
	"github.com/muktarbdulkader/campus-connector/internal/app/repositories"
	"github.com/muktarbdulkader/campus-connector/internal/pkg/apperrors"
)

func seedProfile(t *testing.T, store repositories.RecordStore, id string) {
	t.Helper()
	profile := models.Profile{
		ID:        id,
		Email:     id + "@campus.test",
		FullName:  "User " + id,
		CreatedAt: time.Now().UTC(),
	}
	if err := store.Set(context.Background(), models.PrefixUser+id, profile); err != nil {
		t.Fatal(err)
	}
}

func newConnectionFixture(t *testing.T, ids ...string) (ConnectionService, repositories.RecordStore) {
	t.Helper()
	store := repositories.NewMemoryStore()
	for _, id := range ids {
		seedProfile(t, store, id)
	}
	return NewConnectionService(store, zerolog.Nop()), store
}

func stateOf(t *testing.T, store repositories.RecordStore, userID string) *models.ConnectionState {
	t.Helper()
	state, _, err := repositories.GetRecord[models.ConnectionState](context.Background(), store, models.PrefixConnection+userID)
	if err != nil {
		t.Fatal(err)
	}
	if state == nil {
		return &models.ConnectionState{UserID: userID}
	}
	return state
}

func TestSendRequestMirrorsPendingAndReceived(t *testing.T) {
	ctx := context.Background()
	svc, store := newConnectionFixture(t, "a", "b")

	if err := svc.SendRequest(ctx, "a", "b"); err != nil {
		t.Fatal(err)
	}

	a, b := stateOf(t, store, "a"), stateOf(t, store, "b")
	if !containsString(a.Pending, "b") {
		t.Error("sender pending missing target")
	}
	if !containsString(b.Received, "a") {
		t.Error("target received missing sender")
	}
}

func TestSendRequestIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, store := newConnectionFixture(t, "a", "b")

	if err := svc.SendRequest(ctx, "a", "b"); err != nil {
		t.Fatal(err)
	}
	if err := svc.SendRequest(ctx, "a", "b"); err != nil {
		t.Fatal(err)
	}

	b := stateOf(t, store, "b")
	if len(b.Received) != 1 || b.Received[0] != "a" {
		t.Errorf("received = %v, want exactly one entry for a", b.Received)
	}
	a := stateOf(t, store, "a")
	if len(a.Pending) != 1 {
		t.Errorf("pending = %v, want exactly one entry", a.Pending)
	}
}

func TestSendRequestGuards(t *testing.T) {
	ctx := context.Background()
	svc, _ := newConnectionFixture(t, "a", "b")

	if err := svc.SendRequest(ctx, "a", "a"); !errors.Is(err, apperrors.ErrSelfConnection) {
		t.Errorf("self request: got %v, want ErrSelfConnection", err)
	}
	if err := svc.SendRequest(ctx, "a", "ghost"); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("unknown target: got %v, want ErrUserNotFound", err)
	}

	if err := svc.SendRequest(ctx, "a", "b"); err != nil {
		t.Fatal(err)
	}
	if err := svc.AcceptRequest(ctx, "b", "a"); err != nil {
		t.Fatal(err)
	}
	if err := svc.SendRequest(ctx, "a", "b"); !errors.Is(err, apperrors.ErrAlreadyConnected) {
		t.Errorf("request to connected user: got %v, want ErrAlreadyConnected", err)
	}
}

func TestAcceptRequestIsSymmetric(t *testing.T) {
	ctx := context.Background()
	svc, store := newConnectionFixture(t, "a", "b")

	if err := svc.SendRequest(ctx, "a", "b"); err != nil {
		t.Fatal(err)
	}
	if err := svc.AcceptRequest(ctx, "b", "a"); err != nil {
		t.Fatal(err)
	}

	a, b := stateOf(t, store, "a"), stateOf(t, store, "b")
	if !containsString(a.Connections, "b") || !containsString(b.Connections, "a") {
		t.Errorf("connections not symmetric: a=%v b=%v", a.Connections, b.Connections)
	}
	if len(a.Pending) != 0 || len(b.Received) != 0 {
		t.Errorf("request state not cleared: pending=%v received=%v", a.Pending, b.Received)
	}
}

func TestAcceptRequiresReceivedEntry(t *testing.T) {
	ctx := context.Background()
	svc, _ := newConnectionFixture(t, "a", "b")

	if err := svc.AcceptRequest(ctx, "b", "a"); !errors.Is(err, apperrors.ErrRequestNotFound) {
		t.Errorf("accept without request: got %v, want ErrRequestNotFound", err)
	}
	if err := svc.RejectRequest(ctx, "b", "a"); !errors.Is(err, apperrors.ErrRequestNotFound) {
		t.Errorf("reject without request: got %v, want ErrRequestNotFound", err)
	}
}

func TestRejectClearsBothSides(t *testing.T) {
	ctx := context.Background()
	svc, store := newConnectionFixture(t, "a", "b")

	if err := svc.SendRequest(ctx, "a", "b"); err != nil {
		t.Fatal(err)
	}
	if err := svc.RejectRequest(ctx, "b", "a"); err != nil {
		t.Fatal(err)
	}

	a, b := stateOf(t, store, "a"), stateOf(t, store, "b")
	if len(a.Pending) != 0 || len(b.Received) != 0 {
		t.Errorf("reject left residue: pending=%v received=%v", a.Pending, b.Received)
	}
	if len(a.Connections) != 0 || len(b.Connections) != 0 {
		t.Errorf("reject created a connection: a=%v b=%v", a.Connections, b.Connections)
	}
}

func TestRemoveConnectionThenFreshRequest(t *testing.T) {
	ctx := context.Background()
	svc, store := newConnectionFixture(t, "a", "b")

	if err := svc.SendRequest(ctx, "a", "b"); err != nil {
		t.Fatal(err)
	}
	if err := svc.AcceptRequest(ctx, "b", "a"); err != nil {
		t.Fatal(err)
	}
	if err := svc.RemoveConnection(ctx, "a", "b"); err != nil {
		t.Fatal(err)
	}

	a, b := stateOf(t, store, "a"), stateOf(t, store, "b")
	if containsString(a.Connections, "b") || containsString(b.Connections, "a") {
		t.Fatalf("removal not symmetric: a=%v b=%v", a.Connections, b.Connections)
	}

	// A fresh request starts a new pending/received cycle.
	if err := svc.SendRequest(ctx, "a", "b"); err != nil {
		t.Fatal(err)
	}
	b = stateOf(t, store, "b")
	if !containsString(b.Received, "a") {
		t.Error("fresh request after removal did not register")
	}
}

func TestRemoveConnectionIsNoOpWhenNotConnected(t *testing.T) {
	ctx := context.Background()
	svc, _ := newConnectionFixture(t, "a", "b")

	if err := svc.RemoveConnection(ctx, "a", "b"); err != nil {
		t.Errorf("removing a non-connection errored: %v", err)
	}
}

func TestGetStateHydratesConnectionProfiles(t *testing.T) {
	ctx := context.Background()
	svc, _ := newConnectionFixture(t, "a", "b", "c")

	if err := svc.SendRequest(ctx, "a", "b"); err != nil {
		t.Fatal(err)
	}
	if err := svc.AcceptRequest(ctx, "b", "a"); err != nil {
		t.Fatal(err)
	}
	if err := svc.SendRequest(ctx, "c", "a"); err != nil {
		t.Fatal(err)
	}

	resp, err := svc.GetState(ctx, "a")
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Connections) != 1 || resp.Connections[0].ID != "b" {
		t.Errorf("connections = %+v, want profile of b", resp.Connections)
	}
	if len(resp.Received) != 1 || resp.Received[0] != "c" {
		t.Errorf("received = %v, want [c]", resp.Received)
	}
}

func TestGetStateOnFreshUserIsEmpty(t *testing.T) {
	ctx := context.Background()
	svc, _ := newConnectionFixture(t, "a")

	resp, err := svc.GetState(ctx, "a")
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Connections) != 0 || len(resp.Pending) != 0 || len(resp.Received) != 0 {
		t.Errorf("fresh user state not empty: %+v", resp)
	}
}
