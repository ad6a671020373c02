package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/muktarbdulkader/campus-connector/internal/app/models"
	"github.com/muktarbdulkader/campus-connector/internal/app/models/dto"
	"github.com/muktarbdulkader/campus-connector/internal/app/repositories"
	"github.com/muktarbdulkader/campus-connector/internal/pkg/apperrors"
)

func newGroupFixture(t *testing.T, ids ...string) (GroupService, ConnectionService, repositories.RecordStore) {
	t.Helper()
	store := repositories.NewMemoryStore()
	for _, id := range ids {
		seedProfile(t, store, id)
	}
	connections := NewConnectionService(store, zerolog.Nop())
	return NewGroupService(store, connections), connections, store
}

func TestCreateGroupSeedsCreatorAsFirstMember(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newGroupFixture(t, "creator")

	group, err := svc.CreateGroup(ctx, "creator", &dto.CreateGroupRequest{
		Subject:    "Linear Algebra",
		MaxMembers: 4,
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(group.Members) != 1 || group.Members[0] != "creator" {
		t.Errorf("members = %v, want [creator]", group.Members)
	}
	if group.CreatorID != "creator" {
		t.Errorf("creatorId = %s", group.CreatorID)
	}
}

func TestJoinGroupIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newGroupFixture(t, "creator", "joiner")

	group, err := svc.CreateGroup(ctx, "creator", &dto.CreateGroupRequest{Subject: "Calculus", MaxMembers: 4})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.JoinGroup(ctx, "joiner", group.ID); err != nil {
		t.Fatal(err)
	}
	again, err := svc.JoinGroup(ctx, "joiner", group.ID)
	if err != nil {
		t.Fatal(err)
	}

	if len(again.Members) != 2 {
		t.Errorf("members after double join = %v, want 2 entries", again.Members)
	}
}

func TestJoinGroupAtCapacityIsRejected(t *testing.T) {
	ctx := context.Background()
	svc, _, store := newGroupFixture(t, "creator", "second", "late")

	group, err := svc.CreateGroup(ctx, "creator", &dto.CreateGroupRequest{Subject: "Physics", MaxMembers: 2})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.JoinGroup(ctx, "second", group.ID); err != nil {
		t.Fatal(err)
	}

	_, err = svc.JoinGroup(ctx, "late", group.ID)
	if !errors.Is(err, apperrors.ErrGroupFull) {
		t.Fatalf("join at capacity: got %v, want ErrGroupFull", err)
	}

	// State unchanged by the rejected join.
	stored, _, err := repositories.GetRecord[models.StudyGroup](ctx, store, group.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored.Members) != 2 {
		t.Errorf("members after rejected join = %v", stored.Members)
	}

	// An existing member still gets the idempotent path, not the capacity error.
	if _, err := svc.JoinGroup(ctx, "second", group.ID); err != nil {
		t.Errorf("member rejoin at capacity errored: %v", err)
	}
}

func TestJoinUnknownGroup(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newGroupFixture(t, "u")

	if _, err := svc.JoinGroup(ctx, "u", "group:missing"); !errors.Is(err, apperrors.ErrGroupNotFound) {
		t.Errorf("got %v, want ErrGroupNotFound", err)
	}
}

func TestJoinGroupRejectsForeignRecordKeys(t *testing.T) {
	ctx := context.Background()
	svc, _, store := newGroupFixture(t, "attacker", "victim")

	// A profile key passed as the group id must read as an unknown group,
	// never decode as one and get overwritten by the membership write.
	_, err := svc.JoinGroup(ctx, "attacker", models.PrefixUser+"victim")
	if !errors.Is(err, apperrors.ErrGroupNotFound) {
		t.Fatalf("join with profile key: got %v, want ErrGroupNotFound", err)
	}

	profile, _, err := repositories.GetRecord[models.Profile](ctx, store, models.PrefixUser+"victim")
	if err != nil {
		t.Fatal(err)
	}
	if profile == nil || profile.Email != "victim@campus.test" || profile.FullName != "User victim" {
		t.Errorf("victim profile mutated: %+v", profile)
	}
}

func TestGroupRecommendationsFavorConnections(t *testing.T) {
	ctx := context.Background()
	svc, connections, _ := newGroupFixture(t, "me", "friend", "stranger")

	if err := connections.SendRequest(ctx, "me", "friend"); err != nil {
		t.Fatal(err)
	}
	if err := connections.AcceptRequest(ctx, "friend", "me"); err != nil {
		t.Fatal(err)
	}

	withFriend, err := svc.CreateGroup(ctx, "friend", &dto.CreateGroupRequest{Subject: "Databases", MaxMembers: 5})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateGroup(ctx, "stranger", &dto.CreateGroupRequest{Subject: "Databases", MaxMembers: 5}); err != nil {
		t.Fatal(err)
	}

	scored, err := svc.Recommendations(ctx, "me")
	if err != nil {
		t.Fatal(err)
	}
	if len(scored) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(scored))
	}
	if scored[0].ID != withFriend.ID {
		t.Errorf("expected the connection's group first, got %s", scored[0].ID)
	}
}

func TestGroupRecommendationsExcludeOwnGroups(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newGroupFixture(t, "me")

	if _, err := svc.CreateGroup(ctx, "me", &dto.CreateGroupRequest{Subject: "Compilers", MaxMembers: 5}); err != nil {
		t.Fatal(err)
	}

	scored, err := svc.Recommendations(ctx, "me")
	if err != nil {
		t.Fatal(err)
	}
	if len(scored) != 0 {
		t.Errorf("own group recommended: %+v", scored)
	}
}

func TestGroupRecommendationsRequireProfile(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newGroupFixture(t)

	if _, err := svc.Recommendations(ctx, "ghost"); !errors.Is(err, apperrors.ErrProfileNotFound) {
		t.Errorf("got %v, want ErrProfileNotFound", err)
	}
}
