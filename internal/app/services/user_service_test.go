package services

import (
	"context"
	"errors"
	"testing"

	"github.com/muktarbdulkader/campus-connector/internal/app/models"
	"github.com/muktarbdulkader/campus-connector/internal/app/models/dto"
	"github.com/muktarbdulkader/campus-connector/internal/app/repositories"
	"github.com/muktarbdulkader/campus-connector/internal/pkg/apperrors"
)

func TestListUsersExcludesCaller(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	for _, id := range []string{"a", "b", "c"} {
		seedProfile(t, store, id)
	}
	svc := NewUserService(store)

	others, err := svc.ListUsers(ctx, "b")
	if err != nil {
		t.Fatal(err)
	}
	if len(others) != 2 {
		t.Fatalf("got %d profiles, want 2", len(others))
	}
	for _, p := range others {
		if p.ID == "b" {
			t.Error("caller present in discovery list")
		}
	}
}

func TestUpdateProfileMergesPartialFields(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	seedProfile(t, store, "u")
	svc := NewUserService(store)

	skills := "go, distributed systems"
	updated, err := svc.UpdateProfile(ctx, "u", &dto.UpdateProfileRequest{Skills: &skills})
	if err != nil {
		t.Fatal(err)
	}

	if updated.Skills != skills {
		t.Errorf("skills = %q", updated.Skills)
	}
	// Fields not in the request are untouched.
	if updated.FullName != "User u" {
		t.Errorf("fullName = %q", updated.FullName)
	}

	stored, _, err := repositories.GetRecord[models.Profile](ctx, store, models.PrefixUser+"u")
	if err != nil {
		t.Fatal(err)
	}
	if stored.Skills != skills {
		t.Errorf("stored skills = %q", stored.Skills)
	}
}

func TestUpdateProfileRequiresExistingProfile(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(repositories.NewMemoryStore())

	name := "Ghost"
	if _, err := svc.UpdateProfile(ctx, "ghost", &dto.UpdateProfileRequest{FullName: &name}); !errors.Is(err, apperrors.ErrProfileNotFound) {
		t.Errorf("got %v, want ErrProfileNotFound", err)
	}
}
