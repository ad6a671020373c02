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

func TestCreateItemStartsActive(t *testing.T) {
	ctx := context.Background()
	svc := NewLostFoundService(repositories.NewMemoryStore())

	item, err := svc.CreateItem(ctx, "reporter", &dto.CreateLostFoundRequest{
		Type:  "lost",
		Title: "Blue backpack",
	})
	if err != nil {
		t.Fatal(err)
	}
	if item.Status != "active" {
		t.Errorf("status = %s, want active", item.Status)
	}
	if item.ReporterID != "reporter" {
		t.Errorf("reporterId = %s", item.ReporterID)
	}
}

func TestUpdateItemIsReporterOnly(t *testing.T) {
	ctx := context.Background()
	svc := NewLostFoundService(repositories.NewMemoryStore())

	item, err := svc.CreateItem(ctx, "reporter", &dto.CreateLostFoundRequest{Type: "found", Title: "Keys"})
	if err != nil {
		t.Fatal(err)
	}

	resolved := "resolved"
	_, err = svc.UpdateItem(ctx, "someone-else", item.ID, &dto.UpdateLostFoundRequest{Status: &resolved})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("foreign update: got %v, want ErrPermissionDenied", err)
	}
	if err.Error() != "Only the reporter can update this item" {
		t.Errorf("forbidden message = %q", err.Error())
	}

	updated, err := svc.UpdateItem(ctx, "reporter", item.ID, &dto.UpdateLostFoundRequest{Status: &resolved})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != "resolved" {
		t.Errorf("status = %s, want resolved", updated.Status)
	}
	// Untouched fields survive a partial update.
	if updated.Title != "Keys" {
		t.Errorf("title = %s", updated.Title)
	}
}

func TestUpdateUnknownItem(t *testing.T) {
	ctx := context.Background()
	svc := NewLostFoundService(repositories.NewMemoryStore())

	status := "resolved"
	if _, err := svc.UpdateItem(ctx, "r", "lostfound:missing", &dto.UpdateLostFoundRequest{Status: &status}); !errors.Is(err, apperrors.ErrItemNotFound) {
		t.Errorf("got %v, want ErrItemNotFound", err)
	}
}

func TestUpdateItemRejectsForeignRecordKeys(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	svc := NewLostFoundService(store)
	seedProfile(t, store, "victim")

	status := "resolved"
	_, err := svc.UpdateItem(ctx, "victim", models.PrefixUser+"victim", &dto.UpdateLostFoundRequest{Status: &status})
	if !errors.Is(err, apperrors.ErrItemNotFound) {
		t.Fatalf("update with profile key: got %v, want ErrItemNotFound", err)
	}

	profile, _, err := repositories.GetRecord[models.Profile](ctx, store, models.PrefixUser+"victim")
	if err != nil {
		t.Fatal(err)
	}
	if profile == nil || profile.FullName != "User victim" {
		t.Errorf("victim profile mutated: %+v", profile)
	}
}
