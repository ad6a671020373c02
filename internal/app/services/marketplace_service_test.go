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

func TestCreateListingDefaultsToAvailable(t *testing.T) {
	ctx := context.Background()
	svc := NewMarketplaceService(repositories.NewMemoryStore())

	listing, err := svc.CreateListing(ctx, "seller", &dto.CreateListingRequest{
		Title: "Desk lamp",
		Price: 15,
	})
	if err != nil {
		t.Fatal(err)
	}
	if listing.Status != "available" {
		t.Errorf("status = %s, want available", listing.Status)
	}
}

func TestDeleteListingIsSellerOnly(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	svc := NewMarketplaceService(store)

	listing, err := svc.CreateListing(ctx, "seller", &dto.CreateListingRequest{Title: "Bike", Price: 120})
	if err != nil {
		t.Fatal(err)
	}

	err = svc.DeleteListing(ctx, "buyer", listing.ID)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("foreign delete: got %v, want ErrPermissionDenied", err)
	}
	if err.Error() != "Only the seller can delete this listing" {
		t.Errorf("forbidden message = %q", err.Error())
	}
	if err := svc.DeleteListing(ctx, "seller", listing.ID); err != nil {
		t.Fatal(err)
	}

	_, _, found, err := store.Get(ctx, listing.ID)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("listing still present after delete")
	}
}

func TestDeleteUnknownListing(t *testing.T) {
	ctx := context.Background()
	svc := NewMarketplaceService(repositories.NewMemoryStore())

	if err := svc.DeleteListing(ctx, "seller", "listing:missing"); !errors.Is(err, apperrors.ErrListingNotFound) {
		t.Errorf("got %v, want ErrListingNotFound", err)
	}
}

func TestDeleteListingRejectsForeignRecordKeys(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	svc := NewMarketplaceService(store)
	seedProfile(t, store, "victim")

	if err := svc.DeleteListing(ctx, "victim", models.PrefixUser+"victim"); !errors.Is(err, apperrors.ErrListingNotFound) {
		t.Fatalf("delete with profile key: got %v, want ErrListingNotFound", err)
	}

	_, _, found, err := store.Get(ctx, models.PrefixUser+"victim")
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Error("victim profile gone after foreign-key delete")
	}
}
