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

func newRideFixture(t *testing.T) (RideService, repositories.RecordStore) {
	t.Helper()
	store := repositories.NewMemoryStore()
	return NewRideService(store), store
}

func TestCreateRideStartsEmptyAndAvailable(t *testing.T) {
	ctx := context.Background()
	svc, _ := newRideFixture(t)

	ride, err := svc.CreateRide(ctx, "driver", &dto.CreateRideRequest{
		From:  "Campus",
		To:    "Downtown",
		Seats: 2,
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(ride.Passengers) != 0 {
		t.Errorf("passengers = %v, want empty", ride.Passengers)
	}
	if ride.Status != "available" {
		t.Errorf("status = %s, want available", ride.Status)
	}
}

func TestRequestSeatFillsAndFlipsStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newRideFixture(t)

	ride, err := svc.CreateRide(ctx, "driver", &dto.CreateRideRequest{From: "A", To: "B", Seats: 2})
	if err != nil {
		t.Fatal(err)
	}

	first, err := svc.RequestSeat(ctx, "p1", ride.ID)
	if err != nil {
		t.Fatal(err)
	}
	if first.Status != "available" {
		t.Errorf("status after first seat = %s, want available", first.Status)
	}

	second, err := svc.RequestSeat(ctx, "p2", ride.ID)
	if err != nil {
		t.Fatal(err)
	}
	if second.Status != "full" {
		t.Errorf("status at capacity = %s, want full", second.Status)
	}
	if len(second.Passengers) != 2 {
		t.Errorf("passengers = %v", second.Passengers)
	}
}

func TestRequestSeatOnFullRide(t *testing.T) {
	ctx := context.Background()
	svc, store := newRideFixture(t)

	ride, err := svc.CreateRide(ctx, "driver", &dto.CreateRideRequest{From: "A", To: "B", Seats: 1})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RequestSeat(ctx, "p1", ride.ID); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.RequestSeat(ctx, "late", ride.ID); !errors.Is(err, apperrors.ErrRideFull) {
		t.Fatalf("got %v, want ErrRideFull", err)
	}

	// An existing passenger repeating the request gets the ride back, not an
	// error, even at capacity.
	again, err := svc.RequestSeat(ctx, "p1", ride.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(again.Passengers) != 1 {
		t.Errorf("passengers = %v, want single entry", again.Passengers)
	}

	stored, _, err := repositories.GetRecord[models.Ride](ctx, store, ride.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored.Passengers) != 1 || stored.Passengers[0] != "p1" {
		t.Errorf("stored passengers = %v", stored.Passengers)
	}
}

func TestRequestSeatOnUnknownRide(t *testing.T) {
	ctx := context.Background()
	svc, _ := newRideFixture(t)

	if _, err := svc.RequestSeat(ctx, "p", "ride:missing"); !errors.Is(err, apperrors.ErrRideNotFound) {
		t.Errorf("got %v, want ErrRideNotFound", err)
	}
}

func TestRequestSeatRejectsForeignRecordKeys(t *testing.T) {
	ctx := context.Background()
	svc, store := newRideFixture(t)
	seedProfile(t, store, "victim")

	_, err := svc.RequestSeat(ctx, "p", models.PrefixUser+"victim")
	if !errors.Is(err, apperrors.ErrRideNotFound) {
		t.Fatalf("request with profile key: got %v, want ErrRideNotFound", err)
	}

	profile, _, err := repositories.GetRecord[models.Profile](ctx, store, models.PrefixUser+"victim")
	if err != nil {
		t.Fatal(err)
	}
	if profile == nil || profile.FullName != "User victim" {
		t.Errorf("victim profile mutated: %+v", profile)
	}
}
