package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/muktarbdulkader/campus-connector/internal/app/models"
	"github.com/muktarbdulkader/campus-connector/internal/app/models/dto"
	"github.com/muktarbdulkader/campus-connector/internal/app/repositories"
)

func TestDashboardSummaryCountsActivity(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	for _, id := range []string{"me", "friend"} {
		seedProfile(t, store, id)
	}
	connections := NewConnectionService(store, zerolog.Nop())

	events := NewEventService(store)
	groups := NewGroupService(store, connections)
	marketplace := NewMarketplaceService(store)
	rides := NewRideService(store)
	exams := NewExamService(store, connections)

	if _, err := events.CreateEvent(ctx, "me", &dto.CreateEventRequest{Title: "Talk"}); err != nil {
		t.Fatal(err)
	}
	event, err := events.CreateEvent(ctx, "friend", &dto.CreateEventRequest{Title: "Workshop"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := events.JoinEvent(ctx, "me", event.ID); err != nil {
		t.Fatal(err)
	}

	if _, err := groups.CreateGroup(ctx, "me", &dto.CreateGroupRequest{Subject: "Go", MaxMembers: 5}); err != nil {
		t.Fatal(err)
	}

	sold, err := marketplace.CreateListing(ctx, "me", &dto.CreateListingRequest{Title: "Old monitor", Price: 30})
	if err != nil {
		t.Fatal(err)
	}
	// A sold listing does not count as active.
	soldCopy := *sold
	soldCopy.Status = "sold"
	if err := store.Set(ctx, sold.ID, soldCopy); err != nil {
		t.Fatal(err)
	}
	if _, err := marketplace.CreateListing(ctx, "me", &dto.CreateListingRequest{Title: "Chair", Price: 10}); err != nil {
		t.Fatal(err)
	}

	if _, err := rides.CreateRide(ctx, "me", &dto.CreateRideRequest{From: "A", To: "B", Seats: 2}); err != nil {
		t.Fatal(err)
	}
	if _, err := exams.CreateResource(ctx, "me", &dto.CreateResourceRequest{Course: "OS", Title: "Notes", Type: models.ResourceNotes}); err != nil {
		t.Fatal(err)
	}

	if err := connections.SendRequest(ctx, "me", "friend"); err != nil {
		t.Fatal(err)
	}
	if err := connections.AcceptRequest(ctx, "friend", "me"); err != nil {
		t.Fatal(err)
	}

	summary, err := NewDashboardService(store, connections).Summary(ctx, "me")
	if err != nil {
		t.Fatal(err)
	}

	if summary.EventsJoined != 2 {
		t.Errorf("eventsJoined = %d, want 2", summary.EventsJoined)
	}
	if summary.GroupsJoined != 1 {
		t.Errorf("groupsJoined = %d, want 1", summary.GroupsJoined)
	}
	if summary.ActiveListings != 1 {
		t.Errorf("activeListings = %d, want 1", summary.ActiveListings)
	}
	if summary.RidesOffered != 1 {
		t.Errorf("ridesOffered = %d, want 1", summary.RidesOffered)
	}
	if summary.ResourcesShared != 1 {
		t.Errorf("resourcesShared = %d, want 1", summary.ResourcesShared)
	}
	if summary.Connections != 1 {
		t.Errorf("connections = %d, want 1", summary.Connections)
	}
}
