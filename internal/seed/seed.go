package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/muktarbdulkader/campus-connector/internal/app/models"
	"github.com/muktarbdulkader/campus-connector/internal/app/repositories"
	"github.com/muktarbdulkader/campus-connector/internal/pkg/auth"
)

// LoadSampleData fills an empty store with demo accounts and campus content so
// a development install has something to browse. A store that already holds
// any user profile is left untouched.
func LoadSampleData(ctx context.Context, store repositories.RecordStore, lgr zerolog.Logger) error {
	existing, err := store.ListByPrefix(ctx, models.PrefixUser)
	if err != nil {
		return fmt.Errorf("check existing users: %w", err)
	}
	if len(existing) > 0 {
		lgr.Debug().Int("users", len(existing)).Msg("Store already populated, skipping sample data")
		return nil
	}

	lgr.Info().Msg("Loading sample campus data...")
	now := time.Now().UTC()

	demoUsers := []struct {
		email    string
		password string
		profile  models.Profile
	}{
		{
			email:    "aylin@demo.campus",
			password: "demo-pass-1",
			profile: models.Profile{
				FullName:   "Aylin Demir",
				University: "Istanbul Technical University",
				Department: "Computer Engineering",
				Year:       "3",
				Skills:     "go, python, algorithms",
			},
		},
		{
			email:    "mert@demo.campus",
			password: "demo-pass-2",
			profile: models.Profile{
				FullName:   "Mert Kaya",
				University: "Istanbul Technical University",
				Department: "Electrical Engineering",
				Year:       "2",
				Skills:     "matlab, circuits, python",
			},
		},
	}

	userIDs := make([]string, 0, len(demoUsers))
	for _, u := range demoUsers {
		hash, err := auth.HashPassword(u.password)
		if err != nil {
			return fmt.Errorf("hash sample password: %w", err)
		}

		userID := uuid.NewString()
		credential := models.Credential{UserID: userID, Email: u.email, PasswordHash: hash}
		if err := store.Set(ctx, models.PrefixCredential+u.email, credential); err != nil {
			return fmt.Errorf("store sample credential: %w", err)
		}

		profile := u.profile
		profile.ID = userID
		profile.Email = u.email
		profile.CreatedAt = now
		if err := store.Set(ctx, models.PrefixUser+userID, profile); err != nil {
			return fmt.Errorf("store sample profile: %w", err)
		}
		userIDs = append(userIDs, userID)
	}

	event := models.Event{
		ID:          repositories.NewRecordID(models.PrefixEvent, now),
		Title:       "Welcome Week Meetup",
		Description: "Open meetup for new students, all departments welcome.",
		Date:        now.AddDate(0, 0, 7).Format("2006-01-02"),
		Time:        "18:00",
		Location:    "Main Campus Courtyard",
		Category:    "social",
		CreatorID:   userIDs[0],
		Attendees:   []string{userIDs[0]},
		CreatedAt:   now,
	}
	if err := store.Set(ctx, event.ID, event); err != nil {
		return fmt.Errorf("store sample event: %w", err)
	}

	group := models.StudyGroup{
		ID:          repositories.NewRecordID(models.PrefixGroup, now),
		Subject:     "Algorithms Midterm Prep",
		Description: "Weekly sessions covering graphs and dynamic programming.",
		Date:        now.AddDate(0, 0, 3).Format("2006-01-02"),
		Time:        "16:00",
		Location:    "Library Room 2B",
		MaxMembers:  6,
		Members:     []string{userIDs[0]},
		CreatorID:   userIDs[0],
		University:  "Istanbul Technical University",
		CreatedAt:   now,
	}
	if err := store.Set(ctx, group.ID, group); err != nil {
		return fmt.Errorf("store sample group: %w", err)
	}

	resource := models.ExamResource{
		ID:           repositories.NewRecordID(models.PrefixExam, now),
		Course:       "Data Structures",
		Title:        "2025 Final with Solutions",
		Description:  "Full past paper with worked answers.",
		Type:         models.ResourcePastPapers,
		Year:         "2025",
		Semester:     "spring",
		UploaderID:   userIDs[1],
		UploaderName: demoUsers[1].profile.FullName,
		CreatedAt:    now,
	}
	if err := store.Set(ctx, resource.ID, resource); err != nil {
		return fmt.Errorf("store sample resource: %w", err)
	}

	listing := models.Listing{
		ID:          repositories.NewRecordID(models.PrefixListing, now),
		Title:       "Calculus Textbook (9th ed.)",
		Description: "Lightly used, no markings.",
		Price:       250,
		Category:    "books",
		Condition:   "good",
		SellerID:    userIDs[1],
		Status:      "available",
		CreatedAt:   now,
	}
	if err := store.Set(ctx, listing.ID, listing); err != nil {
		return fmt.Errorf("store sample listing: %w", err)
	}

	ride := models.Ride{
		ID:         repositories.NewRecordID(models.PrefixRide, now),
		From:       "Main Campus",
		To:         "Kadikoy",
		Date:       now.AddDate(0, 0, 1).Format("2006-01-02"),
		Time:       "17:30",
		Seats:      3,
		Price:      40,
		Notes:      "Leaving from gate C.",
		DriverID:   userIDs[0],
		Passengers: []string{},
		Status:     "available",
		CreatedAt:  now,
	}
	if err := store.Set(ctx, ride.ID, ride); err != nil {
		return fmt.Errorf("store sample ride: %w", err)
	}

	lgr.Info().Int("users", len(userIDs)).Msg("Sample campus data loaded")
	return nil
}
