package models

import "time"

// Record key prefixes used throughout the store. A full record key is
// "<prefix><id>", e.g. "user:f81d...".
const (
	PrefixUser       = "user:"
	PrefixCredential = "auth:"
	PrefixConnection = "connections:"
	PrefixEvent      = "event:"
	PrefixGroup      = "group:"
	PrefixListing    = "listing:"
	PrefixLostFound  = "lostfound:"
	PrefixRide       = "ride:"
	PrefixExam       = "exam:"
)

// Profile is a user profile record. The ID is issued at signup and is stable
// for the lifetime of the account; profiles are never hard-deleted.
type Profile struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	University string    `json:"university"`
	Department string    `json:"department"`
	Year       string    `json:"year"`
	Skills     string    `json:"skills"` // comma-separated free text
	CreatedAt  time.Time `json:"createdAt"`
}

// Credential holds login material, keyed by normalized email under "auth:".
type Credential struct {
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// ConnectionState holds the social-graph state for one user. The three slices
// are disjoint per counterpart and kept sorted so writes are canonical:
// Connections is mutual and symmetric across both records, Pending mirrors the
// other side's Received.
type ConnectionState struct {
	UserID      string   `json:"userId"`
	Connections []string `json:"connections"`
	Pending     []string `json:"pending"`
	Received    []string `json:"received"`
}

// Event is a campus event record.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	CreatorID   string    `json:"creatorId"`
	Attendees   []string  `json:"attendees"`
	CreatedAt   time.Time `json:"createdAt"`
}

// StudyGroup is a capacity-limited study group. Members is an arrival-ordered
// list; the creator is always its first element. len(Members) never exceeds
// MaxMembers and a user appears at most once.
type StudyGroup struct {
	ID          string    `json:"id"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	MaxMembers  int       `json:"maxMembers"`
	Members     []string  `json:"members"`
	CreatorID   string    `json:"creatorId"`
	University  string    `json:"university"`
	CreatedAt   time.Time `json:"createdAt"`
}

// IsFull reports whether the group has reached capacity.
func (g *StudyGroup) IsFull() bool {
	return g.MaxMembers > 0 && len(g.Members) >= g.MaxMembers
}

// ResourceType enumerates the kinds of shared exam material.
type ResourceType string

const (
	ResourcePastPapers ResourceType = "past-papers"
	ResourceNotes      ResourceType = "notes"
	ResourceCheatsheet ResourceType = "cheatsheet"
	ResourceSolutions  ResourceType = "solutions"
	ResourceSummary    ResourceType = "summary"
	ResourceFlashcards ResourceType = "flashcards"
)

// ExamResource is a shared exam-preparation resource. Downloads and Helpful
// are monotonically non-decreasing counters.
type ExamResource struct {
	ID           string       `json:"id"`
	Course       string       `json:"course"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Type         ResourceType `json:"type"`
	Year         string       `json:"year"`
	Semester     string       `json:"semester"`
	FileURL      string       `json:"fileUrl,omitempty"`
	UploaderID   string       `json:"uploaderId"`
	UploaderName string       `json:"uploaderName"`
	Downloads    int          `json:"downloads"`
	Helpful      int          `json:"helpful"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// Listing is a marketplace listing.
type Listing struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Condition   string    `json:"condition"`
	SellerID    string    `json:"sellerId"`
	Status      string    `json:"status"` // available, sold
	CreatedAt   time.Time `json:"createdAt"`
}

// LostFoundItem is a lost-and-found report.
type LostFoundItem struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"` // lost or found
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        string    `json:"date"`
	Contact     string    `json:"contact"`
	ReporterID  string    `json:"reporterId"`
	Status      string    `json:"status"` // active, resolved
	CreatedAt   time.Time `json:"createdAt"`
}

// Ride is a ride-share offer. Seats is the passenger capacity; the driver is
// not counted in Passengers.
type Ride struct {
	ID         string    `json:"id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Seats      int       `json:"seats"`
	Price      float64   `json:"price"`
	Notes      string    `json:"notes"`
	DriverID   string    `json:"driverId"`
	Passengers []string  `json:"passengers"`
	Status     string    `json:"status"` // available, full
	CreatedAt  time.Time `json:"createdAt"`
}

// IsFull reports whether every seat is taken.
func (r *Ride) IsFull() bool {
	return r.Seats > 0 && len(r.Passengers) >= r.Seats
}
