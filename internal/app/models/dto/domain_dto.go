package dto

import "github.com/muktarbdulkader/campus-connector/internal/app/models"

// CreateEventRequest is the payload for creating a campus event.
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Category    string `json:"category"`
}

// CreateGroupRequest is the payload for creating a study group.
type CreateGroupRequest struct {
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	MaxMembers  int    `json:"maxMembers" binding:"required,min=1"`
	University  string `json:"university"`
}

// CreateListingRequest is the payload for creating a marketplace listing.
type CreateListingRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Condition   string  `json:"condition"`
}

// CreateLostFoundRequest is the payload for reporting a lost or found item.
type CreateLostFoundRequest struct {
	Type        string `json:"type" binding:"required,oneof=lost found"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Contact     string `json:"contact"`
}

// UpdateLostFoundRequest carries partial updates to a report; nil fields are
// left untouched.
type UpdateLostFoundRequest struct {
	Status      *string `json:"status"`
	Description *string `json:"description"`
	Contact     *string `json:"contact"`
}

// CreateRideRequest is the payload for offering a ride.
type CreateRideRequest struct {
	From  string  `json:"from" binding:"required"`
	To    string  `json:"to" binding:"required"`
	Date  string  `json:"date"`
	Time  string  `json:"time"`
	Seats int     `json:"seats" binding:"required,min=1"`
	Price float64 `json:"price"`
	Notes string  `json:"notes"`
}

// CreateResourceRequest is the payload for sharing an exam resource.
type CreateResourceRequest struct {
	Course      string              `json:"course" binding:"required"`
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Type        models.ResourceType `json:"type" binding:"required,oneof=past-papers notes cheatsheet solutions summary flashcards"`
	Year        string              `json:"year"`
	Semester    string              `json:"semester"`
	FileURL     string              `json:"fileUrl"`
}

// DashboardResponse aggregates the caller's activity counts.
type DashboardResponse struct {
	EventsJoined    int `json:"eventsJoined"`
	GroupsJoined    int `json:"groupsJoined"`
	ActiveListings  int `json:"activeListings"`
	RidesOffered    int `json:"ridesOffered"`
	ResourcesShared int `json:"resourcesShared"`
	Connections     int `json:"connections"`
}
