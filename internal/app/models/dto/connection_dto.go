package dto

import "github.com/muktarbdulkader/campus-connector/internal/app/models"

// ConnectionRequestPayload targets another user with a connection request.
type ConnectionRequestPayload struct {
	TargetUserID string `json:"targetUserId" binding:"required"`
}

// ConnectionDecisionPayload accepts or rejects a received request.
type ConnectionDecisionPayload struct {
	RequesterID string `json:"requesterId" binding:"required"`
}

// ConnectionsResponse is the caller's full graph state. Accepted connections
// are hydrated into profiles; pending and received stay as raw user ids.
type ConnectionsResponse struct {
	Connections []models.Profile `json:"connections"`
	Pending     []string         `json:"pending"`
	Received    []string         `json:"received"`
}
