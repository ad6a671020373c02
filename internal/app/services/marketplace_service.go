package services

import (
	"context"
	"fmt"
	"time"

	"github.com/muktarbdulkader/campus-connector/internal/app/models"
	"github.com/muktarbdulkader/campus-connector/internal/app/models/dto"
	"github.com/muktarbdulkader/campus-connector/internal/app/repositories"
	"github.com/muktarbdulkader/campus-connector/internal/pkg/apperrors"
)

// MarketplaceService defines the interface for marketplace operations
type MarketplaceService interface {
	ListListings(ctx context.Context) ([]models.Listing, error)
	CreateListing(ctx context.Context, sellerID string, req *dto.CreateListingRequest) (*models.Listing, error)
	DeleteListing(ctx context.Context, userID, listingID string) error
}

// marketplaceServiceImpl implements MarketplaceService
type marketplaceServiceImpl struct {
	store repositories.RecordStore
}

// NewMarketplaceService creates a new MarketplaceService
func NewMarketplaceService(store repositories.RecordStore) MarketplaceService {
	return &marketplaceServiceImpl{store: store}
}

// ListListings returns all listings, key-ordered.
func (s *marketplaceServiceImpl) ListListings(ctx context.Context) ([]models.Listing, error) {
	return repositories.ListRecords[models.Listing](ctx, s.store, models.PrefixListing)
}

// CreateListing stores a new listing with status "available".
func (s *marketplaceServiceImpl) CreateListing(ctx context.Context, sellerID string, req *dto.CreateListingRequest) (*models.Listing, error) {
	now := time.Now().UTC()
	listing := models.Listing{
		ID:          repositories.NewRecordID(models.PrefixListing, now),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Condition:   req.Condition,
		SellerID:    sellerID,
		Status:      "available",
		CreatedAt:   now,
	}

	if err := s.store.Set(ctx, listing.ID, listing); err != nil {
		return nil, fmt.Errorf("store listing: %w", err)
	}
	return &listing, nil
}

// DeleteListing removes a listing. Only the seller may delete it.
func (s *marketplaceServiceImpl) DeleteListing(ctx context.Context, userID, listingID string) error {
	if !hasRecordPrefix(listingID, models.PrefixListing) {
		return apperrors.ErrListingNotFound
	}

	listing, _, err := repositories.GetRecord[models.Listing](ctx, s.store, listingID)
	if err != nil {
		return err
	}
	if listing == nil {
		return apperrors.ErrListingNotFound
	}
	if listing.SellerID != userID {
		return apperrors.NewForbiddenError("Only the seller can delete this listing")
	}

	return s.store.Delete(ctx, listingID)
}
