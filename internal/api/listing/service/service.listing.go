// Package listingsvc chứa các service của domain listing.
package listingsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "pno_restaurants/internal/api/base/service"
	listingdto "pno_restaurants/internal/api/listing/dto"
	"pno_restaurants/internal/api/listing/models"
	"pno_restaurants/internal/common"
	"pno_restaurants/internal/global"
	"pno_restaurants/internal/utility"
)

// ListingService là cấu trúc chứa các phương thức liên quan đến listing
type ListingService struct {
	*basesvc.BaseServiceMongoImpl[models.Listing]
}

// NewListingService tạo mới ListingService
func NewListingService() (*ListingService, error) {
	listingCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Listings)
	if !exist {
		return nil, fmt.Errorf("failed to get listings collection: %v", common.ErrNotFound)
	}

	return &ListingService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Listing](listingCollection),
	}, nil
}

// Create tạo mới một listing
func (s *ListingService) Create(ctx context.Context, input *listingdto.ListingCreateInput) (*models.Listing, error) {
	status := input.Status
	if status == "" {
		status = models.ListingStatusPending
	}

	listing := &models.Listing{
		ID:        primitive.NewObjectID(),
		Title:     utility.SanitizeTextField(input.Title),
		OwnerID:   utility.String2ObjectID(input.OwnerID),
		Status:    status,
		TypeID:    utility.String2ObjectID(input.TypeID),
		CreatedAt: time.Now().Unix(),
		UpdatedAt: time.Now().Unix(),
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, *listing)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// IsOwner kiểm tra user có sở hữu listing không
func (s *ListingService) IsOwner(ctx context.Context, listingID primitive.ObjectID, userID primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": listingID, "ownerId": userID}
	return s.DocumentExists(ctx, filter)
}

// HasSubmittedListings kiểm tra user đã từng đăng listing nào chưa.
// Các listing hết hạn vẫn tính là đã đăng.
func (s *ListingService) HasSubmittedListings(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"ownerId": userID,
		"status": bson.M{"$in": []string{
			models.ListingStatusPublish,
			models.ListingStatusPending,
			models.ListingStatusExpired,
		}},
	}
	return s.DocumentExists(ctx, filter)
}
