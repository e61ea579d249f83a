package listingsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "pno_restaurants/internal/api/base/service"
	listingdto "pno_restaurants/internal/api/listing/dto"
	"pno_restaurants/internal/api/listing/models"
	"pno_restaurants/internal/common"
	"pno_restaurants/internal/global"
	"pno_restaurants/internal/utility"
)

// ListingFieldService là cấu trúc chứa các phương thức liên quan đến schema field của listing
type ListingFieldService struct {
	*basesvc.BaseServiceMongoImpl[models.ListingField]
}

// NewListingFieldService tạo mới ListingFieldService
func NewListingFieldService() (*ListingFieldService, error) {
	fieldCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ListingFields)
	if !exist {
		return nil, fmt.Errorf("failed to get listing_fields collection: %v", common.ErrNotFound)
	}

	return &ListingFieldService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ListingField](fieldCollection),
	}, nil
}

// Create khai báo một custom field mới
func (s *ListingFieldService) Create(ctx context.Context, input *listingdto.ListingFieldCreateInput) (*models.ListingField, error) {
	field := &models.ListingField{
		ID:        primitive.NewObjectID(),
		Name:      utility.SanitizeTextField(input.Name),
		Type:      input.Type,
		MetaKey:   input.MetaKey,
		Priority:  input.Priority,
		Required:  input.Required,
		CreatedAt: time.Now().Unix(),
		UpdatedAt: time.Now().Unix(),
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, *field)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ResolveRestaurantMetaKey tìm meta key của field kiểu restaurant đầu tiên theo priority.
// Trả về common.ErrFieldUnconfigured nếu schema chưa khai báo field restaurant
// hoặc field có metaKey rỗng — khi đó toàn bộ tính năng thực đơn coi như tắt.
func (s *ListingFieldService) ResolveRestaurantMetaKey(ctx context.Context) (string, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "priority", Value: 1}})
	field, err := s.FindOne(ctx, bson.M{"type": models.FieldTypeRestaurant}, opts)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrFieldUnconfigured
		}
		return "", err
	}
	if field.MetaKey == "" {
		return "", common.ErrFieldUnconfigured
	}
	return field.MetaKey, nil
}
