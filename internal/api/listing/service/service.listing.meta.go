package listingsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "pno_restaurants/internal/api/base/service"
	"pno_restaurants/internal/api/listing/models"
	"pno_restaurants/internal/common"
	"pno_restaurants/internal/global"
)

// ListingMetaService là cấu trúc chứa các phương thức đọc/ghi metadata của listing.
// Mỗi cặp (listingId, key) chỉ có tối đa một record (unique index).
type ListingMetaService struct {
	*basesvc.BaseServiceMongoImpl[models.ListingMeta]
}

// NewListingMetaService tạo mới ListingMetaService
func NewListingMetaService() (*ListingMetaService, error) {
	metaCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ListingMeta)
	if !exist {
		return nil, fmt.Errorf("failed to get listing_meta collection: %v", common.ErrNotFound)
	}

	return &ListingMetaService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ListingMeta](metaCollection),
	}, nil
}

// GetValue lấy giá trị meta theo (listingId, key).
// Giá trị trả về giữ nguyên shape đã lưu, không ép kiểu.
// Trả về common.ErrNotFound nếu listing chưa có meta này.
func (s *ListingMetaService) GetValue(ctx context.Context, listingID primitive.ObjectID, key string) (interface{}, error) {
	meta, err := s.FindOne(ctx, bson.M{"listingId": listingID, "key": key}, nil)
	if err != nil {
		return nil, err
	}
	return meta.Value, nil
}

// SetValue ghi giá trị meta cho (listingId, key), tạo mới nếu chưa có
func (s *ListingMetaService) SetValue(ctx context.Context, listingID primitive.ObjectID, key string, value interface{}) error {
	filter := bson.M{"listingId": listingID, "key": key}
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"listingId": listingID,
			"key":       key,
			"value":     value,
		},
	}
	_, err := s.Upsert(ctx, filter, update)
	return err
}

// DeleteValue xóa giá trị meta của (listingId, key).
// Không coi meta vắng mặt là lỗi.
func (s *ListingMetaService) DeleteValue(ctx context.Context, listingID primitive.ObjectID, key string) error {
	err := s.DeleteOne(ctx, bson.M{"listingId": listingID, "key": key})
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return err
	}
	return nil
}
