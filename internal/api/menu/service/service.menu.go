package menusvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	listingsvc "pno_restaurants/internal/api/listing/service"
	"pno_restaurants/internal/api/menu/models"
	"pno_restaurants/internal/common"
)

// MetaStore là store key-value theo listing mà menu được lưu vào
type MetaStore interface {
	GetValue(ctx context.Context, listingID primitive.ObjectID, key string) (interface{}, error)
	SetValue(ctx context.Context, listingID primitive.ObjectID, key string, value interface{}) error
}

// FieldCatalog tra cứu meta key của field kiểu restaurant trong schema listing
type FieldCatalog interface {
	ResolveRestaurantMetaKey(ctx context.Context) (string, error)
}

// MenuService đọc/ghi thực đơn của listing.
// Mọi thao tác đều tra meta key từ schema trước: schema chưa cấu hình field
// restaurant thì đọc trả về rỗng, ghi là no-op, store không bị đụng tới.
type MenuService struct {
	metaStore MetaStore
	catalog   FieldCatalog
}

// NewMenuService khởi tạo MenuService trên các service listing mặc định
func NewMenuService() (*MenuService, error) {
	metaService, err := listingsvc.NewListingMetaService()
	if err != nil {
		return nil, fmt.Errorf("failed to create listing meta service: %v", err)
	}

	fieldService, err := listingsvc.NewListingFieldService()
	if err != nil {
		return nil, fmt.Errorf("failed to create listing field service: %v", err)
	}

	return &MenuService{
		metaStore: metaService,
		catalog:   fieldService,
	}, nil
}

// NewMenuServiceWith khởi tạo MenuService với store và catalog tùy chọn
func NewMenuServiceWith(store MetaStore, catalog FieldCatalog) *MenuService {
	return &MenuService{
		metaStore: store,
		catalog:   catalog,
	}
}

// resolveKey tra meta key, phân biệt "chưa cấu hình" (key rỗng, không lỗi) với lỗi hạ tầng
func (s *MenuService) resolveKey(ctx context.Context) (string, error) {
	key, err := s.catalog.ResolveRestaurantMetaKey(ctx)
	if err != nil {
		if errors.Is(err, common.ErrFieldUnconfigured) {
			return "", nil
		}
		return "", err
	}
	return key, nil
}

// Configured cho biết schema đã có field kiểu restaurant với meta key chưa
func (s *MenuService) Configured(ctx context.Context) (bool, error) {
	key, err := s.resolveKey(ctx)
	if err != nil {
		return false, err
	}
	return key != "", nil
}

// Get trả về thực đơn hiện có của listing ở shape canonical.
// Listing chưa có thực đơn, dữ liệu sai shape, hoặc schema chưa cấu hình
// đều cho ra collection rỗng.
func (s *MenuService) Get(ctx context.Context, listingID primitive.ObjectID) (models.MenuCollection, error) {
	key, err := s.resolveKey(ctx)
	if err != nil {
		return nil, err
	}
	if key == "" {
		return models.MenuCollection{}, nil
	}

	raw, err := s.metaStore.GetValue(ctx, listingID, key)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.MenuCollection{}, nil
		}
		return nil, err
	}

	return DecodeCollection(raw), nil
}

// GetRaw trả về giá trị meta đúng như đã lưu, không chuẩn hóa shape.
// Dùng cho đường render công khai, nơi ToRenderShape tự xử lý shape cũ.
func (s *MenuService) GetRaw(ctx context.Context, listingID primitive.ObjectID) (interface{}, error) {
	key, err := s.resolveKey(ctx)
	if err != nil {
		return nil, err
	}
	if key == "" {
		return nil, nil
	}

	raw, err := s.metaStore.GetValue(ctx, listingID, key)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return raw, nil
}

// Put ghi một collection canonical đè lên thực đơn hiện có.
// Schema chưa cấu hình thì no-op, không ghi gì.
func (s *MenuService) Put(ctx context.Context, listingID primitive.ObjectID, collection models.MenuCollection) error {
	key, err := s.resolveKey(ctx)
	if err != nil {
		return err
	}
	if key == "" {
		return nil
	}
	if collection == nil {
		collection = models.MenuCollection{}
	}
	return s.metaStore.SetValue(ctx, listingID, key, collection)
}

// SaveGroups áp dữ liệu form sửa nhóm lên thực đơn của listing.
// Tên nhóm submit thay thế tên hiện có theo vị trí, món của nhóm cùng vị trí
// được giữ nguyên; danh sách rỗng xóa toàn bộ thực đơn.
// Trả về false khi schema chưa cấu hình field restaurant: không ghi gì,
// caller không được báo là đã lưu.
func (s *MenuService) SaveGroups(ctx context.Context, listingID primitive.ObjectID, submittedJSON string) (bool, error) {
	key, err := s.resolveKey(ctx)
	if err != nil {
		return false, err
	}
	if key == "" {
		return false, nil
	}

	existing := models.MenuCollection{}
	raw, err := s.metaStore.GetValue(ctx, listingID, key)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return false, err
	}
	if err == nil {
		existing = DecodeCollection(raw)
	}

	collection, err := NormalizeGroupSubmission(submittedJSON, existing)
	if err != nil {
		return false, err
	}

	if err := s.metaStore.SetValue(ctx, listingID, key, collection); err != nil {
		return false, err
	}
	return true, nil
}

// SaveItems dựng lại toàn bộ thực đơn từ dữ liệu form sửa món.
// Trả về các warning của những nhóm có JSON món hỏng; các nhóm đó vẫn được
// lưu với danh sách món rỗng. Form không gửi field món nào thì giữ nguyên
// thực đơn hiện có, xóa toàn bộ chỉ là semantic của form sửa nhóm.
// Trả về false khi schema chưa cấu hình field restaurant.
func (s *MenuService) SaveItems(ctx context.Context, listingID primitive.ObjectID, entries []models.ItemGroupEntry) (bool, []string, error) {
	key, err := s.resolveKey(ctx)
	if err != nil {
		return false, nil, err
	}
	if key == "" {
		return false, nil, nil
	}

	if len(entries) == 0 {
		return true, nil, nil
	}

	collection, warnings := NormalizeItemSubmission(entries)
	if err := s.metaStore.SetValue(ctx, listingID, key, collection); err != nil {
		return false, warnings, err
	}
	return true, warnings, nil
}
