package menusvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pno_restaurants/internal/api/menu/models"
	"pno_restaurants/internal/common"
)

// stubMetaStore là MetaStore trong bộ nhớ, đếm số lần ghi để kiểm tra no-op
type stubMetaStore struct {
	values   map[string]interface{}
	getCalls int
	setCalls int
}

func newStubMetaStore() *stubMetaStore {
	return &stubMetaStore{values: make(map[string]interface{})}
}

func (s *stubMetaStore) GetValue(ctx context.Context, listingID primitive.ObjectID, key string) (interface{}, error) {
	s.getCalls++
	value, ok := s.values[listingID.Hex()+":"+key]
	if !ok {
		return nil, common.ErrNotFound
	}
	return value, nil
}

func (s *stubMetaStore) SetValue(ctx context.Context, listingID primitive.ObjectID, key string, value interface{}) error {
	s.setCalls++
	s.values[listingID.Hex()+":"+key] = value
	return nil
}

// stubCatalog trả về meta key cố định hoặc báo schema chưa cấu hình
type stubCatalog struct {
	metaKey string
}

func (s *stubCatalog) ResolveRestaurantMetaKey(ctx context.Context) (string, error) {
	if s.metaKey == "" {
		return "", common.ErrFieldUnconfigured
	}
	return s.metaKey, nil
}

func TestMenuService_SaveAndGet(t *testing.T) {
	store := newStubMetaStore()
	svc := NewMenuServiceWith(store, &stubCatalog{metaKey: "restaurant_menu"})
	listingID := primitive.NewObjectID()

	saved, err := svc.SaveGroups(context.Background(), listingID, `[{"group_name":"Starters"},{"group_name":"Mains"}]`)
	require.NoError(t, err)
	assert.True(t, saved)

	collection, err := svc.Get(context.Background(), listingID)
	require.NoError(t, err)
	require.Len(t, collection, 2)
	assert.Equal(t, "Starters", collection[0].GroupTitle)
	assert.Equal(t, "Mains", collection[1].GroupTitle)
}

func TestMenuService_SaveGroupsKeepsExistingItems(t *testing.T) {
	store := newStubMetaStore()
	svc := NewMenuServiceWith(store, &stubCatalog{metaKey: "restaurant_menu"})
	listingID := primitive.NewObjectID()

	_, _, err := svc.SaveItems(context.Background(), listingID, []models.ItemGroupEntry{
		{GroupName: "Starters", ItemsJSON: `[{"item_name":"Soup"}]`},
	})
	require.NoError(t, err)

	// Đổi tên nhóm qua form nhóm; món phải được giữ lại
	_, err = svc.SaveGroups(context.Background(), listingID, `[{"group_name":"Entrées"}]`)
	require.NoError(t, err)

	collection, err := svc.Get(context.Background(), listingID)
	require.NoError(t, err)
	require.Len(t, collection, 1)
	assert.Equal(t, "Entrées", collection[0].GroupTitle)
	require.Len(t, collection[0].MenuItems, 1)
	assert.Equal(t, "Soup", collection[0].MenuItems[0].ItemName)
}

func TestMenuService_SaveGroupsEmptyClears(t *testing.T) {
	store := newStubMetaStore()
	svc := NewMenuServiceWith(store, &stubCatalog{metaKey: "restaurant_menu"})
	listingID := primitive.NewObjectID()

	_, _, err := svc.SaveItems(context.Background(), listingID, []models.ItemGroupEntry{
		{GroupName: "Starters", ItemsJSON: `[{"item_name":"Soup"}]`},
	})
	require.NoError(t, err)

	_, err = svc.SaveGroups(context.Background(), listingID, "")
	require.NoError(t, err)

	collection, err := svc.Get(context.Background(), listingID)
	require.NoError(t, err)
	assert.Empty(t, collection)
}

func TestMenuService_MalformedGroupJSONLeavesStoreUntouched(t *testing.T) {
	store := newStubMetaStore()
	svc := NewMenuServiceWith(store, &stubCatalog{metaKey: "restaurant_menu"})
	listingID := primitive.NewObjectID()

	_, err := svc.SaveGroups(context.Background(), listingID, `[{"group_name":"A"}]`)
	require.NoError(t, err)
	writesBefore := store.setCalls

	_, err = svc.SaveGroups(context.Background(), listingID, `not json`)
	assert.Error(t, err)
	assert.Equal(t, writesBefore, store.setCalls)
}

// Schema chưa cấu hình field restaurant: đọc trả về rỗng, ghi là no-op,
// store không bị đụng tới
func TestMenuService_UnconfiguredFieldIsNoOp(t *testing.T) {
	store := newStubMetaStore()
	svc := NewMenuServiceWith(store, &stubCatalog{})
	listingID := primitive.NewObjectID()

	collection, err := svc.Get(context.Background(), listingID)
	require.NoError(t, err)
	assert.Empty(t, collection)

	saved, err := svc.SaveGroups(context.Background(), listingID, `[{"group_name":"A"}]`)
	require.NoError(t, err)
	assert.False(t, saved)

	saved, warnings, err := svc.SaveItems(context.Background(), listingID, []models.ItemGroupEntry{
		{GroupName: "A", ItemsJSON: `[{"item_name":"Soup"}]`},
	})
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Empty(t, warnings)

	err = svc.Put(context.Background(), listingID, models.MenuCollection{{GroupTitle: "A"}})
	require.NoError(t, err)

	assert.Zero(t, store.getCalls)
	assert.Zero(t, store.setCalls)
}

func TestMenuService_SaveItemsReturnsWarnings(t *testing.T) {
	store := newStubMetaStore()
	svc := NewMenuServiceWith(store, &stubCatalog{metaKey: "restaurant_menu"})
	listingID := primitive.NewObjectID()

	_, warnings, err := svc.SaveItems(context.Background(), listingID, []models.ItemGroupEntry{
		{GroupName: "Good", ItemsJSON: `[{"item_name":"Soup"}]`},
		{GroupName: "Broken", ItemsJSON: `]`},
	})
	require.NoError(t, err)
	require.Len(t, warnings, 1)

	// Nhóm hỏng vẫn được lưu với danh sách món rỗng
	collection, err := svc.Get(context.Background(), listingID)
	require.NoError(t, err)
	require.Len(t, collection, 2)
	assert.Empty(t, collection[1].MenuItems)
}

func TestMenuService_GetRawReturnsStoredShape(t *testing.T) {
	store := newStubMetaStore()
	svc := NewMenuServiceWith(store, &stubCatalog{metaKey: "restaurant_menu"})
	listingID := primitive.NewObjectID()

	legacy := primitive.A{primitive.M{"group_title": primitive.A{primitive.M{"value": "Starters"}}}}
	store.values[listingID.Hex()+":restaurant_menu"] = legacy

	raw, err := svc.GetRaw(context.Background(), listingID)
	require.NoError(t, err)
	assert.Equal(t, legacy, raw)

	// Đường render vẫn đọc được shape cũ
	rendered := ToRenderShape(raw, "$", "left")
	require.Len(t, rendered, 1)
	assert.Equal(t, "Starters", rendered[0].GroupTitle)
}

func TestMenuService_Configured(t *testing.T) {
	store := newStubMetaStore()

	svc := NewMenuServiceWith(store, &stubCatalog{metaKey: "restaurant_menu"})
	configured, err := svc.Configured(context.Background())
	require.NoError(t, err)
	assert.True(t, configured)

	// Schema chưa có field restaurant thì báo chưa cấu hình, không lỗi
	svc = NewMenuServiceWith(store, &stubCatalog{metaKey: ""})
	configured, err = svc.Configured(context.Background())
	require.NoError(t, err)
	assert.False(t, configured)
}

// Form sửa món submit không kèm field món nào: thực đơn hiện có giữ nguyên,
// xóa toàn bộ chỉ là semantic của form sửa nhóm
func TestMenuService_SaveItemsEmptyKeepsExistingMenu(t *testing.T) {
	store := newStubMetaStore()
	svc := NewMenuServiceWith(store, &stubCatalog{metaKey: "restaurant_menu"})
	listingID := primitive.NewObjectID()

	saved, _, err := svc.SaveItems(context.Background(), listingID, []models.ItemGroupEntry{
		{GroupName: "Starters", ItemsJSON: `[{"item_name":"Soup"}]`},
	})
	require.NoError(t, err)
	assert.True(t, saved)
	writesBefore := store.setCalls

	saved, warnings, err := svc.SaveItems(context.Background(), listingID, nil)
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Empty(t, warnings)
	assert.Equal(t, writesBefore, store.setCalls)

	collection, err := svc.Get(context.Background(), listingID)
	require.NoError(t, err)
	require.Len(t, collection, 1)
	assert.Equal(t, "Starters", collection[0].GroupTitle)
}
