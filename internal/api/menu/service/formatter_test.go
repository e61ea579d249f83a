package menusvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pno_restaurants/internal/api/menu/models"
)

func TestDecodeCollection_FlatShape(t *testing.T) {
	raw := primitive.A{
		primitive.M{
			"group_title": "Starters",
			"menu_items": primitive.A{
				primitive.M{"item_name": "Soup", "item_price": "3.50", "item_description": "Of the day"},
			},
		},
	}

	collection := DecodeCollection(raw)
	require.Len(t, collection, 1)
	assert.Equal(t, "Starters", collection[0].GroupTitle)
	require.Len(t, collection[0].MenuItems, 1)
	assert.Equal(t, "Soup", collection[0].MenuItems[0].ItemName)
	assert.Equal(t, "3.50", collection[0].MenuItems[0].ItemPrice)
	assert.Equal(t, "Of the day", collection[0].MenuItems[0].ItemDescription)
}

// Dữ liệu cũ lưu từng field dưới dạng [{value: X}] phải đọc ra giống hệt shape phẳng
func TestDecodeCollection_WrappedLegacyShape(t *testing.T) {
	raw := primitive.A{
		primitive.M{
			"group_title": primitive.A{primitive.M{"value": "Starters"}},
			"menu_items": primitive.A{
				primitive.M{
					"item_name":  primitive.A{primitive.M{"value": "Soup"}},
					"item_price": primitive.A{primitive.M{"value": "3.50"}},
				},
			},
		},
	}

	collection := DecodeCollection(raw)
	require.Len(t, collection, 1)
	assert.Equal(t, "Starters", collection[0].GroupTitle)
	require.Len(t, collection[0].MenuItems, 1)
	assert.Equal(t, "Soup", collection[0].MenuItems[0].ItemName)
	assert.Equal(t, "3.50", collection[0].MenuItems[0].ItemPrice)
	assert.Equal(t, "", collection[0].MenuItems[0].ItemDescription)
}

func TestDecodeCollection_NumericScalars(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{
			"group_title": "Drinks",
			"menu_items": []interface{}{
				map[string]interface{}{"item_name": "Cola", "item_price": float64(2)},
				map[string]interface{}{"item_name": "Beer", "item_price": int32(5)},
			},
		},
	}

	collection := DecodeCollection(raw)
	require.Len(t, collection, 1)
	assert.Equal(t, "2", collection[0].MenuItems[0].ItemPrice)
	assert.Equal(t, "5", collection[0].MenuItems[1].ItemPrice)
}

func TestDecodeCollection_GarbageNeverErrors(t *testing.T) {
	assert.Empty(t, DecodeCollection(nil))
	assert.Empty(t, DecodeCollection("not a menu"))
	assert.Empty(t, DecodeCollection(42))
	assert.Empty(t, DecodeCollection(primitive.M{"group_title": "orphan"}))

	// Phần tử sai shape bị bỏ qua, phần tử hợp lệ vẫn đọc được
	mixed := primitive.A{
		"scalar",
		primitive.M{"group_title": "Valid", "menu_items": primitive.A{}},
	}
	collection := DecodeCollection(mixed)
	require.Len(t, collection, 1)
	assert.Equal(t, "Valid", collection[0].GroupTitle)
}

func TestNormalizeGroupSubmission_CarriesItemsByPosition(t *testing.T) {
	existing := models.MenuCollection{
		{GroupTitle: "Old A", MenuItems: []models.MenuItem{{ItemName: "Soup"}}},
		{GroupTitle: "Old B", MenuItems: []models.MenuItem{{ItemName: "Steak"}}},
	}

	// Đổi tên cả hai nhóm; món phải đi theo vị trí chứ không theo tên
	collection, err := NormalizeGroupSubmission(`[{"group_name":"New B"},{"group_name":"New A"}]`, existing)
	require.NoError(t, err)
	require.Len(t, collection, 2)
	assert.Equal(t, "New B", collection[0].GroupTitle)
	assert.Equal(t, "Soup", collection[0].MenuItems[0].ItemName)
	assert.Equal(t, "New A", collection[1].GroupTitle)
	assert.Equal(t, "Steak", collection[1].MenuItems[0].ItemName)
}

func TestNormalizeGroupSubmission_NewGroupHasNoItems(t *testing.T) {
	existing := models.MenuCollection{
		{GroupTitle: "A", MenuItems: []models.MenuItem{{ItemName: "Soup"}}},
	}

	collection, err := NormalizeGroupSubmission(`[{"group_name":"A"},{"group_name":"B"}]`, existing)
	require.NoError(t, err)
	require.Len(t, collection, 2)
	assert.Len(t, collection[0].MenuItems, 1)
	assert.Empty(t, collection[1].MenuItems)
}

// Danh sách rỗng nghĩa là xóa toàn bộ thực đơn, kể cả các món đang có
func TestNormalizeGroupSubmission_EmptyClearsEverything(t *testing.T) {
	existing := models.MenuCollection{
		{GroupTitle: "A", MenuItems: []models.MenuItem{{ItemName: "Soup"}}},
	}

	collection, err := NormalizeGroupSubmission("", existing)
	require.NoError(t, err)
	assert.Empty(t, collection)

	collection, err = NormalizeGroupSubmission("[]", existing)
	require.NoError(t, err)
	assert.Empty(t, collection)
}

func TestNormalizeGroupSubmission_MalformedJSONRejected(t *testing.T) {
	existing := models.MenuCollection{
		{GroupTitle: "A", MenuItems: []models.MenuItem{{ItemName: "Soup"}}},
	}

	_, err := NormalizeGroupSubmission(`{"not":"an array"`, existing)
	assert.Error(t, err)
}

func TestNormalizeGroupSubmission_SanitizesTitles(t *testing.T) {
	collection, err := NormalizeGroupSubmission(`[{"group_name":"<script>x</script>  Starters "}]`, nil)
	require.NoError(t, err)
	require.Len(t, collection, 1)
	assert.Equal(t, "x Starters", collection[0].GroupTitle)
}

func TestNormalizeItemSubmission_RebuildsWholeCollection(t *testing.T) {
	entries := []models.ItemGroupEntry{
		{GroupName: "Starters", ItemsJSON: `[{"item_name":"Soup","item_price":"3.50"}]`},
		{GroupName: "Mains", ItemsJSON: `[{"item_name":"Steak","item_price":"15"},{"item_name":"Salad"}]`},
	}

	collection, warnings := NormalizeItemSubmission(entries)
	assert.Empty(t, warnings)
	require.Len(t, collection, 2)
	assert.Equal(t, "Starters", collection[0].GroupTitle)
	require.Len(t, collection[0].MenuItems, 1)
	require.Len(t, collection[1].MenuItems, 2)
	assert.Equal(t, "Salad", collection[1].MenuItems[1].ItemName)
	assert.Equal(t, "", collection[1].MenuItems[1].ItemPrice)
}

// Tên nhóm trùng nhau được giữ thành các nhóm riêng biệt theo thứ tự submit
func TestNormalizeItemSubmission_DuplicateNamesPreserved(t *testing.T) {
	entries := []models.ItemGroupEntry{
		{GroupName: "Specials", ItemsJSON: `[{"item_name":"A"}]`},
		{GroupName: "Specials", ItemsJSON: `[{"item_name":"B"}]`},
	}

	collection, warnings := NormalizeItemSubmission(entries)
	assert.Empty(t, warnings)
	require.Len(t, collection, 2)
	assert.Equal(t, "A", collection[0].MenuItems[0].ItemName)
	assert.Equal(t, "B", collection[1].MenuItems[0].ItemName)
}

func TestNormalizeItemSubmission_MalformedGroupKeptEmpty(t *testing.T) {
	entries := []models.ItemGroupEntry{
		{GroupName: "Good", ItemsJSON: `[{"item_name":"Soup"}]`},
		{GroupName: "Bad", ItemsJSON: `{{{`},
	}

	collection, warnings := NormalizeItemSubmission(entries)
	require.Len(t, collection, 2)
	assert.Len(t, collection[0].MenuItems, 1)
	assert.Equal(t, "Bad", collection[1].GroupTitle)
	assert.Empty(t, collection[1].MenuItems)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Bad")
}

func TestNormalizeItemSubmission_SanitizesFields(t *testing.T) {
	entries := []models.ItemGroupEntry{
		{GroupName: " Drinks ", ItemsJSON: `[{"item_name":"<b>Cola</b>","item_price":" 2.00 ","item_description":"line1\nline2"}]`},
	}

	collection, _ := NormalizeItemSubmission(entries)
	require.Len(t, collection, 1)
	assert.Equal(t, "Drinks", collection[0].GroupTitle)
	item := collection[0].MenuItems[0]
	assert.Equal(t, "Cola", item.ItemName)
	assert.Equal(t, "2.00", item.ItemPrice)
	assert.Equal(t, "line1\nline2", item.ItemDescription)
}

func TestToFormDisplayShape(t *testing.T) {
	collection := models.MenuCollection{
		{GroupTitle: "A", MenuItems: []models.MenuItem{{ItemName: "Soup"}}},
		{GroupTitle: "B"},
	}

	entries := ToFormDisplayShape(collection)
	require.Len(t, entries, 2)
	assert.Equal(t, "A", entries[0].GroupName)
	assert.Equal(t, "B", entries[1].GroupName)
}

func TestToRenderShape_FormatsPrices(t *testing.T) {
	raw := primitive.A{
		primitive.M{
			"group_title": "Mains",
			"menu_items": primitive.A{
				primitive.M{"item_name": "Steak", "item_price": "15.50"},
				primitive.M{"item_name": "Water", "item_price": ""},
				primitive.M{"item_name": "Market fish", "item_price": "ask staff"},
			},
		},
	}

	rendered := ToRenderShape(raw, "$", "left")
	require.Len(t, rendered, 1)
	require.Len(t, rendered[0].MenuItems, 3)
	assert.Equal(t, "$15.50", rendered[0].MenuItems[0].ItemPrice)
	// Giá rỗng giữ nguyên rỗng để layer hiển thị bỏ qua markup giá
	assert.Equal(t, "", rendered[0].MenuItems[1].ItemPrice)
	// Giá không phải số giữ nguyên nội dung
	assert.Equal(t, "ask staff", rendered[0].MenuItems[2].ItemPrice)
}

// Round-trip: lưu qua item submission rồi decode lại phải ra đúng dữ liệu đã submit
func TestItemSubmissionRoundTrip(t *testing.T) {
	entries := []models.ItemGroupEntry{
		{GroupName: "Starters", ItemsJSON: `[{"item_name":"Soup","item_price":"3.50","item_description":"Daily"}]`},
	}

	saved, warnings := NormalizeItemSubmission(entries)
	require.Empty(t, warnings)

	// Mô phỏng decode từ giá trị interface{} generic như khi đọc lại từ store
	raw := []interface{}{
		map[string]interface{}{
			"group_title": saved[0].GroupTitle,
			"menu_items": []interface{}{
				map[string]interface{}{
					"item_name":        saved[0].MenuItems[0].ItemName,
					"item_price":       saved[0].MenuItems[0].ItemPrice,
					"item_description": saved[0].MenuItems[0].ItemDescription,
				},
			},
		},
	}
	decoded := DecodeCollection(raw)
	assert.Equal(t, saved, decoded)
}

func TestToItemsFormShape(t *testing.T) {
	collection := models.MenuCollection{
		{GroupTitle: "Starters", MenuItems: []models.MenuItem{{ItemName: "Soup"}}},
		{GroupTitle: "Mains"},
	}

	seed := ToItemsFormShape(collection, 0)
	items, ok := seed["fooditems"].([]models.MenuItem)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, "Soup", items[0].ItemName)

	// Nhóm chưa có món cho ra danh sách rỗng, không phải nil
	seed = ToItemsFormShape(collection, 1)
	items, ok = seed["fooditems"].([]models.MenuItem)
	require.True(t, ok)
	assert.Empty(t, items)

	// Index ngoài phạm vi cũng cho ra danh sách rỗng
	seed = ToItemsFormShape(collection, 5)
	items, ok = seed["fooditems"].([]models.MenuItem)
	require.True(t, ok)
	assert.Empty(t, items)
}

// Dữ liệu đọc lại từ store decode ra primitive.A của primitive.D
// (shape mặc định của driver khi decode vào interface{}), phải ra đúng
// collection đã lưu chứ không phải collection rỗng
func TestDecodeCollectionAfterBSONRoundTrip(t *testing.T) {
	saved := models.MenuCollection{
		{
			GroupTitle: "Starters",
			MenuItems: []models.MenuItem{
				{ItemName: "Soup", ItemPrice: "3.50", ItemDescription: "Of the day"},
				{ItemName: "Spring rolls", ItemPrice: "4.50", ItemDescription: ""},
			},
		},
		{GroupTitle: "Mains", MenuItems: []models.MenuItem{}},
	}

	type metaDoc struct {
		Value interface{} `bson:"value"`
	}
	data, err := bson.Marshal(metaDoc{Value: saved})
	require.NoError(t, err)

	var out metaDoc
	require.NoError(t, bson.Unmarshal(data, &out))

	decoded := DecodeCollection(out.Value)
	assert.Equal(t, saved, decoded)

	// Sửa tên nhóm trên dữ liệu đã qua vòng persist vẫn giữ được món theo vị trí
	normalized, err := NormalizeGroupSubmission(`[{"group_name":"Entrées"},{"group_name":"Mains"}]`, decoded)
	require.NoError(t, err)
	require.Len(t, normalized, 2)
	require.Len(t, normalized[0].MenuItems, 2)
	assert.Equal(t, "Soup", normalized[0].MenuItems[0].ItemName)

	// Đường render công khai cũng đọc được shape đã persist
	rendered := ToRenderShape(out.Value, "$", "left")
	require.Len(t, rendered, 2)
	assert.Equal(t, "$3.50", rendered[0].MenuItems[0].ItemPrice)
}
