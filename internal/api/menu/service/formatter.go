// Package menusvc chứa service và các hàm chuyển đổi dữ liệu của domain menu.
//
// Thực đơn tồn tại ở ba shape: shape lưu trong DB (canonical), hai shape submit
// từ form (form nhóm và form món), và shape hiển thị công khai. Các hàm trong
// file này chuyển đổi giữa các shape đó, thuần túy không I/O.
package menusvc

import (
	"encoding/json"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pno_restaurants/internal/api/menu/models"
	"pno_restaurants/internal/common"
	"pno_restaurants/internal/utility"
)

// ====================================
// DECODE SHAPE LƯU TRỮ
// ====================================

// asSlice ép một giá trị BSON đã decode về slice nếu có thể
func asSlice(v interface{}) ([]interface{}, bool) {
	switch val := v.(type) {
	case primitive.A:
		return []interface{}(val), true
	case []interface{}:
		return val, true
	}
	return nil, false
}

// asMap ép một giá trị BSON đã decode về map nếu có thể.
// Driver decode document lồng trong interface{} ra primitive.D mặc định,
// nên phải nhận cả shape đó bên cạnh primitive.M.
func asMap(v interface{}) (map[string]interface{}, bool) {
	switch val := v.(type) {
	case primitive.M:
		return map[string]interface{}(val), true
	case map[string]interface{}:
		return val, true
	case primitive.D:
		return val.Map(), true
	}
	return nil, false
}

// unwrapScalar đọc một field scalar từ dữ liệu đã lưu, chấp nhận cả hai shape lịch sử:
// shape phẳng ("V") và shape cũ bọc giá trị ([{value: "V"}]).
// Field không đọc được trả về chuỗi rỗng.
func unwrapScalar(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	}

	// Shape bọc giá trị: [{value: X}]
	if arr, ok := asSlice(v); ok {
		if len(arr) == 0 {
			return ""
		}
		if m, ok := asMap(arr[0]); ok {
			if inner, exists := m["value"]; exists {
				return unwrapScalar(inner)
			}
		}
		return ""
	}

	// Một số dữ liệu cũ lưu thẳng {value: X} không bọc array
	if m, ok := asMap(v); ok {
		if inner, exists := m["value"]; exists {
			return unwrapScalar(inner)
		}
	}

	return ""
}

// DecodeCollection chuẩn hóa giá trị meta đã lưu (shape tùy ý) về MenuCollection canonical.
// Dữ liệu vắng mặt hoặc sai shape cho ra collection rỗng, không bao giờ lỗi.
func DecodeCollection(raw interface{}) models.MenuCollection {
	// Giá trị chưa qua vòng BSON (vừa ghi trong cùng process) đã ở shape canonical
	switch val := raw.(type) {
	case models.MenuCollection:
		return val
	case []models.MenuGroup:
		return models.MenuCollection(val)
	}

	arr, ok := asSlice(raw)
	if !ok {
		return models.MenuCollection{}
	}

	collection := make(models.MenuCollection, 0, len(arr))
	for _, elem := range arr {
		groupMap, ok := asMap(elem)
		if !ok {
			continue
		}

		group := models.MenuGroup{
			GroupTitle: unwrapScalar(groupMap["group_title"]),
			MenuItems:  []models.MenuItem{},
		}

		if itemsArr, ok := asSlice(groupMap["menu_items"]); ok {
			for _, itemElem := range itemsArr {
				itemMap, ok := asMap(itemElem)
				if !ok {
					continue
				}
				group.MenuItems = append(group.MenuItems, models.MenuItem{
					ItemName:        unwrapScalar(itemMap["item_name"]),
					ItemPrice:       unwrapScalar(itemMap["item_price"]),
					ItemDescription: unwrapScalar(itemMap["item_description"]),
				})
			}
		}

		collection = append(collection, group)
	}

	return collection
}

// ====================================
// CHUẨN HÓA FORM SUBMISSION
// ====================================

// NormalizeGroupSubmission chuyển dữ liệu submit từ form sửa nhóm thành MenuCollection.
//
// Form nhóm chỉ sửa tên: entry ở vị trí i nhận lại các món của nhóm i trong
// collection hiện có (khớp theo vị trí, không theo tên). Danh sách submit rỗng
// nghĩa là xóa toàn bộ thực đơn, kể cả các món đã có.
//
// JSON không parse được thì từ chối cả submission (trả về common.ErrInvalidFormat).
func NormalizeGroupSubmission(submittedJSON string, existing models.MenuCollection) (models.MenuCollection, error) {
	if submittedJSON == "" {
		return models.MenuCollection{}, nil
	}

	var entries []models.GroupSubmissionEntry
	if err := json.Unmarshal([]byte(submittedJSON), &entries); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Danh sách nhóm không đúng định dạng JSON: %v", err),
			common.StatusBadRequest,
			err,
		)
	}

	collection := make(models.MenuCollection, 0, len(entries))
	for i, entry := range entries {
		group := models.MenuGroup{
			GroupTitle: utility.SanitizeTextField(entry.GroupName),
			MenuItems:  []models.MenuItem{},
		}
		if i < len(existing) && existing[i].MenuItems != nil {
			group.MenuItems = existing[i].MenuItems
		}
		collection = append(collection, group)
	}

	return collection, nil
}

// NormalizeItemSubmission dựng lại toàn bộ MenuCollection từ form sửa món.
//
// Mỗi entry là một tab nhóm: tên nhóm (tên mà form món thấy lần cuối) kèm JSON
// danh sách món. Tên nhóm thay thế tên hiện có, món thay thế toàn bộ — collection
// cũ không tham gia. Thứ tự kết quả là thứ tự entry submit; tên nhóm trùng nhau
// được giữ nguyên thành các nhóm riêng biệt.
//
// JSON món của một nhóm không parse được thì giữ nhóm đó với danh sách món rỗng
// và trả về warning tương ứng, các nhóm khác không bị ảnh hưởng.
func NormalizeItemSubmission(entries []models.ItemGroupEntry) (models.MenuCollection, []string) {
	collection := make(models.MenuCollection, 0, len(entries))
	var warnings []string

	for _, entry := range entries {
		group := models.MenuGroup{
			GroupTitle: utility.SanitizeTextField(entry.GroupName),
			MenuItems:  []models.MenuItem{},
		}

		if entry.ItemsJSON != "" {
			var items []models.MenuItem
			if err := json.Unmarshal([]byte(entry.ItemsJSON), &items); err != nil {
				warnings = append(warnings, fmt.Sprintf("nhóm %q: danh sách món không đúng định dạng JSON", entry.GroupName))
			} else {
				for _, item := range items {
					group.MenuItems = append(group.MenuItems, models.MenuItem{
						ItemName:        utility.SanitizeTextField(item.ItemName),
						ItemPrice:       utility.SanitizeTextField(item.ItemPrice),
						ItemDescription: utility.SanitizeTextarea(item.ItemDescription),
					})
				}
			}
		}

		collection = append(collection, group)
	}

	return collection, warnings
}

// ====================================
// SHAPE HIỂN THỊ
// ====================================

// ToFormDisplayShape tạo shape tối thiểu để đổ sẵn vào form sửa nhóm:
// chỉ tên nhóm, một entry mỗi nhóm, giữ nguyên thứ tự.
func ToFormDisplayShape(collection models.MenuCollection) []models.GroupSubmissionEntry {
	entries := make([]models.GroupSubmissionEntry, 0, len(collection))
	for _, group := range collection {
		entries = append(entries, models.GroupSubmissionEntry{GroupName: group.GroupTitle})
	}
	return entries
}

// ToItemsFormShape đổ sẵn dữ liệu cho form sửa món của một nhóm.
// Index ngoài phạm vi cho ra danh sách rỗng, form hiển thị nhóm chưa có món.
func ToItemsFormShape(collection models.MenuCollection, groupIndex int) map[string]interface{} {
	if groupIndex < 0 || groupIndex >= len(collection) {
		return map[string]interface{}{"fooditems": []models.MenuItem{}}
	}
	items := collection[groupIndex].MenuItems
	if items == nil {
		items = []models.MenuItem{}
	}
	return map[string]interface{}{"fooditems": items}
}

// ToRenderShape chuẩn hóa giá trị meta đã lưu (cả hai shape lịch sử) thành shape
// hiển thị công khai. Giá rỗng giữ nguyên rỗng để layer hiển thị bỏ qua markup giá.
// Chỉ dùng để render, không bao giờ ghi ngược lại store.
func ToRenderShape(raw interface{}, currencySymbol string, currencyPosition string) []models.RenderedGroup {
	collection := DecodeCollection(raw)

	rendered := make([]models.RenderedGroup, 0, len(collection))
	for _, group := range collection {
		rg := models.RenderedGroup{
			GroupTitle: group.GroupTitle,
			MenuItems:  make([]models.RenderedItem, 0, len(group.MenuItems)),
		}
		for _, item := range group.MenuItems {
			price := ""
			if item.ItemPrice != "" {
				price = utility.FormatPrice(item.ItemPrice, currencySymbol, currencyPosition)
			}
			rg.MenuItems = append(rg.MenuItems, models.RenderedItem{
				ItemName:        item.ItemName,
				ItemPrice:       price,
				ItemDescription: item.ItemDescription,
			})
		}
		rendered = append(rendered, rg)
	}

	return rendered
}
