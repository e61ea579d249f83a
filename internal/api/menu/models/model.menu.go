// Package models - các model thuộc domain menu (thực đơn nhà hàng).
package models

// MenuItem là một món ăn trong thực đơn
type MenuItem struct {
	ItemName        string `json:"item_name" bson:"item_name"`               // Tên món
	ItemPrice       string `json:"item_price" bson:"item_price"`             // Giá (text tự do, rỗng = không hiển thị)
	ItemDescription string `json:"item_description" bson:"item_description"` // Mô tả món, rỗng = không hiển thị
}

// MenuGroup là một nhóm món có tên trong thực đơn (ví dụ "Lunch", "Dinner")
type MenuGroup struct {
	GroupTitle string     `json:"group_title" bson:"group_title"` // Tên nhóm, có thể rỗng
	MenuItems  []MenuItem `json:"menu_items" bson:"menu_items"`   // Danh sách món theo thứ tự
}

// MenuCollection là toàn bộ thực đơn của một listing.
// Thứ tự nhóm có ý nghĩa: thứ tự hiển thị = thứ tự lưu = thứ tự submit.
// Tên nhóm không bắt buộc duy nhất.
type MenuCollection []MenuGroup

// GroupSubmissionEntry là một entry trong form sửa nhóm (chỉ có tên nhóm)
type GroupSubmissionEntry struct {
	GroupName string `json:"group_name"` // Tên nhóm do người dùng nhập
}

// ItemGroupEntry là một entry trong form sửa món: tên nhóm kèm JSON danh sách món.
// Thứ tự các entry là thứ tự nhóm sau khi lưu.
type ItemGroupEntry struct {
	GroupName string // Tên nhóm (key của entry trong form)
	ItemsJSON string // JSON array các món của nhóm
}

// RenderedItem là một món đã format sẵn để hiển thị công khai
type RenderedItem struct {
	ItemName        string `json:"item_name"`        // Tên món
	ItemPrice       string `json:"item_price"`       // Giá đã gắn ký hiệu tiền tệ, rỗng = bỏ qua khi render
	ItemDescription string `json:"item_description"` // Mô tả, rỗng = bỏ qua khi render
}

// RenderedGroup là một nhóm món đã chuẩn hóa để hiển thị công khai
type RenderedGroup struct {
	GroupTitle string         `json:"group_title"` // Tên nhóm, rỗng = không render heading
	MenuItems  []RenderedItem `json:"menu_items"`  // Các món trong nhóm
}
