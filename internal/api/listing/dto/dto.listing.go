// Package dto - các DTO đầu vào cho domain listing.
package dto

// ListingCreateInput dữ liệu tạo mới một listing
type ListingCreateInput struct {
	Title   string `json:"title" validate:"required,min=1,max=200,no_xss"` // Tiêu đề listing
	OwnerID string `json:"ownerId" validate:"omitempty,len=24,hexadecimal"` // ID người sở hữu, mặc định là user đang đăng nhập
	Status  string `json:"status" validate:"omitempty,oneof=publish pending draft expired"`
	TypeID  string `json:"typeId" validate:"omitempty,len=24,hexadecimal"` // Loại listing
}

// ListingUpdateInput dữ liệu cập nhật một listing
type ListingUpdateInput struct {
	Title  string `json:"title" validate:"omitempty,min=1,max=200,no_xss"`
	Status string `json:"status" validate:"omitempty,oneof=publish pending draft expired"`
}

// ListingFieldCreateInput dữ liệu khai báo một custom field cho listing
type ListingFieldCreateInput struct {
	Name     string `json:"name" validate:"required,min=1,max=100,no_xss"`  // Tên hiển thị
	Type     string `json:"type" validate:"required,min=1,max=50"`          // Loại field
	MetaKey  string `json:"metaKey" validate:"omitempty,min=1,max=100"`     // Meta key lưu giá trị
	Priority int    `json:"priority" validate:"omitempty,min=0"`            // Thứ tự ưu tiên
	Required bool   `json:"required"`                                       // Field bắt buộc
}

// ListingFieldUpdateInput dữ liệu cập nhật một custom field
type ListingFieldUpdateInput struct {
	Name     string `json:"name" validate:"omitempty,min=1,max=100,no_xss"`
	MetaKey  string `json:"metaKey" validate:"omitempty,min=1,max=100"`
	Priority *int   `json:"priority" validate:"omitempty"`
	Required *bool  `json:"required" validate:"omitempty"`
}
