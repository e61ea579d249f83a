// Package models - các model thuộc domain listing.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái của listing
const (
	ListingStatusPublish = "publish" // Đã đăng
	ListingStatusPending = "pending" // Chờ duyệt
	ListingStatusDraft   = "draft"   // Nháp
	ListingStatusExpired = "expired" // Hết hạn
)

// Listing đại diện cho một listing (nhà hàng) do người dùng đăng
type Listing struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của listing
	Title     string             `json:"title" bson:"title"`                // Tiêu đề listing
	OwnerID   primitive.ObjectID `json:"ownerId" bson:"ownerId"`            // Người sở hữu listing
	Status    string             `json:"status" bson:"status"`              // Trạng thái (publish, pending, draft, expired)
	TypeID    primitive.ObjectID `json:"typeId,omitempty" bson:"typeId,omitempty"` // Loại listing
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`        // Thời gian tạo
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`        // Thời gian cập nhật
}

// ListingField mô tả schema của một custom field gắn với listing.
// Field có type "restaurant" là nơi khai báo meta key lưu thực đơn.
type ListingField struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của field
	Name     string             `json:"name" bson:"name"`                  // Tên hiển thị của field
	Type     string             `json:"type" bson:"type"`                  // Loại field (text, textarea, restaurant, ...)
	MetaKey  string             `json:"metaKey" bson:"metaKey,omitempty"`  // Meta key nơi giá trị field được lưu
	Priority int                `json:"priority" bson:"priority"`          // Thứ tự ưu tiên khi resolve
	Required bool               `json:"required" bson:"required"`          // Field bắt buộc khi submit listing

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

// FieldTypeRestaurant là type đánh dấu field lưu thực đơn nhà hàng
const FieldTypeRestaurant = "restaurant"

// ListingMeta lưu một giá trị metadata của listing theo key.
// Value giữ nguyên shape dữ liệu đã lưu (raw BSON) để tolerant với dữ liệu legacy.
type ListingMeta struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của meta record
	ListingID primitive.ObjectID `json:"listingId" bson:"listingId"`        // Listing sở hữu meta
	Key       string             `json:"key" bson:"key"`                    // Meta key
	Value     interface{}        `json:"value" bson:"value"`                // Giá trị (shape tùy key, không ép kiểu)
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`        // Thời gian tạo
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`        // Thời gian cập nhật
}
