package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User đại diện cho một người dùng có thể đăng listing
type User struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`    // ID của user
	Email        string             `json:"email" bson:"email" index:"unique"`    // Email đăng nhập
	DisplayName  string             `json:"displayName" bson:"displayName"`       // Tên hiển thị
	PasswordHash string             `json:"-" bson:"passwordHash"`                // Hash mật khẩu
	IsActive     bool               `json:"isActive" bson:"isActive" default:"true"` // Tài khoản còn hoạt động

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
