package global

import (
	"pno_restaurants/config"
	"pno_restaurants/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Listings      string // Tên collection cho listings
	ListingFields string // Tên collection cho schema các field của listing
	ListingMeta   string // Tên collection cho metadata của listing (nơi lưu thực đơn)
	Users         string // Tên collection cho người dùng
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration         // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{ // Tên các collection
	Listings:      "pno_listings",
	ListingFields: "pno_listing_fields",
	ListingMeta:   "pno_listing_meta",
	Users:         "pno_users",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
