// Package database - Index bổ sung cho listings (compound, unique) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"pno_restaurants/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateListingIndexes tạo các index cho các collection listing.
// Gọi một lần khi khởi động server, sau khi đã kết nối MongoDB.
func CreateListingIndexes(ctx context.Context, db *mongo.Database) error {
	// pno_listing_meta: (listingId, key) unique — mỗi listing chỉ có một giá trị cho mỗi meta key
	listingMeta := db.Collection(global.MongoDB_ColNames.ListingMeta)
	if _, err := listingMeta.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "listingId", Value: 1},
			{Key: "key", Value: 1},
		},
		Options: options.Index().SetName("listing_meta_listing_key").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// pno_listings: (ownerId, status) — truy vấn listings của một user
	listings := db.Collection(global.MongoDB_ColNames.Listings)
	if _, err := listings.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "ownerId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("listing_owner_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// pno_listing_fields: (type, priority) — resolve field theo type, ưu tiên theo priority
	listingFields := db.Collection(global.MongoDB_ColNames.ListingFields)
	if _, err := listingFields.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "type", Value: 1},
			{Key: "priority", Value: 1},
		},
		Options: options.Index().SetName("listing_field_type_priority"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// pno_listing_fields: metaKey unique sparse — meta key không được trùng giữa các field
	if _, err := listingFields.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "metaKey", Value: 1},
		},
		Options: options.Index().SetName("listing_field_meta_key").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
