// Package router đăng ký các route thuộc domain listing: Listing, ListingField.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	listinghdl "pno_restaurants/internal/api/listing/handler"
	"pno_restaurants/internal/api/middleware"
	apirouter "pno_restaurants/internal/api/router"
)

// Register đăng ký tất cả route listing lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	authMiddleware := middleware.AuthMiddleware()

	listingHandler, err := listinghdl.NewListingHandler()
	if err != nil {
		return fmt.Errorf("create listing handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/listing", listingHandler, apirouter.ReadWriteConfig, authMiddleware)

	fieldHandler, err := listinghdl.NewListingFieldHandler()
	if err != nil {
		return fmt.Errorf("create listing field handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/listing-field", fieldHandler, apirouter.ReadWriteConfig, authMiddleware)

	return nil
}
