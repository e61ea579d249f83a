// Package listinghdl chứa các handler CRUD của domain listing.
package listinghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basehdl "pno_restaurants/internal/api/base/handler"
	"pno_restaurants/internal/api/listing/dto"
	"pno_restaurants/internal/api/listing/models"
	listingsvc "pno_restaurants/internal/api/listing/service"
	"pno_restaurants/internal/utility"
)

// ListingHandler xử lý các route CRUD cho listing
type ListingHandler struct {
	basehdl.BaseHandler[models.Listing, dto.ListingCreateInput, dto.ListingUpdateInput]
	listingService *listingsvc.ListingService
}

// NewListingHandler tạo mới ListingHandler
func NewListingHandler() (*ListingHandler, error) {
	listingService, err := listingsvc.NewListingService()
	if err != nil {
		return nil, fmt.Errorf("failed to create listing service: %v", err)
	}

	handler := &ListingHandler{
		listingService: listingService,
	}
	handler.BaseService = listingService.BaseServiceMongoImpl
	handler.ToUpdate = listingUpdateData
	return handler, nil
}

// InsertOne tạo listing mới qua service để áp sanitize và giá trị mặc định
func (h *ListingHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(dto.ListingCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Không truyền ownerId thì lấy user đang đăng nhập làm chủ sở hữu
		if input.OwnerID == "" {
			if userIDHex, ok := c.Locals("userID").(string); ok {
				input.OwnerID = userIDHex
			}
		}

		created, err := h.listingService.Create(c.Context(), input)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// listingUpdateData chuyển DTO cập nhật thành update data, chỉ set các field có giá trị
func listingUpdateData(input *dto.ListingUpdateInput) (interface{}, error) {
	set := bson.M{}
	if input.Title != "" {
		set["title"] = utility.SanitizeTextField(input.Title)
	}
	if input.Status != "" {
		set["status"] = input.Status
	}
	return bson.M{"$set": set}, nil
}

// ListingFieldHandler xử lý các route CRUD cho khai báo custom field
type ListingFieldHandler struct {
	basehdl.BaseHandler[models.ListingField, dto.ListingFieldCreateInput, dto.ListingFieldUpdateInput]
	fieldService *listingsvc.ListingFieldService
}

// NewListingFieldHandler tạo mới ListingFieldHandler
func NewListingFieldHandler() (*ListingFieldHandler, error) {
	fieldService, err := listingsvc.NewListingFieldService()
	if err != nil {
		return nil, fmt.Errorf("failed to create listing field service: %v", err)
	}

	handler := &ListingFieldHandler{
		fieldService: fieldService,
	}
	handler.BaseService = fieldService.BaseServiceMongoImpl
	handler.ToUpdate = fieldUpdateData
	return handler, nil
}

// InsertOne khai báo custom field mới qua service
func (h *ListingFieldHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(dto.ListingFieldCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.fieldService.Create(c.Context(), input)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// fieldUpdateData chuyển DTO cập nhật thành update data, chỉ set các field có giá trị
func fieldUpdateData(input *dto.ListingFieldUpdateInput) (interface{}, error) {
	set := bson.M{}
	if input.Name != "" {
		set["name"] = utility.SanitizeTextField(input.Name)
	}
	if input.MetaKey != "" {
		set["metaKey"] = input.MetaKey
	}
	if input.Priority != nil {
		set["priority"] = *input.Priority
	}
	if input.Required != nil {
		set["required"] = *input.Required
	}
	return bson.M{"$set": set}, nil
}
