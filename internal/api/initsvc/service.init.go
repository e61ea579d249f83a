// Package initsvc khởi tạo dữ liệu mặc định khi server bắt đầu chạy.
package initsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	listingdto "pno_restaurants/internal/api/listing/dto"
	"pno_restaurants/internal/api/listing/models"
	listingsvc "pno_restaurants/internal/api/listing/service"
	menumodels "pno_restaurants/internal/api/menu/models"
	menusvc "pno_restaurants/internal/api/menu/service"
	"pno_restaurants/internal/common"
)

// DefaultRestaurantMetaKey là meta key mặc định khi seed field restaurant
const DefaultRestaurantMetaKey = "restaurant_menu"

// InitService khởi tạo dữ liệu mặc định
type InitService struct {
	listingService *listingsvc.ListingService
	fieldService   *listingsvc.ListingFieldService
	menuService    *menusvc.MenuService
}

// NewInitService tạo mới InitService
func NewInitService() (*InitService, error) {
	listingService, err := listingsvc.NewListingService()
	if err != nil {
		return nil, fmt.Errorf("failed to create listing service: %v", err)
	}

	fieldService, err := listingsvc.NewListingFieldService()
	if err != nil {
		return nil, fmt.Errorf("failed to create listing field service: %v", err)
	}

	menuService, err := menusvc.NewMenuService()
	if err != nil {
		return nil, fmt.Errorf("failed to create menu service: %v", err)
	}

	return &InitService{
		listingService: listingService,
		fieldService:   fieldService,
		menuService:    menuService,
	}, nil
}

// InitRestaurantField đảm bảo schema có field kiểu restaurant.
// Chưa có thì seed một field mặc định; đã có thì giữ nguyên.
func (s *InitService) InitRestaurantField(ctx context.Context) error {
	_, err := s.fieldService.ResolveRestaurantMetaKey(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrFieldUnconfigured) {
		return err
	}

	_, err = s.fieldService.Create(ctx, &listingdto.ListingFieldCreateInput{
		Name:     "Restaurant menu",
		Type:     models.FieldTypeRestaurant,
		MetaKey:  DefaultRestaurantMetaKey,
		Priority: 0,
	})
	return err
}

// InitSampleData seed một listing mẫu kèm thực đơn để thử nghiệm.
// Chỉ chạy khi INITMODE=true; đã có listing mẫu thì bỏ qua.
func (s *InitService) InitSampleData(ctx context.Context) error {
	exists, err := s.listingService.DocumentExists(ctx, bson.M{"title": "Sample Restaurant"})
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	listing, err := s.listingService.Create(ctx, &listingdto.ListingCreateInput{
		Title:   "Sample Restaurant",
		OwnerID: "000000000000000000000001",
		Status:  models.ListingStatusPublish,
	})
	if err != nil {
		return err
	}

	menu := menumodels.MenuCollection{
		{
			GroupTitle: "Starters",
			MenuItems: []menumodels.MenuItem{
				{ItemName: "Spring rolls", ItemPrice: "4.50", ItemDescription: "Crispy rolls with dipping sauce"},
				{ItemName: "Soup of the day", ItemPrice: "3.00"},
			},
		},
		{
			GroupTitle: "Mains",
			MenuItems: []menumodels.MenuItem{
				{ItemName: "Grilled salmon", ItemPrice: "14.90", ItemDescription: "Served with seasonal vegetables"},
			},
		},
	}

	return s.menuService.Put(ctx, listing.ID, menu)
}
