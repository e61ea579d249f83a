// Package menuhandler xử lý các endpoint quản lý và hiển thị thực đơn của listing.
package menuhandler

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "pno_restaurants/internal/api/base/handler"
	listingsvc "pno_restaurants/internal/api/listing/service"
	"pno_restaurants/internal/api/menu/models"
	menusvc "pno_restaurants/internal/api/menu/service"
	"pno_restaurants/internal/common"
	"pno_restaurants/internal/global"
	"pno_restaurants/internal/logger"
	"pno_restaurants/internal/utility"
)

// Tên action và tên form field của anti-forgery nonce, mỗi form một bộ riêng
const (
	NonceActionGroups = "save_restaurant_menus"
	NonceActionItems  = "save_restaurant_items"

	NonceFieldGroups = "save_restaurant_menus_nonce"
	NonceFieldItems  = "food_items_submission_nonce"
)

// itemFieldPattern khớp key form của item-editor: restaurant_items[<index>][<tên nhóm>]
var itemFieldPattern = regexp.MustCompile(`^restaurant_items\[(\d+)\]\[(.+)\]$`)

// MenuHandler xử lý các route thực đơn
type MenuHandler struct {
	menuService    *menusvc.MenuService
	listingService *listingsvc.ListingService
}

// NewMenuHandler tạo mới MenuHandler
func NewMenuHandler() (*MenuHandler, error) {
	menuService, err := menusvc.NewMenuService()
	if err != nil {
		return nil, fmt.Errorf("failed to create menu service: %v", err)
	}

	listingService, err := listingsvc.NewListingService()
	if err != nil {
		return nil, fmt.Errorf("failed to create listing service: %v", err)
	}

	return &MenuHandler{
		menuService:    menuService,
		listingService: listingService,
	}, nil
}

// canEdit kiểm tra user đã đăng nhập có quyền sửa thực đơn của listing không:
// phải từng submit listing và phải là chủ của listing này
func (h *MenuHandler) canEdit(c fiber.Ctx, listingID primitive.ObjectID) bool {
	userIDHex, _ := c.Locals("userID").(string)
	if userIDHex == "" {
		return false
	}
	userID := utility.String2ObjectID(userIDHex)
	if userID.IsZero() {
		return false
	}

	hasListings, err := h.listingService.HasSubmittedListings(c.Context(), userID)
	if err != nil || !hasListings {
		return false
	}

	owns, err := h.listingService.IsOwner(c.Context(), listingID, userID)
	if err != nil || !owns {
		return false
	}
	return true
}

// redirectSetup quay về trang quản lý thực đơn theo post-redirect-get.
// Chỉ lần lưu thành công mới kèm action=saved; mọi thất bại quay về y nguyên,
// không báo lỗi cho caller.
func (h *MenuHandler) redirectSetup(c fiber.Ctx, listingIDHex string, saved bool) error {
	params := url.Values{}
	if listingIDHex != "" {
		params.Set("listing_id", listingIDHex)
	}
	if saved {
		params.Set("action", "saved")
	}

	target := global.ServerConfig.FrontendURL + "/menu-setup"
	if encoded := params.Encode(); encoded != "" {
		target += "?" + encoded
	}
	c.Redirect().To(target)
	return nil
}

// verifyNonce kiểm tra anti-forgery nonce đọc từ form field riêng của mỗi form
func (h *MenuHandler) verifyNonce(c fiber.Ctx, field string, action string, listingIDHex string) bool {
	nonce := c.FormValue(field)
	if nonce == "" {
		return false
	}
	return utility.VerifyNonce(global.ServerConfig.JwtSecret, nonce, action, listingIDHex) == nil
}

// issueNonce phát nonce mới cho một form, gắn với listing
func (h *MenuHandler) issueNonce(action string, listingIDHex string) (string, error) {
	lifetime := time.Duration(global.ServerConfig.NonceLifetimeSec) * time.Second
	return utility.CreateNonce(global.ServerConfig.JwtSecret, action, listingIDHex, lifetime)
}

// GetGroupsForm trả về dữ liệu đổ sẵn cho form sửa nhóm kèm nonce
//
// Endpoint: GET /api/v1/menu-setup/form?listing_id=...
func (h *MenuHandler) GetGroupsForm(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		listingIDHex := c.Query("listing_id")
		listingID := utility.String2ObjectID(listingIDHex)
		if listingID.IsZero() || !h.canEdit(c, listingID) {
			basehdl.HandleResponse(c, nil, common.ErrNotOwner)
			return nil
		}

		configured, err := h.menuService.Configured(c.Context())
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		collection, err := h.menuService.Get(c.Context(), listingID)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		nonce, err := h.issueNonce(NonceActionGroups, listingIDHex)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, fiber.Map{
			"menu_configured": configured,
			"groups":          menusvc.ToFormDisplayShape(collection),
			"nonce":           nonce,
		}, nil)
		return nil
	})
}

// GetItemsForm trả về dữ liệu cho form sửa món kèm nonce.
// Có group_index thì trả seed {fooditems} của riêng nhóm đó,
// không có thì trả toàn bộ thực đơn ở shape canonical.
//
// Endpoint: GET /api/v1/menu-setup/items-form?listing_id=...&group_index=...
func (h *MenuHandler) GetItemsForm(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		listingIDHex := c.Query("listing_id")
		listingID := utility.String2ObjectID(listingIDHex)
		if listingID.IsZero() || !h.canEdit(c, listingID) {
			basehdl.HandleResponse(c, nil, common.ErrNotOwner)
			return nil
		}

		configured, err := h.menuService.Configured(c.Context())
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		collection, err := h.menuService.Get(c.Context(), listingID)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		nonce, err := h.issueNonce(NonceActionItems, listingIDHex)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		response := fiber.Map{
			"menu_configured": configured,
			"nonce":           nonce,
		}
		if groupIndexStr := c.Query("group_index"); groupIndexStr != "" {
			groupIndex, err := strconv.Atoi(groupIndexStr)
			if err != nil {
				basehdl.HandleResponse(c, nil, common.ErrInvalidInput)
				return nil
			}
			response["seed"] = menusvc.ToItemsFormShape(collection, groupIndex)
		} else {
			response["groups"] = collection
		}

		basehdl.HandleResponse(c, response, nil)
		return nil
	})
}

// SaveGroups nhận submit từ form sửa nhóm
//
// Endpoint: POST /api/v1/menu-setup/groups?listing_id=...
// Form fields: restaurant_menus (JSON array của {group_name}), nonce
//
// Mọi thất bại (nonce sai, không phải chủ listing, JSON hỏng, lỗi hạ tầng) đều
// redirect về trang quản lý không kèm action=saved, không trả lỗi cho caller.
func (h *MenuHandler) SaveGroups(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		listingIDHex := c.Query("listing_id")
		listingID := utility.String2ObjectID(listingIDHex)
		if listingID.IsZero() {
			return h.redirectSetup(c, listingIDHex, false)
		}

		if !h.verifyNonce(c, NonceFieldGroups, NonceActionGroups, listingIDHex) || !h.canEdit(c, listingID) {
			return h.redirectSetup(c, listingIDHex, false)
		}

		saved, err := h.menuService.SaveGroups(c.Context(), listingID, c.FormValue("restaurant_menus"))
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"listing_id": listingIDHex,
				"error":      err.Error(),
			}).Warn("Lưu nhóm thực đơn thất bại")
			return h.redirectSetup(c, listingIDHex, false)
		}
		// Schema chưa có field restaurant: không có gì được lưu, không báo saved
		if !saved {
			return h.redirectSetup(c, listingIDHex, false)
		}

		logger.LogMenuSave("groups", listingIDHex, "", c, nil)
		return h.redirectSetup(c, listingIDHex, true)
	})
}

// SaveItems nhận submit từ form sửa món
//
// Endpoint: POST /api/v1/menu-setup/items?listing_id=...
// Form fields: restaurant_items[<index>][<tên nhóm>] = JSON array món, nonce
//
// Toàn bộ thực đơn được dựng lại từ các entry theo thứ tự index tăng dần.
// Thất bại redirect không kèm action=saved, như SaveGroups.
func (h *MenuHandler) SaveItems(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		listingIDHex := c.Query("listing_id")
		listingID := utility.String2ObjectID(listingIDHex)
		if listingID.IsZero() {
			return h.redirectSetup(c, listingIDHex, false)
		}

		if !h.verifyNonce(c, NonceFieldItems, NonceActionItems, listingIDHex) || !h.canEdit(c, listingID) {
			return h.redirectSetup(c, listingIDHex, false)
		}

		entries := parseItemEntries(c.Request().PostArgs())

		saved, warnings, err := h.menuService.SaveItems(c.Context(), listingID, entries)
		for _, warning := range warnings {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"listing_id": listingIDHex,
				"warning":    warning,
			}).Warn("Dữ liệu món không hợp lệ, nhóm được giữ với danh sách món rỗng")
		}
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"listing_id": listingIDHex,
				"error":      err.Error(),
			}).Warn("Lưu món thực đơn thất bại")
			return h.redirectSetup(c, listingIDHex, false)
		}
		// Schema chưa có field restaurant: không có gì được lưu, không báo saved
		if !saved {
			return h.redirectSetup(c, listingIDHex, false)
		}

		logger.LogMenuSave("items", listingIDHex, "", c, map[string]interface{}{
			"groupCount": len(entries),
		})
		return h.redirectSetup(c, listingIDHex, true)
	})
}

// parseItemEntries thu các field restaurant_items[i][tên nhóm] từ form body,
// sắp theo index tăng dần để giữ đúng thứ tự nhóm mà form hiển thị
func parseItemEntries(args *fasthttp.Args) []models.ItemGroupEntry {
	type indexedEntry struct {
		index int
		entry models.ItemGroupEntry
	}

	var collected []indexedEntry
	args.VisitAll(func(key, value []byte) {
		matches := itemFieldPattern.FindStringSubmatch(string(key))
		if matches == nil {
			return
		}
		index, err := strconv.Atoi(matches[1])
		if err != nil {
			return
		}
		collected = append(collected, indexedEntry{
			index: index,
			entry: models.ItemGroupEntry{
				GroupName: matches[2],
				ItemsJSON: string(value),
			},
		})
	})

	sort.SliceStable(collected, func(i, j int) bool {
		return collected[i].index < collected[j].index
	})

	entries := make([]models.ItemGroupEntry, 0, len(collected))
	for _, item := range collected {
		entries = append(entries, item.entry)
	}
	return entries
}
