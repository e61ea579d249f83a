// Package router đăng ký các route thuộc domain menu: form nhóm/món, lưu thực đơn, hiển thị công khai.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	menuhdl "pno_restaurants/internal/api/menu/handler"
	"pno_restaurants/internal/api/middleware"
	apirouter "pno_restaurants/internal/api/router"
)

// Register đăng ký tất cả route menu lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	menuHandler, err := menuhdl.NewMenuHandler()
	if err != nil {
		return fmt.Errorf("create menu handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	auth := []fiber.Handler{authMiddleware}

	// Form sửa nhóm và form sửa món (cần đăng nhập, quyền sở hữu kiểm tra trong handler)
	apirouter.RegisterRouteWithMiddleware(v1, "/menu-setup", "GET", "/form", auth, menuHandler.GetGroupsForm)
	apirouter.RegisterRouteWithMiddleware(v1, "/menu-setup", "GET", "/items-form", auth, menuHandler.GetItemsForm)
	apirouter.RegisterRouteWithMiddleware(v1, "/menu-setup", "POST", "/groups", auth, menuHandler.SaveGroups)
	apirouter.RegisterRouteWithMiddleware(v1, "/menu-setup", "POST", "/items", auth, menuHandler.SaveItems)

	// Hiển thị thực đơn công khai, không cần auth
	v1.Get("/listings/:id/menu", menuHandler.RenderMenu)

	return nil
}
