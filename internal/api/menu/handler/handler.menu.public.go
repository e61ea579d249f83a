package menuhandler

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basehdl "pno_restaurants/internal/api/base/handler"
	menusvc "pno_restaurants/internal/api/menu/service"
	"pno_restaurants/internal/common"
	"pno_restaurants/internal/global"
	"pno_restaurants/internal/utility"
)

// menuTemplate là markup hiển thị công khai của thực đơn.
// Nhóm không có tên thì bỏ qua heading, món không có giá thì bỏ qua markup giá,
// không có mô tả thì bỏ qua mô tả.
var menuTemplate = template.Must(template.New("menu").Parse(`<div class="restaurant-menu">
{{- range .Groups}}
	<div class="menu-group">
		{{- if .GroupTitle}}
		<h3 class="menu-group-title">{{.GroupTitle}}</h3>
		{{- end}}
		<ul class="menu-items">
		{{- range .MenuItems}}
			<li class="menu-item">
				<span class="menu-item-name">{{.ItemName}}</span>
				{{- if .ItemPrice}}
				<span class="menu-item-price">{{.ItemPrice}}</span>
				{{- end}}
				{{- if .ItemDescription}}
				<p class="menu-item-description">{{.ItemDescription}}</p>
				{{- end}}
			</li>
		{{- end}}
		</ul>
	</div>
{{- end}}
</div>
`))

// RenderMenu hiển thị thực đơn công khai của listing.
// Mặc định trả JSON ở shape hiển thị; thêm ?format=html để lấy markup dựng sẵn.
//
// Endpoint: GET /api/v1/listings/:id/menu (public, không cần auth)
//
// Dữ liệu đã lưu ở cả shape phẳng lẫn shape cũ bọc giá trị đều hiển thị được;
// listing không có thực đơn cho ra kết quả rỗng, không lỗi.
func (h *MenuHandler) RenderMenu(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		listingID := utility.String2ObjectID(c.Params("id"))
		if listingID.IsZero() {
			basehdl.HandleResponse(c, nil, common.ErrNotFound)
			return nil
		}

		exists, err := h.listingService.DocumentExists(c.Context(), bson.M{"_id": listingID})
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if !exists {
			basehdl.HandleResponse(c, nil, common.ErrNotFound)
			return nil
		}

		raw, err := h.menuService.GetRaw(c.Context(), listingID)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		rendered := menusvc.ToRenderShape(raw, global.ServerConfig.CurrencySymbol, global.ServerConfig.CurrencyPosition)

		if c.Query("format") != "html" {
			basehdl.HandleResponse(c, fiber.Map{"groups": rendered}, nil)
			return nil
		}

		var buf bytes.Buffer
		if err := menuTemplate.Execute(&buf, fiber.Map{"Groups": rendered}); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		c.Set("Content-Type", "text/html; charset=utf-8")
		return c.Status(common.StatusOK).Send(buf.Bytes())
	})
}
