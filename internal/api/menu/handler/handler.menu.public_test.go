package menuhandler

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pno_restaurants/internal/api/menu/models"
)

// Nhóm không tên không render heading; giá và mô tả rỗng bỏ qua markup tương ứng
func TestMenuTemplateSkipsEmptyFields(t *testing.T) {
	groups := []models.RenderedGroup{
		{
			GroupTitle: "Starters",
			MenuItems: []models.RenderedItem{
				{ItemName: "Soup", ItemPrice: "$3.50", ItemDescription: "Of the day"},
				{ItemName: "Bread", ItemPrice: "", ItemDescription: ""},
			},
		},
		{
			GroupTitle: "",
			MenuItems:  []models.RenderedItem{{ItemName: "Special"}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, menuTemplate.Execute(&buf, map[string]interface{}{"Groups": groups}))
	html := buf.String()

	assert.Contains(t, html, `<h3 class="menu-group-title">Starters</h3>`)
	// Nhóm không tên không có heading, kể cả heading rỗng
	assert.Equal(t, 1, strings.Count(html, "menu-group-title"))

	assert.Contains(t, html, `<span class="menu-item-price">$3.50</span>`)
	assert.Contains(t, html, `<p class="menu-item-description">Of the day</p>`)
	// Món không giá và không mô tả chỉ render tên
	assert.Equal(t, 1, strings.Count(html, "menu-item-price"))
	assert.Equal(t, 1, strings.Count(html, "menu-item-description"))
	assert.Contains(t, html, `<span class="menu-item-name">Bread</span>`)
	assert.Contains(t, html, `<span class="menu-item-name">Special</span>`)
}
