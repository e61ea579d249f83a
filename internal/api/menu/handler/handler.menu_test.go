package menuhandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func TestParseItemEntries_OrderedByIndex(t *testing.T) {
	args := &fasthttp.Args{}
	// Thứ tự field trong body không quan trọng, index quyết định thứ tự nhóm
	args.Set("restaurant_items[2][Desserts]", `[{"item_name":"Cake"}]`)
	args.Set("restaurant_items[0][Starters]", `[{"item_name":"Soup"}]`)
	args.Set("restaurant_items[1][Mains]", `[{"item_name":"Steak"}]`)

	entries := parseItemEntries(args)
	require.Len(t, entries, 3)
	assert.Equal(t, "Starters", entries[0].GroupName)
	assert.Equal(t, "Mains", entries[1].GroupName)
	assert.Equal(t, "Desserts", entries[2].GroupName)
	assert.Equal(t, `[{"item_name":"Soup"}]`, entries[0].ItemsJSON)
}

func TestParseItemEntries_IgnoresUnrelatedFields(t *testing.T) {
	args := &fasthttp.Args{}
	args.Set("nonce", "abc")
	args.Set("restaurant_menus", `[{"group_name":"A"}]`)
	args.Set("restaurant_items[0][Drinks]", `[]`)
	args.Set("restaurant_items[x][Broken]", `[]`)

	entries := parseItemEntries(args)
	require.Len(t, entries, 1)
	assert.Equal(t, "Drinks", entries[0].GroupName)
}

func TestParseItemEntries_GroupNameWithBrackets(t *testing.T) {
	args := &fasthttp.Args{}
	args.Set("restaurant_items[0][Kids [small]]", `[]`)

	entries := parseItemEntries(args)
	require.Len(t, entries, 1)
	assert.Equal(t, "Kids [small]", entries[0].GroupName)
}

func TestParseItemEntries_Empty(t *testing.T) {
	assert.Empty(t, parseItemEntries(&fasthttp.Args{}))
}
