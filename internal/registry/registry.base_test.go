package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("a", 1)
	require.NoError(t, err)
	assert.True(t, isNew)

	// Đăng ký trùng tên: ghi đè, không phải item mới
	isNew, err = r.Register("a", 2)
	require.NoError(t, err)
	assert.False(t, isNew)

	value, ok := r.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, value)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_RegisterEmptyName(t *testing.T) {
	r := NewRegistry[string]()
	_, err := r.Register("", "x")
	assert.Error(t, err)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[string]()

	created := 0
	creator := func() (string, error) {
		created++
		return "value", nil
	}

	value, err := r.GetOrCreate("a", creator)
	require.NoError(t, err)
	assert.Equal(t, "value", value)

	// Lần hai lấy từ registry, creator không chạy lại
	value, err = r.GetOrCreate("a", creator)
	require.NoError(t, err)
	assert.Equal(t, "value", value)
	assert.Equal(t, 1, created)
}

func TestRegistry_NamesAndClear(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)

	assert.ElementsMatch(t, []string{"a", "b"}, r.Names())

	deleted, err := r.Clear("a", nil)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = r.Clear("a", nil)
	require.NoError(t, err)
	assert.False(t, deleted)

	count, err := r.ClearAll(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Empty(t, r.Names())
}
