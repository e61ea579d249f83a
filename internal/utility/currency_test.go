package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		symbol   string
		position string
		want     string
	}{
		{"left", "12.50", "$", "left", "$12.50"},
		{"right", "12.50", "€", "right", "12.50€"},
		{"left_space", "12.50", "$", "left_space", "$ 12.50"},
		{"right_space", "12.50", "đ", "right_space", "12.50 đ"},
		{"position lạ mặc định left", "5", "$", "", "$5"},
		{"số có dấu phẩy ngăn cách", "1,250.00", "$", "left", "$1,250.00"},
		{"giá rỗng", "", "$", "left", ""},
		{"giá không phải số giữ nguyên văn", "Market price", "$", "left", "Market price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.raw, tt.symbol, tt.position))
		})
	}
}
