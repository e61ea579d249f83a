package utility

import (
	"strconv"
	"strings"
)

// FormatPrice định dạng giá món ăn để hiển thị.
// Giá lưu dạng text tự do: nếu parse được thành số thì gắn ký hiệu tiền tệ theo position,
// nếu không thì trả nguyên văn (ví dụ "Market price").
//
// position: left, right, left_space, right_space
func FormatPrice(raw string, symbol string, position string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	// Giá không phải số: hiển thị nguyên văn
	normalized := strings.ReplaceAll(raw, ",", "")
	if _, err := strconv.ParseFloat(normalized, 64); err != nil {
		return raw
	}

	switch position {
	case "right":
		return raw + symbol
	case "left_space":
		return symbol + " " + raw
	case "right_space":
		return raw + " " + symbol
	default: // left
		return symbol + raw
	}
}
