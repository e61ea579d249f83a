package global

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("currency_position", validateCurrencyPosition)
}

// validateNoXSS kiểm tra giá trị không chứa các pattern XSS phổ biến.
// Dữ liệu thực đơn do người dùng nhập nên mọi text field đều đi qua check này.
func validateNoXSS(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"onmouseover=",
		"eval(",
		"document.cookie",
		"document.write",
		"<iframe",
		"<object",
		"<embed",
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateCurrencyPosition kiểm tra vị trí ký hiệu tiền tệ hợp lệ
func validateCurrencyPosition(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "left", "right", "left_space", "right_space":
		return true
	}
	return false
}
