package utility

import (
	"regexp"
	"strings"
)

var (
	tagPattern         = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern  = regexp.MustCompile(`[\r\n\t ]+`)
	percentPattern     = regexp.MustCompile(`%[a-fA-F0-9]{2}`)
	inlineSpacePattern = regexp.MustCompile(`[\t ]+`)
)

// SanitizeTextField làm sạch một text field do người dùng nhập:
// loại bỏ thẻ HTML, octets dạng %xx, gộp whitespace liên tiếp và trim hai đầu.
// Mọi text trong thực đơn (tên nhóm, tên món, giá, mô tả) đều đi qua hàm này trước khi lưu.
func SanitizeTextField(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	s = percentPattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// SanitizeTextarea như SanitizeTextField nhưng giữ lại xuống dòng (dùng cho mô tả nhiều dòng)
func SanitizeTextarea(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	s = percentPattern.ReplaceAllString(s, "")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		line = strings.ReplaceAll(line, "\r", "")
		line = inlineSpacePattern.ReplaceAllString(line, " ")
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
