package validator

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// IsAvatar 校验友链头像：允许空、http(s) URL，或不超过 4 个 rune 的 emoji
func IsAvatar(fl validator.FieldLevel) bool {
	avatar := fl.Field().String()
	if avatar == "" {
		return true
	}
	if strings.HasPrefix(avatar, "http://") || strings.HasPrefix(avatar, "https://") {
		return true
	}
	return utf8.RuneCountInString(avatar) <= 4
}
