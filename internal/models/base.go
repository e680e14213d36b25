package models

import "strings"

// ImageOr returns url, or placeholder when the backend sent no image.
func ImageOr(url, placeholder string) string {
	if strings.TrimSpace(url) == "" {
		return placeholder
	}
	return url
}
