package pulse

import (
	"strings"
	"unicode/utf16"
)

// AvatarHueFromHandle derives a stable hue in [0,359] from a handle so an
// identity keeps the same avatar color even when no hue is stored. The
// handle is lowercased and each UTF-16 code unit is folded into a 32-bit
// signed hash via hash = hash*31 + code with wraparound; the hue is
// abs(hash) mod 360. The recurrence is fixed: changing it would recolor
// every existing avatar.
func AvatarHueFromHandle(handle string) int {
	normalized := strings.ToLower(handle)

	var hash int32
	for _, code := range utf16.Encode([]rune(normalized)) {
		hash = hash*31 + int32(code)
	}

	h := int64(hash)
	if h < 0 {
		h = -h
	}
	return int(h % 360)
}
