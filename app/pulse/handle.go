package pulse

import "strings"

// NormalizeHandle canonicalizes a user-supplied or identity-derived handle.
// The result is either empty (for blank input) or exactly one '@' followed
// by characters from [A-Za-z0-9_@.-]. Length and reserved names are not
// validated here.
func NormalizeHandle(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(trimmed))
	for _, r := range trimmed {
		if isHandleRune(r) {
			b.WriteRune(r)
		}
	}

	return "@" + strings.TrimLeft(b.String(), "@")
}

func isHandleRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_' || r == '@' || r == '.' || r == '-':
		return true
	}
	return false
}

// DeriveHandleFromIdentity builds a handle from session identity fields.
// An email wins (local part), then the display name (lowercased, whitespace
// removed). Returns empty when neither is present.
func DeriveHandleFromIdentity(name, email string) string {
	if email != "" {
		local, _, _ := strings.Cut(email, "@")
		return "@" + local
	}
	if name != "" {
		return "@" + strings.ToLower(strings.Join(strings.Fields(name), ""))
	}
	return ""
}
