// internal/app/system/normalize/normalize.go
package normalize

import "strings"

// Key normalizes a matching key: lowercased and whitespace-trimmed.
// Two records whose keys collide are the same entity.
func Key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Email normalizes an email address for storage and lookup.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a display name, preserving case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Status normalizes a user status value.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// roleDelims are the separators accepted in a legacy delimited roles string.
const roleDelims = ",;|/"

// SplitRoles splits a legacy delimited roles string into normalized parts,
// dropping empties: "Supervisor ; Admin" -> ["supervisor", "admin"].
func SplitRoles(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(roleDelims, r)
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if k := Key(p); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// PermissionKey normalizes a permission label to its stored key form:
// lowercased, runs of whitespace collapsed to a single underscore, and any
// remaining non-alphanumeric characters stripped.
// "Attendance Log (Edit)" -> "attendance_log_edit".
func PermissionKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '-', r == '_':
			pendingSep = true
		}
	}
	return b.String()
}
