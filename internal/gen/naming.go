package gen

import "strings"

// Accessor and variant names are derived from key names by one pure, total
// transform so generated APIs are reproducible and collisions detectable:
// split the kebab-case name on dashes and capitalize each segment's leading
// letter. Segments that start with a digit cannot be capitalized, which is
// exactly why "a-2b" and "a2b" collide and must be rejected.

// ExportedName converts a kebab-case key or choice nick to an exported Go
// identifier: "window-width" -> "WindowWidth".
func ExportedName(kebab string) string {
	var out strings.Builder
	for _, segment := range strings.Split(kebab, "-") {
		if segment == "" {
			continue
		}
		c := segment[0]
		if c >= 'a' && c <= 'z' {
			out.WriteByte(c - 'a' + 'A')
			out.WriteString(segment[1:])
		} else {
			out.WriteString(segment)
		}
	}
	return out.String()
}
