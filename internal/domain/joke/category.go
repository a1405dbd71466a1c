// Package joke defines the browse state for joke categories.
package joke

// MoveToTop returns a copy of categories with name relocated to index 0.
// The relative order of the remaining entries is kept. When name is absent
// the copy is returned unchanged.
func MoveToTop(categories []string, name string) []string {
	out := make([]string, 0, len(categories))
	found := false
	for _, c := range categories {
		if c == name {
			found = true
			continue
		}
		out = append(out, c)
	}
	if !found {
		return append([]string(nil), categories...)
	}
	return append([]string{name}, out...)
}

// IndexOf returns the position of name in categories, or -1.
func IndexOf(categories []string, name string) int {
	for i, c := range categories {
		if c == name {
			return i
		}
	}
	return -1
}
