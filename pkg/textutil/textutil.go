package textutil

// Rpad pads s with spaces on the right up to width. Strings already at or
// beyond width come back unchanged, so help columns never truncate.
func Rpad(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
