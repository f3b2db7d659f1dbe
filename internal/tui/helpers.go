package tui

// truncate shortens a string to max runes with ellipsis.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}

// padRight pads s with spaces to width, truncating if longer.
func padRight(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	out := make([]rune, width)
	copy(out, r)
	for i := len(r); i < width; i++ {
		out[i] = ' '
	}
	return string(out)
}
