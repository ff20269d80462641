package generator

// truncate は s を最大 n 文字（rune 単位）に切り詰めます。
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
