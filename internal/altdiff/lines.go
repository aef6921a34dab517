package altdiff

// Text is text held as a string or a byte slice.
type Text interface {
	~string | ~[]byte
}

// Lines splits text into lines, each keeping its trailing '\n'. The last line has no '\n' if text does not end with one. Empty text has no lines.
func Lines[S Text](text S) []S {
	var lines []S
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// trimEOL removes a trailing "\n" (and a '\r' before it) from line.
func trimEOL(line string) string {
	n := len(line)
	if n > 0 && line[n-1] == '\n' {
		n--
		if n > 0 && line[n-1] == '\r' {
			n--
		}
	}
	return line[:n]
}
