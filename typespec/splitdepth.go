package typespec

// SplitDepth scans s tracking parenthesis depth, starting at depth. A delim
// byte seen at the starting depth ends the current segment; a ')' that
// would drop the depth below the starting value terminates the scan.
//
// It returns the delimited segments, the remainder between the last
// delimiter and the terminator (or the end of input), the number of bytes
// consumed (through the terminating ')' when terminated, through the last
// delimiter otherwise), and whether the terminator was seen.
//
// Every caller that needs to split on top-level delimiters inside nested
// parentheses goes through here, so the depth and comma rules cannot drift
// apart between the tuple, error-signature and encodeType parsers.
func SplitDepth(s string, delim byte, depth int) (segs []string, rest string, n int, terminated bool) {
	start := depth
	last := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < start {
				return segs, s[last:i], i + 1, true
			}
		case delim:
			if depth == start {
				segs = append(segs, s[last:i])
				last = i + 1
				n = last
			}
		}
	}
	return segs, s[last:], n, false
}
