package lines

import "bytes"

// splitRaw splits data into consecutive chunks, each containing exactly one
// line including its trailing separator, except possibly the final chunk
// which has no separator if the input doesn't end in one.
func splitRaw(data []byte) [][]byte {
	var out [][]byte

	start := 0
	for start < len(data) {
		idx := bytes.IndexByte(data[start:], '\n')
		if idx < 0 {
			out = append(out, data[start:])

			break
		}
		end := start + idx + 1
		out = append(out, data[start:end])
		start = end
	}

	return out
}

// splitSeparator splits a raw line chunk into its text and trailing
// separator ("\n", "\r\n", or "" if the chunk has neither).
func splitSeparator(raw []byte) (text, sep string) {
	n := len(raw)
	if n == 0 {
		return "", ""
	}
	if raw[n-1] != '\n' {
		return string(raw), ""
	}
	if n >= 2 && raw[n-2] == '\r' {
		return string(raw[:n-2]), "\r\n"
	}

	return string(raw[:n-1]), "\n"
}
