package sigdump

import (
	"encoding/hex"
	"strings"
)

// ParseHex parses a hexadecimal message.
// Whitespace, colons, and an optional "0x" prefix are ignored.
func ParseHex(input string) ([]byte, error) {
	s := strings.TrimSpace(input)
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	s = strings.Map(func(ch rune) rune {
		switch ch {
		case ' ', '\t', '\r', '\n', ':':
			return -1
		}
		return ch
	}, s)
	return hex.DecodeString(s)
}
