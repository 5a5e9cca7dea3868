package propfile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
)

var errBadEscape = errors.New("malformed \\uXXXX escape")

// escape renders s the way java.util.Properties.store does. Keys escape
// every space; values only a leading one.
func escape(s string, isKey bool) string {
	var b strings.Builder
	for i, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\f':
			b.WriteString(`\f`)
		case '=', ':', '#', '!':
			b.WriteByte('\\')
			b.WriteRune(r)
		case ' ':
			if isKey || i == 0 {
				b.WriteByte('\\')
			}
			b.WriteByte(' ')
		default:
			if r < 0x20 || r > 0x7e {
				for _, u := range utf16.Encode([]rune{r}) {
					fmt.Fprintf(&b, `\u%04X`, u)
				}
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// unescape reverses escape.
func unescape(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			break
		}
		switch s[i] {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 'f':
			b.WriteByte('\f')
		case 'u':
			r, n, err := readUnicode(s[i+1:])
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += n
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String(), nil
}

// readUnicode decodes the hex digits following "\u", joining a surrogate
// pair when the next escape completes it. It returns the rune and the
// number of bytes consumed.
func readUnicode(s string) (rune, int, error) {
	hi, err := hex4(s)
	if err != nil {
		return 0, 0, err
	}
	if !utf16.IsSurrogate(rune(hi)) {
		return rune(hi), 4, nil
	}
	if len(s) >= 10 && s[4] == '\\' && s[5] == 'u' {
		if lo, err := hex4(s[6:]); err == nil {
			if r := utf16.DecodeRune(rune(hi), rune(lo)); r != unicode.ReplacementChar {
				return r, 10, nil
			}
		}
	}
	return unicode.ReplacementChar, 4, nil
}

func hex4(s string) (uint16, error) {
	if len(s) < 4 {
		return 0, errBadEscape
	}
	v, err := strconv.ParseUint(s[:4], 16, 16)
	if err != nil {
		return 0, errBadEscape
	}
	return uint16(v), nil
}
