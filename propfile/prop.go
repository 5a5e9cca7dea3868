// Package propfile implements reading and writing of Java .properties
// files, used to exchange locale symbol bundles with JVM tooling.
//
// Format: key=value pairs, one per line. Lines starting with '#' or '!' are
// comments and are preserved verbatim in the output. Blank lines are also
// preserved. Multi-line values (backslash continuation) are not supported;
// each line is treated independently. Values are escaped the way
// java.util.Properties does: non-ASCII characters become \uXXXX.
//
// A symbol bundle is written with one key per symbol, array elements
// numbered from zero:
//
//	MonthNames.0=January
//	DecimalSeparator=.
package propfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ---------------------------------------------------------------------------
// File model
// ---------------------------------------------------------------------------

// lineKind classifies each line in the file.
type lineKind int

const (
	lineBlank   lineKind = iota // blank / whitespace-only line
	lineComment                 // comment line (starts with # or !)
	lineEntry                   // key=value pair
)

// line is a single line in the properties file.
type line struct {
	kind  lineKind
	raw   string // original text (comment/blank)
	key   string // only for lineEntry
	value string // only for lineEntry, unescaped
}

// File represents a parsed .properties file.
type File struct {
	// lines stores all lines in document order.
	lines []line
	// index maps key → index in lines for fast lookup.
	index map[string]int
}

// New returns an empty file.
func New() *File {
	return &File{index: make(map[string]int)}
}

// ---------------------------------------------------------------------------
// Parsing
// ---------------------------------------------------------------------------

// ParseFile reads and parses a .properties file from disk.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses .properties content from a byte slice.
func Parse(data []byte) (*File, error) {
	f := New()

	text := string(data)
	// Normalise Windows line endings.
	text = strings.ReplaceAll(text, "\r\n", "\n")
	rawLines := strings.Split(text, "\n")

	// Drop trailing empty element from a file that ends with \n.
	if len(rawLines) > 0 && rawLines[len(rawLines)-1] == "" {
		rawLines = rawLines[:len(rawLines)-1]
	}

	for n, raw := range rawLines {
		trimmed := strings.TrimLeft(raw, " \t\f")

		switch {
		case strings.TrimSpace(trimmed) == "":
			f.lines = append(f.lines, line{kind: lineBlank, raw: raw})

		case strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "!"):
			f.lines = append(f.lines, line{kind: lineComment, raw: raw})

		default:
			k, v := splitKeyValue(trimmed)
			key, err := unescape(k)
			if err != nil {
				return nil, fmt.Errorf("line %d: key: %w", n+1, err)
			}
			value, err := unescape(v)
			if err != nil {
				return nil, fmt.Errorf("line %d: value: %w", n+1, err)
			}
			f.Set(key, value)
		}
	}

	return f, nil
}

// splitKeyValue splits "key = value" or "key=value" into key and value.
// The separator is the first unescaped '=' or ':'. Whitespace around the
// separator is dropped; trailing whitespace of the value is kept.
func splitKeyValue(s string) (key, value string) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '=', ':':
			return strings.TrimRight(s[:i], " \t\f"), strings.TrimLeft(s[i+1:], " \t\f")
		}
	}
	// No separator: treat the whole line as a key with empty value.
	return strings.TrimRight(s, " \t\f"), ""
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

// Keys returns all keys in document order.
func (f *File) Keys() []string {
	keys := make([]string, 0, len(f.index))
	for _, ln := range f.lines {
		if ln.kind == lineEntry {
			keys = append(keys, ln.key)
		}
	}
	return keys
}

// Get returns the value for key and whether it was found.
func (f *File) Get(key string) (string, bool) {
	if idx, ok := f.index[key]; ok {
		return f.lines[idx].value, true
	}
	return "", false
}

// Set sets the value for key. An existing key keeps its position; a new
// key is appended.
func (f *File) Set(key, value string) {
	if idx, ok := f.index[key]; ok {
		f.lines[idx].value = value
		return
	}
	f.index[key] = len(f.lines)
	f.lines = append(f.lines, line{kind: lineEntry, key: key, value: value})
}

// Comment appends a comment line.
func (f *File) Comment(text string) {
	f.lines = append(f.lines, line{kind: lineComment, raw: "# " + text})
}

// Blank appends an empty line.
func (f *File) Blank() {
	f.lines = append(f.lines, line{kind: lineBlank})
}

// ---------------------------------------------------------------------------
// Serialization
// ---------------------------------------------------------------------------

// Marshal serialises the file back to .properties format.
func (f *File) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	for _, ln := range f.lines {
		switch ln.kind {
		case lineBlank:
			buf.WriteByte('\n')
		case lineComment:
			buf.WriteString(ln.raw)
			buf.WriteByte('\n')
		case lineEntry:
			buf.WriteString(escape(ln.key, true))
			buf.WriteByte('=')
			buf.WriteString(escape(ln.value, false))
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes(), nil
}

// WriteFile serialises and writes to path, creating parent directories
// with 0755 permissions.
func (f *File) WriteFile(path string) error {
	data, err := f.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
