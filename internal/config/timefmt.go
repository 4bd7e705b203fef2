package config

import (
	"strings"
	"time"
)

// strftime directive to Go reference-layout mapping. Directives without a Go
// equivalent are emitted literally.
var strftimeTokens = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'b': "Jan",
	'B': "January",
	'a': "Mon",
	'A': "Monday",
	'j': "002",
	'Z': "MST",
	'z': "-0700",
	'%': "%",
}

// GoLayout translates the configured strftime-style date format into a Go
// time layout. Text outside % directives passes through unchanged.
func (c Config) GoLayout() string {
	return StrftimeToGoLayout(c.DateFormat)
}

// StrftimeToGoLayout converts a strftime-style pattern (e.g. "%Y-%m-%d")
// into the equivalent Go reference layout ("2006-01-02").
func StrftimeToGoLayout(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' || i+1 >= len(pattern) {
			b.WriteByte(pattern[i])
			continue
		}
		i++
		if layout, ok := strftimeTokens[pattern[i]]; ok {
			b.WriteString(layout)
		} else {
			// Unknown directive: keep it literally so the caller can see
			// what the file contained.
			b.WriteByte('%')
			b.WriteByte(pattern[i])
		}
	}
	return b.String()
}

// FormatDate renders t using the configured date format.
func (c Config) FormatDate(t time.Time) string {
	return t.Format(c.GoLayout())
}
