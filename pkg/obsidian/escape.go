package obsidian

import (
	"net/url"
	"strings"
)

// componentUnescaper restores the characters encodeURIComponent leaves alone
// but url.QueryEscape escapes.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EscapeComponent percent-encodes s for use as a single path segment, query
// value or header value. Everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ) is
// escaped, including "/".
func EscapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
