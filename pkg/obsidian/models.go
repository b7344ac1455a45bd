package obsidian

import (
	"fmt"
	"strconv"
	"strings"
)

// Note represents the JSON structure of a note returned by the API.
// It corresponds to the 'NoteJson' schema in the plugin's OpenAPI document.
type Note struct {
	Content     string         `json:"content"`
	Frontmatter map[string]any `json:"frontmatter,omitempty"`
	Path        string         `json:"path,omitempty"`
	Stat        *FileStat      `json:"stat,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
}

// FileStat contains file system metadata.
type FileStat struct {
	Ctime float64 `json:"ctime"`
	Mtime float64 `json:"mtime"`
	Size  float64 `json:"size"`
}

// ServerStatus is returned by the root endpoint.
type ServerStatus struct {
	Status        string   `json:"status"`
	Authenticated bool     `json:"authenticated"`
	Service       string   `json:"service"`
	Versions      Versions `json:"versions"`
}

// Versions reports the host application and plugin versions.
type Versions struct {
	Obsidian string `json:"obsidian"`
	Self     string `json:"self"`
}

// Period names a periodic note family.
type Period string

const (
	PeriodDaily     Period = "daily"
	PeriodWeekly    Period = "weekly"
	PeriodMonthly   Period = "monthly"
	PeriodQuarterly Period = "quarterly"
	PeriodYearly    Period = "yearly"
)

// Periods lists every accepted period in display order.
var Periods = []Period{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodQuarterly, PeriodYearly}

// ParsePeriod validates s against Periods.
func ParsePeriod(s string) (Period, error) {
	for _, p := range Periods {
		if string(p) == s {
			return p, nil
		}
	}
	names := make([]string, len(Periods))
	for i, p := range Periods {
		names[i] = string(p)
	}
	return "", fmt.Errorf("Invalid period: %s. Must be one of: %s", s, strings.Join(names, ", ")) //nolint:stylecheck
}

// Date anchors a periodic note to a specific day. The values are sent as-is;
// the server decides whether they form a real date.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// ParseDate parses a YYYY-MM-DD string into its numeric components.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
		}
		nums[i] = n
	}
	return Date{Year: nums[0], Month: nums[1], Day: nums[2]}, nil
}

// PatchOperation is how patch content is combined with the target.
type PatchOperation string

const (
	PatchAppend  PatchOperation = "append"
	PatchPrepend PatchOperation = "prepend"
	PatchReplace PatchOperation = "replace"
)

// ParsePatchOperation validates s as a patch operation.
func ParsePatchOperation(s string) (PatchOperation, error) {
	switch op := PatchOperation(s); op {
	case PatchAppend, PatchPrepend, PatchReplace:
		return op, nil
	}
	return "", fmt.Errorf("invalid operation %q: must be one of append, prepend, replace", s)
}

// TargetType selects what a patch target names.
type TargetType string

const (
	TargetHeading     TargetType = "heading"
	TargetBlock       TargetType = "block"
	TargetFrontmatter TargetType = "frontmatter"
)

// ParseTargetType validates s as a patch target type.
func ParseTargetType(s string) (TargetType, error) {
	switch tt := TargetType(s); tt {
	case TargetHeading, TargetBlock, TargetFrontmatter:
		return tt, nil
	}
	return "", fmt.Errorf("invalid target type %q: must be one of heading, block, frontmatter", s)
}

// PatchOptions describes where and how patch content is inserted.
type PatchOptions struct {
	Operation  PatchOperation
	TargetType TargetType
	// Target is the heading name, block id or frontmatter key.
	Target    string
	Delimiter string
	// TrimWhitespace is only sent when non-nil.
	TrimWhitespace *bool
}

func (o PatchOptions) headers() map[string]string {
	h := map[string]string{
		"Content-Type": contentTypeMarkdown,
		"Operation":    string(o.Operation),
		"Target-Type":  string(o.TargetType),
		"Target":       EscapeComponent(o.Target),
	}
	if o.Delimiter != "" {
		h["Target-Delimiter"] = o.Delimiter
	}
	if o.TrimWhitespace != nil {
		h["Trim-Target-Whitespace"] = strconv.FormatBool(*o.TrimWhitespace)
	}
	return h
}

// EnsureMarkdownExtension appends ".md" to path unless it already ends with it.
func EnsureMarkdownExtension(path string) string {
	if strings.HasSuffix(path, ".md") {
		return path
	}
	return path + ".md"
}
