// Package output renders command results either as human-readable text or
// as indented JSON, and turns errors into a printed message and exit code.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format renders v. In JSON mode v is encoded with two-space indentation.
// Otherwise strings are returned verbatim, string slices one item per line,
// and anything else as "key: value" lines in field order.
func Format(v any, jsonMode bool) (string, error) {
	if jsonMode {
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case []string:
		return strings.Join(t, "\n"), nil
	case nil:
		return "", nil
	}

	return formatText(v)
}

// formatText goes through JSON first so that json tags decide field names,
// then re-emits the document as block-style YAML.
func formatText(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return "", err
	}
	blockStyle(&doc)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// Printer writes formatted results to Out.
type Printer struct {
	Out  io.Writer
	JSON bool
}

// Print formats v and writes it followed by a newline.
func (p *Printer) Print(v any) error {
	s, err := Format(v, p.JSON)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.Out, s)
	return err
}

// Success reports a completed mutation: human prints the message, JSON mode
// prints {"success": true} merged with fields.
func (p *Printer) Success(human string, fields map[string]any) error {
	if !p.JSON {
		return p.Print(human)
	}
	obj := map[string]any{"success": true}
	for k, v := range fields {
		obj[k] = v
	}
	return p.Print(obj)
}

// Lines writes each line verbatim. It is used for list views whose human
// rendering differs from the data shape.
func (p *Printer) Lines(lines ...string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(p.Out, l); err != nil {
			return err
		}
	}
	return nil
}
