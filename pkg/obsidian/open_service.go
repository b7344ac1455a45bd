package obsidian

import (
	"context"
	"net/http"
)

// OpenService handles opening files in the Obsidian UI.
type OpenService struct {
	client *Client
}

// File opens the specified file in Obsidian.
// If newLeaf is true, the file will be opened in a new leaf (tab).
func (s *OpenService) File(ctx context.Context, filename string, newLeaf bool) error {
	path := "/open/" + EscapeComponent(filename)
	if newLeaf {
		path += "?newLeaf=true"
	}
	return s.client.do(ctx, Request{Method: http.MethodPost, Path: path}, nil)
}
