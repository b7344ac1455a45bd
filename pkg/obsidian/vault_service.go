package obsidian

import "context"

// VaultService handles interaction with files in the vault.
type VaultService struct {
	client *Client
}

func (s *VaultService) file(path string) noteResource {
	return noteResource{client: s.client, path: "/vault/" + EscapeComponent(path)}
}

// List lists files in the root directory (if path is empty) or a specified directory.
// Directories are reported with a trailing slash.
func (s *VaultService) List(ctx context.Context, path string) ([]string, error) {
	endpoint := "/vault/"
	if path != "" {
		endpoint = "/vault/" + EscapeComponent(path) + "/"
	}

	var resp struct {
		Files []string `json:"files"`
	}
	if err := s.client.do(ctx, Request{Path: endpoint}, &resp); err != nil {
		return nil, err
	}
	if resp.Files == nil {
		return []string{}, nil
	}
	return resp.Files, nil
}

// Get returns the content of a file in the vault.
func (s *VaultService) Get(ctx context.Context, path string) (string, error) {
	return s.file(path).get(ctx)
}

// GetNote returns the file parsed as a Note struct.
func (s *VaultService) GetNote(ctx context.Context, path string) (*Note, error) {
	return s.file(path).getNote(ctx)
}

// Create creates a new file or replaces an existing one with the given content.
func (s *VaultService) Create(ctx context.Context, path, content string) error {
	return s.file(path).put(ctx, content)
}

// Update replaces the content of an existing file. The API does not
// distinguish it from Create.
func (s *VaultService) Update(ctx context.Context, path, content string) error {
	return s.file(path).put(ctx, content)
}

// Append appends content to a file, creating it if necessary.
func (s *VaultService) Append(ctx context.Context, path, content string) error {
	return s.file(path).append(ctx, content)
}

// Delete deletes a file in the vault.
func (s *VaultService) Delete(ctx context.Context, path string) error {
	return s.file(path).delete(ctx)
}

// Patch inserts content into a file relative to a heading, block or frontmatter field.
func (s *VaultService) Patch(ctx context.Context, path, content string, opts PatchOptions) error {
	return s.file(path).patch(ctx, content, opts)
}
