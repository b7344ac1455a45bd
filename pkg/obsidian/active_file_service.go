package obsidian

import "context"

// ActiveFileService handles interaction with the currently active file in Obsidian.
type ActiveFileService struct {
	note noteResource
}

// Get returns the content of the currently active file as markdown.
func (s *ActiveFileService) Get(ctx context.Context) (string, error) {
	return s.note.get(ctx)
}

// GetNote returns the active file parsed as a Note struct (including frontmatter and stats).
// This sends the Accept: application/vnd.olrapi.note+json header.
func (s *ActiveFileService) GetNote(ctx context.Context) (*Note, error) {
	return s.note.getNote(ctx)
}

// Update replaces the content of the currently active file.
func (s *ActiveFileService) Update(ctx context.Context, content string) error {
	return s.note.put(ctx, content)
}

// Append appends content to the end of the currently active file.
func (s *ActiveFileService) Append(ctx context.Context, content string) error {
	return s.note.append(ctx, content)
}

// Delete deletes the currently active file.
func (s *ActiveFileService) Delete(ctx context.Context) error {
	return s.note.delete(ctx)
}

// Patch inserts content relative to a heading, block or frontmatter field.
func (s *ActiveFileService) Patch(ctx context.Context, content string, opts PatchOptions) error {
	return s.note.patch(ctx, content, opts)
}
