package obsidian

import (
	"context"
	"fmt"
)

// PeriodicService handles interaction with periodic notes (daily, weekly, etc.).
//
// A nil date addresses the current note for the period; the server resolves
// what "current" means.
type PeriodicService struct {
	client *Client
}

// PeriodicPath returns the API path of the note for period, optionally anchored to date.
func PeriodicPath(period Period, date *Date) string {
	if date == nil {
		return fmt.Sprintf("/periodic/%s/", period)
	}
	return fmt.Sprintf("/periodic/%s/%d/%d/%d/", period, date.Year, date.Month, date.Day)
}

func (s *PeriodicService) note(period Period, date *Date) noteResource {
	return noteResource{client: s.client, path: PeriodicPath(period, date)}
}

// Get returns the markdown content of a periodic note.
func (s *PeriodicService) Get(ctx context.Context, period Period, date *Date) (string, error) {
	return s.note(period, date).get(ctx)
}

// GetNote returns a periodic note parsed as a Note struct.
func (s *PeriodicService) GetNote(ctx context.Context, period Period, date *Date) (*Note, error) {
	return s.note(period, date).getNote(ctx)
}

// Append appends content to a periodic note.
func (s *PeriodicService) Append(ctx context.Context, period Period, content string, date *Date) error {
	return s.note(period, date).append(ctx, content)
}

// Update replaces the content of a periodic note.
func (s *PeriodicService) Update(ctx context.Context, period Period, content string, date *Date) error {
	return s.note(period, date).put(ctx, content)
}

// Delete deletes a periodic note.
func (s *PeriodicService) Delete(ctx context.Context, period Period, date *Date) error {
	return s.note(period, date).delete(ctx)
}

// Patch inserts content into a periodic note relative to a heading, block or frontmatter field.
func (s *PeriodicService) Patch(ctx context.Context, period Period, content string, opts PatchOptions, date *Date) error {
	return s.note(period, date).patch(ctx, content, opts)
}
