package obsidian

import (
	"context"
	"net/http"
)

const (
	contentTypeMarkdown = "text/markdown"
	contentTypeNoteJSON = "application/vnd.olrapi.note+json"
	contentTypeDQL      = "application/vnd.olrapi.dataview.dql+txt"
)

// noteResource implements the verbs shared by the active file, vault files
// and periodic notes. Only the path differs between them.
type noteResource struct {
	client *Client
	path   string
}

func (n noteResource) get(ctx context.Context) (string, error) {
	var content string
	err := n.client.do(ctx, Request{
		Path:   n.path,
		Header: map[string]string{"Accept": contentTypeMarkdown},
	}, &content)
	return content, err
}

func (n noteResource) getNote(ctx context.Context) (*Note, error) {
	var note Note
	err := n.client.do(ctx, Request{
		Path:   n.path,
		Header: map[string]string{"Accept": contentTypeNoteJSON},
	}, &note)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (n noteResource) write(ctx context.Context, method, content string) error {
	return n.client.do(ctx, Request{
		Method: method,
		Path:   n.path,
		Header: map[string]string{"Content-Type": contentTypeMarkdown},
		Body:   content,
	}, nil)
}

func (n noteResource) put(ctx context.Context, content string) error {
	return n.write(ctx, http.MethodPut, content)
}

func (n noteResource) append(ctx context.Context, content string) error {
	return n.write(ctx, http.MethodPost, content)
}

func (n noteResource) delete(ctx context.Context) error {
	return n.client.do(ctx, Request{Method: http.MethodDelete, Path: n.path}, nil)
}

func (n noteResource) patch(ctx context.Context, content string, opts PatchOptions) error {
	return n.client.do(ctx, Request{
		Method: http.MethodPatch,
		Path:   n.path,
		Header: opts.headers(),
		Body:   content,
	}, nil)
}
