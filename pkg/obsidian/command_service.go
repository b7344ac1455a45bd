package obsidian

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// CommandService handles interaction with Obsidian commands.
type CommandService struct {
	client *Client
}

// Command represents an available command.
type Command struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// List returns a list of available commands. The server wraps the list in a
// {"commands": [...]} envelope; a bare list is accepted as well.
func (s *CommandService) List(ctx context.Context) ([]Command, error) {
	var raw string
	if err := s.client.do(ctx, Request{Path: "/commands/"}, &raw); err != nil {
		return nil, err
	}

	body := bytes.TrimSpace([]byte(raw))
	commands := []Command{}
	if len(body) == 0 {
		return commands, nil
	}

	if body[0] == '[' {
		if err := json.Unmarshal(body, &commands); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return commands, nil
	}

	var resp struct {
		Commands []Command `json:"commands"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.Commands != nil {
		commands = resp.Commands
	}
	return commands, nil
}

// Execute executes a command by its ID.
func (s *CommandService) Execute(ctx context.Context, commandID string) error {
	return s.client.do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/commands/" + EscapeComponent(commandID) + "/",
	}, nil)
}
