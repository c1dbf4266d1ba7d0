package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Store reads projects from a JSON file holding an array of projects. The file
// is read on every call, so edits show up without a restart.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (store *Store) Path() string {
	return store.path
}

func (store *Store) Projects(ctx context.Context) ([]Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(store.path)
	if err != nil {
		return nil, fmt.Errorf("reading projects: %w", err)
	}

	var projects []Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", store.path, err)
	}
	if projects == nil {
		projects = []Project{}
	}
	return projects, nil
}
