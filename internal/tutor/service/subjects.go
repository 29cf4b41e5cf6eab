package service

import (
	"context"
	"fmt"
	"os"
)

// SubjectsService lists the subjects a user can ask about. A subject is a
// subdirectory of the content directory the answer engine is indexed over.
type SubjectsService struct {
	Dir string
}

// List returns subject names in directory order. A missing content directory
// is not an error; it just means no subjects yet.
func (s *SubjectsService) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read subjects dir: %w", err)
	}

	subjects := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			subjects = append(subjects, entry.Name())
		}
	}
	return subjects, nil
}
