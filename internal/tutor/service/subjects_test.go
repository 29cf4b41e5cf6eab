package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubjectsList(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	require.NoError(t, os.Mkdir(filepath.Join(dir, "biology"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "physics"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	subjects := &SubjectsService{Dir: dir}

	got, err := subjects.List(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"biology", "physics"}, got)
}

func TestSubjectsListMissingDir(t *testing.T) {
	ctx := context.Background()
	subjects := &SubjectsService{Dir: filepath.Join(t.TempDir(), "does-not-exist")}

	got, err := subjects.List(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}
