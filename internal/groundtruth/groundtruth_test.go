package groundtruth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ground-truth-retrieval.csv")
	content := "question,doc_id,chunk_id\nWhat is Move?,abc12345,abc12345_0\nHow do I stake?,def67890,def67890_2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "What is Move?", entries[0].Question)
	assert.Equal(t, "abc12345", entries[0].DocID)
	assert.Equal(t, "abc12345_0", entries[0].ChunkID)
}

func TestLoad_ColumnOrderIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gt.csv")
	content := "chunk_id,question,doc_id\nabc12345_0,What is Move?,abc12345\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "abc12345", entries[0].DocID)
}

func TestLoad_MissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gt.csv")
	require.NoError(t, os.WriteFile(path, []byte("question,doc_id\nq,d\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "chunk_id")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
