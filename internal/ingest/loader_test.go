package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "json", name), []byte(content), 0o644))
}

func TestLoadDocuments(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "json"), 0o755))

	writeFixture(t, dir, "pages.json", `[
		{"html": "<p>Move basics</p>", "title": "Move Basics", "url": "https://example.com/move"},
		{"html": "<p>Network</p>", "title": "Network", "url": "https://example.com/net"}
	]`)
	writeFixture(t, dir, "chat.json", `{"messages": [
		{"content": "how do I stake?", "author": {"name": "alice"}},
		{"content": "", "author": {"name": "bob"}},
		{"content": "like this", "author": {}}
	]}`)
	writeFixture(t, dir, "unsupported.json", `{"pages": 3}`)

	// files are visited in glob order: chat.json before pages.json
	docs, err := LoadDocuments(dir)
	require.NoError(t, err)
	require.Len(t, docs, 4)

	assert.Equal(t, "Message from alice", docs[0].Title)
	assert.Equal(t, "how do I stake?", docs[0].HTML)
	assert.Empty(t, docs[0].URL)
	assert.Equal(t, "json/chat.json", docs[0].Source)

	// the empty message is skipped, the author-less one titled Unknown
	assert.Equal(t, "Message from Unknown", docs[1].Title)

	assert.Equal(t, "Move Basics", docs[2].Title)
	assert.Equal(t, "https://example.com/move", docs[2].URL)
	assert.Equal(t, "json/pages.json", docs[2].Source)
}

func TestLoadDocuments_NullFileSkipped(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "json"), 0o755))

	writeFixture(t, dir, "null.json", `null`)
	writeFixture(t, dir, "empty.json", `[]`)
	writeFixture(t, dir, "pages.json", `[{"html": "<p>x</p>", "title": "X", "url": "u"}]`)

	docs, err := LoadDocuments(dir)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "X", docs[0].Title)
}

func TestLoadDocuments_EmptyDir(t *testing.T) {
	docs, err := LoadDocuments(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, docs)
}
