package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationVersion(t *testing.T) {
	assert.Equal(t, "001", migrationVersion("001_init.sql"))
	assert.Equal(t, "002", migrationVersion("sql/002_post_likes_index.sql"))
}

func TestEmbeddedSchema(t *testing.T) {
	m := NewMigrator(nil)

	files, err := m.pendingFiles()
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "001_init.sql", files[0])

	content, err := embedded.ReadFile("sql/001_init.sql")
	require.NoError(t, err)
	for _, table := range []string{"users", "jobs", "success_stories", "posts", "post_likes", "events", "inquiries"} {
		assert.Contains(t, string(content), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
	assert.Contains(t, string(content), "CONSTRAINT users_email_key UNIQUE (email)")
}
