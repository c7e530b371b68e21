package nlp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTemplatesCoverEveryIntent(t *testing.T) {
	templates := DefaultTemplates()
	require.NoError(t, templates.Validate())
	assert.Len(t, templates[IntentGreeting], 3)
}

func TestLoadTemplates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	content := `templates:
  greeting:
    - "Hi!"
  question:
    - "Good question."
    - "Let me think."
  unknown:
    - "Sorry?"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	templates, err := LoadTemplates(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Hi!"}, templates[IntentGreeting])
	assert.Equal(t, []string{"Good question.", "Let me think."}, templates[IntentQuestion])
	assert.True(t, templates.Contains(IntentUnknown, "Sorry?"))
	assert.False(t, templates.Contains(IntentUnknown, "Hi!"))
}

func TestParseTemplates_MissingIntent(t *testing.T) {
	_, err := ParseTemplates([]byte("templates:\n  greeting: [\"hi\"]\n  question: [\"?\"]\n"))
	require.ErrorIs(t, err, ErrMissingTemplates)
}

func TestParseTemplates_InvalidYAML(t *testing.T) {
	_, err := ParseTemplates([]byte("templates: [unterminated"))
	require.Error(t, err)
}

func TestLoadTemplates_MissingFile(t *testing.T) {
	_, err := LoadTemplates(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
