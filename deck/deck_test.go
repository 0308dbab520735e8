package deck

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlDeck = `name: products
slides:
  - id: a
    title: First Product
    description: one
    price: "10"
  - id: b
    title: Second
    words: [Big, Second]
`

const jsonDeck = `{"slides":[{"id":"x","title":"X Ray"},{"id":"y","title":"Yankee"}]}`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadYAML(t *testing.T) {
	d, err := Load(writeFile(t, "deck.yaml", yamlDeck))
	require.NoError(t, err)

	assert.Equal(t, "products", d.Name)
	require.Equal(t, 2, d.Len())
	assert.Equal(t, "10", d.Slides[0].Price)
	assert.Equal(t, []string{"First", "Product"}, d.Slides[0].Headline())
	assert.Equal(t, []string{"Big", "Second"}, d.Slides[1].Headline())
}

func TestLoadJSONDefaultsName(t *testing.T) {
	d, err := Load(writeFile(t, "home.json", jsonDeck))
	require.NoError(t, err)

	assert.Equal(t, "home", d.Name)
	assert.Equal(t, 2, d.Len())
}

func TestLoadEmptyDeckIsValid(t *testing.T) {
	d, err := Load(writeFile(t, "empty.yml", "name: empty\nslides: []\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
		want error
	}{
		{"duplicate", "d.yaml", "slides:\n  - id: a\n  - id: a\n", ErrDuplicateSlide},
		{"blank id", "d.json", `{"slides":[{"id":" "}]}`, ErrEmptySlideID},
		{"unsupported", "d.toml", "slides = []", ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.body))
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeFile(t, "bad.json", "{"))
	assert.Error(t, err)
}

func TestSampleIsValid(t *testing.T) {
	s := Sample()
	require.NoError(t, s.Validate())
	assert.Greater(t, s.Len(), 1)
}
