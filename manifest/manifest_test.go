package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/scenemerge/manifest"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		description string
		payload     string
		expectErr   bool
	}{
		{
			description: "valid manifest",
			payload: `model: combined
output: merged.xml
entities:
  - name: r1
    path: robots/one.xml
  - name: r2
    path: robots/two.xml
`,
		},
		{
			description: "empty payload",
			payload:     "   \n",
			expectErr:   true,
		},
		{
			description: "no entities",
			payload:     "model: combined\n",
			expectErr:   true,
		},
		{
			description: "missing name",
			payload: `entities:
  - path: robots/one.xml
`,
			expectErr: true,
		},
		{
			description: "missing path",
			payload: `entities:
  - name: r1
`,
			expectErr: true,
		},
		{
			description: "duplicate names",
			payload: `entities:
  - name: r1
    path: robots/one.xml
  - name: r1
    path: robots/two.xml
`,
			expectErr: true,
		},
		{
			description: "invalid yaml",
			payload:     "entities: [",
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			parsed, err := manifest.Parse([]byte(testCase.payload))
			if testCase.expectErr {
				assert.Error(t, err, testCase.description)
				return
			}
			require.NoError(t, err, testCase.description)
			assert.Equal(t, "combined", parsed.Model)
			assert.Equal(t, "merged.xml", parsed.Output)
			require.Len(t, parsed.Entities, 2)
			assert.Equal(t, "r1", parsed.Entities[0].Name)
			assert.Equal(t, "robots/one.xml", parsed.Entities[0].Path)
		})
	}
}

func TestLoad_AnchorsRelativePaths(t *testing.T) {
	dir := t.TempDir()
	payload := `output: merged.xml
entities:
  - name: r1
    path: robots/one.xml
  - name: r2
    path: /abs/two.xml
`
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	loaded, err := manifest.Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "robots", "one.xml"), loaded.Entities[0].Path)
	assert.Equal(t, "/abs/two.xml", loaded.Entities[1].Path, "absolute paths stay untouched")
	assert.Equal(t, filepath.Join(dir, "merged.xml"), loaded.Output)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := manifest.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
