package xmlconv

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".xmlconv.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_FullFile(t *testing.T) {
	path := writeConfigFile(t, `
leading_zero_as_string: true
attr_prefix: ""
text_prop: text
null_policy: ignore
key_case: snake
overrides:
  - path: /a/b/@c
    type: string
  - path: /a/b
    array: always
  - path: flag
    type: bool
    true_values: ["True", "1"]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.LeadingZeroAsString)
	assert.Equal(t, "", cfg.AttrPrefix)
	assert.Equal(t, "text", cfg.TextPropName)
	assert.Equal(t, NullValueIgnore, cfg.NullValue)
	assert.Equal(t, KeyCaseSnake, cfg.KeyCase)

	o, ok := cfg.resolve("/a/b/@c")
	require.True(t, ok)
	assert.Equal(t, TypeString, o.Type.Kind)
	assert.Equal(t, ArrayInfer, o.Array)

	o, ok = cfg.resolve("/a/b")
	require.True(t, ok)
	assert.Equal(t, TypeInfer, o.Type.Kind)
	assert.Equal(t, ArrayAlways, o.Array)

	// the leading slash is added on load
	o, ok = cfg.resolve("/flag")
	require.True(t, ok)
	assert.Equal(t, TypeBool, o.Type.Kind)
	assert.True(t, reflect.DeepEqual([]string{"True", "1"}, o.Type.TrueValues))
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, "leading_zero_as_string: true\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.LeadingZeroAsString)
	assert.Equal(t, "@", cfg.AttrPrefix)
	assert.Equal(t, "#text", cfg.TextPropName)
	assert.Equal(t, NullValueNull, cfg.NullValue)
	assert.Equal(t, KeyCaseAsIs, cfg.KeyCase)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad null policy", "null_policy: drop\n"},
		{"bad key case", "key_case: shouting\n"},
		{"bad override type", "overrides:\n  - path: /a\n    type: integerish\n"},
		{"bad override array", "overrides:\n  - path: /a\n    array: sometimes\n"},
		{"missing override path", "overrides:\n  - type: string\n"},
		{"not yaml", "{{nope\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.content)
			_, err := LoadConfig(path)
			require.Error(t, err)
			var appErr *AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, ErrorTypeConfig, appErr.Type)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrorTypeConfig, appErr.Type)
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0755))

	configPath := filepath.Join(dir, ".xmlconv.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("attr_prefix: ''\n"), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(wd) }()
	require.NoError(t, os.Chdir(sub))

	found := FindConfigFile()
	require.NotEmpty(t, found)

	// resolve symlinks before comparing; temp dirs are often symlinked
	wantReal, err := filepath.EvalSymlinks(configPath)
	require.NoError(t, err)
	foundReal, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	assert.Equal(t, wantReal, foundReal)
}
