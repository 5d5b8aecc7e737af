package skillcache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/energy-jobboard/internal/schemas"
	"github.com/jonathan/energy-jobboard/internal/skills"
)

const sampleCache = `{
	"  Welding ": {"onet": {"name": "Welding"}},
	"mig welding": {"onet": {"name": "Welding"}},
	"tig": {"onet": {"name": "TIG Welding", "code": "2.B.1"}},
	"troubleshoot": {"onet": {"name": "Troubleshooting"}}
}`

func writeCache(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "onet_cache.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	c, err := Load(writeCache(t, sampleCache))
	require.NoError(t, err)

	tests := []struct {
		key  string
		want string
		ok   bool
	}{
		{"welding", "Welding", true},
		{"MIG Welding", "Welding", true},
		{"tig", "TIG Welding", true},
		{"tig welding", "TIG Welding", true},
		{"troubleshooting", "Troubleshooting", true},
		{" troubleshoot ", "Troubleshooting", true},
		{"rigging", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := c.Lookup(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, 6, c.Len())
}

func TestLoad_EmptyPath(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	_, ok := c.Lookup("welding")
	assert.False(t, ok)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		message string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "none.json") }, "failed to read file"},
		{"malformed", func(t *testing.T) string { return writeCache(t, "{ nope") }, "invalid cache document"},
		{"schema mismatch", func(t *testing.T) string { return writeCache(t, `{"welding": "Welding"}`) }, "invalid cache document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Contains(t, loadErr.Error(), tt.message)
		})
	}
}

func TestParse_SchemaErrorUnwraps(t *testing.T) {
	_, err := Parse("inline", []byte(`{"welding": {"onet": {}}}`))
	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestFromEntries_ExplicitKeyWins(t *testing.T) {
	var a, b Entry
	a.ONet.Name = "Welding"
	b.ONet.Name = "Structural Welding"
	c := FromEntries(map[string]Entry{"welding": b, "arc": a})

	got, ok := c.Lookup("welding")
	require.True(t, ok)
	assert.Equal(t, "Structural Welding", got)

	got, ok = c.Lookup("structural welding")
	require.True(t, ok)
	assert.Equal(t, "Structural Welding", got)
}

func TestNilCache(t *testing.T) {
	var c *Cache
	_, ok := c.Lookup("welding")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCache_AsProcessorLookup(t *testing.T) {
	c, err := Load(writeCache(t, sampleCache))
	require.NoError(t, err)

	p := skills.NewProcessor(nil, c)
	assert.Equal(t, []string{"TIG Welding", "Troubleshooting"}, p.Process([]string{"tig welding", "troubleshoot"}))
}

func TestCache_ProcessIsFixedPointWhenNameIsAlsoKey(t *testing.T) {
	c, err := Parse("chained.json", []byte(`{
		"programming": {"onet": {"name": "Computers and Electronics"}},
		"computer programming": {"onet": {"name": "Programming"}}
	}`))
	require.NoError(t, err)

	p := skills.NewProcessor(nil, c)
	once := p.Process([]string{"Computer Programming", "Hydraulics"})
	assert.Equal(t, []string{"Programming", "Hydraulics"}, once)
	assert.Equal(t, once, p.Process(once))
}

func TestCanonical(t *testing.T) {
	c, err := Load(writeCache(t, sampleCache))
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{"exact", "TIG Welding", "TIG Welding", true},
		{"case folded", "  troubleshooting ", "Troubleshooting", true},
		{"key only", "mig welding", "", false},
		{"unknown", "Carpentry", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Canonical(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}

	var empty *Cache
	_, ok := empty.Canonical("Welding")
	assert.False(t, ok)
}

func TestFromEntries_FoldedKeysAreDeterministic(t *testing.T) {
	var a, b Entry
	a.ONet.Name = "Welding"
	b.ONet.Name = "Arc Welding"
	entries := map[string]Entry{"Welding": a, "welding ": b}

	for i := 0; i < 50; i++ {
		got, ok := FromEntries(entries).Lookup("welding")
		require.True(t, ok)
		assert.Equal(t, "Arc Welding", got)
	}
}
