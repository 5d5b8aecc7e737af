// Package skillcache loads the pre-built map from lowercase skill strings to
// canonical O*NET names that the skill processor consults before the
// reference taxonomy.
package skillcache

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/jonathan/energy-jobboard/internal/schemas"
)

// Entry is one record of the cache file.
type Entry struct {
	ONet struct {
		Name     string `json:"name"`
		Code     string `json:"code,omitempty"`
		Category string `json:"category,omitempty"`
	} `json:"onet"`
}

// Cache resolves lowercase skill keys to canonical names. A nil *Cache is
// empty and always misses.
type Cache struct {
	names     map[string]string
	canonical map[string]string
}

// Load reads and validates a cache file. An empty path yields an empty cache.
func Load(path string) (*Cache, error) {
	if path == "" {
		return &Cache{names: map[string]string{}, canonical: map[string]string{}}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	return Parse(path, data)
}

// Parse validates and indexes cache JSON. The name is only used in errors.
func Parse(name string, data []byte) (*Cache, error) {
	if err := schemas.Validate(schemas.SkillCache, data); err != nil {
		return nil, &LoadError{Path: name, Message: "invalid cache document", Cause: err}
	}

	var entries map[string]Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &LoadError{Path: name, Message: "failed to parse JSON", Cause: err}
	}
	return FromEntries(entries), nil
}

// FromEntries indexes entries. Keys are trimmed and lowercased, and every
// canonical name also resolves to itself unless an explicit key already
// claims that spelling. Keys that fold together resolve in sorted key order,
// so the last one wins.
func FromEntries(entries map[string]Entry) *Cache {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	names := make(map[string]string, len(entries)*2)
	canonical := make(map[string]string, len(entries))
	for _, key := range keys {
		k := normalizeKey(key)
		name := strings.TrimSpace(entries[key].ONet.Name)
		if k == "" || name == "" {
			continue
		}
		names[k] = name
		if _, ok := canonical[normalizeKey(name)]; !ok {
			canonical[normalizeKey(name)] = name
		}
	}
	for k, name := range canonical {
		if _, ok := names[k]; !ok {
			names[k] = name
		}
	}
	return &Cache{names: names, canonical: canonical}
}

// Lookup returns the canonical name for key.
func (c *Cache) Lookup(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	name, ok := c.names[normalizeKey(key)]
	return name, ok
}

// Canonical reports whether name, compared case-insensitively, is a
// canonical name of some entry, and returns the cached spelling.
func (c *Cache) Canonical(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	got, ok := c.canonical[normalizeKey(name)]
	return got, ok
}

// Len is the number of resolvable keys.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
