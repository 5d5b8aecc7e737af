package db

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildWhere(t *testing.T) {
	tests := []struct {
		name      string
		filters   ListFilters
		wantWhere string
		wantArgs  []any
	}{
		{"no filters", ListFilters{}, "", nil},
		{"role only", ListFilters{RoleID: "welder"}, "WHERE role_id = $1", []any{"welder"}},
		{"unmatched role", ListFilters{RoleID: UnmatchedRole}, "WHERE role_id IS NULL", nil},
		{"confidence lowercased", ListFilters{Confidence: " HIGH "}, "WHERE role_confidence = $1", []any{"high"}},
		{
			"skill only",
			ListFilters{Skill: "Welding"},
			"WHERE canonical_skills @> jsonb_build_array($1::text)",
			[]any{"Welding"},
		},
		{
			"all filters",
			ListFilters{RoleID: "driller", Confidence: "medium", Skill: "Well Control"},
			"WHERE role_id = $1 AND role_confidence = $2 AND canonical_skills @> jsonb_build_array($3::text)",
			[]any{"driller", "medium", "Well Control"},
		},
		{
			"unmatched with skill",
			ListFilters{RoleID: UnmatchedRole, Skill: "Rigging"},
			"WHERE role_id IS NULL AND canonical_skills @> jsonb_build_array($1::text)",
			[]any{"Rigging"},
		},
		{"blank strings ignored", ListFilters{RoleID: "  ", Skill: "\t"}, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildWhere(tt.filters)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
			assert.Equal(t, len(args), strings.Count(where, "$"))
		})
	}
}

func TestPageBounds(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, DefaultListLimit, 0},
		{"negative", -5, -10, DefaultListLimit, 0},
		{"within range", 25, 50, 25, 50},
		{"capped", 1000, 0, MaxListLimit, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := pageBounds(tt.limit, tt.offset)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestMarshalList(t *testing.T) {
	b, err := marshalList(nil)
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	b, err = marshalList([]string{"Welding", "Rigging"})
	assert.NoError(t, err)
	assert.Equal(t, `["Welding","Rigging"]`, string(b))
}

func TestNullHelpers(t *testing.T) {
	assert.Nil(t, nullString(""))
	assert.Equal(t, "x", *nullString("x"))

	assert.Nil(t, nullTime(time.Time{}))
	now := time.Now()
	assert.Equal(t, now, *nullTime(now))

	assert.Equal(t, "", deref(nil))
	s := "Houston, TX"
	assert.Equal(t, s, deref(&s))
}

func TestSchemaSQL(t *testing.T) {
	assert.Contains(t, schemaSQL, "CREATE TABLE IF NOT EXISTS enriched_jobs")
	for _, col := range strings.Split(enrichedJobColumns, ",") {
		assert.Contains(t, schemaSQL, strings.TrimSpace(col))
	}
}
