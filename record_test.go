package ldharvest_test

import (
	"testing"

	"github.com/fwojciec/ldharvest"
	"github.com/stretchr/testify/assert"
)

func TestRecord_Types(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  ldharvest.Record
		want []string
	}{
		{
			name: "single string type",
			rec:  ldharvest.Record{"@type": "TechArticle"},
			want: []string{"TechArticle"},
		},
		{
			name: "multiple types",
			rec:  ldharvest.Record{"@type": []any{"SoftwareSourceCode", "TechArticle"}},
			want: []string{"SoftwareSourceCode", "TechArticle"},
		},
		{
			name: "type alias used when @type absent",
			rec:  ldharvest.Record{"type": "HowTo"},
			want: []string{"HowTo"},
		},
		{
			name: "@type wins over alias",
			rec:  ldharvest.Record{"@type": "Article", "type": "WebPage"},
			want: []string{"Article"},
		},
		{
			name: "no type declared",
			rec:  ldharvest.Record{"name": "untyped"},
			want: nil,
		},
		{
			name: "empty string type",
			rec:  ldharvest.Record{"@type": ""},
			want: nil,
		},
		{
			name: "non-string elements dropped",
			rec:  ldharvest.Record{"@type": []any{"Article", 42.0, nil}},
			want: []string{"Article"},
		},
		{
			name: "non-string type value",
			rec:  ldharvest.Record{"@type": 42.0},
			want: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.rec.Types())
		})
	}
}

func TestRecord_HasType(t *testing.T) {
	t.Parallel()

	rec := ldharvest.Record{"@type": []any{"SoftwareSourceCode", "TechArticle"}}

	assert.True(t, rec.HasType("SoftwareSourceCode"))
	assert.True(t, rec.HasType("TechArticle"))
	assert.False(t, rec.HasType("HowTo"))
}

func TestRecord_Key(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  ldharvest.Record
		want string
	}{
		{
			name: "id from @id",
			rec:  ldharvest.Record{"@type": "Article", "@id": "https://example.com/a", "name": "A"},
			want: "Article:https://example.com/a",
		},
		{
			name: "falls back to url",
			rec:  ldharvest.Record{"@type": "Article", "url": "https://example.com/a"},
			want: "Article:https://example.com/a",
		},
		{
			name: "falls back to name then headline",
			rec:  ldharvest.Record{"@type": "Article", "headline": "Deep Dive"},
			want: "Article:Deep Dive",
		},
		{
			name: "multiple types joined with underscores",
			rec:  ldharvest.Record{"@type": []any{"SoftwareSourceCode", "TechArticle"}, "name": "snippet"},
			want: "SoftwareSourceCode_TechArticle:snippet",
		},
		{
			name: "no identifying field",
			rec:  ldharvest.Record{"@type": "WebPage"},
			want: "WebPage:",
		},
		{
			name: "null @id skipped",
			rec:  ldharvest.Record{"@type": "Article", "@id": nil, "name": "A"},
			want: "Article:A",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.rec.Key())
		})
	}

	t.Run("same name same types collide", func(t *testing.T) {
		t.Parallel()
		a := ldharvest.Record{"@type": "Article", "name": "Setup", "description": "first"}
		b := ldharvest.Record{"@type": "Article", "name": "Setup", "description": "second"}

		assert.Equal(t, a.Key(), b.Key())
	})
}

func TestRecord_DisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Install Guide", ldharvest.Record{"name": "Install Guide"}.DisplayName())
	assert.Equal(t, "Release Notes", ldharvest.Record{"headline": "Release Notes"}.DisplayName())
	assert.Equal(t, "https://example.com/#page", ldharvest.Record{"@id": "https://example.com/#page"}.DisplayName())
	assert.Equal(t, "Unnamed", ldharvest.Record{"@type": "Thing"}.DisplayName())
}

func TestRecord_DisplayType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "HowTo", ldharvest.Record{"@type": "HowTo"}.DisplayType())
	assert.Equal(t, "SoftwareSourceCode, TechArticle", ldharvest.Record{"@type": []any{"SoftwareSourceCode", "TechArticle"}}.DisplayType())
	assert.Equal(t, "Unknown", ldharvest.Record{"name": "x"}.DisplayType())
}
