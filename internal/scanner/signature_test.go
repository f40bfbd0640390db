package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/ipcgen/internal/models"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []models.Parameter
	}{
		{
			name: "two parameters",
			raw:  "a: number, b: string",
			expected: []models.Parameter{
				{Name: "a", Type: "number"},
				{Name: "b", Type: "string"},
			},
		},
		{
			name:     "empty parameter list",
			raw:      "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			raw:      "   ",
			expected: nil,
		},
		{
			name: "extra whitespace is trimmed",
			raw:  "  id :  string ,  count:number ",
			expected: []models.Parameter{
				{Name: "id", Type: "string"},
				{Name: "count", Type: "number"},
			},
		},
		{
			name: "entry without colon is dropped",
			raw:  "id: string, flags",
			expected: []models.Parameter{
				{Name: "id", Type: "string"},
			},
		},
		{
			name: "entry with empty type is dropped",
			raw:  "id: string, broken:",
			expected: []models.Parameter{
				{Name: "id", Type: "string"},
			},
		},
		{
			name: "trailing comma is tolerated",
			raw:  "id: string,",
			expected: []models.Parameter{
				{Name: "id", Type: "string"},
			},
		},
		{
			name: "generic type arguments split naively on commas",
			raw:  "items: Map<string, number>",
			expected: []models.Parameter{
				{Name: "items", Type: "Map<string"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseParams(tt.raw))
		})
	}
}

func TestRenderParams(t *testing.T) {
	t.Run("round trip preserves declaration order", func(t *testing.T) {
		params := ParseParams("a: number, b: string")
		require.Len(t, params, 2)

		defs, names := RenderParams(params)
		assert.Equal(t, "a: number, b: string", defs)
		assert.Equal(t, "a, b", names)
	})

	t.Run("empty parameter list renders empty strings", func(t *testing.T) {
		defs, names := RenderParams(nil)
		assert.Equal(t, "", defs)
		assert.Equal(t, "", names)
	})

	t.Run("duplicate names are not deduplicated", func(t *testing.T) {
		params := []models.Parameter{
			{Name: "x", Type: "number"},
			{Name: "x", Type: "string"},
		}

		defs, names := RenderParams(params)
		assert.Equal(t, "x: number, x: string", defs)
		assert.Equal(t, "x, x", names)
	})
}
