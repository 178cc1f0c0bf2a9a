package slugify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation runs collapse", "Test Post!!", "test-post"},
		{"leading and trailing stripped", "  --Big Sale--  ", "big-sale"},
		{"digits kept", "Top 10 SUVs of 2024", "top-10-suvs-of-2024"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"only punctuation", "!!!", ""},
		{"mixed separators", "One_Two/Three", "one-two-three"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Make(tt.title))
		})
	}
}
