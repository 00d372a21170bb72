package persistent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikeEscaper(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain keyword", "bridge", "bridge"},
		{"percent", "100% cotton", `100\% cotton`},
		{"underscore", "snake_case", `snake\_case`},
		{"backslash", `C:\temp`, `C:\\temp`},
		{"all metacharacters", `\%_`, `\\\%\_`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, likeEscaper.Replace(tt.input))
		})
	}
}
