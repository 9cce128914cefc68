package repl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vkovtun/go-assistant/internal/repl"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		keyword string
		args    []string
		raw     string
	}{
		{"Simple command", "add Alice 0123456789", "add", []string{"Alice", "0123456789"}, "add"},
		{"Keyword case-insensitive", "ADD Alice 0123456789", "add", []string{"Alice", "0123456789"}, "ADD"},
		{"Argument case preserved", "phone ALICE", "phone", []string{"ALICE"}, "phone"},
		{"Extra whitespace collapsed", "  hello   there  ", "hello", []string{"there"}, "hello"},
		{"No arguments", "all", "all", nil, "all"},
		{"Blank line", "   ", "", nil, ""},
		{"Empty line", "", "", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keyword, args, raw := repl.Tokenize(tt.line)
			assert.Equal(t, tt.keyword, keyword)
			assert.Equal(t, tt.args, args)
			assert.Equal(t, tt.raw, raw)
		})
	}
}
