package repl

import "strings"

// Tokenize splits an input line on whitespace. The first token, lowercased,
// is the command keyword; the remaining tokens are positional arguments.
// raw preserves the first token as typed for the unknown-command message.
// No quoting or escaping is supported.
func Tokenize(line string) (keyword string, args []string, raw string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil, ""
	}
	return strings.ToLower(parts[0]), parts[1:], parts[0]
}
