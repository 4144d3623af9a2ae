package generation

import "strings"

// GreetingMessage is the fixed assistant reply for greeting queries.
const GreetingMessage = "Hello 👋 I'm NexFlow’s AI assistant. How can I help you today?"

var greetingTokens = map[string]bool{
	"hi":           true,
	"hello":        true,
	"hey":          true,
	"good morning": true,
	"good evening": true,
}

// IsGreeting reports whether the query, case-insensitively trimmed, exactly
// matches a greeting token. Greetings short-circuit the whole pipeline before
// any retrieval happens.
func IsGreeting(query string) bool {
	return greetingTokens[strings.ToLower(strings.TrimSpace(query))]
}
