package sms

import "strings"

// Parsed is the structured form of an inbound SMS body.
type Parsed struct {
	// Name is the first token uppercased. Empty for blank messages.
	Name string

	// Args holds the key/value pairs following the command token. Keys are
	// lowercased with a trailing colon stripped, so "FARMER_ID: 7" and
	// "farmer_id 7" parse the same.
	Args map[string]string

	// Original is the raw message body as received.
	Original string
}

// Get returns the argument for key, or empty string when absent.
func (p *Parsed) Get(key string) string {
	return p.Args[key]
}

// Parse splits an SMS body into a command name and key/value arguments.
//
// Tokens after the command are consumed pairwise. A trailing token without a
// value is discarded, and a repeated key keeps its last value. Parse never
// fails: unknown or blank commands are the dispatcher's problem.
func Parse(text string) *Parsed {
	parsed := &Parsed{
		Args:     make(map[string]string),
		Original: text,
	}

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return parsed
	}

	parsed.Name = strings.ToUpper(fields[0])

	for i := 1; i+1 < len(fields); i += 2 {
		key := strings.ToLower(strings.TrimSuffix(fields[i], ":"))
		parsed.Args[key] = fields[i+1]
	}

	return parsed
}
