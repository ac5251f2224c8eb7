// Package knowledge implements the static prompt-engineering reference
// corpus. Fragments are loaded once at process start, tagged with keywords
// from a fixed vocabulary, and scored against optimization requests to
// assemble a bounded context blob for the evaluator stage.
package knowledge

import "strings"

// Fragment is one indexed unit of the reference corpus.
// Keywords are derived once at load time and never mutated afterward,
// so concurrent retrieval reads need no synchronization.
type Fragment struct {
	Section  string
	Topic    string
	Body     string
	Keywords []string
}

// vocabulary is the fixed term set matched against fragment text to derive
// keywords. Keyword derivation is deterministic given the source text.
var vocabulary = []string{
	"coding", "creative", "analyst", "general",
	"code", "function", "debug", "refactor", "algorithm", "api", "test",
	"story", "tone", "audience", "style", "voice", "narrative", "marketing",
	"data", "analysis", "report", "metric", "research", "summary",
	"clarity", "context", "example", "structure", "constraint", "format",
	"reasoning", "role", "persona", "output", "json", "markdown",
	"iteration", "subtask", "step", "template", "instruction",
}

func deriveKeywords(section, topic, body string) []string {
	text := strings.ToLower(section + " " + topic + " " + body)

	var keywords []string
	for _, term := range vocabulary {
		if strings.Contains(text, term) {
			keywords = append(keywords, term)
		}
	}
	return keywords
}

func newFragment(section, topic, body string, tags ...string) Fragment {
	keywords := deriveKeywords(section, topic, body)
	for _, tag := range tags {
		if tag != "" && !contains(keywords, tag) {
			keywords = append(keywords, tag)
		}
	}

	return Fragment{
		Section:  section,
		Topic:    topic,
		Body:     body,
		Keywords: keywords,
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
