package knowledge

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// maxFragments bounds the combined context blob.
	maxFragments = 8
	// specialistExtras bounds the secondary specialist-identity query.
	specialistExtras = 2
)

const contextHeader = "PROMPT ENGINEERING BEST PRACTICES:\n\n"

const fallbackContext = contextHeader +
	"[Fundamentals / universal_guidance]\n" +
	"Write clear, specific prompts: state the task precisely, provide relevant " +
	"background context, specify the expected output format, set explicit " +
	"constraints, and include examples when they help. Assign a role when domain " +
	"expertise matters, and ask for step-by-step reasoning on complex tasks.\n"

// Retrieve scores every fragment against the lower-cased prompt and goal,
// appends up to two specialist-specific extras from a secondary query on the
// selected specialist identifier, and renders the top results as a labeled
// context blob. Retrieval never fails and never returns an empty string; an
// empty result set degrades to a fixed universal-guidance fallback.
func (c *Corpus) Retrieve(promptText, goal, specialist string) string {
	primary := c.rank(strings.ToLower(promptText + " " + goal))

	var extras []*Fragment
	for _, f := range c.rank(strings.ToLower(specialist)) {
		if len(extras) == specialistExtras {
			break
		}
		if !containsFragment(primary, f) {
			extras = append(extras, f)
		}
	}

	combined := append(primary, extras...)
	if len(combined) > maxFragments {
		combined = combined[:maxFragments]
	}

	if len(combined) == 0 {
		return fallbackContext
	}

	var sb strings.Builder
	sb.WriteString(contextHeader)
	for _, f := range combined {
		fmt.Fprintf(&sb, "[%s / %s]\n%s\n\n", f.Section, f.Topic, f.Body)
	}
	return sb.String()
}

// rank returns pointers to fragments with a positive score against the
// query, ordered by descending score. The sort is stable so equal-scoring
// fragments keep corpus order, keeping retrieval deterministic.
func (c *Corpus) rank(query string) []*Fragment {
	type scored struct {
		fragment *Fragment
		score    float64
	}

	var results []scored
	tokens := strings.Fields(query)

	for i := range c.fragments {
		f := &c.fragments[i]
		if s := scoreFragment(f, query, tokens); s > 0 {
			results = append(results, scored{fragment: f, score: s})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	ranked := make([]*Fragment, len(results))
	for i, r := range results {
		ranked[i] = r.fragment
	}
	return ranked
}

func scoreFragment(f *Fragment, query string, tokens []string) float64 {
	var score float64

	for _, kw := range f.Keywords {
		if strings.Contains(query, kw) {
			score += 2
			continue
		}
		for _, tok := range tokens {
			if partialOverlap(tok, kw) {
				score++
			}
		}
	}

	section := strings.ToLower(f.Section)
	topic := strings.ToLower(f.Topic)
	body := strings.ToLower(f.Body)

	for _, tok := range tokens {
		if strings.Contains(section, tok) {
			score++
			break
		}
	}

	for _, tok := range tokens {
		if strings.Contains(topic, tok) {
			score += 2
			break
		}
	}

	for _, tok := range tokens {
		if len(tok) > 3 && strings.Contains(body, tok) {
			score += 0.5
		}
	}

	return score
}

// partialOverlap reports whether one string contains the other as a proper
// substring. Exact matches are handled by the containment pass above.
func partialOverlap(token, keyword string) bool {
	if token == keyword || len(token) < 3 {
		return false
	}
	return strings.Contains(keyword, token) || strings.Contains(token, keyword)
}

func containsFragment(list []*Fragment, f *Fragment) bool {
	for _, item := range list {
		if item == f {
			return true
		}
	}
	return false
}
