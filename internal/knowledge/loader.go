package knowledge

import (
	"log/slog"
	"os"
	"strings"
)

const (
	sectionMarker = "## SECTION:"
	topicMarker   = "### "
)

// Corpus holds the loaded fragment set. Immutable after construction.
type Corpus struct {
	fragments []Fragment
}

// NewCorpus wraps a fragment slice as a retrievable corpus.
func NewCorpus(fragments []Fragment) *Corpus {
	return &Corpus{fragments: fragments}
}

// Load reads the corpus document at path. A missing or unreadable file
// degrades to the built-in fragment set rather than failing startup.
func Load(path string, logger *slog.Logger) *Corpus {
	log := logger.With("system", "knowledge")

	if path == "" {
		log.Info("no corpus path configured, using built-in fragments")
		return NewCorpus(builtinFragments())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("corpus unreadable, using built-in fragments",
			"path", path,
			"error", err,
		)
		return NewCorpus(builtinFragments())
	}

	fragments := ParseDocument(string(data))
	if len(fragments) == 0 {
		log.Warn("corpus contained no fragments, using built-in fragments", "path", path)
		return NewCorpus(builtinFragments())
	}

	log.Info("corpus loaded", "path", path, "fragments", len(fragments))
	return NewCorpus(fragments)
}

// ParseDocument splits a corpus document into fragments. Sections are
// introduced by "## SECTION: <name>" markers, topics by "### <tag>: <name>"
// markers; body text accumulates until the next marker. Topic tags that
// match a specialist identifier become retrieval keywords.
func ParseDocument(doc string) []Fragment {
	var fragments []Fragment

	var section, topic, tag string
	var body strings.Builder

	flush := func() {
		text := strings.TrimSpace(body.String())
		if topic != "" && text != "" {
			fragments = append(fragments, newFragment(section, topic, text, tag))
		}
		body.Reset()
	}

	for _, line := range strings.Split(doc, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, sectionMarker):
			flush()
			section = strings.TrimSpace(strings.TrimPrefix(trimmed, sectionMarker))
			topic, tag = "", ""

		case strings.HasPrefix(trimmed, topicMarker):
			flush()
			tag, topic = splitTopicMarker(strings.TrimPrefix(trimmed, topicMarker))

		default:
			body.WriteString(line)
			body.WriteString("\n")
		}
	}
	flush()

	return fragments
}

func splitTopicMarker(marker string) (tag, topic string) {
	before, after, found := strings.Cut(marker, ":")
	if !found {
		return "", strings.TrimSpace(before)
	}
	return strings.ToLower(strings.TrimSpace(before)), strings.TrimSpace(after)
}
