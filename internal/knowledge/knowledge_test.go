package knowledge_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"promptmaster/internal/knowledge"
)

const sampleDoc = `
## SECTION: Prompt Engineering Fundamentals

### clarity: Be Clear and Specific
Vague prompts produce vague results. State exactly what you want, including
the format, length, and level of detail you expect in the output.

### coding: Specify Language and Context
Code prompts should name the programming language, framework versions, and
any existing code the change must integrate with.

## SECTION: Advanced Techniques

### reasoning: Chain of Thought
Ask the model to reason step by step before giving a final answer. This
improves accuracy on complex analysis and debugging tasks.
`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseDocument(t *testing.T) {
	fragments := knowledge.ParseDocument(sampleDoc)

	if len(fragments) != 3 {
		t.Fatalf("fragments = %d, want 3", len(fragments))
	}

	first := fragments[0]
	if first.Section != "Prompt Engineering Fundamentals" {
		t.Errorf("section = %q", first.Section)
	}
	if first.Topic != "Be Clear and Specific" {
		t.Errorf("topic = %q", first.Topic)
	}
	if !strings.Contains(first.Body, "Vague prompts") {
		t.Errorf("body = %q", first.Body)
	}

	if fragments[2].Section != "Advanced Techniques" {
		t.Errorf("third section = %q", fragments[2].Section)
	}
}

func TestParseDocumentTopicTagBecomesKeyword(t *testing.T) {
	fragments := knowledge.ParseDocument(sampleDoc)

	var coding *knowledge.Fragment
	for i := range fragments {
		if fragments[i].Topic == "Specify Language and Context" {
			coding = &fragments[i]
		}
	}
	if coding == nil {
		t.Fatal("coding fragment not parsed")
	}

	found := false
	for _, kw := range coding.Keywords {
		if kw == "coding" {
			found = true
		}
	}
	if !found {
		t.Errorf("keywords %v missing topic tag %q", coding.Keywords, "coding")
	}
}

func TestParseDocumentEmpty(t *testing.T) {
	if got := knowledge.ParseDocument(""); len(got) != 0 {
		t.Errorf("fragments = %d, want 0", len(got))
	}
	if got := knowledge.ParseDocument("just prose, no markers"); len(got) != 0 {
		t.Errorf("fragments = %d, want 0", len(got))
	}
}

func TestParseDocumentDeterministicKeywords(t *testing.T) {
	a := knowledge.ParseDocument(sampleDoc)
	b := knowledge.ParseDocument(sampleDoc)

	for i := range a {
		if len(a[i].Keywords) != len(b[i].Keywords) {
			t.Fatalf("fragment %d keyword count differs across parses", i)
		}
		for j := range a[i].Keywords {
			if a[i].Keywords[j] != b[i].Keywords[j] {
				t.Errorf("fragment %d keyword %d: %q vs %q", i, j, a[i].Keywords[j], b[i].Keywords[j])
			}
		}
	}
}

func TestLoadMissingPathUsesBuiltins(t *testing.T) {
	corpus := knowledge.Load("", testLogger())
	if corpus == nil {
		t.Fatal("Load returned nil corpus")
	}

	ctx := corpus.Retrieve("write a function to parse JSON", "better code output", "coding")
	if ctx == "" {
		t.Error("retrieve returned empty context from builtins")
	}
}

func TestLoadUnreadableFileUsesBuiltins(t *testing.T) {
	corpus := knowledge.Load("/nonexistent/corpus.md", testLogger())
	if corpus == nil {
		t.Fatal("Load returned nil corpus")
	}

	ctx := corpus.Retrieve("anything", "anything", "general")
	if ctx == "" {
		t.Error("retrieve returned empty context")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.md")
	if err := os.WriteFile(path, []byte(sampleDoc), 0644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}

	corpus := knowledge.Load(path, testLogger())
	ctx := corpus.Retrieve("debug this function step by step", "fix the bug", "coding")

	if !strings.Contains(ctx, "PROMPT ENGINEERING BEST PRACTICES:") {
		t.Errorf("context missing header: %q", ctx)
	}
	if !strings.Contains(ctx, "[") || !strings.Contains(ctx, " / ") {
		t.Errorf("context missing fragment labels: %q", ctx)
	}
}

func TestRetrieveNeverEmpty(t *testing.T) {
	tests := []struct {
		name       string
		corpus     *knowledge.Corpus
		prompt     string
		goal       string
		specialist string
	}{
		{
			name:       "empty corpus",
			corpus:     knowledge.NewCorpus(nil),
			prompt:     "write a poem",
			goal:       "better poetry",
			specialist: "creative",
		},
		{
			name:       "no matching fragments",
			corpus:     knowledge.NewCorpus(knowledge.ParseDocument(sampleDoc)),
			prompt:     "zzzz",
			goal:       "qqqq",
			specialist: "xxxx",
		},
		{
			name:       "empty query",
			corpus:     knowledge.NewCorpus(knowledge.ParseDocument(sampleDoc)),
			prompt:     "",
			goal:       "",
			specialist: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := tt.corpus.Retrieve(tt.prompt, tt.goal, tt.specialist)
			if ctx == "" {
				t.Error("retrieve returned empty context")
			}
			if !strings.Contains(ctx, "PROMPT ENGINEERING BEST PRACTICES:") {
				t.Errorf("context missing header: %q", ctx)
			}
		})
	}
}

func TestRetrieveRanksRelevantFragmentsFirst(t *testing.T) {
	corpus := knowledge.NewCorpus(knowledge.ParseDocument(sampleDoc))

	ctx := corpus.Retrieve(
		"debug my function, reason step by step",
		"find the bug in this code",
		"coding",
	)

	codingIdx := strings.Index(ctx, "Specify Language and Context")
	if codingIdx < 0 {
		t.Fatalf("coding fragment not retrieved: %q", ctx)
	}
}

func TestRetrieveDeterministic(t *testing.T) {
	corpus := knowledge.NewCorpus(knowledge.ParseDocument(sampleDoc))

	first := corpus.Retrieve("write clear code", "improve clarity", "coding")
	for range 5 {
		if got := corpus.Retrieve("write clear code", "improve clarity", "coding"); got != first {
			t.Fatal("retrieve is not deterministic for identical input")
		}
	}
}

func TestRetrieveBounded(t *testing.T) {
	var doc strings.Builder
	doc.WriteString("## SECTION: Prompt Engineering Fundamentals\n")
	for i := 0; i < 20; i++ {
		doc.WriteString("### clarity: Clarity Tip ")
		doc.WriteString(strings.Repeat("x", i+1))
		doc.WriteString("\nWrite clear and specific prompts with good context and structure.\n")
	}

	corpus := knowledge.NewCorpus(knowledge.ParseDocument(doc.String()))
	ctx := corpus.Retrieve("write a clear specific prompt with context", "clarity", "general")

	if got := strings.Count(ctx, "[Prompt Engineering Fundamentals"); got > 8 {
		t.Errorf("retrieved %d fragments, want at most 8", got)
	}
}
