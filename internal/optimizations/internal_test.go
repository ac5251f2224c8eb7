package optimizations

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		prompt  string
		goal    string
		wantErr error
	}{
		{"valid", "write a parser", "correct code", nil},
		{"empty prompt", "", "goal", ErrInvalidPrompt},
		{"empty goal", "prompt", "", ErrInvalidGoal},
		{"prompt at limit", strings.Repeat("a", MaxPromptLength), "goal", nil},
		{"prompt over limit", strings.Repeat("a", MaxPromptLength+1), "goal", ErrInvalidPrompt},
		{"goal at limit", "prompt", strings.Repeat("b", MaxGoalLength), nil},
		{"goal over limit", "prompt", strings.Repeat("b", MaxGoalLength+1), ErrInvalidGoal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.prompt, tt.goal)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCountsRunes(t *testing.T) {
	// Multi-byte characters count once toward the limit.
	prompt := strings.Repeat("é", MaxPromptLength)
	if err := validate(prompt, "goal"); err != nil {
		t.Errorf("validate() error = %v for rune-length prompt at limit", err)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{"shorter than limit", "hello", 10, "hello"},
		{"at limit", "hello", 5, "hello"},
		{"over limit", "hello world", 5, "hello"},
		{"empty", "", 5, ""},
		{"multibyte preserved", "éééé", 2, "éé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.n); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
			}
		})
	}
}
