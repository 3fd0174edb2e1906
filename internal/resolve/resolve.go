// internal/resolve/resolve.go
package resolve

import (
	"fmt"

	"github.com/gregvogt/Scaffold/internal/prompt"
	"github.com/gregvogt/Scaffold/internal/secret"
	"github.com/gregvogt/Scaffold/internal/template"
)

// DefaultMaxAttempts bounds validation failures per variable.
const DefaultMaxAttempts = 3

type Resolver struct {
	Prompter    prompt.Prompter
	Secrets     secret.Generator
	MaxAttempts int
}

func New(p prompt.Prompter, g secret.Generator) *Resolver {
	return &Resolver{
		Prompter:    p,
		Secrets:     g,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Resolve produces the value for one variable.
func (r *Resolver) Resolve(v template.Variable) (string, error) {
	// a random default never prompts and is never validated, the user
	// did not choose the value
	if n, ok := template.RandomLength(v.Default); ok {
		return r.Secrets.Generate(n), nil
	}

	question := v.Question
	if question == "" {
		question = v.Key
	}

	attempts := r.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	for i := 0; i < attempts; i++ {
		input, err := r.Prompter.Ask(question, v.Info, v.Default)
		if err != nil {
			return "", fmt.Errorf("prompt for %s: %w", v.Key, err)
		}
		if input == "" {
			input = v.Default
		}
		if n, ok := template.RandomLength(input); ok {
			input = r.Secrets.Generate(n)
		}
		if v.Matches(input) {
			return input, nil
		}
		r.Prompter.Reject(input, v.Pattern)
	}

	return "", &ExhaustedError{Key: v.Key, Pattern: v.Pattern, Attempts: attempts}
}

// ExhaustedError means no answer passed validation in time.
type ExhaustedError struct {
	Key      string
	Pattern  string
	Attempts int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("no valid value for %s after %d attempts (pattern %s)", e.Key, e.Attempts, e.Pattern)
}
