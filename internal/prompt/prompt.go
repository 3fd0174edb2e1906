// internal/prompt/prompt.go
package prompt

// Prompter collects one line of input for a variable. Ask never
// interprets the answer, defaults and validation belong to the caller.
type Prompter interface {
	Ask(question string, info []string, defaultValue string) (string, error)
	Reject(value, pattern string)
}

// Confirmer asks a yes/no question. Anything but an explicit yes is no.
type Confirmer interface {
	Confirm(question string) (bool, error)
}
