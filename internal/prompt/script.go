// internal/prompt/script.go
package prompt

// ScriptCall records one call made against a Script.
type ScriptCall struct {
	Method   string
	Question string
	Info     []string
	Default  string
	Value    string
	Pattern  string
}

// Script replays canned answers in place of a Terminal and records
// every call. Once the answers run out, Ask returns the empty string.
type Script struct {
	Calls    []ScriptCall
	Answers  []string
	Confirms []bool
	AskErr   error

	nextAnswer  int
	nextConfirm int
}

func NewScript(answers ...string) *Script {
	return &Script{Answers: answers}
}

func (s *Script) Ask(question string, info []string, defaultValue string) (string, error) {
	s.Calls = append(s.Calls, ScriptCall{
		Method:   "Ask",
		Question: question,
		Info:     info,
		Default:  defaultValue,
	})
	if s.AskErr != nil {
		return "", s.AskErr
	}
	if s.nextAnswer >= len(s.Answers) {
		return "", nil
	}
	answer := s.Answers[s.nextAnswer]
	s.nextAnswer++
	return answer, nil
}

func (s *Script) Reject(value, pattern string) {
	s.Calls = append(s.Calls, ScriptCall{Method: "Reject", Value: value, Pattern: pattern})
}

func (s *Script) Confirm(question string) (bool, error) {
	s.Calls = append(s.Calls, ScriptCall{Method: "Confirm", Question: question})
	if s.nextConfirm >= len(s.Confirms) {
		return false, nil
	}
	ok := s.Confirms[s.nextConfirm]
	s.nextConfirm++
	return ok, nil
}

// AskCalls returns only the recorded Ask calls.
func (s *Script) AskCalls() []ScriptCall {
	var calls []ScriptCall
	for _, c := range s.Calls {
		if c.Method == "Ask" {
			calls = append(calls, c)
		}
	}
	return calls
}
