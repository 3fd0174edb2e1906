// internal/env/env.go
package env

import "strings"

// fallbackMaxSize is the POSIX-era 128K ARG_MAX, used when the platform
// offers nothing better.
const fallbackMaxSize = 131072

type Pair struct {
	Key   string
	Value string
}

// Env is a resolved environment in template order.
type Env []Pair

// Bytes renders KEY=value lines, one per entry, each ending in a
// newline. Values go out verbatim, no quoting or escaping.
func (e Env) Bytes() []byte {
	if len(e) == 0 {
		return nil
	}
	var b strings.Builder
	for _, p := range e {
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(p.Value)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
