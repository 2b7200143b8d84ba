package phraser

import (
	"fmt"

	"github.com/samber/lo"
)

// Phraser cycles through a set of phrases without repeating any until the
// whole pool has been used. The first phrase is always returned first; after
// that the remaining pool is shuffled between passes so the output doesn't
// feel canned.
//
// Usage:
//
//	phraser := phraser.New([]string{
//	  "Solving %s",
//	  "Let's work through %s",
//	  "Next up: %s",
//	})
//
//	for someCondition {
//	   expression := ...
//	   fmt.Println(phraser.Get(expression))
//	}
type Phraser struct {
	pool      []string
	remaining []string
	usedFirst bool
}

func New(phrases []string) *Phraser {
	return &Phraser{pool: phrases}
}

func (p *Phraser) Get(formatArgs ...any) string {
	if len(p.pool) == 0 {
		return ""
	}

	if !p.usedFirst {
		p.usedFirst = true
		return fmt.Sprintf(p.pool[0], formatArgs...)
	}

	if len(p.remaining) == 0 {
		// refill and shuffle; the fixed opener never comes back unless it is
		// the only phrase there is
		rest := p.pool
		if len(p.pool) > 1 {
			rest = p.pool[1:]
		}
		p.remaining = lo.Shuffle(append([]string{}, rest...))
	}

	phrase := p.remaining[0]
	p.remaining = p.remaining[1:]
	return fmt.Sprintf(phrase, formatArgs...)
}
