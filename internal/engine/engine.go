// Package engine defines the formatting engine the server invokes. The
// engine itself is an external collaborator; the server only depends on
// this interface.
package engine

import "fmtls/internal/config"

// Range restricts formatting to a byte-offset span of the text.
type Range struct {
	Start int
	End   int
}

// Engine produces the canonical formatting of a document. rng may be nil
// to format the whole text. Formatting is a pure function of its inputs;
// it must succeed for any content the server previously accepted.
type Engine interface {
	Format(text string, cfg config.Config, rng *Range) (string, error)
}
