package radixtree

import "fmt"

// InvalidArgumentError reports a programmer error: a malformed call
// (negative offset, out-of-range index, a child-key clash) that the
// call aborts on rather than silently repairs, per the library's
// error-handling contract. Not-found conditions are never represented
// this way — they return an empty result instead.
type InvalidArgumentError struct {
	Op     string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("radixtree: %s: %s", e.Op, e.Reason)
}
