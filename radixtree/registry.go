package radixtree

import (
	"fmt"

	"github.com/Zubayear/radixforge/internal/treemap"
)

// ProcessorRegistry is a named lookup of WordItemProcessor values, for
// config-driven selection (a CLI flag, a config file key) without a
// type switch in caller code. It stores no tree state.
type ProcessorRegistry[C comparable, D any, N any] struct {
	byName *treemap.TreeMap[string, WordItemProcessor[C, D, N]]
}

// NewProcessorRegistry returns a registry pre-populated with "null".
// "storage" and "kernel" are left for the caller to register, since
// they carry capability constraints on N (WordItemAdder[D], Weighted)
// this package's unconstrained N cannot express generically.
func NewProcessorRegistry[C comparable, D any, N any]() *ProcessorRegistry[C, D, N] {
	r := &ProcessorRegistry[C, D, N]{byName: treemap.New[string, WordItemProcessor[C, D, N]]()}
	r.Register("null", NullProcessor[C, D, N]{})
	return r
}

// Register associates name with p, overwriting any prior registration.
func (r *ProcessorRegistry[C, D, N]) Register(name string, p WordItemProcessor[C, D, N]) {
	r.byName.Put(name, p)
}

// Lookup resolves name to a WordItemProcessor.
func (r *ProcessorRegistry[C, D, N]) Lookup(name string) (WordItemProcessor[C, D, N], bool) {
	return r.byName.Get(name)
}

// MustLookup is Lookup but panics on an unresolvable name.
func (r *ProcessorRegistry[C, D, N]) MustLookup(name string) WordItemProcessor[C, D, N] {
	p, ok := r.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("radixtree: no WordItemProcessor registered as %q", name))
	}
	return p
}
