package kernelsuffixtree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Zubayear/radixforge/internal/treemap"
)

// WeightFunctionRegistry is a named lookup of WeightFunction values, so
// a host application can select a kernel weighting from configuration
// data (a CLI flag, a config file key) without a type switch in caller
// code. It stores no tree state and does not affect ComputeKernel's
// semantics.
type WeightFunctionRegistry struct {
	byName *treemap.TreeMap[string, WeightFunction]
}

// NewWeightFunctionRegistry returns a registry pre-populated with "sum".
// "exp:<lambda>" names are parsed on Lookup rather than pre-registered,
// since the λ parameter is unbounded.
func NewWeightFunctionRegistry() *WeightFunctionRegistry {
	r := &WeightFunctionRegistry{byName: treemap.New[string, WeightFunction]()}
	r.Register("sum", Sum{})
	return r
}

// Register associates name with wf, overwriting any prior registration.
func (r *WeightFunctionRegistry) Register(name string, wf WeightFunction) {
	r.byName.Put(name, wf)
}

// Lookup resolves name to a WeightFunction. "exp:<lambda>" is parsed
// on the fly into an Exp{Lambda: <lambda>}; any other unregistered name
// reports false.
func (r *WeightFunctionRegistry) Lookup(name string) (WeightFunction, bool) {
	if wf, ok := r.byName.Get(name); ok {
		return wf, true
	}
	if lambda, ok := strings.CutPrefix(name, "exp:"); ok {
		if v, err := strconv.ParseFloat(lambda, 64); err == nil {
			return Exp{Lambda: v}, true
		}
	}
	return nil, false
}

// MustLookup is Lookup but panics on an unresolvable name; intended for
// startup-time configuration wiring where a bad name is a programmer
// error, not a runtime condition to recover from.
func (r *WeightFunctionRegistry) MustLookup(name string) WeightFunction {
	wf, ok := r.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("kernelsuffixtree: no WeightFunction registered as %q", name))
	}
	return wf
}
