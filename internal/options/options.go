// Package options provides the small functional-options helper shared by
// every constructor in the module, so each package can declare its own
// config struct without repeating the apply-all-options boilerplate.
package options

// Option mutates a configuration value of type T. Constructors accept
// Option[T] variadically instead of an exported config struct literal.
type Option[T any] func(*T)

// Apply runs every option against cfg in order.
func Apply[T any](cfg *T, opts ...Option[T]) {
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
}
