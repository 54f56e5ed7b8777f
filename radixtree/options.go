package radixtree

import (
	"github.com/Zubayear/radixforge/internal/logging"
	"github.com/Zubayear/radixforge/internal/options"
)

// config holds a RadixTree's optional construction parameters.
type config struct {
	logger         logging.Logger
	diagonalMargin int
}

// Option configures a RadixTree at construction time.
type Option = options.Option[config]

func defaultConfig() *config {
	return &config{logger: logging.Noop, diagonalMargin: NoDiagonalMargin}
}

// WithLogger sets the Logger used for diagnostic messages. Defaults to
// a no-op logger.
func WithLogger(l logging.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithDiagonalMargin restricts ApproximateSearch's DP band to within
// margin cells of the main diagonal. Defaults to NoDiagonalMargin
// (unbanded).
func WithDiagonalMargin(margin int) Option {
	return func(c *config) { c.diagonalMargin = margin }
}
