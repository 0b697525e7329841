package portfolio

import "errors"

// Domain-specific errors for the portfolio package.
var (
	ErrNotLoaded   = errors.New("portfolio is not loaded")
	ErrMissingName = errors.New("portfolio has no name")
	ErrNoPath      = errors.New("portfolio path is not configured")
)
