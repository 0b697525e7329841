package portfolio

import (
	"context"

	"portfolio-chatbot/internal/model"
)

// Source gives read access to the loaded portfolio.
type Source interface {
	// Get returns the current record and whether one has been loaded.
	Get() (model.Portfolio, bool)

	// SystemPrompt returns the prompt built from the current record.
	SystemPrompt() string
}

// Reloader re-reads the portfolio from its backing file.
type Reloader interface {
	Reload(ctx context.Context) error
}
