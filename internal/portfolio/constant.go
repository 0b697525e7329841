package portfolio

import "time"

const (
	// watchDebounce coalesces the burst of events editors emit for one save.
	watchDebounce = 250 * time.Millisecond

	promptPreamble = "You are a friendly assistant on %s's portfolio website. " +
		"Answer visitors' questions about %s using only the profile below. " +
		"Keep answers short (2-4 sentences), speak in the third person, and when you do not know something, " +
		"say so and suggest getting in touch directly."
)
