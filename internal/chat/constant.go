package chat

// Status tells the caller who produced a reply.
type Status string

const (
	// StatusSuccess means the hosted model answered.
	StatusSuccess Status = "success"
	// StatusFallback means the local keyword generator answered.
	StatusFallback Status = "fallback"
	// StatusError means an internal failure was recovered and ApologyReply was returned.
	StatusError Status = "error"
)

// Topic is a fallback branch.
type Topic string

const (
	TopicSkills     Topic = "skills"
	TopicProjects   Topic = "projects"
	TopicContact    Topic = "contact"
	TopicLearning   Topic = "learning"
	TopicExperience Topic = "experience"
	TopicAbout      Topic = "about"
	TopicGreeting   Topic = "greeting"
)

const (
	// DefaultGreetingPrefix opens every greeting reply.
	DefaultGreetingPrefix = "Hi! I'm the portfolio assistant"

	// ApologyReply is returned with StatusError.
	ApologyReply = "Sorry, something went wrong on my side. Please try again in a moment."

	// MaxMessageRunes bounds a single user message.
	MaxMessageRunes = 4000

	// MaxSessionIDLength bounds client-supplied session ids.
	MaxSessionIDLength = 128
)
