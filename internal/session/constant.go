package session

const (
	// SnapshotVersion is written into every snapshot; Restore rejects newer versions.
	SnapshotVersion = 1

	// DefaultMaxTurns is the history cap used when none is configured.
	DefaultMaxTurns = 16
)
