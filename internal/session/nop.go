package session

import "context"

// NopPersister discards snapshots; used when persistence is disabled.
type NopPersister struct{}

func (NopPersister) Save(context.Context, Snapshot) error { return nil }

func (NopPersister) Load(context.Context) (Snapshot, error) { return EmptySnapshot(), nil }

func (NopPersister) String() string { return "none" }
