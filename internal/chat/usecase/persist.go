package usecase

import (
	"context"
	"time"
)

// afterTurn counts a handled message and schedules a background save every N messages.
func (uc *implUseCase) afterTurn(ctx context.Context) {
	every := int64(uc.cfg.EveryNMessages)
	if every <= 0 {
		return
	}
	if n := uc.handled.Add(1); n%every == 0 {
		uc.persistAsync(ctx)
	}
}

// persistAsync saves off the request path. Saves are serialized by persistMu and the
// snapshot is taken under the lock, so a later save never writes older state.
// Once Flush has started no new background save is scheduled.
func (uc *implUseCase) persistAsync(ctx context.Context) {
	uc.asyncMu.Lock()
	if uc.closed {
		uc.asyncMu.Unlock()
		return
	}
	uc.inflight.Add(1)
	uc.asyncMu.Unlock()

	go func() {
		defer uc.inflight.Done()

		bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.cfg.PersistTimeout)
		defer cancel()

		if err := uc.persist(bgCtx); err != nil {
			uc.l.Warnf(bgCtx, "internal.chat.usecase.persistAsync: %v", err)
		}
	}()
}

func (uc *implUseCase) persist(ctx context.Context) error {
	uc.persistMu.Lock()
	defer uc.persistMu.Unlock()

	start := time.Now()
	snap := uc.store.Snapshot()
	if err := uc.persister.Save(ctx, snap); err != nil {
		uc.metrics.IncPersist("error")
		return err
	}

	uc.metrics.IncPersist("success")
	uc.l.Debugf(ctx, "internal.chat.usecase.persist: saved %d sessions in %s", len(snap.Sessions), time.Since(start))
	return nil
}

// Save writes the current sessions now. Safe to call while requests are being served.
func (uc *implUseCase) Save(ctx context.Context) error {
	return uc.persist(ctx)
}

// Flush stops scheduling background saves, waits for the in-flight ones and writes the
// current sessions. Turns handled after Flush are only written by a later Save or Flush.
func (uc *implUseCase) Flush(ctx context.Context) error {
	uc.asyncMu.Lock()
	uc.closed = true
	uc.asyncMu.Unlock()

	uc.inflight.Wait()
	return uc.persist(ctx)
}
