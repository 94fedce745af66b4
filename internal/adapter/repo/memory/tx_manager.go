package memory

import "context"

type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

// RunInPlayerTx serializes work per player: two explores for the same player
// never interleave their read and write of the stats row, while distinct
// players proceed in parallel.
func (t TxManager) RunInPlayerTx(ctx context.Context, playerID string, fn func(ctx context.Context) error) error {
	l := t.store.playerLock(playerID)
	l.Lock()
	defer l.Unlock()
	return fn(ctx)
}
