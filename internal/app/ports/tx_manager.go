package ports

import "context"

// TxManager scopes a unit of work to one player. Cooldown and nonce checks
// read-then-write the same stats row, so two in-flight calls for one player
// must serialize; calls for distinct players may run in parallel.
type TxManager interface {
	RunInPlayerTx(ctx context.Context, playerID string, fn func(ctx context.Context) error) error
}
