package storage

import (
	"context"

	"crowdsim/internal/model"
)

// Store persists the minion roster: the immutable configuration each minion
// was constructed with. Classification outputs are never stored.
type Store interface {
	Init(ctx context.Context) error
	SaveMinion(ctx context.Context, rec model.MinionRecord) error
	GetMinion(ctx context.Context, id int) (model.MinionRecord, bool, error)
	ListMinions(ctx context.Context) ([]model.MinionRecord, error)
	DeleteMinion(ctx context.Context, id int) error
}
