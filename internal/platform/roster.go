// Package platform wires the minion roster together: it revives persisted
// minion records into live minions and dispatches classify calls by id.
package platform

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"crowdsim/internal/minion"
	"crowdsim/internal/model"
	"crowdsim/internal/storage"
)

var (
	ErrMinionNotFound = errors.New("minion not found")
	ErrMinionExists   = errors.New("minion already registered")
)

type Config struct {
	Store storage.Store

	// Seed is the base seed for per-minion random sources. Each stochastic
	// minion draws from rand.NewSource(Seed + id), so different minions
	// never share a stream and a fixed seed reproduces a whole roster.
	Seed int64
}

type Roster struct {
	store storage.Store
	seed  int64

	mu      sync.RWMutex
	minions map[int]minion.Minion
}

func NewRoster(cfg Config) *Roster {
	return &Roster{
		store:   cfg.Store,
		seed:    cfg.Seed,
		minions: make(map[int]minion.Minion),
	}
}

// Init initializes the backing store and revives every persisted record into
// a live minion. Records that no longer construct cleanly fail Init rather
// than being skipped.
func (r *Roster) Init(ctx context.Context) error {
	if r.store == nil {
		return errors.New("roster store is required")
	}
	if err := r.store.Init(ctx); err != nil {
		return err
	}

	recs, err := r.store.ListMinions(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range recs {
		m, err := minion.FromRecord(rec, r.rngFor(rec.ID))
		if err != nil {
			return fmt.Errorf("revive minion %d: %w", rec.ID, err)
		}
		r.minions[rec.ID] = m
	}
	return nil
}

// Register validates a record by constructing its minion, persists it, and
// adds it to the live roster. Invalid configuration never reaches the store.
func (r *Roster) Register(ctx context.Context, rec model.MinionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.minions[rec.ID]; exists {
		return fmt.Errorf("%w: %d", ErrMinionExists, rec.ID)
	}

	m, err := minion.FromRecord(rec, r.rngFor(rec.ID))
	if err != nil {
		return err
	}
	if err := r.store.SaveMinion(ctx, storage.Stamp(rec)); err != nil {
		return err
	}
	r.minions[rec.ID] = m
	return nil
}

// Deregister removes a minion from the roster and the store.
func (r *Roster) Deregister(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.minions[id]; !exists {
		return fmt.Errorf("%w: %d", ErrMinionNotFound, id)
	}
	if err := r.store.DeleteMinion(ctx, id); err != nil {
		return err
	}
	delete(r.minions, id)
	return nil
}

func (r *Roster) Minion(id int) (minion.Minion, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.minions[id]
	return m, ok
}

func (r *Roster) IDs() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int, 0, len(r.minions))
	for id := range r.minions {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Classify dispatches an unconditional classify call to the minion with the
// given id.
func (r *Roster) Classify(minionID, subjectID int) (model.Classification, error) {
	m, ok := r.Minion(minionID)
	if !ok {
		return model.Classification{}, fmt.Errorf("%w: %d", ErrMinionNotFound, minionID)
	}
	c, ok := m.(minion.Classifier)
	if !ok {
		return model.Classification{}, fmt.Errorf("minion %d requires a gold label", minionID)
	}
	return c.Classify(subjectID)
}

// ClassifyGold dispatches a gold-conditioned classify call to the minion
// with the given id.
func (r *Roster) ClassifyGold(minionID, subjectID, goldLabel int) (model.Classification, error) {
	m, ok := r.Minion(minionID)
	if !ok {
		return model.Classification{}, fmt.Errorf("%w: %d", ErrMinionNotFound, minionID)
	}
	c, ok := m.(minion.GoldClassifier)
	if !ok {
		return model.Classification{}, fmt.Errorf("minion %d does not take a gold label", minionID)
	}
	return c.ClassifyGold(subjectID, goldLabel)
}

func (r *Roster) rngFor(id int) *rand.Rand {
	return rand.New(rand.NewSource(r.seed + int64(id)))
}
