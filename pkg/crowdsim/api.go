// Package crowdsim is the public entry point for simulating crowd-sourced
// annotation: a roster of synthetic annotators ("minions") that each label
// subjects under a fixed behavior policy.
package crowdsim

import (
	"context"
	"time"

	"crowdsim/internal/model"
	"crowdsim/internal/platform"
	"crowdsim/internal/storage"
)

const defaultDBPath = "crowdsim.db"

type Options struct {
	StoreKind string
	DBPath    string

	// Seed drives every stochastic minion. Zero means a time-based seed;
	// pass a fixed value for reproducible rosters.
	Seed int64
}

// MinionSpec describes one minion to register. Kind selects the behavior:
// "expert" echoes the gold label, "constant" always answers Label, "random"
// draws uniformly from Labels, "noisy" flips the gold label per
// ConfusionMatrix, "ml" is the reserved learned-behavior placeholder and
// always fails.
type MinionSpec struct {
	ID              int
	Kind            string
	Label           int
	Labels          []int
	ConfusionMatrix []float64
}

type MinionInfo struct {
	ID   int
	Kind string
}

// Classification mirrors the (subject, label) pair every classify call
// returns.
type Classification struct {
	SubjectID int
	Label     int
}

type Client struct {
	store  storage.Store
	roster *platform.Roster
	seed   int64
}

func New(opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = storage.DefaultStoreKind()
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}

	return &Client{store: store, seed: seed}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

func (c *Client) Init(ctx context.Context) error {
	_, err := c.ensureRoster(ctx)
	return err
}

// Register adds a minion to the roster. Construction is fail-fast: a spec
// with confusion-matrix entries outside [0,1] or the "ml" kind never makes
// it into the roster or the store.
func (c *Client) Register(ctx context.Context, spec MinionSpec) error {
	r, err := c.ensureRoster(ctx)
	if err != nil {
		return err
	}
	return r.Register(ctx, model.MinionRecord{
		ID:              spec.ID,
		Kind:            spec.Kind,
		Label:           spec.Label,
		Labels:          spec.Labels,
		ConfusionMatrix: spec.ConfusionMatrix,
	})
}

// Deregister removes a minion from the roster and the store.
func (c *Client) Deregister(ctx context.Context, minionID int) error {
	r, err := c.ensureRoster(ctx)
	if err != nil {
		return err
	}
	return r.Deregister(ctx, minionID)
}

// Classify asks a minion that labels unconditionally (constant, random) for
// its label on one subject.
func (c *Client) Classify(ctx context.Context, minionID, subjectID int) (Classification, error) {
	r, err := c.ensureRoster(ctx)
	if err != nil {
		return Classification{}, err
	}
	got, err := r.Classify(minionID, subjectID)
	if err != nil {
		return Classification{}, err
	}
	return Classification{SubjectID: got.SubjectID, Label: got.Label}, nil
}

// ClassifyGold asks a gold-conditioned minion (expert, noisy) for its label
// on one subject whose true class is known.
func (c *Client) ClassifyGold(ctx context.Context, minionID, subjectID, goldLabel int) (Classification, error) {
	r, err := c.ensureRoster(ctx)
	if err != nil {
		return Classification{}, err
	}
	got, err := r.ClassifyGold(minionID, subjectID, goldLabel)
	if err != nil {
		return Classification{}, err
	}
	return Classification{SubjectID: got.SubjectID, Label: got.Label}, nil
}

// Minions lists the registered roster in id order.
func (c *Client) Minions(ctx context.Context) ([]MinionInfo, error) {
	r, err := c.ensureRoster(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]MinionInfo, 0)
	for _, id := range r.IDs() {
		m, ok := r.Minion(id)
		if !ok {
			continue
		}
		out = append(out, MinionInfo{ID: m.ID(), Kind: string(m.Kind())})
	}
	return out, nil
}

func (c *Client) ensureRoster(ctx context.Context) (*platform.Roster, error) {
	if c.roster != nil {
		return c.roster, nil
	}
	r := platform.NewRoster(platform.Config{Store: c.store, Seed: c.seed})
	if err := r.Init(ctx); err != nil {
		return nil, err
	}
	c.roster = r
	return c.roster, nil
}
