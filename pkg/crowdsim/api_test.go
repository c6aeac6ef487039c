package crowdsim

import (
	"context"
	"errors"
	"testing"

	"crowdsim/internal/minion"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c, err := New(Options{Seed: 42})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if err := c.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	return c
}

func TestClientScenario(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	if err := c.Register(ctx, MinionSpec{ID: 1, Kind: "expert"}); err != nil {
		t.Fatalf("register expert: %v", err)
	}
	got, err := c.ClassifyGold(ctx, 1, 1, 0)
	if err != nil {
		t.Fatalf("expert classify: %v", err)
	}
	if got != (Classification{SubjectID: 1, Label: 0}) {
		t.Fatalf("expected (1,0), got %+v", got)
	}

	if err := c.Register(ctx, MinionSpec{ID: 2, Kind: "constant", Label: 0}); err != nil {
		t.Fatalf("register constant: %v", err)
	}
	got, err = c.Classify(ctx, 2, 1)
	if err != nil {
		t.Fatalf("constant classify: %v", err)
	}
	if got != (Classification{SubjectID: 1, Label: 0}) {
		t.Fatalf("expected (1,0), got %+v", got)
	}

	if err := c.Register(ctx, MinionSpec{ID: 3, Kind: "constant", Label: 1}); err != nil {
		t.Fatalf("register constant: %v", err)
	}
	got, err = c.Classify(ctx, 3, 1)
	if err != nil {
		t.Fatalf("constant classify: %v", err)
	}
	if got != (Classification{SubjectID: 1, Label: 1}) {
		t.Fatalf("expected (1,1), got %+v", got)
	}
}

func TestClientRandomMinionCoversBothClasses(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	if err := c.Register(ctx, MinionSpec{ID: 4, Kind: "random", Labels: []int{0, 1}}); err != nil {
		t.Fatalf("register random: %v", err)
	}

	seen := map[int]struct{}{}
	for i := 0; i < 100; i++ {
		got, err := c.Classify(ctx, 4, 1)
		if err != nil {
			t.Fatalf("classify: %v", err)
		}
		seen[got.Label] = struct{}{}
	}
	if len(seen) != 2 {
		t.Fatalf("expected both classes in 100 draws, saw %v", seen)
	}
}

func TestClientRejectsInvalidConfusionMatrix(t *testing.T) {
	c := newTestClient(t)

	err := c.Register(context.Background(), MinionSpec{ID: 5, Kind: "noisy", ConfusionMatrix: []float64{-0.2, 0.5}})
	if !errors.Is(err, minion.ErrInvalidConfusionMatrix) {
		t.Fatalf("expected ErrInvalidConfusionMatrix, got %v", err)
	}
}

func TestClientRejectsUnimplementedKind(t *testing.T) {
	c := newTestClient(t)

	err := c.Register(context.Background(), MinionSpec{ID: 6, Kind: "ml"})
	if !errors.Is(err, minion.ErrUnimplemented) {
		t.Fatalf("expected ErrUnimplemented, got %v", err)
	}
}

func TestClientRejectsUnsupportedKind(t *testing.T) {
	c := newTestClient(t)

	if err := c.Register(context.Background(), MinionSpec{ID: 7, Kind: "oracle"}); err == nil {
		t.Fatal("expected error for unsupported kind")
	}
}

func TestClientMinionsListing(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	specs := []MinionSpec{
		{ID: 3, Kind: "constant", Label: 1},
		{ID: 1, Kind: "expert"},
		{ID: 2, Kind: "noisy", ConfusionMatrix: []float64{0.9, 0.8}},
	}
	for _, spec := range specs {
		if err := c.Register(ctx, spec); err != nil {
			t.Fatalf("register %s: %v", spec.Kind, err)
		}
	}

	got, err := c.Minions(ctx)
	if err != nil {
		t.Fatalf("minions: %v", err)
	}
	want := []MinionInfo{{1, "expert"}, {2, "noisy"}, {3, "constant"}}
	if len(got) != len(want) {
		t.Fatalf("expected %d minions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestClientDeterministicUnderFixedSeed(t *testing.T) {
	ctx := context.Background()

	draws := func() []int {
		c, err := New(Options{Seed: 7})
		if err != nil {
			t.Fatalf("new client: %v", err)
		}
		if err := c.Register(ctx, MinionSpec{ID: 4, Kind: "noisy", ConfusionMatrix: []float64{0.7, 0.7}}); err != nil {
			t.Fatalf("register: %v", err)
		}
		out := make([]int, 0, 50)
		for i := 0; i < 50; i++ {
			got, err := c.ClassifyGold(ctx, 4, i, i%2)
			if err != nil {
				t.Fatalf("classify: %v", err)
			}
			out = append(out, got.Label)
		}
		return out
	}

	a, b := draws(), draws()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d diverged: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestNewRejectsUnsupportedStore(t *testing.T) {
	if _, err := New(Options{StoreKind: "cloud"}); err == nil {
		t.Fatal("expected unsupported store error")
	}
}
