package minion

import (
	"fmt"
	"math/rand"

	"crowdsim/internal/model"
)

// FromRecord revives a persisted minion record into a live minion. The rng
// is only consulted for stochastic kinds and may be nil for the others.
func FromRecord(rec model.MinionRecord, rng *rand.Rand) (Minion, error) {
	kind, err := ParseKind(rec.Kind)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindExpert:
		return NewExpert(rec.ID), nil
	case KindConstant:
		return NewConstant(rec.ID, rec.Label), nil
	case KindUniformRandom:
		m, err := NewUniformRandom(rec.ID, rec.Labels, rng)
		if err != nil {
			return nil, err
		}
		return m, nil
	case KindConfusionNoisy:
		if len(rec.ConfusionMatrix) != 2 {
			return nil, fmt.Errorf("confusion matrix must have exactly 2 entries, got %d", len(rec.ConfusionMatrix))
		}
		m, err := NewConfusionNoisy(rec.ID, [2]float64{rec.ConfusionMatrix[0], rec.ConfusionMatrix[1]}, rng)
		if err != nil {
			return nil, err
		}
		return m, nil
	case KindUnimplemented:
		m, err := NewUnimplemented(rec.ID)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported minion kind: %s", rec.Kind)
	}
}
