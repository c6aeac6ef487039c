package minion

import (
	"errors"
	"fmt"
	"math/rand"

	"crowdsim/internal/model"
)

// Expert always echoes the provided gold label: a perfectly reliable
// annotator.
type Expert struct {
	id int
}

func NewExpert(id int) *Expert {
	return &Expert{id: id}
}

func (m *Expert) ID() int    { return m.id }
func (m *Expert) Kind() Kind { return KindExpert }

func (m *Expert) ClassifyGold(subjectID, goldLabel int) (model.Classification, error) {
	return model.Classification{SubjectID: subjectID, Label: goldLabel}, nil
}

// Constant labels every subject with the same configured label, ignoring the
// subject entirely.
type Constant struct {
	id    int
	label int
}

func NewConstant(id, label int) *Constant {
	return &Constant{id: id, label: label}
}

func (m *Constant) ID() int    { return m.id }
func (m *Constant) Kind() Kind { return KindConstant }

func (m *Constant) Classify(subjectID int) (model.Classification, error) {
	return model.Classification{SubjectID: subjectID, Label: m.label}, nil
}

// UniformRandom draws one label uniformly from the task's label set on every
// call, independent of the subject.
type UniformRandom struct {
	id     int
	labels []int
	rng    *rand.Rand
}

func NewUniformRandom(id int, labels []int, rng *rand.Rand) (*UniformRandom, error) {
	if len(labels) == 0 {
		return nil, errors.New("label set must not be empty")
	}
	if rng == nil {
		return nil, errors.New("random source is required")
	}
	return &UniformRandom{
		id:     id,
		labels: append([]int(nil), labels...),
		rng:    rng,
	}, nil
}

func (m *UniformRandom) ID() int    { return m.id }
func (m *UniformRandom) Kind() Kind { return KindUniformRandom }

func (m *UniformRandom) Classify(subjectID int) (model.Classification, error) {
	label := m.labels[m.rng.Intn(len(m.labels))]
	return model.Classification{SubjectID: subjectID, Label: label}, nil
}

// ConfusionNoisy reports the gold label correctly with a per-class
// probability and the complementary class otherwise. Entry i of the
// confusion vector is the probability of labeling a class-i subject
// correctly, so {1,1} reproduces Expert and {0,0} always flips.
//
// Binary tasks only: flipping is only well defined when "wrong" means one
// other class. Generalizing to multiclass requires the full row of the
// confusion matrix per class, not a single per-class accuracy.
type ConfusionNoisy struct {
	id        int
	confusion [2]float64
	rng       *rand.Rand
}

func NewConfusionNoisy(id int, confusion [2]float64, rng *rand.Rand) (*ConfusionNoisy, error) {
	for i, p := range confusion {
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("%w: entry %d is %g", ErrInvalidConfusionMatrix, i, p)
		}
	}
	if rng == nil {
		return nil, errors.New("random source is required")
	}
	return &ConfusionNoisy{id: id, confusion: confusion, rng: rng}, nil
}

func (m *ConfusionNoisy) ID() int    { return m.id }
func (m *ConfusionNoisy) Kind() Kind { return KindConfusionNoisy }

func (m *ConfusionNoisy) ClassifyGold(subjectID, goldLabel int) (model.Classification, error) {
	if goldLabel != 0 && goldLabel != 1 {
		return model.Classification{}, fmt.Errorf("gold label must be 0 or 1, got %d", goldLabel)
	}
	if m.rng.Float64() < m.confusion[goldLabel] {
		return model.Classification{SubjectID: subjectID, Label: goldLabel}, nil
	}
	return model.Classification{SubjectID: subjectID, Label: 1 - goldLabel}, nil
}

// Unimplemented reserves the minion id space for a future learned-behavior
// annotator. It is an explicit variant so call sites handle it exhaustively,
// but every use fails: NewUnimplemented never returns a minion, and the
// classify methods of the zero value fail the same way.
type Unimplemented struct {
	id int
}

func NewUnimplemented(id int) (*Unimplemented, error) {
	return nil, fmt.Errorf("%w: machine-learning minion %d", ErrUnimplemented, id)
}

func (m *Unimplemented) ID() int    { return m.id }
func (m *Unimplemented) Kind() Kind { return KindUnimplemented }

func (m *Unimplemented) Classify(subjectID int) (model.Classification, error) {
	return model.Classification{}, fmt.Errorf("%w: machine-learning minion %d", ErrUnimplemented, m.id)
}

func (m *Unimplemented) ClassifyGold(subjectID, goldLabel int) (model.Classification, error) {
	return model.Classification{}, fmt.Errorf("%w: machine-learning minion %d", ErrUnimplemented, m.id)
}
