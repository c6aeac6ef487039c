// Package minion implements synthetic crowd annotators: small fixed-behavior
// classifiers used to simulate the labeling patterns of a citizen-science
// crowd. Every minion is constructed once with immutable configuration and
// classifies subjects many times; the stochastic variants own an injected
// random source so runs are reproducible under a fixed seed.
package minion

import (
	"errors"
	"fmt"

	"crowdsim/internal/model"
)

type Kind string

const (
	KindExpert         Kind = "expert"
	KindConstant       Kind = "constant"
	KindUniformRandom  Kind = "random"
	KindConfusionNoisy Kind = "noisy"
	KindUnimplemented  Kind = "ml"
)

var (
	ErrUnimplemented          = errors.New("minion capability not implemented")
	ErrInvalidConfusionMatrix = errors.New("confusion matrix entries must be in the interval [0,1]")
)

// Minion is the common identity surface shared by every variant.
type Minion interface {
	ID() int
	Kind() Kind
}

// Classifier labels a subject unconditionally, without access to the true
// class. Constant and uniform-random minions have this shape.
type Classifier interface {
	Minion
	Classify(subjectID int) (model.Classification, error)
}

// GoldClassifier labels a subject given its externally known true class.
// Expert and confusion-noisy minions have this shape.
type GoldClassifier interface {
	Minion
	ClassifyGold(subjectID, goldLabel int) (model.Classification, error)
}

// ParseKind maps a kind name to its Kind constant.
func ParseKind(name string) (Kind, error) {
	switch Kind(name) {
	case KindExpert, KindConstant, KindUniformRandom, KindConfusionNoisy, KindUnimplemented:
		return Kind(name), nil
	default:
		return "", fmt.Errorf("unsupported minion kind: %s", name)
	}
}
