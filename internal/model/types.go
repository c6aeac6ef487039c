package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// Classification is the outcome of one classify call: the subject that was
// labeled and the label the minion assigned to it.
type Classification struct {
	SubjectID int `json:"subject_id"`
	Label     int `json:"label"`
}

// MinionRecord is the persisted configuration of one minion. Only the fields
// relevant to the record's kind are populated: Label for constant minions,
// Labels for uniform-random minions, ConfusionMatrix for noisy minions.
type MinionRecord struct {
	VersionedRecord
	ID              int       `json:"id"`
	Kind            string    `json:"kind"`
	Label           int       `json:"label,omitempty"`
	Labels          []int     `json:"labels,omitempty"`
	ConfusionMatrix []float64 `json:"confusion_matrix,omitempty"`
}

// BinaryLabels is the label set for a binary classification task.
func BinaryLabels() []int {
	return []int{0, 1}
}
