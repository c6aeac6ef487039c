package storage

import (
	"encoding/json"
	"errors"

	"crowdsim/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeMinionRecord(rec model.MinionRecord) ([]byte, error) {
	return json.Marshal(rec)
}

func DecodeMinionRecord(data []byte) (model.MinionRecord, error) {
	var rec model.MinionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.MinionRecord{}, err
	}
	if err := checkVersion(rec.VersionedRecord); err != nil {
		return model.MinionRecord{}, err
	}
	return rec, nil
}

// Stamp sets the current schema and codec versions on a record before it is
// persisted.
func Stamp(rec model.MinionRecord) model.MinionRecord {
	rec.SchemaVersion = CurrentSchemaVersion
	rec.CodecVersion = CurrentCodecVersion
	return rec
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
