package storage

import (
	"errors"
	"testing"

	"crowdsim/internal/model"
)

func TestMinionRecordCodecRoundTrip(t *testing.T) {
	input := Stamp(model.MinionRecord{
		ID:              7,
		Kind:            "random",
		Labels:          []int{0, 1, 2},
		ConfusionMatrix: nil,
	})

	payload, err := EncodeMinionRecord(input)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	output, err := DecodeMinionRecord(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if output.ID != 7 || output.Kind != "random" || len(output.Labels) != 3 {
		t.Fatalf("unexpected record: %+v", output)
	}
}

func TestDecodeMinionRecordRejectsVersionMismatch(t *testing.T) {
	stale := model.MinionRecord{
		VersionedRecord: model.VersionedRecord{SchemaVersion: 0, CodecVersion: CurrentCodecVersion},
		ID:              1,
		Kind:            "expert",
	}
	payload, err := EncodeMinionRecord(stale)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeMinionRecord(payload); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
}

func TestDecodeMinionRecordRejectsGarbage(t *testing.T) {
	if _, err := DecodeMinionRecord([]byte("{")); err == nil {
		t.Fatal("expected decode error")
	}
}
