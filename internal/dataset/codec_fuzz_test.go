//go:build go1.18

package dataset_test

import (
	"bytes"
	"testing"

	"github.com/ahrav/go-accord/internal/dataset"
)

func FuzzDecode(f *testing.F) {
	// Valid dataset seeds
	f.Add(`{
  "segmentation_type": "linear",
  "items": {
    "item1": {"coder1": [2, 8, 2, 1], "coder2": [2, 1, 7, 2, 1]}
  }
}`)
	f.Add(`{
  "segmentation_type": "linear",
  "items": {
    "item1": {"a": [1, 5], "b": [5, 1]},
    "item2": {"a": [6], "b": [6]}
  }
}`)
	// Structurally broken seeds
	f.Add(`{"segmentation_type": "hierarchical", "items": {}}`)
	f.Add(`{"segmentation_type": "linear", "items": {"item1": {"c1": [0]}}}`)
	f.Add(`{}`)
	f.Add(``)
	f.Add(`[1, 2, 3]`)

	f.Fuzz(func(t *testing.T, data string) {
		// Should not panic
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panic decoding dataset: %v", r)
			}
		}()

		ds, err := dataset.DecodeBytes([]byte(data))
		if err != nil {
			return // Malformed input is expected
		}

		// Anything that decodes must survive a round trip unchanged.
		encoded, err := dataset.EncodeBytes(ds)
		if err != nil {
			t.Fatalf("re-encode decoded dataset: %v", err)
		}
		again, err := dataset.DecodeBytes(encoded)
		if err != nil {
			t.Fatalf("decode re-encoded dataset: %v", err)
		}
		second, err := dataset.EncodeBytes(again)
		if err != nil {
			t.Fatalf("re-encode round-tripped dataset: %v", err)
		}
		if !bytes.Equal(encoded, second) {
			t.Errorf("round trip not stable:\nfirst:  %s\nsecond: %s", encoded, second)
		}
	})
}
