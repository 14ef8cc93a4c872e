// Package dataset reads and writes segmentation datasets in their JSON
// interchange form and bundles the small sample corpora used by tests
// and the seed command.
//
// Interchange Format:
//   - A top-level envelope declaring the segmentation type and holding
//     the items, each item a map of coder names to mass sequences
//   - Only linear segmentation is defined; the type field exists so the
//     format can grow without breaking old files
//
// Strictness:
//   - Unknown fields are rejected, not ignored
//   - Masses must be JSON integers; fractional syntax fails the decode
//   - Every decoded dataset passes full structural validation before it
//     reaches a caller
package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ahrav/go-accord/internal/domain"
)

// SegmentationType identifies how a dataset's mass sequences are to be
// interpreted.
type SegmentationType string

// SegmentationLinear is the only defined segmentation type: each item is
// a one-dimensional sequence of units cut into contiguous segments.
const SegmentationLinear SegmentationType = "linear"

// String returns the string representation of the segmentation type.
func (t SegmentationType) String() string { return string(t) }

// envelope is the on-disk JSON shape of a dataset.
type envelope struct {
	// SegmentationType declares how the mass sequences are interpreted.
	// Only "linear" is accepted.
	SegmentationType SegmentationType `json:"segmentation_type" validate:"required,eq=linear"`

	// Items maps item names to per-coder mass sequences.
	Items map[string]map[string][]int `json:"items" validate:"required,min=1"`
}

// Decode reads one JSON dataset from r, rejecting unknown fields, and
// returns it fully validated. Structural violations surface as the
// domain error kinds so callers can match on them.
func Decode(r io.Reader) (domain.Dataset, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var env envelope
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if err := validate.Struct(&env); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	ds := make(domain.Dataset, len(env.Items))
	for item, coders := range env.Items {
		ann := make(domain.ItemAnnotations, len(coders))
		for coder, masses := range coders {
			ann[domain.CoderID(coder)] = domain.MassSequence(masses)
		}
		ds[domain.ItemID(item)] = ann
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// DecodeBytes decodes one JSON dataset held in memory.
func DecodeBytes(data []byte) (domain.Dataset, error) {
	return Decode(bytes.NewReader(data))
}

// Encode writes ds to w in the interchange format: validated first, keys
// sorted, two-space indent, trailing newline. Output is byte-identical
// for equal datasets.
func Encode(w io.Writer, ds domain.Dataset) error {
	data, err := EncodeBytes(ds)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// EncodeBytes renders ds to its interchange form in memory.
func EncodeBytes(ds domain.Dataset) ([]byte, error) {
	if len(ds) == 0 {
		return nil, fmt.Errorf("encode dataset: no items")
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	env := envelope{
		SegmentationType: SegmentationLinear,
		Items:            make(map[string]map[string][]int, len(ds)),
	}
	for item, ann := range ds {
		coders := make(map[string][]int, len(ann))
		for coder, masses := range ann {
			coders[string(coder)] = []int(masses)
		}
		env.Items[string(item)] = coders
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode dataset: %w", err)
	}
	return append(data, '\n'), nil
}
