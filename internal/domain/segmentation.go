// Package domain provides the segmentation data model for multi-annotator
// agreement computation. It defines mass sequences, per-item annotation
// records, and the dataset contract consumed by the agreement calculator,
// along with the structural validation that guards every computation.
//
// Segmentation Model:
//   - Mass sequences: ordered positive segment lengths in atomic units
//   - Implicit boundaries: cut points derived from prefix sums
//   - Item annotations: per-coder segmentations of one document
//   - Dataset: item-to-annotations mapping built wholesale by the caller
//   - Structural validation: coder counts, mass totals, positive masses
//
// Invariant Enforcement:
//   - Every item carries at least MinCoders annotations (fail-fast)
//   - All coders on an item agree on the item's total mass
//   - Masses are strictly positive; empty sequences are rejected
//   - Validation walks items and coders in sorted order so the first
//     reported violation is stable across runs
package domain

import "sort"

// MinCoders is the minimum number of annotations an item needs before it
// can contribute to an agreement computation.
const MinCoders = 2

// ItemID identifies one annotated document (a chapter, an article, a
// transcript). Identifiers are opaque; only equality and ordering matter.
type ItemID string

// String returns the string representation of the item identifier.
func (id ItemID) String() string { return string(id) }

// CoderID identifies one annotator. Coder sets may differ between items;
// identifiers are only compared within a single item.
type CoderID string

// String returns the string representation of the coder identifier.
func (id CoderID) String() string { return string(id) }

// MassSequence is one coder's segmentation of a document: the ordered
// lengths, in atomic units, of each contiguous segment. Boundaries are not
// stored; they are the implicit cut points between adjacent masses.
type MassSequence []int

// Total returns the document length in atomic units, the sum of all masses.
func (m MassSequence) Total() int {
	var total int
	for _, mass := range m {
		total += mass
	}
	return total
}

// Segments returns the number of segments in the sequence.
func (m MassSequence) Segments() int { return len(m) }

// PotentialBoundaries returns the number of positions at which a boundary
// could be placed: one between each pair of adjacent atomic units.
func (m MassSequence) PotentialBoundaries() int { return m.Total() - 1 }

// Boundaries returns the positions of the cuts the sequence places, as
// prefix sums in ascending order. The document end is not a boundary, so a
// single-segment sequence yields no positions.
func (m MassSequence) Boundaries() []int {
	if len(m) < 2 {
		return nil
	}
	positions := make([]int, 0, len(m)-1)
	var sum int
	for _, mass := range m[:len(m)-1] {
		sum += mass
		positions = append(positions, sum)
	}
	return positions
}

// Clone returns an independent copy of the sequence.
func (m MassSequence) Clone() MassSequence {
	if m == nil {
		return nil
	}
	out := make(MassSequence, len(m))
	copy(out, m)
	return out
}

// ItemAnnotations holds every coder's segmentation of a single item.
type ItemAnnotations map[CoderID]MassSequence

// Coders returns the item's coder identifiers in ascending order.
func (a ItemAnnotations) Coders() []CoderID {
	coders := make([]CoderID, 0, len(a))
	for coder := range a {
		coders = append(coders, coder)
	}
	sort.Slice(coders, func(i, j int) bool { return coders[i] < coders[j] })
	return coders
}

// TotalMass returns the item's document length according to its first
// coder in sorted order, or zero when the item has no annotations. After
// a successful Validate all coders agree on this value.
func (a ItemAnnotations) TotalMass() int {
	coders := a.Coders()
	if len(coders) == 0 {
		return 0
	}
	return a[coders[0]].Total()
}

// Dataset maps items to their annotations. It is constructed wholesale by
// the caller, passed once into a computation, and never mutated by it.
type Dataset map[ItemID]ItemAnnotations

// Items returns the dataset's item identifiers in ascending order.
func (d Dataset) Items() []ItemID {
	items := make([]ItemID, 0, len(d))
	for item := range d {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i] < items[j] })
	return items
}

// Coders returns the distinct coder identifiers across all items in
// ascending order.
func (d Dataset) Coders() []CoderID {
	seen := make(map[CoderID]struct{})
	for _, ann := range d {
		for coder := range ann {
			seen[coder] = struct{}{}
		}
	}
	coders := make([]CoderID, 0, len(seen))
	for coder := range seen {
		coders = append(coders, coder)
	}
	sort.Slice(coders, func(i, j int) bool { return coders[i] < coders[j] })
	return coders
}

// Clone returns a deep copy of the dataset.
func (d Dataset) Clone() Dataset {
	if d == nil {
		return nil
	}
	out := make(Dataset, len(d))
	for item, ann := range d {
		annCopy := make(ItemAnnotations, len(ann))
		for coder, masses := range ann {
			annCopy[coder] = masses.Clone()
		}
		out[item] = annCopy
	}
	return out
}

// Validate checks the dataset's structural invariants and returns the
// first violation found, walking items and coders in sorted order.
//
// Checks, per item:
//   - At least MinCoders annotations (CoderCountError otherwise).
//   - Every mass is a positive integer and every sequence is non-empty
//     (MassValueError otherwise).
//   - Every coder's masses sum to the same total (MassMismatchError
//     otherwise, reported against the first coder in sorted order).
//
// A single failing item invalidates the whole dataset; no partial results
// are produced from datasets that fail validation.
func (d Dataset) Validate() error {
	for _, item := range d.Items() {
		ann := d[item]
		coders := ann.Coders()
		if len(coders) < MinCoders {
			return &CoderCountError{Item: item, Coders: len(coders)}
		}

		reference := coders[0]
		var referenceTotal int
		for _, coder := range coders {
			masses := ann[coder]
			if len(masses) == 0 {
				return &MassValueError{Item: item, Coder: coder, Index: 0, Value: 0}
			}
			var total int
			for i, mass := range masses {
				if mass <= 0 {
					return &MassValueError{Item: item, Coder: coder, Index: i, Value: mass}
				}
				total += mass
			}
			if coder == reference {
				referenceTotal = total
				continue
			}
			if total != referenceTotal {
				return &MassMismatchError{
					Item:           item,
					Coder:          coder,
					Total:          total,
					Reference:      reference,
					ReferenceTotal: referenceTotal,
				}
			}
		}
	}
	return nil
}
