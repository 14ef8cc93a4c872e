package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the agreement computation. Structured error types
// below wrap these so callers can branch with errors.Is on the kind or
// errors.As when they need the offending identifiers.
var (
	// ErrCoderCount indicates an item with fewer than MinCoders annotations.
	ErrCoderCount = errors.New("item has fewer than two coder annotations")

	// ErrMassMismatch indicates coders that disagree on an item's total mass.
	ErrMassMismatch = errors.New("coders disagree on item total mass")

	// ErrMassValue indicates a segment mass that is not a positive integer.
	ErrMassValue = errors.New("segment mass must be a positive integer")

	// ErrDegenerateAgreement indicates a chance-agreement term that leaves
	// the coefficient mathematically undefined.
	ErrDegenerateAgreement = errors.New("agreement coefficient is undefined")
)

// CoderCountError reports an item that cannot contribute to an agreement
// computation because too few coders annotated it. The whole dataset is
// rejected; agreement over a single annotation is meaningless.
type CoderCountError struct {
	// Item is the offending item.
	Item ItemID

	// Coders is the number of annotations the item carries.
	Coders int
}

// Error returns a description naming the item and its annotation count.
func (e *CoderCountError) Error() string {
	return fmt.Sprintf("item %q has %d coder(s), need at least %d", e.Item, e.Coders, MinCoders)
}

// Unwrap returns ErrCoderCount for errors.Is matching.
func (e *CoderCountError) Unwrap() error { return ErrCoderCount }

// MassMismatchError reports a coder whose segment masses sum to a different
// document length than another coder's on the same item. The two totals
// cannot both describe the same document, so the input is malformed.
type MassMismatchError struct {
	// Item is the offending item.
	Item ItemID

	// Coder is the coder whose total disagrees with the reference.
	Coder CoderID

	// Total is the disagreeing coder's mass sum.
	Total int

	// Reference is the coder whose total the item is compared against,
	// the first coder in sorted order.
	Reference CoderID

	// ReferenceTotal is the reference coder's mass sum.
	ReferenceTotal int
}

// Error returns a description naming both coders and their totals.
func (e *MassMismatchError) Error() string {
	return fmt.Sprintf("item %q: coder %q total mass %d does not match coder %q total mass %d",
		e.Item, e.Coder, e.Total, e.Reference, e.ReferenceTotal)
}

// Unwrap returns ErrMassMismatch for errors.Is matching.
func (e *MassMismatchError) Unwrap() error { return ErrMassMismatch }

// MassValueError reports a segment mass that is zero or negative, or a
// coder annotation with no segments at all. A zero-length segment is
// meaningless in a linear segmentation.
type MassValueError struct {
	// Item is the offending item.
	Item ItemID

	// Coder is the coder that produced the invalid sequence.
	Coder CoderID

	// Index is the position of the invalid mass within the sequence.
	Index int

	// Value is the invalid mass. Zero with Index zero also covers an
	// empty sequence.
	Value int
}

// Error returns a description naming the item, coder, and offending mass.
func (e *MassValueError) Error() string {
	return fmt.Sprintf("item %q: coder %q: segment %d has non-positive mass %d",
		e.Item, e.Coder, e.Index, e.Value)
}

// Unwrap returns ErrMassValue for errors.Is matching.
func (e *MassValueError) Unwrap() error { return ErrMassValue }

// DegenerateAgreementError reports an input whose chance-agreement term
// equals one, or that admits no boundary decisions at all. In both cases
// the coefficient's defining ratio has a zero denominator and the
// statistic is undefined.
type DegenerateAgreementError struct {
	// Reason describes which degenerate condition was hit.
	Reason string
}

// Error returns the degenerate condition description.
func (e *DegenerateAgreementError) Error() string {
	return fmt.Sprintf("agreement coefficient is undefined: %s", e.Reason)
}

// Unwrap returns ErrDegenerateAgreement for errors.Is matching.
func (e *DegenerateAgreementError) Unwrap() error { return ErrDegenerateAgreement }
