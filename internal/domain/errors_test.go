package domain //nolint:testpackage // keeps error tests beside the taxonomy

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoderCountError(t *testing.T) {
	err := &CoderCountError{Item: "chapter-3", Coders: 1}

	assert.Equal(t, `item "chapter-3" has 1 coder(s), need at least 2`, err.Error())
	assert.ErrorIs(t, err, ErrCoderCount)
	assert.NotErrorIs(t, err, ErrMassMismatch)
}

func TestMassMismatchError(t *testing.T) {
	err := &MassMismatchError{
		Item:           "chapter-3",
		Coder:          "annotator-b",
		Total:          14,
		Reference:      "annotator-a",
		ReferenceTotal: 13,
	}

	assert.Equal(t,
		`item "chapter-3": coder "annotator-b" total mass 14 does not match coder "annotator-a" total mass 13`,
		err.Error())
	assert.ErrorIs(t, err, ErrMassMismatch)
}

func TestMassValueError(t *testing.T) {
	err := &MassValueError{Item: "chapter-3", Coder: "annotator-a", Index: 2, Value: -5}

	assert.Equal(t, `item "chapter-3": coder "annotator-a": segment 2 has non-positive mass -5`, err.Error())
	assert.ErrorIs(t, err, ErrMassValue)
}

func TestDegenerateAgreementError(t *testing.T) {
	err := &DegenerateAgreementError{Reason: "chance agreement equals one"}

	assert.Equal(t, "agreement coefficient is undefined: chance agreement equals one", err.Error())
	assert.ErrorIs(t, err, ErrDegenerateAgreement)
}

func TestErrorKinds_WrapThroughFmt(t *testing.T) {
	// Error kinds must survive an fmt.Errorf %w wrap so callers above the
	// calculator can still branch on them.
	base := &CoderCountError{Item: "item1", Coders: 0}
	wrapped := fmt.Errorf("compute agreement: %w", base)

	assert.ErrorIs(t, wrapped, ErrCoderCount)

	var coderErr *CoderCountError
	require.ErrorAs(t, wrapped, &coderErr)
	assert.Equal(t, ItemID("item1"), coderErr.Item)
}

func TestErrorKinds_AreDistinct(t *testing.T) {
	kinds := []error{ErrCoderCount, ErrMassMismatch, ErrMassValue, ErrDegenerateAgreement}

	for i, a := range kinds {
		for j, b := range kinds {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "%v must not match %v", a, b)
		}
	}
}
