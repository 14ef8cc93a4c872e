// Package agreement computes the segmentation-aware multi-annotator Pi
// coefficient: how much better several coders' linear segmentations of
// the same documents agree than chance placement would predict.
//
// Computation Pipeline:
//   - Structural validation of the dataset (coder counts, mass totals)
//   - Pairwise near-miss-aware boundary comparison within each item
//   - Observed agreement: boundary agreement pooled across every item
//     and coder pair
//   - Chance agreement: squared mean segmentation rate over all
//     annotations
//   - Coefficient: (observed - chance) / (1 - chance)
//
// Numeric Contract:
//   - All arithmetic is exact rational; nothing rounds until the caller
//     renders the result
//   - Complete cross-coder agreement yields exactly one
//   - Below-chance agreement yields a negative coefficient, preserved
//     exactly rather than clamped
//   - A zero denominator surfaces as DegenerateAgreementError, never as
//     NaN or an infinity
//
// The computation is a pure function of its input: no state survives a
// call, no I/O happens, and identical datasets always produce
// bit-identical coefficients.
package agreement

import (
	"fmt"
	"math/big"

	"github.com/ahrav/go-accord/internal/boundary"
	"github.com/ahrav/go-accord/internal/domain"
)

// Params tunes the boundary comparison underlying the coefficient.
type Params struct {
	// Window is the transposition window: boundaries fewer than Window
	// units apart pair as near misses rather than full disagreements.
	Window int `json:"window" validate:"required,min=1"`
}

// DefaultParams returns parameters with the standard transposition
// window, boundary.DefaultWindow.
func DefaultParams() Params { return Params{Window: boundary.DefaultWindow} }

// Validate checks the parameters against their contract.
// Returns nil if valid, or a validation error describing the violation.
func (p Params) Validate() error { return validate.Struct(p) }

// FleissPi computes the multi-rater Pi coefficient of a dataset with the
// default parameters. The dataset is validated first; structural errors
// surface before any numeric work begins.
func FleissPi(ds domain.Dataset) (Coefficient, error) {
	return FleissPiParams(ds, DefaultParams())
}

// FleissPiParams computes the multi-rater Pi coefficient under explicit
// parameters.
//
// Errors:
//   - domain.CoderCountError, domain.MassMismatchError,
//     domain.MassValueError when the dataset is structurally invalid
//   - domain.DegenerateAgreementError when the coefficient is undefined
//     (chance agreement equals one, or no coder pair placed boundaries)
func FleissPiParams(ds domain.Dataset, params Params) (Coefficient, error) {
	if err := params.Validate(); err != nil {
		return Coefficient{}, fmt.Errorf("agreement parameters: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return Coefficient{}, err
	}

	observed, err := observedAgreement(ds, params.Window)
	if err != nil {
		return Coefficient{}, err
	}

	expected, err := chanceAgreement(ds)
	if err != nil {
		return Coefficient{}, err
	}

	denominator := new(big.Rat).Sub(big.NewRat(1, 1), expected)
	if denominator.Sign() == 0 {
		return Coefficient{}, &domain.DegenerateAgreementError{Reason: "chance agreement equals one"}
	}

	pi := new(big.Rat).Sub(observed, expected)
	pi.Quo(pi, denominator)
	return newCoefficient(pi), nil
}

// observedAgreement pools boundary agreement over every item and every
// unordered coder pair within the item: the sum of unpenalized boundary
// mass over the sum of boundaries involved. Pairs in which neither coder
// placed a boundary contribute nothing to either sum.
func observedAgreement(ds domain.Dataset, window int) (*big.Rat, error) {
	agreement := new(big.Rat)
	var boundaries int64

	for _, item := range ds.Items() {
		ann := ds[item]
		coders := ann.Coders()

		sets := make([]boundary.Set, len(coders))
		for i, coder := range coders {
			sets[i] = boundary.FromMasses(ann[coder])
		}

		for i := 0; i < len(coders); i++ {
			for j := i + 1; j < len(coders); j++ {
				dist := boundary.Compare(sets[i], sets[j], window)
				total := dist.Boundaries()
				if total == 0 {
					continue
				}
				boundaries += int64(total)
				agreement.Add(agreement, dist.Agreement(window))
			}
		}
	}

	if boundaries == 0 {
		return nil, &domain.DegenerateAgreementError{Reason: "no coder pair placed any boundaries"}
	}
	return agreement.Quo(agreement, big.NewRat(boundaries, 1)), nil
}

// chanceAgreement squares the mean marginal segmentation rate across all
// (item, coder) annotations. Each annotation contributes its segment
// count over the item's potential boundary positions; the squared mean is
// the probability that two coders cutting independently at that rate
// would agree on a placement.
func chanceAgreement(ds domain.Dataset) (*big.Rat, error) {
	rate := new(big.Rat)
	var annotations int64

	for _, item := range ds.Items() {
		ann := ds[item]
		potential := ann.TotalMass() - 1
		if potential < 1 {
			return nil, &domain.DegenerateAgreementError{
				Reason: fmt.Sprintf("item %q has no potential boundary positions", item),
			}
		}
		for _, coder := range ann.Coders() {
			rate.Add(rate, big.NewRat(int64(ann[coder].Segments()), int64(potential)))
			annotations++
		}
	}

	mean := rate.Quo(rate, big.NewRat(annotations, 1))
	return new(big.Rat).Mul(mean, mean), nil
}
