// Package boundary turns segment mass sequences into boundary placements
// and measures how closely two coders' placements agree. It implements the
// near-miss-aware boundary comparison that underlies the segmentation
// agreement coefficient.
//
// Comparison Model:
//   - A mass sequence induces a set of cut positions (prefix sums)
//   - Positions present in both sets are matches
//   - Positions within the transposition window of a counterpart are
//     near misses, penalized by their span rather than counted as full
//     disagreement
//   - Remaining positions are full misses, one edit each
//
// Near-Miss Resolution:
//   - Candidates are scanned in ascending position order, nearest span
//     first, and accepted greedily
//   - A boundary consumed by an accepted near miss cannot pair again
//   - A position held by both coders never participates in a near miss;
//     it is already a match
//
// All comparisons are pure functions over small integer sets; the weighted
// results are exact rationals so downstream pooling loses no precision.
package boundary

import (
	"math/big"
	"sort"

	"github.com/ahrav/go-accord/internal/domain"
)

// DefaultWindow is the standard transposition window: boundaries one unit
// apart count as near misses, anything farther apart as full misses.
const DefaultWindow = 2

// Set holds the boundary positions one coder placed in one item, in
// ascending order with no duplicates.
type Set []int

// FromMasses derives the boundary set induced by a mass sequence. A
// single-segment sequence places no boundaries and yields an empty set.
func FromMasses(masses domain.MassSequence) Set {
	positions := masses.Boundaries()
	if len(positions) == 0 {
		return nil
	}
	return Set(positions)
}

// Distance is the outcome of comparing two coders' boundary sets: exact
// matches, accepted near misses with their spans, and full misses.
type Distance struct {
	// Matches is the number of positions both coders cut.
	Matches int

	// Transpositions holds the span of each accepted near miss, in
	// scan order.
	Transpositions []int

	// Additions is the number of boundaries left unpaired on either
	// side, each a full miss.
	Additions int
}

// Compare measures the distance between two boundary sets under the given
// transposition window. A window of w lets boundaries up to w-1 units
// apart pair as near misses; w below two disables near misses entirely.
// Both sets must hold distinct positions, as FromMasses produces.
func Compare(a, b Set, window int) Distance {
	inA := make(map[int]bool, len(a))
	for _, pos := range a {
		inA[pos] = true
	}
	inB := make(map[int]bool, len(b))
	for _, pos := range b {
		inB[pos] = true
	}

	var dist Distance
	for _, pos := range a {
		if inB[pos] {
			dist.Matches++
		}
	}

	// Near-miss scan in ascending position order so overlapping
	// candidates resolve identically on every run.
	positions := make([]int, 0, len(inA)+len(inB))
	for pos := range inA {
		positions = append(positions, pos)
	}
	for pos := range inB {
		if !inA[pos] {
			positions = append(positions, pos)
		}
	}
	sort.Ints(positions)

	usedA := make(map[int]bool, len(a))
	usedB := make(map[int]bool, len(b))
	for _, pos := range positions {
		for span := 1; span < window; span++ {
			far := pos + span
			switch {
			case inA[pos] && inB[far] && !inB[pos] && !inA[far]:
				if usedA[pos] || usedB[far] {
					continue
				}
				usedA[pos], usedB[far] = true, true
				dist.Transpositions = append(dist.Transpositions, span)
			case inB[pos] && inA[far] && !inA[pos] && !inB[far]:
				if usedB[pos] || usedA[far] {
					continue
				}
				usedB[pos], usedA[far] = true, true
				dist.Transpositions = append(dist.Transpositions, span)
			}
		}
	}

	for _, pos := range a {
		if !inB[pos] && !usedA[pos] {
			dist.Additions++
		}
	}
	for _, pos := range b {
		if !inA[pos] && !usedB[pos] {
			dist.Additions++
		}
	}

	return dist
}

// Boundaries returns the number of distinct boundary placements the
// comparison involved: each match, near miss, and full miss counts once.
func (d Distance) Boundaries() int {
	return d.Matches + len(d.Transpositions) + d.Additions
}

// EditWeight returns the weighted edit mass of the comparison: one per
// full miss plus span/window per near miss.
func (d Distance) EditWeight(window int) *big.Rat {
	if window < 1 {
		window = 1
	}
	weight := new(big.Rat).SetInt64(int64(d.Additions))
	for _, span := range d.Transpositions {
		weight.Add(weight, big.NewRat(int64(span), int64(window)))
	}
	return weight
}

// Agreement returns the unpenalized boundary mass, Boundaries minus
// EditWeight. Together with Boundaries it forms the per-pair agreement
// ratio pooled by the coefficient calculator.
func (d Distance) Agreement(window int) *big.Rat {
	agreement := new(big.Rat).SetInt64(int64(d.Boundaries()))
	return agreement.Sub(agreement, d.EditWeight(window))
}
