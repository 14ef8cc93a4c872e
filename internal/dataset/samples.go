package dataset

import "github.com/ahrav/go-accord/internal/domain"

// Sample corpora for tests, documentation, and the seed command. Every
// constructor builds a fresh dataset so callers can mutate their copy
// freely.

// SampleHypothetical returns the two-coder single-item segmentation in
// which the coders disagree by one near miss and one unmatched boundary.
func SampleHypothetical() domain.Dataset {
	return domain.Dataset{
		"item1": {
			"coder1": {2, 8, 2, 1},
			"coder2": {2, 1, 7, 2, 1},
		},
	}
}

// SampleLargeDisagreement returns a single-item pair in which one coder
// segments finely and the other places a single distant boundary.
func SampleLargeDisagreement() domain.Dataset {
	return domain.Dataset{
		"item1": {
			"coder1": {2, 8, 2, 1},
			"coder2": {11, 2},
		},
	}
}

// SampleCompleteAgreement returns a multi-item corpus in which three
// coders segment identically, the ceiling case for any coefficient.
func SampleCompleteAgreement() domain.Dataset {
	return domain.Dataset{
		"item1": {
			"coder1": {2, 8, 2, 1},
			"coder2": {2, 8, 2, 1},
			"coder3": {2, 8, 2, 1},
		},
		"item2": {
			"coder1": {5, 5},
			"coder2": {5, 5},
			"coder3": {5, 5},
		},
	}
}

// SampleSystematicDisagreement returns a pair whose boundaries fall on
// opposite ends of the item, producing below-chance agreement.
func SampleSystematicDisagreement() domain.Dataset {
	return domain.Dataset{
		"item1": {
			"coderA": {1, 5},
			"coderB": {5, 1},
		},
	}
}

// Samples returns every bundled corpus keyed by the name it is seeded
// under.
func Samples() map[string]domain.Dataset {
	return map[string]domain.Dataset{
		"hypothetical":            SampleHypothetical(),
		"large-disagreement":      SampleLargeDisagreement(),
		"complete-agreement":      SampleCompleteAgreement(),
		"systematic-disagreement": SampleSystematicDisagreement(),
	}
}
