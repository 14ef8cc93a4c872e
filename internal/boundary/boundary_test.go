package boundary //nolint:testpackage // exercises scan-order internals directly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-accord/internal/domain"
)

func TestFromMasses(t *testing.T) {
	tests := []struct {
		name   string
		masses domain.MassSequence
		want   Set
	}{
		{
			name:   "four segments",
			masses: domain.MassSequence{2, 8, 2, 1},
			want:   Set{2, 10, 12},
		},
		{
			name:   "five segments",
			masses: domain.MassSequence{2, 1, 7, 2, 1},
			want:   Set{2, 3, 10, 12},
		},
		{
			name:   "two segments",
			masses: domain.MassSequence{11, 2},
			want:   Set{11},
		},
		{
			name:   "single segment",
			masses: domain.MassSequence{13},
			want:   nil,
		},
		{
			name:   "empty sequence",
			masses: domain.MassSequence{},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromMasses(tt.masses))
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name               string
		a, b               Set
		window             int
		wantMatches        int
		wantTranspositions []int
		wantAdditions      int
	}{
		{
			name:        "identical placements",
			a:           Set{2, 10, 12},
			b:           Set{2, 10, 12},
			window:      DefaultWindow,
			wantMatches: 3,
		},
		{
			name:          "near miss blocked by a shared position",
			a:             Set{2, 10, 12},
			b:             Set{2, 3, 10, 12},
			window:        DefaultWindow,
			wantMatches:   3,
			wantAdditions: 1,
		},
		{
			name:               "near miss accepted and remainders are misses",
			a:                  Set{2, 10, 12},
			b:                  Set{11},
			window:             DefaultWindow,
			wantTranspositions: []int{1},
			wantAdditions:      2,
		},
		{
			name:               "consumed boundary cannot pair twice",
			a:                  Set{10, 12},
			b:                  Set{11},
			window:             DefaultWindow,
			wantTranspositions: []int{1},
			wantAdditions:      1,
		},
		{
			name:               "greedy scan order claims the earlier pair",
			a:                  Set{1, 3},
			b:                  Set{2},
			window:             DefaultWindow,
			wantTranspositions: []int{1},
			wantAdditions:      1,
		},
		{
			name:               "near misses pair in both directions",
			a:                  Set{5, 9},
			b:                  Set{6, 8},
			window:             DefaultWindow,
			wantTranspositions: []int{1, 1},
		},
		{
			name:          "window one disables near misses",
			a:             Set{2, 10, 12},
			b:             Set{11},
			window:        1,
			wantAdditions: 4,
		},
		{
			name:               "wider window reaches farther",
			a:                  Set{5},
			b:                  Set{7},
			window:             3,
			wantTranspositions: []int{2},
		},
		{
			name:   "empty against empty",
			a:      nil,
			b:      nil,
			window: DefaultWindow,
		},
		{
			name:          "empty against placements",
			a:             nil,
			b:             Set{3, 7},
			window:        DefaultWindow,
			wantAdditions: 2,
		},
		{
			name:          "match blocks its neighbor from pairing",
			a:             Set{2},
			b:             Set{2, 3},
			window:        DefaultWindow,
			wantMatches:   1,
			wantAdditions: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist := Compare(tt.a, tt.b, tt.window)

			assert.Equal(t, tt.wantMatches, dist.Matches, "matches")
			assert.Equal(t, tt.wantTranspositions, dist.Transpositions, "transpositions")
			assert.Equal(t, tt.wantAdditions, dist.Additions, "additions")
		})
	}
}

func TestDistance_Weights(t *testing.T) {
	// The two reference pairs exercised throughout the calculator tests.
	nearMiss := Compare(Set{2, 10, 12}, Set{2, 3, 10, 12}, DefaultWindow)
	require.Equal(t, 4, nearMiss.Boundaries())
	assert.Equal(t, "1", nearMiss.EditWeight(DefaultWindow).RatString())
	assert.Equal(t, "3", nearMiss.Agreement(DefaultWindow).RatString())

	coarse := Compare(Set{2, 10, 12}, Set{11}, DefaultWindow)
	require.Equal(t, 3, coarse.Boundaries())
	assert.Equal(t, "5/2", coarse.EditWeight(DefaultWindow).RatString())
	assert.Equal(t, "1/2", coarse.Agreement(DefaultWindow).RatString())
}

func TestDistance_WeightsEmpty(t *testing.T) {
	dist := Compare(nil, nil, DefaultWindow)

	assert.Equal(t, 0, dist.Boundaries())
	assert.Equal(t, "0", dist.EditWeight(DefaultWindow).RatString())
	assert.Equal(t, "0", dist.Agreement(DefaultWindow).RatString())
}

func TestDistance_WiderWindowWeight(t *testing.T) {
	dist := Compare(Set{5}, Set{7}, 3)

	require.Equal(t, []int{2}, dist.Transpositions)
	assert.Equal(t, "2/3", dist.EditWeight(3).RatString())
	assert.Equal(t, "1/3", dist.Agreement(3).RatString())
}
