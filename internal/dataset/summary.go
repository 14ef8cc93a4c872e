package dataset

import (
	"gonum.org/v1/gonum/stat"

	"github.com/ahrav/go-accord/internal/domain"
)

// ItemSummary describes one item's annotations for display. All values
// are floating point; exactness matters for the coefficient, not here.
type ItemSummary struct {
	// Item names the summarized item.
	Item domain.ItemID `json:"item"`

	// Coders is the number of annotations the item carries.
	Coders int `json:"coders"`

	// TotalMass is the item's unit count.
	TotalMass int `json:"total_mass"`

	// PotentialBoundaries is the number of positions a boundary could
	// occupy, one fewer than the total mass.
	PotentialBoundaries int `json:"potential_boundaries"`

	// SegmentsMean is the mean segment count across coders.
	SegmentsMean float64 `json:"segments_mean"`

	// SegmentsStdDev is the sample standard deviation of segment counts,
	// zero when the item has a single coder.
	SegmentsStdDev float64 `json:"segments_stddev"`

	// BoundaryDensity is the mean fraction of potential positions the
	// coders actually cut.
	BoundaryDensity float64 `json:"boundary_density"`
}

// Summarize computes per-item display statistics in item order.
func Summarize(ds domain.Dataset) []ItemSummary {
	items := ds.Items()
	out := make([]ItemSummary, 0, len(items))

	for _, item := range items {
		ann := ds[item]
		coders := ann.Coders()
		if len(coders) == 0 {
			out = append(out, ItemSummary{Item: item})
			continue
		}

		total := ann.TotalMass()
		potential := 0
		if total > 1 {
			potential = total - 1
		}

		segments := make([]float64, len(coders))
		density := make([]float64, len(coders))
		for i, coder := range coders {
			segs := ann[coder].Segments()
			segments[i] = float64(segs)
			if potential > 0 {
				density[i] = float64(segs-1) / float64(potential)
			}
		}

		summary := ItemSummary{
			Item:                item,
			Coders:              len(coders),
			TotalMass:           total,
			PotentialBoundaries: potential,
			SegmentsMean:        stat.Mean(segments, nil),
			BoundaryDensity:     stat.Mean(density, nil),
		}
		if len(segments) > 1 {
			summary.SegmentsStdDev = stat.StdDev(segments, nil)
		}
		out = append(out, summary)
	}

	return out
}
