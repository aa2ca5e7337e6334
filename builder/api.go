// SPDX-License-Identifier: MIT
// Package: mstcluster/builder
//
// api.go - public types and method tags of the builder package.
// Generators live in impl_*.go.

package builder

// Method tags used as error prefixes.
const (
	MethodMoons = "Moons"
	MethodBlobs = "Blobs"
)

// Minimum sample counts.
const (
	MinMoonsPoints = 2 // one point per moon
	MinBlobsPoints = 1
)

// Dataset is a labelled point set.
//   - Points[i] is the i-th sample; all samples share one dimension.
//   - Labels[i] is the ground-truth group of Points[i].
type Dataset struct {
	Points [][]float64
	Labels []int
}

// Len returns the number of samples.
func (d Dataset) Len() int { return len(d.Points) }

// Dim returns the dimension of the samples (0 for an empty Dataset).
func (d Dataset) Dim() int {
	if len(d.Points) == 0 {
		return 0
	}

	return len(d.Points[0])
}
