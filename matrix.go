// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package geo

// Matrix is a quad-tree subdivision of a region.
type Matrix []Cell

// Cell is one quadrant of a Matrix. Cells holds the subdivision of Region
// and is empty at the deepest level.
type Cell struct {
	Region *Region
	Cells  Matrix
}

// Leaves returns the regions at the deepest level of the matrix.
func (m Matrix) Leaves() []*Region {
	var leaves []*Region

	for _, cell := range m {
		if len(cell.Cells) == 0 {
			leaves = append(leaves, cell.Region)

			continue
		}

		leaves = append(leaves, cell.Cells.Leaves()...)
	}

	return leaves
}

// Matrix splits the region into four quadrants, each spanning from the
// center to one of the corners, and repeats that depth times, so that the
// matrix holds 4^depth leaves. An empty region or a depth below 1 yields an
// empty matrix.
func (r *Region) Matrix(depth int) Matrix {
	if depth < 1 || !r.HasCoordinates() {
		return nil
	}

	center := Coordinate{lat: r.CenterLatitude(), lon: r.CenterLongitude()}
	box := r.Box()
	corners := [4]Coordinate{
		{lat: float64(box.TopLeftLatitude), lon: float64(box.TopLeftLongitude)},
		{lat: float64(box.TopLeftLatitude), lon: float64(box.BottomRightLongitude)},
		{lat: float64(box.BottomRightLatitude), lon: float64(box.TopLeftLongitude)},
		{lat: float64(box.BottomRightLatitude), lon: float64(box.BottomRightLongitude)},
	}

	m := make(Matrix, len(corners))

	for i, corner := range corners {
		quadrant := NewRegion()
		quadrant.push(center)
		quadrant.push(corner)

		m[i] = Cell{Region: quadrant, Cells: quadrant.Matrix(depth - 1)}
	}

	return m
}
