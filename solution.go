/*
Copyright © 2015-2026 Leo Antunes <leo@costela.net>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package highs

// Solution is an immutable snapshot of variable values and objective value.
// It stays valid after the session is mutated or disposed.
type Solution struct {
	values    []float64
	objective float64
}

// NewSolution builds a Solution from a copy of values.
func NewSolution(values []float64, objective float64) *Solution {
	return &Solution{
		values:    append([]float64(nil), values...),
		objective: objective,
	}
}

// VariableValues returns a copy of all variable values in column order.
func (s *Solution) VariableValues() []float64 {
	return append([]float64(nil), s.values...)
}

// VariableValue returns the value of the variable at index. It panics if index
// is out of range, like a slice access.
func (s *Solution) VariableValue(index int) float64 {
	return s.values[index]
}

func (s *Solution) ObjectiveValue() float64 {
	return s.objective
}

func (s *Solution) NumVariables() int {
	return len(s.values)
}

// Basis is an immutable snapshot of the basis status of every column and row.
type Basis struct {
	cols []BasisStatus
	rows []BasisStatus
}

// NewBasis builds a Basis from copies of cols and rows.
func NewBasis(cols, rows []BasisStatus) *Basis {
	return &Basis{
		cols: append([]BasisStatus(nil), cols...),
		rows: append([]BasisStatus(nil), rows...),
	}
}

// ColStatus returns a copy of the column statuses.
func (b *Basis) ColStatus() []BasisStatus {
	return append([]BasisStatus(nil), b.cols...)
}

// RowStatus returns a copy of the row statuses.
func (b *Basis) RowStatus() []BasisStatus {
	return append([]BasisStatus(nil), b.rows...)
}

func (b *Basis) NumColumns() int { return len(b.cols) }

func (b *Basis) NumRows() int { return len(b.rows) }
