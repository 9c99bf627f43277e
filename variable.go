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

import "fmt"

// VarType is the integrality kind of a variable.
type VarType int

const (
	ContinuousVariable VarType = iota
	IntegerVariable
	SemiContinuousVariable
	SemiIntegerVariable
	SemiSemiIntegerVariable
	BinaryVariable
)

func (t VarType) String() string {
	switch t {
	case ContinuousVariable:
		return "Continuous"
	case IntegerVariable:
		return "Integer"
	case SemiContinuousVariable:
		return "SemiContinuous"
	case SemiIntegerVariable:
		return "SemiInteger"
	case SemiSemiIntegerVariable:
		return "SemiSemiInteger"
	case BinaryVariable:
		return "Binary"
	default:
		return fmt.Sprintf("VarType(%d)", int(t))
	}
}

func (t VarType) valid() bool {
	return t >= ContinuousVariable && t <= BinaryVariable
}

// DecodeVarType maps a raw integrality value to its named kind.
func DecodeVarType(v int) (VarType, error) {
	if t := VarType(v); t.valid() {
		return t, nil
	}
	return ContinuousVariable, fmt.Errorf("%w: variable type %d", ErrUnknownStatus, v)
}

// Sense is the optimization direction of the objective.
type Sense int

// The values match the native objective sense encoding.
const (
	Minimize Sense = 1
	Maximize Sense = -1
)

func (s Sense) String() string {
	switch s {
	case Minimize:
		return "Minimize"
	case Maximize:
		return "Maximize"
	default:
		return fmt.Sprintf("Sense(%d)", int(s))
	}
}
