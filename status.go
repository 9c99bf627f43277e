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

// Status is the outcome of a single call into the native solver.
type Status int

const (
	StatusError   Status = -1
	StatusOK      Status = 0
	StatusWarning Status = 1
)

// String returns a string representation of the given status.
func (s Status) String() string {
	switch s {
	case StatusError:
		return "Error"
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "Warning"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// DecodeStatus maps a raw native call status to its named value. Values outside
// the known domain indicate a mismatch with the linked library and are returned
// as errors wrapping ErrUnknownStatus.
func DecodeStatus(v int) (Status, error) {
	switch s := Status(v); s {
	case StatusError, StatusOK, StatusWarning:
		return s, nil
	default:
		return StatusError, fmt.Errorf("%w: call status %d", ErrUnknownStatus, v)
	}
}

// ModelStatus reports the mathematical outcome of a solve. None of its values
// are errors: an infeasible model is a perfectly valid answer.
type ModelStatus int

const (
	ModelStatusNotSet ModelStatus = iota
	ModelStatusLoadError
	ModelStatusModelError
	ModelStatusPresolveError
	ModelStatusSolveError
	ModelStatusPostsolveError
	ModelStatusModelEmpty
	ModelStatusOptimal
	ModelStatusInfeasible
	ModelStatusUnboundedOrInfeasible
	ModelStatusUnbounded
	ModelStatusObjectiveBound
	ModelStatusObjectiveTarget
	ModelStatusTimeLimit
	ModelStatusIterationLimit
	ModelStatusUnknown
)

var modelStatusNames = [...]string{
	"NotSet", "LoadError", "ModelError", "PresolveError",
	"SolveError", "PostsolveError", "ModelEmpty", "Optimal",
	"Infeasible", "UnboundedOrInfeasible", "Unbounded",
	"ObjectiveBound", "ObjectiveTarget", "TimeLimit",
	"IterationLimit", "Unknown",
}

func (s ModelStatus) String() string {
	if s >= 0 && int(s) < len(modelStatusNames) {
		return modelStatusNames[s]
	}
	return fmt.Sprintf("ModelStatus(%d)", int(s))
}

// IsOptimal reports whether the solver proved optimality.
func (s ModelStatus) IsOptimal() bool {
	return s == ModelStatusOptimal
}

// HasSolution reports whether the status usually comes with usable primal
// values, i.e. optimality or one of the limit/bound terminations.
func (s ModelStatus) HasSolution() bool {
	switch s {
	case ModelStatusOptimal, ModelStatusObjectiveBound, ModelStatusObjectiveTarget,
		ModelStatusTimeLimit, ModelStatusIterationLimit:
		return true
	default:
		return false
	}
}

// DecodeModelStatus maps a raw native model status to its named value.
func DecodeModelStatus(v int) (ModelStatus, error) {
	if v < int(ModelStatusNotSet) || v > int(ModelStatusUnknown) {
		return ModelStatusUnknown, fmt.Errorf("%w: model status %d", ErrUnknownStatus, v)
	}
	return ModelStatus(v), nil
}

// BasisStatus is the simplex basis indicator of a single column or row.
type BasisStatus int

const (
	BasisStatusLower BasisStatus = iota
	BasisStatusBasic
	BasisStatusUpper
	BasisStatusZero
	BasisStatusNonbasic
)

func (s BasisStatus) String() string {
	switch s {
	case BasisStatusLower:
		return "Lower"
	case BasisStatusBasic:
		return "Basic"
	case BasisStatusUpper:
		return "Upper"
	case BasisStatusZero:
		return "Zero"
	case BasisStatusNonbasic:
		return "Nonbasic"
	default:
		return fmt.Sprintf("BasisStatus(%d)", int(s))
	}
}

// DecodeBasisStatus maps a raw native basis status to its named value.
func DecodeBasisStatus(v int) (BasisStatus, error) {
	if v < int(BasisStatusLower) || v > int(BasisStatusNonbasic) {
		return BasisStatusLower, fmt.Errorf("%w: basis status %d", ErrUnknownStatus, v)
	}
	return BasisStatus(v), nil
}
