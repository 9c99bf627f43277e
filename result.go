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

import (
	"fmt"
	"time"
)

// Solve runs the solver on the current model and blocks until it terminates.
//
// The returned status only says whether the solver ran; the outcome (optimal,
// infeasible, time limit, ...) must be queried with ModelStatus afterwards.
// Solve cannot be interrupted; use WithTimeLimit to bound it.
func (s *Session) Solve() (Status, error) {
	const op = "Solve"
	if err := s.check(op); err != nil {
		return StatusError, err
	}

	s.logger.Debug().Int("columns", s.numCol).Int("rows", s.numRow).Msg("solving")

	start := time.Now()
	ret := s.inst.Run()
	elapsed := time.Since(start)

	status, err := s.result(op, ret)

	modelStatus := ModelStatusNotSet
	if err == nil {
		// undecodable values are reported by ModelStatus itself
		if ms, msErr := DecodeModelStatus(s.inst.ModelStatus()); msErr == nil {
			modelStatus = ms
		} else {
			modelStatus = ModelStatusUnknown
		}
	}

	s.observer.SolveFinished(status, modelStatus, elapsed)
	s.logger.Debug().
		Stringer("status", status).
		Stringer("model_status", modelStatus).
		Dur("elapsed", elapsed).
		Msg("solve finished")

	return status, err
}

// ModelStatus returns the outcome of the last solve. Before any solve it is
// ModelStatusNotSet.
func (s *Session) ModelStatus() (ModelStatus, error) {
	const op = "ModelStatus"
	if err := s.check(op); err != nil {
		return ModelStatusUnknown, err
	}

	ms, err := DecodeModelStatus(s.inst.ModelStatus())
	if err != nil {
		s.logger.Error().Err(err).Msg("undecodable model status")
		return ms, fmt.Errorf("%s: %w", op, err)
	}

	return ms, nil
}

// ObjectiveValue returns the objective value of the current solution.
func (s *Session) ObjectiveValue() (float64, error) {
	if err := s.check("ObjectiveValue"); err != nil {
		return 0, err
	}
	return s.inst.ObjectiveValue(), nil
}

// Solution returns a snapshot of the primal variable values and the objective.
//
// The session does not check the model status first: call ModelStatus and
// make sure it HasSolution. Without a prior solve, the values are whatever the
// solver reports for an unsolved model.
func (s *Session) Solution() (*Solution, error) {
	const op = "Solution"
	if err := s.check(op); err != nil {
		return nil, err
	}

	colValue, _, _, _, err := s.solutionVectors(op)
	if err != nil {
		return nil, err
	}

	// colValue is freshly allocated and not shared with the native side
	return &Solution{
		values:    colValue,
		objective: s.inst.ObjectiveValue(),
	}, nil
}

// ReducedCosts returns the column duals, one per variable.
func (s *Session) ReducedCosts() ([]float64, error) {
	const op = "ReducedCosts"
	if err := s.check(op); err != nil {
		return nil, err
	}

	_, colDual, _, _, err := s.solutionVectors(op)
	return colDual, err
}

// DualSolution returns the row duals, one per constraint.
func (s *Session) DualSolution() ([]float64, error) {
	const op = "DualSolution"
	if err := s.check(op); err != nil {
		return nil, err
	}

	_, _, _, rowDual, err := s.solutionVectors(op)
	return rowDual, err
}

// RowValues returns the activity of every constraint, one per constraint.
func (s *Session) RowValues() ([]float64, error) {
	const op = "RowValues"
	if err := s.check(op); err != nil {
		return nil, err
	}

	_, _, rowValue, _, err := s.solutionVectors(op)
	return rowValue, err
}

func (s *Session) solutionVectors(op string) (colValue, colDual, rowValue, rowDual []float64, err error) {
	colValue = make([]float64, s.numCol)
	colDual = make([]float64, s.numCol)
	rowValue = make([]float64, s.numRow)
	rowDual = make([]float64, s.numRow)

	if _, err = s.result(op, s.inst.Solution(colValue, colDual, rowValue, rowDual)); err != nil {
		return nil, nil, nil, nil, err
	}

	return colValue, colDual, rowValue, rowDual, nil
}

// Basis returns a snapshot of the simplex basis. Values the session cannot
// decode fail the whole call with ErrUnknownStatus.
func (s *Session) Basis() (*Basis, error) {
	const op = "Basis"
	if err := s.check(op); err != nil {
		return nil, err
	}

	rawCols := make([]int, s.numCol)
	rawRows := make([]int, s.numRow)
	if _, err := s.result(op, s.inst.Basis(rawCols, rawRows)); err != nil {
		return nil, err
	}

	cols, err := decodeBasis(rawCols)
	if err != nil {
		return nil, fmt.Errorf("%s: column %w", op, err)
	}
	rows, err := decodeBasis(rawRows)
	if err != nil {
		return nil, fmt.Errorf("%s: row %w", op, err)
	}

	return &Basis{cols: cols, rows: rows}, nil
}

func decodeBasis(raw []int) ([]BasisStatus, error) {
	out := make([]BasisStatus, len(raw))
	for i, v := range raw {
		st, err := DecodeBasisStatus(v)
		if err != nil {
			return nil, fmt.Errorf("%d: %w", i, err)
		}
		out[i] = st
	}
	return out, nil
}
