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

/*
Package highs is a session layer over the HiGHS linear and mixed-integer
programming solver.

A Session owns exactly one native solver instance. The model is built column by
column and row by row using zero-based indices, solved, and its results are
copied out into immutable snapshots. As an example, the problem

	Minimize:
	  z = x0 + x1
	With:
	  0 <= x0 <= 4
	  1 <= x1
	Subject to:
	          x1 <= 7
	  5 <= x0 + 2 x1 <= 15
	  6 <= 3 x0 + 2 x1

can be expressed like this:

	package main

	import (
		"fmt"
		"math"

		"github.com/costela/highs"
		_ "github.com/costela/highs/capi"
	)

	func main() {
		s, err := highs.New(highs.WithOutput(false))
		if err != nil {
			panic(err)
		}
		defer s.Dispose()

		s.AddVar(0, 4)
		s.AddVar(1, math.Inf(1))

		s.AddConstraint([]float64{1}, []int{1}, math.Inf(-1), 7)
		s.AddConstraint([]float64{1, 2}, []int{0, 1}, 5, 15)
		s.AddConstraint([]float64{3, 2}, []int{0, 1}, 6, math.Inf(1))

		s.SetObjective([]float64{1, 1}, []int{0, 1}, highs.Minimize, 0)

		if _, err := s.Solve(); err != nil { // you should check all errors
			panic(err)
		}

		status, _ := s.ModelStatus()
		fmt.Printf("optimal? %t\n", status.IsOptimal())

		sol, _ := s.Solution()
		fmt.Printf("z = %f, x0 = %f\n", sol.ObjectiveValue(), sol.VariableValue(0))
	}

Errors come in two flavours: misuse of the binding (a disposed session,
mismatched slice lengths, unknown enum values) is rejected before the native
library is called and wraps ErrInvalidState or ErrInvalidArgument, while
failures reported by the solver are returned as *CallError. Model statuses such
as infeasible or unbounded are results, not errors.
*/
package highs

import (
	"fmt"
	"math"
	"runtime"

	"github.com/rs/zerolog"
)

/* Types */

// Session wraps one native solver instance.
//
// A Session is not safe for concurrent use: the native solver mutates its state
// on every call, so at most one call may be in flight at a time. Use separate
// sessions (see Parallel) or an external lock for concurrency.
//
// A Session must not be copied.
type Session struct {
	noCopy noCopy

	inst        Instance
	initialized bool

	// kept here rather than queried, so result buffers are always sized to the
	// current model
	numCol int
	numRow int

	provider Provider
	logger   zerolog.Logger
	observer Observer
	params   []parameter
}

/* Session related functions */

// New allocates a native solver instance and returns the session owning it.
// The session must be released with Dispose.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		logger:   nopLogger(),
		observer: noopObserver{},
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("applying session option: %w", err)
		}
	}

	if s.provider == nil {
		s.provider = registeredProvider()
	}
	if s.provider == nil {
		return nil, ErrNoProvider
	}

	inst, err := s.provider.Create()
	if err != nil {
		return nil, fmt.Errorf("creating native solver: %w", err)
	}
	if inst == nil {
		return nil, fmt.Errorf("creating native solver: provider returned no instance")
	}

	s.inst = inst
	s.initialized = true
	s.observer.SessionCreated()

	s.forwardNativeLog()

	for _, p := range s.params {
		if err := s.applyParameter(p); err != nil {
			s.Dispose()
			return nil, err
		}
	}

	s.syncCounts()

	// the finalizer only catches leaks; Dispose is the release path
	runtime.SetFinalizer(s, finalizeSession)

	s.logger.Debug().Msg("session created")

	return s, nil
}

func finalizeSession(s *Session) {
	if s.initialized {
		s.logger.Warn().Msg("session garbage-collected without Dispose")
		s.Dispose()
	}
}

// Dispose releases the native instance. It is safe to call more than once;
// only the first call reaches the native layer. Any other method called after
// Dispose fails with ErrInvalidState.
func (s *Session) Dispose() {
	if s == nil || !s.initialized {
		return
	}

	s.initialized = false
	runtime.SetFinalizer(s, nil)

	s.inst.Destroy()
	s.inst = nil
	s.numCol, s.numRow = 0, 0

	s.observer.SessionDisposed()
	s.logger.Debug().Msg("session disposed")
}

// Close is Dispose in io.Closer form. It never fails.
func (s *Session) Close() error {
	s.Dispose()
	return nil
}

func (s *Session) check(op string) error {
	if !s.initialized {
		return fmt.Errorf("%w: %s on disposed session", ErrInvalidState, op)
	}
	return nil
}

// result decodes the raw status of a native call made for op.
func (s *Session) result(op string, ret int) (Status, error) {
	status, err := DecodeStatus(ret)
	if err != nil {
		s.observer.CallFailed(op)
		s.logger.Error().Err(err).Str("op", op).Msg("undecodable native status")
		return StatusError, fmt.Errorf("%s: %w", op, err)
	}

	s.logStatus(op, status)

	if status == StatusError {
		s.observer.CallFailed(op)
		return status, &CallError{Op: op, Status: status}
	}

	return status, nil
}

func (s *Session) syncCounts() {
	s.numCol = s.inst.NumCol()
	s.numRow = s.inst.NumRow()
}

func checkBounds(op string, lower, upper float64) error {
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return fmt.Errorf("%w: %s: bounds must not be NaN", ErrInvalidArgument, op)
	}
	return nil
}

func checkIndex(op, what string, i int) error {
	if i < 0 {
		return fmt.Errorf("%w: %s: negative %s index %d", ErrInvalidArgument, op, what, i)
	}
	return nil
}

/* Model related functions */

// ClearModel removes all variables, constraints and the objective, keeping the
// solver parameters.
func (s *Session) ClearModel() (Status, error) {
	const op = "ClearModel"
	if err := s.check(op); err != nil {
		return StatusError, err
	}

	status, err := s.result(op, s.inst.ClearModel())
	s.syncCounts()

	return status, err
}

// ClearSolver discards solution and basis information but keeps the model.
func (s *Session) ClearSolver() (Status, error) {
	const op = "ClearSolver"
	if err := s.check(op); err != nil {
		return StatusError, err
	}

	return s.result(op, s.inst.ClearSolver())
}

// ReadModel replaces the current model with one read from filename. The format
// is chosen by the solver from the file extension (e.g. .mps or .lp).
func (s *Session) ReadModel(filename string) (Status, error) {
	const op = "ReadModel"
	if err := s.check(op); err != nil {
		return StatusError, err
	}

	status, err := s.result(op, s.inst.ReadModel(filename))
	// the file decides the dimensions, not our bookkeeping
	s.syncCounts()

	return status, err
}

// WriteModel writes the current model to filename.
func (s *Session) WriteModel(filename string) (Status, error) {
	const op = "WriteModel"
	if err := s.check(op); err != nil {
		return StatusError, err
	}

	return s.result(op, s.inst.WriteModel(filename))
}

// WriteSolution writes the current solution to filename.
func (s *Session) WriteSolution(filename string) (Status, error) {
	const op = "WriteSolution"
	if err := s.check(op); err != nil {
		return StatusError, err
	}

	return s.result(op, s.inst.WriteSolution(filename))
}

/* Column-related functions */

// NumVars returns the number of variables (columns) in the model.
func (s *Session) NumVars() (int, error) {
	if err := s.check("NumVars"); err != nil {
		return 0, err
	}
	return s.numCol, nil
}

// AddVar appends a continuous variable with the given bounds and an objective
// coefficient of 0. Its index is the previous NumVars. Bounds may be infinite.
func (s *Session) AddVar(lower, upper float64) (Status, error) {
	const op = "AddVar"
	if err := s.check(op); err != nil {
		return StatusError, err
	}
	if err := checkBounds(op, lower, upper); err != nil {
		return StatusError, err
	}

	status, err := s.result(op, s.inst.AddCol(0, lower, upper))
	if err == nil {
		s.numCol++
	}

	return status, err
}

// AddVars appends count continuous variables. All three slices must have
// exactly count elements.
func (s *Session) AddVars(count int, lower, upper, costs []float64) (Status, error) {
	const op = "AddVars"
	if err := s.check(op); err != nil {
		return StatusError, err
	}
	if count < 0 {
		return StatusError, fmt.Errorf("%w: %s: negative count %d", ErrInvalidArgument, op, count)
	}
	if len(lower) != count || len(upper) != count || len(costs) != count {
		return StatusError, fmt.Errorf("%w: %s: %d lower bounds, %d upper bounds and %d costs for %d variables",
			ErrArgumentMismatch, op, len(lower), len(upper), len(costs), count)
	}
	for i := range count {
		if err := checkBounds(op, lower[i], upper[i]); err != nil {
			return StatusError, err
		}
	}
	if count == 0 {
		return StatusOK, nil
	}

	status, err := s.result(op, s.inst.AddCols(costs, lower, upper))
	if err == nil {
		s.numCol += count
	}

	return status, err
}

// DeleteVar removes the variable at col. Variables after it shift down by one;
// indices held by the caller are not renumbered.
func (s *Session) DeleteVar(col int) (Status, error) {
	const op = "DeleteVar"
	if err := s.check(op); err != nil {
		return StatusError, err
	}

	status, err := s.result(op, s.inst.DeleteCol(col))
	if err == nil && s.numCol > 0 {
		s.numCol--
	}

	return status, err
}

// ChangeVarBounds sets new bounds for the variable at col. Out-of-range indices
// are reported by the solver.
func (s *Session) ChangeVarBounds(col int, lower, upper float64) (Status, error) {
	const op = "ChangeVarBounds"
	if err := s.check(op); err != nil {
		return StatusError, err
	}
	if err := checkIndex(op, "column", col); err != nil {
		return StatusError, err
	}
	if err := checkBounds(op, lower, upper); err != nil {
		return StatusError, err
	}

	return s.result(op, s.inst.ChangeColBounds(col, lower, upper))
}

// ChangeColIntegrality sets the integrality kind of the variable at col.
// BinaryVariable makes the variable integer and restricts it to [0, 1].
func (s *Session) ChangeColIntegrality(col int, varType VarType) (Status, error) {
	const op = "ChangeColIntegrality"
	if err := s.check(op); err != nil {
		return StatusError, err
	}
	if !varType.valid() {
		return StatusError, fmt.Errorf("%w: %s: unknown variable type %d", ErrInvalidArgument, op, int(varType))
	}

	if varType != BinaryVariable {
		return s.result(op, s.inst.ChangeColIntegrality(col, int(varType)))
	}

	// the native solver has no binary kind
	status, err := s.result(op, s.inst.ChangeColIntegrality(col, int(IntegerVariable)))
	if err != nil {
		return status, err
	}
	bounds, err := s.result(op, s.inst.ChangeColBounds(col, 0, 1))
	if err != nil {
		return bounds, err
	}
	if bounds == StatusWarning {
		status = bounds
	}

	return status, nil
}

/* Constraint-related functions */

// NumConstraints returns the number of constraints (rows) in the model.
func (s *Session) NumConstraints() (int, error) {
	if err := s.check("NumConstraints"); err != nil {
		return 0, err
	}
	return s.numRow, nil
}

// AddConstraint appends the constraint lower <= sum(coefs[i] * x[indices[i]]) <= upper.
// Use math.Inf for one-sided constraints.
func (s *Session) AddConstraint(coefs []float64, indices []int, lower, upper float64) (Status, error) {
	const op = "AddConstraint"
	if err := s.check(op); err != nil {
		return StatusError, err
	}
	if len(coefs) != len(indices) {
		return StatusError, fmt.Errorf("%w: %s: %d coefficients for %d variables",
			ErrArgumentMismatch, op, len(coefs), len(indices))
	}
	if err := checkBounds(op, lower, upper); err != nil {
		return StatusError, err
	}

	status, err := s.result(op, s.inst.AddRow(lower, upper, indices, coefs))
	if err == nil {
		s.numRow++
	}

	return status, err
}

// DeleteConstraint removes the constraint at row. Rows after it shift down by one.
func (s *Session) DeleteConstraint(row int) (Status, error) {
	const op = "DeleteConstraint"
	if err := s.check(op); err != nil {
		return StatusError, err
	}

	status, err := s.result(op, s.inst.DeleteRow(row))
	if err == nil && s.numRow > 0 {
		s.numRow--
	}

	return status, err
}

// ChangeConstraintBounds sets new bounds for the constraint at row.
func (s *Session) ChangeConstraintBounds(row int, lower, upper float64) (Status, error) {
	const op = "ChangeConstraintBounds"
	if err := s.check(op); err != nil {
		return StatusError, err
	}
	if err := checkIndex(op, "row", row); err != nil {
		return StatusError, err
	}
	if err := checkBounds(op, lower, upper); err != nil {
		return StatusError, err
	}

	return s.result(op, s.inst.ChangeRowBounds(row, lower, upper))
}

/* Objective-related functions */

// SetObjective replaces the objective function with
// sense(offset + sum(coefs[i] * x[indices[i]])). Variables not listed get a
// coefficient of 0.
func (s *Session) SetObjective(coefs []float64, indices []int, sense Sense, offset float64) (Status, error) {
	const op = "SetObjective"
	if err := s.check(op); err != nil {
		return StatusError, err
	}
	if len(coefs) != len(indices) {
		return StatusError, fmt.Errorf("%w: %s: %d coefficients for %d variables",
			ErrArgumentMismatch, op, len(coefs), len(indices))
	}
	if sense != Minimize && sense != Maximize {
		return StatusError, fmt.Errorf("%w: %s: unknown sense %d", ErrInvalidArgument, op, int(sense))
	}

	return s.result(op, s.inst.SetObjective(indices, coefs, sense == Maximize, offset))
}

// noCopy makes go vet report copies of a Session.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
