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
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// fakeProvider hands out fakeInstances and remembers them.
type fakeProvider struct {
	mu        sync.Mutex
	instances []*fakeInstance
	err       error
	setup     func(*fakeInstance)
}

func (p *fakeProvider) Create() (Instance, error) {
	if p.err != nil {
		return nil, p.err
	}

	inst := newFakeInstance()
	if p.setup != nil {
		p.setup(inst)
	}

	p.mu.Lock()
	p.instances = append(p.instances, inst)
	p.mu.Unlock()

	return inst, nil
}

func (p *fakeProvider) last() *fakeInstance {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.instances[len(p.instances)-1]
}

// fakeInstance models just enough of a solver to check what the session
// sends down: it counts every call, keeps a column and row count, and answers
// with configurable statuses.
type fakeInstance struct {
	calls     map[string]int
	destroyed int

	numCol int
	numRow int

	// per-op status overrides; missing ops return 0
	status map[string]int

	modelStatus int
	colValue    []float64
	rowValue    []float64
	objective   float64
	basisCols   []int
	basisRows   []int

	// readCols/readRows are the dimensions ReadModel pretends to load
	readCols, readRows int

	options map[string]any
	logFunc func(string)

	lastIntegrality map[int]int
	lastColBounds   map[int][2]float64
	lastObjective   struct {
		index    []int
		cost     []float64
		maximize bool
		offset   float64
	}
}

func newFakeInstance() *fakeInstance {
	return &fakeInstance{
		calls:           map[string]int{},
		status:          map[string]int{},
		options:         map[string]any{},
		lastIntegrality: map[int]int{},
		lastColBounds:   map[int][2]float64{},
	}
}

func (f *fakeInstance) call(op string) int {
	f.calls[op]++
	return f.status[op]
}

func (f *fakeInstance) totalCalls() int {
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeInstance) Destroy() { f.destroyed++ }

func (f *fakeInstance) NumCol() int { f.calls["NumCol"]++; return f.numCol }
func (f *fakeInstance) NumRow() int { f.calls["NumRow"]++; return f.numRow }

func (f *fakeInstance) ClearModel() int {
	ret := f.call("ClearModel")
	if ret != -1 {
		f.numCol, f.numRow = 0, 0
	}
	return ret
}

func (f *fakeInstance) ClearSolver() int { return f.call("ClearSolver") }

func (f *fakeInstance) ReadModel(string) int {
	ret := f.call("ReadModel")
	if ret != -1 {
		f.numCol, f.numRow = f.readCols, f.readRows
	}
	return ret
}

func (f *fakeInstance) WriteModel(string) int    { return f.call("WriteModel") }
func (f *fakeInstance) WriteSolution(string) int { return f.call("WriteSolution") }
func (f *fakeInstance) Run() int                 { return f.call("Run") }
func (f *fakeInstance) ModelStatus() int         { f.calls["ModelStatus"]++; return f.modelStatus }

func (f *fakeInstance) AddCol(cost, lower, upper float64) int {
	ret := f.call("AddCol")
	if ret != -1 {
		f.numCol++
	}
	return ret
}

func (f *fakeInstance) AddCols(costs, lower, upper []float64) int {
	ret := f.call("AddCols")
	if ret != -1 {
		f.numCol += len(costs)
	}
	return ret
}

func (f *fakeInstance) DeleteCol(col int) int {
	ret := f.call("DeleteCol")
	if ret != -1 {
		f.numCol--
	}
	return ret
}

func (f *fakeInstance) ChangeColBounds(col int, lower, upper float64) int {
	f.lastColBounds[col] = [2]float64{lower, upper}
	return f.call("ChangeColBounds")
}

func (f *fakeInstance) ChangeColIntegrality(col int, integrality int) int {
	f.lastIntegrality[col] = integrality
	return f.call("ChangeColIntegrality")
}

func (f *fakeInstance) AddRow(lower, upper float64, index []int, value []float64) int {
	ret := f.call("AddRow")
	if ret != -1 {
		f.numRow++
	}
	return ret
}

func (f *fakeInstance) DeleteRow(row int) int {
	ret := f.call("DeleteRow")
	if ret != -1 {
		f.numRow--
	}
	return ret
}

func (f *fakeInstance) ChangeRowBounds(int, float64, float64) int { return f.call("ChangeRowBounds") }

func (f *fakeInstance) SetObjective(index []int, cost []float64, maximize bool, offset float64) int {
	f.lastObjective.index = index
	f.lastObjective.cost = cost
	f.lastObjective.maximize = maximize
	f.lastObjective.offset = offset
	return f.call("SetObjective")
}

func (f *fakeInstance) ObjectiveValue() float64 {
	f.calls["ObjectiveValue"]++
	return f.objective
}

func (f *fakeInstance) Solution(colValue, colDual, rowValue, rowDual []float64) int {
	copy(colValue, f.colValue)
	copy(rowValue, f.rowValue)
	return f.call("Solution")
}

func (f *fakeInstance) Basis(colStatus, rowStatus []int) int {
	copy(colStatus, f.basisCols)
	copy(rowStatus, f.basisRows)
	return f.call("Basis")
}

func (f *fakeInstance) SetBoolOption(name string, value bool) int {
	f.options[name] = value
	return f.call("SetBoolOption")
}

func (f *fakeInstance) SetIntOption(name string, value int) int {
	f.options[name] = value
	return f.call("SetIntOption")
}

func (f *fakeInstance) SetFloatOption(name string, value float64) int {
	f.options[name] = value
	return f.call("SetFloatOption")
}

func (f *fakeInstance) SetStringOption(name, value string) int {
	f.options[name] = value
	return f.call("SetStringOption")
}

func (f *fakeInstance) BoolOption(name string) (bool, int) {
	v, _ := f.options[name].(bool)
	return v, f.call("BoolOption")
}

func (f *fakeInstance) IntOption(name string) (int, int) {
	v, _ := f.options[name].(int)
	return v, f.call("IntOption")
}

func (f *fakeInstance) FloatOption(name string) (float64, int) {
	v, _ := f.options[name].(float64)
	return v, f.call("FloatOption")
}

func (f *fakeInstance) StringOption(name string) (string, int) {
	v, _ := f.options[name].(string)
	return v, f.call("StringOption")
}

func (f *fakeInstance) IntInfo(string) (int, int)       { return 42, f.call("IntInfo") }
func (f *fakeInstance) FloatInfo(string) (float64, int) { return 0.5, f.call("FloatInfo") }

func (f *fakeInstance) SetLogFunc(fn func(string)) int {
	f.logFunc = fn
	return f.call("SetLogFunc")
}

// fakeObserver records observer callbacks. It is safe for concurrent use so
// Parallel tests can share it.
type fakeObserver struct {
	created, disposed atomic.Int64

	mu     sync.Mutex
	failed []string
	solves []ModelStatus
}

func (o *fakeObserver) SessionCreated()  { o.created.Add(1) }
func (o *fakeObserver) SessionDisposed() { o.disposed.Add(1) }

func (o *fakeObserver) CallFailed(op string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failed = append(o.failed, op)
}

func (o *fakeObserver) SolveFinished(_ Status, ms ModelStatus, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.solves = append(o.solves, ms)
}

var errCreate = errors.New("no solver for you")
