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

import "sync/atomic"

// Provider allocates native solver instances. The cgo implementation lives in
// the capi subpackage, which registers itself when imported.
type Provider interface {
	Create() (Instance, error)
}

// Instance is the flat native API of one solver object. Statuses are returned
// raw and decoded by the Session, so implementations must not interpret them.
//
// Slices passed to Solution and Basis are allocated by the caller and must be
// filled in place; their lengths match the model's column and row counts.
type Instance interface {
	Destroy()

	NumCol() int
	NumRow() int

	ClearModel() int
	ClearSolver() int
	ReadModel(filename string) int
	WriteModel(filename string) int
	WriteSolution(filename string) int

	Run() int
	ModelStatus() int

	AddCol(cost, lower, upper float64) int
	AddCols(costs, lower, upper []float64) int
	DeleteCol(col int) int
	ChangeColBounds(col int, lower, upper float64) int
	ChangeColIntegrality(col int, integrality int) int

	AddRow(lower, upper float64, index []int, value []float64) int
	DeleteRow(row int) int
	ChangeRowBounds(row int, lower, upper float64) int

	SetObjective(index []int, cost []float64, maximize bool, offset float64) int

	ObjectiveValue() float64
	Solution(colValue, colDual, rowValue, rowDual []float64) int
	Basis(colStatus, rowStatus []int) int

	SetBoolOption(name string, value bool) int
	SetIntOption(name string, value int) int
	SetFloatOption(name string, value float64) int
	SetStringOption(name, value string) int
	BoolOption(name string) (bool, int)
	IntOption(name string) (int, int)
	FloatOption(name string) (float64, int)
	StringOption(name string) (string, int)

	IntInfo(name string) (int, int)
	FloatInfo(name string) (float64, int)
}

// LogForwarder is implemented by instances able to hand their log output to Go
// instead of writing it to the console.
type LogForwarder interface {
	SetLogFunc(fn func(msg string)) int
}

type providerHolder struct{ p Provider }

var defaultProvider atomic.Pointer[providerHolder]

// Register makes p the provider used by New when no WithProvider option is
// given. Registering nil removes the current default.
func Register(p Provider) {
	if p == nil {
		defaultProvider.Store(nil)
		return
	}
	defaultProvider.Store(&providerHolder{p: p})
}

func registeredProvider() Provider {
	if h := defaultProvider.Load(); h != nil {
		return h.p
	}
	return nil
}
