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
Package capi is the native provider for package highs, linking against the
HiGHS C API (libhighs, version 1.7 or later).

Importing the package registers its provider as the default:

	import _ "github.com/costela/highs/capi"

All cgo code of the module lives here.
*/
package capi

// #cgo linux LDFLAGS: -lhighs
// #cgo linux CFLAGS: -I/usr/local/include/highs -I/usr/include/highs
// #cgo darwin LDFLAGS: -L/usr/local/lib -L/opt/homebrew/lib -lhighs
// #cgo darwin CFLAGS: -I/usr/local/include/highs -I/opt/homebrew/include/highs
// #include <stdlib.h>
// #include <stdint.h>
// #include "highs_c_api.h"
//
// // defined in callback.c
// HighsInt capi_set_log_callback(void* highs, uintptr_t handle);
import "C"

import (
	"errors"
	"fmt"
	"runtime/cgo"
	"sync"
	"unsafe"

	"github.com/costela/highs"
)

// the callback API used for log forwarding appeared in 1.7
const (
	minMajor = 1
	minMinor = 7
)

func init() {
	highs.Register(Provider{})
}

var load = sync.OnceValue(func() error {
	major, minor := int(C.Highs_versionMajor()), int(C.Highs_versionMinor())
	if major < minMajor || (major == minMajor && minor < minMinor) {
		return fmt.Errorf("capi: HiGHS %s is too old, need %d.%d or later", Version(), minMajor, minMinor)
	}
	return nil
})

// Load checks the linked library once per process. Provider.Create calls it,
// so calling it directly is only useful to fail early.
func Load() error {
	return load()
}

// Version returns the version string of the linked library.
func Version() string {
	return C.GoString(C.Highs_version())
}

// Provider creates HiGHS instances. Its zero value is ready to use.
type Provider struct{}

func (Provider) Create() (highs.Instance, error) {
	if err := Load(); err != nil {
		return nil, err
	}

	ptr := C.Highs_create()
	if ptr == nil {
		return nil, errors.New("capi: Highs_create returned NULL")
	}

	return &instance{ptr: ptr}, nil
}

type instance struct {
	ptr       unsafe.Pointer
	logHandle cgo.Handle
}

func (i *instance) Destroy() {
	if i.ptr == nil {
		return
	}

	C.Highs_destroy(i.ptr)
	i.ptr = nil

	// only after destroy: the solver may log until then
	if i.logHandle != 0 {
		i.logHandle.Delete()
		i.logHandle = 0
	}
}

func (i *instance) SetLogFunc(fn func(msg string)) int {
	h := cgo.NewHandle(fn)

	ret := C.capi_set_log_callback(i.ptr, C.uintptr_t(h))
	if ret == C.kHighsStatusError {
		h.Delete()
		return int(ret)
	}

	if i.logHandle != 0 {
		i.logHandle.Delete()
	}
	i.logHandle = h

	// otherwise every line shows up twice
	return int(worse(ret, i.setBool("log_to_console", false)))
}

/* Dimensions */

func (i *instance) NumCol() int {
	return int(C.Highs_getNumCol(i.ptr))
}

func (i *instance) NumRow() int {
	return int(C.Highs_getNumRow(i.ptr))
}

/* Model related functions */

func (i *instance) ClearModel() int {
	return int(C.Highs_clearModel(i.ptr))
}

func (i *instance) ClearSolver() int {
	return int(C.Highs_clearSolver(i.ptr))
}

func (i *instance) ReadModel(filename string) int {
	c_filename := C.CString(filename)
	defer C.free(unsafe.Pointer(c_filename))

	return int(C.Highs_readModel(i.ptr, c_filename))
}

func (i *instance) WriteModel(filename string) int {
	c_filename := C.CString(filename)
	defer C.free(unsafe.Pointer(c_filename))

	return int(C.Highs_writeModel(i.ptr, c_filename))
}

func (i *instance) WriteSolution(filename string) int {
	c_filename := C.CString(filename)
	defer C.free(unsafe.Pointer(c_filename))

	return int(C.Highs_writeSolutionPretty(i.ptr, c_filename))
}

func (i *instance) Run() int {
	return int(C.Highs_run(i.ptr))
}

func (i *instance) ModelStatus() int {
	return int(C.Highs_getModelStatus(i.ptr))
}

/* Column-related functions */

func (i *instance) AddCol(cost, lower, upper float64) int {
	return int(C.Highs_addCol(i.ptr, C.double(cost), C.double(lower), C.double(upper), 0, nil, nil))
}

func (i *instance) AddCols(costs, lower, upper []float64) int {
	n := len(costs)
	if n == 0 {
		return int(C.kHighsStatusOk)
	}
	if len(lower) != n || len(upper) != n {
		return int(C.kHighsStatusError)
	}

	return int(C.Highs_addCols(i.ptr, C.HighsInt(n),
		(*C.double)(&costs[0]), (*C.double)(&lower[0]), (*C.double)(&upper[0]),
		0, nil, nil, nil))
}

func (i *instance) DeleteCol(col int) int {
	return int(C.Highs_deleteColsByRange(i.ptr, C.HighsInt(col), C.HighsInt(col)))
}

func (i *instance) ChangeColBounds(col int, lower, upper float64) int {
	return int(C.Highs_changeColBounds(i.ptr, C.HighsInt(col), C.double(lower), C.double(upper)))
}

func (i *instance) ChangeColIntegrality(col int, integrality int) int {
	return int(C.Highs_changeColIntegrality(i.ptr, C.HighsInt(col), C.HighsInt(integrality)))
}

/* Constraint-related functions */

func (i *instance) AddRow(lower, upper float64, index []int, value []float64) int {
	if len(index) != len(value) {
		return int(C.kHighsStatusError)
	}

	var pIndex *C.HighsInt
	var pValue *C.double
	if len(index) > 0 {
		cIndex := toHighsInt(index)
		pIndex = &cIndex[0]
		pValue = (*C.double)(&value[0])
	}

	return int(C.Highs_addRow(i.ptr, C.double(lower), C.double(upper), C.HighsInt(len(index)), pIndex, pValue))
}

func (i *instance) DeleteRow(row int) int {
	return int(C.Highs_deleteRowsByRange(i.ptr, C.HighsInt(row), C.HighsInt(row)))
}

func (i *instance) ChangeRowBounds(row int, lower, upper float64) int {
	return int(C.Highs_changeRowBounds(i.ptr, C.HighsInt(row), C.double(lower), C.double(upper)))
}

/* Objective-related functions */

// SetObjective replaces sense, offset and all column costs. The native API
// changes costs by set, which would keep stale costs of unlisted columns, so
// a dense cost vector is passed instead.
func (i *instance) SetObjective(index []int, cost []float64, maximize bool, offset float64) int {
	if len(index) != len(cost) {
		return int(C.kHighsStatusError)
	}

	n := i.NumCol()
	dense := make([]float64, n)
	for k, col := range index {
		if col < 0 || col >= n {
			return int(C.kHighsStatusError)
		}
		dense[col] = cost[k]
	}

	sense := C.kHighsObjSenseMinimize
	if maximize {
		sense = C.kHighsObjSenseMaximize
	}

	status := C.Highs_changeObjectiveSense(i.ptr, C.HighsInt(sense))
	if status == C.kHighsStatusError {
		return int(status)
	}
	status = worse(status, C.Highs_changeObjectiveOffset(i.ptr, C.double(offset)))
	if status == C.kHighsStatusError || n == 0 {
		return int(status)
	}

	return int(worse(status, C.Highs_changeColsCostByRange(i.ptr, 0, C.HighsInt(n-1), (*C.double)(&dense[0]))))
}

/* Result-related functions */

func (i *instance) ObjectiveValue() float64 {
	return float64(C.Highs_getObjectiveValue(i.ptr))
}

func (i *instance) Solution(colValue, colDual, rowValue, rowDual []float64) int {
	numCol, numRow := i.NumCol(), i.NumRow()
	// the native side writes numCol/numRow entries regardless of our lengths
	if len(colValue) != numCol || len(colDual) != numCol || len(rowValue) != numRow || len(rowDual) != numRow {
		return int(C.kHighsStatusError)
	}

	var pColValue, pColDual, pRowValue, pRowDual *C.double
	if numCol > 0 {
		pColValue = (*C.double)(&colValue[0])
		pColDual = (*C.double)(&colDual[0])
	}
	if numRow > 0 {
		pRowValue = (*C.double)(&rowValue[0])
		pRowDual = (*C.double)(&rowDual[0])
	}

	return int(C.Highs_getSolution(i.ptr, pColValue, pColDual, pRowValue, pRowDual))
}

func (i *instance) Basis(colStatus, rowStatus []int) int {
	numCol, numRow := i.NumCol(), i.NumRow()
	if len(colStatus) != numCol || len(rowStatus) != numRow {
		return int(C.kHighsStatusError)
	}

	cCols := make([]C.HighsInt, numCol)
	cRows := make([]C.HighsInt, numRow)

	var pCols, pRows *C.HighsInt
	if numCol > 0 {
		pCols = &cCols[0]
	}
	if numRow > 0 {
		pRows = &cRows[0]
	}

	status := C.Highs_getBasis(i.ptr, pCols, pRows)
	for k, v := range cCols {
		colStatus[k] = int(v)
	}
	for k, v := range cRows {
		rowStatus[k] = int(v)
	}

	return int(status)
}

/* Parameter functions */

func (i *instance) setBool(name string, value bool) C.HighsInt {
	c_name := C.CString(name)
	defer C.free(unsafe.Pointer(c_name))

	var v C.HighsInt
	if value {
		v = 1
	}
	return C.Highs_setBoolOptionValue(i.ptr, c_name, v)
}

func (i *instance) SetBoolOption(name string, value bool) int {
	return int(i.setBool(name, value))
}

func (i *instance) SetIntOption(name string, value int) int {
	c_name := C.CString(name)
	defer C.free(unsafe.Pointer(c_name))

	return int(C.Highs_setIntOptionValue(i.ptr, c_name, C.HighsInt(value)))
}

func (i *instance) SetFloatOption(name string, value float64) int {
	c_name := C.CString(name)
	defer C.free(unsafe.Pointer(c_name))

	return int(C.Highs_setDoubleOptionValue(i.ptr, c_name, C.double(value)))
}

func (i *instance) SetStringOption(name, value string) int {
	c_name := C.CString(name)
	defer C.free(unsafe.Pointer(c_name))
	c_value := C.CString(value)
	defer C.free(unsafe.Pointer(c_value))

	return int(C.Highs_setStringOptionValue(i.ptr, c_name, c_value))
}

func (i *instance) BoolOption(name string) (bool, int) {
	c_name := C.CString(name)
	defer C.free(unsafe.Pointer(c_name))

	var v C.HighsInt
	status := C.Highs_getBoolOptionValue(i.ptr, c_name, &v)
	return v != 0, int(status)
}

func (i *instance) IntOption(name string) (int, int) {
	c_name := C.CString(name)
	defer C.free(unsafe.Pointer(c_name))

	var v C.HighsInt
	status := C.Highs_getIntOptionValue(i.ptr, c_name, &v)
	return int(v), int(status)
}

func (i *instance) FloatOption(name string) (float64, int) {
	c_name := C.CString(name)
	defer C.free(unsafe.Pointer(c_name))

	var v C.double
	status := C.Highs_getDoubleOptionValue(i.ptr, c_name, &v)
	return float64(v), int(status)
}

func (i *instance) StringOption(name string) (string, int) {
	c_name := C.CString(name)
	defer C.free(unsafe.Pointer(c_name))

	// the native side copies at most kHighsMaximumStringLength bytes
	buf := (*C.char)(C.calloc(C.size_t(C.kHighsMaximumStringLength), 1))
	defer C.free(unsafe.Pointer(buf))

	status := C.Highs_getStringOptionValue(i.ptr, c_name, buf)
	return C.GoString(buf), int(status)
}

/* Info functions */

func (i *instance) IntInfo(name string) (int, int) {
	c_name := C.CString(name)
	defer C.free(unsafe.Pointer(c_name))

	var v C.HighsInt
	status := C.Highs_getIntInfoValue(i.ptr, c_name, &v)
	return int(v), int(status)
}

func (i *instance) FloatInfo(name string) (float64, int) {
	c_name := C.CString(name)
	defer C.free(unsafe.Pointer(c_name))

	var v C.double
	status := C.Highs_getDoubleInfoValue(i.ptr, c_name, &v)
	return float64(v), int(status)
}

/* Helpers */

func toHighsInt(in []int) []C.HighsInt {
	out := make([]C.HighsInt, len(in))
	for k, v := range in {
		out[k] = C.HighsInt(v)
	}
	return out
}

// worse returns the more severe of two native statuses.
func worse(a, b C.HighsInt) C.HighsInt {
	switch {
	case a == C.kHighsStatusError || b == C.kHighsStatusError:
		return C.kHighsStatusError
	case a == C.kHighsStatusWarning || b == C.kHighsStatusWarning:
		return C.kHighsStatusWarning
	default:
		return C.kHighsStatusOk
	}
}
