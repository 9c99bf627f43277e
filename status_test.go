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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStatus(t *testing.T) {
	for raw, want := range map[int]Status{-1: StatusError, 0: StatusOK, 1: StatusWarning} {
		got, err := DecodeStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, raw := range []int{-2, 2, 100} {
		_, err := DecodeStatus(raw)
		assert.ErrorIs(t, err, ErrUnknownStatus, "raw %d", raw)
	}
}

func TestDecodeModelStatus(t *testing.T) {
	names := []string{
		"NotSet", "LoadError", "ModelError", "PresolveError", "SolveError",
		"PostsolveError", "ModelEmpty", "Optimal", "Infeasible",
		"UnboundedOrInfeasible", "Unbounded", "ObjectiveBound",
		"ObjectiveTarget", "TimeLimit", "IterationLimit", "Unknown",
	}

	for raw, name := range names {
		got, err := DecodeModelStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, name, got.String())
	}

	for _, raw := range []int{-1, len(names), 99} {
		_, err := DecodeModelStatus(raw)
		assert.ErrorIs(t, err, ErrUnknownStatus, "raw %d", raw)
	}
}

func TestModelStatusPredicates(t *testing.T) {
	assert.True(t, ModelStatusOptimal.IsOptimal())
	assert.False(t, ModelStatusTimeLimit.IsOptimal())

	assert.True(t, ModelStatusTimeLimit.HasSolution())
	assert.True(t, ModelStatusObjectiveBound.HasSolution())
	assert.False(t, ModelStatusInfeasible.HasSolution())
	assert.False(t, ModelStatusNotSet.HasSolution())
}

func TestDecodeBasisStatus(t *testing.T) {
	want := []BasisStatus{BasisStatusLower, BasisStatusBasic, BasisStatusUpper, BasisStatusZero, BasisStatusNonbasic}
	for raw, w := range want {
		got, err := DecodeBasisStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}

	for _, raw := range []int{-1, 5} {
		_, err := DecodeBasisStatus(raw)
		assert.ErrorIs(t, err, ErrUnknownStatus)
	}
}

func TestDecodeVarType(t *testing.T) {
	for raw := range 6 {
		got, err := DecodeVarType(raw)
		require.NoError(t, err)
		assert.Equal(t, VarType(raw), got)
	}

	_, err := DecodeVarType(6)
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "Warning", StatusWarning.String())
	assert.Equal(t, "Status(5)", Status(5).String())
	assert.Equal(t, "ModelStatus(42)", ModelStatus(42).String())
	assert.Equal(t, "Nonbasic", BasisStatusNonbasic.String())
	assert.Equal(t, "Binary", BinaryVariable.String())
	assert.Equal(t, "Maximize", Maximize.String())
}

func TestCallErrorMessage(t *testing.T) {
	err := &CallError{Op: "Solve", Status: StatusError}
	assert.Equal(t, "highs: Solve failed with status Error", err.Error())
}
