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

package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costela/highs"
)

func TestSessionGauge(t *testing.T) {
	o, err := New(nil)
	require.NoError(t, err)

	o.SessionCreated()
	o.SessionCreated()
	o.SessionDisposed()

	assert.Equal(t, 1.0, testutil.ToFloat64(o.OpenSessions))
}

func TestCallErrors(t *testing.T) {
	o, err := New(nil)
	require.NoError(t, err)

	o.CallFailed("AddVar")
	o.CallFailed("AddVar")
	o.CallFailed("Solve")

	assert.Equal(t, 2.0, testutil.ToFloat64(o.CallErrors.WithLabelValues("AddVar")))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.CallErrors.WithLabelValues("Solve")))
}

func TestSolveFinished(t *testing.T) {
	o, err := New(nil)
	require.NoError(t, err)

	o.SolveFinished(highs.StatusOK, highs.ModelStatusOptimal, 20*time.Millisecond)
	o.SolveFinished(highs.StatusWarning, highs.ModelStatusTimeLimit, time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(o.Solves.WithLabelValues("OK", "Optimal")))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.Solves.WithLabelValues("Warning", "TimeLimit")))
	assert.Equal(t, 2, testutil.CollectAndCount(o.SolveDuration))
}

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()

	o, err := New(reg)
	require.NoError(t, err)
	o.SessionCreated()

	expected := `
# HELP highs_open_sessions Number of sessions holding a native solver instance.
# TYPE highs_open_sessions gauge
highs_open_sessions 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "highs_open_sessions"))

	_, err = New(reg)
	assert.Error(t, err, "second registration must collide")
}
