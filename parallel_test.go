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
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallel(t *testing.T) {
	p := &fakeProvider{}
	obs := &fakeObserver{}

	var running, peak atomic.Int64
	jobs := make([]Job, 10)
	for i := range jobs {
		jobs[i] = func(ctx context.Context, s *Session) error {
			n := running.Add(1)
			defer running.Add(-1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)

			_, err := s.AddVar(0, 1)
			return err
		}
	}

	err := Parallel(context.Background(), 3, jobs, WithProvider(p), WithObserver(obs))
	require.NoError(t, err)

	assert.Len(t, p.instances, 10)
	for _, inst := range p.instances {
		assert.Equal(t, 1, inst.destroyed)
	}
	assert.EqualValues(t, 10, obs.created.Load())
	assert.EqualValues(t, 10, obs.disposed.Load())
	assert.LessOrEqual(t, peak.Load(), int64(3))
}

func TestParallelStopsOnError(t *testing.T) {
	p := &fakeProvider{}
	boom := errors.New("boom")

	jobs := []Job{
		func(context.Context, *Session) error { return boom },
		func(context.Context, *Session) error { return nil },
		func(context.Context, *Session) error { return nil },
	}

	err := Parallel(context.Background(), 1, jobs, WithProvider(p))
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "job 0")

	// with a limit of one, later jobs start after the failure and skip
	assert.Len(t, p.instances, 1)
	assert.Equal(t, 1, p.instances[0].destroyed)
}

func TestParallelCanceled(t *testing.T) {
	p := &fakeProvider{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Parallel(ctx, 0, []Job{func(context.Context, *Session) error { return nil }}, WithProvider(p))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, p.instances)
}

func TestParallelCreateFailure(t *testing.T) {
	err := Parallel(context.Background(), 0,
		[]Job{func(context.Context, *Session) error { return nil }},
		WithProvider(&fakeProvider{err: errCreate}))
	assert.ErrorIs(t, err, errCreate)
}
