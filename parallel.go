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
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Job builds, solves and reads one model on a session it does not share.
type Job func(ctx context.Context, s *Session) error

// Parallel runs every job on its own session, with at most limit jobs running
// at once (limit <= 0 means no limit). Each session is created with opts and
// disposed when its job returns.
//
// The first failing job cancels ctx for the others; jobs that have not started
// yet are skipped, but a native solve already in progress runs to completion.
func Parallel(ctx context.Context, limit int, jobs []Job, opts ...Option) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			s, err := New(opts...)
			if err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
			defer s.Dispose()

			if err := job(ctx, s); err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
			return nil
		})
	}

	return g.Wait()
}
