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

import "time"

// Observer receives session events, e.g. to export metrics. Implementations
// may be shared by many sessions and must be safe for concurrent use.
type Observer interface {
	SessionCreated()
	SessionDisposed()
	CallFailed(op string)
	SolveFinished(status Status, modelStatus ModelStatus, elapsed time.Duration)
}

type noopObserver struct{}

func (noopObserver) SessionCreated()                                  {}
func (noopObserver) SessionDisposed()                                 {}
func (noopObserver) CallFailed(string)                                {}
func (noopObserver) SolveFinished(Status, ModelStatus, time.Duration) {}
