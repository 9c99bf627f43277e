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
	"fmt"
)

var (
	// ErrInvalidState is returned by every session method called after Dispose.
	ErrInvalidState = errors.New("highs: invalid session state")

	// ErrInvalidArgument marks arguments rejected before reaching the solver.
	ErrInvalidArgument = errors.New("highs: invalid argument")

	// ErrArgumentMismatch is returned when parallel slices differ in length.
	ErrArgumentMismatch = fmt.Errorf("%w: length mismatch", ErrInvalidArgument)

	// ErrUnknownStatus is returned when the native library reports a value
	// outside the known enumerations, usually a sign of an incompatible build.
	ErrUnknownStatus = errors.New("highs: unrecognized native value")

	// ErrNoProvider is returned by New when no native provider is available.
	ErrNoProvider = errors.New("highs: no native provider registered")
)

// CallError is returned when the native solver itself reports StatusError.
type CallError struct {
	Op     string
	Status Status
}

func (e *CallError) Error() string {
	return fmt.Sprintf("highs: %s failed with status %s", e.Op, e.Status)
}
