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
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Session. Options run after the native instance has been
// created, so those touching solver parameters go through the same passthrough
// as SetIntOption and friends.
type Option func(*Session) error

// WithProvider selects the native provider instead of the registered default.
// It must come before any option that sets solver parameters.
func WithProvider(p Provider) Option {
	return func(s *Session) error {
		s.provider = p
		return nil
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) error {
		s.logger = logger
		return nil
	}
}

func WithObserver(o Observer) Option {
	return func(s *Session) error {
		s.observer = o
		return nil
	}
}

// WithOutput toggles the solver's own log output.
func WithOutput(enabled bool) Option {
	return WithParameter("output_flag", enabled)
}

// WithTimeLimit bounds the wall-clock time of every Solve. This is the only
// way to limit a solve: the binding itself never interrupts the native call.
func WithTimeLimit(d time.Duration) Option {
	return WithParameter("time_limit", d.Seconds())
}

// WithMIPRelGap sets the relative MIP gap at which branch-and-bound stops.
func WithMIPRelGap(gap float64) Option {
	return WithParameter("mip_rel_gap", gap)
}

func WithThreads(n int) Option {
	return WithParameter("threads", n)
}

// WithPresolve sets the presolve mode ("off", "choose" or "on").
func WithPresolve(mode string) Option {
	return WithParameter("presolve", mode)
}

// WithParameter sets an arbitrary named solver parameter. The value's Go type
// selects the setter: bool, any integer kind, float64/float32 or string.
func WithParameter(name string, value any) Option {
	return func(s *Session) error {
		s.params = append(s.params, parameter{name: name, value: value})
		return nil
	}
}

type parameter struct {
	name  string
	value any
}

func (s *Session) applyParameter(p parameter) error {
	var err error
	switch v := p.value.(type) {
	case bool:
		_, err = s.SetBoolOption(p.name, v)
	case int:
		_, err = s.SetIntOption(p.name, v)
	case int32:
		_, err = s.SetIntOption(p.name, int(v))
	case int64:
		_, err = s.SetIntOption(p.name, int(v))
	case float64:
		_, err = s.SetFloatOption(p.name, v)
	case float32:
		_, err = s.SetFloatOption(p.name, float64(v))
	case string:
		_, err = s.SetStringOption(p.name, v)
	default:
		return fmt.Errorf("%w: unsupported type %T for parameter %q", ErrInvalidArgument, p.value, p.name)
	}
	if err != nil {
		return fmt.Errorf("setting parameter %q: %w", p.name, err)
	}
	return nil
}
