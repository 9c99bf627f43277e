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

// Solver parameters and info values are addressed by their native names (e.g.
// "time_limit", "mip_rel_gap", "simplex_iteration_count"). Names are not
// checked here; unknown names are rejected by the solver with StatusError.

/* Parameter setters */

func (s *Session) SetBoolOption(name string, value bool) (Status, error) {
	const op = "SetBoolOption"
	if err := s.check(op); err != nil {
		return StatusError, err
	}
	return s.result(op, s.inst.SetBoolOption(name, value))
}

func (s *Session) SetIntOption(name string, value int) (Status, error) {
	const op = "SetIntOption"
	if err := s.check(op); err != nil {
		return StatusError, err
	}
	return s.result(op, s.inst.SetIntOption(name, value))
}

func (s *Session) SetFloatOption(name string, value float64) (Status, error) {
	const op = "SetFloatOption"
	if err := s.check(op); err != nil {
		return StatusError, err
	}
	return s.result(op, s.inst.SetFloatOption(name, value))
}

func (s *Session) SetStringOption(name, value string) (Status, error) {
	const op = "SetStringOption"
	if err := s.check(op); err != nil {
		return StatusError, err
	}
	return s.result(op, s.inst.SetStringOption(name, value))
}

/* Parameter getters */

func (s *Session) BoolOption(name string) (bool, error) {
	const op = "BoolOption"
	if err := s.check(op); err != nil {
		return false, err
	}
	v, ret := s.inst.BoolOption(name)
	if _, err := s.result(op, ret); err != nil {
		return false, err
	}
	return v, nil
}

func (s *Session) IntOption(name string) (int, error) {
	const op = "IntOption"
	if err := s.check(op); err != nil {
		return 0, err
	}
	v, ret := s.inst.IntOption(name)
	if _, err := s.result(op, ret); err != nil {
		return 0, err
	}
	return v, nil
}

func (s *Session) FloatOption(name string) (float64, error) {
	const op = "FloatOption"
	if err := s.check(op); err != nil {
		return 0, err
	}
	v, ret := s.inst.FloatOption(name)
	if _, err := s.result(op, ret); err != nil {
		return 0, err
	}
	return v, nil
}

func (s *Session) StringOption(name string) (string, error) {
	const op = "StringOption"
	if err := s.check(op); err != nil {
		return "", err
	}
	v, ret := s.inst.StringOption(name)
	if _, err := s.result(op, ret); err != nil {
		return "", err
	}
	return v, nil
}

/* Info getters */

// IntInfo returns an integer info value of the last solve, e.g.
// "simplex_iteration_count".
func (s *Session) IntInfo(name string) (int, error) {
	const op = "IntInfo"
	if err := s.check(op); err != nil {
		return 0, err
	}
	v, ret := s.inst.IntInfo(name)
	if _, err := s.result(op, ret); err != nil {
		return 0, err
	}
	return v, nil
}

// FloatInfo returns a floating point info value of the last solve, e.g.
// "mip_gap".
func (s *Session) FloatInfo(name string) (float64, error) {
	const op = "FloatInfo"
	if err := s.check(op); err != nil {
		return 0, err
	}
	v, ret := s.inst.FloatInfo(name)
	if _, err := s.result(op, ret); err != nil {
		return 0, err
	}
	return v, nil
}
