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
	"strings"

	"github.com/rs/zerolog"
)

// forwardNativeLog installs a log sink on instances that support it, so
// solver output ends up in the session logger instead of stdout.
func (s *Session) forwardNativeLog() {
	fw, ok := s.inst.(LogForwarder)
	if !ok {
		return
	}

	logger := s.logger.With().Str("source", "highs").Logger()
	ret := fw.SetLogFunc(func(msg string) {
		msg = strings.TrimRight(msg, "\n")
		if msg == "" {
			return
		}
		logger.Debug().Msg(msg)
	})
	if status, err := DecodeStatus(ret); err != nil || status == StatusError {
		s.logger.Warn().Int("status", ret).Msg("could not forward native solver log")
	}
}

// logStatus reports non-OK call statuses. Warnings are informational; errors
// are also returned to the caller.
func (s *Session) logStatus(op string, status Status) {
	switch status {
	case StatusWarning:
		s.logger.Warn().Str("op", op).Msg("native call returned a warning")
	case StatusError:
		s.logger.Error().Str("op", op).Msg("native call failed")
	}
}

func nopLogger() zerolog.Logger {
	return zerolog.Nop()
}
