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

package capi

// Files with an export may only declare in their preamble.

// #include <stdint.h>
import "C"

import (
	"runtime/cgo"
)

//export capiLogMessage
func capiLogMessage(msg *C.char, handle C.uintptr_t) {
	fn, ok := cgo.Handle(handle).Value().(func(string))
	if !ok {
		return
	}
	fn(C.GoString(msg))
}
