// seehuhn.de/go/prepress - colour and separation analysis of PDF page content
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package prepress

import "errors"

// OperatorError is returned when the operands of a content stream operator
// are malformed.  The operator is skipped and analysis continues with the
// previous state.
type OperatorError struct {
	// Op is the name of the operator, e.g. "cm" or "scn".
	Op string

	Err error
}

func (err *OperatorError) Error() string {
	msg := "malformed operator"
	if err.Op != "" {
		msg += " " + err.Op
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *OperatorError) Unwrap() error {
	return err.Err
}

// Errors reported for malformed operand lists.
var (
	ErrNotEnoughArgs = errors.New("not enough arguments")
	ErrTooManyArgs   = errors.New("too many arguments")
)
