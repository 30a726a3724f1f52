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

package graphics

// Stack is the graphics state stack manipulated by the q and Q operators.
//
// The zero value is not usable; use [NewStack] to create a Stack.
// A Stack is not safe for concurrent use.
type Stack struct {
	// Current is the graphics state in effect.
	Current *State

	saved []*State
}

// NewStack returns a stack with a default graphics state and no saved
// states.
func NewStack() *Stack {
	return &Stack{Current: NewState()}
}

// Save pushes a copy of the current state.
func (s *Stack) Save() {
	s.saved = append(s.saved, s.Current.Clone())
}

// Restore replaces the current state with the most recently saved one.
// If no state has been saved, Restore does nothing and returns false.
func (s *Stack) Restore() bool {
	n := len(s.saved) - 1
	if n < 0 {
		return false
	}
	s.Current = s.saved[n]
	s.saved[n] = nil
	s.saved = s.saved[:n]
	return true
}

// Depth returns the number of saved states.
func (s *Stack) Depth() int {
	return len(s.saved)
}
