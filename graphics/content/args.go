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

package content

import (
	"fmt"

	"seehuhn.de/go/prepress"
)

// argParser provides a scanner-style API for parsing operator arguments
type argParser struct {
	args []prepress.Object
	err  error
}

func (p *argParser) next() (prepress.Object, bool) {
	if p.err != nil {
		return nil, false
	}
	if len(p.args) == 0 {
		p.err = prepress.ErrNotEnoughArgs
		return nil, false
	}
	arg := p.args[0]
	p.args = p.args[1:]
	return arg, true
}

func (p *argParser) GetFloat() float64 {
	arg, ok := p.next()
	if !ok {
		return 0
	}
	x, ok := prepress.GetNumber(arg)
	if !ok {
		p.err = fmt.Errorf("expected number, got %s", prepress.Format(arg))
		return 0
	}
	return x
}

func (p *argParser) GetInt() int {
	arg, ok := p.next()
	if !ok {
		return 0
	}
	i, ok := arg.(prepress.Integer)
	if !ok {
		p.err = fmt.Errorf("expected integer, got %s", prepress.Format(arg))
		return 0
	}
	return int(i)
}

func (p *argParser) GetName() prepress.Name {
	arg, ok := p.next()
	if !ok {
		return ""
	}
	name, ok := arg.(prepress.Name)
	if !ok {
		p.err = fmt.Errorf("expected name, got %s", prepress.Format(arg))
		return ""
	}
	return name
}

func (p *argParser) GetArray() prepress.Array {
	arg, ok := p.next()
	if !ok {
		return nil
	}
	arr, ok := arg.(prepress.Array)
	if !ok {
		p.err = fmt.Errorf("expected array, got %s", prepress.Format(arg))
		return nil
	}
	return arr
}

func (p *argParser) GetDict() prepress.Dict {
	arg, ok := p.next()
	if !ok {
		return nil
	}
	dict, ok := arg.(prepress.Dict)
	if !ok {
		p.err = fmt.Errorf("expected dict, got %s", prepress.Format(arg))
		return nil
	}
	return dict
}

func (p *argParser) GetString() prepress.String {
	arg, ok := p.next()
	if !ok {
		return nil
	}
	str, ok := arg.(prepress.String)
	if !ok {
		p.err = fmt.Errorf("expected string, got %s", prepress.Format(arg))
		return nil
	}
	return str
}

// GetObject returns the next argument without checking its type.
func (p *argParser) GetObject() prepress.Object {
	arg, _ := p.next()
	return arg
}

// GetFloats returns all remaining arguments, which must be numbers.
func (p *argParser) GetFloats() []float64 {
	if p.err != nil {
		return nil
	}
	res := make([]float64, 0, len(p.args))
	for len(p.args) > 0 {
		x := p.GetFloat()
		if p.err != nil {
			return nil
		}
		res = append(res, x)
	}
	return res
}

func (p *argParser) Check() error {
	if p.err != nil {
		return p.err
	}
	if len(p.args) > 0 {
		return prepress.ErrTooManyArgs
	}
	return nil
}
