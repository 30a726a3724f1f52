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

package oc

import (
	"slices"

	"seehuhn.de/go/prepress/graphics/color"
)

// Decl declares a layer before the page content is interpreted, for
// example from the optional content properties of a document.
type Decl struct {
	ID     string
	Name   string
	Parent string

	// Visible, Printable and Locked override the defaults, if non-nil.
	Visible   *bool
	Printable *bool
	Locked    *bool
}

// Catalog collects the layers of a page or a document.
//
// A Catalog is not safe for concurrent use.
type Catalog struct {
	layers []*Layer
	byID   map[string]*Layer
}

// NewCatalog returns an empty layer catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byID: make(map[string]*Layer),
	}
}

// Declare adds a layer to the catalog, or updates an existing layer.
// If the parent is not yet known, it is added as a top-level layer.
func (c *Catalog) Declare(d Decl) *Layer {
	l := c.Ensure(d.ID, d.Name)
	if d.Name != "" && d.Name != l.Name {
		l.Name = d.Name
		c.classify(l)
	}
	if d.Visible != nil {
		l.Visible = *d.Visible
	}
	if d.Printable != nil {
		l.Printable = *d.Printable
	}
	if d.Locked != nil {
		l.Locked = *d.Locked
	}
	if d.Parent != "" && d.Parent != d.ID && l.Parent == "" {
		p := c.Ensure(d.Parent, d.Parent)
		l.Parent = p.ID
		p.Children = append(p.Children, l.ID)
	}
	return l
}

// Ensure returns the layer with the given ID, creating it with default
// flags if needed.  If name is empty, the ID is used as the name.
func (c *Catalog) Ensure(id, name string) *Layer {
	if l, ok := c.byID[id]; ok {
		return l
	}
	if name == "" {
		name = id
	}
	l := &Layer{
		ID:      id,
		Name:    name,
		Visible: true,
		Order:   len(c.layers),
	}
	c.classify(l)
	c.layers = append(c.layers, l)
	c.byID[id] = l
	return l
}

// EnsureGroup returns the layer for an optional content group, creating
// it if needed.  For new layers, the usage dictionary of the group
// determines the visibility and printability.
func (c *Catalog) EnsureGroup(g *Group) *Layer {
	if l, ok := c.byID[g.ID]; ok {
		return l
	}
	l := c.Ensure(g.ID, g.Name)
	for _, intent := range g.Intent {
		l.Intent = append(l.Intent, string(intent))
	}
	if u := g.Usage; u != nil {
		if u.View != nil {
			l.Visible = u.View.ViewState
		}
		if u.Print != nil {
			l.Printable = u.Print.PrintState
		}
	}
	return l
}

func (c *Catalog) classify(l *Layer) {
	l.Type = Classify(l.Name)
	l.Printable = DefaultPrintable(l.Type)
	l.SpotAssociated = IsSpotAssociated(l.Name)
	l.AssociatedColor, _ = AssociatedColor(l.Name)
}

// AddObject records that the page object objectID is drawn inside the
// layer id.  The return value indicates whether the layer is known.
func (c *Catalog) AddObject(id, objectID string) bool {
	l, ok := c.byID[id]
	if !ok {
		return false
	}
	l.ObjectIDs = append(l.ObjectIDs, objectID)
	return true
}

// Finalize links spot-associated layers to the inks they are named after:
// the ID of each such layer is added to the references of the ink, if the
// ink is in spots.
func (c *Catalog) Finalize(spots *color.Catalog) {
	if spots == nil {
		return
	}
	for _, l := range c.layers {
		if l.AssociatedColor != "" {
			spots.AddReference(l.AssociatedColor, l.ID)
		}
	}
}

// Layers returns copies of the layers, in declaration order.
func (c *Catalog) Layers() []*Layer {
	res := make([]*Layer, len(c.layers))
	for i, l := range c.layers {
		res[i] = l.Clone()
	}
	return res
}

// Lookup returns a copy of the layer with the given ID, or nil.
func (c *Catalog) Lookup(id string) *Layer {
	return c.byID[id].Clone()
}

// Len returns the number of layers in the catalog.
func (c *Catalog) Len() int {
	return len(c.layers)
}

// Merge adds the layers of other to c.
//
// Layers already present in c keep their flags, and the object IDs of
// other are appended.  New layers are appended in the order of other.
// The layers of other are not modified.
func (c *Catalog) Merge(other *Catalog) {
	for _, o := range other.layers {
		l, ok := c.byID[o.ID]
		if !ok {
			l = o.Clone()
			l.Order = len(c.layers)
			l.Children = nil
			l.ObjectIDs = nil
			c.layers = append(c.layers, l)
			c.byID[l.ID] = l
		}
		for _, id := range o.ObjectIDs {
			if !slices.Contains(l.ObjectIDs, id) {
				l.ObjectIDs = append(l.ObjectIDs, id)
			}
		}
	}
	// Children are linked in a second pass, since a child may be listed
	// before its parent.
	for _, o := range other.layers {
		l := c.byID[o.ID]
		for _, child := range o.Children {
			if !slices.Contains(l.Children, child) {
				l.Children = append(l.Children, child)
			}
		}
	}
}
