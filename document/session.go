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

// Package document analyses the pages of a document and collects the spot
// colours, layers and separations used on all pages.
//
// Pages are analysed independently, each with its own interpreter and
// catalogs.  The per-page catalogs are then merged into the document
// catalogs, in page order.  This way the result does not depend on whether
// pages are analysed one by one or concurrently.
package document

import (
	"context"
	"runtime"
	"strconv"
	"sync"

	"seehuhn.de/go/prepress/graphics/color"
	"seehuhn.de/go/prepress/graphics/content"
	"seehuhn.de/go/prepress/graphics/object"
	"seehuhn.de/go/prepress/oc"
	"seehuhn.de/go/prepress/page"
	"seehuhn.de/go/prepress/page/separation"
)

// Page is the input for the analysis of one page.
type Page struct {
	// Index is the zero-based page number.
	Index int

	Boxes page.Boxes

	// Operators is the tokenized content stream of the page.
	Operators []content.Operator

	Resources *content.Resources
}

// Options configures a [Session].
type Options struct {
	// Library is the reference ink library.  If this is nil, the built-in
	// PANTONE solid coated subset is used.
	Library *color.Library

	// Match holds the ΔE thresholds for library matching.
	// If this is nil, the default thresholds are used.
	Match *color.MatchOptions

	// Layers declares the optional content groups of the document, in
	// display order.
	Layers []oc.Decl

	// Workers is the maximal number of pages analysed concurrently by
	// [Session.AnalyzePages].  The default is runtime.GOMAXPROCS(0).
	Workers int
}

// PageResult holds the analysis of one page.
type PageResult struct {
	Index int
	Boxes page.Boxes

	Objects     []object.Object
	Layers      []*oc.Layer
	Spots       []*color.SpotColorInfo
	Separations []*separation.Info

	Diagnostics []content.Diagnostic
}

// Session collects the analysis results for the pages of a document.
//
// The methods of a Session must not be called concurrently.
type Session struct {
	library *color.Library
	match   *color.MatchOptions
	decls   []oc.Decl
	workers int

	spots   *color.Catalog
	layers  *oc.Catalog
	objects []object.Object
}

// NewSession starts the analysis of a new document.
// If opt is nil, default options are used.
func NewSession(opt *Options) *Session {
	if opt == nil {
		opt = &Options{}
	}
	s := &Session{
		library: opt.Library,
		match:   opt.Match,
		decls:   opt.Layers,
		workers: opt.Workers,
	}
	if s.library == nil {
		s.library = color.PantoneSolidCoated()
	}
	if s.workers <= 0 {
		s.workers = runtime.GOMAXPROCS(0)
	}
	s.spots = color.NewCatalog(s.library, s.match)
	s.layers = s.newLayerCatalog()
	return s
}

func (s *Session) newLayerCatalog() *oc.Catalog {
	layers := oc.NewCatalog()
	for _, d := range s.decls {
		layers.Declare(d)
	}
	return layers
}

// pageState holds the page-level catalogs until they are merged into the
// session.
type pageState struct {
	result *PageResult
	spots  *color.Catalog
	layers *oc.Catalog
}

// analyze interprets a single page.  This only reads the configuration of
// s and can run concurrently.
func (s *Session) analyze(p *Page) *pageState {
	spots := color.NewCatalog(s.library, s.match)
	layers := s.newLayerCatalog()

	ip := content.New(&content.Options{
		Resources: p.Resources,
		Spots:     spots,
		Layers:    layers,
		IDPrefix:  "p" + strconv.Itoa(p.Index+1),
	})
	ip.Run(p.Operators)
	layers.Finalize(spots)

	objects := ip.Objects()
	return &pageState{
		result: &PageResult{
			Index:       p.Index,
			Boxes:       p.Boxes,
			Objects:     objects,
			Layers:      layers.Layers(),
			Spots:       spots.Spots(),
			Separations: separation.Build(spots.Spots(), objects),
			Diagnostics: ip.Diagnostics(),
		},
		spots:  spots,
		layers: layers,
	}
}

func (s *Session) merge(ps *pageState) {
	s.spots.Merge(ps.spots)
	s.layers.Merge(ps.layers)
	s.objects = append(s.objects, ps.result.Objects...)
}

// AnalyzePage analyses a single page and adds the results to the
// document catalogs.
func (s *Session) AnalyzePage(p *Page) *PageResult {
	ps := s.analyze(p)
	s.merge(ps)
	return ps.result
}

// AnalyzePages analyses several pages concurrently.  The results are added
// to the document catalogs in the order of pages.
//
// If ctx is cancelled, pages which have not been started yet are skipped.
// Their entries in the returned slice are nil, and ctx.Err() is returned.
func (s *Session) AnalyzePages(ctx context.Context, pages []*Page) ([]*PageResult, error) {
	states := make([]*pageState, len(pages))

	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup
	for i, p := range pages {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				return
			}
			states[i] = s.analyze(p)
		}()
	}
	wg.Wait()

	results := make([]*PageResult, len(pages))
	for i, ps := range states {
		if ps == nil {
			continue
		}
		s.merge(ps)
		results[i] = ps.result
	}
	return results, ctx.Err()
}

// Spots returns the spot colours of all pages analysed so far, in order of
// discovery.
func (s *Session) Spots() []*color.SpotColorInfo {
	return s.spots.Spots()
}

// SpotCatalog returns the document spot colour catalog.
func (s *Session) SpotCatalog() *color.Catalog {
	return s.spots
}

// Layers returns the layers of all pages analysed so far.
func (s *Session) Layers() []*oc.Layer {
	return s.layers.Layers()
}

// Separations returns the separations used by all pages analysed so far.
func (s *Session) Separations() []*separation.Info {
	return separation.Build(s.spots.Spots(), s.objects)
}
