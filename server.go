// Copyright 2025 The TCell Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nabi

// Server is the process-wide context every IC operation runs against: it
// replaces what a straight C-to-Go port would have reached for as a pile
// of global variables with one explicit object every entry point takes
// as a receiver, with no global singletons.
type Server struct {
	// Config supplies the user-configurable policy knobs: commit
	// strategy, candidate format, auto-reorder, off-keys and candidate
	// trigger keys.
	Config ConfigStore

	// Transport is the seam into the XIM wire protocol.
	Transport Transport

	// WindowDrawer draws the server-owned preedit window for Area/
	// Position style ICs. Nil is valid for a deployment that only ever
	// negotiates Callbacks or Nothing.
	WindowDrawer WindowDrawer

	// CandidateUI draws the Hanja/symbol candidate overlay. Nil means
	// TriggerCandidate still tracks state but nothing is ever shown.
	CandidateUI CandidateUI

	// Indicator posts _HANGUL_INPUT_MODE on mode changes. Nil is valid
	// for a deployment with no desktop panel integration.
	Indicator DesktopIndicator

	// Toplevels interns and refcounts the windows backing
	// ScopePerToplevel mode inheritance. Required; CreateIC panics on a
	// nil registry the first time it needs one.
	Toplevels *ToplevelRegistry

	// Keyboards, Composes, Fonts load the external tables a HangulIC
	// implementation and the preedit window geometry are built from.
	Keyboards KeyboardMapLoader
	Composes  ComposeMapLoader
	Fonts     FontSetLoader

	// Symbols and Hanja are the suffix-lookup dictionaries
	// TriggerCandidate queries, symbol table first.
	Symbols LookupTable
	Hanja   LookupTable

	// NewAutomaton builds the per-IC Hangul composition engine. The
	// engine's internal jamo-combination rules are supplied by the
	// caller (a real deployment links nabi's own automaton); this
	// package only drives it through the HangulIC interface.
	NewAutomaton func(transition TransitionFunc, translate TranslateFunc) HangulIC

	desktopMode Mode
}

// NewServer returns a Server ready to drive IC operations. cfg and
// transport are required; every other collaborator may be left nil to
// degrade the corresponding feature (see field docs).
func NewServer(cfg ConfigStore, transport Transport) *Server {
	return &Server{
		Config:      cfg,
		Transport:   transport,
		Toplevels:   NewToplevelRegistry(),
		desktopMode: ModeDirect,
	}
}

// NewHangulIC builds the composition automaton for a freshly created IC,
// wiring its transition veto policy to the IC's auto-reorder setting and
// connection charset.
func (s *Server) NewHangulIC(ic *IC) HangulIC {
	var charset *CharsetConverter
	if ic.conn != nil {
		charset = ic.conn.Charset
	}
	transition := NewTransitionFunc(ic.AutoReorder, charset)
	if s.NewAutomaton != nil {
		return s.NewAutomaton(transition, LogTranslate)
	}
	return newNullHangulIC()
}

// FocusIn resolves the mode an IC should adopt on refocus and starts its
// preedit lifecycle if Compose mode is current, per the IC's mode scope.
func (s *Server) FocusIn(ic *IC) {
	ic.mode = s.ModeFor(ic)
	if ic.mode == ModeCompose {
		s.startPreedit(ic)
	}
}

// FocusOut flushes any in-progress composition and ends the preedit
// lifecycle; a refocus later starts it again from scratch.
func (s *Server) FocusOut(ic *IC) {
	s.flushComposition(ic)
	donePreeditState(ic)
	s.closeCandidate(ic)
}
