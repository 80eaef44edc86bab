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

// Mode is an IC's current input mode.
type Mode int

const (
	// ModeDirect passes keys straight to the client; no composition.
	ModeDirect Mode = iota
	// ModeCompose routes printable keys through the Hangul automaton.
	ModeCompose
)

// Scope selects which object owns the mode an IC inherits on focus-in and
// writes back on mode change.
type Scope int

const (
	ScopePerIC Scope = iota
	ScopePerToplevel
	ScopePerApplication // per-Connection
	ScopePerDesktop     // server-global
)

// DesktopIndicator is the external collaborator that posts the
// _HANGUL_INPUT_MODE root-window property whenever any IC's
// mode changes. X property I/O is transport-level and stays outside the
// core.
type DesktopIndicator interface {
	SetMode(mode Mode)
}

// desktopModeValue maps a Mode to the INTEGER value the
// _HANGUL_INPUT_MODE property carries: 0=none, 1=english/direct,
// 2=hangul/compose. "none" is never produced by this package; it is
// reserved for a server with no focused IC at all.
func desktopModeValue(m Mode) int32 {
	if m == ModeCompose {
		return 2
	}
	return 1
}

// ModeFor resolves the mode an IC should adopt on focus-in, reading from
// its configured scope.
func (s *Server) ModeFor(ic *IC) Mode {
	switch ic.ModeScope {
	case ScopePerToplevel:
		if ic.toplevel != nil {
			return ic.toplevel.Mode
		}
	case ScopePerApplication:
		if ic.conn != nil {
			return ic.conn.defaultMode
		}
	case ScopePerDesktop:
		return s.desktopMode
	}
	return ic.mode
}

// SetMode changes ic's mode, writing the new value back to its scope's
// owner and posting the desktop indicator. A Compose→Direct
// transition flushes any in-progress composition first; a Direct→Compose
// transition starts the preedit lifecycle.
func (s *Server) SetMode(ic *IC, mode Mode) {
	if ic.mode == mode {
		return
	}
	if ic.mode == ModeCompose && mode == ModeDirect {
		s.flushComposition(ic)
	}
	ic.mode = mode
	switch ic.ModeScope {
	case ScopePerToplevel:
		if ic.toplevel != nil {
			ic.toplevel.Mode = mode
		}
	case ScopePerApplication:
		if ic.conn != nil {
			ic.conn.defaultMode = mode
		}
	case ScopePerDesktop:
		s.desktopMode = mode
	}
	if mode == ModeCompose {
		s.startPreedit(ic)
	}
	if s.Indicator != nil {
		s.Indicator.SetMode(mode)
	}
}
