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

// DispatchAction tells the transport what to do with a key event after
// Dispatch has run.
type DispatchAction int

const (
	// DispatchConsumed means the key was fully handled; the client never
	// sees it (ForwardEvent is not sent).
	DispatchConsumed DispatchAction = iota
	// DispatchPassThrough means the key should be forwarded to the
	// client unchanged.
	DispatchPassThrough
)

// Dispatch routes one key press through an IC's current state. It is the
// single entry point ForwardEvent handling calls into, and walks the same
// steps in order every time:
//
//  1. a live candidate window swallows every key itself;
//  2. a bare Shift passes straight through, committing nothing;
//  3. a configured off-key forces Direct mode and is forwarded, not
//     swallowed;
//  4. Direct mode passes everything straight through;
//  5. a configured candidate-trigger combination opens the candidate
//     window and is swallowed whether or not it found anything;
//  6. a bypass modifier (Ctrl/Alt/Mod3-5) flushes any in-progress
//     composition and then passes the key through, so accelerators
//     reach the client with the composed text already committed;
//  7. Backspace deletes from the automaton first, then the word-commit
//     buffer, falling through to the client once both are empty;
//  8. a printable keysym is offered to the automaton; a completed
//     syllable is committed per the IC's strategy;
//  9. anything else flushes composition and passes through.
func (s *Server) Dispatch(ic *IC, ev KeyEvent) DispatchAction {
	if ic.candidate != nil {
		s.DispatchCandidateKey(ic, ev)
		return DispatchConsumed
	}

	if ev.Keysym == KeysymShiftL || ev.Keysym == KeysymShiftR {
		return DispatchPassThrough
	}

	if s.isOffKey(ic, ev) {
		s.SetMode(ic, ModeDirect)
		return DispatchPassThrough
	}

	if ic.Mode() == ModeDirect {
		return DispatchPassThrough
	}

	if s.isCandidateTrigger(ev) {
		s.TriggerCandidate(ic)
		return DispatchConsumed
	}

	if ev.Mod.HasAny(dispatchBypassMods) {
		s.flushComposition(ic)
		return DispatchPassThrough
	}

	if ev.Keysym == KeysymBackSpace {
		if ic.hic.Backspace() {
			updatePreedit(ic)
			return DispatchConsumed
		}
		if !ic.preedit.Buffer.IsEmpty() {
			ic.preedit.Buffer.EraseLastSyllable()
			updatePreedit(ic)
			return DispatchConsumed
		}
		return DispatchPassThrough
	}

	if ev.Keysym.IsPrintable() {
		if ic.hic.Process(ev.Keysym) {
			// Committed here per the IC's strategy before updatePreedit
			// redraws; with Callbacks style this means the client's
			// PreeditDraw call still shows the pre-commit text for this
			// keystroke, unlike flushComposition's clear-then-commit
			// ordering (see SPEC_FULL.md's flicker-policy Open Question).
			if cs := ic.hic.CommitString(); len(cs) > 0 {
				s.commitText(ic, string(cs))
			}
			updatePreedit(ic)
			return DispatchConsumed
		}
		s.flushComposition(ic)
		return DispatchPassThrough
	}

	s.flushComposition(ic)
	return DispatchPassThrough
}

// isOffKey reports whether ev is one of the configured off-key keysyms
// (which force Direct mode) pressed with no modifiers.
func (s *Server) isOffKey(ic *IC, ev KeyEvent) bool {
	if s.Config == nil || ev.Mod != 0 {
		return false
	}
	for _, k := range s.Config.OffKeys() {
		if k == ev.Keysym {
			return true
		}
	}
	return false
}

// isCandidateTrigger reports whether ev matches one of the configured
// Hanja/symbol candidate trigger combinations.
func (s *Server) isCandidateTrigger(ev KeyEvent) bool {
	if s.Config == nil {
		return false
	}
	for _, k := range s.Config.CandidateTriggerKeys() {
		if k == ev {
			return true
		}
	}
	return false
}
