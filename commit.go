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

// commitText hands one completed syllable to the client, honoring the IC's commit strategy: immediate commit sends it to
// the transport right away, while word-commit accumulates it in the
// preedit buffer until something (bypass key, mode switch, focus-out)
// flushes it.
func (s *Server) commitText(ic *IC, text string) {
	if text == "" {
		return
	}
	if ic.Strategy == CommitByWord {
		ic.preedit.Buffer.AppendString(text)
		return
	}
	s.commitNow(ic, text)
}

// commitNow sends text to the client unconditionally, bypassing the
// word-commit buffer. Used for flushes and for inserting a chosen
// candidate, both of which must reach the client immediately regardless
// of the configured strategy.
func (s *Server) commitNow(ic *IC, text string) {
	if text == "" {
		return
	}
	s.Transport.Commit(ic.ConnID, ic.ID, []rune(text))
}

// flushComposition drains the word-commit buffer and the automaton's
// in-progress syllable to the client as one commit, used whenever
// composition must end without the user finishing it themselves: a
// bypass-modifier key, a key the automaton does not take, a mode switch
// out of Compose, or focus-out. With Callbacks style the emptied preedit
// is drawn before the commit is sent; other styles commit first and
// redraw after.
func (s *Server) flushComposition(ic *IC) {
	var out UString
	out.Append([]rune(ic.preedit.Buffer)...)
	out.Append(ic.hic.Flush()...)
	ic.preedit.Buffer.Clear()
	if ic.InputStyle.PreeditStyle() == PreeditCallbacks {
		updatePreedit(ic)
		s.commitNow(ic, out.String())
		return
	}
	s.commitNow(ic, out.String())
	updatePreedit(ic)
}

// startPreedit begins the preedit lifecycle for an IC entering Compose
// mode, so a Callbacks-style client gets its PreeditStart before the
// first PreeditDraw.
func (s *Server) startPreedit(ic *IC) {
	startPreeditState(ic)
}
