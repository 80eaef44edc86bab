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

import (
	"strings"
	"unicode"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/unicode/norm"
)

// candidatesPerPage is the candidate overlay's page size, up to 9.
const candidatesPerPage = 9

// candidateState is the open Hanja/symbol candidate overlay for one IC
// (IC.candidate).
type candidateState struct {
	list  []Candidate
	index int // absolute index into list of the highlighted candidate
}

func (c *candidateState) pageStart() int {
	return (c.index / candidatesPerPage) * candidatesPerPage
}

func (c *candidateState) pageItems() []Candidate {
	start := c.pageStart()
	end := start + candidatesPerPage
	if end > len(c.list) {
		end = len(c.list)
	}
	return c.list[start:end]
}

// CandidateUI is the external overlay-drawing collaborator; actual
// drawing of the tray icon and candidate window stays out of this core.
type CandidateUI interface {
	ShowCandidates(ic *IC, page []Candidate, highlight int)
	HideCandidates(ic *IC)
}

// TriggerCandidate begins the Hanja/symbol candidate flow for ic
// (steps 1-6). It requests a client-text snapshot, assembles
// and normalises the lookup key, queries the symbol table and then the
// Hanja table, filters by the connection's charset, and shows the
// overlay if anything survives.
func (s *Server) TriggerCandidate(ic *IC) error {
	if ic.candidate != nil {
		return ErrCandidateActive
	}
	text, err := s.Transport.StrConversion(ic.ConnID, ic.ID, StrConvRetrieval, StrConvBackward, 10)
	if err != nil {
		return err
	}
	ic.clientText = text

	key := assembleLookupKey(ic.clientText.String(), ic.preedit.Buffer.String(), string(ic.hic.PreeditString()))
	key = norm.NFC.String(key)
	if key == "" {
		return ErrNoCandidates
	}

	var hits []Candidate
	if s.Symbols != nil {
		hits = s.Symbols.MatchSuffix(key)
	}
	if len(hits) == 0 && s.Hanja != nil {
		hits = s.Hanja.MatchSuffix(key)
	}
	if ic.conn != nil && ic.conn.Charset != nil {
		hits = filterByCharset(hits, ic.conn.Charset)
	}
	if len(hits) == 0 {
		return ErrNoCandidates
	}

	ic.candidate = &candidateState{list: hits}
	if s.CandidateUI != nil {
		s.CandidateUI.ShowCandidates(ic, ic.candidate.pageItems(), ic.candidate.index%candidatesPerPage)
	}
	return nil
}

// assembleLookupKey concatenates the three buffers, then if the result
// contains a space, keeps only the substring after the last space, and
// skips leading whitespace/punctuation.
func assembleLookupKey(clientText, buffer, hicPreedit string) string {
	key := clientText + buffer + hicPreedit
	if idx := strings.LastIndexByte(key, ' '); idx >= 0 {
		key = key[idx+1:]
	}
	key = strings.TrimLeftFunc(key, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
	return key
}

// filterByCharset drops any candidate whose value cannot be represented
// in conn's locale charset.
func filterByCharset(cands []Candidate, cs *CharsetConverter) []Candidate {
	out := cands[:0:0]
	for _, c := range cands {
		if cs.CanRepresent(c.Value) {
			out = append(out, c)
		}
	}
	return out
}

// CandidateKeyAction is the result of dispatching one key while a
// candidate window is open (navigation keymap).
type CandidateKeyAction int

const (
	CandidateNoAction CandidateKeyAction = iota
	CandidateClosed
	CandidateInserted
)

// DispatchCandidateKey handles one key event while ic.candidate is open.
// All keys are swallowed; unmapped keys are simply ignored.
func (s *Server) DispatchCandidateKey(ic *IC, ev KeyEvent) CandidateKeyAction {
	c := ic.candidate
	if c == nil {
		return CandidateNoAction
	}
	switch ev.Keysym {
	case Keysym('k'), KeysymUp:
		c.move(-1)
	case Keysym('j'), KeysymDown:
		c.move(1)
	case Keysym('h'), KeysymLeft, KeysymPrior, KeysymBackSpace, KeysymKPSubtract:
		c.pageMove(-1)
	case Keysym('l'), KeysymRight, KeysymSpace, KeysymNext, KeysymTab, KeysymKPAdd:
		c.pageMove(1)
	case KeysymEscape:
		s.closeCandidate(ic)
		return CandidateClosed
	case KeysymReturn, KeysymKPEnter:
		s.insertCandidate(ic, c.index)
		return CandidateInserted
	default:
		if d, ok := ev.Keysym.IsKPDigit(); ok && d >= 1 && d <= 9 {
			return s.insertAtPagePosition(ic, c, d-1)
		}
		if ev.Keysym >= Keysym('1') && ev.Keysym <= Keysym('9') {
			return s.insertAtPagePosition(ic, c, int(ev.Keysym-Keysym('1')))
		}
		if pos, ok := numpadLayoutPosition(ev.Keysym); ok {
			return s.insertAtPagePosition(ic, c, pos)
		}
	}
	if s.CandidateUI != nil {
		s.CandidateUI.ShowCandidates(ic, c.pageItems(), c.index%candidatesPerPage)
	}
	return CandidateNoAction
}

// numpadLayoutPosition maps the nine numpad navigation keysyms (sent by a
// NumLock-off keypad in place of KP_1..KP_9) to the same 0..8 page
// position a digit key would select, in the spatial order the physical
// keypad presents them: End/Down/Next is the bottom row, Left/Begin/Right
// the middle row, Home/Up/Prior the top row.
func numpadLayoutPosition(ks Keysym) (int, bool) {
	switch ks {
	case KeysymKPEnd:
		return 0, true
	case KeysymKPDown:
		return 1, true
	case KeysymKPNext:
		return 2, true
	case KeysymKPLeft:
		return 3, true
	case KeysymKPBegin:
		return 4, true
	case KeysymKPRight:
		return 5, true
	case KeysymKPHome:
		return 6, true
	case KeysymKPUp:
		return 7, true
	case KeysymKPPrior:
		return 8, true
	}
	return 0, false
}

func (c *candidateState) move(delta int) {
	n := c.index + delta
	if n < 0 {
		n = 0
	}
	if n >= len(c.list) {
		n = len(c.list) - 1
	}
	c.index = n
}

func (c *candidateState) pageMove(dir int) {
	newStart := c.pageStart() + dir*candidatesPerPage
	if newStart < 0 {
		newStart = 0
	}
	if newStart >= len(c.list) {
		newStart = c.pageStart()
	}
	c.index = newStart
}

func (s *Server) insertAtPagePosition(ic *IC, c *candidateState, pos int) CandidateKeyAction {
	idx := c.pageStart() + pos
	if idx >= len(c.list) {
		return CandidateNoAction
	}
	s.insertCandidate(ic, idx)
	return CandidateInserted
}

func (s *Server) closeCandidate(ic *IC) {
	if ic.candidate == nil {
		return
	}
	if s.CandidateUI != nil {
		s.CandidateUI.HideCandidates(ic)
	}
	ic.candidate = nil
}

// insertCandidate retracts the candidate's source scalars across
// hic/buffer/client_text in reverse order, then commits the formatted
// replacement.
func (s *Server) insertCandidate(ic *IC, idx int) {
	cand := ic.candidate.list[idx]
	remaining := len([]rune(cand.Key))

	if !ic.hic.IsEmpty() {
		ic.hic.Reset()
		remaining--
	}
	for remaining > 0 && !ic.preedit.Buffer.IsEmpty() {
		ic.preedit.Buffer.EraseLastSyllable()
		remaining--
	}
	for remaining > 0 && !ic.clientText.IsEmpty() {
		n := ic.clientText.LastSyllableLen()
		ic.clientText.Erase(n)
		s.Transport.StrConversion(ic.ConnID, ic.ID, StrConvSubstitution, StrConvBackward, n)
		remaining--
	}

	value := cand.Value
	if ic.UseSimpChina {
		if simplified, ok := toSimplifiedChinese(value); ok {
			value = simplified
		}
	}
	replacement := formatCandidate(cand.Key, value, ic.CandFormat)

	left := ic.preedit.Buffer.String()
	ic.preedit.Buffer.Clear()
	ic.hic.Reset()
	s.commitNow(ic, left+replacement)
	s.closeCandidate(ic)
	updatePreedit(ic)
}

// formatCandidate renders a chosen candidate per the configured format
// : "hanja", "hanja(hangul)", or "hangul(hanja)".
func formatCandidate(hangul, hanja string, format CandidateFormat) string {
	switch format {
	case FormatHanjaHangul:
		return hanja + "(" + hangul + ")"
	case FormatHangulHanja:
		return hangul + "(" + hanja + ")"
	default:
		return hanja
	}
}

// toSimplifiedChinese round-trips a Hanja value through the GB18030
// encoding and returns the decoded text with true. GB18030 covers all of
// Unicode, so the result is the same string: no Traditional-to-Simplified
// character mapping is applied, and the value is not checked against the
// connection charset. If encoding or decoding fails, or the decode is
// empty, it returns the original value with false (see DESIGN.md for the
// fallback decision).
func toSimplifiedChinese(hanja string) (string, bool) {
	enc := simplifiedchinese.GB18030
	b, err := enc.NewEncoder().String(hanja)
	if err != nil {
		return hanja, false
	}
	out, err := enc.NewDecoder().String(b)
	if err != nil || out == "" {
		return hanja, false
	}
	return out, true
}
