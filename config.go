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

// CandidateFormat selects how a chosen Hanja candidate is rendered back
// into the commit string.
type CandidateFormat int

const (
	FormatHanja CandidateFormat = iota
	FormatHanjaHangul
	FormatHangulHanja
)

// CommitStrategy selects the IC's commit path: modeled as a strategy
// enum on the IC rather than a bool, since a third strategy is plausible.
type CommitStrategy int

const (
	CommitImmediate CommitStrategy = iota
	CommitByWord
)

// ConfigStore is the external configuration collaborator :
// themes, commit/format policy, and hot-key sets, all of which a real
// deployment loads from an on-disk config file this module never parses.
type ConfigStore interface {
	AutoReorder() bool
	CommitStrategy() CommitStrategy
	ShowStatus() bool
	DynamicEventFlow() bool
	UseSimplifiedChinese() bool
	CandidateFormat() CandidateFormat
	OffKeys() []Keysym
	CandidateTriggerKeys() []KeyEvent
}

// KeyboardMap supplies the active keyboard layout's keysym→scalar table.
// Type distinguishes the 2-set and 3-set Korean layouts.
type KeyboardMap struct {
	Type    KeyboardLayout
	Name    string
	Scalars [94]rune // indexed by keysym - '!'
}

// KeyboardLayout distinguishes the 2-set and 3-set Dubeolsik/Sebeolsik
// Korean keyboard families.
type KeyboardLayout int

const (
	Layout2Set KeyboardLayout = iota
	Layout3Set
)

// Normalize maps a raw keysym through the active layout, returning the
// jamo scalar it represents and whether the keysym was in range.
func (m KeyboardMap) Normalize(ks Keysym) (rune, bool) {
	if !ks.IsPrintable() {
		return 0, false
	}
	idx := int(ks) - int(Keysym('!'))
	if idx < 0 || idx >= len(m.Scalars) {
		return 0, false
	}
	r := m.Scalars[idx]
	return r, r != 0
}

// KeyboardMapLoader loads a named keyboard layout.
type KeyboardMapLoader interface {
	Load(name string) (KeyboardMap, error)
}

// ComposeEntry is one compose-table mapping, two keysyms producing a
// resulting scalar.
type ComposeEntry struct {
	Key1, Key2 Keysym
	Value      rune
}

// ComposeMapLoader loads the sorted compose-table array.
type ComposeMapLoader interface {
	Load() ([]ComposeEntry, error)
}

// Candidate is one Hanja or symbol candidate: the value to insert and the
// underlying Hangul key it was matched against.
type Candidate struct {
	Key   string
	Value string
}

// LookupTable is the shared shape of the symbol and Hanja dictionary
// engines : both expose suffix matching over a UTF-8 key.
type LookupTable interface {
	MatchSuffix(key string) []Candidate
}

// FontMetrics is what a FontSetLoader returns for computing preedit
// window geometry.
type FontMetrics struct {
	Name    string
	Ascent  int
	Descent int
}

// FontSetLoader loads a named font set.
type FontSetLoader interface {
	Load(name string) (FontMetrics, error)
}
