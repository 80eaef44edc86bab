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

import "log/slog"

// OutputMode selects whether the automaton emits decomposed jamo or
// precomposed syllables (set_output_mode).
type OutputMode int

const (
	OutputSyllable OutputMode = iota
	OutputJamo
)

// HangulIC is the opaque jamo-combination automaton: a black box that
// owns the choseong/jungseong/jongseong state for one in-progress
// syllable. Its internal combination rules are an external collaborator
// ; this interface is the seam the IC drives it through.
type HangulIC interface {
	// Process feeds one keysym to the automaton. It returns false if the
	// key was not consumed (not a jamo in the active keyboard map).
	Process(ks Keysym) bool

	// Backspace removes the most recently added jamo. It returns false
	// if the automaton held nothing to remove.
	Backspace() bool

	// Reset drops any in-progress composition without committing it.
	Reset()

	// Flush returns the in-progress preedit as a commit string and
	// clears the automaton, as if the user had finished the syllable.
	Flush() []rune

	// PreeditString returns the scalars of the in-progress syllable.
	PreeditString() []rune

	// CommitString returns the scalars finalized by the most recent
	// Process call (a completed syllable pushed out by a new one).
	CommitString() []rune

	// IsEmpty reports whether the automaton holds no jamo.
	IsEmpty() bool

	// SelectKeyboard switches the active keyboard layout (e.g. "2",
	// "3f", "39") by name.
	SelectKeyboard(name string) error

	// SetOutputMode selects jamo or syllable output.
	SetOutputMode(mode OutputMode)
}

// TranslateFunc is called when an ASCII key becomes a jamo. It exists
// only for logging; it never vetoes anything.
type TranslateFunc func(ch rune)

// TransitionFunc is called before the automaton advances to a new jamo.
// Returning false vetoes the transition, silently swallowing the key
// ("Conversion veto").
type TransitionFunc func(candidatePreedit []rune) bool

// LogTranslate is the default TranslateFunc: it logs the chosen scalar at
// debug level and otherwise does nothing.
func LogTranslate(ch rune) {
	slog.Debug("jamo translated", "rune", string(ch))
}

// transitionPolicy holds exactly the configuration the transition filter
// needs: the auto-reorder flag and the connection's charset handle. The
// IC stores only this, not a pointer back into the whole connection.
type transitionPolicy struct {
	autoReorder bool
	charset     *CharsetConverter
}

// NewTransitionFunc builds the TransitionFunc an IC registers with its
// HangulIC: without auto-reorder, a
// new choseong is vetoed while a jungseong or jongseong is already
// present, and a new jungseong is vetoed while a jongseong is present;
// independently, a transition is vetoed if the resulting preedit cannot
// be represented in the connection's locale charset.
func NewTransitionFunc(autoReorder bool, charset *CharsetConverter) TransitionFunc {
	p := transitionPolicy{autoReorder: autoReorder, charset: charset}
	return p.allow
}

func (p transitionPolicy) allow(candidatePreedit []rune) bool {
	if !p.autoReorder && len(candidatePreedit) > 0 {
		// The automaton calls the transition func with the jamo
		// sequence *as it would be* after accepting the new jamo; the
		// newest scalar is always last.
		newest := ClassifyJamo(candidatePreedit[len(candidatePreedit)-1])
		rest := candidatePreedit[:len(candidatePreedit)-1]
		if blockedByOrdering(newest, rest) {
			return false
		}
	}
	if p.charset != nil && !p.charset.CanRepresent(string(candidatePreedit)) {
		return false
	}
	return true
}

// blockedByOrdering reports whether adding a jamo of class newest is
// vetoed given the classes already present in rest.
func blockedByOrdering(newest JamoClass, rest []rune) bool {
	hasJungseong, hasJongseong := false, false
	for _, r := range rest {
		switch ClassifyJamo(r) {
		case JamoJungseong:
			hasJungseong = true
		case JamoJongseong:
			hasJongseong = true
		}
	}
	switch newest {
	case JamoChoseong:
		return hasJungseong || hasJongseong
	case JamoJungseong:
		return hasJongseong
	default:
		return false
	}
}
