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

// simLayout is a 2-set-style mapping, just enough of it to assemble
// 가/나/다 and a lone ㄱ in tests, without pulling in a real keyboard
// table.
var simLayout = map[rune]rune{
	'r': 0x1100, // ㄱ choseong
	's': 0x1102, // ㄴ choseong
	'e': 0x1103, // ㄷ choseong
	'k': 0x1161, // ㅏ jungseong
}

// simHangulIC is a minimal stand-in for the real jamo-combination engine,
// sufficient to drive Dispatch and the commit/preedit plumbing through a
// realistic sequence of syllables without linking an actual automaton.
type simHangulIC struct {
	cho, jung, jong rune
	commit          []rune
	translate       TranslateFunc
	transition      TransitionFunc
	outputMode      OutputMode
}

func newSimHangulIC(transition TransitionFunc, translate TranslateFunc) HangulIC {
	return &simHangulIC{transition: transition, translate: translate}
}

func (a *simHangulIC) current() []rune {
	var out []rune
	if a.cho != 0 {
		out = append(out, a.cho)
	}
	if a.jung != 0 {
		out = append(out, a.jung)
	}
	if a.jong != 0 {
		out = append(out, a.jong)
	}
	return out
}

func (a *simHangulIC) allow(candidate []rune) bool {
	if a.transition == nil {
		return true
	}
	return a.transition(candidate)
}

func (a *simHangulIC) commitCurrent() {
	a.commit = append(a.commit, a.PreeditString()...)
	a.cho, a.jung, a.jong = 0, 0, 0
}

// Process accepts one keysym into the current syllable, starting a new
// one whenever the relevant slot is already filled. It only consults the
// transition veto for genuine out-of-order inserts — filling an earlier
// slot (choseong, jungseong) after a later one is already present — not
// for the ordinary case of a new syllable beginning.
func (a *simHangulIC) Process(ks Keysym) bool {
	jamo, ok := simLayout[rune(ks)]
	if !ok {
		return false
	}
	switch ClassifyJamo(jamo) {
	case JamoChoseong:
		switch {
		case a.cho != 0:
			a.commitCurrent()
			a.cho = jamo
		case a.jung != 0 || a.jong != 0:
			if !a.allow(append(a.current(), jamo)) {
				return true
			}
			a.cho = jamo
		default:
			a.cho = jamo
		}
	case JamoJungseong:
		switch {
		case a.jung != 0:
			a.commitCurrent()
			a.jung = jamo
		case a.jong != 0:
			if !a.allow(append(a.current(), jamo)) {
				return true
			}
			a.jung = jamo
		default:
			a.jung = jamo
		}
	default:
		return false
	}
	if a.translate != nil {
		a.translate(jamo)
	}
	return true
}

func (a *simHangulIC) Backspace() bool {
	switch {
	case a.jong != 0:
		a.jong = 0
	case a.jung != 0:
		a.jung = 0
	case a.cho != 0:
		a.cho = 0
	default:
		return false
	}
	return true
}

func (a *simHangulIC) Reset() {
	a.cho, a.jung, a.jong = 0, 0, 0
	a.commit = nil
}

func (a *simHangulIC) Flush() []rune {
	out := a.PreeditString()
	a.cho, a.jung, a.jong = 0, 0, 0
	return out
}

func (a *simHangulIC) PreeditString() []rune {
	if a.outputMode == OutputJamo {
		return a.current()
	}
	if a.cho != 0 && a.jung != 0 {
		return []rune{composeSyllable(a.cho, a.jung, a.jong)}
	}
	return a.current()
}

func (a *simHangulIC) CommitString() []rune {
	out := a.commit
	a.commit = nil
	return out
}

func (a *simHangulIC) IsEmpty() bool {
	return a.cho == 0 && a.jung == 0 && a.jong == 0
}

func (a *simHangulIC) SelectKeyboard(string) error { return nil }

func (a *simHangulIC) SetOutputMode(mode OutputMode) { a.outputMode = mode }

// composeSyllable assembles a precomposed Hangul syllable from its jamo,
// per the standard L*588 + V*28 + T + 0xAC00 formula. jong may be 0.
func composeSyllable(cho, jung, jong rune) rune {
	l := int(cho - 0x1100)
	v := int(jung - 0x1161)
	t := 0
	if jong != 0 {
		t = int(jong-0x11A8) + 1
	}
	return rune(0xAC00 + (l*21+v)*28 + t)
}
