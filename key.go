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

// Keysym is an X11 keysym value. Printable ASCII keysyms share their
// codepoint (so Keysym('a') == 0x61), matching the real X11 keysymdef.h
// layout; named keys above use their real XK_ values so a KeyEvent can be
// built directly from whatever the transport layer already decoded.
type Keysym int32

// Named keysyms referenced by the dispatcher and the
// candidate navigation keymap.
const (
	KeysymBackSpace Keysym = 0xFF08
	KeysymTab       Keysym = 0xFF09
	KeysymReturn    Keysym = 0xFF0D
	KeysymEscape    Keysym = 0xFF1B
	KeysymSpace     Keysym = 0x0020

	KeysymHome  Keysym = 0xFF50
	KeysymLeft  Keysym = 0xFF51
	KeysymUp    Keysym = 0xFF52
	KeysymRight Keysym = 0xFF53
	KeysymDown  Keysym = 0xFF54
	KeysymPrior Keysym = 0xFF55 // PageUp
	KeysymNext  Keysym = 0xFF56 // PageDown
	KeysymEnd   Keysym = 0xFF57
	KeysymBegin Keysym = 0xFF58

	KeysymKPEnter Keysym = 0xFF8D
	KeysymKPHome  Keysym = 0xFF95
	KeysymKPLeft  Keysym = 0xFF96
	KeysymKPUp    Keysym = 0xFF97
	KeysymKPRight Keysym = 0xFF98
	KeysymKPDown  Keysym = 0xFF99
	KeysymKPPrior Keysym = 0xFF9A
	KeysymKPNext  Keysym = 0xFF9B
	KeysymKPEnd   Keysym = 0xFF9C
	KeysymKPBegin Keysym = 0xFF9D

	KeysymKPAdd      Keysym = 0xFFAB
	KeysymKPSubtract Keysym = 0xFFAD

	// KeysymKP0..KeysymKP9 are contiguous, KP_0 .. KP_9.
	KeysymKP0 Keysym = 0xFFB0
	KeysymKP9 Keysym = 0xFFB9

	KeysymShiftL Keysym = 0xFFE1
	KeysymShiftR Keysym = 0xFFE2
)

const (
	printableFirst = Keysym('!')
	printableLast  = Keysym('~')
)

// IsPrintable reports whether ks falls in the dispatcher's composable
// range [!..~].
func (ks Keysym) IsPrintable() bool {
	return ks >= printableFirst && ks <= printableLast
}

// Rune returns the Unicode scalar a printable keysym represents. Only
// meaningful when IsPrintable reports true.
func (ks Keysym) Rune() rune {
	return rune(ks)
}

// IsKPDigit reports whether ks is KP_0..KP_9, and if so which digit.
func (ks Keysym) IsKPDigit() (digit int, ok bool) {
	if ks >= KeysymKP0 && ks <= KeysymKP9 {
		return int(ks - KeysymKP0), true
	}
	return 0, false
}

// ModMask is a bitmask of modifier keys held during a key event, matching
// the X11 KeyPress state field's bit layout for Shift/Ctrl/the three
// configurable Mod groups.
type ModMask uint16

const (
	ModShift ModMask = 1 << 0
	ModCtrl  ModMask = 1 << 2
	ModAlt   ModMask = 1 << 3 // Mod1
	Mod3     ModMask = 1 << 5
	Mod4     ModMask = 1 << 6
	Mod5     ModMask = 1 << 7
)

// HasAny reports whether any of the given modifiers are present.
func (m ModMask) HasAny(bits ModMask) bool {
	return m&bits != 0
}

// dispatchBypassMods is the modifier set that always flushes composition
// and passes the key to the client.
const dispatchBypassMods = ModCtrl | ModAlt | Mod3 | Mod4 | Mod5

// KeyEvent is the XIM KeyPress shape the dispatcher consumes: a keysym
// already normalised by the active keyboard map, plus the modifier state.
type KeyEvent struct {
	Keysym Keysym
	Mod    ModMask
}
