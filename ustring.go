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

// UString is an ordered sequence of Unicode scalars. It backs every buffer
// in the IC that the XIM wire protocol measures in scalar counts rather
// than bytes: the committed-but-not-yet-flushed preedit text, the client
// text snapshot used for candidate lookup, and the automaton's own
// preedit/commit strings once copied out of the HangulIC.
type UString []rune

// Append adds runes to the end of the string.
func (u *UString) Append(r ...rune) {
	*u = append(*u, r...)
}

// AppendString adds a Go string's runes to the end of the string.
func (u *UString) AppendString(s string) {
	u.Append([]rune(s)...)
}

// Erase removes the last n scalars. n is clamped to the string's length.
func (u *UString) Erase(n int) {
	if n <= 0 {
		return
	}
	l := len(*u)
	if n > l {
		n = l
	}
	*u = (*u)[:l-n]
}

// Clear empties the string without returning its content.
func (u *UString) Clear() {
	*u = (*u)[:0]
}

// Len returns the number of Unicode scalars in the string.
func (u UString) Len() int {
	return len(u)
}

// IsEmpty reports whether the string holds no scalars.
func (u UString) IsEmpty() bool {
	return len(u) == 0
}

// String renders the scalar sequence as a Go string.
func (u UString) String() string {
	return string([]rune(u))
}

// Clone returns an independent copy of the string.
func (u UString) Clone() UString {
	c := make(UString, len(u))
	copy(c, u)
	return c
}
