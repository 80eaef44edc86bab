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

// nullHangulIC is the HangulIC used when a Server is built with no
// NewAutomaton factory: it consumes nothing, so every key simply passes
// through to the client. This keeps CreateIC usable in a deployment that
// has not yet linked a real composition engine, rather than requiring a
// nil check at every call site.
type nullHangulIC struct{}

func newNullHangulIC() HangulIC { return nullHangulIC{} }

func (nullHangulIC) Process(Keysym) bool         { return false }
func (nullHangulIC) Backspace() bool             { return false }
func (nullHangulIC) Reset()                      {}
func (nullHangulIC) Flush() []rune               { return nil }
func (nullHangulIC) PreeditString() []rune       { return nil }
func (nullHangulIC) CommitString() []rune        { return nil }
func (nullHangulIC) IsEmpty() bool               { return true }
func (nullHangulIC) SelectKeyboard(string) error { return nil }
func (nullHangulIC) SetOutputMode(OutputMode)    {}
