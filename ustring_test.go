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

import "testing"

func TestUStringAppendErase(t *testing.T) {
	var u UString
	u.AppendString("가나다")
	if got, want := u.Len(), 3; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	u.Erase(1)
	if got, want := u.String(), "가나"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	u.Erase(10)
	if !u.IsEmpty() {
		t.Fatalf("expected empty string after over-erase, got %q", u.String())
	}
}

func TestUStringCloneIndependent(t *testing.T) {
	var u UString
	u.AppendString("ㄱㅏ")
	c := u.Clone()
	u.Append('ㄴ')
	if c.Len() != 2 {
		t.Fatalf("clone mutated: Len() = %d, want 2", c.Len())
	}
}

func TestUStringEraseNegativeIsNoop(t *testing.T) {
	var u UString
	u.AppendString("abc")
	u.Erase(-1)
	if got, want := u.String(), "abc"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
