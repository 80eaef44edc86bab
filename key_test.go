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

func TestKeysymIsPrintable(t *testing.T) {
	if !Keysym('g').IsPrintable() {
		t.Fatal("'g' should be printable")
	}
	if Keysym(KeysymBackSpace).IsPrintable() {
		t.Fatal("BackSpace should not be printable")
	}
	if Keysym(' ' - 1).IsPrintable() {
		t.Fatal("char below '!' should not be printable")
	}
}

func TestKeysymIsKPDigit(t *testing.T) {
	d, ok := KeysymKP0.IsKPDigit()
	if !ok || d != 0 {
		t.Fatalf("KP_0: got %d,%v want 0,true", d, ok)
	}
	d, ok = (KeysymKP0 + 5).IsKPDigit()
	if !ok || d != 5 {
		t.Fatalf("KP_5: got %d,%v want 5,true", d, ok)
	}
	if _, ok = KeysymReturn.IsKPDigit(); ok {
		t.Fatal("Return should not be a KP digit")
	}
}

func TestModMaskHasAny(t *testing.T) {
	m := ModCtrl | ModShift
	if !m.HasAny(ModCtrl) {
		t.Fatal("expected ModCtrl present")
	}
	if m.HasAny(ModAlt) {
		t.Fatal("did not expect ModAlt present")
	}
}
