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
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestTransitionFuncVetoesChoseongAfterJungseong(t *testing.T) {
	fn := NewTransitionFunc(false, nil)
	// jungseong already present ('ㅏ'=0x1161), now trying to add a
	// second choseong ('ㄴ'=0x1102) without auto-reorder.
	if fn([]rune{0x1161, 0x1102}) {
		t.Fatal("expected veto: choseong after jungseong without auto-reorder")
	}
}

func TestTransitionFuncAllowsWithAutoReorder(t *testing.T) {
	fn := NewTransitionFunc(true, nil)
	if !fn([]rune{0x1161, 0x1102}) {
		t.Fatal("auto-reorder should allow choseong after jungseong")
	}
}

func TestTransitionFuncAllowsJungseongAfterChoseong(t *testing.T) {
	fn := NewTransitionFunc(false, nil)
	if !fn([]rune{0x1100, 0x1161}) {
		t.Fatal("jungseong after choseong should be allowed")
	}
}

func TestTransitionFuncVetoesOnCharsetMismatch(t *testing.T) {
	RegisterEncoding("ISO8859-1-test", charmap.ISO8859_1)
	conv, err := NewCharsetConverter("ISO8859-1-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn := NewTransitionFunc(true, conv)
	// Jungseong 'ㅏ' (U+1161) has no representation in ISO8859-1.
	if fn([]rune{0x1161}) {
		t.Fatal("expected veto when candidate preedit cannot be represented")
	}
}
