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

func TestCreateICAppliesRequestedAttributes(t *testing.T) {
	s := newTestServer(&simConfig{}, newSimTransport())
	conn := &Connection{ics: map[ICID]*IC{}}
	ic := s.CreateIC(conn, nil, []Attribute{
		{Name: "InputStyle", Value: NewInputStyle(PreeditCallbacks, StatusNothing)},
		{Name: "ClientWindow", Value: WindowID(42)},
	}, nil, nil)

	if ic.InputStyle.PreeditStyle() != PreeditCallbacks {
		t.Fatalf("PreeditStyle = %v, want PreeditCallbacks", ic.InputStyle.PreeditStyle())
	}
	if ic.ClientWindow != 42 {
		t.Fatalf("ClientWindow = %v, want 42", ic.ClientWindow)
	}
	if ic.ID == 0 {
		t.Fatal("expected CreateIC to assign a nonzero id")
	}
	if _, ok := conn.IC(ic.ID); !ok {
		t.Fatal("expected the connection to own the new IC")
	}
}

func TestCreateICIgnoresUnknownAttribute(t *testing.T) {
	s := newTestServer(&simConfig{}, newSimTransport())
	conn := &Connection{ics: map[ICID]*IC{}}
	ic := s.CreateIC(conn, nil, []Attribute{{Name: "NoSuchAttribute", Value: 1}}, nil, nil)
	if ic == nil {
		t.Fatal("expected CreateIC to succeed despite an unknown attribute")
	}
}

func TestGetICValuesReportsFilterEvents(t *testing.T) {
	s := newTestServer(&simConfig{}, newSimTransport())
	conn := &Connection{ics: map[ICID]*IC{}}
	ic := s.CreateIC(conn, nil, nil, nil, nil)

	icVals, _, _ := GetICValues(ic, []string{"FilterEvents"}, nil, nil)
	if len(icVals) != 1 || icVals[0].Value.(uint32) != FilterEventMask {
		t.Fatalf("icVals = %v, want FilterEvents == %d", icVals, FilterEventMask)
	}
}

func TestGetICValuesRoundTripsClientWindow(t *testing.T) {
	s := newTestServer(&simConfig{}, newSimTransport())
	conn := &Connection{ics: map[ICID]*IC{}}
	ic := s.CreateIC(conn, nil, []Attribute{{Name: "ClientWindow", Value: WindowID(7)}}, nil, nil)

	icVals, _, _ := GetICValues(ic, []string{"ClientWindow"}, nil, nil)
	if len(icVals) != 1 || icVals[0].Value.(WindowID) != 7 {
		t.Fatalf("icVals = %v, want ClientWindow == 7", icVals)
	}
}

func TestResetICFlushesAndClearsBuffers(t *testing.T) {
	s := newTestServer(&simConfig{strategy: CommitImmediate}, newSimTransport())
	ic := newComposeIC(s)
	s.Dispatch(ic, key('r'))
	s.Dispatch(ic, key('k'))

	out, err := s.ResetIC(ic)
	if err != nil {
		t.Fatalf("ResetIC: %v", err)
	}
	if string(out) != "가" {
		t.Fatalf("ResetIC flush = %q, want 가", string(out))
	}
	if !ic.IsEmpty() {
		t.Fatal("expected IC empty after ResetIC")
	}
	if ic.preedit.PrevLength != 0 {
		t.Fatalf("PrevLength = %d, want 0", ic.preedit.PrevLength)
	}
}

func TestICIsEmptyInvariant(t *testing.T) {
	s := newTestServer(&simConfig{}, newSimTransport())
	ic := newComposeIC(s)
	if !ic.IsEmpty() {
		t.Fatal("freshly created IC should be empty")
	}
	s.Dispatch(ic, key('r'))
	if ic.IsEmpty() {
		t.Fatal("IC holding a choseong should not be empty")
	}
}

func TestDestroyICReleasesToplevel(t *testing.T) {
	s := newTestServer(&simConfig{}, newSimTransport())
	s.Toplevels = NewToplevelRegistry()
	conn := &Connection{ics: map[ICID]*IC{}}
	tree := fixedParentTree{parent: 100, isRoot: true}

	ic := s.CreateIC(conn, tree, []Attribute{{Name: "ClientWindow", Value: WindowID(5)}}, nil, nil)
	if s.Toplevels.RefCount(5) != 1 {
		t.Fatalf("RefCount = %d, want 1", s.Toplevels.RefCount(5))
	}
	s.DestroyIC(ic)
	if s.Toplevels.RefCount(5) != 0 {
		t.Fatalf("RefCount after destroy = %d, want 0", s.Toplevels.RefCount(5))
	}
	if _, ok := conn.IC(ic.ID); ok {
		t.Fatal("expected DestroyIC to remove the IC from its connection")
	}
}

// fixedParentTree is a WindowTree where every window's parent is the
// configured root.
type fixedParentTree struct {
	parent WindowID
	isRoot bool
}

func (f fixedParentTree) Parent(WindowID) (WindowID, bool) { return f.parent, f.isRoot }
