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
	"encoding/binary"
	"fmt"
	"log/slog"
)

// IC is one client widget's Input Context: the per-widget composition
// state machine.
type IC struct {
	ID     ICID
	ConnID ConnID

	InputStyle   InputStyle
	ClientWindow WindowID
	FocusWindow  WindowID
	ModeScope    Scope
	AutoReorder  bool
	CandFormat   CandidateFormat
	UseSimpChina bool
	Strategy     CommitStrategy

	preedit    Preedit
	mode       Mode
	hic        HangulIC
	candidate  *candidateState
	clientText UString

	conn     *Connection
	toplevel *Toplevel
	renderer PreeditRenderer
}

// Mode returns the IC's current input mode.
func (ic *IC) Mode() Mode { return ic.mode }

// WindowTree is the external collaborator that answers "what is this
// window's parent" (ClientWindow negotiation walks the tree
// to the toplevel ancestor). It stays outside the core because it is a
// live X11 query.
type WindowTree interface {
	// Parent returns win's parent and whether that parent is the root
	// window.
	Parent(win WindowID) (parent WindowID, parentIsRoot bool)
}

// toplevelFor walks win's ancestor chain via tree until it finds the
// root's direct child, the toplevel.
func toplevelFor(tree WindowTree, win WindowID) WindowID {
	cur := win
	for {
		parent, isRoot := tree.Parent(cur)
		if isRoot {
			return cur
		}
		cur = parent
	}
}

// Attribute is one {name, value} pair from a CreateIC/SetICValues
// attribute list or a GetICValues reply.
type Attribute struct {
	Name  string
	Value any
}

type icAttr struct {
	name string
	get  func(*IC) (any, bool)
	set  func(*IC, any) error
}

// icAttrTable, preeditAttrTable and statusAttrTable are a
// pointer-offset-free replacement: a flat table
// of {name, getter, setter} instead of address arithmetic over a raw
// struct layout.
var icAttrTable = []icAttr{
	{
		name: "InputStyle",
		get:  func(ic *IC) (any, bool) { return ic.InputStyle, true },
		set: func(ic *IC, v any) error {
			s, ok := v.(InputStyle)
			if !ok {
				return fmt.Errorf("InputStyle: want InputStyle, got %T", v)
			}
			ic.InputStyle = s
			return nil
		},
	},
	{
		name: "ClientWindow",
		get:  func(ic *IC) (any, bool) { return ic.ClientWindow, true },
		set: func(ic *IC, v any) error {
			w, ok := v.(WindowID)
			if !ok {
				return fmt.Errorf("ClientWindow: want WindowID, got %T", v)
			}
			ic.ClientWindow = w
			return nil
		},
	},
	{
		name: "FocusWindow",
		get:  func(ic *IC) (any, bool) { return ic.FocusWindow, true },
		set: func(ic *IC, v any) error {
			w, ok := v.(WindowID)
			if !ok {
				return fmt.Errorf("FocusWindow: want WindowID, got %T", v)
			}
			ic.FocusWindow = w
			return nil
		},
	},
}

var preeditAttrTable = []icAttr{
	{
		name: "SpotLocation",
		get:  func(ic *IC) (any, bool) { return ic.preedit.Spot, true },
		set: func(ic *IC, v any) error {
			p, ok := v.(Point)
			if !ok {
				return fmt.Errorf("SpotLocation: want Point, got %T", v)
			}
			ic.preedit.Spot = p
			return nil
		},
	},
	{
		name: "Foreground",
		get:  func(ic *IC) (any, bool) { return ic.preedit.Foreground, true },
		set: func(ic *IC, v any) error {
			p, ok := v.(Pixel)
			if !ok {
				return fmt.Errorf("Foreground: want Pixel, got %T", v)
			}
			ic.preedit.Foreground = p
			return nil
		},
	},
	{
		name: "Background",
		get:  func(ic *IC) (any, bool) { return ic.preedit.Background, true },
		set: func(ic *IC, v any) error {
			p, ok := v.(Pixel)
			if !ok {
				return fmt.Errorf("Background: want Pixel, got %T", v)
			}
			ic.preedit.Background = p
			return nil
		},
	},
	{
		name: "Area",
		get:  func(ic *IC) (any, bool) { return ic.preedit.Area, true },
		set: func(ic *IC, v any) error {
			r, ok := v.(Rect)
			if !ok {
				return fmt.Errorf("Area: want Rect, got %T", v)
			}
			ic.preedit.Area = r
			return nil
		},
	},
	{
		name: "LineSpace",
		get:  func(ic *IC) (any, bool) { return ic.preedit.Height, true },
		set: func(ic *IC, v any) error {
			n, ok := v.(int)
			if !ok {
				return fmt.Errorf("LineSpace: want int, got %T", v)
			}
			ic.preedit.Height = n
			return nil
		},
	},
	{
		name: "PreeditState",
		get:  func(ic *IC) (any, bool) { return ic.preedit.state != PreeditIdle, true },
		set: func(ic *IC, v any) error {
			enabled, ok := v.(bool)
			if !ok {
				return fmt.Errorf("PreeditState: want bool, got %T", v)
			}
			if !enabled {
				donePreeditState(ic)
			} else {
				startPreeditState(ic)
			}
			return nil
		},
	},
	{
		name: "FontSet",
		get:  func(ic *IC) (any, bool) { return ic.preedit.FontSet, true },
		set: func(ic *IC, v any) error {
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("FontSet: want string, got %T", v)
			}
			ic.preedit.FontSet = s
			return nil
		},
	},
}

var statusAttrTable = []icAttr{
	{name: "Area", get: func(ic *IC) (any, bool) { return Rect{}, true }},
	{name: "AreaNeeded", get: func(ic *IC) (any, bool) { return Rect{}, true }},
	{name: "Foreground", get: func(ic *IC) (any, bool) { return Pixel(0), true }},
	{name: "Background", get: func(ic *IC) (any, bool) { return Pixel(0), true }},
	{name: "LineSpace", get: func(ic *IC) (any, bool) { return 0, true }},
	{name: "FontSet", get: func(ic *IC) (any, bool) { return "", true }},
}

func findAttr(table []icAttr, name string) (icAttr, bool) {
	for _, a := range table {
		if a.name == name {
			return a, true
		}
	}
	return icAttr{}, false
}

// applyAttrs sets every attribute in attrs from table on ic, logging and
// ignoring unknown attributes ("Transient client-side").
func applyAttrs(ic *IC, table []icAttr, attrs []Attribute) {
	for _, a := range attrs {
		attr, ok := findAttr(table, a.Name)
		if !ok || attr.set == nil {
			slog.Info("ignoring unknown or read-only attribute", "name", a.Name)
			continue
		}
		if err := attr.set(ic, a.Value); err != nil {
			slog.Info("rejecting malformed attribute value", "name", a.Name, "error", err)
		}
	}
}

// FilterEventMask is the XIM FilterEvents reply value: the IC always
// wants both KeyPress and KeyRelease delivered to it.
const FilterEventMask = 1<<0 | 1<<1 // KeyPress | KeyRelease

// GetICValues answers a GetICValues request for the named attributes
// across all three lists, plus the special computed "FilterEvents"
// IC attribute.
func GetICValues(ic *IC, icNames, preeditNames, statusNames []string) (icVals, preeditVals, statusVals []Attribute) {
	for _, n := range icNames {
		if n == "FilterEvents" {
			icVals = append(icVals, Attribute{Name: n, Value: uint32(FilterEventMask)})
			continue
		}
		if attr, ok := findAttr(icAttrTable, n); ok {
			if v, ok := attr.get(ic); ok {
				icVals = append(icVals, Attribute{Name: n, Value: v})
				continue
			}
		}
		slog.Info("ignoring unknown attribute in GetICValues", "name", n)
	}
	for _, n := range preeditNames {
		if n == "FontSet" {
			preeditVals = append(preeditVals, Attribute{Name: n, Value: encodeFontSetReply(ic.preedit.FontSet)})
			continue
		}
		if attr, ok := findAttr(preeditAttrTable, n); ok {
			if v, ok := attr.get(ic); ok {
				preeditVals = append(preeditVals, Attribute{Name: n, Value: v})
				continue
			}
		}
		slog.Info("ignoring unknown preedit attribute in GetICValues", "name", n)
	}
	for _, n := range statusNames {
		if attr, ok := findAttr(statusAttrTable, n); ok {
			if v, ok := attr.get(ic); ok {
				statusVals = append(statusVals, Attribute{Name: n, Value: v})
				continue
			}
		}
		slog.Info("ignoring unknown status attribute in GetICValues", "name", n)
	}
	return
}

// encodeFontSetReply builds the length-prefixed FontSet reply payload:
// a 16-bit count followed by the base-font name, with no terminator.
func encodeFontSetReply(name string) []byte {
	buf := make([]byte, 2+len(name))
	binary.BigEndian.PutUint16(buf, uint16(len(name)))
	copy(buf[2:], name)
	return buf
}

// CreateIC builds a new IC owned by conn, negotiates its attribute lists,
// and acquires its toplevel if ClientWindow is set.
func (s *Server) CreateIC(conn *Connection, tree WindowTree, icAttrs, preeditAttrs, statusAttrs []Attribute) *IC {
	ic := &IC{
		ModeScope:  ScopePerIC,
		Strategy:   s.Config.CommitStrategy(),
		CandFormat: s.Config.CandidateFormat(),
		AutoReorder: s.Config.AutoReorder(),
		UseSimpChina: s.Config.UseSimplifiedChinese(),
	}
	conn.addIC(ic)
	applyAttrs(ic, icAttrTable, icAttrs)
	applyAttrs(ic, preeditAttrTable, preeditAttrs)
	applyAttrs(ic, statusAttrTable, statusAttrs)

	if ic.ClientWindow != 0 && tree != nil {
		s.setToplevel(ic, tree, ic.ClientWindow)
	}
	ic.hic = s.NewHangulIC(ic)
	ic.renderer = newRenderer(ic.InputStyle.PreeditStyle(), s.Transport, s.WindowDrawer)
	return ic
}

// SetICValues updates an existing IC's attributes; ClientWindow changes
// re-resolve the toplevel reference.
func (s *Server) SetICValues(ic *IC, tree WindowTree, icAttrs, preeditAttrs, statusAttrs []Attribute) {
	prevWindow := ic.ClientWindow
	applyAttrs(ic, icAttrTable, icAttrs)
	applyAttrs(ic, preeditAttrTable, preeditAttrs)
	applyAttrs(ic, statusAttrTable, statusAttrs)
	if ic.ClientWindow != prevWindow && ic.ClientWindow != 0 && tree != nil {
		s.setToplevel(ic, tree, ic.ClientWindow)
	}
}

// setToplevel releases ic's previous toplevel reference (if any) and
// acquires the one for win's ancestor chain.
func (s *Server) setToplevel(ic *IC, tree WindowTree, win WindowID) {
	s.Toplevels.Release(ic.toplevel)
	root := toplevelFor(tree, win)
	ic.toplevel = s.Toplevels.Acquire(root)
}

// DestroyIC releases every resource ic owns: its toplevel reference, any
// open candidate window, and its slot in the connection.
func (s *Server) DestroyIC(ic *IC) {
	donePreeditState(ic)
	s.closeCandidate(ic)
	s.Toplevels.Release(ic.toplevel)
	ic.toplevel = nil
	if ic.conn != nil {
		ic.conn.removeIC(ic.ID)
	}
}

// ResetIC implements IMResetIC : it returns the flush
// string (preedit buffer + hic flush) encoded in the client's locale
// charset (plain UTF-8 bytes when the connection has no converter); the
// bytes are not wrapped in a Compound Text property. It clears all
// buffers, hides any drawn preedit window, and resets PrevLength to zero.
func (s *Server) ResetIC(ic *IC) ([]byte, error) {
	var flushed UString
	flushed.Append([]rune(ic.preedit.Buffer)...)
	flushed.Append(ic.hic.Flush()...)
	ic.preedit.Buffer.Clear()
	ic.hic.Reset()
	ic.preedit.PrevLength = 0
	if ic.InputStyle.IsDrawn() && ic.renderer != nil {
		ic.renderer.Done(ic)
	}
	var charset *CharsetConverter
	if ic.conn != nil {
		charset = ic.conn.Charset
	}
	return charset.ToLocale(flushed.String())
}

// IsEmpty reports whether an IC is empty: true iff its hic is empty and
// its preedit buffer is empty.
func (ic *IC) IsEmpty() bool {
	return ic.hic.IsEmpty() && ic.preedit.Buffer.IsEmpty()
}
