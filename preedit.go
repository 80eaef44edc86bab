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

// PreeditLifecycleState is the preedit state machine's current state.
type PreeditLifecycleState int

const (
	PreeditIdle PreeditLifecycleState = iota
	PreeditStarted
	PreeditVisible
)

// Preedit holds everything the IC needs to realise the preedit contract
// for whichever style was negotiated (IC.preedit).
type Preedit struct {
	Buffer     UString // committed-but-not-flushed text, word-commit mode
	Window     WindowID
	HasWindow  bool
	Area       Rect
	Spot       Point
	Ascent     int
	Descent    int
	Width      int
	Height     int
	Foreground Pixel
	Background Pixel
	FontSet    string

	state      PreeditLifecycleState
	Start      bool // XIM "start" flag: true once PreeditStart has fired
	PrevLength int  // scalar length most recently sent to the client
}

// Rect is an X11 rectangle, used for the Area preedit/status attribute.
type Rect struct{ X, Y, Width, Height int }

// Point is an X11 point, used for the SpotLocation preedit attribute.
type Point struct{ X, Y int }

// PreeditRenderer realises the preedit contract for one IC's negotiated
// style: Callbacks style asks the client to draw, Position/Area style
// draws a server-owned window, Nothing style draws nothing at all.
// The three implementations share this interface so updatePreedit,
// startPreeditState and donePreeditState don't need to branch on style.
type PreeditRenderer interface {
	// Start realises the Idle→Started transition.
	Start(ic *IC)
	// Draw realises the Started/Visible→Visible and Visible→Started
	// transitions, sending the current normal+hilight text.
	Draw(ic *IC, normal, hilight []rune)
	// Done realises the →Idle transition (mode change out of Compose,
	// or IC destroy).
	Done(ic *IC)
}

// preeditText returns the two segments the client renders differently:
// normal (underlined, from the word-commit buffer) and hilight (reversed,
// the automaton's in-progress syllable).
func preeditText(ic *IC) (normal, hilight []rune) {
	return []rune(ic.preedit.Buffer), ic.hic.PreeditString()
}

// updatePreedit drives the Started/Visible part of the state machine
// after composition changes: it computes the new text, updates
// PrevLength, and calls the renderer's Draw (a no-op for Nothing style).
func updatePreedit(ic *IC) {
	normal, hilight := preeditText(ic)
	empty := len(normal) == 0 && len(hilight) == 0
	if empty && ic.preedit.state == PreeditVisible {
		ic.preedit.state = PreeditStarted
	} else if !empty {
		ic.preedit.state = PreeditVisible
	}
	if ic.renderer != nil {
		ic.renderer.Draw(ic, normal, hilight)
	}
	ic.preedit.PrevLength = len(normal) + len(hilight)
}

// startPreeditState drives the Idle→Started transition.
func startPreeditState(ic *IC) {
	if ic.preedit.state != PreeditIdle {
		return
	}
	ic.preedit.state = PreeditStarted
	ic.preedit.Start = true
	if ic.renderer != nil {
		ic.renderer.Start(ic)
	}
}

// donePreeditState drives the transition back to Idle and resets
// PrevLength. It commits nothing and leaves the word-commit buffer and
// the automaton as they are.
func donePreeditState(ic *IC) {
	if ic.preedit.state == PreeditIdle {
		return
	}
	ic.preedit.state = PreeditIdle
	ic.preedit.Start = false
	ic.preedit.PrevLength = 0
	if ic.renderer != nil {
		ic.renderer.Done(ic)
	}
}

// callbackRenderer implements PreeditStyle == PreeditCallbacks: the
// client draws, in response to PreeditStart/PreeditDraw/PreeditDone
// callbacks relayed straight from the Transport.
type callbackRenderer struct{ t Transport }

func (r callbackRenderer) Start(ic *IC) { r.t.PreeditStart(ic.ConnID, ic.ID) }
func (r callbackRenderer) Draw(ic *IC, normal, hilight []rune) {
	r.t.PreeditDraw(ic.ConnID, ic.ID, normal, hilight, ic.preedit.PrevLength)
}
func (r callbackRenderer) Done(ic *IC) { r.t.PreeditDone(ic.ConnID, ic.ID) }

// windowRenderer implements PreeditStyle == PreeditArea/PreeditPosition:
// the server owns a preedit window and draws into it directly. Actual
// glyph drawing is the external font-set/X-drawing collaborator; this
// renderer only manages window visibility and hands text to that
// collaborator.
type windowRenderer struct {
	t      Transport
	drawer WindowDrawer
}

func (r windowRenderer) Start(ic *IC) {
	ic.preedit.HasWindow = true
	if r.drawer != nil {
		r.drawer.ShowPreeditWindow(ic)
	}
}
func (r windowRenderer) Draw(ic *IC, normal, hilight []rune) {
	if r.drawer != nil {
		r.drawer.DrawPreeditWindow(ic, normal, hilight)
	}
}
func (r windowRenderer) Done(ic *IC) {
	ic.preedit.HasWindow = false
	if r.drawer != nil {
		r.drawer.HidePreeditWindow(ic)
	}
}

// noneRenderer implements PreeditStyle == PreeditNothing: the client is
// told nothing about composition in progress.
type noneRenderer struct{}

func (noneRenderer) Start(*IC)                {}
func (noneRenderer) Draw(*IC, []rune, []rune) {}
func (noneRenderer) Done(*IC)                 {}

// WindowDrawer is the external font-set/X-drawing collaborator a
// windowRenderer calls into ("X font-set and preedit-window
// drawing primitives").
type WindowDrawer interface {
	ShowPreeditWindow(ic *IC)
	DrawPreeditWindow(ic *IC, normal, hilight []rune)
	HidePreeditWindow(ic *IC)
}

// newRenderer selects the PreeditRenderer for ic's negotiated style.
func newRenderer(style PreeditStyle, t Transport, drawer WindowDrawer) PreeditRenderer {
	switch style {
	case PreeditCallbacks:
		return callbackRenderer{t: t}
	case PreeditArea, PreeditPosition:
		return windowRenderer{t: t, drawer: drawer}
	default:
		return noneRenderer{}
	}
}
