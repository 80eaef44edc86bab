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

// ConnID identifies an XIM client connection, assigned by the transport.
type ConnID uint16

// ICID identifies an Input Context, unique within its Connection.
type ICID uint16

// StrConvOp is the string-conversion operation requested of the client,
// matching the XIM string-conversion callback's operation field.
type StrConvOp int

const (
	StrConvRetrieval StrConvOp = iota
	StrConvSubstitution
)

// StrConvDirection is the direction a string-conversion request scans
// from the client's cursor.
type StrConvDirection int

const (
	StrConvBackward StrConvDirection = iota
	StrConvForward
)

// Transport is the seam between the IC subsystem and the XIM wire
// protocol. The core never frames or parses XIM messages
// itself; it only calls these methods and is called by the dispatcher's
// caller with already-decoded KeyEvents.
type Transport interface {
	// Commit sends a finalized string to the client (IMCommitStruct,
	// flag XimLookupChars).
	Commit(conn ConnID, ic ICID, text []rune)

	// PreeditStart/Draw/Done realise the Callbacks preedit style
	// (IMPreeditCBStruct major codes PreeditStart/PreeditDraw/
	// PreeditDone). chgLength tells the client how many scalars of its
	// previous preedit to replace, per IC.preedit.PrevLength.
	PreeditStart(conn ConnID, ic ICID)
	PreeditDraw(conn ConnID, ic ICID, normal, hilight []rune, chgLength int)
	PreeditDone(conn ConnID, ic ICID)

	// StatusStart/Draw/Done realise the status-area callbacks
	// (IMStatusCBStruct).
	StatusStart(conn ConnID, ic ICID)
	StatusDraw(conn ConnID, ic ICID, text string)
	StatusDone(conn ConnID, ic ICID)

	// PreeditStateChanged notifies the client of an
	// IMPreeditStateStruct change (enabled/disabled).
	PreeditStateChanged(conn ConnID, ic ICID, enabled bool)

	// StrConversion issues an IMStrConvCBStruct request and returns the
	// client's reply. For StrConvRetrieval, length is a lookback factor
	// (step 1 uses factor 10); for StrConvSubstitution,
	// length is the number of scalars to delete.
	StrConversion(conn ConnID, ic ICID, op StrConvOp, dir StrConvDirection, length int) (UString, error)
}
