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
	"errors"
)

var (
	// ErrNoCharset indicates that a connection's locale encoding could
	// not be resolved to a registered charset converter.
	ErrNoCharset = errors.New("character set not supported")

	// ErrUnknownIC indicates a CreateIC/SetICValues/DestroyIC request
	// named an IC id not owned by the connection.
	ErrUnknownIC = errors.New("no such input context")

	// ErrUnknownToplevel indicates a window-change walked to a root
	// window without finding a registered or creatable toplevel.
	ErrUnknownToplevel = errors.New("no such toplevel window")

	// ErrNoCandidates indicates a candidate lookup produced no hits in
	// either the symbol table or the Hanja table.
	ErrNoCandidates = errors.New("no candidates found")

	// ErrCandidateActive indicates a second candidate trigger arrived
	// while a candidate window was already open on the IC.
	ErrCandidateActive = errors.New("candidate window already active")
)
