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

// Package nabi implements the Input Context subsystem of a Hangul XIM
// server: the per-client composition state machine, the preedit lifecycle
// for all four XIM preedit styles, the Hanja candidate-selection flow, and
// the key dispatcher that drives them.
//
// The package does not speak the XIM wire protocol itself, load keyboard
// layouts or compose tables, query a Hanja dictionary, perform jamo
// combination, or draw anything. Those are external collaborators reached
// through the interfaces in wire.go and config.go; see Server for how they
// are wired together.
package nabi
