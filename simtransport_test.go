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

// simTransport records every call a test makes through it, standing in
// for the real XIM wire transport.
type simTransport struct {
	commits       []string
	preeditStarts int
	preeditDones  int
	draws         []string
	statusStarts  int
	statusDones   int
	convReply     UString
	convErr       error
	lastConvOp    StrConvOp
	lastConvDir   StrConvDirection
	lastConvLen   int
}

func newSimTransport() *simTransport { return &simTransport{} }

func (t *simTransport) Commit(_ ConnID, _ ICID, text []rune) {
	t.commits = append(t.commits, string(text))
}

func (t *simTransport) PreeditStart(_ ConnID, _ ICID) { t.preeditStarts++ }

func (t *simTransport) PreeditDraw(_ ConnID, _ ICID, normal, hilight []rune, _ int) {
	t.draws = append(t.draws, string(normal)+"|"+string(hilight))
}

func (t *simTransport) PreeditDone(_ ConnID, _ ICID) { t.preeditDones++ }

func (t *simTransport) StatusStart(_ ConnID, _ ICID) { t.statusStarts++ }

func (t *simTransport) StatusDraw(_ ConnID, _ ICID, _ string) {}

func (t *simTransport) StatusDone(_ ConnID, _ ICID) { t.statusDones++ }

func (t *simTransport) PreeditStateChanged(_ ConnID, _ ICID, _ bool) {}

func (t *simTransport) StrConversion(_ ConnID, _ ICID, op StrConvOp, dir StrConvDirection, length int) (UString, error) {
	t.lastConvOp, t.lastConvDir, t.lastConvLen = op, dir, length
	return t.convReply, t.convErr
}

// simConfig is a fixed-answer ConfigStore for tests.
type simConfig struct {
	autoReorder    bool
	strategy       CommitStrategy
	showStatus     bool
	simpChina      bool
	format         CandidateFormat
	offKeys        []Keysym
	triggerKeys    []KeyEvent
	dynamicFlow    bool
}

func (c *simConfig) AutoReorder() bool                     { return c.autoReorder }
func (c *simConfig) CommitStrategy() CommitStrategy         { return c.strategy }
func (c *simConfig) ShowStatus() bool                       { return c.showStatus }
func (c *simConfig) DynamicEventFlow() bool                 { return c.dynamicFlow }
func (c *simConfig) UseSimplifiedChinese() bool             { return c.simpChina }
func (c *simConfig) CandidateFormat() CandidateFormat       { return c.format }
func (c *simConfig) OffKeys() []Keysym                      { return c.offKeys }
func (c *simConfig) CandidateTriggerKeys() []KeyEvent       { return c.triggerKeys }

// simLookupTable is a fixed-answer LookupTable for candidate tests.
type simLookupTable struct {
	entries map[string][]Candidate
}

func (l *simLookupTable) MatchSuffix(key string) []Candidate {
	return l.entries[key]
}
