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

// Connection is one per XIM client connection. It owns
// every IC the client creates; destroying a Connection cascades to all
// of them.
type Connection struct {
	ID          ConnID
	defaultMode Mode
	nextICID    ICID
	ics         map[ICID]*IC
	Charset     *CharsetConverter
}

// NewConnection creates a Connection for a freshly accepted client. The
// locale name identifies the client's encoding; localeEncoding being a
// UTF-8 alias means Charset stays nil.
func NewConnection(id ConnID, localeEncoding string) (*Connection, error) {
	conv, err := NewCharsetConverter(localeEncoding)
	if err != nil {
		return nil, err
	}
	return &Connection{
		ID:      id,
		ics:     make(map[ICID]*IC),
		Charset: conv,
	}, nil
}

// nextID allocates the next IC id, a monotonic 16-bit counter that wraps
// while skipping 0 (Connection).
func (c *Connection) nextID() ICID {
	for {
		c.nextICID++
		if c.nextICID != 0 {
			if _, taken := c.ics[c.nextICID]; !taken {
				return c.nextICID
			}
		}
	}
}

// addIC registers a newly created IC under a fresh id, setting its ID,
// ConnID and owning connection.
func (c *Connection) addIC(ic *IC) {
	ic.ID = c.nextID()
	ic.ConnID = c.ID
	ic.conn = c
	c.ics[ic.ID] = ic
}

// IC looks up an owned IC by id.
func (c *Connection) IC(id ICID) (*IC, bool) {
	ic, ok := c.ics[id]
	return ic, ok
}

// removeIC drops id from the connection's owned set. It does not itself
// release the IC's resources; callers use Server.DestroyIC for that.
func (c *Connection) removeIC(id ICID) {
	delete(c.ics, id)
}

// ICs returns every IC currently owned by the connection. The returned
// slice is a snapshot; it is safe to destroy ICs while iterating it.
func (c *Connection) ICs() []*IC {
	out := make([]*IC, 0, len(c.ics))
	for _, ic := range c.ics {
		out = append(out, ic)
	}
	return out
}
