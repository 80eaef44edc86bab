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
	"strings"
	"sync"

	"golang.org/x/text/encoding"
)

// CharsetConverter validates and converts UTF-8 text to a client's locale
// encoding. A Connection holds one only when its locale is not a UTF-8
// alias; nil receivers are the "no conversion needed" case.
type CharsetConverter struct {
	name string
	enc  encoding.Encoding
}

// NewCharsetConverter returns a converter for name, or (nil, nil) if name
// is a UTF-8 alias and no conversion is ever required. It returns
// ErrNoCharset if name names a non-UTF-8 locale with no registered
// encoding ("no suitable encoding was found").
func NewCharsetConverter(name string) (*CharsetConverter, error) {
	if isUTF8Alias(name) {
		return nil, nil
	}
	enc := GetEncoding(name)
	if enc == nil {
		return nil, ErrNoCharset
	}
	return &CharsetConverter{name: name, enc: enc}, nil
}

// Name returns the locale encoding name the converter was built for.
func (c *CharsetConverter) Name() string {
	if c == nil {
		return "UTF-8"
	}
	return c.name
}

// CanRepresent reports whether s can be losslessly re-encoded into the
// converter's locale charset. A nil converter (UTF-8 connections) can
// represent anything. Used by the transition-veto policy and by
// candidate-list charset filtering.
func (c *CharsetConverter) CanRepresent(s string) bool {
	if c == nil {
		return true
	}
	_, err := c.enc.NewEncoder().String(s)
	return err == nil
}

// ToLocale converts UTF-8 text to the client's locale encoding, for
// building a Compound Text property. A nil converter
// returns s unchanged as bytes.
func (c *CharsetConverter) ToLocale(s string) ([]byte, error) {
	if c == nil {
		return []byte(s), nil
	}
	out, err := c.enc.NewEncoder().String(s)
	return []byte(out), err
}

var encodings map[string]encoding.Encoding
var encodingLk sync.Mutex

// RegisterEncoding registers a client-locale encoding under name, so that
// NewCharsetConverter(name) can later find it. This module's encoding
// subpackage calls this once at process start to wire in the
// golang.org/x/text charset implementations a deployment is likely to see
// (Configuration store supplies the locale name per connection).
func RegisterEncoding(name string, enc encoding.Encoding) {
	encodingLk.Lock()
	defer encodingLk.Unlock()
	if encodings == nil {
		encodings = make(map[string]encoding.Encoding)
	}
	encodings[name] = enc
}

// GetEncoding looks up a previously registered encoding by name. It
// returns nil for UTF-8/ASCII, since those never need conversion.
func GetEncoding(name string) encoding.Encoding {
	encodingLk.Lock()
	defer encodingLk.Unlock()
	if enc, ok := encodings[name]; ok {
		return enc
	}
	return nil
}

// isUTF8Alias reports whether name names a UTF-8 (or US-ASCII, a UTF-8
// subset) locale encoding. A Connection's charset converter is only
// constructed when the client's locale encoding is *not* a UTF-8 alias.
func isUTF8Alias(name string) bool {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "UTF-8", "UTF8", "C.UTF-8", "C.UTF8", "POSIX", "C", "US-ASCII", "ANSI_X3.4-1968", "":
		return true
	default:
		return false
	}
}
