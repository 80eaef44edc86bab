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

// Package encoding registers the client-locale encodings a Hangul XIM
// server is likely to meet: Korean locales naturally, plus the other
// Compound Text charsets a non-Korean client on the same display may
// advertise.
package encoding

import (
	"github.com/hangul-im/nabi"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Register wires every known locale encoding into nabi's charset
// registry. Call it once at process start, before any Connection is
// created.
func Register() {
	nabi.RegisterEncoding("EUC-KR", korean.EUCKR)
	nabi.RegisterEncoding("ksc5601", korean.EUCKR)
	nabi.RegisterEncoding("ISO8859-1", charmap.ISO8859_1)
	nabi.RegisterEncoding("ISO8859-15", charmap.ISO8859_15)
	nabi.RegisterEncoding("KOI8-R", charmap.KOI8R)

	nabi.RegisterEncoding("EUC-JP", japanese.EUCJP)
	nabi.RegisterEncoding("Shift_JIS", japanese.ShiftJIS)

	nabi.RegisterEncoding("GB18030", simplifiedchinese.GB18030)
	nabi.RegisterEncoding("GBK", simplifiedchinese.GBK)

	nabi.RegisterEncoding("Big5", traditionalchinese.Big5)

	aliases := map[string]string{
		"eucKR":       "EUC-KR",
		"eucJP":       "EUC-JP",
		"SJIS":        "Shift_JIS",
		"8859-1":      "ISO8859-1",
		"ISO-8859-1":  "ISO8859-1",
		"8859-15":     "ISO8859-15",
		"ISO-8859-15": "ISO8859-15",
	}
	for n, v := range aliases {
		nabi.RegisterEncoding(n, nabi.GetEncoding(v))
	}
}
