// Copyright 2024 CloudWeGo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jdwp

// ReadString decodes a JDWP string at off: a 4-byte signed length
// (bytes, not characters) followed by that many UTF-8 bytes. It
// returns the decoded string and the offset just past it.
func ReadString(buf []byte, off int) (string, int, error) {
	n, err := ReadI32(buf, off)
	if err != nil {
		return "", off, err
	}
	start := off + 4
	if n < 0 {
		return "", off, &CodecError{Kind: InsufficientData, Detail: "negative string length"}
	}
	if err := checkBounds(buf, start, int(n)); err != nil {
		return "", off, err
	}
	end := start + int(n)
	return string(buf[start:end]), end, nil
}

// AppendString appends a JDWP string: a 4-byte signed length followed
// by the UTF-8 bytes. The encoded size contribution is always
// 4 + len(s), regardless of the string's rune count.
func AppendString(buf []byte, s string) []byte {
	buf = AppendI32(buf, int32(len(s)))
	return append(buf, s...)
}

// StringSize returns the on-wire size of s: 4 + len(utf8(s)).
func StringSize(s string) int {
	return 4 + len(s)
}
