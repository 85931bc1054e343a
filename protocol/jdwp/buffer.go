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

import (
	"math/bits"

	"github.com/bytedance/gopkg/lang/dirtmake"
)

const defaultBufferSize = 64

// Buffer is a growable, append-only byte container used both as the
// in-progress command packet and as the payload carrier for a Value.
// It is single-owner: a Buffer is never shared between concurrent
// callers.
type Buffer struct {
	buf []byte
}

// NewBuffer returns an empty Buffer with no preallocation.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// NewBufferSize returns an empty Buffer with capacity for at least sz
// bytes before its first grow.
func NewBufferSize(sz int) *Buffer {
	if sz <= 0 {
		return &Buffer{}
	}
	return &Buffer{buf: dirtmake.Bytes(0, sz)}
}

// Len returns the number of bytes currently held.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Bytes returns the backing bytes. The caller must not retain the slice
// across further mutation of the Buffer.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

func (b *Buffer) grow(extra int) {
	need := len(b.buf) + extra
	if need <= cap(b.buf) {
		return
	}
	ncap := 1 << bits.Len(uint(need-1))
	if ncap < defaultBufferSize {
		ncap = defaultBufferSize
	}
	nbuf := dirtmake.Bytes(len(b.buf), ncap)
	copy(nbuf, b.buf)
	b.buf = nbuf
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(v byte) {
	b.grow(1)
	b.buf = append(b.buf, v)
}

// Append appends raw bytes.
func (b *Buffer) Append(p []byte) {
	b.grow(len(p))
	b.buf = append(b.buf, p...)
}

// SetAt overwrites the byte at an already-written position. Used for
// patching the packet length after the body has been encoded.
func (b *Buffer) SetAt(pos int, v byte) {
	b.buf[pos] = v
}

// At returns the byte at an already-written position.
func (b *Buffer) At(pos int) byte {
	return b.buf[pos]
}

// ResetTo truncates the buffer back to length n. It never releases
// capacity.
func (b *Buffer) ResetTo(n int) {
	b.buf = b.buf[:n]
}
