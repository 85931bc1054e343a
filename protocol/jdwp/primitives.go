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

import "math"

// checkBounds reports InsufficientData when n bytes aren't available
// starting at off in buf.
func checkBounds(buf []byte, off, n int) error {
	if off < 0 || n < 0 || off+n > len(buf) {
		return &CodecError{Kind: InsufficientData}
	}
	return nil
}

// ReadU8 reads an unsigned byte at off.
func ReadU8(buf []byte, off int) (uint8, error) {
	if err := checkBounds(buf, off, 1); err != nil {
		return 0, err
	}
	return buf[off], nil
}

// ReadBool reads a JDWP boolean (any nonzero byte is true) at off.
func ReadBool(buf []byte, off int) (bool, error) {
	b, err := ReadU8(buf, off)
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// ReadI16 reads a big-endian signed 16-bit integer at off.
func ReadI16(buf []byte, off int) (int16, error) {
	if err := checkBounds(buf, off, 2); err != nil {
		return 0, err
	}
	return int16(uint16(buf[off])<<8 | uint16(buf[off+1])), nil
}

// ReadU16 reads a big-endian unsigned 16-bit integer at off.
func ReadU16(buf []byte, off int) (uint16, error) {
	if err := checkBounds(buf, off, 2); err != nil {
		return 0, err
	}
	return uint16(buf[off])<<8 | uint16(buf[off+1]), nil
}

// ReadI32 reads a big-endian signed 32-bit integer at off.
func ReadI32(buf []byte, off int) (int32, error) {
	if err := checkBounds(buf, off, 4); err != nil {
		return 0, err
	}
	return int32(uint32(buf[off])<<24 | uint32(buf[off+1])<<16 | uint32(buf[off+2])<<8 | uint32(buf[off+3])), nil
}

// ReadU32 reads a big-endian unsigned 32-bit integer at off.
func ReadU32(buf []byte, off int) (uint32, error) {
	if err := checkBounds(buf, off, 4); err != nil {
		return 0, err
	}
	return uint32(buf[off])<<24 | uint32(buf[off+1])<<16 | uint32(buf[off+2])<<8 | uint32(buf[off+3]), nil
}

// ReadI64 reads a big-endian signed 64-bit integer at off.
func ReadI64(buf []byte, off int) (int64, error) {
	u, err := ReadU64(buf, off)
	return int64(u), err
}

// ReadU64 reads a big-endian unsigned 64-bit integer at off.
func ReadU64(buf []byte, off int) (uint64, error) {
	if err := checkBounds(buf, off, 8); err != nil {
		return 0, err
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(buf[off+i])
	}
	return v, nil
}

// ReadF32 reads an IEEE-754 single-precision float at off.
func ReadF32(buf []byte, off int) (float32, error) {
	u, err := ReadU32(buf, off)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

// ReadF64 reads an IEEE-754 double-precision float at off.
func ReadF64(buf []byte, off int) (float64, error) {
	u, err := ReadU64(buf, off)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

// ReadSized reads the low size bytes (1..=8) of a big-endian unsigned
// integer at off, zero-extended into a uint64. This is the primitive
// underneath every variable-width identifier codec.
func ReadSized(buf []byte, off, size int) (uint64, error) {
	if size < 0 || size > 8 {
		return 0, &CodecError{Kind: InsufficientData}
	}
	if err := checkBounds(buf, off, size); err != nil {
		return 0, err
	}
	var v uint64
	for i := 0; i < size; i++ {
		v = v<<8 | uint64(buf[off+i])
	}
	return v, nil
}

// AppendU8 appends an unsigned byte.
func AppendU8(buf []byte, v uint8) []byte {
	return append(buf, v)
}

// AppendBool appends a JDWP boolean (0x00 or 0x01).
func AppendBool(buf []byte, v bool) []byte {
	if v {
		return append(buf, 1)
	}
	return append(buf, 0)
}

// AppendI16 appends a big-endian signed 16-bit integer.
func AppendI16(buf []byte, v int16) []byte {
	return AppendU16(buf, uint16(v))
}

// AppendU16 appends a big-endian unsigned 16-bit integer.
func AppendU16(buf []byte, v uint16) []byte {
	return append(buf, byte(v>>8), byte(v))
}

// AppendI32 appends a big-endian signed 32-bit integer.
func AppendI32(buf []byte, v int32) []byte {
	return AppendU32(buf, uint32(v))
}

// AppendU32 appends a big-endian unsigned 32-bit integer.
func AppendU32(buf []byte, v uint32) []byte {
	return append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// AppendI64 appends a big-endian signed 64-bit integer.
func AppendI64(buf []byte, v int64) []byte {
	return AppendU64(buf, uint64(v))
}

// AppendU64 appends a big-endian unsigned 64-bit integer.
func AppendU64(buf []byte, v uint64) []byte {
	return append(buf,
		byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// AppendF32 appends an IEEE-754 single-precision float.
func AppendF32(buf []byte, v float32) []byte {
	return AppendU32(buf, math.Float32bits(v))
}

// AppendF64 appends an IEEE-754 double-precision float.
func AppendF64(buf []byte, v float64) []byte {
	return AppendU64(buf, math.Float64bits(v))
}

// AppendSized appends the low size bytes (1..=8) of v, big-endian.
func AppendSized(buf []byte, v uint64, size int) []byte {
	for i := size - 1; i >= 0; i-- {
		buf = append(buf, byte(v>>(uint(i)*8)))
	}
	return buf
}
