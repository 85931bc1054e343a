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

/*
 * JDWP Packet Header (11 bytes)
 *
 * +----------------------------------------------------------------+
 * |                         LENGTH (4)                             |
 * +----------------------------------------------------------------+
 * |                         ID (4)                                 |
 * +------------------+-----------------------------------------------+
 * | FLAGS (1)        | command: CMD SET (1) | CMD (1)                |
 * |                  | reply:   ERROR CODE (2)                       |
 * +------------------+-----------------------------------------------+
 * |                         BODY (variable)                          |
 * +----------------------------------------------------------------+
 */

// HeaderSize is the fixed 11-byte JDWP packet header length.
const HeaderSize = 11

// FlagReply is the only flag bit JDWP defines: set on replies, clear
// on commands.
const FlagReply byte = 0x80

// EventCommandSet and EventCommandID identify a composite event
// packet: a command packet with cmdSet=64, cmdID=100.
const (
	EventCommandSet byte = 64
	EventCommandID  byte = 100
)

// Handshake is the fixed 14-byte ASCII string exchanged as the very
// first bytes in both directions over a newly established transport.
const Handshake = "JDWP-Handshake"

// EncodeHandshake returns the literal handshake bytes.
func EncodeHandshake() []byte {
	return []byte(Handshake)
}

// DecodeHandshake reports whether b is exactly the handshake bytes.
func DecodeHandshake(b []byte) bool {
	return string(b) == Handshake
}

// ReadLength reads the packet's total length field (bytes 0..3).
func ReadLength(buf []byte) (int32, error) {
	return ReadI32(buf, 0)
}

// ReadID reads the packet's correlation ID field (bytes 4..7).
func ReadID(buf []byte) (int32, error) {
	return ReadI32(buf, 4)
}

// ReadFlags reads the packet's flags byte (byte 8).
func ReadFlags(buf []byte) (byte, error) {
	return ReadU8(buf, 8)
}

// ReadErrorCode reads a reply packet's 2-byte error code (bytes 9..10).
func ReadErrorCode(buf []byte) (ErrorCode, error) {
	v, err := ReadI16(buf, 9)
	return ErrorCode(v), err
}

// ReadCommandSet reads a command packet's command-set byte (byte 9).
func ReadCommandSet(buf []byte) (byte, error) {
	return ReadU8(buf, 9)
}

// ReadCommandID reads a command packet's command byte (byte 10).
func ReadCommandID(buf []byte) (byte, error) {
	return ReadU8(buf, 10)
}

// IsReply reports whether the packet's flags byte marks it a reply.
func IsReply(buf []byte) bool {
	flags, err := ReadFlags(buf)
	return err == nil && flags == FlagReply
}

// IsEvent reports whether the packet is a composite event: a command
// packet (flags != reply) with cmdSet=64, cmdID=100.
func IsEvent(buf []byte) bool {
	if IsReply(buf) {
		return false
	}
	cmdSet, err := ReadCommandSet(buf)
	if err != nil {
		return false
	}
	cmdID, err := ReadCommandID(buf)
	if err != nil {
		return false
	}
	return cmdSet == EventCommandSet && cmdID == EventCommandID
}

// WriteID patches the correlation ID into an already-encoded packet's
// bytes 4..7, in place. A transport uses this to assign the ID at send
// time, right before writing, without re-encoding the packet.
func WriteID(buf []byte, id int32) {
	b := uint32(id)
	buf[4] = byte(b >> 24)
	buf[5] = byte(b >> 16)
	buf[6] = byte(b >> 8)
	buf[7] = byte(b)
}

// NewCommand starts a new command packet: an 11-byte header with
// length and id left as 0 (the caller fixes up length via
// FinalizeLength and id via WriteID), flags=0x00, and the given
// command set / command ID.
func NewCommand(cmdSet, cmdID byte) *Buffer {
	b := NewBufferSize(HeaderSize)
	b.Append(make([]byte, 4)) // length placeholder
	b.Append(make([]byte, 4)) // id placeholder
	b.AppendByte(0x00)        // flags: command
	b.AppendByte(cmdSet)
	b.AppendByte(cmdID)
	return b
}

// FinalizeLength writes buf's current length into its own bytes 0..3.
// Call this once the command's body has been fully appended.
func FinalizeLength(buf *Buffer) {
	n := buf.Len()
	buf.SetAt(0, byte(n>>24))
	buf.SetAt(1, byte(n>>16))
	buf.SetAt(2, byte(n>>8))
	buf.SetAt(3, byte(n))
}
