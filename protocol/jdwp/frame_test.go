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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandshakeRoundTrip(t *testing.T) {
	b := EncodeHandshake()
	assert.Equal(t, []byte{0x4A, 0x44, 0x57, 0x50, 0x2D, 0x48, 0x61, 0x6E,
		0x64, 0x73, 0x68, 0x61, 0x6B, 0x65}, b)
	assert.True(t, DecodeHandshake(b))
	assert.False(t, DecodeHandshake([]byte("not-a-handshake")))
}

func TestIDSizesCommandPacketBytes(t *testing.T) {
	got := EncodeVMIDSizes()
	want := []byte{0x00, 0x00, 0x00, 0x0B, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x07}
	assert.Equal(t, want, got)
}

func TestSuspendCommandPacketBytes(t *testing.T) {
	c := New(DefaultIDSizes())
	got := c.EncodeVMSuspend()
	want := []byte{0x00, 0x00, 0x00, 0x0B, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x08}
	assert.Equal(t, want, got)
}

func TestExitCommandBytes(t *testing.T) {
	c := New(DefaultIDSizes())
	got := c.EncodeVMExit(42)
	want := []byte{
		0x00, 0x00, 0x00, 0x0F,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x01, 0x0A,
		0x00, 0x00, 0x00, 0x2A,
	}
	assert.Equal(t, want, got)
}

func TestEmptyAckReplyDecode(t *testing.T) {
	reply := []byte{0x00, 0x00, 0x00, 0x0B, 0x00, 0x00, 0x00, 0x07, 0x80, 0x00, 0x00}
	require.True(t, IsReply(reply))
	errCode, err := ReadErrorCode(reply)
	require.NoError(t, err)
	assert.Equal(t, ErrNone, errCode)

	c := New(DefaultIDSizes())
	ack, err := c.DecodeVMSuspendReply(reply, HeaderSize)
	require.NoError(t, err)
	assert.Equal(t, Ack{}, ack)
}

func TestWriteIDPatchesCorrelationID(t *testing.T) {
	c := New(DefaultIDSizes())
	buf := c.EncodeVMSuspend()
	WriteID(buf, 0x01020304)
	id, err := ReadID(buf)
	require.NoError(t, err)
	assert.EqualValues(t, 0x01020304, id)
}

func TestPacketClassification(t *testing.T) {
	c := New(DefaultIDSizes())
	cmd := c.EncodeVMSuspend()
	assert.False(t, IsReply(cmd))
	assert.False(t, IsEvent(cmd))

	comp := c.EncodeEventComposite(Composite{SuspendPolicy: 1, Events: []Event{
		{Kind: EventKindVMDeath, RequestID: 1},
	}})
	assert.True(t, IsEvent(comp))
	assert.False(t, IsReply(comp))

	reply := []byte{0x00, 0x00, 0x00, 0x0B, 0x00, 0x00, 0x00, 0x07, 0x80, 0x00, 0x00}
	assert.True(t, IsReply(reply))
	assert.False(t, IsEvent(reply))
}
