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

func TestErrorTextKnownCodes(t *testing.T) {
	cases := map[ErrorCode]string{
		ErrNone:          "no error",
		ErrInvalidThread: "invalid thread",
		ErrOutOfMemory:   "out of memory",
		ErrVMDead:        "virtual machine not running",
		ErrInternal:      "internal error",
		ErrNotImplemented: "not implemented",
	}
	for code, want := range cases {
		assert.Equal(t, want, ErrorText(code))
	}
}

func TestErrorTextUnknownCode(t *testing.T) {
	assert.Contains(t, ErrorText(ErrorCode(9999)), "9999")
}

func TestCodecErrorKindString(t *testing.T) {
	assert.Equal(t, "insufficient data", InsufficientData.String())
	assert.Equal(t, "invalid tag", InvalidTag.String())
	assert.Equal(t, "invalid event type", InvalidEventType.String())
	assert.Equal(t, "invalid modifier type", InvalidModifierType.String())
	assert.Equal(t, "unexpected type", UnexpectedType.String())
}

func TestCodecErrorMessages(t *testing.T) {
	assert.Contains(t, errInvalidTag(0xFF).Error(), "0xff")
	assert.Contains(t, errInvalidEventKind(7).Error(), "7")
	assert.Contains(t, errInvalidModKind(200).Error(), "200")
}

func TestCodecErrorModKindIsDistinctFromTag(t *testing.T) {
	err := errInvalidModKind(200)
	var ce *CodecError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, InvalidModifierType, ce.Kind)
	assert.EqualValues(t, 200, ce.ModKind)
	assert.Zero(t, ce.Tag)
}
