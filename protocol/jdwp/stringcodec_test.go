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

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", "Ljava/lang/String;", "héllo wörld", "日本語"} {
		buf := AppendString(nil, s)
		assert.Equal(t, StringSize(s), len(buf))
		got, n, err := ReadString(buf, 0)
		require.NoError(t, err)
		assert.Equal(t, s, got)
		assert.Equal(t, len(buf), n)
	}
}

func TestStringSizeCountsBytesNotRunes(t *testing.T) {
	s := "日本語"
	assert.Equal(t, 4+len(s), StringSize(s))
	assert.NotEqual(t, 4+len([]rune(s)), StringSize(s))
}

func TestStringDecodePastEndOfBuffer(t *testing.T) {
	buf := AppendI32(nil, 10) // claims 10 bytes but none follow
	_, _, err := ReadString(buf, 0)
	require.Error(t, err)
	var ce *CodecError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, InsufficientData, ce.Kind)
}

func TestStringNegativeLength(t *testing.T) {
	buf := AppendI32(nil, -1)
	_, _, err := ReadString(buf, 0)
	require.Error(t, err)
}
