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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveRoundTrip(t *testing.T) {
	t.Run("u8", func(t *testing.T) {
		buf := AppendU8(nil, 0xAB)
		v, err := ReadU8(buf, 0)
		require.NoError(t, err)
		assert.Equal(t, byte(0xAB), v)
	})
	t.Run("bool", func(t *testing.T) {
		buf := AppendBool(nil, true)
		v, err := ReadBool(buf, 0)
		require.NoError(t, err)
		assert.True(t, v)
	})
	t.Run("i16", func(t *testing.T) {
		buf := AppendI16(nil, -12345)
		v, err := ReadI16(buf, 0)
		require.NoError(t, err)
		assert.EqualValues(t, -12345, v)
	})
	t.Run("u16", func(t *testing.T) {
		buf := AppendU16(nil, 0xBEEF)
		v, err := ReadU16(buf, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 0xBEEF, v)
	})
	t.Run("i32", func(t *testing.T) {
		for _, v := range []int32{0, 1, -1, math.MaxInt32, math.MinInt32} {
			buf := AppendI32(nil, v)
			got, err := ReadI32(buf, 0)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})
	t.Run("u32", func(t *testing.T) {
		buf := AppendU32(nil, 0xDEADBEEF)
		v, err := ReadU32(buf, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 0xDEADBEEF, v)
	})
	t.Run("i64", func(t *testing.T) {
		for _, v := range []int64{0, 1, -1, math.MaxInt64, math.MinInt64} {
			buf := AppendI64(nil, v)
			got, err := ReadI64(buf, 0)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})
	t.Run("f32 preserves NaN and signed zero", func(t *testing.T) {
		for _, v := range []float32{0, float32(math.Copysign(0, -1)), 1.5, float32(math.NaN()), float32(math.Inf(-1))} {
			buf := AppendF32(nil, v)
			got, err := ReadF32(buf, 0)
			require.NoError(t, err)
			assert.Equal(t, math.Float32bits(v), math.Float32bits(got))
		}
	})
	t.Run("f64 preserves NaN and signed zero", func(t *testing.T) {
		for _, v := range []float64{0, math.Copysign(0, -1), 1.5, math.NaN(), math.Inf(1)} {
			buf := AppendF64(nil, v)
			got, err := ReadF64(buf, 0)
			require.NoError(t, err)
			assert.Equal(t, math.Float64bits(v), math.Float64bits(got))
		}
	})
}

func TestReadInsufficientData(t *testing.T) {
	_, err := ReadI32([]byte{0x01, 0x02}, 0)
	require.Error(t, err)
	var ce *CodecError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, InsufficientData, ce.Kind)
}

func TestReadOffsetIntoLargerBuffer(t *testing.T) {
	buf := make([]byte, 20)
	buf = AppendI32(buf[:8], 0x11223344)
	v, err := ReadI32(buf, 8)
	require.NoError(t, err)
	assert.Equal(t, int32(0x11223344), v)
}
