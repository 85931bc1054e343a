package jdwp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizedRoundTripAllWidths(t *testing.T) {
	for _, w := range []int{1, 2, 4, 8} {
		max := uint64(1)<<(uint(w)*8) - 1
		for _, v := range []uint64{0, 1, max / 2, max} {
			buf := AppendSized(nil, v, w)
			require.Len(t, buf, w)
			got, err := ReadSized(buf, 0, w)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	}
}

func TestIDNullIsZero(t *testing.T) {
	var id ID
	assert.True(t, id.IsNull())
	id = 1
	assert.False(t, id.IsNull())
}

func TestIDCodecEachKindUsesItsNegotiatedWidth(t *testing.T) {
	sizes := IDSizes{
		FieldIDSize:         1,
		MethodIDSize:        2,
		ObjectIDSize:        8,
		ReferenceTypeIDSize: 4,
		FrameIDSize:         2,
	}
	cases := []struct {
		kind IDKind
		size int
	}{
		{IDKindObject, 8},
		{IDKindReferenceType, 4},
		{IDKindMethod, 2},
		{IDKindField, 1},
		{IDKindFrame, 2},
	}
	for _, c := range cases {
		buf := sizes.AppendID(c.kind, nil, 0x42)
		assert.Len(t, buf, c.size)
		got, err := sizes.ReadID(c.kind, buf, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 0x42, got)
	}
}

func TestNullObjectIDIsAllZeroBytes(t *testing.T) {
	sizes := DefaultIDSizes()
	buf := sizes.AppendObjectID(nil, 0)
	assert.Equal(t, make([]byte, 8), buf)
}
