package jdwp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueRoundTripInt(t *testing.T) {
	v := NewIntValue(0x11223344)
	buf := AppendValue(nil, v)
	assert.Equal(t, []byte{0x49, 0x11, 0x22, 0x33, 0x44}, buf)

	got, n, err := ReadValue(buf, 0, 8)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
	assert.Equal(t, TagInt, got.Tag)
	assert.EqualValues(t, 0x11223344, got.AsInt())
}

func TestValueRoundTripNullObject(t *testing.T) {
	v := NewObjectValue(TagObject, 0, 8)
	buf := AppendValue(nil, v)
	assert.Equal(t, []byte{0x4C, 0, 0, 0, 0, 0, 0, 0, 0}, buf)

	got, _, err := ReadValue(buf, 0, 8)
	require.NoError(t, err)
	assert.Equal(t, TagObject, got.Tag)
	assert.True(t, got.AsID().IsNull())
}

func TestValueVoidHasEmptyPayload(t *testing.T) {
	v := NewVoidValue()
	buf := AppendValue(nil, v)
	assert.Equal(t, []byte{byte(TagVoid)}, buf)
	got, n, err := ReadValue(buf, 0, 8)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Empty(t, got.Payload)
}

func TestValueInvalidTag(t *testing.T) {
	_, _, err := ReadValue([]byte{0xFF, 0, 0, 0, 0}, 0, 8)
	require.Error(t, err)
	var ce *CodecError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, InvalidTag, ce.Kind)
	assert.Equal(t, byte(0xFF), ce.Tag)
}

func TestUntaggedValueRoundTrip(t *testing.T) {
	uv := UntaggedValue{Tag: TagLong, Payload: AppendI64(nil, -7)}
	buf := AppendUntaggedValue(nil, uv)
	assert.Len(t, buf, 8) // no tag byte on the wire

	got, n, err := ReadUntaggedValue(buf, 0, TagLong, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.EqualValues(t, -7, Value(got).AsLong())
}

func TestTagSizeTable(t *testing.T) {
	cases := []struct {
		tag  Tag
		size int
	}{
		{TagByte, 1}, {TagBoolean, 1},
		{TagChar, 2}, {TagShort, 2},
		{TagFloat, 4}, {TagInt, 4},
		{TagDouble, 8}, {TagLong, 8},
		{TagVoid, 0},
		{TagObject, 8}, {TagArray, 8}, {TagString, 8},
		{TagThread, 8}, {TagThreadGroup, 8}, {TagClassLoader, 8}, {TagClassObject, 8},
	}
	for _, c := range cases {
		got, err := TagSize(c.tag, 8)
		require.NoError(t, err)
		assert.Equal(t, c.size, got)
	}
	_, err := TagSize(Tag('?'), 8)
	require.Error(t, err)
}

func TestLocationRoundTrip(t *testing.T) {
	sizes := DefaultIDSizes()
	loc := Location{TypeTag: TypeTagClass, ClassID: 100, MethodID: 200, Index: 300}
	buf := sizes.AppendLocation(nil, loc)
	assert.Equal(t, sizes.LocationSize(), len(buf))

	got, n, err := sizes.ReadLocation(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
	assert.Equal(t, loc, got)
}

func TestTaggedObjectIDRoundTrip(t *testing.T) {
	sizes := DefaultIDSizes()
	v := TaggedObjectID{Tag: TagThread, ID: 0xABCD}
	buf := sizes.AppendTaggedObjectID(nil, v)
	assert.Equal(t, sizes.TaggedObjectIDSize(), len(buf))

	got, n, err := sizes.ReadTaggedObjectID(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
	assert.Equal(t, v, got)
}

func TestArrayRegionPrimitiveRoundTrip(t *testing.T) {
	sizes := DefaultIDSizes()
	region := ArrayRegion{Tag: TagInt, Elements: []Value{
		NewIntValue(1), NewIntValue(2), NewIntValue(3),
	}}
	buf := sizes.AppendArrayRegion(nil, region)
	// tag + length + 3*4 bytes, no per-element tag
	assert.Equal(t, 1+4+3*4, len(buf))

	got, n, err := sizes.ReadArrayRegion(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
	assert.Equal(t, region.Tag, got.Tag)
	require.Len(t, got.Elements, 3)
	assert.EqualValues(t, 2, got.Elements[1].AsInt())
}

func TestArrayRegionReferenceElementsAreFullyTagged(t *testing.T) {
	sizes := DefaultIDSizes()
	region := ArrayRegion{Tag: TagObject, Elements: []Value{
		NewObjectValue(TagObject, 1, 8),
		NewObjectValue(TagObject, 2, 8),
	}}
	buf := sizes.AppendArrayRegion(nil, region)
	// tag + length + 2*(1 tag byte + 8 id bytes), symmetric on encode and decode
	assert.Equal(t, 1+4+2*(1+8), len(buf))

	got, n, err := sizes.ReadArrayRegion(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
	require.Len(t, got.Elements, 2)
	assert.EqualValues(t, 2, got.Elements[1].AsID())
}

func TestArrayRegionEmpty(t *testing.T) {
	sizes := DefaultIDSizes()
	region := ArrayRegion{Tag: TagByte}
	buf := sizes.AppendArrayRegion(nil, region)
	assert.Equal(t, []byte{byte(TagByte), 0, 0, 0, 0}, buf)

	got, n, err := sizes.ReadArrayRegion(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
	assert.Empty(t, got.Elements)
}
