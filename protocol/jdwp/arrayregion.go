package jdwp

// ArrayRegion is a homogeneous run of values sharing one Tag. If Tag is
// primitive, Elements holds exactly one Value per entry, all carrying
// Tag and a Tag-sized payload, written untagged on the wire (raw
// payload bytes back to back). If Tag is a reference tag, each element
// is a full tagged Value (its own tag byte precedes its object ID) —
// see DESIGN.md for why this differs from the source this spec was
// distilled from.
type ArrayRegion struct {
	Tag      Tag
	Elements []Value
}

// ReadArrayRegion decodes an ArrayRegion at off: u8 tag || i32 length
// || length elements.
func (s IDSizes) ReadArrayRegion(buf []byte, off int) (ArrayRegion, int, error) {
	tagByte, err := ReadU8(buf, off)
	if err != nil {
		return ArrayRegion{}, off, err
	}
	off++
	tag := Tag(tagByte)
	length, err := ReadI32(buf, off)
	if err != nil {
		return ArrayRegion{}, off, err
	}
	off += 4
	if length < 0 {
		return ArrayRegion{}, off, &CodecError{Kind: InsufficientData, Detail: "negative array region length"}
	}

	elemSize, err := TagSize(tag, s.ObjectIDSize)
	if err != nil {
		return ArrayRegion{}, off, err
	}

	region := ArrayRegion{Tag: tag}
	if length == 0 || elemSize == 0 {
		return region, off, nil
	}

	region.Elements = make([]Value, 0, length)
	if IsPrimitive(tag) {
		for i := int32(0); i < length; i++ {
			if err := checkBounds(buf, off, elemSize); err != nil {
				return ArrayRegion{}, off, err
			}
			payload := make([]byte, elemSize)
			copy(payload, buf[off:off+elemSize])
			region.Elements = append(region.Elements, Value{Tag: tag, Payload: payload})
			off += elemSize
		}
		return region, off, nil
	}

	// Reference region: each element is a full tagged Value.
	for i := int32(0); i < length; i++ {
		v, newOff, err := ReadValue(buf, off, s.ObjectIDSize)
		if err != nil {
			return ArrayRegion{}, off, err
		}
		region.Elements = append(region.Elements, v)
		off = newOff
	}
	return region, off, nil
}

// AppendArrayRegion appends an ArrayRegion: tag byte, i32 length, then
// the elements. Primitive-tagged elements are written as raw payload
// bytes (no per-element tag); reference-tagged elements are written as
// full tagged Values, symmetric with ReadArrayRegion.
func (s IDSizes) AppendArrayRegion(buf []byte, r ArrayRegion) []byte {
	buf = AppendU8(buf, byte(r.Tag))
	buf = AppendI32(buf, int32(len(r.Elements)))
	if IsPrimitive(r.Tag) {
		for _, v := range r.Elements {
			buf = append(buf, v.Payload...)
		}
		return buf
	}
	for _, v := range r.Elements {
		buf = AppendValue(buf, v)
	}
	return buf
}
