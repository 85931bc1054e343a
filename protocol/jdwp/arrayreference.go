package jdwp

// ArrayReference is command set 13.
const CmdSetArrayReference = 13

const (
	CmdArrayRefLength    = 1
	CmdArrayRefGetValues = 2
	CmdArrayRefSetValues = 3
)

func (c *Codec) EncodeArrayRefLength(arrayObject ID) []byte {
	b := NewCommand(CmdSetArrayReference, CmdArrayRefLength)
	newEncoder(b, c.sizes).objectID(arrayObject)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeArrayRefLengthReply(buf []byte, offset int) (int32, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	return n, d.Err()
}

func (c *Codec) EncodeArrayRefGetValues(arrayObject ID, firstIndex, length int32) []byte {
	b := NewCommand(CmdSetArrayReference, CmdArrayRefGetValues)
	e := newEncoder(b, c.sizes)
	e.objectID(arrayObject)
	e.i32(firstIndex)
	e.i32(length)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeArrayRefGetValuesReply(buf []byte, offset int) (ArrayRegion, error) {
	d := newDecoder(buf, offset, c.sizes)
	r := d.arrayRegion()
	return r, d.Err()
}

// ArraySetValuesArgs is ArrayReference.SetValues' request shape: the
// target array, the first index to overwrite, and the untagged values
// to store starting there (element tag/width is carried out of band
// via the array's component type, which only the caller resolves).
type ArraySetValuesArgs struct {
	ArrayObject ID
	FirstIndex  int32
	Values      []UntaggedValue
}

func (c *Codec) EncodeArrayRefSetValues(a ArraySetValuesArgs) []byte {
	b := NewCommand(CmdSetArrayReference, CmdArrayRefSetValues)
	e := newEncoder(b, c.sizes)
	e.objectID(a.ArrayObject)
	e.i32(a.FirstIndex)
	e.i32(int32(len(a.Values)))
	for _, v := range a.Values {
		e.untaggedValue(v)
	}
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeArrayRefSetValuesReply(buf []byte, offset int) (Ack, error) {
	return decodeAck(buf[offset:])
}
