package jdwp

// ArrayType is command set 4.
const CmdSetArrayType = 4

const CmdArrayTypeNewInstance = 1

func (c *Codec) EncodeArrayTypeNewInstance(arrType ID, length int32) []byte {
	b := NewCommand(CmdSetArrayType, CmdArrayTypeNewInstance)
	e := newEncoder(b, c.sizes)
	e.refTypeID(arrType)
	e.i32(length)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeArrayTypeNewInstanceReply(buf []byte, offset int) (TaggedObjectID, error) {
	d := newDecoder(buf, offset, c.sizes)
	v := d.taggedObjectID()
	return v, d.Err()
}
