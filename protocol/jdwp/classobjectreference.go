package jdwp

// ClassObjectReference is command set 17.
const CmdSetClassObjectReference = 17

const CmdClassObjectRefReflectedType = 1

// ReflectedTypeReply is ClassObjectReference.ReflectedType's reply.
type ReflectedTypeReply struct {
	RefTypeTag TypeTag
	TypeID     ID
}

func (c *Codec) EncodeClassObjectRefReflectedType(classObject ID) []byte {
	b := NewCommand(CmdSetClassObjectReference, CmdClassObjectRefReflectedType)
	newEncoder(b, c.sizes).objectID(classObject)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeClassObjectRefReflectedTypeReply(buf []byte, offset int) (ReflectedTypeReply, error) {
	d := newDecoder(buf, offset, c.sizes)
	r := ReflectedTypeReply{RefTypeTag: TypeTag(d.u8()), TypeID: d.refTypeID()}
	return r, d.Err()
}
