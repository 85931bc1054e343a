package jdwp

// ClassLoaderReference is command set 14.
const CmdSetClassLoaderReference = 14

const CmdClassLoaderRefVisibleClasses = 1

// VisibleClass is one entry of ClassLoaderReference.VisibleClasses' reply.
type VisibleClass struct {
	RefTypeTag TypeTag
	TypeID     ID
}

func (c *Codec) EncodeClassLoaderRefVisibleClasses(classLoaderObject ID) []byte {
	b := NewCommand(CmdSetClassLoaderReference, CmdClassLoaderRefVisibleClasses)
	newEncoder(b, c.sizes).objectID(classLoaderObject)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeClassLoaderRefVisibleClassesReply(buf []byte, offset int) ([]VisibleClass, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	out := make([]VisibleClass, 0, n)
	for i := int32(0); i < n; i++ {
		out = append(out, VisibleClass{RefTypeTag: TypeTag(d.u8()), TypeID: d.refTypeID()})
	}
	return out, d.Err()
}
