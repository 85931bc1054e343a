package jdwp

// StringReference is command set 10.
const CmdSetStringReference = 10

const CmdStringRefValue = 1

func (c *Codec) EncodeStringRefValue(stringObject ID) []byte {
	b := NewCommand(CmdSetStringReference, CmdStringRefValue)
	newEncoder(b, c.sizes).objectID(stringObject)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeStringRefValueReply(buf []byte, offset int) (string, error) {
	d := newDecoder(buf, offset, c.sizes)
	s := d.str()
	return s, d.Err()
}
