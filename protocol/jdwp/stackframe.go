package jdwp

// StackFrame is command set 16.
const CmdSetStackFrame = 16

const (
	CmdStackFrameGetValues = 1
	CmdStackFrameSetValues = 2
	CmdStackFrameThisObject = 3
	CmdStackFramePopFrames  = 4
)

// SlotValue is one entry of StackFrame.GetValues' request: the local
// variable slot index and the tag the target VM is asked to read it as.
// The reply carries its own tag byte before each value.
type SlotValue struct {
	Slot int32
	Tag  Tag
}

func (c *Codec) EncodeStackFrameGetValues(thread, frame ID, slots []SlotValue) []byte {
	b := NewCommand(CmdSetStackFrame, CmdStackFrameGetValues)
	e := newEncoder(b, c.sizes)
	e.objectID(thread)
	e.frameID(frame)
	e.i32(int32(len(slots)))
	for _, s := range slots {
		e.i32(s.Slot)
		e.u8(byte(s.Tag))
	}
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeStackFrameGetValuesReply(buf []byte, offset int) ([]Value, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	out := make([]Value, 0, n)
	for i := int32(0); i < n; i++ {
		out = append(out, d.value())
	}
	return out, d.Err()
}

// SlotSetValue is one entry of StackFrame.SetValues' request.
type SlotSetValue struct {
	Slot  int32
	Value UntaggedValue
}

func (c *Codec) EncodeStackFrameSetValues(thread, frame ID, slots []SlotSetValue) []byte {
	b := NewCommand(CmdSetStackFrame, CmdStackFrameSetValues)
	e := newEncoder(b, c.sizes)
	e.objectID(thread)
	e.frameID(frame)
	e.i32(int32(len(slots)))
	for _, s := range slots {
		e.i32(s.Slot)
		e.untaggedValue(s.Value)
	}
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeStackFrameSetValuesReply(buf []byte, offset int) (Ack, error) {
	return decodeAck(buf[offset:])
}

func (c *Codec) EncodeStackFrameThisObject(thread, frame ID) []byte {
	b := NewCommand(CmdSetStackFrame, CmdStackFrameThisObject)
	e := newEncoder(b, c.sizes)
	e.objectID(thread)
	e.frameID(frame)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeStackFrameThisObjectReply(buf []byte, offset int) (TaggedObjectID, error) {
	d := newDecoder(buf, offset, c.sizes)
	v := d.taggedObjectID()
	return v, d.Err()
}

func (c *Codec) EncodeStackFramePopFrames(thread, frame ID) []byte {
	b := NewCommand(CmdSetStackFrame, CmdStackFramePopFrames)
	e := newEncoder(b, c.sizes)
	e.objectID(thread)
	e.frameID(frame)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeStackFramePopFramesReply(buf []byte, offset int) (Ack, error) {
	return decodeAck(buf[offset:])
}
