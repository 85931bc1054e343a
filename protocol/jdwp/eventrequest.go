package jdwp

// EventRequest is command set 15.
const CmdSetEventRequest = 15

const (
	CmdEventRequestSet                 = 1
	CmdEventRequestClear                = 2
	CmdEventRequestClearAllBreakpoints = 3
)

// EventRequestSetArgs is EventRequest.Set's request shape: the kind of
// event to arm, a suspend policy applied when it fires, and an ordered
// list of modifiers narrowing when it fires. A single-modifier request
// is just a one-element Modifiers slice.
type EventRequestSetArgs struct {
	EventKind     EventKind
	SuspendPolicy byte
	Modifiers     []EventModifier
}

func (c *Codec) EncodeEventRequestSet(a EventRequestSetArgs) []byte {
	b := NewCommand(CmdSetEventRequest, CmdEventRequestSet)
	e := newEncoder(b, c.sizes)
	e.u8(byte(a.EventKind))
	e.u8(a.SuspendPolicy)
	e.i32(int32(len(a.Modifiers)))
	for _, m := range a.Modifiers {
		e.eventModifier(m)
	}
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeEventRequestSetReply(buf []byte, offset int) (int32, error) {
	d := newDecoder(buf, offset, c.sizes)
	requestID := d.i32()
	return requestID, d.Err()
}

func (c *Codec) EncodeEventRequestClear(eventKind EventKind, requestID int32) []byte {
	b := NewCommand(CmdSetEventRequest, CmdEventRequestClear)
	e := newEncoder(b, c.sizes)
	e.u8(byte(eventKind))
	e.i32(requestID)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeEventRequestClearReply(buf []byte, offset int) (Ack, error) {
	return decodeAck(buf[offset:])
}

func (c *Codec) EncodeEventRequestClearAllBreakpoints() []byte {
	b := NewCommand(CmdSetEventRequest, CmdEventRequestClearAllBreakpoints)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeEventRequestClearAllBreakpointsReply(buf []byte, offset int) (Ack, error) {
	return decodeAck(buf[offset:])
}
