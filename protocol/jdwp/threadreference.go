package jdwp

// ThreadReference is command set 11.
const CmdSetThreadReference = 11

const (
	CmdThreadRefName                    = 1
	CmdThreadRefSuspend                 = 2
	CmdThreadRefResume                  = 3
	CmdThreadRefStatus                  = 4
	CmdThreadRefThreadGroup             = 5
	CmdThreadRefFrames                  = 6
	CmdThreadRefFrameCount               = 7
	CmdThreadRefOwnedMonitors            = 8
	CmdThreadRefCurrentContendedMonitor  = 9
	CmdThreadRefStop                    = 10
	CmdThreadRefInterrupt               = 11
	CmdThreadRefSuspendCount            = 12
)

func (c *Codec) EncodeThreadRefName(thread ID) []byte {
	b := NewCommand(CmdSetThreadReference, CmdThreadRefName)
	newEncoder(b, c.sizes).objectID(thread)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeThreadRefNameReply(buf []byte, offset int) (string, error) {
	d := newDecoder(buf, offset, c.sizes)
	s := d.str()
	return s, d.Err()
}

func (c *Codec) EncodeThreadRefSuspend(thread ID) []byte {
	b := NewCommand(CmdSetThreadReference, CmdThreadRefSuspend)
	newEncoder(b, c.sizes).objectID(thread)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeThreadRefSuspendReply(buf []byte, offset int) (Ack, error) {
	return decodeAck(buf[offset:])
}

func (c *Codec) EncodeThreadRefResume(thread ID) []byte {
	b := NewCommand(CmdSetThreadReference, CmdThreadRefResume)
	newEncoder(b, c.sizes).objectID(thread)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeThreadRefResumeReply(buf []byte, offset int) (Ack, error) {
	return decodeAck(buf[offset:])
}

// ThreadStatusReply is ThreadReference.Status's reply.
type ThreadStatusReply struct {
	ThreadStatus  int32
	SuspendStatus int32
}

func (c *Codec) EncodeThreadRefStatus(thread ID) []byte {
	b := NewCommand(CmdSetThreadReference, CmdThreadRefStatus)
	newEncoder(b, c.sizes).objectID(thread)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeThreadRefStatusReply(buf []byte, offset int) (ThreadStatusReply, error) {
	d := newDecoder(buf, offset, c.sizes)
	r := ThreadStatusReply{ThreadStatus: d.i32(), SuspendStatus: d.i32()}
	return r, d.Err()
}

func (c *Codec) EncodeThreadRefThreadGroup(thread ID) []byte {
	b := NewCommand(CmdSetThreadReference, CmdThreadRefThreadGroup)
	newEncoder(b, c.sizes).objectID(thread)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeThreadRefThreadGroupReply(buf []byte, offset int) (ID, error) {
	d := newDecoder(buf, offset, c.sizes)
	id := d.objectID()
	return id, d.Err()
}

func (c *Codec) EncodeThreadRefFrames(thread ID, startFrame, length int32) []byte {
	b := NewCommand(CmdSetThreadReference, CmdThreadRefFrames)
	e := newEncoder(b, c.sizes)
	e.objectID(thread)
	e.i32(startFrame)
	e.i32(length)
	FinalizeLength(b)
	return b.Bytes()
}

// FrameInfo is one entry of ThreadReference.Frames' reply.
type FrameInfo struct {
	FrameID  ID
	Location Location
}

func (c *Codec) DecodeThreadRefFramesReply(buf []byte, offset int) ([]FrameInfo, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	out := make([]FrameInfo, 0, n)
	for i := int32(0); i < n; i++ {
		out = append(out, FrameInfo{FrameID: d.frameID(), Location: d.location()})
	}
	return out, d.Err()
}

func (c *Codec) EncodeThreadRefFrameCount(thread ID) []byte {
	b := NewCommand(CmdSetThreadReference, CmdThreadRefFrameCount)
	newEncoder(b, c.sizes).objectID(thread)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeThreadRefFrameCountReply(buf []byte, offset int) (int32, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	return n, d.Err()
}

func (c *Codec) EncodeThreadRefOwnedMonitors(thread ID) []byte {
	b := NewCommand(CmdSetThreadReference, CmdThreadRefOwnedMonitors)
	newEncoder(b, c.sizes).objectID(thread)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeThreadRefOwnedMonitorsReply(buf []byte, offset int) ([]TaggedObjectID, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	out := make([]TaggedObjectID, 0, n)
	for i := int32(0); i < n; i++ {
		out = append(out, d.taggedObjectID())
	}
	return out, d.Err()
}

func (c *Codec) EncodeThreadRefCurrentContendedMonitor(thread ID) []byte {
	b := NewCommand(CmdSetThreadReference, CmdThreadRefCurrentContendedMonitor)
	newEncoder(b, c.sizes).objectID(thread)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeThreadRefCurrentContendedMonitorReply(buf []byte, offset int) (TaggedObjectID, error) {
	d := newDecoder(buf, offset, c.sizes)
	v := d.taggedObjectID()
	return v, d.Err()
}

func (c *Codec) EncodeThreadRefStop(thread, throwable ID) []byte {
	b := NewCommand(CmdSetThreadReference, CmdThreadRefStop)
	e := newEncoder(b, c.sizes)
	e.objectID(thread)
	e.objectID(throwable)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeThreadRefStopReply(buf []byte, offset int) (Ack, error) {
	return decodeAck(buf[offset:])
}

func (c *Codec) EncodeThreadRefInterrupt(thread ID) []byte {
	b := NewCommand(CmdSetThreadReference, CmdThreadRefInterrupt)
	newEncoder(b, c.sizes).objectID(thread)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeThreadRefInterruptReply(buf []byte, offset int) (Ack, error) {
	return decodeAck(buf[offset:])
}

func (c *Codec) EncodeThreadRefSuspendCount(thread ID) []byte {
	b := NewCommand(CmdSetThreadReference, CmdThreadRefSuspendCount)
	newEncoder(b, c.sizes).objectID(thread)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeThreadRefSuspendCountReply(buf []byte, offset int) (int32, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	return n, d.Err()
}
