package jdwp

// ThreadGroupReference is command set 12.
const CmdSetThreadGroupReference = 12

const (
	CmdThreadGroupRefName     = 1
	CmdThreadGroupRefParent   = 2
	CmdThreadGroupRefChildren = 3
)

func (c *Codec) EncodeThreadGroupRefName(group ID) []byte {
	b := NewCommand(CmdSetThreadGroupReference, CmdThreadGroupRefName)
	newEncoder(b, c.sizes).objectID(group)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeThreadGroupRefNameReply(buf []byte, offset int) (string, error) {
	d := newDecoder(buf, offset, c.sizes)
	s := d.str()
	return s, d.Err()
}

func (c *Codec) EncodeThreadGroupRefParent(group ID) []byte {
	b := NewCommand(CmdSetThreadGroupReference, CmdThreadGroupRefParent)
	newEncoder(b, c.sizes).objectID(group)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeThreadGroupRefParentReply(buf []byte, offset int) (ID, error) {
	d := newDecoder(buf, offset, c.sizes)
	id := d.objectID()
	return id, d.Err()
}

// ThreadGroupChildrenReply is ThreadGroupReference.Children's reply.
type ThreadGroupChildrenReply struct {
	ChildThreads      []ID
	ChildThreadGroups []ID
}

func (c *Codec) EncodeThreadGroupRefChildren(group ID) []byte {
	b := NewCommand(CmdSetThreadGroupReference, CmdThreadGroupRefChildren)
	newEncoder(b, c.sizes).objectID(group)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeThreadGroupRefChildrenReply(buf []byte, offset int) (ThreadGroupChildrenReply, error) {
	d := newDecoder(buf, offset, c.sizes)
	var r ThreadGroupChildrenReply
	nThreads := d.i32()
	r.ChildThreads = make([]ID, 0, nThreads)
	for i := int32(0); i < nThreads; i++ {
		r.ChildThreads = append(r.ChildThreads, d.objectID())
	}
	nGroups := d.i32()
	r.ChildThreadGroups = make([]ID, 0, nGroups)
	for i := int32(0); i < nGroups; i++ {
		r.ChildThreadGroups = append(r.ChildThreadGroups, d.objectID())
	}
	return r, d.Err()
}
