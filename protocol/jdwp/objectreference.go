package jdwp

// ObjectReference is command set 9: the JDWP specification's own
// number for it, despite an 8 appearing in some third-party notes —
// see spec.md §4.7/§9.
const CmdSetObjectReference = 9

const (
	CmdObjRefReferenceType      = 1
	CmdObjRefGetValues          = 2
	CmdObjRefSetValues          = 3
	CmdObjRefMonitorInfo        = 5
	CmdObjRefInvokeMethod       = 6
	CmdObjRefDisableCollection  = 7
	CmdObjRefEnableCollection   = 8
	CmdObjRefIsCollected        = 9
	CmdObjRefReferringObjects   = 10
)

func (c *Codec) EncodeObjRefReferenceType(object ID) []byte {
	b := NewCommand(CmdSetObjectReference, CmdObjRefReferenceType)
	newEncoder(b, c.sizes).objectID(object)
	FinalizeLength(b)
	return b.Bytes()
}

// ObjRefTypeReply is ObjectReference.ReferenceType's reply.
type ObjRefTypeReply struct {
	RefTypeTag TypeTag
	TypeID     ID
}

func (c *Codec) DecodeObjRefReferenceTypeReply(buf []byte, offset int) (ObjRefTypeReply, error) {
	d := newDecoder(buf, offset, c.sizes)
	r := ObjRefTypeReply{RefTypeTag: TypeTag(d.u8()), TypeID: d.refTypeID()}
	return r, d.Err()
}

func (c *Codec) EncodeObjRefGetValues(object ID, fieldIDs []ID) []byte {
	b := NewCommand(CmdSetObjectReference, CmdObjRefGetValues)
	e := newEncoder(b, c.sizes)
	e.objectID(object)
	e.i32(int32(len(fieldIDs)))
	for _, f := range fieldIDs {
		e.fieldID(f)
	}
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeObjRefGetValuesReply(buf []byte, offset int) ([]Value, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	out := make([]Value, 0, n)
	for i := int32(0); i < n; i++ {
		out = append(out, d.value())
	}
	return out, d.Err()
}

func (c *Codec) EncodeObjRefSetValues(object ID, values []FieldValue) []byte {
	b := NewCommand(CmdSetObjectReference, CmdObjRefSetValues)
	e := newEncoder(b, c.sizes)
	e.objectID(object)
	e.i32(int32(len(values)))
	for _, fv := range values {
		e.fieldID(fv.FieldID)
		e.untaggedValue(fv.Value)
	}
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeObjRefSetValuesReply(buf []byte, offset int) (Ack, error) {
	return decodeAck(buf[offset:])
}

// MonitorInfoReply is ObjectReference.MonitorInfo's reply.
type MonitorInfoReply struct {
	Owner         ID
	EntryCount    int32
	WaitingThreads []ID
}

func (c *Codec) EncodeObjRefMonitorInfo(object ID) []byte {
	b := NewCommand(CmdSetObjectReference, CmdObjRefMonitorInfo)
	newEncoder(b, c.sizes).objectID(object)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeObjRefMonitorInfoReply(buf []byte, offset int) (MonitorInfoReply, error) {
	d := newDecoder(buf, offset, c.sizes)
	r := MonitorInfoReply{Owner: d.objectID(), EntryCount: d.i32()}
	n := d.i32()
	r.WaitingThreads = make([]ID, 0, n)
	for i := int32(0); i < n; i++ {
		r.WaitingThreads = append(r.WaitingThreads, d.objectID())
	}
	return r, d.Err()
}

// ObjectInvokeArgs is ObjectReference.InvokeMethod's request shape:
// object, thread, the declaring class to dispatch on, methodID,
// argument values, and invoke options.
type ObjectInvokeArgs struct {
	Object   ID
	Thread   ID
	Clazz    ID
	MethodID ID
	Args     []Value
	Options  int32
}

func (c *Codec) EncodeObjRefInvokeMethod(a ObjectInvokeArgs) []byte {
	b := NewCommand(CmdSetObjectReference, CmdObjRefInvokeMethod)
	e := newEncoder(b, c.sizes)
	e.objectID(a.Object)
	e.objectID(a.Thread)
	e.refTypeID(a.Clazz)
	e.methodID(a.MethodID)
	e.i32(int32(len(a.Args)))
	for _, v := range a.Args {
		e.value(v)
	}
	e.i32(a.Options)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeObjRefInvokeMethodReply(buf []byte, offset int) (InvokeMethodReply, error) {
	d := newDecoder(buf, offset, c.sizes)
	r := InvokeMethodReply{ReturnValue: d.value(), Exception: d.taggedObjectID()}
	return r, d.Err()
}

func (c *Codec) EncodeObjRefDisableCollection(object ID) []byte {
	b := NewCommand(CmdSetObjectReference, CmdObjRefDisableCollection)
	newEncoder(b, c.sizes).objectID(object)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeObjRefDisableCollectionReply(buf []byte, offset int) (Ack, error) {
	return decodeAck(buf[offset:])
}

func (c *Codec) EncodeObjRefEnableCollection(object ID) []byte {
	b := NewCommand(CmdSetObjectReference, CmdObjRefEnableCollection)
	newEncoder(b, c.sizes).objectID(object)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeObjRefEnableCollectionReply(buf []byte, offset int) (Ack, error) {
	return decodeAck(buf[offset:])
}

func (c *Codec) EncodeObjRefIsCollected(object ID) []byte {
	b := NewCommand(CmdSetObjectReference, CmdObjRefIsCollected)
	newEncoder(b, c.sizes).objectID(object)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeObjRefIsCollectedReply(buf []byte, offset int) (bool, error) {
	d := newDecoder(buf, offset, c.sizes)
	v := d.boolean()
	return v, d.Err()
}

func (c *Codec) EncodeObjRefReferringObjects(object ID, maxReferrers int32) []byte {
	b := NewCommand(CmdSetObjectReference, CmdObjRefReferringObjects)
	e := newEncoder(b, c.sizes)
	e.objectID(object)
	e.i32(maxReferrers)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeObjRefReferringObjectsReply(buf []byte, offset int) ([]TaggedObjectID, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	out := make([]TaggedObjectID, 0, n)
	for i := int32(0); i < n; i++ {
		out = append(out, d.taggedObjectID())
	}
	return out, d.Err()
}
