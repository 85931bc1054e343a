package jdwp

// ClassType is command set 3.
const CmdSetClassType = 3

const (
	CmdClassTypeSuperclass   = 1
	CmdClassTypeSetValues    = 2
	CmdClassTypeInvokeMethod = 3
	CmdClassTypeNewInstance  = 4
)

func (c *Codec) EncodeClassTypeSuperclass(clazz ID) []byte {
	b := NewCommand(CmdSetClassType, CmdClassTypeSuperclass)
	newEncoder(b, c.sizes).refTypeID(clazz)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeClassTypeSuperclassReply(buf []byte, offset int) (ID, error) {
	d := newDecoder(buf, offset, c.sizes)
	id := d.refTypeID()
	return id, d.Err()
}

// FieldValue pairs a field ID with the untagged value to store into
// it, as used by ClassType.SetValues and ObjectReference.SetValues
// (field width is carried out of band via the declaring type's field
// signature, which only the caller — not this codec — resolves).
type FieldValue struct {
	FieldID ID
	Value   UntaggedValue
}

func (c *Codec) EncodeClassTypeSetValues(clazz ID, values []FieldValue) []byte {
	b := NewCommand(CmdSetClassType, CmdClassTypeSetValues)
	e := newEncoder(b, c.sizes)
	e.refTypeID(clazz)
	e.i32(int32(len(values)))
	for _, fv := range values {
		e.fieldID(fv.FieldID)
		e.untaggedValue(fv.Value)
	}
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeClassTypeSetValuesReply(buf []byte, offset int) (Ack, error) {
	return decodeAck(buf[offset:])
}

// ClassInvokeArgs is ClassType.InvokeMethod's request shape: clazz,
// thread, methodID, argument values, and invoke options.
type ClassInvokeArgs struct {
	Clazz    ID
	Thread   ID
	MethodID ID
	Args     []Value
	Options  int32
}

func (c *Codec) EncodeClassTypeInvokeMethod(a ClassInvokeArgs) []byte {
	b := NewCommand(CmdSetClassType, CmdClassTypeInvokeMethod)
	e := newEncoder(b, c.sizes)
	e.refTypeID(a.Clazz)
	e.objectID(a.Thread)
	e.methodID(a.MethodID)
	e.i32(int32(len(a.Args)))
	for _, v := range a.Args {
		e.value(v)
	}
	e.i32(a.Options)
	FinalizeLength(b)
	return b.Bytes()
}

// InvokeMethodReply is the shared reply shape of ClassType.InvokeMethod
// and ObjectReference.InvokeMethod: the returned value plus an
// optionally thrown exception (null TaggedObjectID if none).
type InvokeMethodReply struct {
	ReturnValue Value
	Exception   TaggedObjectID
}

func (c *Codec) DecodeClassTypeInvokeMethodReply(buf []byte, offset int) (InvokeMethodReply, error) {
	d := newDecoder(buf, offset, c.sizes)
	r := InvokeMethodReply{ReturnValue: d.value(), Exception: d.taggedObjectID()}
	return r, d.Err()
}

func (c *Codec) EncodeClassTypeNewInstance(a ClassInvokeArgs) []byte {
	b := NewCommand(CmdSetClassType, CmdClassTypeNewInstance)
	e := newEncoder(b, c.sizes)
	e.refTypeID(a.Clazz)
	e.objectID(a.Thread)
	e.methodID(a.MethodID)
	e.i32(int32(len(a.Args)))
	for _, v := range a.Args {
		e.value(v)
	}
	e.i32(a.Options)
	FinalizeLength(b)
	return b.Bytes()
}

// NewInstanceReply is ClassType.NewInstance's reply: the freshly
// created, tagged object plus an optionally thrown exception.
type NewInstanceReply struct {
	NewObject TaggedObjectID
	Exception TaggedObjectID
}

func (c *Codec) DecodeClassTypeNewInstanceReply(buf []byte, offset int) (NewInstanceReply, error) {
	d := newDecoder(buf, offset, c.sizes)
	r := NewInstanceReply{NewObject: d.taggedObjectID(), Exception: d.taggedObjectID()}
	return r, d.Err()
}
