package jdwp

// ReferenceType is command set 2.
const CmdSetReferenceType = 2

const (
	CmdRefTypeSignature             = 1
	CmdRefTypeClassLoader           = 2
	CmdRefTypeModifiers             = 3
	CmdRefTypeFields                = 4
	CmdRefTypeMethods                = 5
	CmdRefTypeGetValues              = 6
	CmdRefTypeSourceFile            = 7
	CmdRefTypeNestedTypes           = 8
	CmdRefTypeStatus                = 9
	CmdRefTypeInterfaces            = 10
	CmdRefTypeClassObject           = 11
	CmdRefTypeSourceDebugExtension  = 12
	CmdRefTypeSignatureWithGeneric  = 13
	CmdRefTypeFieldsWithGeneric     = 14
	CmdRefTypeMethodsWithGeneric    = 15
	CmdRefTypeInstances             = 16
	CmdRefTypeClassFileVersion      = 17
	CmdRefTypeConstantPool          = 18
)

func (c *Codec) EncodeRefTypeSignature(refType ID) []byte {
	b := NewCommand(CmdSetReferenceType, CmdRefTypeSignature)
	newEncoder(b, c.sizes).refTypeID(refType)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeRefTypeSignatureReply(buf []byte, offset int) (string, error) {
	d := newDecoder(buf, offset, c.sizes)
	s := d.str()
	return s, d.Err()
}

func (c *Codec) EncodeRefTypeSignatureWithGeneric(refType ID) []byte {
	b := NewCommand(CmdSetReferenceType, CmdRefTypeSignatureWithGeneric)
	newEncoder(b, c.sizes).refTypeID(refType)
	FinalizeLength(b)
	return b.Bytes()
}

// SignatureWithGenericReply is ReferenceType.SignatureWithGeneric's
// reply: the JNI signature plus the generic signature (empty if none).
type SignatureWithGenericReply struct {
	Signature        string
	GenericSignature string
}

func (c *Codec) DecodeRefTypeSignatureWithGenericReply(buf []byte, offset int) (SignatureWithGenericReply, error) {
	d := newDecoder(buf, offset, c.sizes)
	r := SignatureWithGenericReply{Signature: d.str(), GenericSignature: d.str()}
	return r, d.Err()
}

func (c *Codec) EncodeRefTypeClassLoader(refType ID) []byte {
	b := NewCommand(CmdSetReferenceType, CmdRefTypeClassLoader)
	newEncoder(b, c.sizes).refTypeID(refType)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeRefTypeClassLoaderReply(buf []byte, offset int) (ID, error) {
	d := newDecoder(buf, offset, c.sizes)
	id := d.objectID()
	return id, d.Err()
}

func (c *Codec) EncodeRefTypeModifiers(refType ID) []byte {
	b := NewCommand(CmdSetReferenceType, CmdRefTypeModifiers)
	newEncoder(b, c.sizes).refTypeID(refType)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeRefTypeModifiersReply(buf []byte, offset int) (int32, error) {
	d := newDecoder(buf, offset, c.sizes)
	m := d.i32()
	return m, d.Err()
}

// FieldInfo describes one field of a reference type, as returned by
// both Fields and FieldsWithGeneric (GenericSignature stays empty for
// the former).
type FieldInfo struct {
	FieldID          ID
	Name             string
	Signature        string
	GenericSignature string
	ModBits          int32
}

func (c *Codec) EncodeRefTypeFields(refType ID) []byte {
	b := NewCommand(CmdSetReferenceType, CmdRefTypeFields)
	newEncoder(b, c.sizes).refTypeID(refType)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeRefTypeFieldsReply(buf []byte, offset int) ([]FieldInfo, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	out := make([]FieldInfo, 0, n)
	for i := int32(0); i < n; i++ {
		out = append(out, FieldInfo{
			FieldID:   d.fieldID(),
			Name:      d.str(),
			Signature: d.str(),
			ModBits:   d.i32(),
		})
	}
	return out, d.Err()
}

func (c *Codec) EncodeRefTypeFieldsWithGeneric(refType ID) []byte {
	b := NewCommand(CmdSetReferenceType, CmdRefTypeFieldsWithGeneric)
	newEncoder(b, c.sizes).refTypeID(refType)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeRefTypeFieldsWithGenericReply(buf []byte, offset int) ([]FieldInfo, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	out := make([]FieldInfo, 0, n)
	for i := int32(0); i < n; i++ {
		out = append(out, FieldInfo{
			FieldID:          d.fieldID(),
			Name:             d.str(),
			Signature:        d.str(),
			GenericSignature: d.str(),
			ModBits:          d.i32(),
		})
	}
	return out, d.Err()
}

// MethodInfo describes one method of a reference type, as returned by
// both Methods and MethodsWithGeneric.
type MethodInfo struct {
	MethodID         ID
	Name             string
	Signature        string
	GenericSignature string
	ModBits          int32
}

func (c *Codec) EncodeRefTypeMethods(refType ID) []byte {
	b := NewCommand(CmdSetReferenceType, CmdRefTypeMethods)
	newEncoder(b, c.sizes).refTypeID(refType)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeRefTypeMethodsReply(buf []byte, offset int) ([]MethodInfo, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	out := make([]MethodInfo, 0, n)
	for i := int32(0); i < n; i++ {
		out = append(out, MethodInfo{
			MethodID:  d.methodID(),
			Name:      d.str(),
			Signature: d.str(),
			ModBits:   d.i32(),
		})
	}
	return out, d.Err()
}

func (c *Codec) EncodeRefTypeMethodsWithGeneric(refType ID) []byte {
	b := NewCommand(CmdSetReferenceType, CmdRefTypeMethodsWithGeneric)
	newEncoder(b, c.sizes).refTypeID(refType)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeRefTypeMethodsWithGenericReply(buf []byte, offset int) ([]MethodInfo, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	out := make([]MethodInfo, 0, n)
	for i := int32(0); i < n; i++ {
		out = append(out, MethodInfo{
			MethodID:         d.methodID(),
			Name:             d.str(),
			Signature:        d.str(),
			GenericSignature: d.str(),
			ModBits:          d.i32(),
		})
	}
	return out, d.Err()
}

// FieldValueRequest identifies one field to read in a GetValues
// request (ReferenceType.GetValues reads static fields).
type FieldValueRequest struct {
	RefType ID
	FieldID ID
}

func (c *Codec) EncodeRefTypeGetValues(refType ID, fieldIDs []ID) []byte {
	b := NewCommand(CmdSetReferenceType, CmdRefTypeGetValues)
	e := newEncoder(b, c.sizes)
	e.refTypeID(refType)
	e.i32(int32(len(fieldIDs)))
	for _, f := range fieldIDs {
		e.fieldID(f)
	}
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeRefTypeGetValuesReply(buf []byte, offset int) ([]Value, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	out := make([]Value, 0, n)
	for i := int32(0); i < n; i++ {
		out = append(out, d.value())
	}
	return out, d.Err()
}

func (c *Codec) EncodeRefTypeSourceFile(refType ID) []byte {
	b := NewCommand(CmdSetReferenceType, CmdRefTypeSourceFile)
	newEncoder(b, c.sizes).refTypeID(refType)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeRefTypeSourceFileReply(buf []byte, offset int) (string, error) {
	d := newDecoder(buf, offset, c.sizes)
	s := d.str()
	return s, d.Err()
}

// NestedType is one entry of ReferenceType.NestedTypes' reply.
type NestedType struct {
	RefTypeTag TypeTag
	TypeID     ID
}

func (c *Codec) EncodeRefTypeNestedTypes(refType ID) []byte {
	b := NewCommand(CmdSetReferenceType, CmdRefTypeNestedTypes)
	newEncoder(b, c.sizes).refTypeID(refType)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeRefTypeNestedTypesReply(buf []byte, offset int) ([]NestedType, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	out := make([]NestedType, 0, n)
	for i := int32(0); i < n; i++ {
		out = append(out, NestedType{RefTypeTag: TypeTag(d.u8()), TypeID: d.refTypeID()})
	}
	return out, d.Err()
}

func (c *Codec) EncodeRefTypeStatus(refType ID) []byte {
	b := NewCommand(CmdSetReferenceType, CmdRefTypeStatus)
	newEncoder(b, c.sizes).refTypeID(refType)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeRefTypeStatusReply(buf []byte, offset int) (int32, error) {
	d := newDecoder(buf, offset, c.sizes)
	s := d.i32()
	return s, d.Err()
}

func (c *Codec) EncodeRefTypeInterfaces(refType ID) []byte {
	b := NewCommand(CmdSetReferenceType, CmdRefTypeInterfaces)
	newEncoder(b, c.sizes).refTypeID(refType)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeRefTypeInterfacesReply(buf []byte, offset int) ([]ID, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	out := make([]ID, 0, n)
	for i := int32(0); i < n; i++ {
		out = append(out, d.refTypeID())
	}
	return out, d.Err()
}

func (c *Codec) EncodeRefTypeClassObject(refType ID) []byte {
	b := NewCommand(CmdSetReferenceType, CmdRefTypeClassObject)
	newEncoder(b, c.sizes).refTypeID(refType)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeRefTypeClassObjectReply(buf []byte, offset int) (ID, error) {
	d := newDecoder(buf, offset, c.sizes)
	id := d.objectID()
	return id, d.Err()
}

func (c *Codec) EncodeRefTypeSourceDebugExtension(refType ID) []byte {
	b := NewCommand(CmdSetReferenceType, CmdRefTypeSourceDebugExtension)
	newEncoder(b, c.sizes).refTypeID(refType)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeRefTypeSourceDebugExtensionReply(buf []byte, offset int) (string, error) {
	d := newDecoder(buf, offset, c.sizes)
	s := d.str()
	return s, d.Err()
}

func (c *Codec) EncodeRefTypeInstances(refType ID, maxInstances int32) []byte {
	b := NewCommand(CmdSetReferenceType, CmdRefTypeInstances)
	e := newEncoder(b, c.sizes)
	e.refTypeID(refType)
	e.i32(maxInstances)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeRefTypeInstancesReply(buf []byte, offset int) ([]TaggedObjectID, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	out := make([]TaggedObjectID, 0, n)
	for i := int32(0); i < n; i++ {
		out = append(out, d.taggedObjectID())
	}
	return out, d.Err()
}

// ClassFileVersionReply is ReferenceType.ClassFileVersion's reply.
type ClassFileVersionReply struct {
	MajorVersion int32
	MinorVersion int32
}

func (c *Codec) EncodeRefTypeClassFileVersion(refType ID) []byte {
	b := NewCommand(CmdSetReferenceType, CmdRefTypeClassFileVersion)
	newEncoder(b, c.sizes).refTypeID(refType)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeRefTypeClassFileVersionReply(buf []byte, offset int) (ClassFileVersionReply, error) {
	d := newDecoder(buf, offset, c.sizes)
	r := ClassFileVersionReply{MajorVersion: d.i32(), MinorVersion: d.i32()}
	return r, d.Err()
}

func (c *Codec) EncodeRefTypeConstantPool(refType ID) []byte {
	b := NewCommand(CmdSetReferenceType, CmdRefTypeConstantPool)
	newEncoder(b, c.sizes).refTypeID(refType)
	FinalizeLength(b)
	return b.Bytes()
}

// ConstantPoolReply is ReferenceType.ConstantPool's reply: the pool's
// entry count and the raw constant-pool bytes themselves (their
// internal structure is out of scope for this codec, per spec.md §1).
type ConstantPoolReply struct {
	Count int32
	Bytes []byte
}

func (c *Codec) DecodeRefTypeConstantPoolReply(buf []byte, offset int) (ConstantPoolReply, error) {
	d := newDecoder(buf, offset, c.sizes)
	count := d.i32()
	n := d.i32()
	if d.Err() != nil {
		return ConstantPoolReply{}, d.Err()
	}
	if err := checkBounds(d.buf, d.pos, int(n)); err != nil {
		return ConstantPoolReply{}, err
	}
	raw := make([]byte, n)
	copy(raw, d.buf[d.pos:d.pos+int(n)])
	return ConstantPoolReply{Count: count, Bytes: raw}, nil
}
