package jdwp

// ID is an opaque, unsigned, variable-width JDWP identifier. A value of
// 0 means "null". The target VM defines what the number means; an ID
// from one session must never be reused in another.
type ID uint64

// IsNull reports whether id is the null identifier.
func (id ID) IsNull() bool { return id == 0 }

// ReadID decodes an identifier of the given kind at off, using the
// width negotiated in s.
func (s IDSizes) ReadID(kind IDKind, buf []byte, off int) (ID, error) {
	v, err := ReadSized(buf, off, s.sizeOf(kind))
	return ID(v), err
}

// AppendID appends an identifier of the given kind, using the width
// negotiated in s.
func (s IDSizes) AppendID(kind IDKind, buf []byte, id ID) []byte {
	return AppendSized(buf, uint64(id), s.sizeOf(kind))
}

// Named accessors exist purely for call-site readability; they are thin
// wrappers over the parametric form, per spec.md's direction not to
// introduce distinct static types per identifier kind.

func (s IDSizes) ReadObjectID(buf []byte, off int) (ID, error) {
	return s.ReadID(IDKindObject, buf, off)
}

func (s IDSizes) AppendObjectID(buf []byte, id ID) []byte {
	return s.AppendID(IDKindObject, buf, id)
}

func (s IDSizes) ReadReferenceTypeID(buf []byte, off int) (ID, error) {
	return s.ReadID(IDKindReferenceType, buf, off)
}

func (s IDSizes) AppendReferenceTypeID(buf []byte, id ID) []byte {
	return s.AppendID(IDKindReferenceType, buf, id)
}

func (s IDSizes) ReadMethodID(buf []byte, off int) (ID, error) {
	return s.ReadID(IDKindMethod, buf, off)
}

func (s IDSizes) AppendMethodID(buf []byte, id ID) []byte {
	return s.AppendID(IDKindMethod, buf, id)
}

func (s IDSizes) ReadFieldID(buf []byte, off int) (ID, error) {
	return s.ReadID(IDKindField, buf, off)
}

func (s IDSizes) AppendFieldID(buf []byte, id ID) []byte {
	return s.AppendID(IDKindField, buf, id)
}

func (s IDSizes) ReadFrameID(buf []byte, off int) (ID, error) {
	return s.ReadID(IDKindFrame, buf, off)
}

func (s IDSizes) AppendFrameID(buf []byte, id ID) []byte {
	return s.AppendID(IDKindFrame, buf, id)
}
