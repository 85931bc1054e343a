package jdwp

// TypeTag distinguishes the three possible declaring-type shapes of a
// Location's classID.
type TypeTag byte

const (
	TypeTagClass     TypeTag = 1
	TypeTagInterface TypeTag = 2
	TypeTagArray     TypeTag = 3
)

// Location identifies an executable position: a declaring type, a
// method within it, and an index into that method's bytecode.
type Location struct {
	TypeTag  TypeTag
	ClassID  ID
	MethodID ID
	Index    uint64
}

// ReadLocation decodes a Location at off:
// u8 typeTag || refTypeID classID || methodID methodID || u64 index.
func (s IDSizes) ReadLocation(buf []byte, off int) (Location, int, error) {
	tt, err := ReadU8(buf, off)
	if err != nil {
		return Location{}, off, err
	}
	off++
	classID, err := s.ReadReferenceTypeID(buf, off)
	if err != nil {
		return Location{}, off, err
	}
	off += s.ReferenceTypeIDSize
	methodID, err := s.ReadMethodID(buf, off)
	if err != nil {
		return Location{}, off, err
	}
	off += s.MethodIDSize
	index, err := ReadU64(buf, off)
	if err != nil {
		return Location{}, off, err
	}
	off += 8
	return Location{TypeTag: TypeTag(tt), ClassID: classID, MethodID: methodID, Index: index}, off, nil
}

// AppendLocation appends a Location.
func (s IDSizes) AppendLocation(buf []byte, loc Location) []byte {
	buf = AppendU8(buf, byte(loc.TypeTag))
	buf = s.AppendReferenceTypeID(buf, loc.ClassID)
	buf = s.AppendMethodID(buf, loc.MethodID)
	buf = AppendU64(buf, loc.Index)
	return buf
}

// LocationSize returns the on-wire size of a Location given s.
func (s IDSizes) LocationSize() int {
	return 1 + s.ReferenceTypeIDSize + s.MethodIDSize + 8
}
