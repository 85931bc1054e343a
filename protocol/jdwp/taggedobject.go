package jdwp

// TaggedObjectID is a tag byte followed by an object ID; used wherever
// JDWP needs to tell the caller the runtime type of an object ID
// (e.g. the thrown exception in an Exception event).
type TaggedObjectID struct {
	Tag Tag
	ID  ID
}

// ReadTaggedObjectID decodes a TaggedObjectID at off.
func (s IDSizes) ReadTaggedObjectID(buf []byte, off int) (TaggedObjectID, int, error) {
	tagByte, err := ReadU8(buf, off)
	if err != nil {
		return TaggedObjectID{}, off, err
	}
	off++
	id, err := s.ReadObjectID(buf, off)
	if err != nil {
		return TaggedObjectID{}, off, err
	}
	off += s.ObjectIDSize
	return TaggedObjectID{Tag: Tag(tagByte), ID: id}, off, nil
}

// AppendTaggedObjectID appends a TaggedObjectID.
func (s IDSizes) AppendTaggedObjectID(buf []byte, v TaggedObjectID) []byte {
	buf = AppendU8(buf, byte(v.Tag))
	return s.AppendObjectID(buf, v.ID)
}

// TaggedObjectIDSize returns the on-wire size of a TaggedObjectID given s.
func (s IDSizes) TaggedObjectIDSize() int {
	return 1 + s.ObjectIDSize
}
