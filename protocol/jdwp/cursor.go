// Copyright 2024 CloudWeGo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jdwp

// decoder threads a read cursor through a reply/event body. Every
// command-set file decodes through one of these instead of hand-rolling
// offset arithmetic: the first error encountered is sticky, so a long
// chain of reads can be written straight-line and checked once at the
// end with Err(). This replaces the one-element-mutable-array
// workaround spec.md §9 calls out as something not to replicate.
type decoder struct {
	buf   []byte
	pos   int
	sizes IDSizes
	err   error
}

func newDecoder(buf []byte, pos int, sizes IDSizes) *decoder {
	return &decoder{buf: buf, pos: pos, sizes: sizes}
}

// Pos returns the current read position.
func (d *decoder) Pos() int { return d.pos }

// Err returns the first error encountered, if any.
func (d *decoder) Err() error { return d.err }

func (d *decoder) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *decoder) u8() byte {
	if d.err != nil {
		return 0
	}
	v, err := ReadU8(d.buf, d.pos)
	if err != nil {
		d.fail(err)
		return 0
	}
	d.pos++
	return v
}

func (d *decoder) boolean() bool {
	return d.u8() != 0
}

func (d *decoder) i32() int32 {
	if d.err != nil {
		return 0
	}
	v, err := ReadI32(d.buf, d.pos)
	if err != nil {
		d.fail(err)
		return 0
	}
	d.pos += 4
	return v
}

func (d *decoder) i64() int64 {
	if d.err != nil {
		return 0
	}
	v, err := ReadI64(d.buf, d.pos)
	if err != nil {
		d.fail(err)
		return 0
	}
	d.pos += 8
	return v
}

func (d *decoder) f32() float32 {
	if d.err != nil {
		return 0
	}
	v, err := ReadF32(d.buf, d.pos)
	if err != nil {
		d.fail(err)
		return 0
	}
	d.pos += 4
	return v
}

func (d *decoder) f64() float64 {
	if d.err != nil {
		return 0
	}
	v, err := ReadF64(d.buf, d.pos)
	if err != nil {
		d.fail(err)
		return 0
	}
	d.pos += 8
	return v
}

func (d *decoder) str() string {
	if d.err != nil {
		return ""
	}
	s, newPos, err := ReadString(d.buf, d.pos)
	if err != nil {
		d.fail(err)
		return ""
	}
	d.pos = newPos
	return s
}

func (d *decoder) id(kind IDKind) ID {
	if d.err != nil {
		return 0
	}
	v, err := d.sizes.ReadID(kind, d.buf, d.pos)
	if err != nil {
		d.fail(err)
		return 0
	}
	d.pos += d.sizes.sizeOf(kind)
	return v
}

func (d *decoder) objectID() ID      { return d.id(IDKindObject) }
func (d *decoder) refTypeID() ID     { return d.id(IDKindReferenceType) }
func (d *decoder) methodID() ID      { return d.id(IDKindMethod) }
func (d *decoder) fieldID() ID       { return d.id(IDKindField) }
func (d *decoder) frameID() ID       { return d.id(IDKindFrame) }

func (d *decoder) location() Location {
	if d.err != nil {
		return Location{}
	}
	loc, newPos, err := d.sizes.ReadLocation(d.buf, d.pos)
	if err != nil {
		d.fail(err)
		return Location{}
	}
	d.pos = newPos
	return loc
}

func (d *decoder) taggedObjectID() TaggedObjectID {
	if d.err != nil {
		return TaggedObjectID{}
	}
	v, newPos, err := d.sizes.ReadTaggedObjectID(d.buf, d.pos)
	if err != nil {
		d.fail(err)
		return TaggedObjectID{}
	}
	d.pos = newPos
	return v
}

func (d *decoder) value() Value {
	if d.err != nil {
		return Value{}
	}
	v, newPos, err := ReadValue(d.buf, d.pos, d.sizes.ObjectIDSize)
	if err != nil {
		d.fail(err)
		return Value{}
	}
	d.pos = newPos
	return v
}

func (d *decoder) untaggedValue(tag Tag) UntaggedValue {
	if d.err != nil {
		return UntaggedValue{}
	}
	v, newPos, err := ReadUntaggedValue(d.buf, d.pos, tag, d.sizes.ObjectIDSize)
	if err != nil {
		d.fail(err)
		return UntaggedValue{}
	}
	d.pos = newPos
	return v
}

func (d *decoder) arrayRegion() ArrayRegion {
	if d.err != nil {
		return ArrayRegion{}
	}
	v, newPos, err := d.sizes.ReadArrayRegion(d.buf, d.pos)
	if err != nil {
		d.fail(err)
		return ArrayRegion{}
	}
	d.pos = newPos
	return v
}

// encoder is the write-side counterpart of decoder. Encoding a
// well-typed Go value never fails, so encoder methods have no error
// return; they simply append to buf.
type encoder struct {
	buf   *Buffer
	sizes IDSizes
}

func newEncoder(buf *Buffer, sizes IDSizes) *encoder {
	return &encoder{buf: buf, sizes: sizes}
}

func (e *encoder) u8(v byte) { e.buf.AppendByte(v) }

func (e *encoder) boolean(v bool) {
	if v {
		e.buf.AppendByte(1)
	} else {
		e.buf.AppendByte(0)
	}
}

func (e *encoder) i32(v int32) { e.buf.Append(AppendI32(nil, v)) }
func (e *encoder) i64(v int64) { e.buf.Append(AppendI64(nil, v)) }
func (e *encoder) f32(v float32) { e.buf.Append(AppendF32(nil, v)) }
func (e *encoder) f64(v float64) { e.buf.Append(AppendF64(nil, v)) }
func (e *encoder) str(v string)  { e.buf.Append(AppendString(nil, v)) }

func (e *encoder) id(kind IDKind, v ID) {
	e.buf.Append(e.sizes.AppendID(kind, nil, v))
}

func (e *encoder) objectID(v ID)  { e.id(IDKindObject, v) }
func (e *encoder) refTypeID(v ID) { e.id(IDKindReferenceType, v) }
func (e *encoder) methodID(v ID)  { e.id(IDKindMethod, v) }
func (e *encoder) fieldID(v ID)   { e.id(IDKindField, v) }
func (e *encoder) frameID(v ID)   { e.id(IDKindFrame, v) }

func (e *encoder) location(loc Location) {
	e.buf.Append(e.sizes.AppendLocation(nil, loc))
}

func (e *encoder) taggedObjectID(v TaggedObjectID) {
	e.buf.Append(e.sizes.AppendTaggedObjectID(nil, v))
}

func (e *encoder) value(v Value) {
	e.buf.Append(AppendValue(nil, v))
}

func (e *encoder) untaggedValue(v UntaggedValue) {
	e.buf.Append(AppendUntaggedValue(nil, v))
}

func (e *encoder) arrayRegion(v ArrayRegion) {
	e.buf.Append(e.sizes.AppendArrayRegion(nil, v))
}
