package jdwp

// Method is command set 6.
const CmdSetMethod = 6

const (
	CmdMethodLineTable               = 1
	CmdMethodVariableTable           = 2
	CmdMethodBytecodes               = 3
	CmdMethodIsObsolete              = 4
	CmdMethodVariableTableWithGeneric = 5
)

// LineTableReply is Method.LineTable's reply.
type LineTableReply struct {
	Start int64
	End   int64
	Lines []LineInfo
}

// LineInfo is one entry of a LineTable reply.
type LineInfo struct {
	LineCodeIndex int64
	LineNumber    int32
}

func (c *Codec) EncodeMethodLineTable(refType, method ID) []byte {
	b := NewCommand(CmdSetMethod, CmdMethodLineTable)
	e := newEncoder(b, c.sizes)
	e.refTypeID(refType)
	e.methodID(method)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeMethodLineTableReply(buf []byte, offset int) (LineTableReply, error) {
	d := newDecoder(buf, offset, c.sizes)
	r := LineTableReply{Start: d.i64(), End: d.i64()}
	n := d.i32()
	r.Lines = make([]LineInfo, 0, n)
	for i := int32(0); i < n; i++ {
		r.Lines = append(r.Lines, LineInfo{LineCodeIndex: d.i64(), LineNumber: d.i32()})
	}
	return r, d.Err()
}

// VariableInfo is one entry of a VariableTable(WithGeneric) reply.
type VariableInfo struct {
	CodeIndex        int64
	Name             string
	Signature        string
	GenericSignature string
	Length           int32
	Slot             int32
}

// VariableTableReply is Method.VariableTable's reply.
type VariableTableReply struct {
	ArgCount  int32
	Variables []VariableInfo
}

func (c *Codec) EncodeMethodVariableTable(refType, method ID) []byte {
	b := NewCommand(CmdSetMethod, CmdMethodVariableTable)
	e := newEncoder(b, c.sizes)
	e.refTypeID(refType)
	e.methodID(method)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeMethodVariableTableReply(buf []byte, offset int) (VariableTableReply, error) {
	d := newDecoder(buf, offset, c.sizes)
	r := VariableTableReply{ArgCount: d.i32()}
	n := d.i32()
	r.Variables = make([]VariableInfo, 0, n)
	for i := int32(0); i < n; i++ {
		r.Variables = append(r.Variables, VariableInfo{
			CodeIndex: d.i64(),
			Name:      d.str(),
			Signature: d.str(),
			Length:    d.i32(),
			Slot:      d.i32(),
		})
	}
	return r, d.Err()
}

func (c *Codec) EncodeMethodVariableTableWithGeneric(refType, method ID) []byte {
	b := NewCommand(CmdSetMethod, CmdMethodVariableTableWithGeneric)
	e := newEncoder(b, c.sizes)
	e.refTypeID(refType)
	e.methodID(method)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeMethodVariableTableWithGenericReply(buf []byte, offset int) (VariableTableReply, error) {
	d := newDecoder(buf, offset, c.sizes)
	r := VariableTableReply{ArgCount: d.i32()}
	n := d.i32()
	r.Variables = make([]VariableInfo, 0, n)
	for i := int32(0); i < n; i++ {
		r.Variables = append(r.Variables, VariableInfo{
			CodeIndex:        d.i64(),
			Name:             d.str(),
			Signature:        d.str(),
			GenericSignature: d.str(),
			Length:           d.i32(),
			Slot:             d.i32(),
		})
	}
	return r, d.Err()
}

func (c *Codec) EncodeMethodBytecodes(refType, method ID) []byte {
	b := NewCommand(CmdSetMethod, CmdMethodBytecodes)
	e := newEncoder(b, c.sizes)
	e.refTypeID(refType)
	e.methodID(method)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeMethodBytecodesReply(buf []byte, offset int) ([]byte, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	if d.Err() != nil {
		return nil, d.Err()
	}
	if err := checkBounds(d.buf, d.pos, int(n)); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, d.buf[d.pos:d.pos+int(n)])
	return out, nil
}

func (c *Codec) EncodeMethodIsObsolete(refType, method ID) []byte {
	b := NewCommand(CmdSetMethod, CmdMethodIsObsolete)
	e := newEncoder(b, c.sizes)
	e.refTypeID(refType)
	e.methodID(method)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeMethodIsObsoleteReply(buf []byte, offset int) (bool, error) {
	d := newDecoder(buf, offset, c.sizes)
	v := d.boolean()
	return v, d.Err()
}
