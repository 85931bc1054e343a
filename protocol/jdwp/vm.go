package jdwp

// VirtualMachine is command set 1.
const CmdSetVirtualMachine = 1

const (
	CmdVMVersion                = 1
	CmdVMClassesBySignature     = 2
	CmdVMAllClasses             = 3
	CmdVMAllThreads             = 4
	CmdVMTopLevelThreadGroups   = 5
	CmdVMDispose                = 6
	CmdVMIDSizes                = 7
	CmdVMSuspend                = 8
	CmdVMResume                 = 9
	CmdVMExit                   = 10
	CmdVMCreateString           = 11
	CmdVMCapabilities           = 12
	CmdVMClassPaths             = 13
	CmdVMDisposeObjects         = 14
	CmdVMHoldEvents             = 15
	CmdVMReleaseEvents          = 16
	CmdVMCapabilitiesNew        = 17
	CmdVMRedefineClasses        = 18
	CmdVMSetDefaultStratum      = 19
	CmdVMAllClassesWithGeneric  = 20
	CmdVMInstanceCounts         = 21
)

// EncodeVMIDSizes builds the VirtualMachine.IDSizes request. This is
// the one command a caller may send before a Codec exists, since its
// own wire shape carries no identifiers.
func EncodeVMIDSizes() []byte {
	b := NewCommand(CmdSetVirtualMachine, CmdVMIDSizes)
	FinalizeLength(b)
	return b.Bytes()
}

// DecodeVMIDSizesReply decodes the IDSizes reply body at offset into
// the IDSizes the rest of a session's Codec should be built with.
func DecodeVMIDSizesReply(buf []byte, offset int) (IDSizes, error) {
	d := newDecoder(buf, offset, IDSizes{})
	sizes := IDSizes{
		FieldIDSize:         int(d.i32()),
		MethodIDSize:        int(d.i32()),
		ObjectIDSize:        int(d.i32()),
		ReferenceTypeIDSize: int(d.i32()),
		FrameIDSize:         int(d.i32()),
	}
	return sizes, d.Err()
}

// VMVersionReply is VirtualMachine.Version's reply shape.
type VMVersionReply struct {
	Description string
	JDWPMajor   int32
	JDWPMinor   int32
	VMVersion   string
	VMName      string
}

func (c *Codec) EncodeVMVersion() []byte {
	b := NewCommand(CmdSetVirtualMachine, CmdVMVersion)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeVMVersionReply(buf []byte, offset int) (VMVersionReply, error) {
	d := newDecoder(buf, offset, c.sizes)
	r := VMVersionReply{
		Description: d.str(),
		JDWPMajor:   d.i32(),
		JDWPMinor:   d.i32(),
		VMVersion:   d.str(),
		VMName:      d.str(),
	}
	return r, d.Err()
}

// RefTypeSignature pairs a loaded reference type with its JNI
// signature, the shape used by both ClassesBySignature and AllClasses.
type RefTypeSignature struct {
	RefTypeTag TypeTag
	TypeID     ID
	Signature  string // absent (empty) for ClassesBySignature
	Status     int32
}

func (c *Codec) EncodeVMClassesBySignature(signature string) []byte {
	b := NewCommand(CmdSetVirtualMachine, CmdVMClassesBySignature)
	e := newEncoder(b, c.sizes)
	e.str(signature)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeVMClassesBySignatureReply(buf []byte, offset int) ([]RefTypeSignature, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	out := make([]RefTypeSignature, 0, n)
	for i := int32(0); i < n; i++ {
		out = append(out, RefTypeSignature{
			RefTypeTag: TypeTag(d.u8()),
			TypeID:     d.refTypeID(),
			Status:     d.i32(),
		})
	}
	return out, d.Err()
}

func (c *Codec) EncodeVMAllClasses() []byte {
	b := NewCommand(CmdSetVirtualMachine, CmdVMAllClasses)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeVMAllClassesReply(buf []byte, offset int) ([]RefTypeSignature, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	out := make([]RefTypeSignature, 0, n)
	for i := int32(0); i < n; i++ {
		out = append(out, RefTypeSignature{
			RefTypeTag: TypeTag(d.u8()),
			TypeID:     d.refTypeID(),
			Signature:  d.str(),
			Status:     d.i32(),
		})
	}
	return out, d.Err()
}

// ClassWithGeneric adds the generic-signature string AllClassesWithGeneric
// carries alongside the plain signature.
type ClassWithGeneric struct {
	RefTypeTag       TypeTag
	TypeID           ID
	Signature        string
	GenericSignature string
	Status           int32
}

func (c *Codec) EncodeVMAllClassesWithGeneric() []byte {
	b := NewCommand(CmdSetVirtualMachine, CmdVMAllClassesWithGeneric)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeVMAllClassesWithGenericReply(buf []byte, offset int) ([]ClassWithGeneric, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	out := make([]ClassWithGeneric, 0, n)
	for i := int32(0); i < n; i++ {
		out = append(out, ClassWithGeneric{
			RefTypeTag:       TypeTag(d.u8()),
			TypeID:           d.refTypeID(),
			Signature:        d.str(),
			GenericSignature: d.str(),
			Status:           d.i32(),
		})
	}
	return out, d.Err()
}

func (c *Codec) EncodeVMAllThreads() []byte {
	b := NewCommand(CmdSetVirtualMachine, CmdVMAllThreads)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeVMAllThreadsReply(buf []byte, offset int) ([]ID, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	out := make([]ID, 0, n)
	for i := int32(0); i < n; i++ {
		out = append(out, d.objectID())
	}
	return out, d.Err()
}

func (c *Codec) EncodeVMTopLevelThreadGroups() []byte {
	b := NewCommand(CmdSetVirtualMachine, CmdVMTopLevelThreadGroups)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeVMTopLevelThreadGroupsReply(buf []byte, offset int) ([]ID, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	out := make([]ID, 0, n)
	for i := int32(0); i < n; i++ {
		out = append(out, d.objectID())
	}
	return out, d.Err()
}

func (c *Codec) EncodeVMDispose() []byte {
	b := NewCommand(CmdSetVirtualMachine, CmdVMDispose)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeVMDisposeReply(buf []byte, offset int) (Ack, error) {
	return decodeAck(buf[offset:])
}

func (c *Codec) EncodeVMSuspend() []byte {
	b := NewCommand(CmdSetVirtualMachine, CmdVMSuspend)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeVMSuspendReply(buf []byte, offset int) (Ack, error) {
	return decodeAck(buf[offset:])
}

func (c *Codec) EncodeVMResume() []byte {
	b := NewCommand(CmdSetVirtualMachine, CmdVMResume)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeVMResumeReply(buf []byte, offset int) (Ack, error) {
	return decodeAck(buf[offset:])
}

func (c *Codec) EncodeVMExit(exitCode int32) []byte {
	b := NewCommand(CmdSetVirtualMachine, CmdVMExit)
	e := newEncoder(b, c.sizes)
	e.i32(exitCode)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeVMExitReply(buf []byte, offset int) (Ack, error) {
	return decodeAck(buf[offset:])
}

func (c *Codec) EncodeVMCreateString(value string) []byte {
	b := NewCommand(CmdSetVirtualMachine, CmdVMCreateString)
	e := newEncoder(b, c.sizes)
	e.str(value)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeVMCreateStringReply(buf []byte, offset int) (ID, error) {
	d := newDecoder(buf, offset, c.sizes)
	id := d.objectID()
	return id, d.Err()
}

// VMCapabilitiesReply is VirtualMachine.Capabilities' reply: a fixed
// run of seven booleans.
type VMCapabilitiesReply struct {
	CanWatchFieldModification bool
	CanWatchFieldAccess       bool
	CanGetBytecodes           bool
	CanGetSyntheticAttribute  bool
	CanGetOwnedMonitorInfo    bool
	CanGetCurrentContendedMonitor bool
	CanGetMonitorInfo         bool
}

func (c *Codec) EncodeVMCapabilities() []byte {
	b := NewCommand(CmdSetVirtualMachine, CmdVMCapabilities)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeVMCapabilitiesReply(buf []byte, offset int) (VMCapabilitiesReply, error) {
	d := newDecoder(buf, offset, c.sizes)
	r := VMCapabilitiesReply{
		CanWatchFieldModification:     d.boolean(),
		CanWatchFieldAccess:           d.boolean(),
		CanGetBytecodes:               d.boolean(),
		CanGetSyntheticAttribute:      d.boolean(),
		CanGetOwnedMonitorInfo:        d.boolean(),
		CanGetCurrentContendedMonitor: d.boolean(),
		CanGetMonitorInfo:             d.boolean(),
	}
	return r, d.Err()
}

// VMCapabilitiesNewReply extends VMCapabilitiesReply with the
// additional booleans JDWP added in CapabilitiesNew.
type VMCapabilitiesNewReply struct {
	VMCapabilitiesReply
	CanRedefineClasses                  bool
	CanAddMethod                        bool
	CanUnrestrictedlyRedefineClasses     bool
	CanPopFrames                        bool
	CanUseInstanceFilters                bool
	CanGetSourceDebugExtension           bool
	CanRequestVMDeathEvent                bool
	CanSetDefaultStratum                bool
	CanGetInstanceInfo                  bool
	CanRequestMonitorEvents              bool
	CanGetMonitorFrameInfo               bool
	CanUseSourceNameFilters              bool
	CanGetConstantPool                  bool
	CanForceEarlyReturn                 bool
	Reserved22, Reserved23, Reserved24   bool
	Reserved25, Reserved26, Reserved27   bool
	Reserved28, Reserved29, Reserved30   bool
	Reserved31, Reserved32               bool
}

func (c *Codec) EncodeVMCapabilitiesNew() []byte {
	b := NewCommand(CmdSetVirtualMachine, CmdVMCapabilitiesNew)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeVMCapabilitiesNewReply(buf []byte, offset int) (VMCapabilitiesNewReply, error) {
	d := newDecoder(buf, offset, c.sizes)
	r := VMCapabilitiesNewReply{
		VMCapabilitiesReply: VMCapabilitiesReply{
			CanWatchFieldModification:     d.boolean(),
			CanWatchFieldAccess:           d.boolean(),
			CanGetBytecodes:               d.boolean(),
			CanGetSyntheticAttribute:      d.boolean(),
			CanGetOwnedMonitorInfo:        d.boolean(),
			CanGetCurrentContendedMonitor: d.boolean(),
			CanGetMonitorInfo:             d.boolean(),
		},
		CanRedefineClasses:               d.boolean(),
		CanAddMethod:                     d.boolean(),
		CanUnrestrictedlyRedefineClasses: d.boolean(),
		CanPopFrames:                     d.boolean(),
		CanUseInstanceFilters:            d.boolean(),
		CanGetSourceDebugExtension:       d.boolean(),
		CanRequestVMDeathEvent:           d.boolean(),
		CanSetDefaultStratum:             d.boolean(),
		CanGetInstanceInfo:               d.boolean(),
		CanRequestMonitorEvents:          d.boolean(),
		CanGetMonitorFrameInfo:           d.boolean(),
		CanUseSourceNameFilters:          d.boolean(),
		CanGetConstantPool:               d.boolean(),
		CanForceEarlyReturn:              d.boolean(),
		Reserved22:                       d.boolean(),
		Reserved23:                       d.boolean(),
		Reserved24:                       d.boolean(),
		Reserved25:                       d.boolean(),
		Reserved26:                       d.boolean(),
		Reserved27:                       d.boolean(),
		Reserved28:                       d.boolean(),
		Reserved29:                       d.boolean(),
		Reserved30:                       d.boolean(),
		Reserved31:                       d.boolean(),
		Reserved32:                       d.boolean(),
	}
	return r, d.Err()
}

// VMClassPathsReply is VirtualMachine.ClassPaths' reply. Flattened per
// the resolved open question in spec.md §4.5/§9: baseDir, then the
// classpath array, then the bootclasspath array, as two sibling lists
// rather than bootclasspaths nested inside each classpath entry.
type VMClassPathsReply struct {
	BaseDir         string
	ClassPaths      []string
	BootClassPaths  []string
}

func (c *Codec) EncodeVMClassPaths() []byte {
	b := NewCommand(CmdSetVirtualMachine, CmdVMClassPaths)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeVMClassPathsReply(buf []byte, offset int) (VMClassPathsReply, error) {
	d := newDecoder(buf, offset, c.sizes)
	r := VMClassPathsReply{BaseDir: d.str()}
	nClass := d.i32()
	r.ClassPaths = make([]string, 0, nClass)
	for i := int32(0); i < nClass; i++ {
		r.ClassPaths = append(r.ClassPaths, d.str())
	}
	nBoot := d.i32()
	r.BootClassPaths = make([]string, 0, nBoot)
	for i := int32(0); i < nBoot; i++ {
		r.BootClassPaths = append(r.BootClassPaths, d.str())
	}
	return r, d.Err()
}

func (c *Codec) EncodeVMDisposeObjects(requests []ObjectIDRefCount) []byte {
	b := NewCommand(CmdSetVirtualMachine, CmdVMDisposeObjects)
	e := newEncoder(b, c.sizes)
	e.i32(int32(len(requests)))
	for _, r := range requests {
		e.objectID(r.ObjectID)
		e.i32(r.RefCount)
	}
	FinalizeLength(b)
	return b.Bytes()
}

// ObjectIDRefCount is one entry of VirtualMachine.DisposeObjects'
// request list: an object ID and the number of references to release.
type ObjectIDRefCount struct {
	ObjectID ID
	RefCount int32
}

func (c *Codec) DecodeVMDisposeObjectsReply(buf []byte, offset int) (Ack, error) {
	return decodeAck(buf[offset:])
}

func (c *Codec) EncodeVMHoldEvents() []byte {
	b := NewCommand(CmdSetVirtualMachine, CmdVMHoldEvents)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeVMHoldEventsReply(buf []byte, offset int) (Ack, error) {
	return decodeAck(buf[offset:])
}

func (c *Codec) EncodeVMReleaseEvents() []byte {
	b := NewCommand(CmdSetVirtualMachine, CmdVMReleaseEvents)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeVMReleaseEventsReply(buf []byte, offset int) (Ack, error) {
	return decodeAck(buf[offset:])
}

// ClassDef is one entry of VirtualMachine.RedefineClasses' request:
// a reference type plus its replacement class file bytes.
type ClassDef struct {
	RefType   ID
	ClassFile []byte
}

func (c *Codec) EncodeVMRedefineClasses(defs []ClassDef) []byte {
	b := NewCommand(CmdSetVirtualMachine, CmdVMRedefineClasses)
	e := newEncoder(b, c.sizes)
	e.i32(int32(len(defs)))
	for _, def := range defs {
		e.refTypeID(def.RefType)
		e.i32(int32(len(def.ClassFile)))
		b.Append(def.ClassFile)
	}
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeVMRedefineClassesReply(buf []byte, offset int) (Ack, error) {
	return decodeAck(buf[offset:])
}

func (c *Codec) EncodeVMSetDefaultStratum(stratumID string) []byte {
	b := NewCommand(CmdSetVirtualMachine, CmdVMSetDefaultStratum)
	e := newEncoder(b, c.sizes)
	e.str(stratumID)
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeVMSetDefaultStratumReply(buf []byte, offset int) (Ack, error) {
	return decodeAck(buf[offset:])
}

func (c *Codec) EncodeVMInstanceCounts(refTypes []ID) []byte {
	b := NewCommand(CmdSetVirtualMachine, CmdVMInstanceCounts)
	e := newEncoder(b, c.sizes)
	e.i32(int32(len(refTypes)))
	for _, rt := range refTypes {
		e.refTypeID(rt)
	}
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeVMInstanceCountsReply(buf []byte, offset int) ([]int64, error) {
	d := newDecoder(buf, offset, c.sizes)
	n := d.i32()
	out := make([]int64, 0, n)
	for i := int32(0); i < n; i++ {
		out = append(out, d.i64())
	}
	return out, d.Err()
}
