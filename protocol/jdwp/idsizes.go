package jdwp

// IDSizes holds the five byte-widths negotiated once per session via
// VirtualMachine.IDSizes (command set 1, command 7). It is immutable
// once constructed and is the only piece of state that crosses packets.
type IDSizes struct {
	FieldIDSize         int
	MethodIDSize        int
	ObjectIDSize        int
	ReferenceTypeIDSize int
	FrameIDSize         int
}

// DefaultIDSizes returns the overwhelmingly common 8-byte-everywhere
// negotiation most HotSpot-derived VMs report. Callers should still
// negotiate for real: this exists for tests and quick tooling, not as a
// protocol default.
func DefaultIDSizes() IDSizes {
	return IDSizes{
		FieldIDSize:         8,
		MethodIDSize:        8,
		ObjectIDSize:        8,
		ReferenceTypeIDSize: 8,
		FrameIDSize:         8,
	}
}

// IDKind identifies which of the five negotiated widths an identifier
// uses. Semantically distinct identifier kinds (Object, Thread, String,
// ClassObject, Array, Class, Interface, ArrayType, ...) all collapse to
// one of these five at the wire level.
type IDKind int

const (
	IDKindObject IDKind = iota
	IDKindReferenceType
	IDKindMethod
	IDKindField
	IDKindFrame
)

// sizeOf returns the negotiated width for the given identifier kind.
func (s IDSizes) sizeOf(kind IDKind) int {
	switch kind {
	case IDKindObject:
		return s.ObjectIDSize
	case IDKindReferenceType:
		return s.ReferenceTypeIDSize
	case IDKindMethod:
		return s.MethodIDSize
	case IDKindField:
		return s.FieldIDSize
	case IDKindFrame:
		return s.FrameIDSize
	default:
		return 0
	}
}
