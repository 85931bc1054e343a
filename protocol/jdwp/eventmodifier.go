package jdwp

// ModKind selects the wire shape of an EventRequest.Set modifier.
type ModKind byte

const (
	ModKindCount            ModKind = 1
	ModKindConditional      ModKind = 2
	ModKindThreadOnly       ModKind = 3
	ModKindClassOnly        ModKind = 4
	ModKindClassMatch       ModKind = 5
	ModKindClassExclude     ModKind = 6
	ModKindLocationOnly     ModKind = 7
	ModKindExceptionOnly    ModKind = 8
	ModKindFieldOnly        ModKind = 9
	ModKindStep             ModKind = 10
	ModKindInstanceOnly     ModKind = 11
	ModKindSourceNameMatch  ModKind = 12
)

// EventModifier is a sum type over the twelve EventRequest.Set
// modifier shapes, one non-zero field set per Kind.
type EventModifier struct {
	Kind ModKind

	Count    int32 // ModKindCount
	ExprID   int32 // ModKindConditional
	Thread   ID    // ModKindThreadOnly, ModKindStep
	Clazz    ID    // ModKindClassOnly, ModKindExceptionOnly (exception type), ModKindFieldOnly (declaring)
	Pattern  string // ModKindClassMatch, ModKindClassExclude, ModKindSourceNameMatch
	Location Location // ModKindLocationOnly
	Caught   bool  // ModKindExceptionOnly
	Uncaught bool  // ModKindExceptionOnly
	Field    ID    // ModKindFieldOnly
	Size     int32 // ModKindStep
	Depth    int32 // ModKindStep
	Object   ID    // ModKindInstanceOnly
}

func ModCount(count int32) EventModifier {
	return EventModifier{Kind: ModKindCount, Count: count}
}

func ModConditional(exprID int32) EventModifier {
	return EventModifier{Kind: ModKindConditional, ExprID: exprID}
}

func ModThreadOnly(thread ID) EventModifier {
	return EventModifier{Kind: ModKindThreadOnly, Thread: thread}
}

func ModClassOnly(clazz ID) EventModifier {
	return EventModifier{Kind: ModKindClassOnly, Clazz: clazz}
}

func ModClassMatch(pattern string) EventModifier {
	return EventModifier{Kind: ModKindClassMatch, Pattern: pattern}
}

func ModClassExclude(pattern string) EventModifier {
	return EventModifier{Kind: ModKindClassExclude, Pattern: pattern}
}

func ModLocationOnly(loc Location) EventModifier {
	return EventModifier{Kind: ModKindLocationOnly, Location: loc}
}

func ModExceptionOnly(exceptionOrNull ID, caught, uncaught bool) EventModifier {
	return EventModifier{Kind: ModKindExceptionOnly, Clazz: exceptionOrNull, Caught: caught, Uncaught: uncaught}
}

func ModFieldOnly(declaring, field ID) EventModifier {
	return EventModifier{Kind: ModKindFieldOnly, Clazz: declaring, Field: field}
}

func ModStep(thread ID, size, depth int32) EventModifier {
	return EventModifier{Kind: ModKindStep, Thread: thread, Size: size, Depth: depth}
}

func ModInstanceOnly(object ID) EventModifier {
	return EventModifier{Kind: ModKindInstanceOnly, Object: object}
}

func ModSourceNameMatch(pattern string) EventModifier {
	return EventModifier{Kind: ModKindSourceNameMatch, Pattern: pattern}
}

func (e *encoder) eventModifier(m EventModifier) {
	e.u8(byte(m.Kind))
	switch m.Kind {
	case ModKindCount:
		e.i32(m.Count)
	case ModKindConditional:
		e.i32(m.ExprID)
	case ModKindThreadOnly:
		e.objectID(m.Thread)
	case ModKindClassOnly:
		e.refTypeID(m.Clazz)
	case ModKindClassMatch, ModKindClassExclude, ModKindSourceNameMatch:
		e.str(m.Pattern)
	case ModKindLocationOnly:
		e.location(m.Location)
	case ModKindExceptionOnly:
		e.refTypeID(m.Clazz)
		e.boolean(m.Caught)
		e.boolean(m.Uncaught)
	case ModKindFieldOnly:
		e.refTypeID(m.Clazz)
		e.fieldID(m.Field)
	case ModKindStep:
		e.objectID(m.Thread)
		e.i32(m.Size)
		e.i32(m.Depth)
	case ModKindInstanceOnly:
		e.objectID(m.Object)
	}
}

func (d *decoder) eventModifier() EventModifier {
	kind := ModKind(d.u8())
	m := EventModifier{Kind: kind}
	switch kind {
	case ModKindCount:
		m.Count = d.i32()
	case ModKindConditional:
		m.ExprID = d.i32()
	case ModKindThreadOnly:
		m.Thread = d.objectID()
	case ModKindClassOnly:
		m.Clazz = d.refTypeID()
	case ModKindClassMatch, ModKindClassExclude, ModKindSourceNameMatch:
		m.Pattern = d.str()
	case ModKindLocationOnly:
		m.Location = d.location()
	case ModKindExceptionOnly:
		m.Clazz = d.refTypeID()
		m.Caught = d.boolean()
		m.Uncaught = d.boolean()
	case ModKindFieldOnly:
		m.Clazz = d.refTypeID()
		m.Field = d.fieldID()
	case ModKindStep:
		m.Thread = d.objectID()
		m.Size = d.i32()
		m.Depth = d.i32()
	case ModKindInstanceOnly:
		m.Object = d.objectID()
	default:
		if d.err == nil {
			d.err = errInvalidModKind(byte(kind))
		}
	}
	return m
}
