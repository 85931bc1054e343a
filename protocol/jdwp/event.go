package jdwp

// Event is command set 64: server-to-client only, carrying one
// Composite command (cmdID 100) per packet.
const CmdSetEvent = 64

const CmdEventComposite = 100

// EventKind selects the wire shape of one event within a Composite
// packet.
type EventKind byte

const (
	EventKindSingleStep                  EventKind = 1
	EventKindBreakpoint                  EventKind = 2
	EventKindException                   EventKind = 4
	EventKindThreadStart                 EventKind = 6
	EventKindThreadDeath                 EventKind = 7
	EventKindClassPrepare                EventKind = 8
	EventKindClassUnload                 EventKind = 9
	EventKindFieldAccess                 EventKind = 20
	EventKindFieldModification           EventKind = 21
	EventKindMethodEntry                 EventKind = 40
	EventKindMethodExit                  EventKind = 41
	EventKindMethodExitWithReturnValue   EventKind = 42
	EventKindMonitorContendedEnter       EventKind = 43
	EventKindMonitorContendedEntered     EventKind = 44
	EventKindMonitorWait                 EventKind = 45
	EventKindMonitorWaited               EventKind = 46
	EventKindVMStart                     EventKind = 90
	EventKindVMDeath                     EventKind = 99
)

// Event is a sum type over the Composite event bodies, one variant per
// EventKind. Only the fields relevant to Kind are populated.
type Event struct {
	Kind EventKind

	RequestID     int32
	Thread        ID
	Location      Location
	Exception     TaggedObjectID
	CatchLocation Location
	RefTypeTag    TypeTag
	TypeID        ID
	Signature     string
	Status        int32
	Field         ID
	Object        TaggedObjectID
	ValueToBe     Value
	Timeout       int64
	TimedOut      bool
}

// Composite is the decoded body of Event.Composite.
type Composite struct {
	SuspendPolicy byte
	Events        []Event
}

func (e *encoder) event(ev Event) {
	e.u8(byte(ev.Kind))
	switch ev.Kind {
	case EventKindSingleStep, EventKindBreakpoint:
		e.i32(ev.RequestID)
		e.objectID(ev.Thread)
		e.location(ev.Location)
	case EventKindException:
		e.i32(ev.RequestID)
		e.objectID(ev.Thread)
		e.location(ev.Location)
		e.taggedObjectID(ev.Exception)
		e.location(ev.CatchLocation)
	case EventKindThreadStart, EventKindThreadDeath:
		e.i32(ev.RequestID)
		e.objectID(ev.Thread)
	case EventKindClassPrepare:
		e.i32(ev.RequestID)
		e.objectID(ev.Thread)
		e.u8(byte(ev.RefTypeTag))
		e.refTypeID(ev.TypeID)
		e.str(ev.Signature)
		e.i32(ev.Status)
	case EventKindClassUnload:
		e.i32(ev.RequestID)
		e.str(ev.Signature)
	case EventKindFieldAccess:
		e.i32(ev.RequestID)
		e.objectID(ev.Thread)
		e.location(ev.Location)
		e.u8(byte(ev.RefTypeTag))
		e.refTypeID(ev.TypeID)
		e.fieldID(ev.Field)
		e.taggedObjectID(ev.Object)
	case EventKindFieldModification:
		e.i32(ev.RequestID)
		e.objectID(ev.Thread)
		e.location(ev.Location)
		e.u8(byte(ev.RefTypeTag))
		e.refTypeID(ev.TypeID)
		e.fieldID(ev.Field)
		e.taggedObjectID(ev.Object)
		e.value(ev.ValueToBe)
	case EventKindMethodEntry, EventKindMethodExit:
		e.i32(ev.RequestID)
		e.objectID(ev.Thread)
		e.location(ev.Location)
	case EventKindMethodExitWithReturnValue:
		e.i32(ev.RequestID)
		e.objectID(ev.Thread)
		e.location(ev.Location)
		e.value(ev.ValueToBe)
	case EventKindMonitorContendedEnter, EventKindMonitorContendedEntered:
		e.i32(ev.RequestID)
		e.objectID(ev.Thread)
		e.taggedObjectID(ev.Object)
		e.location(ev.Location)
	case EventKindMonitorWait:
		e.i32(ev.RequestID)
		e.objectID(ev.Thread)
		e.taggedObjectID(ev.Object)
		e.location(ev.Location)
		e.i64(ev.Timeout)
	case EventKindMonitorWaited:
		e.i32(ev.RequestID)
		e.objectID(ev.Thread)
		e.taggedObjectID(ev.Object)
		e.location(ev.Location)
		e.boolean(ev.TimedOut)
	case EventKindVMStart:
		e.i32(ev.RequestID)
		e.objectID(ev.Thread)
	case EventKindVMDeath:
		e.i32(ev.RequestID)
	}
}

func (d *decoder) event() Event {
	kind := EventKind(d.u8())
	ev := Event{Kind: kind}
	switch kind {
	case EventKindSingleStep, EventKindBreakpoint:
		ev.RequestID = d.i32()
		ev.Thread = d.objectID()
		ev.Location = d.location()
	case EventKindException:
		ev.RequestID = d.i32()
		ev.Thread = d.objectID()
		ev.Location = d.location()
		ev.Exception = d.taggedObjectID()
		ev.CatchLocation = d.location()
	case EventKindThreadStart, EventKindThreadDeath:
		ev.RequestID = d.i32()
		ev.Thread = d.objectID()
	case EventKindClassPrepare:
		ev.RequestID = d.i32()
		ev.Thread = d.objectID()
		ev.RefTypeTag = TypeTag(d.u8())
		ev.TypeID = d.refTypeID()
		ev.Signature = d.str()
		ev.Status = d.i32()
	case EventKindClassUnload:
		ev.RequestID = d.i32()
		ev.Signature = d.str()
	case EventKindFieldAccess:
		ev.RequestID = d.i32()
		ev.Thread = d.objectID()
		ev.Location = d.location()
		ev.RefTypeTag = TypeTag(d.u8())
		ev.TypeID = d.refTypeID()
		ev.Field = d.fieldID()
		ev.Object = d.taggedObjectID()
	case EventKindFieldModification:
		ev.RequestID = d.i32()
		ev.Thread = d.objectID()
		ev.Location = d.location()
		ev.RefTypeTag = TypeTag(d.u8())
		ev.TypeID = d.refTypeID()
		ev.Field = d.fieldID()
		ev.Object = d.taggedObjectID()
		ev.ValueToBe = d.value()
	case EventKindMethodEntry, EventKindMethodExit:
		ev.RequestID = d.i32()
		ev.Thread = d.objectID()
		ev.Location = d.location()
	case EventKindMethodExitWithReturnValue:
		ev.RequestID = d.i32()
		ev.Thread = d.objectID()
		ev.Location = d.location()
		ev.ValueToBe = d.value()
	case EventKindMonitorContendedEnter, EventKindMonitorContendedEntered:
		ev.RequestID = d.i32()
		ev.Thread = d.objectID()
		ev.Object = d.taggedObjectID()
		ev.Location = d.location()
	case EventKindMonitorWait:
		ev.RequestID = d.i32()
		ev.Thread = d.objectID()
		ev.Object = d.taggedObjectID()
		ev.Location = d.location()
		ev.Timeout = d.i64()
	case EventKindMonitorWaited:
		ev.RequestID = d.i32()
		ev.Thread = d.objectID()
		ev.Object = d.taggedObjectID()
		ev.Location = d.location()
		ev.TimedOut = d.boolean()
	case EventKindVMStart:
		ev.RequestID = d.i32()
		ev.Thread = d.objectID()
	case EventKindVMDeath:
		ev.RequestID = d.i32()
	default:
		if d.err == nil {
			d.err = errInvalidEventKind(byte(kind))
		}
	}
	return ev
}

func (c *Codec) EncodeEventComposite(comp Composite) []byte {
	b := NewCommand(CmdSetEvent, CmdEventComposite)
	e := newEncoder(b, c.sizes)
	e.u8(comp.SuspendPolicy)
	e.i32(int32(len(comp.Events)))
	for _, ev := range comp.Events {
		e.event(ev)
	}
	FinalizeLength(b)
	return b.Bytes()
}

func (c *Codec) DecodeEventComposite(buf []byte, offset int) (Composite, error) {
	d := newDecoder(buf, offset, c.sizes)
	var comp Composite
	comp.SuspendPolicy = d.u8()
	n := d.i32()
	comp.Events = make([]Event, 0, n)
	for i := int32(0); i < n && d.Err() == nil; i++ {
		comp.Events = append(comp.Events, d.event())
	}
	return comp, d.Err()
}
