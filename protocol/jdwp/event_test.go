package jdwp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeEventRoundTripEachKind(t *testing.T) {
	c := New(DefaultIDSizes())
	loc := Location{TypeTag: TypeTagClass, ClassID: 1, MethodID: 2, Index: 3}

	events := []Event{
		{Kind: EventKindSingleStep, RequestID: 1, Thread: 10, Location: loc},
		{Kind: EventKindBreakpoint, RequestID: 2, Thread: 10, Location: loc},
		{Kind: EventKindException, RequestID: 3, Thread: 10, Location: loc,
			Exception: TaggedObjectID{Tag: TagObject, ID: 99}, CatchLocation: loc},
		{Kind: EventKindThreadStart, RequestID: 4, Thread: 10},
		{Kind: EventKindThreadDeath, RequestID: 5, Thread: 10},
		{Kind: EventKindClassPrepare, RequestID: 6, Thread: 10, RefTypeTag: TypeTagClass,
			TypeID: 20, Signature: "Lfoo/Bar;", Status: 4},
		{Kind: EventKindClassUnload, RequestID: 7, Signature: "Lfoo/Bar;"},
		{Kind: EventKindFieldAccess, RequestID: 8, Thread: 10, Location: loc,
			RefTypeTag: TypeTagClass, TypeID: 20, Field: 30,
			Object: TaggedObjectID{Tag: TagObject, ID: 40}},
		{Kind: EventKindFieldModification, RequestID: 9, Thread: 10, Location: loc,
			RefTypeTag: TypeTagClass, TypeID: 20, Field: 30,
			Object: TaggedObjectID{Tag: TagObject, ID: 40}, ValueToBe: NewIntValue(7)},
		{Kind: EventKindMethodEntry, RequestID: 10, Thread: 10, Location: loc},
		{Kind: EventKindMethodExit, RequestID: 11, Thread: 10, Location: loc},
		{Kind: EventKindMethodExitWithReturnValue, RequestID: 12, Thread: 10, Location: loc,
			ValueToBe: NewLongValue(42)},
		{Kind: EventKindMonitorContendedEnter, RequestID: 13, Thread: 10,
			Object: TaggedObjectID{Tag: TagObject, ID: 50}, Location: loc},
		{Kind: EventKindMonitorContendedEntered, RequestID: 14, Thread: 10,
			Object: TaggedObjectID{Tag: TagObject, ID: 50}, Location: loc},
		{Kind: EventKindMonitorWait, RequestID: 15, Thread: 10,
			Object: TaggedObjectID{Tag: TagObject, ID: 50}, Location: loc, Timeout: 1000},
		{Kind: EventKindMonitorWaited, RequestID: 16, Thread: 10,
			Object: TaggedObjectID{Tag: TagObject, ID: 50}, Location: loc, TimedOut: true},
		{Kind: EventKindVMStart, RequestID: 17, Thread: 10},
		{Kind: EventKindVMDeath, RequestID: 18},
	}

	comp := Composite{SuspendPolicy: 1, Events: events}
	buf := c.EncodeEventComposite(comp)

	require.True(t, IsEvent(buf))
	require.False(t, IsReply(buf))

	got, err := c.DecodeEventComposite(buf, HeaderSize)
	require.NoError(t, err)
	assert.Equal(t, comp, got)
}

func TestCompositeEventUnknownKind(t *testing.T) {
	c := New(DefaultIDSizes())
	buf := c.EncodeEventComposite(Composite{SuspendPolicy: 0, Events: nil})
	// splice an unknown event kind into a 1-event composite body
	body := make([]byte, 0, len(buf)+5)
	body = append(body, buf[:HeaderSize]...)
	body = AppendU8(body, 0)
	body = AppendI32(body, 1)
	body = AppendU8(body, 200) // unknown kind
	_, err := c.DecodeEventComposite(body, HeaderSize)
	require.Error(t, err)
	var ce *CodecError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, InvalidEventType, ce.Kind)
	assert.EqualValues(t, 200, ce.EventKind)
}

func TestEventModifierRoundTripEachKind(t *testing.T) {
	mods := []EventModifier{
		ModCount(5),
		ModConditional(99),
		ModThreadOnly(11),
		ModClassOnly(22),
		ModClassMatch("java.lang.*"),
		ModClassExclude("java.lang.*"),
		ModLocationOnly(Location{TypeTag: TypeTagClass, ClassID: 1, MethodID: 2, Index: 3}),
		ModExceptionOnly(33, true, false),
		ModFieldOnly(44, 55),
		ModStep(66, 1, 0),
		ModInstanceOnly(77),
		ModSourceNameMatch("*.java"),
	}

	c := New(DefaultIDSizes())
	args := EventRequestSetArgs{EventKind: EventKindBreakpoint, SuspendPolicy: 1, Modifiers: mods}
	buf := c.EncodeEventRequestSet(args)

	d := newDecoder(buf, HeaderSize, c.sizes)
	_ = d.u8() // event kind
	_ = d.u8() // suspend policy
	n := d.i32()
	require.EqualValues(t, len(mods), n)
	for i := int32(0); i < n; i++ {
		got := d.eventModifier()
		require.NoError(t, d.Err())
		assert.Equal(t, mods[i], got)
	}
}

func TestEventModifierUnknownKindIsNotAnInvalidTagError(t *testing.T) {
	buf := AppendU8(nil, 200) // unknown ModKind
	d := newDecoder(buf, 0, DefaultIDSizes())
	_ = d.eventModifier()
	require.Error(t, d.Err())

	var ce *CodecError
	require.ErrorAs(t, d.Err(), &ce)
	assert.Equal(t, InvalidModifierType, ce.Kind)
	assert.EqualValues(t, 200, ce.ModKind)
	assert.Zero(t, ce.Tag)
}
