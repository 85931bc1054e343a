package jdwp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassesBySignatureEncodeBodySize(t *testing.T) {
	c := New(DefaultIDSizes())
	sig := "Ljava/lang/String;"
	buf := c.EncodeVMClassesBySignature(sig)

	length, err := ReadLength(buf)
	require.NoError(t, err)
	assert.EqualValues(t, HeaderSize+4+len(sig), length)
	assert.Equal(t, int(length), len(buf))

	cmdSet, _ := ReadCommandSet(buf)
	cmdID, _ := ReadCommandID(buf)
	assert.EqualValues(t, CmdSetVirtualMachine, cmdSet)
	assert.EqualValues(t, CmdVMClassesBySignature, cmdID)
}

func TestVMVersionReplyRoundTrip(t *testing.T) {
	c := New(DefaultIDSizes())
	var body []byte
	body = AppendString(body, "some JVM")
	body = AppendI32(body, 1)
	body = AppendI32(body, 8)
	body = AppendString(body, "11.0.2")
	body = AppendString(body, "OpenJDK 64-Bit Server VM")

	got, err := c.DecodeVMVersionReply(body, 0)
	require.NoError(t, err)
	assert.Equal(t, VMVersionReply{
		Description: "some JVM",
		JDWPMajor:   1,
		JDWPMinor:   8,
		VMVersion:   "11.0.2",
		VMName:      "OpenJDK 64-Bit Server VM",
	}, got)
}

func TestVMIDSizesRoundTrip(t *testing.T) {
	sizes := IDSizes{FieldIDSize: 8, MethodIDSize: 8, ObjectIDSize: 8, ReferenceTypeIDSize: 8, FrameIDSize: 8}
	var body []byte
	body = AppendI32(body, int32(sizes.FieldIDSize))
	body = AppendI32(body, int32(sizes.MethodIDSize))
	body = AppendI32(body, int32(sizes.ObjectIDSize))
	body = AppendI32(body, int32(sizes.ReferenceTypeIDSize))
	body = AppendI32(body, int32(sizes.FrameIDSize))

	got, err := DecodeVMIDSizesReply(body, 0)
	require.NoError(t, err)
	assert.Equal(t, sizes, got)
}

func TestVMClassPathsReplyIsFlattenedNotNested(t *testing.T) {
	c := New(DefaultIDSizes())
	var body []byte
	body = AppendString(body, "/base")
	body = AppendI32(body, 2)
	body = AppendString(body, "/base/a.jar")
	body = AppendString(body, "/base/b.jar")
	body = AppendI32(body, 1)
	body = AppendString(body, "/boot/rt.jar")

	got, err := c.DecodeVMClassPathsReply(body, 0)
	require.NoError(t, err)
	assert.Equal(t, VMClassPathsReply{
		BaseDir:        "/base",
		ClassPaths:     []string{"/base/a.jar", "/base/b.jar"},
		BootClassPaths: []string{"/boot/rt.jar"},
	}, got)
}

func TestVMDisposeObjectsEncode(t *testing.T) {
	c := New(DefaultIDSizes())
	buf := c.EncodeVMDisposeObjects([]ObjectIDRefCount{{ObjectID: 1, RefCount: 2}})
	cmdID, _ := ReadCommandID(buf)
	assert.EqualValues(t, CmdVMDisposeObjects, cmdID)

	body := buf[HeaderSize:]
	n, err := ReadI32(body, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
