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

import "fmt"

// CodecErrorKind classifies a codec-local failure. These never come from
// the target VM; they indicate transport corruption or a caller/library
// bug.
type CodecErrorKind int

const (
	// InsufficientData means a read ran past the end of the buffer.
	InsufficientData CodecErrorKind = iota
	// InvalidTag means a byte claimed to be a Tag isn't one of the
	// values in the tag-size table.
	InvalidTag
	// InvalidEventType means a composite event's eventKind byte isn't
	// one of the known EventKind values.
	InvalidEventType
	// InvalidModifierType means an EventRequest.Set modifier's modKind
	// byte isn't one of the known ModKind values.
	InvalidModifierType
	// UnexpectedType means input didn't have the shape it was decoded
	// as; decodeAck reports it for an ack-only reply whose body isn't
	// empty.
	UnexpectedType
)

func (k CodecErrorKind) String() string {
	switch k {
	case InsufficientData:
		return "insufficient data"
	case InvalidTag:
		return "invalid tag"
	case InvalidEventType:
		return "invalid event type"
	case InvalidModifierType:
		return "invalid modifier type"
	case UnexpectedType:
		return "unexpected type"
	default:
		return "unknown codec error"
	}
}

// CodecError is the single error kind raised by this package's decoders
// and encoders. It carries enough context (Kind, plus Tag or EventKind
// when applicable) for a caller to log or assert on, without needing to
// string-match an error message.
type CodecError struct {
	Kind      CodecErrorKind
	Tag       byte // set when Kind == InvalidTag
	EventKind byte // set when Kind == InvalidEventType
	ModKind   byte // set when Kind == InvalidModifierType
	Detail    string
}

func (e *CodecError) Error() string {
	switch e.Kind {
	case InvalidTag:
		return fmt.Sprintf("jdwp: invalid tag 0x%02x", e.Tag)
	case InvalidEventType:
		return fmt.Sprintf("jdwp: invalid event kind %d", e.EventKind)
	case InvalidModifierType:
		return fmt.Sprintf("jdwp: invalid modifier kind %d", e.ModKind)
	case UnexpectedType:
		if e.Detail != "" {
			return fmt.Sprintf("jdwp: unexpected type: %s", e.Detail)
		}
		return "jdwp: unexpected type"
	default:
		if e.Detail != "" {
			return fmt.Sprintf("jdwp: %s: %s", e.Kind, e.Detail)
		}
		return fmt.Sprintf("jdwp: %s", e.Kind)
	}
}

func errInvalidTag(tag byte) error {
	return &CodecError{Kind: InvalidTag, Tag: tag}
}

func errInvalidEventKind(kind byte) error {
	return &CodecError{Kind: InvalidEventType, EventKind: kind}
}

func errInvalidModKind(kind byte) error {
	return &CodecError{Kind: InvalidModifierType, ModKind: kind}
}

func errUnexpectedType(detail string) error {
	return &CodecError{Kind: UnexpectedType, Detail: detail}
}

// ErrorCode is a JDWP protocol error code, transported in a reply
// packet's 2-byte error field. The codec never raises these as Go
// errors; it only surfaces the code via PacketFramer.ReadErrorCode and
// maps it to text via ErrorText.
type ErrorCode int16

// JDWP error codes, from the JDWP specification's Error constants.
const (
	ErrNone                       ErrorCode = 0
	ErrInvalidThread              ErrorCode = 10
	ErrInvalidThreadGroup         ErrorCode = 11
	ErrInvalidPriority            ErrorCode = 12
	ErrThreadNotSuspended         ErrorCode = 13
	ErrThreadSuspended            ErrorCode = 14
	ErrThreadNotAlive             ErrorCode = 15
	ErrInvalidObject              ErrorCode = 20
	ErrInvalidClass               ErrorCode = 21
	ErrClassNotPrepared           ErrorCode = 22
	ErrInvalidMethodid            ErrorCode = 23
	ErrInvalidLocation            ErrorCode = 24
	ErrInvalidFieldid             ErrorCode = 25
	ErrInvalidFrameid             ErrorCode = 30
	ErrNoMoreFrames               ErrorCode = 31
	ErrOpaqueFrame                ErrorCode = 32
	ErrNotCurrentFrame            ErrorCode = 33
	ErrTypeMismatch               ErrorCode = 34
	ErrInvalidSlot                ErrorCode = 35
	ErrDuplicate                  ErrorCode = 40
	ErrNotFound                   ErrorCode = 41
	ErrInvalidMonitor             ErrorCode = 50
	ErrNotMonitorOwner            ErrorCode = 51
	ErrInterrupt                  ErrorCode = 52
	ErrInvalidClassFormat         ErrorCode = 60
	ErrCircularClassDefinition    ErrorCode = 61
	ErrFailsVerification         ErrorCode = 62
	ErrAddMethodNotImplemented    ErrorCode = 63
	ErrSchemaChangeNotImplemented ErrorCode = 64
	ErrInvalidTypestate           ErrorCode = 65
	ErrHierarchyChangeNotImplemented ErrorCode = 66
	ErrDeleteMethodNotImplemented ErrorCode = 67
	ErrUnsupportedVersion         ErrorCode = 68
	ErrNamesDontMatch             ErrorCode = 69
	ErrClassModifiersChangeNotImplemented  ErrorCode = 70
	ErrMethodModifiersChangeNotImplemented ErrorCode = 71
	ErrClassAttributeChangeNotImplemented  ErrorCode = 72
	ErrNotImplemented             ErrorCode = 99
	ErrNullPointer                ErrorCode = 100
	ErrAbsentInformation          ErrorCode = 101
	ErrInvalidEventType           ErrorCode = 102
	ErrIllegalArgument            ErrorCode = 103
	ErrOutOfMemory                ErrorCode = 110
	ErrAccessDenied               ErrorCode = 111
	ErrVMDead                     ErrorCode = 112
	ErrInternal                   ErrorCode = 113
	ErrUnattachedThread           ErrorCode = 115
	ErrInvalidTag                 ErrorCode = 500
	ErrAlreadyInvoking            ErrorCode = 502
	ErrInvalidIndex               ErrorCode = 503
	ErrInvalidLength              ErrorCode = 504
	ErrInvalidString              ErrorCode = 506
	ErrInvalidClassLoader         ErrorCode = 507
	ErrInvalidArray               ErrorCode = 508
	ErrTransportLoad              ErrorCode = 509
	ErrTransportInit              ErrorCode = 510
	ErrNativeMethod               ErrorCode = 511
	ErrInvalidCount               ErrorCode = 512
)

var errorCodeText = map[ErrorCode]string{
	ErrNone:                       "no error",
	ErrInvalidThread:              "invalid thread",
	ErrInvalidThreadGroup:         "invalid thread group",
	ErrInvalidPriority:            "invalid priority",
	ErrThreadNotSuspended:         "thread not suspended",
	ErrThreadSuspended:            "thread already suspended",
	ErrThreadNotAlive:             "thread not alive",
	ErrInvalidObject:              "invalid object",
	ErrInvalidClass:               "invalid class",
	ErrClassNotPrepared:           "class not prepared",
	ErrInvalidMethodid:            "invalid method ID",
	ErrInvalidLocation:            "invalid location",
	ErrInvalidFieldid:             "invalid field ID",
	ErrInvalidFrameid:             "invalid frame ID",
	ErrNoMoreFrames:               "no more frames",
	ErrOpaqueFrame:                "opaque frame",
	ErrNotCurrentFrame:            "not the current frame",
	ErrTypeMismatch:               "type mismatch",
	ErrInvalidSlot:                "invalid slot",
	ErrDuplicate:                  "item already set",
	ErrNotFound:                   "item not found",
	ErrInvalidMonitor:             "invalid monitor",
	ErrNotMonitorOwner:            "thread doesn't own the monitor",
	ErrInterrupt:                  "wait interrupted",
	ErrInvalidClassFormat:         "invalid class format",
	ErrCircularClassDefinition:    "circular class definition",
	ErrFailsVerification:          "fails verification",
	ErrAddMethodNotImplemented:    "add method not implemented",
	ErrSchemaChangeNotImplemented: "schema change not implemented",
	ErrInvalidTypestate:           "invalid type state",
	ErrHierarchyChangeNotImplemented:       "hierarchy change not implemented",
	ErrDeleteMethodNotImplemented:          "delete method not implemented",
	ErrUnsupportedVersion:                  "unsupported version",
	ErrNamesDontMatch:                      "names don't match",
	ErrClassModifiersChangeNotImplemented:  "class modifiers change not implemented",
	ErrMethodModifiersChangeNotImplemented: "method modifiers change not implemented",
	ErrClassAttributeChangeNotImplemented:  "class attribute change not implemented",
	ErrNotImplemented:             "not implemented",
	ErrNullPointer:                "null pointer",
	ErrAbsentInformation:          "absent information",
	ErrInvalidEventType:           "invalid event type",
	ErrIllegalArgument:            "illegal argument",
	ErrOutOfMemory:                "out of memory",
	ErrAccessDenied:               "access denied",
	ErrVMDead:                     "virtual machine not running",
	ErrInternal:                   "internal error",
	ErrUnattachedThread:           "thread has not started or has terminated",
	ErrInvalidTag:                 "invalid tag",
	ErrAlreadyInvoking:            "a method is already invoking on this thread",
	ErrInvalidIndex:               "invalid index",
	ErrInvalidLength:              "invalid length",
	ErrInvalidString:              "invalid string",
	ErrInvalidClassLoader:         "invalid class loader",
	ErrInvalidArray:               "invalid array",
	ErrTransportLoad:              "unable to load transport",
	ErrTransportInit:              "unable to initialize transport",
	ErrNativeMethod:               "method is native",
	ErrInvalidCount:               "invalid count",
}

// ErrorText returns the human-readable message for a JDWP protocol
// error code, for diagnostics. Unknown codes get a generic message
// rather than an error, since the set isn't closed across JDWP minor
// revisions.
func ErrorText(code ErrorCode) string {
	if m, ok := errorCodeText[code]; ok {
		return m
	}
	return fmt.Sprintf("unknown error code [%d]", code)
}
