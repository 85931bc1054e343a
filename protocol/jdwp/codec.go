package jdwp

// Codec is a JDWP wire codec parameterized by one session's negotiated
// identifier widths. It is immutable after construction and safe for
// concurrent use by any number of callers, provided each caller owns
// its own Buffer and result structs: there is no mutable state here
// beyond the negotiated sizes.
type Codec struct {
	sizes IDSizes
}

// New constructs a Codec for a session whose IDSizes have already been
// negotiated (normally by encoding and decoding a
// VirtualMachine.IDSizes command as the very first exchange).
func New(sizes IDSizes) *Codec {
	return &Codec{sizes: sizes}
}

// IDSizes returns the negotiated widths this Codec was constructed
// with.
func (c *Codec) IDSizes() IDSizes {
	return c.sizes
}

// Ack is the sentinel decode result for acknowledgement-only replies,
// where the packet body is empty (total packet length must equal
// HeaderSize).
type Ack struct{}

// decodeAck validates that body is empty, as JDWP requires for
// ack-only replies, and returns the Ack sentinel.
func decodeAck(body []byte) (Ack, error) {
	if len(body) != 0 {
		return Ack{}, &CodecError{Kind: UnexpectedType, Detail: "expected empty ack body"}
	}
	return Ack{}, nil
}
