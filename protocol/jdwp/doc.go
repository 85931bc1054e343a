// Package jdwp implements the wire-level (de)serialization of the Java
// Debug Wire Protocol (JDWP): packet framing, primitive and identifier
// codecs, tagged-value machinery, and the per-command-set encode/decode
// table. It does no I/O, no connection management and no session state;
// callers hand it byte slices and get back byte slices or decoded structs.
package jdwp
