package jdwp

// InterfaceType is command set 5. JDWP defines no commands under it;
// interface reference types are addressed entirely through
// ReferenceType and ClassObjectReference.
const CmdSetInterfaceType = 5
