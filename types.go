// Package nas holds the value types shared by the NPU object commit
// engine: identifiers, NPU and attribute sets, the free id generator
// and the error taxonomy.
//
// None of the types in this package are safe for concurrent use.
package nas

// NpuID identifies one hardware forwarding engine.
type NpuID int32

// SwitchID identifies a logical switch.
type SwitchID uint32

// AttrID identifies an attribute of a configuration object.
type AttrID uint64

// ObjID is the id handed out for a configuration object.
type ObjID uint64

// NdiObjID is the id the hardware driver assigns to an object on one
// NPU.
type NdiObjID uint64
