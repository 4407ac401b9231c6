package types

// Byte-size shorthands for the fixed scalars, named after the runtime
// descriptor convention: kind letter plus item byte size. They alias the
// canonical builtin IDs, so comparisons against the long names hold.

func (b Builtins) I1() TypeID { return b.Int8 }
func (b Builtins) I2() TypeID { return b.Int16 }
func (b Builtins) I4() TypeID { return b.Int32 }
func (b Builtins) I8() TypeID { return b.Int64 }

func (b Builtins) U1() TypeID { return b.Uint8 }
func (b Builtins) U2() TypeID { return b.Uint16 }
func (b Builtins) U4() TypeID { return b.Uint32 }
func (b Builtins) U8() TypeID { return b.Uint64 }

func (b Builtins) F4() TypeID  { return b.Float32 }
func (b Builtins) F8() TypeID  { return b.Float64 }
func (b Builtins) F16() TypeID { return b.Float128 }

func (b Builtins) C8() TypeID  { return b.Complex64 }
func (b Builtins) C16() TypeID { return b.Complex128 }
func (b Builtins) C32() TypeID { return b.Complex256 }
