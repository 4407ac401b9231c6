package foreign

// Complex records cross foreign-call boundaries as two scalar fields but
// read and write as a single complex value through the accessors below:
// SetValue decomposes a complex number into the fields, Value reconstructs
// it. Callers that receive one of these records from a foreign function
// should take Value() rather than the raw fields.

// Complex64 is the foreign record for a complex number over 4-byte floats.
type Complex64 struct {
	Real float32
	Imag float32
}

// Value reconstructs the complex number from the record fields.
func (c *Complex64) Value() complex64 {
	return complex(c.Real, c.Imag)
}

// SetValue decomposes v into the record fields.
func (c *Complex64) SetValue(v complex64) {
	c.Real = real(v)
	c.Imag = imag(v)
}

// Complex128 is the foreign record for a complex number over 8-byte floats.
type Complex128 struct {
	Real float64
	Imag float64
}

// Value reconstructs the complex number from the record fields.
func (c *Complex128) Value() complex128 {
	return complex(c.Real, c.Imag)
}

// SetValue decomposes v into the record fields.
func (c *Complex128) SetValue(v complex128) {
	c.Real = real(v)
	c.Imag = imag(v)
}

// Complex256 is the foreign record for a complex number over extended
// floats. The components are held at double precision, the widest float the
// host language exposes; the foreign side stores long doubles.
type Complex256 struct {
	Real float64
	Imag float64
}

// Value reconstructs the complex number from the record fields.
func (c *Complex256) Value() complex128 {
	return complex(c.Real, c.Imag)
}

// SetValue decomposes v into the record fields.
func (c *Complex256) SetValue(v complex128) {
	c.Real = real(v)
	c.Imag = imag(v)
}
