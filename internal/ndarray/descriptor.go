// Package ndarray models the runtime descriptor of a numeric host array:
// element storage kind, item size, shape and per-dimension byte strides.
// The descriptor is produced by the host runtime and consumed read-only by
// the type mappers and the address calculator.
package ndarray

// Descriptor describes the memory layout of one runtime array. Strides are
// byte distances between successive elements along each dimension and are
// read fresh at the moment of address computation, never cached.
type Descriptor struct {
	Letter   byte    // element kind letter ('i', 'u', 'f', 'b', 'c', 'O')
	ItemSize int     // element storage size in bytes
	Shape    []int64 // extent of each dimension
	Strides  []int64 // byte stride of each dimension, len == Rank()
	Data     uintptr // address of the first element
}

// Rank returns the number of dimensions.
func (d *Descriptor) Rank() int {
	return len(d.Shape)
}

// IsCContiguous reports whether the array is laid out row-major with no
// gaps. Zero-size dimensions make any layout contiguous.
func (d *Descriptor) IsCContiguous() bool {
	stride := int64(d.ItemSize)
	for i := d.Rank() - 1; i >= 0; i-- {
		if d.Shape[i] > 1 && d.Strides[i] != stride {
			return false
		}
		stride *= d.Shape[i]
	}
	return true
}

// IsFContiguous reports whether the array is laid out column-major with no
// gaps.
func (d *Descriptor) IsFContiguous() bool {
	stride := int64(d.ItemSize)
	for i := 0; i < d.Rank(); i++ {
		if d.Shape[i] > 1 && d.Strides[i] != stride {
			return false
		}
		stride *= d.Shape[i]
	}
	return true
}
