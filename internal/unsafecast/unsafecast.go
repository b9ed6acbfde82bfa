// Package unsafecast reinterprets slices between compatible memory layouts
// without copying, so typed page values can be viewed as raw bytes and back.
package unsafecast

import "unsafe"

// sliceHeader mirrors the runtime layout of a Go slice, holding the backing
// array through an unsafe.Pointer so the garbage collector keeps tracking it.
type sliceHeader struct {
	ptr unsafe.Pointer
	len int
	cap int
}

// Slice converts a []From into a []To sharing the same backing array, scaling
// length and capacity by the element size ratio. The caller is responsible
// for the layouts being compatible; no checks are performed.
func Slice[To, From any](data []From) []To {
	var from From
	var to To
	h := sliceHeader{
		ptr: *(*unsafe.Pointer)(unsafe.Pointer(&data)),
		len: int((uintptr(len(data)) * unsafe.Sizeof(from)) / unsafe.Sizeof(to)),
		cap: int((uintptr(cap(data)) * unsafe.Sizeof(from)) / unsafe.Sizeof(to)),
	}
	return *(*[]To)(unsafe.Pointer(&h))
}

// BytesToString returns a string sharing the backing array of data. The bytes
// must not be modified while the string is in use.
func BytesToString(data []byte) string {
	return unsafe.String(unsafe.SliceData(data), len(data))
}

// StringToBytes is the inverse of BytesToString.
func StringToBytes(data string) []byte {
	return unsafe.Slice(unsafe.StringData(data), len(data))
}
