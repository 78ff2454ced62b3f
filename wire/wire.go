// Package wire provides the length- and alignment-checked byte-rearrangement
// primitives every packed protocol structure in scsi and nvme is built on,
// so codecs never reach for unsafe casts directly.
//
// No allocation, no I/O. ReadValue/WriteValue and SafePointerCast* report
// a too-short or misaligned buffer as false or nil rather than panicking;
// the ReadBigEndian*/ReadLittleEndian* helpers do no length check and
// panic on a short slice, and BytesAt trusts the address it is given.
package wire

import (
	"encoding/binary"
	"unsafe"
)

// ReadValue copies sizeof(T) bytes from the front of src into *out,
// preserving out's in-memory host layout. It reports false without writing
// out when src is too short.
//
// T is expected to be one of the fixed-layout byte-array-backed structures
// defined in scsi/nvme (e.g. [96]byte-shaped InquiryData); ReadValue never
// performs endian conversion itself, since those types store their fields
// pre-swapped to the correct wire order.
func ReadValue[T any](src []byte, out *T) bool {
	size := int(unsafe.Sizeof(*out))
	if len(src) < size {
		return false
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(out)), size), src[:size])
	return true
}

// WriteValue copies sizeof(T) bytes from *value into the front of dst. It
// reports false without writing when dst is too short.
func WriteValue[T any](value *T, dst []byte) bool {
	size := int(unsafe.Sizeof(*value))
	if len(dst) < size {
		return false
	}
	copy(dst[:size], unsafe.Slice((*byte)(unsafe.Pointer(value)), size))
	return true
}

// SafePointerCastRead reinterprets the leading bytes of src as *T without
// copying, returning nil if src is too short or insufficiently aligned for
// T. Intended for buffers backed by page-aligned allocator memory, where the
// alignment guarantee needs an explicit check rather than an assumption.
func SafePointerCastRead[T any](src []byte) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(src) < size {
		return nil
	}
	ptr := unsafe.Pointer(&src[0])
	if uintptr(ptr)%unsafe.Alignof(zero) != 0 {
		return nil
	}
	return (*T)(ptr)
}

// SafePointerCastWrite is the write-side counterpart of SafePointerCastRead:
// it returns a *T view onto dst for in-place mutation, or nil if dst is too
// short or misaligned.
func SafePointerCastWrite[T any](dst []byte) *T {
	return SafePointerCastRead[T](dst)
}

// IsLittleEndian reports the host's native byte order. NVMe structures are
// always little-endian on the wire and SCSI structures always big-endian;
// this helper exists for the rare mixed-width conversion where a caller
// needs to know whether a swap is a no-op on this host.
func IsLittleEndian() bool {
	var x uint16 = 1
	b := (*[2]byte)(unsafe.Pointer(&x))
	return b[0] == 1
}

// Host-to-big-endian and host-to-little-endian helpers for the three
// integer widths the protocol layers use, wrapping encoding/binary for
// both directions and both orders.

func BigEndian16(v uint16) [2]byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return b
}

func BigEndian32(v uint32) [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return b
}

func BigEndian64(v uint64) [8]byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return b
}

func LittleEndian16(v uint16) [2]byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return b
}

func LittleEndian32(v uint32) [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b
}

func LittleEndian64(v uint64) [8]byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return b
}

func ReadBigEndian16(b []byte) uint16 { return binary.BigEndian.Uint16(b) }
func ReadBigEndian32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }
func ReadBigEndian64(b []byte) uint64 { return binary.BigEndian.Uint64(b) }

func ReadLittleEndian16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func ReadLittleEndian32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }
func ReadLittleEndian64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

// BytesAt reinterprets a raw page address (as returned by the Allocator
// Gateway, or stashed in an NVMe command's PRP field) as a byte slice of
// the given length. This is the one place in the module a page base
// crosses from "opaque u64" back to addressable memory; every codec goes
// through it rather than holding its own unsafe.Pointer arithmetic.
func BytesAt(addr uint64, length int) []byte {
	if addr == 0 || length == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(uintptr(addr))), length)
}
