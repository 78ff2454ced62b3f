// Package alloc implements the Allocator Gateway: scoped acquisition of
// NVMe data/metadata pages from an externally supplied allocator, with
// guaranteed release. The core never owns a heap; it only calls the two
// callbacks installed once at process startup.
package alloc

import "github.com/googleinterns/scsi2nvme/logging"

// Result is the Allocator Gateway's own narrow error kind; allocation
// either succeeds or fails outright, with no partial/retryable states.
type Result int

const (
	Success Result = iota
	Failure
)

// AllocPagesFunc acquires count page_size-sized pages and returns their
// page-aligned base address, or 0 on failure.
type AllocPagesFunc func(pageSize uint32, count uint32) uint64

// DeallocPagesFunc releases a base address previously returned by
// AllocPagesFunc.
type DeallocPagesFunc func(base uint64, count uint32)

// Allocation wraps up to two allocator calls: one for command data, one
// for optional metadata. The pipeline holds one Allocation per produced
// NVMe command.
type Allocation struct {
	alloc   AllocPagesFunc
	dealloc DeallocPagesFunc

	dataBase  uint64
	dataCount uint32

	mdataBase  uint64
	mdataCount uint32
}

// New binds an Allocation to the gateway's current callbacks.
func New(allocFn AllocPagesFunc, deallocFn DeallocPagesFunc) *Allocation {
	return &Allocation{alloc: allocFn, dealloc: deallocFn}
}

// SetPages performs zero, one, or two allocator calls, one for dataCount
// pages and (if mdataCount > 0) one for mdataCount pages. It fails if
// either base is already non-zero (an Allocation is single-use). If the
// second allocation fails, the first is released before returning Failure.
func (a *Allocation) SetPages(pageSize uint32, dataCount uint32, mdataCount uint32) Result {
	if a.dataBase != 0 || a.mdataBase != 0 {
		logging.Debugf("alloc: SetPages called on a non-empty Allocation")
		return Failure
	}

	if dataCount > 0 {
		base := a.alloc(pageSize, dataCount)
		if base == 0 {
			return Failure
		}
		a.dataBase, a.dataCount = base, dataCount
	}

	if mdataCount > 0 {
		base := a.alloc(pageSize, mdataCount)
		if base == 0 {
			if a.dataBase != 0 {
				a.dealloc(a.dataBase, a.dataCount)
				a.dataBase, a.dataCount = 0, 0
			}
			return Failure
		}
		a.mdataBase, a.mdataCount = base, mdataCount
	}

	return Success
}

// DataBase returns the data page base address, or 0 if none was allocated.
func (a *Allocation) DataBase() uint64 { return a.dataBase }

// MetadataBase returns the metadata page base address, or 0 if none was allocated.
func (a *Allocation) MetadataBase() uint64 { return a.mdataBase }

// Release returns every non-zero base this Allocation holds to the
// allocator and clears it, making the Allocation reusable. Safe to call
// on an already-empty Allocation.
func (a *Allocation) Release() {
	if a.dataBase != 0 {
		a.dealloc(a.dataBase, a.dataCount)
		a.dataBase, a.dataCount = 0, 0
	}
	if a.mdataBase != 0 {
		a.dealloc(a.mdataBase, a.mdataCount)
		a.mdataBase, a.mdataCount = 0, 0
	}
}
