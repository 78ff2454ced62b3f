package main

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/googleinterns/scsi2nvme/logging"
)

// mmapAllocator backs the engine's Allocator Gateway with anonymous,
// process-private mmap regions, one per alloc call, standing in for the
// page pool a real NVMe driver would carve out of DMA-capable memory.
type mmapAllocator struct {
	mu      sync.Mutex
	regions map[uint64][]byte
}

func newMmapAllocator() *mmapAllocator {
	return &mmapAllocator{regions: make(map[uint64][]byte)}
}

func (m *mmapAllocator) alloc(pageSize uint32, count uint32) uint64 {
	length := int(pageSize) * int(count)
	if length <= 0 {
		return 0
	}
	b, err := unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		logging.Debugf("shim: mmap(%d bytes) failed: %v", length, err)
		return 0
	}
	base := uint64(uintptr(unsafe.Pointer(&b[0])))
	m.mu.Lock()
	m.regions[base] = b
	m.mu.Unlock()
	return base
}

func (m *mmapAllocator) dealloc(base uint64, count uint32) {
	m.mu.Lock()
	b, ok := m.regions[base]
	delete(m.regions, base)
	m.mu.Unlock()
	if !ok {
		return
	}
	if err := unix.Munmap(b); err != nil {
		logging.Debugf("shim: munmap(base=%#x) failed: %v", base, err)
	}
}
