package codec

import (
	"unsafe"

	"github.com/googleinterns/scsi2nvme/pipeline"
)

// fakeAllocator backs every codec test's Pipeline with real, zeroed Go
// buffers: pages never overlap and are never actually freed, which is fine
// since tests don't probe reuse.
func fakeAllocator() (func(uint32, uint32) uint64, func(uint64, uint32)) {
	var pages [][]byte
	alloc := func(pageSize uint32, count uint32) uint64 {
		buf := make([]byte, int(pageSize)*int(count))
		pages = append(pages, buf)
		return uint64(uintptr(unsafe.Pointer(&buf[0])))
	}
	dealloc := func(uint64, uint32) {}
	return alloc, dealloc
}

func newTestPipeline(nsid uint32) *pipeline.Pipeline {
	p := pipeline.New(4096, Lookup)
	a, d := fakeAllocator()
	p.SetAllocCallbacks(a, d)
	return p
}
