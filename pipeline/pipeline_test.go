package pipeline

import (
	"testing"

	"github.com/googleinterns/scsi2nvme/nvme"
	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/stretchr/testify/assert"
)

type fakeCodec struct {
	toNvmeResult Result
	toScsiResult Result
	reserveCount int
}

func (f *fakeCodec) ToNvme(p *Pipeline) Result {
	for i := 0; i < f.reserveCount; i++ {
		w, a, ok := p.Reserve(true)
		if !ok {
			return Failure
		}
		w.Cmd.SetOpcode(nvme.AdminOpcodeIdentify)
		a.SetPages(4096, 1, 0)
	}
	return f.toNvmeResult
}

func (f *fakeCodec) ToScsi(p *Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) Result {
	return f.toScsiResult
}

func fakeAlloc() (func(uint32, uint32) uint64, func(uint64, uint32)) {
	next := uint64(0x10000)
	return func(pageSize uint32, count uint32) uint64 {
			base := next
			next += uint64(pageSize) * uint64(count)
			return base
		}, func(uint64, uint32) {
		}
}

func newTestPipeline(codec Codec) *Pipeline {
	lookup := func(opcode scsi.OpCode) (Codec, bool) { return codec, true }
	p := New(4096, lookup)
	a, d := fakeAlloc()
	p.SetAllocCallbacks(a, d)
	return p
}

func TestBeginSuccessTransitionsToReady(t *testing.T) {
	assert := assert.New(t)
	codec := &fakeCodec{toNvmeResult: Success, reserveCount: 1}
	p := newTestPipeline(codec)

	resp := p.Begin([]byte{scsi.Read10, 0, 0, 0, 0, 0, 0, 0, 0, 0}, nil, 0, 1)
	assert.Equal(ApiSuccess, resp.ApiStatus)
	assert.Len(p.GetNvmeWrappers(), 1)
}

func TestBeginCodecFailureEntersFailedState(t *testing.T) {
	assert := assert.New(t)
	codec := &fakeCodec{toNvmeResult: InvalidInput, reserveCount: 1}
	p := newTestPipeline(codec)

	p.Begin([]byte{scsi.Read10}, nil, 0, 1)
	assert.Equal(stateFailed, p.st)
	assert.Empty(p.GetNvmeWrappers())
}

func TestBeginWhileBuildingFails(t *testing.T) {
	assert := assert.New(t)
	codec := &fakeCodec{toNvmeResult: Success}
	p := newTestPipeline(codec)
	p.st = stateBuilding

	resp := p.Begin([]byte{scsi.Read10}, nil, 0, 1)
	assert.Equal(ApiFailure, resp.ApiStatus)
}

func TestCompleteBeforeBeginFails(t *testing.T) {
	assert := assert.New(t)
	codec := &fakeCodec{}
	p := newTestPipeline(codec)

	resp := p.Complete(nil, nil, nil)
	assert.Equal(ApiFailure, resp.ApiStatus)
}

func TestCompleteAfterFailedBeginReturnsCheckCondition(t *testing.T) {
	assert := assert.New(t)
	codec := &fakeCodec{toNvmeResult: InvalidInput}
	p := newTestPipeline(codec)
	p.Begin([]byte{scsi.Read10}, nil, 0, 1)

	sense := make([]byte, 8)
	resp := p.Complete(nil, nil, sense)
	assert.Equal(scsi.StatusCheckCondition, resp.ScsiStatus.Status)
	assert.Equal(byte(0x72), sense[0])
}

func TestCompleteSuccessReturnsGoodAndReleases(t *testing.T) {
	assert := assert.New(t)
	codec := &fakeCodec{toNvmeResult: Success, toScsiResult: Success, reserveCount: 1}
	p := newTestPipeline(codec)
	released := 0
	a, _ := fakeAlloc()
	p.SetAllocCallbacks(a, func(uint64, uint32) { released++ })
	p.Begin([]byte{scsi.Read10}, nil, 0, 1)

	var cpl nvme.GenericQueueEntryCpl
	cpl.SetStatus(nvme.StatusCodeTypeGeneric, nvme.GenericStatusSuccessfulCompletion)

	resp := p.Complete([]nvme.GenericQueueEntryCpl{cpl}, make([]byte, 16), make([]byte, 8))
	assert.Equal(scsi.StatusGood, resp.ScsiStatus.Status)
	assert.Equal(stateUninitialized, p.st)
	assert.Equal(1, released)
}

func TestAbortIsIdempotent(t *testing.T) {
	assert := assert.New(t)
	codec := &fakeCodec{toNvmeResult: Success, reserveCount: 1}
	p := newTestPipeline(codec)
	p.Begin([]byte{scsi.Read10}, nil, 0, 1)

	assert.NotPanics(func() {
		p.Abort()
		p.Abort()
	})
	assert.Equal(stateUninitialized, p.st)
}

func TestReserveRespectsCapacity(t *testing.T) {
	assert := assert.New(t)
	codec := &fakeCodec{toNvmeResult: Success, reserveCount: kMaxCommandRatio + 1}
	p := newTestPipeline(codec)

	p.Begin([]byte{scsi.Read10}, nil, 0, 1)
	assert.LessOrEqual(len(p.GetNvmeWrappers()), kMaxCommandRatio)
}
