// Package pipeline implements the translation pipeline: the
// Begin/GetNvmeWrappers/Complete/Abort state machine that dispatches one
// SCSI command to a per-opcode codec, collects the NVMe commands it
// produces, and later folds the resulting completions back into a SCSI
// response. The pipeline itself holds no heap-allocated slices: wrapper
// and allocation slots are fixed-capacity arrays sized by kMaxCommandRatio,
// the same no-dynamic-growth discipline the rest of this module follows.
package pipeline

import (
	"github.com/googleinterns/scsi2nvme/alloc"
	"github.com/googleinterns/scsi2nvme/logging"
	"github.com/googleinterns/scsi2nvme/nvme"
	"github.com/googleinterns/scsi2nvme/scsi"
)

// kMaxCommandRatio bounds how many NVMe commands a single SCSI command may
// translate into. Two suffices for every opcode this module supports.
const kMaxCommandRatio = 2

// Result is the error taxonomy codecs report upward: a kind, not a Go
// error. Only Failure represents an unexpected fault.
type Result int

const (
	Uninitialized Result = iota
	Success
	InvalidInput
	NoTranslation
	Failure
)

// ApiStatus reports whether an API call itself was well-formed (correct
// state, no misuse), independent of whether the SCSI command it described
// ultimately succeeded.
type ApiStatus int

const (
	ApiSuccess ApiStatus = iota
	ApiFailure
)

type state int

const (
	stateUninitialized state = iota
	stateBuilding
	stateReady
	stateFailed
)

// NvmeCmdWrapper is the NVMe shim's unit of work: a 64-byte command to
// submit to either the admin or an I/O queue, plus the data-transfer
// length the shim should honor.
type NvmeCmdWrapper struct {
	Cmd       nvme.GenericQueueEntryCmd
	IsAdmin   bool
	BufferLen uint32
}

// Codec is the pair of pure functions (SPC-4/SBC-3 §4.5) every supported
// SCSI opcode implements. ToNvme reserves wrapper/allocation slots via the
// Pipeline's Reserve method and fills them in; ToScsi reads back the
// resulting completions and page contents and writes a SCSI response into
// inBuffer.
type Codec interface {
	ToNvme(p *Pipeline) Result
	ToScsi(p *Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) Result
}

// CodecLookup resolves a SCSI opcode to its codec, or (nil, false) if the
// opcode is unsupported. Supplied by the codec package to avoid an import
// cycle (codec depends on pipeline, not vice versa).
type CodecLookup func(opcode scsi.OpCode) (Codec, bool)

// Pipeline is one in-flight SCSI-command translation. A Pipeline made by
// New, once given an allocator via SetAllocCallbacks, is ready for
// repeated Begin/Complete cycles; the zero value has no codec lookup.
type Pipeline struct {
	st state

	allocFn   alloc.AllocPagesFunc
	deallocFn alloc.DeallocPagesFunc
	lookup    CodecLookup

	pageSize uint32
	nsid     uint32
	lun      uint64
	cdb      []byte
	dataOut  []byte

	codec    Codec
	codecErr Result

	wrappers     [kMaxCommandRatio]NvmeCmdWrapper
	wrapperCount int
	allocations  [kMaxCommandRatio]alloc.Allocation
	allocCount   int

	allocLen uint32
}

// New returns a Pipeline bound to the given page size and codec lookup.
// Install allocator callbacks separately via SetAllocCallbacks, once at
// process startup.
func New(pageSize uint32, lookup CodecLookup) *Pipeline {
	return &Pipeline{pageSize: pageSize, lookup: lookup}
}

// SetAllocCallbacks installs this Pipeline's allocator capability; it
// applies to allocations reserved after the call.
func (p *Pipeline) SetAllocCallbacks(allocFn alloc.AllocPagesFunc, deallocFn alloc.DeallocPagesFunc) {
	p.allocFn = allocFn
	p.deallocFn = deallocFn
}

// BeginResponse is Begin's return value.
type BeginResponse struct {
	ApiStatus ApiStatus
	AllocLen  uint32
}

// Begin dispatches cdbBytes[0]'s opcode to its codec and runs ToNvme.
// dataOut carries any data the host sent along with the CDB (e.g. an
// UNMAP parameter list); codecs that take no write-data payload ignore it.
func (p *Pipeline) Begin(cdbBytes []byte, dataOut []byte, lun uint64, nsid uint32) BeginResponse {
	if p.st != stateUninitialized {
		logging.Debugf("pipeline: Begin called while not Uninitialized")
		return BeginResponse{ApiStatus: ApiFailure}
	}
	if len(cdbBytes) == 0 {
		return BeginResponse{ApiStatus: ApiFailure}
	}

	p.cdb = cdbBytes
	p.dataOut = dataOut
	p.lun = lun
	p.nsid = nsid
	p.wrapperCount = 0
	p.allocCount = 0
	p.allocLen = 0
	p.st = stateBuilding

	opcode := cdbBytes[0]
	codec, ok := p.lookup(opcode)
	if !ok {
		logging.Debugf("pipeline: unsupported opcode %#02x", opcode)
		p.codec = nil
		p.codecErr = InvalidInput
		p.st = stateFailed
		return BeginResponse{ApiStatus: ApiSuccess, AllocLen: 0}
	}

	p.codec = codec
	result := codec.ToNvme(p)
	p.codecErr = result
	if result == Success || result == NoTranslation {
		p.st = stateReady
	} else {
		p.releaseAllocations()
		p.wrapperCount = 0
		p.st = stateFailed
	}

	return BeginResponse{ApiStatus: ApiSuccess, AllocLen: p.allocLen}
}

// GetNvmeWrappers returns the wrappers codec.ToNvme produced, in the fixed
// order the codec defines.
func (p *Pipeline) GetNvmeWrappers() []NvmeCmdWrapper {
	return p.wrappers[:p.wrapperCount]
}

// CompleteResponse is Complete's return value.
type CompleteResponse struct {
	ApiStatus  ApiStatus
	ScsiStatus scsi.StatusQuad
}

// Complete folds completionEntries back through the codec's ToScsi half
// (or, if Begin already failed, synthesizes a sense response directly),
// writes the result into inBuffer/senseBuffer, releases all allocations,
// and returns the pipeline to Uninitialized.
func (p *Pipeline) Complete(completionEntries []nvme.GenericQueueEntryCpl, inBuffer []byte, senseBuffer []byte) CompleteResponse {
	if p.st != stateReady && p.st != stateFailed {
		logging.Debugf("pipeline: Complete called while Uninitialized")
		return CompleteResponse{ApiStatus: ApiFailure}
	}
	defer p.reset()

	if p.st == stateFailed {
		sense := scsi.NewDescriptorFormatSenseData(scsi.StatusQuad{
			Status: scsi.StatusCheckCondition,
			Key:    scsi.SenseIllegalRequest,
			Asc:    scsi.AscInvalidFieldInCdb,
			Ascq:   scsi.AscqInvalidFieldInCdb,
		})
		copy(senseBuffer, sense[:])
		return CompleteResponse{
			ApiStatus:  ApiSuccess,
			ScsiStatus: scsi.StatusQuad{Status: scsi.StatusCheckCondition, Key: scsi.SenseIllegalRequest, Asc: scsi.AscInvalidFieldInCdb, Ascq: scsi.AscqInvalidFieldInCdb},
		}
	}

	if mapped, failed := p.firstFailedCompletion(completionEntries); failed {
		sense := scsi.NewDescriptorFormatSenseData(mapped)
		copy(senseBuffer, sense[:])
		return CompleteResponse{ApiStatus: ApiSuccess, ScsiStatus: mapped}
	}

	if p.codec != nil {
		result := p.codec.ToScsi(p, completionEntries, inBuffer)
		if result != Success && result != NoTranslation {
			q := scsi.StatusQuad{Status: scsi.StatusCheckCondition, Key: scsi.SenseIllegalRequest, Asc: scsi.AscInvalidFieldInCdb, Ascq: scsi.AscqInvalidFieldInCdb}
			sense := scsi.NewDescriptorFormatSenseData(q)
			copy(senseBuffer, sense[:])
			return CompleteResponse{ApiStatus: ApiSuccess, ScsiStatus: q}
		}
	}

	return CompleteResponse{ApiStatus: ApiSuccess, ScsiStatus: scsi.StatusQuad{Status: scsi.StatusGood, Key: scsi.SenseNoSense}}
}

// firstFailedCompletion maps the first non-success completion through the
// package-level mapStatus function, which SetStatusMapper replaces.
func (p *Pipeline) firstFailedCompletion(entries []nvme.GenericQueueEntryCpl) (scsi.StatusQuad, bool) {
	for i := range entries {
		sc := entries[i].StatusCode()
		sct := entries[i].StatusCodeType()
		if sct == nvme.StatusCodeTypeGeneric && sc == nvme.GenericStatusSuccessfulCompletion {
			continue
		}
		return mapStatus(sct, sc), true
	}
	return scsi.StatusQuad{}, false
}

// mapStatus returns scsi.DefaultQuad until SetStatusMapper replaces it
// (the shim installs statusmap.ToScsi at startup); the indirection keeps
// pipeline from depending on statusmap (statusmap depends only on nvme
// and scsi, so the dependency would be safe, but the indirection keeps
// the codec/pipeline/statusmap dependency graph a tree, matching the
// component diagram in SPEC_FULL.md §2).
var mapStatus = func(sct nvme.StatusCodeType, sc byte) scsi.StatusQuad {
	return scsi.DefaultQuad
}

// SetStatusMapper installs the real C4 mapping function. Called once at
// startup alongside SetAllocCallbacks.
func SetStatusMapper(fn func(sct nvme.StatusCodeType, sc byte) scsi.StatusQuad) {
	mapStatus = fn
}

// Abort is idempotent: it releases all allocations and resets to
// Uninitialized regardless of current state.
func (p *Pipeline) Abort() {
	p.releaseAllocations()
	p.reset()
}

func (p *Pipeline) reset() {
	p.releaseAllocations()
	p.wrapperCount = 0
	p.codec = nil
	p.st = stateUninitialized
}

func (p *Pipeline) releaseAllocations() {
	for i := 0; i < p.allocCount; i++ {
		p.allocations[i].Release()
	}
	p.allocCount = 0
}

// Reserve is how a codec's ToNvme claims the next wrapper/allocation slot.
// It returns ok=false once kMaxCommandRatio slots are already in use.
func (p *Pipeline) Reserve(isAdmin bool) (*NvmeCmdWrapper, *alloc.Allocation, bool) {
	if p.wrapperCount >= kMaxCommandRatio {
		return nil, nil, false
	}
	idx := p.wrapperCount
	p.wrapperCount++
	p.wrappers[idx] = NvmeCmdWrapper{IsAdmin: isAdmin}

	p.allocations[idx] = *alloc.New(p.allocFn, p.deallocFn)
	p.allocCount = p.wrapperCount

	return &p.wrappers[idx], &p.allocations[idx], true
}

// CDB returns the raw CDB bytes Begin was called with (including the
// opcode byte at index 0).
func (p *Pipeline) CDB() []byte { return p.cdb }

// DataOut returns the write-data payload (if any) the host sent alongside
// the CDB, e.g. an UNMAP parameter list.
func (p *Pipeline) DataOut() []byte { return p.dataOut }

// NSID returns the active namespace ID.
func (p *Pipeline) NSID() uint32 { return p.nsid }

// PageSize returns the configured NVMe page size (bytes).
func (p *Pipeline) PageSize() uint32 { return p.pageSize }

// SetAllocLen records the codec's requested transfer length, returned to
// the caller in BeginResponse.AllocLen.
func (p *Pipeline) SetAllocLen(n uint32) { p.allocLen = n }

// AllocationAt returns the allocation bound to the i'th reserved wrapper.
func (p *Pipeline) AllocationAt(i int) *alloc.Allocation {
	if i < 0 || i >= p.allocCount {
		return nil
	}
	return &p.allocations[i]
}
