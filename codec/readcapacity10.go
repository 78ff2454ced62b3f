package codec

import (
	"github.com/googleinterns/scsi2nvme/alloc"
	"github.com/googleinterns/scsi2nvme/nvme"
	"github.com/googleinterns/scsi2nvme/pipeline"
	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/googleinterns/scsi2nvme/wire"
)

// readCapacity10Codec translates READ CAPACITY(10) into a single Admin
// Identify-Namespace command.
type readCapacity10Codec struct{}

func (readCapacity10Codec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.ReadCapacity10Command
	if !wire.ReadValue(p.CDB()[1:], &cmd) {
		return pipeline.InvalidInput
	}
	if scsi.Naca(cmd.Control()) {
		return pipeline.InvalidInput
	}

	w, a, ok := p.Reserve(true)
	if !ok {
		return pipeline.Failure
	}
	if a.SetPages(p.PageSize(), 1, 0) != alloc.Success {
		return pipeline.Failure
	}

	w.Cmd.SetOpcode(nvme.AdminOpcodeIdentify)
	w.Cmd.SetNamespaceId(p.NSID())
	w.Cmd.SetPrp1(a.DataBase())
	w.Cmd.SetCdw(0, 0) // CNS=0: Identify Namespace
	w.IsAdmin = true
	w.BufferLen = p.PageSize()

	p.SetAllocLen(8)
	return pipeline.Success
}

func (readCapacity10Codec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	allocation := p.AllocationAt(0)
	if allocation == nil || allocation.DataBase() == 0 {
		return pipeline.Failure
	}
	ns := (*nvme.IdentifyNamespaceData)(wire.SafePointerCastRead[[4096]byte](wire.BytesAt(allocation.DataBase(), int(p.PageSize()))))
	if ns == nil {
		return pipeline.Failure
	}

	lbads := ns.LbafAt(int(ns.Flbas() & 0x0f)).LbaDataSize()
	blockLength := uint32(1) << lbads
	if blockLength < 512 || blockLength > (1<<31) {
		return pipeline.Failure
	}

	var lastLba uint64
	if nsze := ns.Nsze(); nsze > 0 {
		lastLba = nsze - 1
	}
	var returnedLba uint32
	if lastLba > 0xffffffff {
		returnedLba = 0xffffffff
	} else {
		returnedLba = uint32(lastLba)
	}

	resp := scsi.NewReadCapacity10Data(returnedLba, blockLength)
	if !wire.WriteValue(resp, inBuffer) {
		return pipeline.Failure
	}
	return pipeline.Success
}
