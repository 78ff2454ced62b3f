package codec

import (
	"github.com/googleinterns/scsi2nvme/nvme"
	"github.com/googleinterns/scsi2nvme/pipeline"
)

// buildReadWrite fills in the LBA/NLB/PRINFO/FUA fields every Read/Write
// variant shares. transferLength is the 1's-based SCSI transfer length
// (the CDB's own field, never zero - callers handle the zero-length no-op
// rule before calling this). The data itself moves through the host's own
// SCSI data buffer, not an Allocator Gateway page: Reserve is called with
// isAdmin=false purely to claim a wrapper slot, and Prp1 is left for the
// shim to fill once it maps that buffer, keeping command construction
// (this engine) separate from DMA setup (the shim around it).
func buildReadWrite(p *pipeline.Pipeline, opcode nvme.NvmOpcode, lba uint64, transferLength uint32, protect uint8, fua bool) pipeline.Result {
	prinfo, result := readWritePrinfo(protect)
	if result != pipeline.Success {
		return result
	}
	if transferLength > 0xffff {
		return pipeline.InvalidInput
	}

	w, _, ok := p.Reserve(false)
	if !ok {
		return pipeline.Failure
	}

	w.Cmd.SetOpcode(opcode)
	w.Cmd.SetNamespaceId(p.NSID())
	w.Cmd.SetStartingLba(lba)
	w.Cmd.SetNumberOfLogicalBlocks(uint16(transferLength))
	w.Cmd.SetPrinfo(prinfo)
	w.Cmd.SetFua(fua)
	w.BufferLen = transferLength // logical blocks; the shim scales by namespace block size

	p.SetAllocLen(0)
	return pipeline.Success
}
