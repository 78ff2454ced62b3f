package codec

import (
	"github.com/googleinterns/scsi2nvme/nvme"
	"github.com/googleinterns/scsi2nvme/pipeline"
	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/googleinterns/scsi2nvme/wire"
)

// buildVerify mirrors buildReadWrite but derives PRINFO from the
// BYTCHK-branching table instead of the plain Read/Write one.
func buildVerify(p *pipeline.Pipeline, lba uint64, length uint32, vrprotect uint8, bytchk uint8) pipeline.Result {
	if length == 0 {
		return pipeline.NoTranslation
	}
	if length > 0xffff {
		return pipeline.InvalidInput
	}
	prinfo, result := verifyPrinfo(vrprotect, bytchk != 0)
	if result != pipeline.Success {
		return result
	}

	w, _, ok := p.Reserve(false)
	if !ok {
		return pipeline.Failure
	}
	w.Cmd.SetOpcode(nvme.NvmOpcodeCompare)
	w.Cmd.SetNamespaceId(p.NSID())
	w.Cmd.SetStartingLba(lba)
	w.Cmd.SetNumberOfLogicalBlocks(uint16(length))
	w.Cmd.SetPrinfo(prinfo)
	w.BufferLen = length

	p.SetAllocLen(0)
	return pipeline.Success
}

type verify10Codec struct{}

func (verify10Codec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.Verify10Command
	if !wire.ReadValue(p.CDB()[1:], &cmd) {
		return pipeline.InvalidInput
	}
	if scsi.Naca(cmd.Control()) {
		return pipeline.InvalidInput
	}
	return buildVerify(p, uint64(cmd.LogicalBlockAddress()), uint32(cmd.VerificationLength()), cmd.VrProtect(), cmd.Bytchk())
}

func (verify10Codec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	return pipeline.Success
}

type verify12Codec struct{}

func (verify12Codec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.Verify12Command
	if !wire.ReadValue(p.CDB()[1:], &cmd) {
		return pipeline.InvalidInput
	}
	if scsi.Naca(cmd.Control()) {
		return pipeline.InvalidInput
	}
	return buildVerify(p, uint64(cmd.LogicalBlockAddress()), cmd.VerificationLength(), cmd.VrProtect(), cmd.Bytchk())
}

func (verify12Codec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	return pipeline.Success
}

type verify16Codec struct{}

func (verify16Codec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.Verify16Command
	if !wire.ReadValue(p.CDB()[1:], &cmd) {
		return pipeline.InvalidInput
	}
	if scsi.Naca(cmd.Control()) {
		return pipeline.InvalidInput
	}
	return buildVerify(p, cmd.LogicalBlockAddress(), cmd.VerificationLength(), cmd.VrProtect(), cmd.Bytchk())
}

func (verify16Codec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	return pipeline.Success
}
