package codec

import (
	"github.com/googleinterns/scsi2nvme/nvme"
	"github.com/googleinterns/scsi2nvme/pipeline"
	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/googleinterns/scsi2nvme/wire"
)

type read6Codec struct{}

func (read6Codec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.Read6Command
	if !wire.ReadValue(p.CDB()[1:], &cmd) {
		return pipeline.InvalidInput
	}
	if scsi.Naca(cmd.Control()) {
		return pipeline.InvalidInput
	}
	length := uint32(cmd.TransferLength())
	if length == 0 {
		length = 256 // Read6's zero-length convention (SBC-3 Table 96).
	}
	return buildReadWrite(p, nvme.NvmOpcodeRead, uint64(cmd.LogicalBlockAddress()), length, 0, false)
}

func (read6Codec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	return pipeline.Success
}

type read10Codec struct{}

func (read10Codec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.Read10Command
	if !wire.ReadValue(p.CDB()[1:], &cmd) {
		return pipeline.InvalidInput
	}
	if scsi.Naca(cmd.Control()) {
		return pipeline.InvalidInput
	}
	if cmd.TransferLength() == 0 {
		return pipeline.NoTranslation
	}
	return buildReadWrite(p, nvme.NvmOpcodeRead, uint64(cmd.LogicalBlockAddress()), uint32(cmd.TransferLength()), cmd.RdProtect(), cmd.Fua())
}

func (read10Codec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	return pipeline.Success
}

type read12Codec struct{}

func (read12Codec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.Read12Command
	if !wire.ReadValue(p.CDB()[1:], &cmd) {
		return pipeline.InvalidInput
	}
	if scsi.Naca(cmd.Control()) {
		return pipeline.InvalidInput
	}
	if cmd.TransferLength() == 0 {
		return pipeline.NoTranslation
	}
	if cmd.TransferLength() > 0xffff {
		return pipeline.InvalidInput
	}
	return buildReadWrite(p, nvme.NvmOpcodeRead, uint64(cmd.LogicalBlockAddress()), cmd.TransferLength(), cmd.RdProtect(), cmd.Fua())
}

func (read12Codec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	return pipeline.Success
}

type read16Codec struct{}

func (read16Codec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.Read16Command
	if !wire.ReadValue(p.CDB()[1:], &cmd) {
		return pipeline.InvalidInput
	}
	if scsi.Naca(cmd.Control()) {
		return pipeline.InvalidInput
	}
	if cmd.TransferLength() == 0 {
		return pipeline.NoTranslation
	}
	if cmd.TransferLength() > 0xffff {
		return pipeline.InvalidInput
	}
	return buildReadWrite(p, nvme.NvmOpcodeRead, cmd.LogicalBlockAddress(), cmd.TransferLength(), cmd.RdProtect(), cmd.Fua())
}

func (read16Codec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	return pipeline.Success
}
