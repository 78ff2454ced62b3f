package codec

import (
	"github.com/googleinterns/scsi2nvme/nvme"
	"github.com/googleinterns/scsi2nvme/pipeline"
	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/googleinterns/scsi2nvme/wire"
)

type write6Codec struct{}

func (write6Codec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.Write6Command
	if !wire.ReadValue(p.CDB()[1:], &cmd) {
		return pipeline.InvalidInput
	}
	if scsi.Naca(cmd.Control()) {
		return pipeline.InvalidInput
	}
	length := uint32(cmd.TransferLength())
	if length == 0 {
		length = 256
	}
	return buildReadWrite(p, nvme.NvmOpcodeWrite, uint64(cmd.LogicalBlockAddress()), length, 0, false)
}

func (write6Codec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	return pipeline.Success
}

type write10Codec struct{}

func (write10Codec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.Write10Command
	if !wire.ReadValue(p.CDB()[1:], &cmd) {
		return pipeline.InvalidInput
	}
	if scsi.Naca(cmd.Control()) {
		return pipeline.InvalidInput
	}
	if cmd.TransferLength() == 0 {
		return pipeline.NoTranslation
	}
	return buildReadWrite(p, nvme.NvmOpcodeWrite, uint64(cmd.LogicalBlockAddress()), uint32(cmd.TransferLength()), cmd.WrProtect(), cmd.Fua())
}

func (write10Codec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	return pipeline.Success
}

type write12Codec struct{}

func (write12Codec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.Write12Command
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
	return buildReadWrite(p, nvme.NvmOpcodeWrite, uint64(cmd.LogicalBlockAddress()), cmd.TransferLength(), cmd.WrProtect(), cmd.Fua())
}

func (write12Codec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	return pipeline.Success
}

type write16Codec struct{}

func (write16Codec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.Write16Command
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
	return buildReadWrite(p, nvme.NvmOpcodeWrite, cmd.LogicalBlockAddress(), cmd.TransferLength(), cmd.WrProtect(), cmd.Fua())
}

func (write16Codec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	return pipeline.Success
}
