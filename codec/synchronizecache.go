package codec

import (
	"github.com/googleinterns/scsi2nvme/nvme"
	"github.com/googleinterns/scsi2nvme/pipeline"
	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/googleinterns/scsi2nvme/wire"
)

// synchronizeCache10Codec/synchronizeCache16Codec translate SYNCHRONIZE
// CACHE into a single Flush I/O command that carries no LBA range of its
// own (NVMe Base Spec §5.19): the whole namespace is flushed regardless of
// the CDB's (advisory) LBA/count fields.
type synchronizeCache10Codec struct{}

func (synchronizeCache10Codec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.SynchronizeCache10Command
	if !wire.ReadValue(p.CDB()[1:], &cmd) {
		return pipeline.InvalidInput
	}
	if scsi.Naca(cmd.Control()) {
		return pipeline.InvalidInput
	}
	return buildFlush(p)
}

func (synchronizeCache10Codec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	return pipeline.Success
}

type synchronizeCache16Codec struct{}

func (synchronizeCache16Codec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.SynchronizeCache16Command
	if !wire.ReadValue(p.CDB()[1:], &cmd) {
		return pipeline.InvalidInput
	}
	if scsi.Naca(cmd.Control()) {
		return pipeline.InvalidInput
	}
	return buildFlush(p)
}

func (synchronizeCache16Codec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	return pipeline.Success
}

func buildFlush(p *pipeline.Pipeline) pipeline.Result {
	w, _, ok := p.Reserve(false)
	if !ok {
		return pipeline.Failure
	}
	w.Cmd.SetOpcode(nvme.NvmOpcodeFlush)
	w.Cmd.SetNamespaceId(p.NSID())
	p.SetAllocLen(0)
	return pipeline.Success
}
