package codec

import (
	"github.com/googleinterns/scsi2nvme/alloc"
	"github.com/googleinterns/scsi2nvme/nvme"
	"github.com/googleinterns/scsi2nvme/pipeline"
	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/googleinterns/scsi2nvme/wire"
)

const maxUnmapDescriptors = 256

// unmapCodec translates UNMAP into a single Admin Dataset-Management
// command: one DatasetManagementRange per SCSI block descriptor, AD=1
// (deallocate).
type unmapCodec struct{}

func (unmapCodec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.UnmapCommand
	if !wire.ReadValue(p.CDB()[1:], &cmd) {
		return pipeline.InvalidInput
	}
	if scsi.Naca(cmd.Control()) {
		return pipeline.InvalidInput
	}
	if cmd.Anchor() {
		return pipeline.NoTranslation
	}

	var list scsi.UnmapParamList
	if !wire.ReadValue(p.DataOut(), &list) {
		return pipeline.InvalidInput
	}
	blockDataLen := list.BlockDescriptorDataLength()
	if blockDataLen == 0 || blockDataLen%16 != 0 {
		return pipeline.InvalidInput
	}
	count := int(blockDataLen / 16)
	if count > maxUnmapDescriptors {
		return pipeline.InvalidInput
	}
	descStart := 8
	if len(p.DataOut()) < descStart+count*16 {
		return pipeline.InvalidInput
	}

	w, a, ok := p.Reserve(true)
	if !ok {
		return pipeline.Failure
	}
	if a.SetPages(p.PageSize(), 1, 0) != alloc.Success {
		return pipeline.Failure
	}

	ranges := wire.BytesAt(a.DataBase(), int(p.PageSize()))
	for i := 0; i < count; i++ {
		var desc scsi.UnmapBlockDescriptor
		off := descStart + i*16
		wire.ReadValue(p.DataOut()[off:], &desc)

		var r nvme.DatasetManagementRange
		r.SetStartingLba(desc.LogicalBlockAddress())
		r.SetLengthInLogicalBlocks(desc.NumberOfLogicalBlocks())
		wire.WriteValue(&r, ranges[i*16:])
	}

	w.Cmd.SetOpcode(nvme.NvmOpcodeDatasetManagement)
	w.Cmd.SetNamespaceId(p.NSID())
	w.Cmd.SetPrp1(a.DataBase())
	w.Cmd.SetCdw(0, uint32(count-1)) // NR, 0's based range count
	w.Cmd.SetCdw(1, 0x00000004)      // AD (cdw11 bit 2)
	w.IsAdmin = true
	w.BufferLen = p.PageSize()

	p.SetAllocLen(0)
	return pipeline.Success
}

func (unmapCodec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	return pipeline.Success
}
