package codec

import (
	"github.com/googleinterns/scsi2nvme/alloc"
	"github.com/googleinterns/scsi2nvme/nvme"
	"github.com/googleinterns/scsi2nvme/pipeline"
	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/googleinterns/scsi2nvme/wire"
)

const maxNamespaceListEntries = 1024

// reportLunsCodec translates REPORT LUNS into a single Identify CNS=2
// namespace-ID-list admin command.
type reportLunsCodec struct{}

func (reportLunsCodec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.ReportLunsCommand
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
	w.Cmd.SetCdw(0, 2) // CNS=2: Namespace ID list
	w.IsAdmin = true
	w.BufferLen = p.PageSize()

	p.SetAllocLen(cmd.AllocLength())
	return pipeline.Success
}

func (reportLunsCodec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	var cmd scsi.ReportLunsCommand
	wire.ReadValue(p.CDB()[1:], &cmd)

	a := p.AllocationAt(0)
	if a == nil || a.DataBase() == 0 {
		return pipeline.Failure
	}
	list := (*nvme.IdentifyNamespaceList)(wire.SafePointerCastRead[[4096]byte](wire.BytesAt(a.DataBase(), int(p.PageSize()))))
	if list == nil {
		return pipeline.Failure
	}

	n := 0
	for ; n < maxNamespaceListEntries; n++ {
		if list.NamespaceId(n) == 0 {
			break
		}
	}

	// Truncate to whatever whole 8-byte LUN entries fit after the 8-byte
	// header in the caller's buffer; list_byte_length still reports the
	// full untruncated count (SPC-4 Table 301's listing convention).
	fit := n
	if avail := (len(inBuffer) - 8) / 8; avail < fit {
		if avail < 0 {
			avail = 0
		}
		fit = avail
	}

	length := wire.BigEndian32(uint32(n * 8))
	if len(inBuffer) >= 4 {
		copy(inBuffer[0:4], length[:])
	}
	for i := 0; i < fit; i++ {
		var lun [8]byte
		b := wire.BigEndian64(uint64(list.NamespaceId(i) - 1))
		copy(lun[:], b[:])
		off := 8 + i*8
		copy(inBuffer[off:off+8], lun[:])
	}

	return pipeline.Success
}
