package codec

import (
	"testing"

	"github.com/googleinterns/scsi2nvme/nvme"
	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/googleinterns/scsi2nvme/wire"
	"github.com/stretchr/testify/assert"
)

func TestUnmapSingleDescriptor(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	dataOut := make([]byte, 8+16)
	blockDataLen := wire.BigEndian16(16)
	copy(dataOut[2:4], blockDataLen[:])
	lba := wire.BigEndian64(42)
	copy(dataOut[8:16], lba[:])
	nlb := wire.BigEndian32(7)
	copy(dataOut[16:20], nlb[:])

	cdb := []byte{scsi.Unmap, 0, 0, 0, 0, 0, 0, 0, 24, 0}
	p.Begin(cdb, dataOut, 0, 1)

	wrappers := p.GetNvmeWrappers()
	assert.Len(wrappers, 1)
	assert.Equal(nvme.NvmOpcodeDatasetManagement, wrappers[0].Cmd.Opcode())
	assert.Equal(uint32(0), wrappers[0].Cmd.Cdw(0)) // NR = count-1 = 0

	a := p.AllocationAt(0)
	ranges := wire.BytesAt(a.DataBase(), 16)
	var r nvme.DatasetManagementRange
	wire.ReadValue(ranges, &r)
	assert.Equal(uint64(42), r.StartingLba())
	assert.Equal(uint32(7), r.LengthInLogicalBlocks())
}

func TestUnmapAnchorIsNoTranslation(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := []byte{scsi.Unmap, 0x01, 0, 0, 0, 0, 0, 0, 0, 0}
	resp := p.Begin(cdb, nil, 0, 1)
	assert.Equal(0, int(resp.ApiStatus))
	assert.Len(p.GetNvmeWrappers(), 0)

	complete := p.Complete(nil, nil, make([]byte, 8))
	assert.Equal(scsi.StatusGood, complete.ScsiStatus.Status)
}
