package codec

import (
	"github.com/googleinterns/scsi2nvme/nvme"
	"github.com/googleinterns/scsi2nvme/pipeline"
	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/googleinterns/scsi2nvme/wire"
)

// requestSenseCodec never reaches NVMe: this module is stateless across
// commands, so REQUEST SENSE always reports "no sense" rather than
// replaying a previous command's failure.
type requestSenseCodec struct{}

func (requestSenseCodec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.RequestSenseCommand
	if !wire.ReadValue(p.CDB()[1:], &cmd) {
		return pipeline.InvalidInput
	}
	if scsi.Naca(cmd.Control()) {
		return pipeline.InvalidInput
	}
	return pipeline.NoTranslation
}

func (requestSenseCodec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	var cmd scsi.RequestSenseCommand
	wire.ReadValue(p.CDB()[1:], &cmd)

	noSense := scsi.StatusQuad{Status: scsi.StatusGood, Key: scsi.SenseNoSense, Asc: scsi.AscNoAdditionalSenseInfo, Ascq: scsi.AscqNoAdditionalSenseInfo}

	if cmd.Desc() {
		resp := scsi.NewDescriptorFormatSenseData(noSense)
		return writeTruncated(resp[:], inBuffer, uint16(cmd.AllocationLength()))
	}
	resp := scsi.NewFixedFormatSenseData(noSense)
	return writeTruncated(resp[:], inBuffer, uint16(cmd.AllocationLength()))
}
