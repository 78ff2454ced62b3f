package codec

import (
	"github.com/googleinterns/scsi2nvme/nvme"
	"github.com/googleinterns/scsi2nvme/pipeline"
	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/googleinterns/scsi2nvme/wire"
)

// testUnitReadyCodec needs no NVMe round trip: readiness is reported
// directly from the CDB's validity.
type testUnitReadyCodec struct{}

func (testUnitReadyCodec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.TestUnitReadyCommand
	if !wire.ReadValue(p.CDB()[1:], &cmd) {
		return pipeline.InvalidInput
	}
	if scsi.Naca(cmd.Control()) {
		return pipeline.InvalidInput
	}
	return pipeline.NoTranslation
}

func (testUnitReadyCodec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	return pipeline.NoTranslation
}
