package codec

import (
	"github.com/googleinterns/scsi2nvme/nvme"
	"github.com/googleinterns/scsi2nvme/pipeline"
	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/googleinterns/scsi2nvme/wire"
)

// maintenanceInCodec handles MAINTENANCE IN's REPORT SUPPORTED OPERATION
// CODES service action. No NVMe command: this module only ever claims to
// not support the one opcode it's asked about, since a real answer would
// require walking its own dispatch table against the requesting
// initiator's expectations.
type maintenanceInCodec struct{}

func (maintenanceInCodec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.ReportOpCodesCommand
	if !wire.ReadValue(p.CDB()[1:], &cmd) {
		return pipeline.InvalidInput
	}
	if scsi.Naca(cmd.Control()) {
		return pipeline.InvalidInput
	}
	if cmd.ServiceAction() != scsi.ReportSupportedOpCodesAction {
		return pipeline.InvalidInput
	}
	if cmd.ReportingOptions() != 0b001 {
		return pipeline.InvalidInput
	}
	if cmd.RequestedOpCode() != scsi.WriteSame16 {
		return pipeline.InvalidInput
	}
	return pipeline.NoTranslation
}

func (maintenanceInCodec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	resp := scsi.NewOneCommandParamData(0, false)
	copy(inBuffer, resp[:])
	return pipeline.NoTranslation
}
