package codec

import (
	"github.com/googleinterns/scsi2nvme/nvme"
	"github.com/googleinterns/scsi2nvme/pipeline"
	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/googleinterns/scsi2nvme/wire"
)

// supportedLogPages is the fixed SupportedLogPages response: this module
// has no real log infrastructure behind it, so LOG SENSE only ever
// advertises the page-code list, never page contents.
var supportedLogPages = []byte{
	0x00, // SupportedLogPages
	0x0d, // Temperature
	0x11, // SolidStateMedia
	0x2f, // InformationalExceptions
}

type logSenseCodec struct{}

func (logSenseCodec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.LogSenseCommand
	if !wire.ReadValue(p.CDB()[1:], &cmd) {
		return pipeline.InvalidInput
	}
	if scsi.Naca(cmd.Control()) {
		return pipeline.InvalidInput
	}
	if cmd.PageCode() != 0x00 {
		return pipeline.InvalidInput
	}
	return pipeline.NoTranslation
}

func (logSenseCodec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	header := [4]byte{0x00, 0x00, 0x00, byte(len(supportedLogPages))}
	resp := append(append([]byte{}, header[:]...), supportedLogPages...)
	n := len(resp)
	if n > len(inBuffer) {
		n = len(inBuffer)
	}
	copy(inBuffer[:n], resp[:n])
	return pipeline.NoTranslation
}
