package codec

import (
	"github.com/googleinterns/scsi2nvme/nvme"
	"github.com/googleinterns/scsi2nvme/pipeline"
	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/googleinterns/scsi2nvme/wire"
)

// modeSelectRequest is the subset of a MODE SELECT(6)/(10) CDB both
// variants' codecs normalize to.
type modeSelectRequest struct {
	pf bool
	sp bool
}

// modeSelectToNvme validates the CDB and the transferred mode-page data
// against the one page this engine ever reports from MODE SENSE, the
// static Caching page. There is no persisted mode state to update, so a
// correct MODE SELECT is accepted without ever reaching NVMe (the engine
// already reflects whatever the caller just echoed back) and anything
// else is rejected outright.
func modeSelectToNvme(p *pipeline.Pipeline, req modeSelectRequest, hdrLen int) pipeline.Result {
	if !req.pf || req.sp {
		return pipeline.InvalidInput
	}

	data := p.DataOut()
	if len(data) == 0 {
		return pipeline.NoTranslation
	}
	if len(data) < hdrLen {
		return pipeline.InvalidInput
	}

	var blockDescLen int
	if hdrLen == 4 {
		var hdr scsi.ModeParameter6Header
		wire.ReadValue(data, &hdr)
		blockDescLen = int(hdr.BlockDescriptorLength())
	} else {
		var hdr scsi.ModeParameter10Header
		wire.ReadValue(data, &hdr)
		blockDescLen = int(hdr.BlockDescriptorLength())
	}

	pageOffset := hdrLen + blockDescLen
	if len(data) < pageOffset+2 {
		return pipeline.InvalidInput
	}
	page := data[pageOffset:]
	pageCode := scsi.ModePageCode(page[0] & 0x3f)
	if pageCode != scsi.ModePageCaching {
		return pipeline.InvalidInput
	}

	want := scsi.NewCachingModePage()
	if len(page) < len(want) {
		return pipeline.InvalidInput
	}
	got := page[:len(want)]
	for i := range want {
		if i == 2 {
			// byte 2 bit 2 carries WCE; this engine has no persisted
			// cache-enable state of its own to compare against, so either
			// value is accepted.
			if got[i]&^0x04 != want[i]&^0x04 {
				return pipeline.InvalidInput
			}
			continue
		}
		if got[i] != want[i] {
			return pipeline.InvalidInput
		}
	}
	return pipeline.NoTranslation
}

type modeSelect6Codec struct{}

func (modeSelect6Codec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.ModeSelect6Command
	if !wire.ReadValue(p.CDB()[1:], &cmd) {
		return pipeline.InvalidInput
	}
	if scsi.Naca(cmd.Control()) {
		return pipeline.InvalidInput
	}
	return modeSelectToNvme(p, modeSelectRequest{pf: cmd.Pf(), sp: cmd.Sp()}, 4)
}

func (modeSelect6Codec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	return pipeline.NoTranslation
}

type modeSelect10Codec struct{}

func (modeSelect10Codec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.ModeSelect10Command
	if !wire.ReadValue(p.CDB()[1:], &cmd) {
		return pipeline.InvalidInput
	}
	if scsi.Naca(cmd.Control()) {
		return pipeline.InvalidInput
	}
	return modeSelectToNvme(p, modeSelectRequest{pf: cmd.Pf(), sp: cmd.Sp()}, 8)
}

func (modeSelect10Codec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	return pipeline.NoTranslation
}
