package codec

import (
	"github.com/googleinterns/scsi2nvme/alloc"
	"github.com/googleinterns/scsi2nvme/nvme"
	"github.com/googleinterns/scsi2nvme/pipeline"
	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/googleinterns/scsi2nvme/wire"
)

// modeSenseRequest is the subset of a ModeSense6/10 CDB both variants'
// codecs normalize to, so ToNvme/ToScsi share one implementation.
type modeSenseRequest struct {
	dbd      bool
	llbaa    bool
	pc       scsi.PageControl
	pageCode scsi.ModePageCode
}

// featureSelectFromPageControl maps PageControl to the GET FEATURES SEL field:
// Current to Current, Changeable to Saved, Default to Default; anything
// else (Saved) has no GET FEATURES equivalent and fails.
func featureSelectFromPageControl(pc scsi.PageControl) (nvme.FeatureSelect, pipeline.Result) {
	switch pc {
	case scsi.PageControlCurrent:
		return nvme.FeatureSelectCurrent, pipeline.Success
	case scsi.PageControlChangeable:
		return nvme.FeatureSelectSaved, pipeline.Success
	case scsi.PageControlDefault:
		return nvme.FeatureSelectDefault, pipeline.Success
	default:
		return 0, pipeline.Failure
	}
}

func needsGetFeatures(pageCode scsi.ModePageCode) bool {
	return pageCode == scsi.ModePageCaching || pageCode == scsi.ModePageAllSupported
}

func modeSenseToNvme(p *pipeline.Pipeline, req modeSenseRequest) pipeline.Result {
	switch req.pageCode {
	case scsi.ModePageCaching, scsi.ModePageControl, scsi.ModePagePowerCondition, scsi.ModePageAllSupported:
	default:
		return pipeline.Failure
	}

	if !req.dbd {
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
		w.Cmd.SetCdw(0, 0) // CNS=0: Identify Namespace
		w.IsAdmin = true
		w.BufferLen = p.PageSize()
	}

	if needsGetFeatures(req.pageCode) {
		sel, result := featureSelectFromPageControl(req.pc)
		if result != pipeline.Success {
			return result
		}
		w, _, ok := p.Reserve(true)
		if !ok {
			return pipeline.Failure
		}
		w.Cmd.SetOpcode(nvme.AdminOpcodeGetFeatures)
		w.Cmd.SetNamespaceId(p.NSID())
		w.Cmd.SetCdw(0, uint32(nvme.FeatureTypeVolatileWriteCache)|(uint32(sel)<<8))
		w.IsAdmin = true
	}

	p.SetAllocLen(0)
	return pipeline.Success
}

// modeSenseToScsi assembles the header/block-descriptor/page-data response
// common to both CDB sizes. It resolves the block descriptor and WCE
// itself from the request and the reserved wrapper order (Identify
// Namespace first unless DBD is set, then Get Features).
func modeSenseToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, req modeSenseRequest) []byte {
	idx := 0
	var ns *nvme.IdentifyNamespaceData
	if !req.dbd {
		a := p.AllocationAt(idx)
		if a != nil && a.DataBase() != 0 {
			ns = (*nvme.IdentifyNamespaceData)(wire.SafePointerCastRead[[4096]byte](wire.BytesAt(a.DataBase(), int(p.PageSize()))))
		}
		idx++
	}

	wce := false
	if needsGetFeatures(req.pageCode) && idx < len(completions) {
		wce = completions[idx].CommandSpecific()&0x01 != 0
	}

	var blockDescriptor []byte
	if !req.dbd && ns != nil {
		lbads := ns.LbafAt(int(ns.Flbas() & 0x0f)).LbaDataSize()
		blockLength := uint32(1) << lbads
		if req.llbaa {
			d := scsi.NewLongLbaBlockDescriptor(ns.Ncap(), blockLength)
			blockDescriptor = d[:]
		} else {
			d := scsi.NewShortLbaBlockDescriptor(uint32(ns.Ncap()), blockLength)
			blockDescriptor = d[:]
		}
	}

	var pageData []byte
	switch req.pageCode {
	case scsi.ModePageCaching:
		pg := scsi.NewCachingModePage()
		pg.SetWce(wce)
		pageData = pg[:]
	case scsi.ModePageControl:
		pg := scsi.NewControlModePage()
		pageData = pg[:]
	case scsi.ModePagePowerCondition:
		pg := scsi.NewPowerConditionModePage()
		pageData = pg[:]
	case scsi.ModePageAllSupported:
		cache := scsi.NewCachingModePage()
		cache.SetWce(wce)
		ctrl := scsi.NewControlModePage()
		power := scsi.NewPowerConditionModePage()
		pageData = append(append(append([]byte{}, cache[:]...), ctrl[:]...), power[:]...)
	}

	return append(blockDescriptor, pageData...)
}

type modeSense6Codec struct{}

func (modeSense6Codec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.ModeSense6Command
	if !wire.ReadValue(p.CDB()[1:], &cmd) {
		return pipeline.InvalidInput
	}
	if scsi.Naca(cmd.Control()) {
		return pipeline.InvalidInput
	}
	return modeSenseToNvme(p, modeSenseRequest{dbd: cmd.Dbd(), pc: cmd.Pc(), pageCode: cmd.PageCode()})
}

func (modeSense6Codec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	var cmd scsi.ModeSense6Command
	wire.ReadValue(p.CDB()[1:], &cmd)
	req := modeSenseRequest{dbd: cmd.Dbd(), pc: cmd.Pc(), pageCode: cmd.PageCode()}

	body := modeSenseToScsi(p, completions, req)

	var hdr scsi.ModeParameter6Header
	blockDescLen := 0
	if !req.dbd {
		blockDescLen = 8
	}
	hdr.SetBlockDescriptorLength(uint8(blockDescLen))
	hdr.SetModeDataLength(uint8(len(hdr) - 1 + len(body)))
	hdr.SetDpofua(true)

	out := append(append([]byte{}, hdr[:]...), body...)
	copy(inBuffer, out)
	return pipeline.Success
}

type modeSense10Codec struct{}

func (modeSense10Codec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.ModeSense10Command
	if !wire.ReadValue(p.CDB()[1:], &cmd) {
		return pipeline.InvalidInput
	}
	if scsi.Naca(cmd.Control()) {
		return pipeline.InvalidInput
	}
	return modeSenseToNvme(p, modeSenseRequest{dbd: cmd.Dbd(), llbaa: cmd.Llbaa(), pc: cmd.Pc(), pageCode: cmd.PageCode()})
}

func (modeSense10Codec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	var cmd scsi.ModeSense10Command
	wire.ReadValue(p.CDB()[1:], &cmd)
	req := modeSenseRequest{dbd: cmd.Dbd(), llbaa: cmd.Llbaa(), pc: cmd.Pc(), pageCode: cmd.PageCode()}

	body := modeSenseToScsi(p, completions, req)

	var hdr scsi.ModeParameter10Header
	blockDescLen := 0
	if !req.dbd {
		if req.llbaa {
			blockDescLen = 16
		} else {
			blockDescLen = 8
		}
	}
	hdr.SetBlockDescriptorLength(uint16(blockDescLen))
	hdr.SetModeDataLength(uint16(len(hdr) - 2 + len(body)))
	hdr.SetDpofua(true)
	hdr.SetLongLba(req.llbaa)

	out := append(append([]byte{}, hdr[:]...), body...)
	copy(inBuffer, out)
	return pipeline.Success
}
