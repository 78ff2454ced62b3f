package main

import (
	"github.com/googleinterns/scsi2nvme/nvme"
	"github.com/googleinterns/scsi2nvme/pipeline"
	"github.com/googleinterns/scsi2nvme/wire"
)

// translationResult is what the shim prints for one CDB: there's no real
// controller behind this process, so it's also everything a caller would
// need to see that the simulated round trip happened correctly.
type translationResult struct {
	complete pipeline.CompleteResponse
	inBuffer []byte
	sense    []byte
}

// runTranslation drives one CDB through the engine against the simulated
// namespace described by id. Every NVMe command the codec builds is
// answered with a successful completion; Identify and Get Features data
// pages are populated from id before Complete reads them back, standing in
// for the real controller this shim has no hardware for.
func runTranslation(p *pipeline.Pipeline, id deviceIdentity, cdb []byte, dataOut []byte, nsid uint32) translationResult {
	begin := p.Begin(cdb, dataOut, 0, nsid)
	if begin.ApiStatus != pipeline.ApiSuccess {
		p.Abort()
		return translationResult{complete: pipeline.CompleteResponse{ApiStatus: begin.ApiStatus}}
	}

	wrappers := p.GetNvmeWrappers()
	completions := make([]nvme.GenericQueueEntryCpl, len(wrappers))
	for i := range wrappers {
		completions[i].SetStatus(nvme.StatusCodeTypeGeneric, nvme.GenericStatusSuccessfulCompletion)
		populateSimulatedResponse(p, id, i, &wrappers[i], &completions[i])
	}

	inBuffer := make([]byte, pageSize)
	sense := make([]byte, 64)
	complete := p.Complete(completions, inBuffer, sense)
	return translationResult{complete: complete, inBuffer: inBuffer, sense: sense}
}

// populateSimulatedResponse writes a simulated answer into whichever
// channel the codec expects it on: a reserved data page for Identify (id's
// fixture values for CNS=0/1, a one-entry list holding NSID 1 for CNS=2),
// the completion's command-specific dword for Get Features (write cache
// enabled). It stands in for a real namespace answering the command the
// codec built.
func populateSimulatedResponse(p *pipeline.Pipeline, id deviceIdentity, idx int, w *pipeline.NvmeCmdWrapper, cpl *nvme.GenericQueueEntryCpl) {
	if !w.IsAdmin {
		return
	}

	switch w.Cmd.Opcode() {
	case nvme.AdminOpcodeIdentify:
		a := p.AllocationAt(idx)
		if a == nil || a.DataBase() == 0 {
			return
		}
		page := wire.BytesAt(a.DataBase(), int(p.PageSize()))
		switch w.Cmd.Cdw(0) & 0xff {
		case 0: // CNS=0: Identify Namespace
			id.populateNamespace((*nvme.IdentifyNamespaceData)(wire.SafePointerCastWrite[[4096]byte](page)))
		case 1: // CNS=1: Identify Controller
			id.populateController((*nvme.IdentifyControllerData)(wire.SafePointerCastWrite[[4096]byte](page)))
		case 2: // CNS=2: Namespace ID list
			list := (*nvme.IdentifyNamespaceList)(wire.SafePointerCastWrite[[4096]byte](page))
			list.SetNamespaceId(0, 1)
		}
	case nvme.AdminOpcodeGetFeatures:
		cpl.SetCommandSpecific(0x01) // volatile write cache enabled
	}
}
