package codec

import (
	"github.com/googleinterns/scsi2nvme/alloc"
	"github.com/googleinterns/scsi2nvme/nvme"
	"github.com/googleinterns/scsi2nvme/pipeline"
	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/googleinterns/scsi2nvme/wire"
)

// inquiryCodec translates INQUIRY into an Identify-Controller plus an
// Identify-Namespace admin command: the standard inquiry page and most VPD
// pages need controller-wide fields, Unit Serial Number additionally needs
// the namespace identifier.
type inquiryCodec struct{}

func (inquiryCodec) ToNvme(p *pipeline.Pipeline) pipeline.Result {
	var cmd scsi.InquiryCommand
	if !wire.ReadValue(p.CDB()[1:], &cmd) {
		return pipeline.InvalidInput
	}
	if scsi.Naca(cmd.Control()) {
		return pipeline.InvalidInput
	}
	if !cmd.Evpd() && cmd.PageCode() != 0 {
		return pipeline.InvalidInput
	}

	for _, op := range []byte{nvme.AdminOpcodeIdentify, nvme.AdminOpcodeIdentify} {
		w, a, ok := p.Reserve(true)
		if !ok {
			return pipeline.Failure
		}
		if a.SetPages(p.PageSize(), 1, 0) != alloc.Success {
			return pipeline.Failure
		}
		w.Cmd.SetOpcode(op)
		w.Cmd.SetNamespaceId(p.NSID())
		w.Cmd.SetPrp1(a.DataBase())
		w.IsAdmin = true
		w.BufferLen = p.PageSize()
	}
	// wrapper 0: Identify Controller (CNS=1); wrapper 1: Identify Namespace (CNS=0).
	wrappers := p.GetNvmeWrappers()
	wrappers[0].Cmd.SetCdw(0, 1)
	wrappers[1].Cmd.SetCdw(0, 0)

	p.SetAllocLen(uint32(cmd.AllocationLength()))
	return pipeline.Success
}

func (inquiryCodec) ToScsi(p *pipeline.Pipeline, completions []nvme.GenericQueueEntryCpl, inBuffer []byte) pipeline.Result {
	var cmd scsi.InquiryCommand
	wire.ReadValue(p.CDB()[1:], &cmd)

	ctrlAlloc := p.AllocationAt(0)
	nsAlloc := p.AllocationAt(1)
	if ctrlAlloc == nil || nsAlloc == nil {
		return pipeline.Failure
	}
	ctrl := (*nvme.IdentifyControllerData)(wire.SafePointerCastRead[[4096]byte](wire.BytesAt(ctrlAlloc.DataBase(), int(p.PageSize()))))
	ns := (*nvme.IdentifyNamespaceData)(wire.SafePointerCastRead[[4096]byte](wire.BytesAt(nsAlloc.DataBase(), int(p.PageSize()))))
	if ctrl == nil || ns == nil {
		return pipeline.Failure
	}

	if !cmd.Evpd() {
		resp := scsi.NewInquiryData()
		resp.SetVendorId("NVMe")
		resp.SetProductId(string(ctrl.ModelNumber()[:16]))
		resp.SetProductRevision(ctrlFirmwareRevision(ctrl))
		resp.SetProtect(nvme.DpsProtectionType(ns.Dps()) != 0 || nvme.DpsMetadataAtStart(ns.Dps()))
		return writeTruncated(resp[:], inBuffer, cmd.AllocationLength())
	}

	switch cmd.PageCode() {
	case scsi.PageCodeSupportedVpd:
		v := &scsi.SupportedVpdPages{Pages: []scsi.PageCode{
			scsi.PageCodeSupportedVpd,
			scsi.PageCodeUnitSerialNumber,
			scsi.PageCodeDeviceIdentification,
			scsi.PageCodeExtendedInquiry,
			scsi.PageCodeBlockLimits,
			scsi.PageCodeBlockDeviceCharacteristics,
			scsi.PageCodeLogicalBlockProvisioning,
		}}
		return writeTruncated(v.Marshal(), inBuffer, cmd.AllocationLength())

	case scsi.PageCodeUnitSerialNumber:
		serial := unitSerial(p.NSID())
		v := &scsi.UnitSerialNumberVpd{Serial: serial}
		return writeTruncated(v.Marshal(), inBuffer, cmd.AllocationLength())

	case scsi.PageCodeExtendedInquiry:
		v := scsi.NewExtendedInquiryDataVpd()
		return writeTruncated(v[:], inBuffer, cmd.AllocationLength())

	case scsi.PageCodeBlockDeviceCharacteristics:
		v := scsi.NewBlockDeviceCharacteristicsVpd()
		return writeTruncated(v[:], inBuffer, cmd.AllocationLength())

	case scsi.PageCodeLogicalBlockProvisioning:
		v := scsi.NewLogicalBlockProvisioningVpd()
		v.SetLbpu(true)
		return writeTruncated(v[:], inBuffer, cmd.AllocationLength())

	case scsi.PageCodeBlockLimits:
		v := scsi.NewBlockLimitsVpd()
		v.SetMaxUnmapLbaCount(0xffffffff)
		v.SetMaxUnmapBlockDescriptorCount(1)
		return writeTruncated(v[:], inBuffer, cmd.AllocationLength())

	case scsi.PageCodeDeviceIdentification:
		// Reported as supported-pages but not yet populated: every
		// identifier NVMe can provide (NGUID, EUI64) is an optional
		// Identify-Namespace Vendor-Specific field this truncated
		// IdentifyNamespaceData view doesn't carry.
		return pipeline.NoTranslation

	default:
		return pipeline.InvalidInput
	}
}

// ctrlFirmwareRevision extracts the last 4 ASCII-graphic, non-space bytes
// of the controller's firmware revision, scanning right-to-left and
// emitting left-to-right (e.g. "a bc   d" -> "abcd"): firmware revision
// strings are space-padded, and the padding is skipped rather than copied
// into the four-character product revision field.
func ctrlFirmwareRevision(ctrl *nvme.IdentifyControllerData) string {
	fr := ctrl.FirmwareRevision()
	out := make([]byte, 0, 4)
	for i := len(fr) - 1; i >= 0 && len(out) < 4; i-- {
		c := fr[i]
		if c >= 0x21 && c <= 0x7e {
			out = append(out, c)
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// unitSerial derives a VPD page 0x80 serial number from the namespace ID,
// since this module's truncated IdentifyNamespaceData doesn't carry the
// NGUID/EUI64 fields a real device would prefer.
func unitSerial(nsid uint32) []byte {
	b := wire.BigEndian32(nsid)
	return []byte{
		hexDigit(b[0] >> 4), hexDigit(b[0] & 0xf),
		hexDigit(b[1] >> 4), hexDigit(b[1] & 0xf),
		hexDigit(b[2] >> 4), hexDigit(b[2] & 0xf),
		hexDigit(b[3] >> 4), hexDigit(b[3] & 0xf),
	}
}

func hexDigit(n byte) byte {
	if n < 10 {
		return '0' + n
	}
	return 'a' + (n - 10)
}

// writeTruncated copies at most allocLen bytes of data into dst (SPC-4
// §4.3.5.6's "data-in buffer shorter than the response" truncation rule).
func writeTruncated(data []byte, dst []byte, allocLen uint16) pipeline.Result {
	n := len(data)
	if int(allocLen) < n {
		n = int(allocLen)
	}
	if n > len(dst) {
		n = len(dst)
	}
	copy(dst[:n], data[:n])
	return pipeline.Success
}
