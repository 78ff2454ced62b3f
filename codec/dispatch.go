package codec

import (
	"github.com/googleinterns/scsi2nvme/pipeline"
	"github.com/googleinterns/scsi2nvme/scsi"
)

// table maps every supported SCSI opcode to its codec singleton. Codecs
// are stateless (struct{}), so one instance per opcode is shared across
// every Pipeline.
var table = map[scsi.OpCode]pipeline.Codec{
	scsi.TestUnitReady:      testUnitReadyCodec{},
	scsi.RequestSense:       requestSenseCodec{},
	scsi.Inquiry:            inquiryCodec{},
	scsi.ReadCapacity10:     readCapacity10Codec{},
	scsi.Read6:              read6Codec{},
	scsi.Read10:             read10Codec{},
	scsi.Read12:             read12Codec{},
	scsi.Read16:             read16Codec{},
	scsi.Write6:             write6Codec{},
	scsi.Write10:            write10Codec{},
	scsi.Write12:            write12Codec{},
	scsi.Write16:            write16Codec{},
	scsi.Verify10:           verify10Codec{},
	scsi.Verify12:           verify12Codec{},
	scsi.Verify16:           verify16Codec{},
	scsi.SynchronizeCache10: synchronizeCache10Codec{},
	scsi.SynchronizeCache16: synchronizeCache16Codec{},
	scsi.ModeSense6:         modeSense6Codec{},
	scsi.ModeSense10:        modeSense10Codec{},
	scsi.ModeSelect6:        modeSelect6Codec{},
	scsi.ModeSelect10:       modeSelect10Codec{},
	scsi.ReportLuns:         reportLunsCodec{},
	scsi.Unmap:              unmapCodec{},
	scsi.MaintenanceIn:      maintenanceInCodec{},
	scsi.LogSense:           logSenseCodec{},
}

// Lookup implements pipeline.CodecLookup: the single entry point the shim
// binds into every Pipeline it constructs.
func Lookup(opcode scsi.OpCode) (pipeline.Codec, bool) {
	c, ok := table[opcode]
	return c, ok
}
