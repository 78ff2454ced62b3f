// Package codec implements the Per-Command Codecs (C5): one ToNvme/ToScsi
// pair per supported SCSI opcode, each a pair of pure functions
// parameterized by the pipeline they're called through.
package codec

import "github.com/googleinterns/scsi2nvme/pipeline"

// readWritePrinfo derives the 4-bit NVMe PRINFO field from a Read/Write
// CDB's 3-bit RDPROTECT/WRPROTECT field.
func readWritePrinfo(protect uint8) (prinfo uint8, result pipeline.Result) {
	switch protect {
	case 0b000:
		return (1 << 3) | 0b111, pipeline.Success
	case 0b001, 0b101:
		return 0b111, pipeline.Success
	case 0b010:
		return 0b011, pipeline.Success
	case 0b011:
		return 0b000, pipeline.Success
	case 0b100:
		return 0b100, pipeline.Success
	default: // 0b110, 0b111
		return 0, pipeline.InvalidInput
	}
}

// verifyPrinfo derives PRINFO for the Verify codec: PRACT (bit 3) is always
// set, and the PRCHK bits depend on BYTCHK and VRPROTECT.
func verifyPrinfo(vrprotect uint8, bytchk bool) (prinfo uint8, result pipeline.Result) {
	if !bytchk {
		base, res := readWritePrinfo(vrprotect)
		if res != pipeline.Success {
			return 0, res
		}
		return base | 0b1000, pipeline.Success
	}
	if vrprotect == 0b000 {
		return 0b1000 | 0b111, pipeline.Success
	}
	return 0b1000, pipeline.Success
}
