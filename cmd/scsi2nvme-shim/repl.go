package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/googleinterns/scsi2nvme/pipeline"
)

// runRepl reads successive hex-encoded CDBs from in, one per line, and
// prints the simulated translation result for each. It only prompts when
// stdin is an actual terminal (cf. cmdutil.ResolvePassword's term.IsTerminal
// guard before prompting), so piped input stays script-friendly.
func runRepl(out io.Writer, in io.Reader, p *pipeline.Pipeline, id deviceIdentity, nsid uint32, mc *metricCollector) error {
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}

	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, "scsi2nvme> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		cdb, err := hex.DecodeString(line)
		if err != nil {
			fmt.Fprintf(out, "invalid hex CDB: %v\n", err)
			continue
		}

		result := runTranslation(p, id, cdb, nil, nsid)
		if mc != nil && len(cdb) > 0 {
			mc.observe(cdb[0], result.complete.ScsiStatus.Status)
		}
		printResult(out, result)
	}
}

func printResult(out io.Writer, r translationResult) {
	fmt.Fprintf(out, "status=%#02x sense_key=%#02x asc=%#02x ascq=%#02x\n",
		r.complete.ScsiStatus.Status, r.complete.ScsiStatus.Key, r.complete.ScsiStatus.Asc, r.complete.ScsiStatus.Ascq)
	if len(r.inBuffer) > 0 {
		fmt.Fprintf(out, "data=%x\n", trimTrailingZeroes(r.inBuffer))
	}
}

func trimTrailingZeroes(b []byte) []byte {
	i := len(b)
	for i > 0 && b[i-1] == 0 {
		i--
	}
	return b[:i]
}
