// Command scsi2nvme-shim demonstrates the translation engine end to end
// against a simulated NVMe namespace: there is no real controller behind
// it, so Identify answers come from a YAML device-identity fixture instead
// of hardware, and Get Features always reports the volatile write cache as
// enabled.
package main

import (
	"github.com/alecthomas/kong"

	"github.com/googleinterns/scsi2nvme/codec"
	"github.com/googleinterns/scsi2nvme/pipeline"
	"github.com/googleinterns/scsi2nvme/statusmap"
)

const (
	programName = "scsi2nvme-shim"
	programDesc = "Translate SCSI CDBs into NVMe commands against a simulated namespace"
	pageSize    = 4096
)

// context is the kong run context; the shim has no shared state that
// outlives a single command invocation.
type context struct{}

type translateCmd struct {
	CDB      string `arg:"" help:"Hex-encoded SCSI CDB, e.g. 28000000000000000100"`
	DataOut  string `flag:"" optional:"" help:"Hex-encoded write-data payload, e.g. an UNMAP parameter list"`
	Identity string `flag:"" optional:"" type:"path" help:"YAML device-identity fixture"`
	Nsid     uint32 `flag:"" default:"1" help:"Namespace ID"`
}

type replCmd struct {
	Identity string `flag:"" optional:"" type:"path" help:"YAML device-identity fixture"`
	Nsid     uint32 `flag:"" default:"1" help:"Namespace ID"`
}

type serveCmd struct {
	Addr     string `flag:"" default:":9115" help:"Listen address for the /metrics endpoint"`
	Identity string `flag:"" optional:"" type:"path" help:"YAML device-identity fixture"`
	Nsid     uint32 `flag:"" default:"1" help:"Namespace ID"`
}

var cli struct {
	Translate translateCmd `cmd:"" help:"Translate a single CDB and print the resulting SCSI status and data"`
	Repl      replCmd      `cmd:"" help:"Interactively translate successive hex-encoded CDBs read from stdin"`
	Serve     serveCmd     `cmd:"" help:"Translate CDBs read from stdin while exposing counters on /metrics"`
}

func main() {
	pipeline.SetStatusMapper(statusmap.ToScsi)

	ctx := kong.Parse(&cli,
		kong.Name(programName),
		kong.Description(programDesc),
		kong.UsageOnError(),
	)
	err := ctx.Run(&context{})
	ctx.FatalIfErrorf(err)
}

func newPipeline() *pipeline.Pipeline {
	p := pipeline.New(pageSize, codec.Lookup)
	a := newMmapAllocator()
	p.SetAllocCallbacks(a.alloc, a.dealloc)
	return p
}
