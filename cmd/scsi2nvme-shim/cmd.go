package main

import (
	"encoding/hex"
	"fmt"
	"os"
)

// Run executes the translate command: one CDB in, one translation result
// printed to stdout.
func (t *translateCmd) Run(ctx *context) error {
	id, err := loadDeviceIdentity(t.Identity)
	if err != nil {
		return fmt.Errorf("loading device identity: %w", err)
	}

	cdb, err := hex.DecodeString(t.CDB)
	if err != nil {
		return fmt.Errorf("decoding CDB: %w", err)
	}
	var dataOut []byte
	if t.DataOut != "" {
		dataOut, err = hex.DecodeString(t.DataOut)
		if err != nil {
			return fmt.Errorf("decoding data-out payload: %w", err)
		}
	}

	p := newPipeline()
	result := runTranslation(p, id, cdb, dataOut, t.Nsid)
	printResult(os.Stdout, result)
	return nil
}

// Run executes the repl command: successive CDBs read from stdin until EOF
// or a quit line.
func (r *replCmd) Run(ctx *context) error {
	id, err := loadDeviceIdentity(r.Identity)
	if err != nil {
		return fmt.Errorf("loading device identity: %w", err)
	}
	p := newPipeline()
	return runRepl(os.Stdout, os.Stdin, p, id, r.Nsid, nil)
}

// Run executes the serve command: an HTTP /metrics endpoint counting
// translations while the same stdin REPL loop drives them.
func (s *serveCmd) Run(ctx *context) error {
	id, err := loadDeviceIdentity(s.Identity)
	if err != nil {
		return fmt.Errorf("loading device identity: %w", err)
	}
	p := newPipeline()
	mc := newMetricCollector()

	errCh := make(chan error, 1)
	go func() { errCh <- serveMetrics(s.Addr, mc) }()

	if err := runRepl(os.Stdout, os.Stdin, p, id, s.Nsid, mc); err != nil {
		return err
	}
	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}
