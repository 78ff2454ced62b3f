package main

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/googleinterns/scsi2nvme/nvme"
)

// deviceIdentity is the YAML fixture describing the simulated namespace the
// shim hands the engine: this process has no real NVMe controller behind
// it, so Identify responses are synthesized from this file rather than read
// off hardware (cf. dswarbrick-smart/cmd/mkdrivedb's yaml.v2-backed drive
// fixtures).
type deviceIdentity struct {
	FirmwareRevision  string `yaml:"firmware_revision"`
	NamespaceSize     uint64 `yaml:"namespace_size_blocks"`
	BlockSizeExponent uint8  `yaml:"block_size_exponent"`
}

func defaultDeviceIdentity() deviceIdentity {
	return deviceIdentity{
		FirmwareRevision:  "a bc   d",
		NamespaceSize:     1000,
		BlockSizeExponent: 9, // 512-byte blocks
	}
}

func loadDeviceIdentity(path string) (deviceIdentity, error) {
	if path == "" {
		return defaultDeviceIdentity(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return deviceIdentity{}, err
	}
	id := defaultDeviceIdentity()
	if err := yaml.Unmarshal(data, &id); err != nil {
		return deviceIdentity{}, err
	}
	return id, nil
}

func (d deviceIdentity) populateController(ctrl *nvme.IdentifyControllerData) {
	ctrl.SetFirmwareRevision(d.FirmwareRevision)
}

func (d deviceIdentity) populateNamespace(ns *nvme.IdentifyNamespaceData) {
	ns.SetNsze(d.NamespaceSize)
	ns.SetNcap(d.NamespaceSize)
	ns.SetFlbas(0)
	ns.LbafAt(0).SetLbaDataSize(d.BlockSizeExponent)
}
