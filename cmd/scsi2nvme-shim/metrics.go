package main

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/googleinterns/scsi2nvme/scsi"
)

// translationsDesc counts every CDB the shim has translated, by opcode and
// the SCSI status the pipeline settled on.
var translationsDesc = prometheus.NewDesc(
	"scsi2nvme_translations_total",
	"SCSI commands translated by this shim, by opcode and resulting status",
	[]string{"opcode", "status"}, nil,
)

type metricCollector struct {
	mu     sync.Mutex
	counts map[[2]byte]uint64
}

func newMetricCollector() *metricCollector {
	return &metricCollector{counts: make(map[[2]byte]uint64)}
}

func (mc *metricCollector) observe(opcode scsi.OpCode, status scsi.Status) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.counts[[2]byte{opcode, status}]++
}

func (mc *metricCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- translationsDesc
}

func (mc *metricCollector) Collect(ch chan<- prometheus.Metric) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	for k, v := range mc.counts {
		opcode := fmt.Sprintf("%#02x", k[0])
		status := fmt.Sprintf("%#02x", k[1])
		ch <- prometheus.MustNewConstMetric(translationsDesc, prometheus.CounterValue, float64(v), opcode, status)
	}
}

func serveMetrics(addr string, mc *metricCollector) error {
	reg := prometheus.NewPedanticRegistry()
	reg.MustRegister(mc)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return http.ListenAndServe(addr, mux)
}
