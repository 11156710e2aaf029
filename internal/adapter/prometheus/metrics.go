package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	networkUp     prometheus.Gauge
	familyUp      *prometheus.GaugeVec
	probesTotal   *prometheus.CounterVec
	probeLatency  *prometheus.GaugeVec
	outagesTotal  *prometheus.CounterVec
	outageSeconds *prometheus.CounterVec
}

const (
	prefix = "dualwatch_"
)

func newMetrics(reg *prometheus.Registry) (*metrics, error) {
	m := &metrics{
		networkUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prefix + "network_up",
			Help: "Whether the host is reachable over both address families (1: yes, 0: no)",
		}),
		familyUp: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "family_up",
			Help: "Reachability of one address family (1: up, 0: down)",
		}, []string{"family"}),
		probesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "probes_total",
			Help: "Number of echo probes issued, by family and result",
		}, []string{"family", "result"}),
		probeLatency: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "probe_latency_seconds",
			Help: "Latency of the most recent successful probe",
		}, []string{"family"}),
		outagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "outages_total",
			Help: "Number of finished outages, by scope",
		}, []string{"scope"}),
		outageSeconds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "outage_seconds_total",
			Help: "Accumulated duration of finished outages, by scope",
		}, []string{"scope"}),
	}

	err := register(reg,
		m.networkUp,
		m.familyUp,
		m.probesTotal,
		m.probeLatency,
		m.outagesTotal,
		m.outageSeconds,
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func register(r *prometheus.Registry, cs ...prometheus.Collector) error {
	for i, c := range cs {
		if err := r.Register(c); err != nil {
			for _, c := range cs[:i] {
				r.Unregister(c)
			}

			return err
		}
	}

	return nil
}
