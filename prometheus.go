package vec

import "github.com/prometheus/client_golang/prometheus"

// Collector exports a vector's statistics as prometheus gauges. Register
// one per long-lived vector that is worth watching:
//
//	reg.MustRegister(vec.NewCollector(v, "ingest_buffer"))
//
// Collection reads the stats snapshot on the caller's goroutine, so the
// usual single-owner rule applies: scrape from the goroutine that owns
// the vector, or not at all.
type Collector struct {
	stats func() Stats

	lenDesc  *prometheus.Desc
	capDesc  *prometheus.Desc
	bytes    *prometheus.Desc
	capBytes *prometheus.Desc
	util     *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a Collector for v labeled with the given name.
func NewCollector[T any](v *Vector[T], name string) *Collector {
	labels := prometheus.Labels{"vector": name}
	return &Collector{
		stats: v.Stats,
		lenDesc: prometheus.NewDesc(
			"vec_live_elements",
			"Number of live elements in the vector.",
			nil, labels,
		),
		capDesc: prometheus.NewDesc(
			"vec_capacity_elements",
			"Number of element slots backed by acquired storage.",
			nil, labels,
		),
		bytes: prometheus.NewDesc(
			"vec_live_bytes",
			"Bytes occupied by live elements.",
			nil, labels,
		),
		capBytes: prometheus.NewDesc(
			"vec_capacity_bytes",
			"Bytes backed by acquired storage.",
			nil, labels,
		),
		util: prometheus.NewDesc(
			"vec_utilization_ratio",
			"Ratio of live elements to capacity.",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.lenDesc
	ch <- c.capDesc
	ch <- c.bytes
	ch <- c.capBytes
	ch <- c.util
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.stats()
	ch <- prometheus.MustNewConstMetric(c.lenDesc, prometheus.GaugeValue, float64(s.Len))
	ch <- prometheus.MustNewConstMetric(c.capDesc, prometheus.GaugeValue, float64(s.Cap))
	ch <- prometheus.MustNewConstMetric(c.bytes, prometheus.GaugeValue, float64(s.LiveBytes))
	ch <- prometheus.MustNewConstMetric(c.capBytes, prometheus.GaugeValue, float64(s.CapBytes))
	ch <- prometheus.MustNewConstMetric(c.util, prometheus.GaugeValue, s.Utilization)
}
