package pgwire

import "github.com/prometheus/client_golang/prometheus"

// DecodeMetrics counts decode outcomes by message tag, the same
// per-identifier counting conn_counts.go once did for connection names,
// rebuilt on Prometheus CounterVecs instead of a package-level map.
type DecodeMetrics struct {
	decodes  *prometheus.CounterVec
	failures *prometheus.CounterVec
	unknown  prometheus.Counter
}

// NewDecodeMetrics builds a DecodeMetrics and registers it with reg. Pass
// prometheus.DefaultRegisterer to use the global registry.
func NewDecodeMetrics(reg prometheus.Registerer) *DecodeMetrics {
	m := &DecodeMetrics{
		decodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pgwire",
			Name:      "decodes_total",
			Help:      "Backend messages decoded, by tag.",
		}, []string{"tag"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pgwire",
			Name:      "decode_failures_total",
			Help:      "Decode failures, by tag.",
		}, []string{"tag"}),
		unknown: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pgwire",
			Name:      "unknown_sqlstate_class_total",
			Help:      "ErrorResponse/NoticeResponse messages whose SQLSTATE class fell through to UnknownError.",
		}),
	}
	reg.MustRegister(m.decodes, m.failures, m.unknown)
	return m
}

func (m *DecodeMetrics) observe(tag byte, err error) {
	label := string(tag)
	if err != nil {
		m.failures.WithLabelValues(label).Inc()
		return
	}
	m.decodes.WithLabelValues(label).Inc()
}

// observeClassification increments the unknown-class counter when a
// classified message fell back to UnknownError. decodeNoticeResponse and
// decodeErrorResponse call this directly since classify() itself carries
// no Decoder reference.
func (m *DecodeMetrics) observeClassification(kind PostgresqlMessageKind) {
	if kind == UnknownError {
		m.unknown.Inc()
	}
}
