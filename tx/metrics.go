package tx

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/blockberries/chainmsg"
)

const (
	directionPack   = "pack"
	directionUnpack = "unpack"

	resultOK = "ok"
	// Label for failures that are not conversion errors.
	resultError = "error"
	// Type URL label for unregistered type URLs, to bound cardinality.
	unknownTypeURL = "unknown"
)

type metrics struct {
	transcoded *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		transcoded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "chainmsg",
				Name:      "transcode_total",
				Help:      "Messages packed or unpacked, by type URL and result (ok, error kind, or error).",
			},
			[]string{"direction", "type_url", "result"},
		),
	}
	if err := reg.Register(m.transcoded); err != nil {
		return nil, errors.Wrap(err, "register metrics")
	}
	return m, nil
}

// observe is a no-op on a nil receiver.
func (m *metrics) observe(direction, typeURL string, err error) {
	if m == nil {
		return
	}
	if typeURL == "" {
		typeURL = unknownTypeURL
	}
	m.transcoded.WithLabelValues(direction, typeURL, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	if err == nil {
		return resultOK
	}
	if kind := chainmsg.KindOf(err); kind != "" {
		return string(kind)
	}
	return resultError
}
