package metrics

import (
	"fmt"
	"io"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Observer is the process wide training metrics, registered with the default registry.
var Observer = NewMetrics()

func init() {
	prometheus.MustRegister(Observer.prometheus.collectors()...)
}

// Metrics tracks training progress.
type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
	epochs     map[string]int
}

func NewMetrics() *Metrics {
	return &Metrics{
		mutex:      new(sync.RWMutex),
		prometheus: NewPrometheusMetrics(),
		epochs:     make(map[string]int),
	}
}

// Register registers the collectors with the given registerer.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.prometheus.collectors() {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("could not register collector: %w", err)
		}
	}
	return nil
}

// Observe records the stats of a training epoch.
func (m *Metrics) Observe(model string, epoch int, loss, accuracy float64) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.epochs[model]++
	m.prometheus.Epochs.WithLabelValues(model).Inc()
	m.prometheus.Loss.WithLabelValues(model).Set(loss)
	m.prometheus.Accuracy.WithLabelValues(model).Set(accuracy)
}

// Stop records an early stop for the model.
func (m *Metrics) Stop(model string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.prometheus.EarlyStop.WithLabelValues(model).Inc()
}

// Epochs returns the number of epochs observed for the model.
func (m *Metrics) Epochs(model string) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.epochs[model]
}

// Dump writes the gathered metrics in the text exposition format.
func Dump(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("could not gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, f := range families {
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("could not encode metric family '%s': %w", f.GetName(), err)
		}
	}
	return nil
}
