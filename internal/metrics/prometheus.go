package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "perceptron"

// Prometheus holds the training collectors.
type Prometheus struct {
	Epochs    *prometheus.CounterVec
	EarlyStop *prometheus.CounterVec
	Loss      *prometheus.GaugeVec
	Accuracy  *prometheus.GaugeVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Epochs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "epochs_total",
				Help:      "Training epochs run.",
			}, []string{"model"}),
		EarlyStop: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "early_stops_total",
				Help:      "Training runs stopped before the last epoch.",
			}, []string{"model"}),
		Loss: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "loss",
				Help:      "Sum of absolute errors of the last epoch.",
			}, []string{"model"}),
		Accuracy: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "accuracy_percent",
				Help:      "Accuracy of the last epoch.",
			}, []string{"model"}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Epochs, p.EarlyStop, p.Loss, p.Accuracy}
}
