package metrics

import (
	"bytes"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := NewMetrics()

	m.Observe("and", 0, 2, 50)
	m.Observe("and", 1, 1, 75)
	m.Observe("or", 0, 1.5, 25)
	m.Stop("and")

	assert.Equal(t, 2, m.Epochs("and"))
	assert.Equal(t, 1, m.Epochs("or"))
	assert.Equal(t, 0, m.Epochs("xor"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.prometheus.Epochs.WithLabelValues("and")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.prometheus.Loss.WithLabelValues("and")))
	assert.Equal(t, 75.0, testutil.ToFloat64(m.prometheus.Accuracy.WithLabelValues("and")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.prometheus.EarlyStop.WithLabelValues("and")))
	assert.Equal(t, 1.5, testutil.ToFloat64(m.prometheus.Loss.WithLabelValues("or")))
}

func TestMetrics_Concurrent(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(epoch int) {
			defer wg.Done()
			m.Observe("and", epoch, 1, 50)
			m.Stop("and")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, m.Epochs("and"))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.prometheus.EarlyStop.WithLabelValues("and")))
}

func TestDump(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics()
	require.NoError(t, m.Register(reg))
	assert.Error(t, m.Register(reg))

	m.Observe("or", 0, 1.25, 100)

	buf := new(bytes.Buffer)
	require.NoError(t, Dump(buf, reg))

	out := buf.String()
	assert.Contains(t, out, `perceptron_loss{model="or"} 1.25`)
	assert.Contains(t, out, `perceptron_epochs_total{model="or"} 1`)
	assert.Contains(t, out, `perceptron_accuracy_percent{model="or"} 100`)
}
