package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveDB(t *testing.T) {
	m := New("test")
	require.NoError(t, m.Register(prometheus.NewRegistry()))

	m.ObserveDB("list_trips", time.Now(), nil)
	m.ObserveDB("list_trips", time.Now(), errors.New("boom"))
	m.ObserveDB("list_trips", time.Now(), nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DatabaseOperations.WithLabelValues("list_trips", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DatabaseOperations.WithLabelValues("list_trips", "error")))
}

func TestObserveDB_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveDB("noop", time.Now(), nil)
	})
}
