package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/supplymesh/core"
)

func TestRegistry_RecordStateTransition(t *testing.T) {
	r := NewRegistry()

	r.RecordStateTransition(3, map[core.NodeStatus]int{
		core.StatusHealthy:  4,
		core.StatusWarning:  1,
		core.StatusCritical: 1,
	})

	assert.Equal(t, 3.0, testutil.ToFloat64(r.StateVersion))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.NodesByStatus.WithLabelValues("Healthy")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.NodesByStatus.WithLabelValues("Warning")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.NodesByStatus.WithLabelValues("Critical")))
}

func TestRegistry_Counters(t *testing.T) {
	r := NewRegistry()

	r.RecordConfigUpdate()
	r.RecordConfigUpdate()
	r.RecordTick("committed", time.Millisecond)
	r.RecordTick("discarded", time.Millisecond)
	r.RecordAgentRun("info", "ok", time.Millisecond)
	r.RecordAgentRun("info", "error", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.ConfigUpdatesTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.TicksTotal.WithLabelValues("committed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.TicksTotal.WithLabelValues("discarded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.AgentRunsTotal.WithLabelValues("info", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.AgentRunsTotal.WithLabelValues("info", "error")))
}

func TestRegistry_NilReceiverIsNoOp(t *testing.T) {
	var r *Registry

	require.NotPanics(t, func() {
		r.RecordConfigUpdate()
		r.RecordStateTransition(1, nil)
		r.RecordTick("committed", time.Millisecond)
		r.RecordAgentRun("info", "ok", time.Millisecond)
	})
}
