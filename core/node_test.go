package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name      string
		util      float64
		delayDays int
		want      NodeStatus
	}{
		{"critical low utilization", 39.9, 0, StatusCritical},
		{"critical high utilization", 98.1, 0, StatusCritical},
		{"healthy mid band", 75, 0, StatusHealthy},
		{"healthy band lower edge", 60, 0, StatusHealthy},
		{"healthy band upper edge", 95, 0, StatusHealthy},
		{"warning below band", 55, 0, StatusWarning},
		{"warning above band", 96, 0, StatusWarning},
		{"delay downgrades healthy band", 75, 3, StatusWarning},
		{"delay does not mask critical", 30, 3, StatusCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.util, tt.delayDays))
		})
	}
}

func TestNodeClone_Isolated(t *testing.T) {
	n := Node{
		ID:             "SUP-01",
		Type:           NodeSupplier,
		UtilizationPct: 70,
		Status:         StatusHealthy,
		DelayDays:      IntPtr(2),
		TemperatureC:   Float64Ptr(4.5),
		Details:        SupplierDetails{ContactName: "Ops", Certifications: []string{"ISO 9001"}},
	}
	cp := n.Clone()
	*cp.DelayDays = 9
	*cp.TemperatureC = -1
	det := cp.Details.(SupplierDetails)
	det.Certifications[0] = "none"

	assert.Equal(t, 2, *n.DelayDays)
	assert.Equal(t, 4.5, *n.TemperatureC)
	assert.Equal(t, "ISO 9001", n.Details.(SupplierDetails).Certifications[0])
}

func TestNetworkStateHelpers(t *testing.T) {
	state := NetworkState{
		Nodes: []Node{
			{ID: "a", UtilizationPct: 50, Status: StatusWarning},
			{ID: "b", UtilizationPct: 70, Status: StatusHealthy},
			{ID: "c", UtilizationPct: 30, Status: StatusCritical},
		},
		Version: 1,
	}

	counts := state.CountByStatus()
	assert.Equal(t, 1, counts[StatusHealthy])
	assert.Equal(t, 1, counts[StatusWarning])
	assert.Equal(t, 1, counts[StatusCritical])

	assert.InDelta(t, 50.0, state.AverageUtilization(), 1e-9)

	n, ok := state.FindNode("b")
	assert.True(t, ok)
	assert.Equal(t, StatusHealthy, n.Status)
	_, ok = state.FindNode("missing")
	assert.False(t, ok)

	assert.False(t, state.Empty())
	assert.True(t, NetworkState{}.Empty())
}
