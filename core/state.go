package core

import "time"

// NetworkState is an atomic snapshot of the live supply chain: the full node
// sequence, the Configuration that produced it, a monotonically increasing
// Version, and the time of the last mutation.
//
// Snapshots are value-consistent: a snapshot observed by an agent reflects
// exactly one Version, wholly before or wholly after any transition, never a
// partial one. The store hands out deep copies so holding a snapshot across
// ticks is safe.
type NetworkState struct {
	Nodes       []Node        `json:"nodes"`
	Config      Configuration `json:"configuration"`
	Version     uint64        `json:"stateVersion"`
	LastUpdated time.Time     `json:"lastUpdated"`
}

// Empty reports whether the state predates any configuration submission.
func (s NetworkState) Empty() bool { return s.Version == 0 || len(s.Nodes) == 0 }

// Clone returns a deep copy of the snapshot.
func (s NetworkState) Clone() NetworkState {
	return NetworkState{
		Nodes:       CloneNodes(s.Nodes),
		Config:      s.Config.Clone(),
		Version:     s.Version,
		LastUpdated: s.LastUpdated,
	}
}

// CountByStatus tallies nodes per derived status.
func (s NetworkState) CountByStatus() map[NodeStatus]int {
	counts := make(map[NodeStatus]int, 3)
	for _, n := range s.Nodes {
		counts[n.Status]++
	}
	return counts
}

// AverageUtilization returns the mean utilization across all nodes, or 0 for
// an empty state.
func (s NetworkState) AverageUtilization() float64 {
	if len(s.Nodes) == 0 {
		return 0
	}
	var sum float64
	for _, n := range s.Nodes {
		sum += n.UtilizationPct
	}
	return sum / float64(len(s.Nodes))
}

// FindNode returns the node with the given id and whether it was found.
func (s NetworkState) FindNode(id string) (Node, bool) {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}
