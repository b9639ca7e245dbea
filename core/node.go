package core

// NodeType classifies a node's role in the canonical supply chain order
// supplier → manufacturer → warehouse → distributor → retailer.
type NodeType string

// Supported node types in canonical chain order.
const (
	NodeSupplier     NodeType = "Supplier"
	NodeManufacturer NodeType = "Manufacturer"
	NodeWarehouse    NodeType = "Warehouse"
	NodeDistributor  NodeType = "Distributor"
	NodeRetailer     NodeType = "Retailer"
)

// NodeTypes returns all node types in canonical chain order.
func NodeTypes() []NodeType {
	return []NodeType{NodeSupplier, NodeManufacturer, NodeWarehouse, NodeDistributor, NodeRetailer}
}

// NodeStatus is the derived operational status of a node. It is always
// recomputed from the node's metrics via DeriveStatus, never set directly,
// so every agent observing the same snapshot reports the same status.
type NodeStatus string

// Node statuses ordered from best to worst.
const (
	StatusHealthy  NodeStatus = "Healthy"
	StatusWarning  NodeStatus = "Warning"
	StatusCritical NodeStatus = "Critical"
)

// Utilization and capacity bounds for synthesized nodes.
const (
	MinCapacityUnits = 500
	MaxCapacityUnits = 2000
)

// DeriveStatus computes a node's status from its utilization percentage and
// active delay:
//   - Critical when utilization < 40 or > 98
//   - Healthy when utilization ∈ [60, 95] and no active delay
//   - Warning otherwise
func DeriveStatus(utilizationPct float64, delayDays int) NodeStatus {
	if utilizationPct < 40 || utilizationPct > 98 {
		return StatusCritical
	}
	if utilizationPct >= 60 && utilizationPct <= 95 && delayDays == 0 {
		return StatusHealthy
	}
	return StatusWarning
}

// Location is a named geographic site consistent with the configuration's
// region.
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Details is the polymorphic per-type detail record attached to a node.
// Concrete detail types implement the unexported isDetails marker enabling a
// closed set keyed by NodeType.
type Details interface{ isDetails() }

// SupplierDetails describes a supplier node: primary contact and held
// certifications. Certification presence feeds the governance score.
type SupplierDetails struct {
	ContactName    string   `json:"contactName"`
	ContactEmail   string   `json:"contactEmail"`
	Certifications []string `json:"certifications"`
}

func (SupplierDetails) isDetails() {}

// FactoryDetails describes a manufacturer node.
type FactoryDetails struct {
	ProductionCapacity int `json:"productionCapacity"` // units per day
	WorkforceSize      int `json:"workforceSize"`
	ShiftsPerDay       int `json:"shiftsPerDay"`
}

func (FactoryDetails) isDetails() {}

// StorageDetails describes a warehouse node.
type StorageDetails struct {
	StorageType           string `json:"storageType"`
	HandlingCapacity      int    `json:"handlingCapacity"` // pallets per day
	TemperatureControlled bool   `json:"temperatureControlled"`
}

func (StorageDetails) isDetails() {}

// FleetDetails describes a distributor node.
type FleetDetails struct {
	FleetSize      int     `json:"fleetSize"`
	CoverageAreaKm int     `json:"coverageAreaKm"`
	OnTimeRatePct  float64 `json:"onTimeRatePct"`
}

func (FleetDetails) isDetails() {}

// RetailDetails describes a retailer node.
type RetailDetails struct {
	StoreCount int      `json:"storeCount"`
	Channels   []string `json:"channels"`
}

func (RetailDetails) isDetails() {}

// Node is one entity in the synthesized supply chain. IDs are unique and
// stable within a NetworkState: perturbation mutates metrics and status only,
// never identity or topology.
//
// TemperatureC is populated only for warehouse (cold-chain relevant) nodes;
// DelayDays only for distributor (logistics relevant) nodes. Both are nil
// elsewhere so absence is distinguishable from zero.
type Node struct {
	ID             string     `json:"id"`
	Type           NodeType   `json:"type"`
	Location       Location   `json:"location"`
	CapacityUnits  int        `json:"capacityUnits"`
	UtilizationPct float64    `json:"utilizationPct"`
	Status         NodeStatus `json:"status"`
	TemperatureC   *float64   `json:"temperatureC,omitempty"`
	DelayDays      *int       `json:"delayDays,omitempty"`
	Details        Details    `json:"typeDetails,omitempty"`
}

// ActiveDelayDays returns the node's delay in days, treating an absent field
// as zero.
func (n Node) ActiveDelayDays() int {
	if n.DelayDays == nil {
		return 0
	}
	return *n.DelayDays
}

// Clone returns a deep copy of the node. Detail records are value types and
// copy naturally; pointer metric fields are reallocated.
func (n Node) Clone() Node {
	cp := n
	if n.TemperatureC != nil {
		t := *n.TemperatureC
		cp.TemperatureC = &t
	}
	if n.DelayDays != nil {
		d := *n.DelayDays
		cp.DelayDays = &d
	}
	switch det := n.Details.(type) {
	case SupplierDetails:
		det.Certifications = append([]string(nil), det.Certifications...)
		cp.Details = det
	case RetailDetails:
		det.Channels = append([]string(nil), det.Channels...)
		cp.Details = det
	}
	return cp
}

// CloneNodes deep-copies a node slice.
func CloneNodes(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}

// Float64Ptr returns a pointer to v. Helper for optional metric fields.
func Float64Ptr(v float64) *float64 { return &v }

// IntPtr returns a pointer to v. Helper for optional metric fields.
func IntPtr(v int) *int { return &v }
