package domain

// Status represents the current stage of a shipment.
type Status string

const (
	// StatusProcessing indicates the shipment has been registered and is being prepared.
	StatusProcessing Status = "processing"
	// StatusPickedUp indicates the shipment has been collected from the sender.
	StatusPickedUp Status = "picked-up"
	// StatusInTransit indicates the shipment is moving between facilities.
	StatusInTransit Status = "in-transit"
	// StatusAtSortingCenter indicates the shipment is at a sorting facility.
	StatusAtSortingCenter Status = "at-sorting-center"
	// StatusCustomsClearance indicates the shipment is going through customs.
	StatusCustomsClearance Status = "customs-clearance"
	// StatusOutForDelivery indicates the shipment is on the final delivery leg.
	StatusOutForDelivery Status = "out-for-delivery"
	// StatusDelivered indicates the shipment has reached the recipient.
	StatusDelivered Status = "delivered"
)

// UnknownStatusIndex is returned by StatusIndex for statuses outside the
// canonical progression.
const UnknownStatusIndex = -1

// StatusSequence is the canonical progression of a shipment, earliest to last.
// The slice index of a status is its progression order.
var StatusSequence = []Status{
	StatusProcessing,
	StatusPickedUp,
	StatusInTransit,
	StatusAtSortingCenter,
	StatusCustomsClearance,
	StatusOutForDelivery,
	StatusDelivered,
}

var statusLabels = map[Status]string{
	StatusProcessing:       "Processing",
	StatusPickedUp:         "Picked Up",
	StatusInTransit:        "In Transit",
	StatusAtSortingCenter:  "At Sorting Center",
	StatusCustomsClearance: "Customs Clearance",
	StatusOutForDelivery:   "Out for Delivery",
	StatusDelivered:        "Delivered",
}

// StatusIndex returns the zero-based position of s in the canonical sequence,
// or UnknownStatusIndex when s is not part of it. Statuses outside the
// sequence (e.g. a manually keyed value) do not participate in progress
// computation.
func StatusIndex(s Status) int {
	for i, candidate := range StatusSequence {
		if candidate == s {
			return i
		}
	}
	return UnknownStatusIndex
}

// Label returns the human-readable label for s. Unrecognized statuses fall
// back to the raw stored value so they still render as text.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}
