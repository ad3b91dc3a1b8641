package order

// Status is an order's position on its fulfilment track.
type Status string

const (
	StatusConfirmed      Status = "Confirmed"
	StatusPreparing      Status = "Preparing"
	StatusOutForDelivery Status = "Out for Delivery"
	StatusDelivered      Status = "Delivered"
	StatusReadyForPickup Status = "Ready for Pickup"
	StatusPickedUp       Status = "Picked Up"
)

var (
	deliveryTrack = []Status{StatusConfirmed, StatusPreparing, StatusOutForDelivery, StatusDelivered}
	pickupTrack   = []Status{StatusConfirmed, StatusPreparing, StatusReadyForPickup, StatusPickedUp}
)

// Track returns the fixed status sequence for the given order type.
func Track(t Type) []Status {
	if t == Pickup {
		return pickupTrack
	}
	return deliveryTrack
}

// Next returns the status one forward step along the track for t, or the
// current status unchanged when it is terminal or off-track.
func Next(current Status, t Type) Status {
	track := Track(t)
	for i, s := range track {
		if s == current && i < len(track)-1 {
			return track[i+1]
		}
	}
	return current
}

// IsTerminal reports whether the status ends its track.
func IsTerminal(s Status) bool {
	return s == StatusDelivered || s == StatusPickedUp
}
