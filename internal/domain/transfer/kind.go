package domain_transfer

// Kind selects the settlement effect of a transfer request. It does not
// change the confirmation protocol.
type Kind string

const (
	// KindOrderHandover moves prepared order stock from the warehouse to the
	// assigned sales rep's van.
	KindOrderHandover Kind = "ORDER_HANDOVER"
	// KindVanLoading is an ad-hoc warehouse-to-van movement outside an order.
	KindVanLoading Kind = "VAN_LOADING"
	// KindStockAdjustment applies a signed delta to a single location.
	KindStockAdjustment Kind = "STOCK_ADJUSTMENT"
)

func (k Kind) IsValid() bool {
	return k == KindOrderHandover || k == KindVanLoading || k == KindStockAdjustment
}

// MovesBetweenLocations reports whether settlement decrements a source
// location and increments a destination, as opposed to adjusting one
// location in place.
func (k Kind) MovesBetweenLocations() bool {
	return k == KindOrderHandover || k == KindVanLoading
}
