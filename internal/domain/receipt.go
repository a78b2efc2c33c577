package domain

const (
	msgAnotherSelection = "Please make another selection."
	msgMachineEmpty     = "sorry vending machine is empty!"
)

// Receipt is the result of a selection. A successful purchase carries the
// product (a snapshot with Amount fixed to 1) and the change; every failure
// carries a message instead. Receipts are transient and never stored.
type Receipt struct {
	Product *Compartment
	Change  *ChangeBreakdown
	Message string
}

// Dispensed reports whether the selection actually produced a product.
func (r Receipt) Dispensed() bool {
	return r.Product != nil
}
