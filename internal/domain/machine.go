package domain

import "fmt"

// DispenseRecord is the machine's own note of a completed sale.
type DispenseRecord struct {
	Slot  int
	Name  string
	Price int // cents
}

// VendingMachine composes one inventory, one transaction ledger, and the
// change algorithm into a request/response machine. It knows nothing about
// who is pressing its buttons; privilege lives in the actor layer.
type VendingMachine struct {
	inventory Inventory
	ledger    TransactionLedger
	dispensed []DispenseRecord
}

func NewMachine() *VendingMachine {
	return &VendingMachine{}
}

// InsertCoin credits an accepted denomination to the current transaction and
// returns the new transaction balance. Any other amount is rejected with no
// state change, signalled only through the false return.
func (m *VendingMachine) InsertCoin(amountCents int) (int, bool) {
	if !AcceptedCoin(amountCents) {
		return m.ledger.InTransaction(), false
	}
	return m.ledger.credit(amountCents), true
}

// QueryPrice looks a product up by name. The snapshot is safe to hold; it
// does not track later price changes.
func (m *VendingMachine) QueryPrice(name string) (Compartment, bool) {
	return m.inventory.FindByName(name)
}

// Select is a button press for a slot. Business outcomes (empty machine,
// unknown or sold-out slot, insufficient funds) come back inside the receipt;
// the only error is the usage error of a slot id that cannot exist.
func (m *VendingMachine) Select(slot int) (Receipt, error) {
	if slot < 0 {
		return Receipt{}, fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}

	if m.inventory.Empty() {
		return Receipt{Message: msgMachineEmpty}, nil
	}

	compartment := m.inventory.bySlot(slot)
	if compartment == nil || compartment.Amount == 0 {
		return m.handleNoProductFound(), nil
	}

	if compartment.Price > m.ledger.InTransaction() {
		return m.handleNeedMoreMoney(compartment), nil
	}

	return m.dispense(compartment), nil
}

func (m *VendingMachine) handleNoProductFound() Receipt {
	return Receipt{Message: msgAnotherSelection}
}

func (m *VendingMachine) handleNeedMoreMoney(compartment *Compartment) Receipt {
	shortfall := compartment.Price - m.ledger.InTransaction()
	return Receipt{Message: fmt.Sprintf("Please add %s", FormatUSD(shortfall))}
}

// dispense completes a sale: one unit leaves the compartment, the price moves
// into the drawer, and whatever remains of the buyer's balance comes back as
// change, zeroing the transaction.
func (m *VendingMachine) dispense(compartment *Compartment) Receipt {
	compartment.Amount--
	m.ledger.settle(compartment.Price)
	m.dispensed = append(m.dispensed, DispenseRecord{
		Slot:  compartment.Slot,
		Name:  compartment.Name,
		Price: compartment.Price,
	})

	change := MakeChange(m.ledger.drain())

	product := *compartment
	product.Amount = 1

	return Receipt{Product: &product, Change: &change}
}

// SweepDrawer empties the drawer plus any abandoned transaction balance and
// returns the combined cash. Admin-only by convention, enforced by the actor
// layer rather than the machine.
func (m *VendingMachine) SweepDrawer() int {
	return m.ledger.sweep()
}

// LoadCatalog stocks the machine. See Inventory.Load for the merge rules.
func (m *VendingMachine) LoadCatalog(entries []CatalogEntry) {
	m.inventory.Load(entries)
}

// SetPrice reprices the listed slots unconditionally.
func (m *VendingMachine) SetPrice(slots []int, priceCents int) {
	m.inventory.SetPrice(slots, priceCents)
}

// TransactionBalance is the current buyer's unspent cents.
func (m *VendingMachine) TransactionBalance() int {
	return m.ledger.InTransaction()
}

// DrawerBalance is the machine's retained earnings in cents.
func (m *VendingMachine) DrawerBalance() int {
	return m.ledger.InDrawer()
}

// Compartments returns snapshots of the inventory in slot order.
func (m *VendingMachine) Compartments() []Compartment {
	return m.inventory.Compartments()
}

// Empty reports whether the machine has never been stocked.
func (m *VendingMachine) Empty() bool {
	return m.inventory.Empty()
}

// DispenseLog returns a copy of every sale the machine has completed.
func (m *VendingMachine) DispenseLog() []DispenseRecord {
	log := make([]DispenseRecord, len(m.dispensed))
	copy(log, m.dispensed)
	return log
}
