package application

import (
	"github.com/google/uuid"

	"github.com/tyler-dunkel/vendo/internal/domain"
)

// Admin can do everything a User can, plus stock the machine, reprice
// compartments, and collect its money. The extra methods exist only on
// *Admin, so a plain User cannot reach them.
type Admin struct {
	User
	id uuid.UUID
}

var _ Actor = (*Admin)(nil)

// ID is the admin's identity marker.
func (a *Admin) ID() uuid.UUID {
	return a.id
}

func (a *Admin) Role() Role {
	return RoleAdmin
}

// LoadProducts bulk-loads a catalog into the machine.
func (a *Admin) LoadProducts(machine *domain.VendingMachine, entries []domain.CatalogEntry) {
	machine.LoadCatalog(entries)
	a.record(HistoryEntry{Action: ActionLoadProducts, Entries: entries})
}

// SetCompartmentPrice reprices the listed slots.
func (a *Admin) SetCompartmentPrice(machine *domain.VendingMachine, slots []int, priceCents int) {
	machine.SetPrice(slots, priceCents)
	a.record(HistoryEntry{Action: ActionSetPrice, Slots: slots, Price: priceCents})
}

// GetMoneyFromMachine sweeps the machine's drawer and transaction balance
// into the admin's own cash and returns what came out.
func (a *Admin) GetMoneyFromMachine(machine *domain.VendingMachine) int {
	cash := machine.SweepDrawer()
	a.cash += cash
	a.record(HistoryEntry{Action: ActionCollectCash, Amount: cash})
	return cash
}

// CountMoney reports the admin's own cash. Reading is itself an audited
// action, like every other actor operation.
func (a *Admin) CountMoney() int {
	a.record(HistoryEntry{Action: ActionCountMoney, Amount: a.cash})
	return a.cash
}
