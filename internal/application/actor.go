package application

import (
	"github.com/tyler-dunkel/vendo/internal/domain"
	"github.com/tyler-dunkel/vendo/internal/ports"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Actor is the capability set shared by every machine client. Admin-only
// operations are additive methods on *Admin and deliberately absent here, so
// privilege is checked by the compiler rather than at call time.
type Actor interface {
	AddCoinToMachine(machine *domain.VendingMachine, amountCents int)
	CheckCompartmentPrice(machine *domain.VendingMachine, name string) (domain.Compartment, bool)
	BuyProduct(machine *domain.VendingMachine, slot int) (string, bool)
	ConvertChangeToCash(change domain.ChangeBreakdown) int
	AddCash(amountCents int)
	Cash() int
	Products() []domain.Compartment
	History() []HistoryEntry
	Role() Role
}

// User owns its cash, its acquired products, and its audit history. It never
// touches machine state except through the machine's own operations.
type User struct {
	cash     int
	products []domain.Compartment
	history  []HistoryEntry
	clock    ports.Clock
}

var _ Actor = (*User)(nil)

// AddCoinToMachine forwards a coin when the user can afford it, and keeps the
// cash and history in sync with whether the machine accepted it. A rejected
// denomination is a silent no-op: no cash moves and nothing is recorded.
func (u *User) AddCoinToMachine(machine *domain.VendingMachine, amountCents int) {
	if u.cash < amountCents {
		return
	}

	if _, ok := machine.InsertCoin(amountCents); !ok {
		return
	}

	u.cash -= amountCents
	u.record(HistoryEntry{Action: ActionAddCoin, Amount: amountCents})
}

// CheckCompartmentPrice asks the machine for a product by name. Only hits
// land in the history.
func (u *User) CheckCompartmentPrice(machine *domain.VendingMachine, name string) (domain.Compartment, bool) {
	product, ok := machine.QueryPrice(name)
	if ok {
		snapshot := product
		u.record(HistoryEntry{Action: ActionCheckPrice, Product: &snapshot})
	}
	return product, ok
}

// BuyProduct presses the machine's button for a slot. On success the product
// joins the user's haul, the change converts back into cash, and ok is true.
// On any failure ok is false and msg carries the machine's message verbatim.
func (u *User) BuyProduct(machine *domain.VendingMachine, slot int) (msg string, ok bool) {
	receipt, err := machine.Select(slot)
	if err != nil {
		return err.Error(), false
	}

	if !receipt.Dispensed() {
		return receipt.Message, false
	}

	u.products = append(u.products, *receipt.Product)
	u.cash += u.ConvertChangeToCash(*receipt.Change)
	u.record(HistoryEntry{Action: ActionBuyProduct, Product: receipt.Product})

	return "", true
}

// ConvertChangeToCash sums denomination value times coin count over the fixed
// coin set.
func (u *User) ConvertChangeToCash(change domain.ChangeBreakdown) int {
	return change.Cents()
}

// AddCash tops up the user's wallet. Negative amounts are ignored.
func (u *User) AddCash(amountCents int) {
	if amountCents < 0 {
		return
	}
	u.cash += amountCents
}

func (u *User) Cash() int {
	return u.cash
}

func (u *User) Products() []domain.Compartment {
	products := make([]domain.Compartment, len(u.products))
	copy(products, u.products)
	return products
}

func (u *User) History() []HistoryEntry {
	history := make([]HistoryEntry, len(u.history))
	copy(history, u.history)
	return history
}

func (u *User) Role() Role {
	return RoleUser
}

func (u *User) record(entry HistoryEntry) {
	entry.At = u.clock.Now()
	u.history = append(u.history, entry)
}
