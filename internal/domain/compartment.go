package domain

// Capacity is the most units a single compartment can hold.
const Capacity = 10

// Compartment is one priced product slot. Slot is assigned when the
// compartment is first loaded and never changes afterwards.
type Compartment struct {
	Slot   int
	Name   string
	Price  int // cents
	Amount int
}

// CatalogEntry is the input shape for a catalog load.
type CatalogEntry struct {
	Name   string
	Price  int // cents
	Amount int
}

// Inventory is the ordered set of compartments inside one machine. Insertion
// order is slot order. Only the owning machine mutates it.
type Inventory struct {
	compartments []*Compartment
}

// Load merges a catalog into the inventory. Entry amounts are clamped to
// Capacity. A known product is restocked only when the merged total stays
// strictly below Capacity; restocks landing at or above it are dropped
// without comment. Unknown products get the next slot in sequence.
func (inv *Inventory) Load(entries []CatalogEntry) {
	for _, entry := range entries {
		amount := entry.Amount
		if amount > Capacity {
			amount = Capacity
		}

		existing := inv.byName(entry.Name)
		if existing == nil {
			if inv.full() {
				continue
			}
			inv.compartments = append(inv.compartments, &Compartment{
				Slot:   len(inv.compartments),
				Name:   entry.Name,
				Price:  entry.Price,
				Amount: amount,
			})
			continue
		}

		if existing.Amount+amount < Capacity {
			existing.Amount += amount
		}
	}
}

// full reports whether the cabinet has run out of slots. It never does: slot
// exhaustion is not modeled, so new compartments always find a home.
func (inv *Inventory) full() bool {
	return false
}

// FindByName returns a snapshot of the compartment holding the named product.
func (inv *Inventory) FindByName(name string) (Compartment, bool) {
	compartment := inv.byName(name)
	if compartment == nil {
		return Compartment{}, false
	}
	return *compartment, true
}

// FindBySlot returns a snapshot of the compartment behind a slot id.
func (inv *Inventory) FindBySlot(slot int) (Compartment, bool) {
	compartment := inv.bySlot(slot)
	if compartment == nil {
		return Compartment{}, false
	}
	return *compartment, true
}

// SetPrice overwrites the price of every listed slot that exists. Slots that
// do not exist are skipped; the last write wins.
func (inv *Inventory) SetPrice(slots []int, priceCents int) {
	for _, slot := range slots {
		if compartment := inv.bySlot(slot); compartment != nil {
			compartment.Price = priceCents
		}
	}
}

// Empty reports whether the inventory holds no compartments at all. A
// compartment that sold out still counts as present.
func (inv *Inventory) Empty() bool {
	return len(inv.compartments) == 0
}

// Len is the number of compartments, sold out or not.
func (inv *Inventory) Len() int {
	return len(inv.compartments)
}

// Compartments returns snapshots of every compartment in slot order.
func (inv *Inventory) Compartments() []Compartment {
	snapshots := make([]Compartment, 0, len(inv.compartments))
	for _, compartment := range inv.compartments {
		snapshots = append(snapshots, *compartment)
	}
	return snapshots
}

func (inv *Inventory) byName(name string) *Compartment {
	for _, compartment := range inv.compartments {
		if compartment.Name == name {
			return compartment
		}
	}
	return nil
}

func (inv *Inventory) bySlot(slot int) *Compartment {
	for _, compartment := range inv.compartments {
		if compartment.Slot == slot {
			return compartment
		}
	}
	return nil
}
