package application

import (
	"time"

	"github.com/tyler-dunkel/vendo/internal/domain"
)

type Action string

const (
	ActionAddCoin      Action = "addCoin"
	ActionCheckPrice   Action = "checkPrice"
	ActionBuyProduct   Action = "buyProduct"
	ActionLoadProducts Action = "loadProducts"
	ActionSetPrice     Action = "setPrice"
	ActionCollectCash  Action = "getMoneyFromMachine"
	ActionCountMoney   Action = "countMoney"
)

// HistoryEntry is one record in an actor's append-only audit trail. Only the
// fields relevant to the action are populated.
type HistoryEntry struct {
	Action  Action
	At      time.Time
	Amount  int // cents moved, for coin/cash actions
	Price   int // cents, for price changes
	Slots   []int
	Product *domain.Compartment
	Entries []domain.CatalogEntry
}
