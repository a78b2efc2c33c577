package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyler-dunkel/vendo/internal/domain"
	"github.com/tyler-dunkel/vendo/internal/ports/mocks"
)

func frozenClock(t *testing.T) (*mocks.MockClock, time.Time) {
	t.Helper()

	now := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(now).Maybe()
	return clock, now
}

func newTestUser(t *testing.T, cash int) *User {
	t.Helper()

	clock, _ := frozenClock(t)
	actor := NewActor(ActorDetails{Cash: cash}, "", nil, clock)
	user, ok := actor.(*User)
	require.True(t, ok)
	return user
}

func newTestAdmin(t *testing.T, cash int) *Admin {
	t.Helper()

	clock, _ := frozenClock(t)
	verifier := mocks.NewMockCredentialVerifier(t)
	verifier.EXPECT().Verify("open-sesame").Return(true)

	actor := NewActor(ActorDetails{Cash: cash}, "open-sesame", verifier, clock)
	admin, ok := actor.(*Admin)
	require.True(t, ok)
	return admin
}

func stockedMachine(t *testing.T) *domain.VendingMachine {
	t.Helper()

	machine := domain.NewMachine()
	machine.LoadCatalog([]domain.CatalogEntry{
		{Name: "Sour Patch Kids", Price: 200, Amount: 10},
		{Name: "twix", Price: 75, Amount: 5},
		{Name: "Atomic Warheads", Price: 50, Amount: 3},
	})
	return machine
}

func TestAddCoinMovesCashAndRecordsHistory(t *testing.T) {
	machine := stockedMachine(t)
	user := newTestUser(t, 100)

	user.AddCoinToMachine(machine, 25)

	assert.Equal(t, 75, user.Cash())
	assert.Equal(t, 25, machine.TransactionBalance())

	history := user.History()
	require.Len(t, history, 1)
	assert.Equal(t, ActionAddCoin, history[0].Action)
	assert.Equal(t, 25, history[0].Amount)
	assert.False(t, history[0].At.IsZero())
}

func TestAddCoinRejectedDenominationIsSilentNoOp(t *testing.T) {
	machine := stockedMachine(t)
	user := newTestUser(t, 100)

	user.AddCoinToMachine(machine, 20)

	assert.Equal(t, 100, user.Cash())
	assert.Equal(t, 0, machine.TransactionBalance())
	assert.Empty(t, user.History())
}

func TestAddCoinRequiresCashOnHand(t *testing.T) {
	machine := stockedMachine(t)
	user := newTestUser(t, 10)

	user.AddCoinToMachine(machine, 25)

	assert.Equal(t, 10, user.Cash())
	assert.Equal(t, 0, machine.TransactionBalance())
	assert.Empty(t, user.History())
}

func TestCheckCompartmentPriceRecordsOnlyHits(t *testing.T) {
	machine := stockedMachine(t)
	user := newTestUser(t, 0)

	product, ok := user.CheckCompartmentPrice(machine, "twix")
	require.True(t, ok)
	assert.Equal(t, 75, product.Price)

	_, ok = user.CheckCompartmentPrice(machine, "kale chips")
	assert.False(t, ok)

	history := user.History()
	require.Len(t, history, 1)
	assert.Equal(t, ActionCheckPrice, history[0].Action)
	require.NotNil(t, history[0].Product)
	assert.Equal(t, "twix", history[0].Product.Name)
}

// Scenario: a funded buyer takes a twix and walks away with the product, the
// change back in their pocket, and an audit trail of every step.
func TestBuyProductHappyPath(t *testing.T) {
	machine := stockedMachine(t)
	user := newTestUser(t, 500)

	for i := 0; i < 3; i++ {
		user.AddCoinToMachine(machine, 25)
	}

	msg, ok := user.BuyProduct(machine, 1)
	require.True(t, ok)
	assert.Empty(t, msg)

	products := user.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "twix", products[0].Name)
	assert.Equal(t, 1, products[0].Amount)

	assert.Equal(t, 425, user.Cash(), "exact payment returns no change")
	assert.Equal(t, 75, machine.DrawerBalance())

	history := user.History()
	require.Len(t, history, 4)
	assert.Equal(t, ActionBuyProduct, history[3].Action)
}

func TestBuyProductOverpaymentConvertsChangeBackToCash(t *testing.T) {
	machine := stockedMachine(t)
	user := newTestUser(t, 100)

	user.AddCoinToMachine(machine, 50)
	user.AddCoinToMachine(machine, 50)

	msg, ok := user.BuyProduct(machine, 1)
	require.True(t, ok)
	assert.Empty(t, msg)

	// 100 in, 75 spent, 25 back.
	assert.Equal(t, 25, user.Cash())
	assert.Equal(t, 0, machine.TransactionBalance())
}

func TestBuyProductUnderfundedReturnsMachineMessage(t *testing.T) {
	machine := stockedMachine(t)
	user := newTestUser(t, 500)

	for i := 0; i < 5; i++ {
		user.AddCoinToMachine(machine, 10)
	}

	msg, ok := user.BuyProduct(machine, 1)
	assert.False(t, ok)
	assert.Equal(t, "Please add $0.25", msg)
	assert.Equal(t, 50, machine.TransactionBalance())
	assert.Empty(t, user.Products())
}

func TestBuyProductSoldOutSlot(t *testing.T) {
	machine := domain.NewMachine()
	machine.LoadCatalog([]domain.CatalogEntry{{Name: "twix", Price: 75, Amount: 0}})
	user := newTestUser(t, 100)

	msg, ok := user.BuyProduct(machine, 0)
	assert.False(t, ok)
	assert.Equal(t, "Please make another selection.", msg)
}

func TestConvertChangeToCash(t *testing.T) {
	user := newTestUser(t, 0)

	change := domain.ChangeBreakdown{Fifty: 1, Quarter: 2, Dime: 1, Nickel: 1, Penny: 3}
	assert.Equal(t, 118, user.ConvertChangeToCash(change))
	assert.Equal(t, 0, user.ConvertChangeToCash(domain.ChangeBreakdown{}))
}

func TestAddCashIgnoresNegativeAmounts(t *testing.T) {
	user := newTestUser(t, 40)

	user.AddCash(60)
	assert.Equal(t, 100, user.Cash())

	user.AddCash(-10)
	assert.Equal(t, 100, user.Cash())
}

// Scenario: the admin raises every sample price by a dime and the new prices
// show up on the very next price check.
func TestAdminRepricesEveryCompartment(t *testing.T) {
	machine := stockedMachine(t)
	admin := newTestAdmin(t, 0)
	shopper := newTestUser(t, 0)

	wantPrices := map[string]int{
		"Sour Patch Kids": 210,
		"twix":            85,
		"Atomic Warheads": 60,
	}
	for _, compartment := range machine.Compartments() {
		admin.SetCompartmentPrice(machine, []int{compartment.Slot}, compartment.Price+10)
	}

	for name, want := range wantPrices {
		product, ok := shopper.CheckCompartmentPrice(machine, name)
		require.True(t, ok, name)
		assert.Equal(t, want, product.Price, name)
	}

	history := admin.History()
	require.Len(t, history, 3)
	for _, entry := range history {
		assert.Equal(t, ActionSetPrice, entry.Action)
	}
}

func TestAdminLoadProductsStocksMachine(t *testing.T) {
	machine := domain.NewMachine()
	admin := newTestAdmin(t, 0)

	admin.LoadProducts(machine, []domain.CatalogEntry{{Name: "twix", Price: 75, Amount: 5}})

	product, ok := machine.QueryPrice("twix")
	require.True(t, ok)
	assert.Equal(t, 5, product.Amount)

	history := admin.History()
	require.Len(t, history, 1)
	assert.Equal(t, ActionLoadProducts, history[0].Action)
	assert.Len(t, history[0].Entries, 1)
}

func TestAdminSweepTakesDrawerAndAbandonedTransaction(t *testing.T) {
	machine := stockedMachine(t)
	admin := newTestAdmin(t, 0)
	shopper := newTestUser(t, 200)

	shopper.AddCoinToMachine(machine, 50)
	shopper.AddCoinToMachine(machine, 25)
	_, ok := shopper.BuyProduct(machine, 1)
	require.True(t, ok)
	shopper.AddCoinToMachine(machine, 10) // walks away mid-transaction

	got := admin.GetMoneyFromMachine(machine)
	assert.Equal(t, 85, got)
	assert.Equal(t, 85, admin.Cash())
	assert.Equal(t, 0, machine.DrawerBalance())
	assert.Equal(t, 0, machine.TransactionBalance())

	assert.Equal(t, 0, admin.GetMoneyFromMachine(machine), "second sweep finds nothing new")
}

func TestCountMoneyIsAnAuditedRead(t *testing.T) {
	admin := newTestAdmin(t, 145)

	assert.Equal(t, 145, admin.CountMoney())
	assert.Equal(t, 145, admin.CountMoney())

	history := admin.History()
	require.Len(t, history, 2)
	for _, entry := range history {
		assert.Equal(t, ActionCountMoney, entry.Action)
		assert.Equal(t, 145, entry.Amount)
	}
}

func TestHistoryAndProductsAreCopies(t *testing.T) {
	machine := stockedMachine(t)
	user := newTestUser(t, 100)

	user.AddCoinToMachine(machine, 25)

	history := user.History()
	history[0].Action = "tampered"
	assert.Equal(t, ActionAddCoin, user.History()[0].Action)
}
