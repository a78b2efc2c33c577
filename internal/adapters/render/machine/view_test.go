package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyler-dunkel/vendo/internal/domain"
)

func stockedMachine(t *testing.T) *domain.VendingMachine {
	t.Helper()

	m := domain.NewMachine()
	m.LoadCatalog([]domain.CatalogEntry{
		{Name: "twix", Price: 75, Amount: 5},
		{Name: "Atomic Warheads", Price: 50, Amount: 0},
	})
	return m
}

func TestRenderListsCompartmentsAndBalance(t *testing.T) {
	m := stockedMachine(t)
	_, ok := m.InsertCoin(25)
	require.True(t, ok)

	out := Render(m, RenderOptions{})

	assert.Contains(t, out, "Vending Machine")
	assert.Contains(t, out, "slots: 2")
	assert.Contains(t, out, "[0]")
	assert.Contains(t, out, "twix")
	assert.Contains(t, out, "$0.75")
	assert.Contains(t, out, "x5")
	assert.Contains(t, out, "in transaction: $0.25")
	assert.NotContains(t, out, "in drawer", "drawer is admin-only")
}

func TestRenderShowsDrawerForAdmins(t *testing.T) {
	m := stockedMachine(t)
	for _, coin := range []int{50, 25} {
		_, ok := m.InsertCoin(coin)
		require.True(t, ok)
	}
	_, err := m.Select(0)
	require.NoError(t, err)

	out := Render(m, RenderOptions{ShowDrawer: true})

	assert.Contains(t, out, "in drawer: $0.75")
	assert.Contains(t, out, "sales completed: 1")
}

func TestRenderEmptyMachine(t *testing.T) {
	out := Render(domain.NewMachine(), RenderOptions{})

	assert.Contains(t, out, "slots: 0")
	assert.Contains(t, out, "No products loaded.")
}

func TestRenderReceiptSuccessWithChange(t *testing.T) {
	change := domain.ChangeBreakdown{Quarter: 1, Penny: 2}
	receipt := domain.Receipt{
		Product: &domain.Compartment{Slot: 0, Name: "twix", Price: 75, Amount: 1},
		Change:  &change,
	}

	out := RenderReceipt(receipt)

	assert.Contains(t, out, "Enjoy your twix!")
	assert.Contains(t, out, "change: 1x quarter, 2x penny")
}

func TestRenderReceiptSuccessWithoutChange(t *testing.T) {
	change := domain.ChangeBreakdown{}
	receipt := domain.Receipt{
		Product: &domain.Compartment{Name: "twix", Amount: 1},
		Change:  &change,
	}

	out := RenderReceipt(receipt)

	assert.Contains(t, out, "Enjoy your twix!")
	assert.NotContains(t, out, "change:")
}

func TestRenderReceiptFailureShowsMessage(t *testing.T) {
	out := RenderReceipt(domain.Receipt{Message: "Please add $0.25"})
	assert.Contains(t, out, "Please add $0.25")
}

func TestChangeLineOrdersLargestFirst(t *testing.T) {
	change := domain.ChangeBreakdown{Fifty: 2, Dime: 1, Penny: 3}
	assert.Equal(t, "2x fifty, 1x dime, 3x penny", changeLine(change))
	assert.Equal(t, "none", changeLine(domain.ChangeBreakdown{}))
}
