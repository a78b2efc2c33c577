package machine

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tyler-dunkel/vendo/internal/domain"
)

// RenderOptions controls how much of the machine a viewer gets to see.
type RenderOptions struct {
	// ShowDrawer adds the retained earnings and the dispense log; meant for
	// the admin view only.
	ShowDrawer bool
}

// Render draws the machine's compartments and balances.
func Render(m *domain.VendingMachine, opts RenderOptions) string {
	return renderView(m, opts, newStyles())
}

func renderView(m *domain.VendingMachine, opts RenderOptions, s styles) string {
	compartments := m.Compartments()

	lines := []string{
		s.title.Render("Vending Machine"),
		s.header.Render(fmt.Sprintf("slots: %d", len(compartments))),
	}

	if len(compartments) == 0 {
		lines = append(lines, s.empty.Render("No products loaded."))
	}

	for _, compartment := range compartments {
		lines = append(lines, compartmentLine(compartment, s))
	}

	lines = append(lines, s.section.Render(
		s.balance.Render(fmt.Sprintf("in transaction: %s", domain.FormatUSD(m.TransactionBalance()))),
	))

	if opts.ShowDrawer {
		lines = append(lines, s.drawer.Render(fmt.Sprintf("in drawer: %s", domain.FormatUSD(m.DrawerBalance()))))
		lines = append(lines, s.drawer.Render(fmt.Sprintf("sales completed: %d", len(m.DispenseLog()))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func compartmentLine(compartment domain.Compartment, s styles) string {
	nameStyle := s.name
	if compartment.Amount == 0 {
		nameStyle = s.soldOut
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.slot.Render(fmt.Sprintf("[%d]", compartment.Slot)),
		" ",
		nameStyle.Render(fmt.Sprintf("%-20s", compartment.Name)),
		" ",
		s.price.Render(fmt.Sprintf("%8s", domain.FormatUSD(compartment.Price))),
		" ",
		s.header.Render(fmt.Sprintf("x%d", compartment.Amount)),
	)
}

// RenderReceipt draws a purchase result: the dispensed product and its change
// on success, the machine's message otherwise.
func RenderReceipt(receipt domain.Receipt) string {
	s := newStyles()

	if !receipt.Dispensed() {
		return s.message.Render(receipt.Message)
	}

	lines := []string{
		s.product.Render(fmt.Sprintf("Enjoy your %s!", receipt.Product.Name)),
	}

	if receipt.Change != nil && receipt.Change.CoinCount() > 0 {
		lines = append(lines, s.change.Render(fmt.Sprintf("change: %s", changeLine(*receipt.Change))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func changeLine(change domain.ChangeBreakdown) string {
	parts := make([]string, 0, 5)
	for _, coin := range []struct {
		count int
		name  string
	}{
		{change.Fifty, "fifty"},
		{change.Quarter, "quarter"},
		{change.Dime, "dime"},
		{change.Nickel, "nickel"},
		{change.Penny, "penny"},
	} {
		if coin.count > 0 {
			parts = append(parts, fmt.Sprintf("%dx %s", coin.count, coin.name))
		}
	}

	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, ", ")
}
