package domain

// Denominations are the coin values the machine understands, in cents,
// largest first.
var Denominations = [...]int{50, 25, 10, 5, 1}

// ChangeBreakdown counts the coins handed back after a purchase.
type ChangeBreakdown struct {
	Fifty   int
	Quarter int
	Dime    int
	Nickel  int
	Penny   int
}

// AcceptedCoin reports whether amountCents is one of the machine's
// denominations.
func AcceptedCoin(amountCents int) bool {
	for _, denomination := range Denominations {
		if amountCents == denomination {
			return true
		}
	}
	return false
}

// MakeChange breaks amountCents into coins by greedy descent through the
// denominations. The penny guarantees every non-negative amount resolves
// exactly.
func MakeChange(amountCents int) ChangeBreakdown {
	var change ChangeBreakdown

	for amountCents >= 50 {
		change.Fifty++
		amountCents -= 50
	}
	for amountCents >= 25 {
		change.Quarter++
		amountCents -= 25
	}
	for amountCents >= 10 {
		change.Dime++
		amountCents -= 10
	}
	for amountCents >= 5 {
		change.Nickel++
		amountCents -= 5
	}
	for amountCents >= 1 {
		change.Penny++
		amountCents--
	}

	return change
}

// Cents is the breakdown's total value.
func (c ChangeBreakdown) Cents() int {
	return c.Fifty*50 + c.Quarter*25 + c.Dime*10 + c.Nickel*5 + c.Penny
}

// CoinCount is the total number of coins in the breakdown.
func (c ChangeBreakdown) CoinCount() int {
	return c.Fifty + c.Quarter + c.Dime + c.Nickel + c.Penny
}
