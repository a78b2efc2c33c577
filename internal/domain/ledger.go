package domain

// TransactionLedger tracks the machine's money: what the current buyer has
// inserted but not yet spent, and what the machine has retained from
// completed sales. Neither balance ever goes negative.
type TransactionLedger struct {
	inTransaction int // cents
	inDrawer      int // cents
}

// credit adds an accepted coin to the current transaction and returns the new
// transaction balance.
func (l *TransactionLedger) credit(amountCents int) int {
	l.inTransaction += amountCents
	return l.inTransaction
}

// settle moves a completed sale's price out of the buyer's balance and into
// the drawer. Callers guarantee priceCents <= InTransaction().
func (l *TransactionLedger) settle(priceCents int) {
	l.inTransaction -= priceCents
	l.inDrawer += priceCents
}

// drain zeroes the transaction balance and returns what was left in it. Used
// at dispense time so the whole remainder comes back as change.
func (l *TransactionLedger) drain() int {
	remainder := l.inTransaction
	l.inTransaction = 0
	return remainder
}

// sweep empties both balances and returns their combined value.
func (l *TransactionLedger) sweep() int {
	cash := l.inDrawer + l.inTransaction
	l.inDrawer = 0
	l.inTransaction = 0
	return cash
}

// InTransaction is the current buyer's unspent balance in cents.
func (l *TransactionLedger) InTransaction() int {
	return l.inTransaction
}

// InDrawer is the machine's retained earnings in cents.
func (l *TransactionLedger) InDrawer() int {
	return l.inDrawer
}
