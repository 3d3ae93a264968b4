// Package account models bank accounts and their transaction history.
//
// Three variants share one contract: Savings and Investment accrue monthly
// interest, Cheque carries employer details and allows overdraft.
//
// Invariants:
//   - Balance equals the sum of Signed() over the transaction history, from creation onward.
//   - Transactions are append-only and kept in chronological (insertion) order.
//   - An account refers to its owner by customer ID only.
//   - Accounts are not safe for concurrent use; callers serialise access (see the bank service).
package account

import (
	"github.com/amirasaad/retailbank/pkg/money"
)

// Account is the contract shared by every account variant.
type Account interface {
	Number() string
	Kind() Kind
	Balance() money.Amount
	Branch() string
	// OwnerID is the customer ID of the owner; the account never mutates its owner.
	OwnerID() string
	// Transactions returns a copy of the history in chronological order.
	Transactions() []Transaction

	// Deposit credits a positive amount and records a DEPOSIT transaction.
	Deposit(amount money.Amount) error
	// Withdraw debits amount and records a WITHDRAW transaction. A declined
	// withdrawal returns false and changes nothing.
	Withdraw(amount money.Amount) bool
	// CheckBalance records a BALANCE_CHECK transaction and returns the balance.
	CheckBalance() money.Amount
	// Replay appends a historical transaction without touching the balance.
	// It exists for store hydration only.
	Replay(tx Transaction)
}

// InterestBearing is implemented by the variants that take part in monthly interest runs.
type InterestBearing interface {
	Account
	MonthlyRate() money.Rate
	// ApplyMonthlyInterest credits balance × MonthlyRate and records an INTEREST transaction.
	ApplyMonthlyInterest()
}

// base holds the state and behaviour common to every variant.
type base struct {
	number       string
	ownerID      string
	branch       string
	balance      money.Amount
	transactions []Transaction
}

func (b *base) Number() string        { return b.number }
func (b *base) OwnerID() string       { return b.ownerID }
func (b *base) Branch() string        { return b.branch }
func (b *base) Balance() money.Amount { return b.balance }

func (b *base) Transactions() []Transaction {
	out := make([]Transaction, len(b.transactions))
	copy(out, b.transactions)
	return out
}

func (b *base) Replay(tx Transaction) {
	b.transactions = append(b.transactions, tx)
}

func (b *base) CheckBalance() money.Amount {
	b.transactions = append(b.transactions, newTransaction(TransactionBalanceCheck, money.Zero))
	return b.balance
}

// validateAmount checks the invariant shared by every credit and debit.
func (b *base) validateAmount(amount money.Amount) error {
	if !money.IsPositive(amount) {
		return ErrInvalidAmount
	}
	return nil
}

func (b *base) credit(kind TransactionKind, amount money.Amount) {
	b.balance = b.balance.Add(amount)
	b.transactions = append(b.transactions, newTransaction(kind, amount))
}

func (b *base) debit(amount money.Amount) {
	b.balance = b.balance.Sub(amount)
	b.transactions = append(b.transactions, newTransaction(TransactionWithdraw, amount))
}

func (b *base) Deposit(amount money.Amount) error {
	if err := b.validateAmount(amount); err != nil {
		return err
	}
	b.credit(TransactionDeposit, amount)
	return nil
}

// applyInterest credits rate × balance rounded to cents. Zero and negative
// balances, and interest that rounds to zero, accrue nothing.
func (b *base) applyInterest(rate money.Rate) {
	interest := rate.Accrue(b.balance)
	if !money.IsPositive(interest) {
		return
	}
	b.credit(TransactionInterest, interest)
}
