package account

import (
	"time"

	"github.com/amirasaad/retailbank/pkg/money"
	"github.com/google/uuid"
)

// TransactionKind classifies a monetary event on an account.
type TransactionKind string

// Transaction kinds. DEPOSIT and INTEREST credit the account, WITHDRAW debits it
// and BALANCE_CHECK is informational.
const (
	TransactionDeposit      TransactionKind = "DEPOSIT"
	TransactionWithdraw     TransactionKind = "WITHDRAW"
	TransactionInterest     TransactionKind = "INTEREST"
	TransactionBalanceCheck TransactionKind = "BALANCE_CHECK"
)

// ParseTransactionKind accepts the exact upper-case names written by the store.
func ParseTransactionKind(s string) (TransactionKind, bool) {
	switch k := TransactionKind(s); k {
	case TransactionDeposit, TransactionWithdraw, TransactionInterest, TransactionBalanceCheck:
		return k, true
	}
	return "", false
}

// Transaction is an immutable record of a monetary event. Amount is always the
// unsigned magnitude; use Signed for its effect on the balance.
type Transaction struct {
	id        uuid.UUID
	kind      TransactionKind
	amount    money.Amount
	timestamp time.Time
}

func newTransaction(kind TransactionKind, amount money.Amount) Transaction {
	return Transaction{
		id:        uuid.New(),
		kind:      kind,
		amount:    amount,
		timestamp: time.Now().UTC(),
	}
}

// NewTransactionFromData creates a Transaction from raw data (used for store hydration or test fixtures).
// This bypasses invariants and should only be used for repository hydration or tests.
func NewTransactionFromData(kind TransactionKind, amount money.Amount, timestamp time.Time) Transaction {
	return Transaction{
		id:        uuid.New(),
		kind:      kind,
		amount:    amount,
		timestamp: timestamp,
	}
}

// ID is an in-memory identity; it is not persisted.
func (t Transaction) ID() uuid.UUID { return t.id }

func (t Transaction) Kind() TransactionKind { return t.kind }

func (t Transaction) Amount() money.Amount { return t.amount }

func (t Transaction) Timestamp() time.Time { return t.timestamp }

// Signed returns the amount with the sign of its effect on the balance.
func (t Transaction) Signed() money.Amount {
	switch t.kind {
	case TransactionDeposit, TransactionInterest:
		return t.amount
	case TransactionWithdraw:
		return t.amount.Neg()
	default:
		return money.Zero
	}
}
