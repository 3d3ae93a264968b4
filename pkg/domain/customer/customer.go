// Package customer models bank customers and the banking operations they perform
// on the accounts they own.
//
// A Customer is one type with a sealed Profile variant: Individual or Company.
// Customers exclusively own their accounts, in opening order.
package customer

import (
	"errors"
	"fmt"

	"github.com/amirasaad/retailbank/pkg/domain/account"
	"github.com/amirasaad/retailbank/pkg/money"
)

// ErrForeignAccount is returned when restoring an account whose owner is another customer.
var ErrForeignAccount = errors.New("account belongs to another customer")

// Customer owns accounts and exposes banking operations on them.
type Customer struct {
	id       string
	address  string
	branch   string
	profile  Profile
	accounts []account.Account
}

// New creates a customer with an already assigned ID. IDs are handed out by the bank.
func New(id, address, branch string, profile Profile) *Customer {
	return &Customer{
		id:      id,
		address: address,
		branch:  branch,
		profile: profile,
	}
}

func (c *Customer) ID() string       { return c.id }
func (c *Customer) Address() string  { return c.address }
func (c *Customer) Branch() string   { return c.branch }
func (c *Customer) Profile() Profile { return c.profile }
func (c *Customer) Kind() Kind       { return c.profile.kind() }

// DisplayName is "first surname" for individuals and the company name for companies.
func (c *Customer) DisplayName() string { return c.profile.DisplayName() }

// Accounts returns the customer's accounts in opening order. The slice is a copy.
func (c *Customer) Accounts() []account.Account {
	out := make([]account.Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// nextAccountNumber follows "<customerId>-A<seq>", seq starting at 1.
func (c *Customer) nextAccountNumber() string {
	return fmt.Sprintf("%s-A%d", c.id, len(c.accounts)+1)
}

// OpenAccount opens an account of the named type ("savings", "investment" or
// "cheque", case-insensitive). Cheque accounts need exactly two extra
// arguments: employer and company address. A positive initial deposit is
// credited through the new account's Deposit. Nothing is appended on error.
func (c *Customer) OpenAccount(
	typeName string,
	initialDeposit money.Amount,
	branch string,
	extra ...string,
) (account.Account, error) {
	kind, err := account.ParseKind(typeName)
	if err != nil {
		return nil, err
	}
	if initialDeposit.IsNegative() {
		return nil, account.ErrInvalidAmount
	}

	b := account.New(kind).
		WithNumber(c.nextAccountNumber()).
		WithOwner(c.id).
		WithBranch(branch)

	switch kind {
	case account.KindSavings:
		if initialDeposit.LessThan(account.MinimumOpeningDeposit) {
			return nil, account.ErrBelowMinimumOpening
		}
	case account.KindCheque:
		if len(extra) != 2 {
			return nil, fmt.Errorf("%w: got %d of 2 arguments", account.ErrMissingRequiredArgument, len(extra))
		}
		b = b.WithEmployer(extra[0], extra[1])
	}

	acc, err := b.Build()
	if err != nil {
		return nil, err
	}
	if money.IsPositive(initialDeposit) {
		if err := acc.Deposit(initialDeposit); err != nil {
			return nil, err
		}
	}
	c.accounts = append(c.accounts, acc)
	return acc, nil
}

// FindAccount looks up an owned account by exact number.
func (c *Customer) FindAccount(number string) (account.Account, error) {
	for _, a := range c.accounts {
		if a.Number() == number {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", account.ErrAccountNotFound, number)
}

// Deposit credits the named account.
func (c *Customer) Deposit(number string, amount money.Amount) error {
	a, err := c.FindAccount(number)
	if err != nil {
		return err
	}
	return a.Deposit(amount)
}

// Withdraw debits the named account. A declined withdrawal is reported as
// false with a nil error; only a missing account is an error.
func (c *Customer) Withdraw(number string, amount money.Amount) (bool, error) {
	a, err := c.FindAccount(number)
	if err != nil {
		return false, err
	}
	return a.Withdraw(amount), nil
}

// CheckBalance returns the named account's balance and records a BALANCE_CHECK.
func (c *Customer) CheckBalance(number string) (money.Amount, error) {
	a, err := c.FindAccount(number)
	if err != nil {
		return money.Zero, err
	}
	return a.CheckBalance(), nil
}

// ApplyInterestToAllAccounts runs monthly interest on every interest-bearing
// account in opening order. Other accounts are skipped.
func (c *Customer) ApplyInterestToAllAccounts() {
	for _, a := range c.accounts {
		if ib, ok := a.(account.InterestBearing); ok {
			ib.ApplyMonthlyInterest()
		}
	}
}

// RestoreAccount appends a hydrated account as-is. This bypasses opening rules
// and should only be used for repository hydration or tests.
func (c *Customer) RestoreAccount(a account.Account) error {
	if a.OwnerID() != c.id {
		return fmt.Errorf("%w: %s is owned by %s", ErrForeignAccount, a.Number(), a.OwnerID())
	}
	c.accounts = append(c.accounts, a)
	return nil
}
