package account

import (
	"fmt"

	"github.com/amirasaad/retailbank/pkg/money"
)

// Builder provides a fluent API for constructing Account instances of any variant.
type Builder struct {
	kind           Kind
	number         string
	ownerID        string
	branch         string
	employer       string
	companyAddress string
	balance        money.Amount
}

// New creates a Builder for the given variant with a zero balance.
func New(kind Kind) *Builder {
	return &Builder{kind: kind, balance: money.Zero}
}

// WithNumber sets the account number. This is a mandatory field.
func (b *Builder) WithNumber(number string) *Builder {
	b.number = number
	return b
}

// WithOwner sets the owning customer's ID. This is a mandatory field.
func (b *Builder) WithOwner(customerID string) *Builder {
	b.ownerID = customerID
	return b
}

// WithBranch sets the originating branch label.
func (b *Builder) WithBranch(branch string) *Builder {
	b.branch = branch
	return b
}

// WithEmployer sets the employer details required by cheque accounts. Other variants ignore them.
func (b *Builder) WithEmployer(employer, companyAddress string) *Builder {
	b.employer = employer
	b.companyAddress = companyAddress
	return b
}

// WithBalance sets the starting balance without recording a transaction. This should
// only be used for hydrating an existing account from a data store or for test setup.
func (b *Builder) WithBalance(balance money.Amount) *Builder {
	b.balance = balance
	return b
}

// Build validates the variant and mandatory fields and returns the account.
func (b *Builder) Build() (Account, error) {
	if b.number == "" || b.ownerID == "" {
		return nil, ErrMissingIdentity
	}
	core := base{
		number:  b.number,
		ownerID: b.ownerID,
		branch:  b.branch,
		balance: b.balance,
	}
	switch b.kind {
	case KindSavings:
		return &Savings{base: core}, nil
	case KindInvestment:
		return &Investment{base: core}, nil
	case KindCheque:
		if b.employer == "" || b.companyAddress == "" {
			return nil, ErrMissingRequiredArgument
		}
		return &Cheque{base: core, employer: b.employer, companyAddress: b.companyAddress}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAccountType, b.kind)
	}
}
