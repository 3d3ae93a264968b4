package account

import (
	"github.com/amirasaad/retailbank/pkg/money"
)

var (
	// MinimumOpeningDeposit is the smallest first deposit a savings account accepts.
	MinimumOpeningDeposit = money.New(1000)

	// SavingsMonthlyRate is 0.025% per month.
	SavingsMonthlyRate = money.NewRate("0.00025")

	// InvestmentMonthlyRate is 0.075% per month.
	InvestmentMonthlyRate = money.NewRate("0.00075")
)

// check they meet the interfaces
var (
	_ InterestBearing = &Savings{}
	_ InterestBearing = &Investment{}
	_ Account         = &Cheque{}
)

// Savings is an interest-bearing account that never allows withdrawals.
type Savings struct {
	base
}

func (s *Savings) Kind() Kind { return KindSavings }

// Deposit rejects a first deposit below MinimumOpeningDeposit. Opening a savings
// account enforces the same minimum; this check guards the account itself.
func (s *Savings) Deposit(amount money.Amount) error {
	if err := s.validateAmount(amount); err != nil {
		return err
	}
	if s.balance.IsZero() && amount.LessThan(MinimumOpeningDeposit) {
		return ErrBelowMinimumOpening
	}
	s.credit(TransactionDeposit, amount)
	return nil
}

// Withdraw always declines.
func (s *Savings) Withdraw(money.Amount) bool {
	return false
}

func (s *Savings) MonthlyRate() money.Rate { return SavingsMonthlyRate }

func (s *Savings) ApplyMonthlyInterest() { s.applyInterest(SavingsMonthlyRate) }

// Investment is an interest-bearing account that allows withdrawals up to its balance.
type Investment struct {
	base
}

func (i *Investment) Kind() Kind { return KindInvestment }

// Withdraw declines non-positive amounts and amounts above the current balance.
func (i *Investment) Withdraw(amount money.Amount) bool {
	if i.validateAmount(amount) != nil || amount.GreaterThan(i.balance) {
		return false
	}
	i.debit(amount)
	return true
}

func (i *Investment) MonthlyRate() money.Rate { return InvestmentMonthlyRate }

func (i *Investment) ApplyMonthlyInterest() { i.applyInterest(InvestmentMonthlyRate) }

// Cheque is a transactional account with no balance floor. It does not accrue interest.
type Cheque struct {
	base
	employer       string
	companyAddress string
}

func (c *Cheque) Kind() Kind { return KindCheque }

// Withdraw declines only non-positive amounts; the balance may go negative.
func (c *Cheque) Withdraw(amount money.Amount) bool {
	if c.validateAmount(amount) != nil {
		return false
	}
	c.debit(amount)
	return true
}

func (c *Cheque) Employer() string { return c.employer }

func (c *Cheque) CompanyAddress() string { return c.companyAddress }
