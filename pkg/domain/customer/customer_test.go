package customer_test

import (
	"testing"

	"github.com/amirasaad/retailbank/pkg/domain/account"
	"github.com/amirasaad/retailbank/pkg/domain/customer"
	"github.com/amirasaad/retailbank/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJane() *customer.Customer {
	return customer.New("IND-1000", "123 St", "Main", customer.Individual{FirstName: "Jane", Surname: "Doe"})
}

func TestProfiles(t *testing.T) {
	t.Parallel()
	jane := newJane()
	assert.Equal(t, customer.KindIndividual, jane.Kind())
	assert.Equal(t, "Jane Doe", jane.DisplayName())

	acme := customer.New("CMP-2000", "1 Factory Rd", "North", customer.Company{Name: "Acme Co", CellNumber: "0821234567"})
	assert.Equal(t, customer.KindCompany, acme.Kind())
	assert.Equal(t, "Acme Co", acme.DisplayName())
	assert.Equal(t, "North", acme.Branch())
}

func TestOpenAccount(t *testing.T) {
	t.Parallel()

	t.Run("savings below minimum", func(t *testing.T) {
		c := newJane()
		_, err := c.OpenAccount("savings", money.New(999), "Main")
		assert.ErrorIs(t, err, account.ErrBelowMinimumOpening)
		assert.Empty(t, c.Accounts())
	})

	t.Run("savings at minimum", func(t *testing.T) {
		c := newJane()
		acc, err := c.OpenAccount("Savings", money.New(1000), "Main")
		require.NoError(t, err)
		assert.Equal(t, account.KindSavings, acc.Kind())
		assert.True(t, acc.Balance().Equal(money.New(1000)))
		require.Len(t, acc.Transactions(), 1)
		assert.Equal(t, account.TransactionDeposit, acc.Transactions()[0].Kind())
	})

	t.Run("cheque missing company address", func(t *testing.T) {
		c := newJane()
		_, err := c.OpenAccount("cheque", money.New(100), "Main", "Acme Co")
		assert.ErrorIs(t, err, account.ErrMissingRequiredArgument)
		assert.Empty(t, c.Accounts())
	})

	t.Run("unknown type", func(t *testing.T) {
		c := newJane()
		_, err := c.OpenAccount("current", money.New(100), "Main")
		assert.ErrorIs(t, err, account.ErrUnknownAccountType)
	})

	t.Run("negative initial deposit", func(t *testing.T) {
		c := newJane()
		_, err := c.OpenAccount("investment", money.New(-1), "Main")
		assert.ErrorIs(t, err, account.ErrInvalidAmount)
	})

	t.Run("sequential account numbers", func(t *testing.T) {
		c := newJane()
		a1, err := c.OpenAccount("investment", money.Zero, "Main")
		require.NoError(t, err)
		a2, err := c.OpenAccount("CHEQUE", money.Zero, "East", "Acme Co", "1 Factory Rd")
		require.NoError(t, err)
		assert.Equal(t, "IND-1000-A1", a1.Number())
		assert.Equal(t, "IND-1000-A2", a2.Number())
		assert.Equal(t, "East", a2.Branch())
		assert.Equal(t, "IND-1000", a2.OwnerID())
		assert.Empty(t, a1.Transactions(), "zero opening deposit records nothing")
	})
}

func TestChequeOverdraftScenario(t *testing.T) {
	t.Parallel()
	c := newJane()
	acc, err := c.OpenAccount("cheque", money.Zero, "Main", "Acme Co", "1 Factory Rd")
	require.NoError(t, err)

	ok, err := c.Withdraw(acc.Number(), money.New(500))
	require.NoError(t, err)
	assert.True(t, ok)

	assert.True(t, acc.Balance().Equal(money.New(-500)))
	txs := acc.Transactions()
	require.Len(t, txs, 1)
	assert.Equal(t, account.TransactionWithdraw, txs[0].Kind())
}

func TestDepositAndWithdrawByNumber(t *testing.T) {
	t.Parallel()
	c := newJane()
	acc, err := c.OpenAccount("investment", money.New(100), "Main")
	require.NoError(t, err)

	require.NoError(t, c.Deposit(acc.Number(), money.MustParse("50.50")))
	assert.ErrorIs(t, c.Deposit(acc.Number(), money.Zero), account.ErrInvalidAmount)

	ok, err := c.Withdraw(acc.Number(), money.New(1000))
	require.NoError(t, err)
	assert.False(t, ok, "insufficient funds is a decline, not an error")
	assert.Len(t, acc.Transactions(), 2)

	err = c.Deposit("IND-1000-A9", money.New(1))
	assert.ErrorIs(t, err, account.ErrAccountNotFound)
	_, err = c.Withdraw("IND-1000-A9", money.New(1))
	assert.ErrorIs(t, err, account.ErrAccountNotFound)
	_, err = c.CheckBalance("IND-1000-A9")
	assert.ErrorIs(t, err, account.ErrAccountNotFound)
}

func TestApplyInterestToAllAccounts(t *testing.T) {
	t.Parallel()
	c := newJane()
	sav, err := c.OpenAccount("savings", money.New(1000), "Main")
	require.NoError(t, err)
	inv, err := c.OpenAccount("investment", money.New(2000), "Main")
	require.NoError(t, err)
	chq, err := c.OpenAccount("cheque", money.New(3000), "Main", "Acme Co", "1 Factory Rd")
	require.NoError(t, err)

	c.ApplyInterestToAllAccounts()

	assert.True(t, sav.Balance().Equal(money.MustParse("1000.25")))
	assert.True(t, inv.Balance().Equal(money.MustParse("2001.5")))
	assert.True(t, chq.Balance().Equal(money.New(3000)))
	assert.Len(t, chq.Transactions(), 1)
}

func TestRestoreAccount(t *testing.T) {
	t.Parallel()
	c := newJane()
	own, err := account.New(account.KindInvestment).WithNumber("IND-1000-A1").WithOwner("IND-1000").Build()
	require.NoError(t, err)
	require.NoError(t, c.RestoreAccount(own))

	other, err := account.New(account.KindInvestment).WithNumber("IND-1001-A1").WithOwner("IND-1001").Build()
	require.NoError(t, err)
	assert.ErrorIs(t, c.RestoreAccount(other), customer.ErrForeignAccount)

	next, err := c.OpenAccount("investment", money.Zero, "Main")
	require.NoError(t, err)
	assert.Equal(t, "IND-1000-A2", next.Number())
}

func TestAccountsReturnsCopy(t *testing.T) {
	t.Parallel()
	c := newJane()
	_, err := c.OpenAccount("investment", money.Zero, "Main")
	require.NoError(t, err)
	accs := c.Accounts()
	accs[0] = nil
	assert.NotNil(t, c.Accounts()[0])
}
