package bank_test

import (
	"testing"

	"github.com/amirasaad/retailbank/pkg/domain/bank"
	"github.com/amirasaad/retailbank/pkg/domain/customer"
	"github.com/amirasaad/retailbank/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerIDs(t *testing.T) {
	t.Parallel()
	b := bank.New("Acme Bank")
	assert.Equal(t, "Acme Bank", b.Name())
	assert.Equal(t, bank.FirstIndividualSeq, b.NextCustomerNumber(customer.KindIndividual))
	assert.Equal(t, bank.FirstCompanySeq, b.NextCustomerNumber(customer.KindCompany))

	jane := b.AddIndividualCustomer("Jane", "Doe", "123 St", "Main")
	acme := b.AddCompanyCustomer("Acme Co", "1 Factory Rd", "0821234567", "Main")
	john := b.AddIndividualCustomer("John", "Roe", "9 Av", "East")

	assert.Equal(t, "IND-1000", jane.ID())
	assert.Equal(t, "CMP-2000", acme.ID())
	assert.Equal(t, "IND-1001", john.ID())
	assert.Equal(t, 1002, b.NextCustomerNumber(customer.KindIndividual))
	assert.Equal(t, 2001, b.NextCustomerNumber(customer.KindCompany))

	customers := b.Customers()
	require.Len(t, customers, 3)
	assert.Equal(t, []string{"IND-1000", "CMP-2000", "IND-1001"},
		[]string{customers[0].ID(), customers[1].ID(), customers[2].ID()})
}

func TestSeparateBanksHaveIndependentSequences(t *testing.T) {
	t.Parallel()
	a := bank.New("A")
	b := bank.New("B")
	a.AddIndividualCustomer("Jane", "Doe", "123 St", "Main")
	assert.Equal(t, "IND-1000", b.AddIndividualCustomer("John", "Roe", "9 Av", "Main").ID())
}

func TestLookups(t *testing.T) {
	t.Parallel()
	b := bank.New("Acme Bank")
	jane := b.AddIndividualCustomer("Jane", "Doe", "123 St", "Main")
	acme := b.AddCompanyCustomer("Acme Co", "1 Factory Rd", "0821234567", "Main")
	acc, err := acme.OpenAccount("investment", money.New(10), "Main")
	require.NoError(t, err)

	got, ok := b.FindCustomerByID("IND-1000")
	assert.True(t, ok)
	assert.Same(t, jane, got)

	_, ok = b.FindCustomerByID("IND-9999")
	assert.False(t, ok)

	found, ok := b.FindAccountByNumber("CMP-2000-A1")
	assert.True(t, ok)
	assert.Same(t, acc, found)

	_, ok = b.FindAccountByNumber("CMP-2000-A2")
	assert.False(t, ok)
}

func TestApplyInterestToAllCustomers(t *testing.T) {
	t.Parallel()
	b := bank.New("Acme Bank")
	jane := b.AddIndividualCustomer("Jane", "Doe", "123 St", "Main")
	acme := b.AddCompanyCustomer("Acme Co", "1 Factory Rd", "0821234567", "Main")
	sav, err := jane.OpenAccount("savings", money.New(1000), "Main")
	require.NoError(t, err)
	inv, err := acme.OpenAccount("investment", money.New(4000), "Main")
	require.NoError(t, err)

	b.ApplyInterestToAllCustomers()

	assert.True(t, sav.Balance().Equal(money.MustParse("1000.25")))
	assert.True(t, inv.Balance().Equal(money.New(4003)))
}

func TestRestoreCustomer(t *testing.T) {
	t.Parallel()
	b := bank.New("Acme Bank")

	restored := customer.New("IND-1041", "123 St", "Main", customer.Individual{FirstName: "Jane", Surname: "Doe"})
	require.NoError(t, b.RestoreCustomer(restored))
	assert.Equal(t, "IND-1042", b.AddIndividualCustomer("John", "Roe", "9 Av", "Main").ID())
	assert.Equal(t, "CMP-2000", b.AddCompanyCustomer("Acme Co", "1 Factory Rd", "082", "Main").ID())

	t.Run("duplicate", func(t *testing.T) {
		dup := customer.New("IND-1041", "x", "y", customer.Individual{FirstName: "A", Surname: "B"})
		assert.ErrorIs(t, b.RestoreCustomer(dup), bank.ErrDuplicateCustomer)
	})

	t.Run("prefix and profile disagree", func(t *testing.T) {
		bad := customer.New("CMP-2100", "x", "y", customer.Individual{FirstName: "A", Surname: "B"})
		assert.ErrorIs(t, b.RestoreCustomer(bad), bank.ErrMalformedCustomerID)
	})

	t.Run("lower ids do not rewind", func(t *testing.T) {
		low := customer.New("IND-1001", "x", "y", customer.Individual{FirstName: "A", Surname: "B"})
		require.NoError(t, b.RestoreCustomer(low))
		assert.Equal(t, "IND-1043", b.AddIndividualCustomer("C", "D", "z", "Main").ID())
	})
}

func TestParseCustomerID(t *testing.T) {
	t.Parallel()
	kind, n, err := bank.ParseCustomerID("CMP-2003")
	require.NoError(t, err)
	assert.Equal(t, customer.KindCompany, kind)
	assert.Equal(t, 2003, n)

	for _, bad := range []string{"", "IND", "IND-", "XYZ-1000", "IND-abc", "IND--4"} {
		_, _, err := bank.ParseCustomerID(bad)
		assert.ErrorIs(t, err, bank.ErrMalformedCustomerID, bad)
	}
}

func TestReplace(t *testing.T) {
	t.Parallel()
	live := bank.New("Acme Bank")
	live.AddIndividualCustomer("Old", "Customer", "x", "Main")

	staged := bank.New("Acme Bank")
	require.NoError(t, staged.RestoreCustomer(
		customer.New("IND-1500", "123 St", "Main", customer.Individual{FirstName: "Jane", Surname: "Doe"})))

	live.Replace(staged)

	require.Len(t, live.Customers(), 1)
	assert.Equal(t, "IND-1500", live.Customers()[0].ID())
	assert.Equal(t, "IND-1501", live.AddIndividualCustomer("A", "B", "c", "Main").ID())
}
