// Package bank holds the Bank aggregate root: every customer, and through them
// every account and transaction, is reached from here.
//
// Bank has no internal locking. It assumes a single logical actor; concurrent
// hosts wrap it in the bank service, which serialises each lookup, mutation and
// persist sequence behind one mutex.
package bank

import (
	"fmt"

	"github.com/amirasaad/retailbank/pkg/domain/account"
	"github.com/amirasaad/retailbank/pkg/domain/customer"
)

// Bank is the aggregate root owning all customers, in creation order.
type Bank struct {
	name          string
	customers     []*customer.Customer
	individualIDs *Sequence
	companyIDs    *Sequence
}

// New creates an empty bank with fresh ID sequences.
func New(name string) *Bank {
	return &Bank{
		name:          name,
		individualIDs: NewSequence(customer.KindIndividual, FirstIndividualSeq),
		companyIDs:    NewSequence(customer.KindCompany, FirstCompanySeq),
	}
}

func (b *Bank) Name() string { return b.name }

// Customers returns all customers in creation order. The slice is a copy.
func (b *Bank) Customers() []*customer.Customer {
	out := make([]*customer.Customer, len(b.customers))
	copy(out, b.customers)
	return out
}

// AddIndividualCustomer creates a private customer with the next IND-<n> ID.
func (b *Bank) AddIndividualCustomer(firstName, surname, address, branch string) *customer.Customer {
	c := customer.New(
		b.individualIDs.Next(),
		address,
		branch,
		customer.Individual{FirstName: firstName, Surname: surname},
	)
	b.customers = append(b.customers, c)
	return c
}

// AddCompanyCustomer creates a business customer with the next CMP-<n> ID.
func (b *Bank) AddCompanyCustomer(companyName, address, cellNumber, branch string) *customer.Customer {
	c := customer.New(
		b.companyIDs.Next(),
		address,
		branch,
		customer.Company{Name: companyName, CellNumber: cellNumber},
	)
	b.customers = append(b.customers, c)
	return c
}

// FindCustomerByID is a linear scan for an exact ID match.
func (b *Bank) FindCustomerByID(id string) (*customer.Customer, bool) {
	for _, c := range b.customers {
		if c.ID() == id {
			return c, true
		}
	}
	return nil, false
}

// FindAccountByNumber scans every customer's accounts for an exact number match.
func (b *Bank) FindAccountByNumber(number string) (account.Account, bool) {
	for _, c := range b.customers {
		if a, err := c.FindAccount(number); err == nil {
			return a, true
		}
	}
	return nil, false
}

// ApplyInterestToAllCustomers runs monthly interest for every customer in list order.
func (b *Bank) ApplyInterestToAllCustomers() {
	for _, c := range b.customers {
		c.ApplyInterestToAllAccounts()
	}
}

// NextCustomerNumber returns the sequence number the next customer of kind will get.
func (b *Bank) NextCustomerNumber(kind customer.Kind) int {
	if kind == customer.KindCompany {
		return b.companyIDs.Peek()
	}
	return b.individualIDs.Peek()
}

// RestoreCustomer appends a hydrated customer keeping its ID, and advances the
// matching sequence past it. This should only be used for repository hydration or tests.
func (b *Bank) RestoreCustomer(c *customer.Customer) error {
	kind, n, err := ParseCustomerID(c.ID())
	if err != nil {
		return err
	}
	if kind != c.Kind() {
		return fmt.Errorf("%w: %s has a %s profile", ErrMalformedCustomerID, c.ID(), c.Kind())
	}
	if _, exists := b.FindCustomerByID(c.ID()); exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCustomer, c.ID())
	}
	switch kind {
	case customer.KindIndividual:
		b.individualIDs.Observe(n)
	case customer.KindCompany:
		b.companyIDs.Observe(n)
	}
	b.customers = append(b.customers, c)
	return nil
}

// Replace swaps in the state of other, including its ID sequences. It is used
// to install a fully hydrated bank in one step.
func (b *Bank) Replace(other *Bank) {
	b.customers = other.customers
	b.individualIDs = other.individualIDs
	b.companyIDs = other.companyIDs
}
