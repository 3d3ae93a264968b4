// Package mapper converts domain objects into read-optimized DTOs.
package mapper

import (
	"github.com/amirasaad/retailbank/pkg/domain/account"
	"github.com/amirasaad/retailbank/pkg/domain/customer"
	"github.com/amirasaad/retailbank/pkg/dto"
	"github.com/amirasaad/retailbank/pkg/money"
)

// MapCustomerToRead maps a domain Customer, including its accounts, to a dto.CustomerRead.
func MapCustomerToRead(c *customer.Customer) dto.CustomerRead {
	read := dto.CustomerRead{
		ID:          c.ID(),
		Kind:        string(c.Kind()),
		DisplayName: c.DisplayName(),
		Address:     c.Address(),
		Branch:      c.Branch(),
		Accounts:    []dto.AccountRead{},
	}
	if co, ok := c.Profile().(customer.Company); ok {
		read.CellNumber = co.CellNumber
	}
	for _, a := range c.Accounts() {
		read.Accounts = append(read.Accounts, MapAccountToRead(a))
	}
	return read
}

// MapAccountToRead maps a domain Account to a dto.AccountRead.
func MapAccountToRead(a account.Account) dto.AccountRead {
	read := dto.AccountRead{
		Number:  a.Number(),
		Type:    a.Kind().String(),
		Balance: money.Format(a.Balance()),
		Branch:  a.Branch(),
	}
	if ch, ok := a.(*account.Cheque); ok {
		read.Employer = ch.Employer()
		read.CompanyAddress = ch.CompanyAddress()
	}
	return read
}

// MapTransactionsToRead maps transactions in order.
func MapTransactionsToRead(txs []account.Transaction) []dto.TransactionRead {
	out := make([]dto.TransactionRead, 0, len(txs))
	for _, tx := range txs {
		out = append(out, dto.TransactionRead{
			ID:        tx.ID().String(),
			Kind:      string(tx.Kind()),
			Amount:    money.Format(tx.Amount()),
			CreatedAt: tx.Timestamp(),
		})
	}
	return out
}
