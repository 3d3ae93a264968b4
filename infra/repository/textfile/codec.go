package textfile

import (
	"strings"

	"github.com/amirasaad/retailbank/pkg/domain/account"
	"github.com/amirasaad/retailbank/pkg/domain/bank"
	"github.com/amirasaad/retailbank/pkg/domain/customer"
	"github.com/amirasaad/retailbank/pkg/money"
)

// sep is the field delimiter. It is not escaped: a literal '|' inside a free-text
// field corrupts the record.
const sep = "|"

func join(fields ...string) string {
	return strings.Join(fields, sep) + "\n"
}

func split(line string) []string {
	return strings.Split(line, sep)
}

// encodeCustomer renders
//
//	IND-<n>|firstName|surname|address|branch
//	CMP-<n>|companyName|address|cellNumber|branch
func encodeCustomer(c *customer.Customer) string {
	switch p := c.Profile().(type) {
	case customer.Individual:
		return join(c.ID(), p.FirstName, p.Surname, c.Address(), c.Branch())
	case customer.Company:
		return join(c.ID(), p.Name, c.Address(), p.CellNumber, c.Branch())
	}
	return ""
}

// encodeAccount renders accountNumber|ownerId|TypeName|balance|branch[|employer|companyAddress].
func encodeAccount(a account.Account) string {
	fields := []string{a.Number(), a.OwnerID(), a.Kind().StoreName(), money.Format(a.Balance()), a.Branch()}
	if ch, ok := a.(*account.Cheque); ok {
		fields = append(fields, ch.Employer(), ch.CompanyAddress())
	}
	return join(fields...)
}

// encodeTransaction renders accountNumber|KIND|amount. The timestamp is not stored.
func encodeTransaction(number string, tx account.Transaction) string {
	return join(number, string(tx.Kind()), money.Format(tx.Amount()))
}

// decodeCustomer parses one customer line. ok is false for lines that should be skipped.
// Lines written before branches were recorded have four fields and load with an empty branch.
func decodeCustomer(line string) (c *customer.Customer, ok bool) {
	p := split(line)
	if len(p) < 4 {
		return nil, false
	}
	kind, _, err := bank.ParseCustomerID(p[0])
	if err != nil {
		return nil, false
	}
	branch := ""
	if len(p) > 4 {
		branch = p[4]
	}
	switch kind {
	case customer.KindIndividual:
		return customer.New(p[0], p[3], branch, customer.Individual{FirstName: p[1], Surname: p[2]}), true
	case customer.KindCompany:
		return customer.New(p[0], p[2], branch, customer.Company{Name: p[1], CellNumber: p[3]}), true
	}
	return nil, false
}

// lineSkip is returned by the decoders for records that are dropped rather
// than failing the load.
type lineSkip string

func (r lineSkip) Error() string { return string(r) }

// accountRecord is a parsed account line before its owner is resolved.
type accountRecord struct {
	number  string
	ownerID string
	kind    account.Kind
	balance money.Amount
	branch  string
	extra   []string
}

// decodeAccount parses one account line. An unparseable balance is returned
// as a money error; every other defect is a lineSkip.
func decodeAccount(line string) (accountRecord, error) {
	p := split(line)
	if len(p) < 5 {
		return accountRecord{}, lineSkip("short account")
	}
	balance, err := money.Parse(p[3])
	if err != nil {
		return accountRecord{}, err
	}
	kind, ok := account.KindFromStoreName(p[2])
	if !ok {
		return accountRecord{}, lineSkip("unknown account type")
	}
	if kind == account.KindCheque && len(p) < 7 {
		return accountRecord{}, lineSkip("cheque account without employer details")
	}
	return accountRecord{number: p[0], ownerID: p[1], kind: kind, balance: balance, branch: p[4], extra: p[5:]}, nil
}

// build hydrates the account with its stored balance.
func (r accountRecord) build() (account.Account, error) {
	b := account.New(r.kind).
		WithNumber(r.number).
		WithOwner(r.ownerID).
		WithBranch(r.branch).
		WithBalance(r.balance)
	if r.kind == account.KindCheque {
		b = b.WithEmployer(r.extra[0], r.extra[1])
	}
	return b.Build()
}

// transactionRecord is a parsed transaction line before its account is resolved.
type transactionRecord struct {
	number string
	kind   account.TransactionKind
	amount money.Amount
}

// decodeTransaction parses one transaction line, with the same error contract
// as decodeAccount.
func decodeTransaction(line string) (transactionRecord, error) {
	p := split(line)
	if len(p) < 3 {
		return transactionRecord{}, lineSkip("short transaction")
	}
	amount, err := money.Parse(p[2])
	if err != nil {
		return transactionRecord{}, err
	}
	kind, ok := account.ParseTransactionKind(p[1])
	if !ok {
		return transactionRecord{}, lineSkip("unknown transaction kind")
	}
	return transactionRecord{number: p[0], kind: kind, amount: amount}, nil
}
