package main

import (
	"context"

	"github.com/amirasaad/retailbank/pkg/dto"
	"github.com/amirasaad/retailbank/pkg/mapper"
	banksvc "github.com/amirasaad/retailbank/pkg/service/bank"
)

// runContext is bound into every command's Run method.
type runContext struct {
	ctx context.Context
	svc *banksvc.Service
	out *printer
}

// CLI is the kong command tree.
type CLI struct {
	EnvFile string `name:"env-file" default:".env" help:"Environment file, searched for upward from the working directory."`
	NoColor bool   `name:"no-color" help:"Disable coloured output."`
	JSON    bool   `name:"json" help:"Print customers, accounts and history as JSON."`

	Customer customerCmd `cmd:"" help:"Register and inspect customers."`
	Account  accountCmd  `cmd:"" help:"Open accounts and move money."`
	Interest interestCmd `cmd:"" help:"Run the monthly interest batch."`
}

type customerCmd struct {
	AddIndividual addIndividualCmd `cmd:"" help:"Register a private customer."`
	AddCompany    addCompanyCmd    `cmd:"" help:"Register a business customer."`
	List          listCustomersCmd `cmd:"" help:"List every customer."`
	Show          showCustomerCmd  `cmd:"" help:"Show a customer and their accounts."`
}

type addIndividualCmd struct {
	FirstName string `required:"" help:"First name."`
	Surname   string `required:"" help:"Surname."`
	Address   string `required:"" help:"Postal address."`
	Branch    string `required:"" help:"Branch the customer registered at."`
}

func (c *addIndividualCmd) Run(rc *runContext) error {
	cust, err := rc.svc.AddIndividualCustomer(rc.ctx, dto.IndividualCustomerCreate{
		FirstName: c.FirstName,
		Surname:   c.Surname,
		Address:   c.Address,
		Branch:    c.Branch,
	})
	if err != nil {
		return err
	}
	rc.out.success("Registered %s as %s", cust.DisplayName(), cust.ID())
	return nil
}

type addCompanyCmd struct {
	Name    string `required:"" help:"Company name."`
	Address string `required:"" help:"Company address."`
	Cell    string `required:"" help:"Contact cell number."`
	Branch  string `required:"" help:"Branch the customer registered at."`
}

func (c *addCompanyCmd) Run(rc *runContext) error {
	cust, err := rc.svc.AddCompanyCustomer(rc.ctx, dto.CompanyCustomerCreate{
		Name:       c.Name,
		Address:    c.Address,
		CellNumber: c.Cell,
		Branch:     c.Branch,
	})
	if err != nil {
		return err
	}
	rc.out.success("Registered %s as %s", cust.DisplayName(), cust.ID())
	return nil
}

type listCustomersCmd struct{}

func (c *listCustomersCmd) Run(rc *runContext) error {
	customers, err := rc.svc.Customers(rc.ctx)
	if err != nil {
		return err
	}
	if rc.out.asJSON {
		reads := make([]dto.CustomerRead, 0, len(customers))
		for _, cust := range customers {
			reads = append(reads, mapper.MapCustomerToRead(cust))
		}
		return rc.out.emit(reads)
	}
	if len(customers) == 0 {
		rc.out.info("No customers")
		return nil
	}
	for _, cust := range customers {
		rc.out.customerLine(cust)
	}
	return nil
}

type showCustomerCmd struct {
	ID string `arg:"" help:"Customer ID, e.g. IND-1000."`
}

func (c *showCustomerCmd) Run(rc *runContext) error {
	cust, err := rc.svc.FindCustomer(rc.ctx, c.ID)
	if err != nil {
		return err
	}
	if rc.out.asJSON {
		return rc.out.emit(mapper.MapCustomerToRead(cust))
	}
	rc.out.customerDetail(cust)
	return nil
}

type accountCmd struct {
	Open     openAccountCmd `cmd:"" help:"Open an account for a customer."`
	Deposit  depositCmd     `cmd:"" help:"Deposit into an account."`
	Withdraw withdrawCmd    `cmd:"" help:"Withdraw from an account."`
	Balance  balanceCmd     `cmd:"" help:"Check an account balance."`
	History  historyCmd     `cmd:"" help:"List an account's transactions."`
}

type openAccountCmd struct {
	CustomerID     string `arg:"" help:"Owning customer ID."`
	Type           string `arg:"" help:"Account type: savings, investment or cheque."`
	InitialDeposit string `arg:"" optional:"" default:"0" help:"Opening deposit."`
	Branch         string `required:"" help:"Branch the account is opened at."`
	Employer       string `help:"Employer (cheque accounts)."`
	CompanyAddress string `help:"Employer's address (cheque accounts)."`
}

func (c *openAccountCmd) Run(rc *runContext) error {
	acc, err := rc.svc.OpenAccount(rc.ctx, dto.AccountOpen{
		CustomerID:     c.CustomerID,
		Type:           c.Type,
		InitialDeposit: c.InitialDeposit,
		Branch:         c.Branch,
		Employer:       c.Employer,
		CompanyAddress: c.CompanyAddress,
	})
	if err != nil {
		return err
	}
	rc.out.success("Opened %s account %s", acc.Kind(), acc.Number())
	rc.out.accountLine(acc)
	return nil
}

// MovementArgs are the positional arguments shared by deposit and withdraw.
type MovementArgs struct {
	CustomerID    string `arg:"" help:"Owning customer ID."`
	AccountNumber string `arg:"" help:"Account number, e.g. IND-1000-A1."`
	Amount        string `arg:"" help:"Amount, e.g. 250.50."`
}

func (m MovementArgs) request() dto.AccountMovement {
	return dto.AccountMovement{CustomerID: m.CustomerID, AccountNumber: m.AccountNumber, Amount: m.Amount}
}

type depositCmd struct {
	MovementArgs `embed:""`
}

func (c *depositCmd) Run(rc *runContext) error {
	if err := rc.svc.Deposit(rc.ctx, c.request()); err != nil {
		return err
	}
	rc.out.success("Deposited %s into %s", c.Amount, c.AccountNumber)
	return nil
}

type withdrawCmd struct {
	MovementArgs `embed:""`
}

func (c *withdrawCmd) Run(rc *runContext) error {
	ok, err := rc.svc.Withdraw(rc.ctx, c.request())
	if err != nil {
		return err
	}
	if !ok {
		rc.out.warn("Withdrawal of %s from %s was declined", c.Amount, c.AccountNumber)
		return nil
	}
	rc.out.success("Withdrew %s from %s", c.Amount, c.AccountNumber)
	return nil
}

type balanceCmd struct {
	CustomerID    string `arg:"" help:"Owning customer ID."`
	AccountNumber string `arg:"" help:"Account number."`
}

func (c *balanceCmd) Run(rc *runContext) error {
	bal, err := rc.svc.Balance(rc.ctx, c.CustomerID, c.AccountNumber)
	if err != nil {
		return err
	}
	rc.out.amount(c.AccountNumber, bal)
	return nil
}

type historyCmd struct {
	CustomerID    string `arg:"" help:"Owning customer ID."`
	AccountNumber string `arg:"" help:"Account number."`
}

func (c *historyCmd) Run(rc *runContext) error {
	txs, err := rc.svc.Transactions(rc.ctx, c.CustomerID, c.AccountNumber)
	if err != nil {
		return err
	}
	if rc.out.asJSON {
		return rc.out.emit(mapper.MapTransactionsToRead(txs))
	}
	if len(txs) == 0 {
		rc.out.info("No transactions")
		return nil
	}
	for _, tx := range txs {
		rc.out.transactionLine(tx)
	}
	return nil
}

type interestCmd struct {
	Apply applyInterestCmd `cmd:"" help:"Credit one month of interest to every savings and investment account."`
}

type applyInterestCmd struct{}

func (c *applyInterestCmd) Run(rc *runContext) error {
	if err := rc.svc.ApplyMonthlyInterest(rc.ctx); err != nil {
		return err
	}
	rc.out.success("Monthly interest applied")
	return nil
}
