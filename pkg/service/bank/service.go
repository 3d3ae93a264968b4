// Package bank provides the application service in front of the Bank aggregate.
//
// Every public method holds one mutex across its lookup, mutation and persist
// steps, so concurrent callers observe each operation atomically. A failed
// persist is reported but the in-memory change it followed is kept.
package bank

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/amirasaad/retailbank/pkg/domain/account"
	"github.com/amirasaad/retailbank/pkg/domain/bank"
	"github.com/amirasaad/retailbank/pkg/domain/customer"
	"github.com/amirasaad/retailbank/pkg/dto"
	"github.com/amirasaad/retailbank/pkg/money"
	"github.com/amirasaad/retailbank/pkg/repository"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidRequest is returned when a request DTO fails validation.
var ErrInvalidRequest = errors.New("invalid request")

// Service provides business logic for customers, accounts and the monthly interest run.
type Service struct {
	mu       sync.Mutex
	bank     *bank.Bank
	store    repository.Store
	validate *validator.Validate
	logger   *slog.Logger
}

// New creates a Service over b, persisting through store after every mutation.
func New(b *bank.Bank, store repository.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		bank:     b,
		store:    store,
		validate: validator.New(),
		logger:   logger,
	}
}

// Load replaces the in-memory state with the store's contents.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Info("Load started")
	if err := s.store.Load(ctx, s.bank); err != nil {
		s.logger.Error("Load failed", "error", err)
		return err
	}
	s.logger.Info("Load successful", "customers", len(s.bank.Customers()))
	return nil
}

// AddIndividualCustomer registers a private customer and persists the bank.
func (s *Service) AddIndividualCustomer(
	ctx context.Context,
	req dto.IndividualCustomerCreate,
) (*customer.Customer, error) {
	logger := s.logger.With("firstName", req.FirstName, "surname", req.Surname)
	logger.Info("AddIndividualCustomer started")
	if err := s.check(req); err != nil {
		logger.Error("AddIndividualCustomer failed: validation error", "error", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.bank.AddIndividualCustomer(req.FirstName, req.Surname, req.Address, req.Branch)
	if err := s.persist(ctx); err != nil {
		logger.Error("AddIndividualCustomer failed: persist error", "customerID", c.ID(), "error", err)
		return c, err
	}
	logger.Info("AddIndividualCustomer successful", "customerID", c.ID())
	return c, nil
}

// AddCompanyCustomer registers a business customer and persists the bank.
func (s *Service) AddCompanyCustomer(
	ctx context.Context,
	req dto.CompanyCustomerCreate,
) (*customer.Customer, error) {
	logger := s.logger.With("company", req.Name)
	logger.Info("AddCompanyCustomer started")
	if err := s.check(req); err != nil {
		logger.Error("AddCompanyCustomer failed: validation error", "error", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.bank.AddCompanyCustomer(req.Name, req.Address, req.CellNumber, req.Branch)
	if err := s.persist(ctx); err != nil {
		logger.Error("AddCompanyCustomer failed: persist error", "customerID", c.ID(), "error", err)
		return c, err
	}
	logger.Info("AddCompanyCustomer successful", "customerID", c.ID())
	return c, nil
}

// OpenAccount opens an account for an existing customer. For cheque accounts
// the employer and company address are both required.
func (s *Service) OpenAccount(ctx context.Context, req dto.AccountOpen) (account.Account, error) {
	logger := s.logger.With("customerID", req.CustomerID, "type", req.Type)
	logger.Info("OpenAccount started")
	if err := s.check(req); err != nil {
		logger.Error("OpenAccount failed: validation error", "error", err)
		return nil, err
	}
	deposit, err := money.Parse(req.InitialDeposit)
	if err != nil {
		logger.Error("OpenAccount failed: amount error", "error", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.customer(req.CustomerID)
	if err != nil {
		logger.Error("OpenAccount failed: customer lookup error", "error", err)
		return nil, err
	}
	acc, err := c.OpenAccount(req.Type, deposit, req.Branch, employerDetails(req)...)
	if err != nil {
		logger.Error("OpenAccount failed: domain error", "error", err)
		return nil, err
	}
	if err := s.persist(ctx); err != nil {
		logger.Error("OpenAccount failed: persist error", "accountNumber", acc.Number(), "error", err)
		return acc, err
	}
	logger.Info("OpenAccount successful", "accountNumber", acc.Number())
	return acc, nil
}

// Deposit credits an account owned by the given customer.
func (s *Service) Deposit(ctx context.Context, req dto.AccountMovement) error {
	logger := s.logger.With("customerID", req.CustomerID, "accountNumber", req.AccountNumber, "amount", req.Amount)
	logger.Info("Deposit started")
	amount, err := s.movementAmount(req)
	if err != nil {
		logger.Error("Deposit failed: validation error", "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.customer(req.CustomerID)
	if err != nil {
		logger.Error("Deposit failed: customer lookup error", "error", err)
		return err
	}
	if err := c.Deposit(req.AccountNumber, amount); err != nil {
		logger.Error("Deposit failed: domain error", "error", err)
		return err
	}
	if err := s.persist(ctx); err != nil {
		logger.Error("Deposit failed: persist error", "error", err)
		return err
	}
	logger.Info("Deposit successful")
	return nil
}

// Withdraw debits an account owned by the given customer. A declined
// withdrawal returns false with a nil error and leaves the account untouched.
func (s *Service) Withdraw(ctx context.Context, req dto.AccountMovement) (bool, error) {
	logger := s.logger.With("customerID", req.CustomerID, "accountNumber", req.AccountNumber, "amount", req.Amount)
	logger.Info("Withdraw started")
	amount, err := s.movementAmount(req)
	if err != nil {
		logger.Error("Withdraw failed: validation error", "error", err)
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.customer(req.CustomerID)
	if err != nil {
		logger.Error("Withdraw failed: customer lookup error", "error", err)
		return false, err
	}
	ok, err := c.Withdraw(req.AccountNumber, amount)
	if err != nil {
		logger.Error("Withdraw failed: domain error", "error", err)
		return false, err
	}
	if !ok {
		logger.Info("Withdraw declined")
		return false, nil
	}
	if err := s.persist(ctx); err != nil {
		logger.Error("Withdraw failed: persist error", "error", err)
		return true, err
	}
	logger.Info("Withdraw successful")
	return true, nil
}

// Balance returns an account's balance. The check itself is recorded as a
// BALANCE_CHECK transaction and persisted.
func (s *Service) Balance(ctx context.Context, customerID, accountNumber string) (money.Amount, error) {
	logger := s.logger.With("customerID", customerID, "accountNumber", accountNumber)
	logger.Info("Balance started")

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.customer(customerID)
	if err != nil {
		logger.Error("Balance failed: customer lookup error", "error", err)
		return money.Zero, err
	}
	bal, err := c.CheckBalance(accountNumber)
	if err != nil {
		logger.Error("Balance failed: domain error", "error", err)
		return money.Zero, err
	}
	if err := s.persist(ctx); err != nil {
		logger.Error("Balance failed: persist error", "error", err)
		return bal, err
	}
	logger.Info("Balance successful", "balance", money.Format(bal))
	return bal, nil
}

// Transactions returns an account's history, oldest first.
func (s *Service) Transactions(ctx context.Context, customerID, accountNumber string) ([]account.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.customer(customerID)
	if err != nil {
		return nil, err
	}
	a, err := c.FindAccount(accountNumber)
	if err != nil {
		return nil, err
	}
	return a.Transactions(), nil
}

// ApplyMonthlyInterest runs the interest batch over every customer and persists once.
func (s *Service) ApplyMonthlyInterest(ctx context.Context) error {
	s.logger.Info("ApplyMonthlyInterest started")

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		s.logger.Error("ApplyMonthlyInterest failed", "error", err)
		return err
	}
	s.bank.ApplyInterestToAllCustomers()
	if err := s.persist(ctx); err != nil {
		s.logger.Error("ApplyMonthlyInterest failed: persist error", "error", err)
		return err
	}
	s.logger.Info("ApplyMonthlyInterest successful", "customers", len(s.bank.Customers()))
	return nil
}

// Customers lists every customer in creation order.
func (s *Service) Customers(ctx context.Context) ([]*customer.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bank.Customers(), nil
}

// FindCustomer looks up a customer by exact ID.
func (s *Service) FindCustomer(ctx context.Context, id string) (*customer.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customer(id)
}

func (s *Service) customer(id string) (*customer.Customer, error) {
	c, ok := s.bank.FindCustomerByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", bank.ErrCustomerNotFound, id)
	}
	return c, nil
}

func (s *Service) persist(ctx context.Context) error {
	return s.store.Save(ctx, s.bank)
}

func (s *Service) check(req any) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

func (s *Service) movementAmount(req dto.AccountMovement) (money.Amount, error) {
	if err := s.check(req); err != nil {
		return money.Zero, err
	}
	return money.Parse(req.Amount)
}

// employerDetails returns the cheque extras that were actually supplied, so a
// missing one surfaces as a missing argument from the domain.
func employerDetails(req dto.AccountOpen) []string {
	var extra []string
	for _, v := range []string{req.Employer, req.CompanyAddress} {
		if strings.TrimSpace(v) != "" {
			extra = append(extra, v)
		}
	}
	return extra
}
