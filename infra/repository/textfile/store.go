// Package textfile persists a Bank as three pipe-delimited text files:
// customers, accounts and transactions, one record per line.
package textfile

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	infrarepo "github.com/amirasaad/retailbank/infra/repository"
	"github.com/amirasaad/retailbank/pkg/domain/account"
	"github.com/amirasaad/retailbank/pkg/domain/bank"
	"github.com/amirasaad/retailbank/pkg/domain/customer"
	"github.com/amirasaad/retailbank/pkg/repository"
)

// Default file names.
const (
	DefaultCustomersFile    = "customers.txt"
	DefaultAccountsFile     = "accounts.txt"
	DefaultTransactionsFile = "transactions.txt"
)

// check it meets the interface
var _ repository.Store = &Store{}

// Config locates the three store files. Empty names fall back to the defaults
// and an empty Dir means the working directory.
type Config struct {
	Dir              string
	CustomersFile    string
	AccountsFile     string
	TransactionsFile string
}

// Store is a repository.Store over flat text files. It is not safe for
// concurrent use and does no cross-process locking.
type Store struct {
	customersPath    string
	accountsPath     string
	transactionsPath string
	dir              string
	logger           *slog.Logger
}

// New creates a Store. Nothing is touched on disk until Save or Load.
func New(cfg Config, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	pick := func(name, def string) string {
		if name == "" {
			name = def
		}
		return filepath.Join(cfg.Dir, name)
	}
	return &Store{
		dir:              cfg.Dir,
		customersPath:    pick(cfg.CustomersFile, DefaultCustomersFile),
		accountsPath:     pick(cfg.AccountsFile, DefaultAccountsFile),
		transactionsPath: pick(cfg.TransactionsFile, DefaultTransactionsFile),
		logger:           logger.With("store", "textfile"),
	}
}

// Save renders the bank in one traversal, then overwrites each file in place.
// There is no staging: a crash between writes can leave the files inconsistent.
func (s *Store) Save(ctx context.Context, b *bank.Bank) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var customers, accounts, transactions bytes.Buffer
	var nAcc, nTx int
	for _, c := range b.Customers() {
		customers.WriteString(encodeCustomer(c))
		for _, a := range c.Accounts() {
			accounts.WriteString(encodeAccount(a))
			nAcc++
			for _, tx := range a.Transactions() {
				transactions.WriteString(encodeTransaction(a.Number(), tx))
				nTx++
			}
		}
	}

	if s.dir != "" {
		if err := infrarepo.WrapError("mkdir", s.dir, func() error {
			return os.MkdirAll(s.dir, 0o755)
		}); err != nil {
			return err
		}
	}
	for _, f := range []struct {
		path string
		data []byte
	}{
		{s.customersPath, customers.Bytes()},
		{s.accountsPath, accounts.Bytes()},
		{s.transactionsPath, transactions.Bytes()},
	} {
		if err := infrarepo.WrapError("write", f.path, func() error {
			return os.WriteFile(f.path, f.data, 0o644)
		}); err != nil {
			s.logger.Error("Save failed", "path", f.path, "error", err)
			return err
		}
	}

	s.logger.Debug("Save successful",
		"customers", len(b.Customers()),
		"accounts", nAcc,
		"transactions", nTx,
	)
	return nil
}

// Load hydrates b. Customer IDs and account numbers are restored verbatim and
// the bank's ID sequences continue after the highest loaded IDs. Everything is
// parsed into a staging bank first, so b only changes when the load succeeds.
func (s *Store) Load(ctx context.Context, b *bank.Bank) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	custLines, err := s.readLines(s.customersPath)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Info("No customer store found, starting with an empty bank", "path", s.customersPath)
		return nil
	}
	if err != nil {
		return infrarepo.MapIOError("read", s.customersPath, err)
	}
	accLines, err := s.readOptionalLines(s.accountsPath)
	if err != nil {
		return err
	}
	txLines, err := s.readOptionalLines(s.transactionsPath)
	if err != nil {
		return err
	}

	staged := bank.New(b.Name())
	s.loadCustomers(staged, custLines)
	if err := s.loadAccounts(staged, accLines); err != nil {
		return err
	}
	if err := s.loadTransactions(staged, txLines); err != nil {
		return err
	}

	b.Replace(staged)
	s.logger.Debug("Load successful",
		"customers", len(b.Customers()),
		"next_individual", b.NextCustomerNumber(customer.KindIndividual),
		"next_company", b.NextCustomerNumber(customer.KindCompany),
	)
	return nil
}

func (s *Store) loadCustomers(staged *bank.Bank, lines []string) {
	for i, line := range lines {
		if line == "" {
			continue
		}
		c, ok := decodeCustomer(line)
		if !ok {
			s.skip(s.customersPath, i, "malformed customer")
			continue
		}
		if err := staged.RestoreCustomer(c); err != nil {
			s.skip(s.customersPath, i, err.Error())
		}
	}
}

func (s *Store) loadAccounts(staged *bank.Bank, lines []string) error {
	for i, line := range lines {
		if line == "" {
			continue
		}
		rec, err := decodeAccount(line)
		var skip lineSkip
		if errors.As(err, &skip) {
			s.skip(s.accountsPath, i, string(skip))
			continue
		}
		if err != nil {
			return infrarepo.FormatError(s.accountsPath, i+1, "balance", err)
		}
		owner, ok := staged.FindCustomerByID(rec.ownerID)
		if !ok {
			s.skip(s.accountsPath, i, "unknown owner")
			continue
		}
		if _, dup := staged.FindAccountByNumber(rec.number); dup {
			s.skip(s.accountsPath, i, "duplicate account number")
			continue
		}
		acc, err := rec.build()
		if err != nil {
			s.skip(s.accountsPath, i, err.Error())
			continue
		}
		if err := owner.RestoreAccount(acc); err != nil {
			s.skip(s.accountsPath, i, err.Error())
		}
	}
	return nil
}

func (s *Store) loadTransactions(staged *bank.Bank, lines []string) error {
	loadedAt := time.Now().UTC()
	for i, line := range lines {
		if line == "" {
			continue
		}
		rec, err := decodeTransaction(line)
		var skip lineSkip
		if errors.As(err, &skip) {
			s.skip(s.transactionsPath, i, string(skip))
			continue
		}
		if err != nil {
			return infrarepo.FormatError(s.transactionsPath, i+1, "amount", err)
		}
		acc, ok := staged.FindAccountByNumber(rec.number)
		if !ok {
			s.skip(s.transactionsPath, i, "unknown account")
			continue
		}
		acc.Replay(account.NewTransactionFromData(rec.kind, rec.amount, loadedAt))
	}
	return nil
}

func (s *Store) skip(path string, index int, reason string) {
	s.logger.Debug("Skipping line", "path", path, "line", index+1, "reason", reason)
}

// readLines returns the file's lines without terminators. A missing file is
// reported as fs.ErrNotExist.
func (s *Store) readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	return lines, sc.Err()
}

// readOptionalLines treats a missing file as empty.
func (s *Store) readOptionalLines(path string) ([]string, error) {
	lines, err := s.readLines(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return lines, infrarepo.MapIOError("read", path, err)
}
