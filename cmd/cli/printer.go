package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/amirasaad/retailbank/pkg/domain/account"
	"github.com/amirasaad/retailbank/pkg/domain/customer"
	"github.com/amirasaad/retailbank/pkg/money"
	"github.com/fatih/color"
)

// printer renders command results. Colour follows color.NoColor.
type printer struct {
	w      io.Writer
	asJSON bool
	ok     *color.Color
	warnC  *color.Color
	muted  *color.Color
	label  *color.Color
	credit *color.Color
	debit  *color.Color
}

func newPrinter(w io.Writer, asJSON bool) *printer {
	return &printer{
		w:      w,
		asJSON: asJSON,
		ok:     color.New(color.FgGreen, color.Bold),
		warnC:  color.New(color.FgYellow, color.Bold),
		muted:  color.New(color.Faint),
		label:  color.New(color.FgCyan),
		credit: color.New(color.FgGreen),
		debit:  color.New(color.FgRed),
	}
}

// emit writes v as indented JSON.
func (p *printer) emit(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) success(format string, args ...any) {
	p.ok.Fprintf(p.w, format+"\n", args...) //nolint:errcheck
}

func (p *printer) warn(format string, args ...any) {
	p.warnC.Fprintf(p.w, format+"\n", args...) //nolint:errcheck
}

func (p *printer) info(format string, args ...any) {
	p.muted.Fprintf(p.w, format+"\n", args...) //nolint:errcheck
}

func (p *printer) signed(a money.Amount) string {
	s := money.Format(a)
	if a.IsNegative() {
		return p.debit.Sprint(s)
	}
	return p.credit.Sprint(s)
}

func (p *printer) customerLine(c *customer.Customer) {
	fmt.Fprintf(p.w, "%s  %-30s %s  %d account(s)\n", //nolint:errcheck
		p.label.Sprint(c.ID()), c.DisplayName(), p.muted.Sprint(c.Branch()), len(c.Accounts()))
}

func (p *printer) customerDetail(c *customer.Customer) {
	fmt.Fprintf(p.w, "%s %s\n", p.label.Sprint(c.ID()), c.DisplayName()) //nolint:errcheck
	fmt.Fprintf(p.w, "  address: %s\n", c.Address())                   //nolint:errcheck
	if co, ok := c.Profile().(customer.Company); ok {
		fmt.Fprintf(p.w, "  cell:    %s\n", co.CellNumber) //nolint:errcheck
	}
	fmt.Fprintf(p.w, "  branch:  %s\n", c.Branch()) //nolint:errcheck
	accs := c.Accounts()
	if len(accs) == 0 {
		p.info("  no accounts")
		return
	}
	for _, a := range accs {
		fmt.Fprint(p.w, "  ") //nolint:errcheck
		p.accountLine(a)
	}
}

func (p *printer) accountLine(a account.Account) {
	fmt.Fprintf(p.w, "%s  %-10s %s", p.label.Sprint(a.Number()), a.Kind(), p.signed(a.Balance())) //nolint:errcheck
	if ib, ok := a.(account.InterestBearing); ok {
		fmt.Fprintf(p.w, "  %s", p.muted.Sprintf("(%s monthly)", ib.MonthlyRate())) //nolint:errcheck
	}
	if ch, ok := a.(*account.Cheque); ok {
		fmt.Fprintf(p.w, "  %s", p.muted.Sprintf("(%s, %s)", ch.Employer(), ch.CompanyAddress())) //nolint:errcheck
	}
	fmt.Fprintln(p.w) //nolint:errcheck
}

func (p *printer) amount(number string, a money.Amount) {
	fmt.Fprintf(p.w, "%s balance: %s\n", p.label.Sprint(number), p.signed(a)) //nolint:errcheck
}

func (p *printer) transactionLine(tx account.Transaction) {
	amount := money.Format(tx.Amount())
	switch s := tx.Signed(); {
	case s.IsNegative():
		amount = p.debit.Sprint("-" + amount)
	case s.IsPositive():
		amount = p.credit.Sprint("+" + amount)
	default:
		amount = p.muted.Sprint(amount)
	}
	fmt.Fprintf(p.w, "%s  %-13s %s\n", //nolint:errcheck
		p.muted.Sprint(tx.Timestamp().Format("2006-01-02 15:04:05")), tx.Kind(), amount)
}
