package dto

import "time"

// AccountOpen is a request to open an account for an existing customer.
// Employer and CompanyAddress are only read for cheque accounts.
type AccountOpen struct {
	CustomerID     string `json:"customer_id" validate:"required"`
	Type           string `json:"type" validate:"required"`
	InitialDeposit string `json:"initial_deposit" validate:"required,numeric"`
	Branch         string `json:"branch" validate:"required,max=100,excludesall=0x7C"`
	Employer       string `json:"employer,omitempty" validate:"excludesall=0x7C"`
	CompanyAddress string `json:"company_address,omitempty" validate:"excludesall=0x7C"`
}

// AccountMovement is a deposit or withdrawal request. Amount is a plain
// decimal string such as "250.50".
type AccountMovement struct {
	CustomerID    string `json:"customer_id" validate:"required"`
	AccountNumber string `json:"account_number" validate:"required"`
	Amount        string `json:"amount" validate:"required,numeric"`
}

// AccountRead is a read-optimized view of an account.
type AccountRead struct {
	Number         string `json:"number"`
	Type           string `json:"type"`
	Balance        string `json:"balance"`
	Branch         string `json:"branch"`
	Employer       string `json:"employer,omitempty"`
	CompanyAddress string `json:"company_address,omitempty"`
}

// TransactionRead is a read-optimized view of one transaction.
type TransactionRead struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Amount    string    `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
