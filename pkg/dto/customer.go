package dto

// IndividualCustomerCreate represents the data needed to register a private customer.
// Free-text fields may not contain the store delimiter '|'.
type IndividualCustomerCreate struct {
	FirstName string `json:"first_name" validate:"required,max=100,excludesall=0x7C"`
	Surname   string `json:"surname" validate:"required,max=100,excludesall=0x7C"`
	Address   string `json:"address" validate:"required,max=200,excludesall=0x7C"`
	Branch    string `json:"branch" validate:"required,max=100,excludesall=0x7C"`
}

// CompanyCustomerCreate represents the data needed to register a business customer.
type CompanyCustomerCreate struct {
	Name       string `json:"name" validate:"required,max=200,excludesall=0x7C"`
	Address    string `json:"address" validate:"required,max=200,excludesall=0x7C"`
	CellNumber string `json:"cell_number" validate:"required,max=30,excludesall=0x7C"`
	Branch     string `json:"branch" validate:"required,max=100,excludesall=0x7C"`
}

// CustomerRead is a read-optimized view of a customer and its accounts.
type CustomerRead struct {
	ID          string        `json:"id"`
	Kind        string        `json:"kind"`
	DisplayName string        `json:"display_name"`
	Address     string        `json:"address"`
	Branch      string        `json:"branch"`
	CellNumber  string        `json:"cell_number,omitempty"`
	Accounts    []AccountRead `json:"accounts"`
}
