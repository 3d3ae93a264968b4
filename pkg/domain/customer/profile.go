package customer

// Kind identifies a customer variant. Its value is the customer ID prefix.
type Kind string

// Customer variants.
const (
	KindIndividual Kind = "IND"
	KindCompany    Kind = "CMP"
)

// Profile holds the variant-specific attributes of a customer.
type Profile interface {
	DisplayName() string
	kind() Kind
}

// Individual is a private person.
type Individual struct {
	FirstName string
	Surname   string
}

func (Individual) kind() Kind { return KindIndividual }

func (i Individual) DisplayName() string {
	return i.FirstName + " " + i.Surname
}

// Company is a business customer.
type Company struct {
	Name       string
	CellNumber string
}

func (Company) kind() Kind { return KindCompany }

func (c Company) DisplayName() string {
	return c.Name
}
