package bank

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amirasaad/retailbank/pkg/domain/customer"
)

// First sequence numbers per customer variant.
const (
	FirstIndividualSeq = 1000
	FirstCompanySeq    = 2000
)

// Sequence hands out monotonic customer IDs of the form "<prefix>-<n>".
type Sequence struct {
	prefix customer.Kind
	next   int
}

// NewSequence starts a sequence at first.
func NewSequence(prefix customer.Kind, first int) *Sequence {
	return &Sequence{prefix: prefix, next: first}
}

// Next returns the next ID and advances the sequence.
func (s *Sequence) Next() string {
	id := fmt.Sprintf("%s-%d", s.prefix, s.next)
	s.next++
	return id
}

// Observe moves the sequence past n so that later IDs never collide with it.
func (s *Sequence) Observe(n int) {
	if n >= s.next {
		s.next = n + 1
	}
}

// Peek returns the number the next call to Next will use.
func (s *Sequence) Peek() int {
	return s.next
}

// ParseCustomerID splits "IND-1000" into its variant and sequence number.
func ParseCustomerID(id string) (customer.Kind, int, error) {
	prefix, num, ok := strings.Cut(id, "-")
	if !ok {
		return "", 0, fmt.Errorf("%w: %q", ErrMalformedCustomerID, id)
	}
	kind := customer.Kind(prefix)
	if kind != customer.KindIndividual && kind != customer.KindCompany {
		return "", 0, fmt.Errorf("%w: unknown prefix in %q", ErrMalformedCustomerID, id)
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 {
		return "", 0, fmt.Errorf("%w: %q", ErrMalformedCustomerID, id)
	}
	return kind, n, nil
}
