package entity

import "time"

// Customer is a travel-agency client. Names are stored in Thai and English;
// display falls back to English when the Thai fields are empty.
type Customer struct {
	ID          string
	FirstNameTh string
	LastNameTh  string
	FirstNameEn string
	LastNameEn  string
	Email       string
	Phone       string
	TagIDs      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DisplayName prefers the Thai name pair when present, else the English pair.
func (c *Customer) DisplayName() string {
	if c.FirstNameTh != "" || c.LastNameTh != "" {
		return joinName(c.FirstNameTh, c.LastNameTh)
	}
	return joinName(c.FirstNameEn, c.LastNameEn)
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}

// Passport belongs to a customer. At most one passport per customer carries
// IsPrimary; the set-primary write enforces that transactionally.
type Passport struct {
	ID         string
	CustomerID string
	PassportNo string
	IssueDate  *time.Time
	ExpiryDate *time.Time
	IsPrimary  bool
	ImageKey   string // object-storage key for the scanned page, empty if none
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
