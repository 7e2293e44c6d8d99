package dto

import "time"

// CustomerRequest create/update input.
type CustomerRequest struct {
	FirstNameTh string   `json:"firstNameTh"`
	LastNameTh  string   `json:"lastNameTh"`
	FirstNameEn string   `json:"firstNameEn"`
	LastNameEn  string   `json:"lastNameEn"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	TagIDs      []string `json:"tagIds"`
}

// CustomerResponse customer output.
type CustomerResponse struct {
	ID          string    `json:"id"`
	FirstNameTh string    `json:"firstNameTh"`
	LastNameTh  string    `json:"lastNameTh"`
	FirstNameEn string    `json:"firstNameEn"`
	LastNameEn  string    `json:"lastNameEn"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	TagIDs      []string  `json:"tagIds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PassportRequest upsert input. When SetPrimary is true the write clears
// every other primary flag for the customer in the same transaction.
type PassportRequest struct {
	ID         string     `json:"id"`
	PassportNo string     `json:"passportNo"`
	IssueDate  *time.Time `json:"issueDate"`
	ExpiryDate *time.Time `json:"expiryDate"`
	SetPrimary bool       `json:"setPrimary"`
	ImageKey   string     `json:"imageKey"`
}

// PassportResponse passport output.
type PassportResponse struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"customerId"`
	PassportNo string     `json:"passportNo"`
	IssueDate  *time.Time `json:"issueDate"`
	ExpiryDate *time.Time `json:"expiryDate"`
	IsPrimary  bool       `json:"isPrimary"`
	ImageKey   string     `json:"imageKey"`
	CreatedAt  time.Time  `json:"createdAt"`
}
