// Package accountrepo persists user accounts and their customer
// specialization rows. Driver rows live in driverrepo; the user half of a
// driver account is still managed here.
package accountrepo

import (
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
)

// UserDTO is the relational shape of a user account.
type UserDTO struct {
	ID           int64  `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username     string `gorm:"column:username;type:varchar(50);uniqueIndex;not null"`
	FullName     string `gorm:"column:full_name;type:varchar(100);not null"`
	Email        string `gorm:"column:email;type:varchar(100)"`
	Phone        string `gorm:"column:phone;type:varchar(20)"`
	UserType     string `gorm:"column:user_type;type:varchar(20);not null"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(100);not null"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// CustomerDTO is the relational shape of a customer specialization row.
type CustomerDTO struct {
	ID          int64   `gorm:"column:customer_id;primaryKey;autoIncrement"`
	UserID      int64   `gorm:"column:user_id;uniqueIndex;not null"`
	CompanyName string  `gorm:"column:company_name;type:varchar(100);not null"`
	TaxID       string  `gorm:"column:tax_id;type:varchar(50)"`
	CreditLimit float64 `gorm:"column:credit_limit;not null"`
	// PaymentTerms is set by back-office tooling, not through the API; it
	// is surfaced read-only in the customer list.
	PaymentTerms string `gorm:"column:payment_terms;type:varchar(50)"`
}

// TableName overrides GORM's default naming to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

func userFromDomain(user *account.User) UserDTO {
	return UserDTO{
		ID:           user.ID.Int64(),
		Username:     user.Username,
		FullName:     user.FullName,
		Email:        user.Email,
		Phone:        user.Phone,
		UserType:     user.UserType.String(),
		PasswordHash: user.PasswordHash,
	}
}

func userToDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	user := &account.User{
		ID:           id,
		Username:     dto.Username,
		FullName:     dto.FullName,
		Email:        dto.Email,
		Phone:        dto.Phone,
		UserType:     account.UserType(dto.UserType),
		PasswordHash: dto.PasswordHash,
	}
	if err = user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

func customerFromDomain(customer *account.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          customer.ID.Int64(),
		UserID:      customer.UserID.Int64(),
		CompanyName: customer.CompanyName,
		TaxID:       customer.TaxID,
		CreditLimit: customer.CreditLimit,
	}
}

func customerToDomain(dto CustomerDTO) (*account.Customer, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.NewID(dto.UserID)
	if err != nil {
		return nil, err
	}

	customer := &account.Customer{
		ID:          id,
		UserID:      userID,
		CompanyName: dto.CompanyName,
		TaxID:       dto.TaxID,
		CreditLimit: dto.CreditLimit,
	}
	if err = customer.Validate(); err != nil {
		return nil, err
	}

	return customer, nil
}
