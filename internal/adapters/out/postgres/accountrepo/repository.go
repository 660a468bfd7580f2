package accountrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// customerUpdatableColumns is the fixed allow-list for customer partial
// updates.
var customerUpdatableColumns = map[string]struct{}{
	"company_name": {},
	"tax_id":       {},
	"credit_limit": {},
}

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a new user and returns the generated identifier.
func (r *GormUserRepository) Add(ctx context.Context, user *account.User) (kernel.ID, error) {
	if err := user.Validate(); err != nil {
		return kernel.ID{}, err
	}

	dto := userFromDomain(user)
	dto.ID = 0

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return kernel.ID{}, errs.NewDuplicateKeyError("username", user.Username)
		}
		return kernel.ID{}, err
	}

	return kernel.NewID(dto.ID)
}

// Get retrieves a user by its identifier.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.ID) (*account.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user_id", id)
		}
		return nil, err
	}

	return userToDomain(dto)
}

// GetByUsername retrieves a user by its unique username.
func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*account.User, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("username", username)
		}
		return nil, err
	}

	return userToDomain(dto)
}

// Delete removes a user by its identifier.
func (r *GormUserRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&UserDTO{}, "user_id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user_id", id)
	}

	return nil
}

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Add saves a new customer row and returns the generated identifier.
func (r *GormCustomerRepository) Add(ctx context.Context, customer *account.Customer) (kernel.ID, error) {
	if err := customer.Validate(); err != nil {
		return kernel.ID{}, err
	}

	dto := customerFromDomain(customer)
	dto.ID = 0

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return kernel.ID{}, errs.NewDuplicateKeyError("user_id", customer.UserID)
		}
		return kernel.ID{}, err
	}

	return kernel.NewID(dto.ID)
}

// Get retrieves a customer by its identifier.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.ID) (*account.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "customer_id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer_id", id)
		}
		return nil, err
	}

	return customerToDomain(dto)
}

// UpdateFields applies a partial update against the column allow-list.
func (r *GormCustomerRepository) UpdateFields(ctx context.Context, id kernel.ID, fields map[string]any) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if len(fields) == 0 {
		return errs.NewValueIsRequiredError("fields to update")
	}
	for column := range fields {
		if _, ok := customerUpdatableColumns[column]; !ok {
			return errs.NewValueIsInvalidError(column)
		}
	}

	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("customer_id = ?", id.Int64()).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer_id", id)
	}

	return nil
}

// Delete removes a customer row by its identifier. The wrapped user row is
// deleted separately by the owning command.
func (r *GormCustomerRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CustomerDTO{}, "customer_id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer_id", id)
	}

	return nil
}
