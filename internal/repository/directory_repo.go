package repository

import (
	"context"
	"time"

	"busbooking/internal/domain"

	"gorm.io/gorm"
)

type cityModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;uniqueIndex"`
}

func (cityModel) TableName() string { return "cities" }

type companyModel struct {
	ID           int64  `gorm:"column:id;primaryKey"`
	Name         string `gorm:"column:name"`
	Email        string `gorm:"column:email;uniqueIndex"`
	PasswordHash string `gorm:"column:password_hash"`
}

func (companyModel) TableName() string { return "companies" }

type customerModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Name         string    `gorm:"column:name"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (customerModel) TableName() string { return "customers" }

// CityRepository backs the city-name lookup the expedition registry
// depends on.
type CityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) *CityRepository {
	return &CityRepository{db: db}
}

func (r *CityRepository) GetByName(ctx context.Context, name string) (*domain.City, error) {
	var m cityModel
	tx := r.db.WithContext(ctx).Where("name = ?", name).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.City{ID: m.ID, Name: m.Name}, nil
}

func (r *CityRepository) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	var m cityModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.City{ID: m.ID, Name: m.Name}, nil
}

func (r *CityRepository) Create(ctx context.Context, c *domain.City) error {
	m := cityModel{Name: c.Name}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	c.ID = m.ID
	return nil
}

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	var m companyModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCompany(m), nil
}

func (r *CompanyRepository) GetByEmail(ctx context.Context, email string) (*domain.Company, error) {
	var m companyModel
	tx := r.db.WithContext(ctx).Where("email = ?", email).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCompany(m), nil
}

func (r *CompanyRepository) Create(ctx context.Context, c *domain.Company) error {
	m := companyModel{Name: c.Name, Email: c.Email, PasswordHash: c.PasswordHash}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	c.ID = m.ID
	return nil
}

func toDomainCompany(m companyModel) *domain.Company {
	return &domain.Company{ID: m.ID, Name: m.Name, Email: m.Email, PasswordHash: m.PasswordHash}
}

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var m customerModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCustomer(m), nil
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	var m customerModel
	tx := r.db.WithContext(ctx).Where("email = ?", email).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCustomer(m), nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	m := customerModel{Email: c.Email, PasswordHash: c.PasswordHash, Name: c.Name}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	c.ID = m.ID
	c.CreatedAt = m.CreatedAt
	return nil
}

// NamesByIDs resolves customer display names for the seat roster view.
func (r *CustomerRepository) NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []customerModel
	tx := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	for _, m := range rows {
		out[m.ID] = m.Name
	}
	return out, nil
}

func toDomainCustomer(m customerModel) *domain.Customer {
	return &domain.Customer{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		CreatedAt:    m.CreatedAt,
	}
}
