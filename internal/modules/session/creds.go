package session

import (
	"context"

	"busbooking/internal/repository"
)

// CustomerCredentials adapts the customer repository to CredentialReader.
type CustomerCredentials struct {
	repo *repository.CustomerRepository
}

func NewCustomerCredentials(repo *repository.CustomerRepository) *CustomerCredentials {
	return &CustomerCredentials{repo: repo}
}

func (c *CustomerCredentials) GetByEmail(ctx context.Context, email string) (int64, string, error) {
	customer, err := c.repo.GetByEmail(ctx, email)
	if err != nil {
		return 0, "", err
	}
	return customer.ID, customer.PasswordHash, nil
}

// CompanyCredentials adapts the company repository to CredentialReader.
type CompanyCredentials struct {
	repo *repository.CompanyRepository
}

func NewCompanyCredentials(repo *repository.CompanyRepository) *CompanyCredentials {
	return &CompanyCredentials{repo: repo}
}

func (c *CompanyCredentials) GetByEmail(ctx context.Context, email string) (int64, string, error) {
	company, err := c.repo.GetByEmail(ctx, email)
	if err != nil {
		return 0, "", err
	}
	return company.ID, company.PasswordHash, nil
}
