package service_test

import (
	"context"
	"testing"

	"github.com/adifdwimaulana/saas-coding-test/internal/model"
	"github.com/adifdwimaulana/saas-coding-test/internal/repository"
	"github.com/adifdwimaulana/saas-coding-test/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCustomerRepo struct {
	customers []model.Customer
}

func (r *stubCustomerRepo) List(_ context.Context) ([]model.Customer, error) {
	return r.customers, nil
}

var _ repository.CustomerRepository = (*stubCustomerRepo)(nil)

func TestCustomerList(t *testing.T) {
	email := "billing@acme.example"
	repo := &stubCustomerRepo{customers: []model.Customer{
		{CustomerID: uuid.New(), Name: "Acme Corp", Email: &email},
		{CustomerID: uuid.New(), Name: "Globex"},
	}}
	svc := service.NewCustomerService(repo)

	data, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, data, 2)
	assert.Equal(t, "Acme Corp", data[0].Name)
	require.NotNil(t, data[0].Email)
	assert.Equal(t, email, *data[0].Email)
	assert.Nil(t, data[1].Email)
}

func TestCustomerList_Empty(t *testing.T) {
	svc := service.NewCustomerService(&stubCustomerRepo{})

	data, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data)
}
