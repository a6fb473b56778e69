package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tyreRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"itemid", "brandid", "description", "cartype", "tyresize", "unitprice", "stockunit", "status",
	})
}

func serviceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"serviceid", "typeid", "description", "cartype", "price", "status",
	})
}

func TestRepository_GetTyreByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := tyreRows().
			AddRow("T0001", "B0001", "Michelin Pilot Sport 4", "Passenger", "225/45R17", "550.00", 12, "Active")

		mock.ExpectQuery("SELECT .* FROM tyres").
			WithArgs("T0001").
			WillReturnRows(rows)

		tyre, err := repo.GetTyreByID(context.Background(), "T0001")
		assert.NoError(t, err)
		require.NotNil(t, tyre)
		assert.Equal(t, "T0001", tyre.ItemID)
		assert.Equal(t, "550", tyre.UnitPrice.String())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM tyres").
			WithArgs("T9999").
			WillReturnRows(tyreRows())

		tyre, err := repo.GetTyreByID(context.Background(), "T9999")
		assert.NoError(t, err)
		assert.Nil(t, tyre)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM tyres").
			WillReturnError(errors.New("db error"))

		_, err := repo.GetTyreByID(context.Background(), "T0001")
		assert.Error(t, err)
	})
}

func TestRepository_ListTyres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := tyreRows().
		AddRow("T0001", "B0001", "Michelin Pilot Sport 4", "Passenger", "225/45R17", "550.00", 12, "Active").
		AddRow("T0002", "B0002", "Continental UC6", "SUV", "235/55R18", "480.00", 6, "Active")

	mock.ExpectQuery("SELECT .* FROM tyres ORDER BY itemid").
		WillReturnRows(rows)

	tyres, err := repo.ListTyres(context.Background())
	assert.NoError(t, err)
	assert.Len(t, tyres, 2)
	assert.Equal(t, "T0002", tyres[1].ItemID)
}

func TestRepository_GetServiceByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := serviceRows().
			AddRow("S0001", "ST01", "Wheel Alignment", "Passenger", "50.00", "Active")

		mock.ExpectQuery("SELECT .* FROM services").
			WithArgs("S0001").
			WillReturnRows(rows)

		svc, err := repo.GetServiceByID(context.Background(), "S0001")
		assert.NoError(t, err)
		require.NotNil(t, svc)
		assert.Equal(t, "Wheel Alignment", svc.Description)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM services").
			WithArgs("S9999").
			WillReturnRows(serviceRows())

		svc, err := repo.GetServiceByID(context.Background(), "S9999")
		assert.NoError(t, err)
		assert.Nil(t, svc)
	})
}

func TestRepository_ListServicesByType(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := serviceRows().
		AddRow("S0001", "ST01", "Wheel Alignment", "Passenger", "50.00", "Active").
		AddRow("S0003", "ST01", "Wheel Balancing", "SUV", "40.00", "Active")

	mock.ExpectQuery("SELECT .* FROM services WHERE typeid").
		WithArgs("ST01").
		WillReturnRows(rows)

	services, err := repo.ListServicesByType(context.Background(), "ST01")
	assert.NoError(t, err)
	assert.Len(t, services, 2)
}

func TestRepository_ListBrands(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"brandid", "brandname"}).
		AddRow("B0001", "Michelin").
		AddRow("B0002", "Continental")

	mock.ExpectQuery("SELECT brandid, brandname FROM brands").
		WillReturnRows(rows)

	brands, err := repo.ListBrands(context.Background())
	assert.NoError(t, err)
	assert.Len(t, brands, 2)
	assert.Equal(t, "Michelin", brands[0].BrandName)
}

func TestRepository_ListPaymentMethods(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"methodid", "description"}).
		AddRow("PM01", "Credit Card").
		AddRow("PM02", "Cash")

	mock.ExpectQuery("SELECT methodid, description FROM payment_methods").
		WillReturnRows(rows)

	methods, err := repo.ListPaymentMethods(context.Background())
	assert.NoError(t, err)
	assert.Len(t, methods, 2)
}

func TestIsTyreID(t *testing.T) {
	assert.True(t, IsTyreID("T0001"))
	assert.False(t, IsTyreID("S0001"))
	assert.False(t, IsTyreID(""))
}
