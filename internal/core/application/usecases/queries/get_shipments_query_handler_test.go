package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/accountrepo"
	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/adapters/out/postgres/locationrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetShipmentsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetShipmentsQueryHandler
}

func (suite *GetShipmentsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&locationrepo.LocationDTO{},
		&accountrepo.UserDTO{},
		&accountrepo.CustomerDTO{},
		&driverrepo.DriverDTO{},
		&shipmentrepo.ShipmentDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetShipmentsQueryHandler(db)
}

func (suite *GetShipmentsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetShipmentsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE shipments, drivers, customers, users, locations RESTART IDENTITY CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetShipmentsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetShipmentsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetShipmentsQueryHandlerTestSuite) TestHandle_WithShipments_ReturnsNewestFirstWithLocationNames() {
	suite.seedReferenceData()
	suite.seedShipment("TRK-1001", 10, nil, time.Now().Add(-2*time.Hour))
	suite.seedShipment("TRK-1002", 10, nil, time.Now().Add(-1*time.Hour))

	query := queries.NewGetShipmentsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("TRK-1002", result[0].TrackingNumber)
	suite.Equal("TRK-1001", result[1].TrackingNumber)
	suite.Equal("Pune, Maharashtra", result[0].Origin)
	suite.Equal("Mumbai, Maharashtra", result[0].Destination)
	suite.Equal(shipment.StatusPending, result[0].Status)
}

func (suite *GetShipmentsQueryHandlerTestSuite) TestHandle_CustomerScope_ReturnsOnlyOwnShipments() {
	suite.seedReferenceData()
	suite.seedShipment("TRK-2001", 10, nil, time.Now())
	suite.seedShipment("TRK-2002", 11, nil, time.Now())

	// User 100 owns customer 10.
	query, err := queries.NewGetShipmentsQueryForUser(kernel.MustNewID(100), account.UserTypeCustomer)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("TRK-2001", result[0].TrackingNumber)
}

func (suite *GetShipmentsQueryHandlerTestSuite) TestHandle_DriverScope_ReturnsOnlyAssignedShipments() {
	suite.seedReferenceData()
	driverID := int64(20)
	suite.seedShipment("TRK-3001", 10, &driverID, time.Now())
	suite.seedShipment("TRK-3002", 10, nil, time.Now())

	// User 102 is driver 20.
	query, err := queries.NewGetShipmentsQueryForUser(kernel.MustNewID(102), account.UserTypeDriver)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("TRK-3001", result[0].TrackingNumber)
}

// seedReferenceData inserts two locations, two customer accounts (customers
// 10 and 11 owned by users 100 and 101) and one driver (driver 20 owned by
// user 102).
func (suite *GetShipmentsQueryHandlerTestSuite) seedReferenceData() {
	locations := []locationrepo.LocationDTO{
		{ID: 1, Address: "FC Road 1", City: "Pune", State: "Maharashtra",
			Country: "India", PostalCode: "411004", LocationType: "city"},
		{ID: 2, Address: "Marine Drive 5", City: "Mumbai", State: "Maharashtra",
			Country: "India", PostalCode: "400002", LocationType: "city"},
	}
	suite.Require().NoError(suite.db.Create(&locations).Error)

	users := []accountrepo.UserDTO{
		{ID: 100, Username: "acme", FullName: "Acme Logistics", Email: "ops@acme.test",
			Phone: "555-0100", UserType: "customer", PasswordHash: "x"},
		{ID: 101, Username: "globex", FullName: "Globex Corp", Email: "ops@globex.test",
			Phone: "555-0101", UserType: "customer", PasswordHash: "x"},
		{ID: 102, Username: "rkumar", FullName: "Ravi Kumar", Email: "ravi@fleet.test",
			Phone: "555-0102", UserType: "driver", PasswordHash: "x"},
	}
	suite.Require().NoError(suite.db.Create(&users).Error)

	customers := []accountrepo.CustomerDTO{
		{ID: 10, UserID: 100, CompanyName: "Acme Logistics", TaxID: "TAX-10", CreditLimit: 10000},
		{ID: 11, UserID: 101, CompanyName: "Globex Corp", TaxID: "TAX-11", CreditLimit: 5000},
	}
	suite.Require().NoError(suite.db.Create(&customers).Error)

	drivers := []driverrepo.DriverDTO{
		{ID: 20, UserID: 102, LicenseNumber: "DL-0042", Status: "available"},
	}
	suite.Require().NoError(suite.db.Create(&drivers).Error)
}

func (suite *GetShipmentsQueryHandlerTestSuite) seedShipment(
	trackingNumber string, customerID int64, driverID *int64, createdAt time.Time,
) {
	dto := shipmentrepo.ShipmentDTO{
		TrackingNumber: trackingNumber,
		CustomerID:     customerID,
		OriginID:       1,
		DestinationID:  2,
		DriverID:       driverID,
		Status:         "pending",
		CreatedAt:      createdAt.UTC(),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func TestGetShipmentsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetShipmentsQueryHandlerTestSuite))
}
