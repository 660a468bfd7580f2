package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/accountrepo"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type LoginQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.LoginQueryHandler
}

func (suite *LoginQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&accountrepo.UserDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewLoginQueryHandler(db)
}

func (suite *LoginQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *LoginQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE users RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

func (suite *LoginQueryHandlerTestSuite) TestHandle_ValidCredentials_ReturnsUser() {
	suite.seedUser("jsmith", "s3cret", "John Smith", "admin")

	query, err := queries.NewLoginQuery("jsmith", "s3cret")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("jsmith", result.Username)
	suite.Equal("John Smith", result.FullName)
	suite.Equal(account.UserTypeAdmin, result.UserType)
	suite.Positive(result.ID.Int64())
}

func (suite *LoginQueryHandlerTestSuite) TestHandle_WrongPassword_ReturnsUnauthorized() {
	suite.seedUser("jsmith", "s3cret", "John Smith", "admin")

	query, err := queries.NewLoginQuery("jsmith", "wrong")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrUnauthorized)
}

func (suite *LoginQueryHandlerTestSuite) TestHandle_UnknownUsername_ReturnsUnauthorized() {
	query, err := queries.NewLoginQuery("ghost", "whatever")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrUnauthorized)
}

func (suite *LoginQueryHandlerTestSuite) seedUser(username, password, fullName, userType string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	suite.Require().NoError(err)

	user := accountrepo.UserDTO{
		Username:     username,
		FullName:     fullName,
		Email:        username + "@example.test",
		Phone:        "555-0100",
		UserType:     userType,
		PasswordHash: string(hash),
	}
	suite.Require().NoError(suite.db.Create(&user).Error)
}

func TestLoginQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LoginQueryHandlerTestSuite))
}
