package accountrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/accountrepo"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// AccountRepositoryIntegrationTestSuite verifies account persistence and the
// lookups backing the access guard and the notification fan-out.
type AccountRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *accountrepo.GormAccountRepository
	tracker    *MockAggregateTracker
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&accountrepo.AccountDTO{}, &accountrepo.RestaurantGrant{}))
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE accounts CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE account_restaurants").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = accountrepo.NewGormAccountRepository(suite.db, suite.tracker)
}

func (suite *AccountRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AccountRepositoryIntegrationTestSuite) TestAddAndGet_WithGrants() {
	ctx := context.Background()
	restaurantID := kernel.NewUUID()

	aggregate, err := account.NewAccount(kernel.NewUUID(), "Robin", kernel.RoleRestaurantAdmin, "robin-token")
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.GrantRestaurant(restaurantID))
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal("Robin", loaded.Name())
	suite.Equal(kernel.RoleRestaurantAdmin, loaded.Role())
	suite.True(loaded.OwnsRestaurant(restaurantID))
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGetByToken() {
	ctx := context.Background()

	aggregate, err := account.NewAccount(kernel.NewUUID(), "Dana", kernel.RoleCustomer, "dana-token")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.GetByToken(ctx, "dana-token")
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(aggregate.ID()))

	_, err = suite.repository.GetByToken(ctx, "no-such-token")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestUpdate_PersistsTelegramLink() {
	ctx := context.Background()

	aggregate, err := account.NewAccount(kernel.NewUUID(), "Dana", kernel.RoleCustomer, "dana-token")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.LinkTelegram(4242))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	loaded, err := suite.repository.GetByChatID(ctx, 4242)
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(aggregate.ID()))
	suite.Equal(int64(4242), loaded.TelegramChatID())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGetAdminsByRestaurant() {
	ctx := context.Background()
	restaurantID := kernel.NewUUID()

	mine, err := account.NewAccount(kernel.NewUUID(), "Robin", kernel.RoleRestaurantAdmin, "robin-token")
	suite.Require().NoError(err)
	suite.Require().NoError(mine.GrantRestaurant(restaurantID))
	other, err := account.NewAccount(kernel.NewUUID(), "Jo", kernel.RoleRestaurantAdmin, "jo-token")
	suite.Require().NoError(err)
	suite.Require().NoError(other.GrantRestaurant(kernel.NewUUID()))
	customer, err := account.NewAccount(kernel.NewUUID(), "Dana", kernel.RoleCustomer, "dana-token")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, mine))
	suite.Require().NoError(suite.repository.Add(ctx, other))
	suite.Require().NoError(suite.repository.Add(ctx, customer))

	admins, err := suite.repository.GetAdminsByRestaurant(ctx, restaurantID)
	suite.Require().NoError(err)
	suite.Require().Len(admins, 1)
	suite.True(admins[0].ID().IsEqual(mine.ID()))
}

func TestAccountRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryIntegrationTestSuite))
}
