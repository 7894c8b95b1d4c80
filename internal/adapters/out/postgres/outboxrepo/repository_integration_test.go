package outboxrepo_test

import (
	"context"
	"testing"
	"time"

	"bakery/internal/adapters/out/postgres/outboxrepo"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/pgtest"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type OutboxRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *outboxrepo.GormOutboxRepository
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.repository = outboxrepo.NewGormOutboxRepository(database.DB)
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *OutboxRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OutboxRepositoryIntegrationTestSuite) message(at time.Time) ports.OutboxMessage {
	msg, err := outboxrepo.FromEvent(order.UpdatedEvent{
		ID:            kernel.NewUUID(),
		OrderID:       kernel.NewUUID(),
		UserID:        kernel.NewUUID(),
		OrderStatus:   order.StatusPreparing,
		PaymentStatus: order.PaymentPaid,
		UpdatedBy:     kernel.NewUUID(),
		At:            at,
	})
	suite.Require().NoError(err)
	return msg
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetUnprocessed_OldestFirstWithLimit() {
	ctx := context.Background()
	now := time.Now().UTC()
	late, early, middle := suite.message(now), suite.message(now.Add(-2*time.Minute)), suite.message(now.Add(-time.Minute))
	suite.Require().NoError(suite.repository.Add(ctx, late, early, middle))

	got, err := suite.repository.GetUnprocessed(ctx, 2)
	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal(early.ID, got[0].ID)
	suite.Equal(middle.ID, got[1].ID)
	suite.Equal(order.EventTypeUpdated, got[0].EventType)
	suite.JSONEq(string(early.Payload), string(got[0].Payload))
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestMarkProcessed() {
	ctx := context.Background()
	msg := suite.message(time.Now().UTC())
	suite.Require().NoError(suite.repository.Add(ctx, msg))

	suite.Require().NoError(suite.repository.MarkProcessed(ctx, msg.ID, time.Now().UTC()))

	got, err := suite.repository.GetUnprocessed(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(got)

	err = suite.repository.MarkProcessed(ctx, kernel.NewUUID(), time.Now().UTC())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetUnprocessed_SkipsRowsLockedByAnotherRelay() {
	ctx := context.Background()
	first, second := suite.message(time.Now().UTC().Add(-time.Minute)), suite.message(time.Now().UTC())
	suite.Require().NoError(suite.repository.Add(ctx, first, second))

	tx := suite.database.DB.Begin()
	defer tx.Rollback()

	locked, err := outboxrepo.NewGormOutboxRepository(tx).GetUnprocessed(ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Len(locked, 1)
	suite.Equal(first.ID, locked[0].ID)

	other, err := suite.repository.GetUnprocessed(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(other, 1)
	suite.Equal(second.ID, other[0].ID)
}

func TestFromEvent_RejectsUnknownEvents(t *testing.T) {
	_, err := outboxrepo.FromEvent(nil)
	require.Error(t, err)
}

func TestOutboxRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OutboxRepositoryIntegrationTestSuite))
}
