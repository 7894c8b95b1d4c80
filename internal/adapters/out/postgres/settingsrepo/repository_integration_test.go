package settingsrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"bakery/internal/adapters/out/postgres/settingsrepo"
	"bakery/internal/core/domain/model/settings"
	"bakery/internal/pkg/pgtest"

	"github.com/stretchr/testify/suite"
)

type SettingsRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *settingsrepo.GormSettingsRepository
}

func (suite *SettingsRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.repository = settingsrepo.NewGormSettingsRepository(database.DB)
}

func (suite *SettingsRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *SettingsRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *SettingsRepositoryIntegrationTestSuite) TestGet_CreatesDefaultsOnce() {
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := suite.repository.Get(ctx)
			suite.NoError(err)
			if s != nil {
				suite.True(s.UPI().Enabled())
			}
		}()
	}
	wg.Wait()

	var rows int64
	suite.Require().NoError(suite.database.DB.Model(&settingsrepo.SettingsDTO{}).Count(&rows).Error)
	suite.Equal(int64(1), rows)

	s, err := suite.repository.Get(ctx)
	suite.Require().NoError(err)
	suite.Equal(settings.DefaultInstructions, s.UPI().Instructions())
	suite.Empty(s.UPI().UPIID())
}

func (suite *SettingsRepositoryIntegrationTestSuite) TestUpdate() {
	ctx := context.Background()
	s, err := suite.repository.Get(ctx)
	suite.Require().NoError(err)

	disabled, upiID := false, "mama.bakery@okhdfcbank"
	s.UpdateUPI(settings.UPIChanges{Enabled: &disabled, UPIID: &upiID}, time.Now().UTC())
	suite.Require().NoError(suite.repository.Update(ctx, s))

	got, err := suite.repository.Get(ctx)
	suite.Require().NoError(err)
	suite.False(got.UPI().Enabled())
	suite.Equal(upiID, got.UPI().UPIID())
	suite.ErrorIs(got.EnsureUPIAvailable(), settings.ErrPaymentMethodUnavailable)
}

func TestSettingsRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsRepositoryIntegrationTestSuite))
}
