package cmd

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/pgtest"

	"github.com/stretchr/testify/suite"
)

type SeedTestSuite struct {
	suite.Suite
	ctx  context.Context
	pg   *pgtest.Database
	root *CompositionRoot
}

func TestSeedSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration suite")
	}
	suite.Run(t, new(SeedTestSuite))
}

func (s *SeedTestSuite) SetupSuite() {
	s.ctx = context.Background()
	pg, err := pgtest.Start(s.ctx)
	s.Require().NoError(err)
	s.pg = pg
	s.root = NewCompositionRoot(Config{JWTSecret: "test", TokenTTL: time.Hour}, pg.DB, slog.New(slog.DiscardHandler))
}

func (s *SeedTestSuite) TearDownSuite() {
	s.Require().NoError(s.pg.Terminate(s.ctx))
}

func (s *SeedTestSuite) SetupTest() {
	s.Require().NoError(s.pg.Truncate())
}

func (s *SeedTestSuite) admin() kernel.Actor {
	actor, err := demoActor(DemoAdminID, kernel.RoleAdmin)
	s.Require().NoError(err)
	return actor
}

func (s *SeedTestSuite) TestSeedLoadsCatalogueSettingsAndOrders() {
	report, err := Seed(s.ctx, s.root)
	s.Require().NoError(err)
	s.Equal(SeedReport{Products: 12, Orders: 2}, report)

	categories, err := s.root.CreateListCategoriesQueryHandler().Handle(s.ctx, queries.NewListCategoriesQuery())
	s.Require().NoError(err)
	s.Equal([]string{"Breads", "Cakes", "Cookies", "Cupcakes", "Desserts", "Pastries", "Savories"}, categories)

	featured := true
	products, err := s.root.CreateListProductsQueryHandler().Handle(s.ctx, queries.NewListProductsQuery("", &featured))
	s.Require().NoError(err)
	s.Len(products, 5)

	settingsView, err := s.root.CreateGetSettingsQueryHandler().Handle(s.ctx, queries.NewPublicSettingsQuery())
	s.Require().NoError(err)
	s.True(settingsView.UPI.Enabled)
	s.Equal("mama.bakery@okhdfcbank", settingsView.UPI.UPIID)

	listQuery, err := queries.NewListOrdersQuery(s.admin(), "", "")
	s.Require().NoError(err)
	orders, err := s.root.CreateListOrdersQueryHandler().Handle(s.ctx, listQuery)
	s.Require().NoError(err)
	s.Require().Len(orders, 2)

	byMethod := map[string]queries.OrderView{}
	for _, o := range orders {
		byMethod[o.PaymentMethod] = o
	}
	s.Equal("Pending Verification", byMethod["UPI"].PaymentStatus)
	s.Equal("1346.00", byMethod["UPI"].Total.String())
	s.Equal("Confirmed", byMethod["COD"].OrderStatus)
	s.Equal("1098.00", byMethod["COD"].Total.String())
}

func (s *SeedTestSuite) TestSeedIsIdempotentForTheCatalogue() {
	_, err := Seed(s.ctx, s.root)
	s.Require().NoError(err)

	report, err := Seed(s.ctx, s.root)
	s.Require().NoError(err)
	s.Zero(report.Products)

	products, err := s.root.CreateListProductsQueryHandler().Handle(s.ctx, queries.NewListProductsQuery("", nil))
	s.Require().NoError(err)
	s.Len(products, 12)
}
