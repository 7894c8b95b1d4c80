package main

import (
	"bakery/cmd"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo catalogue, UPI settings and two demo orders",
	RunE: func(c *cobra.Command, _ []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}

		db, err := cmd.OpenDatabase(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = cmd.CloseDatabase(db) }()

		report, err := cmd.Seed(c.Context(), cmd.NewCompositionRoot(cfg, db, logger))
		if err != nil {
			return err
		}

		if report.Products == 0 {
			logger.Info("Catalogue already present, only settings were refreshed")
			return nil
		}
		logger.Info("Seed completed", "products", report.Products, "orders", report.Orders,
			"admin_id", cmd.DemoAdminID, "customer_id", cmd.DemoCustomerAID)
		return nil
	},
}
