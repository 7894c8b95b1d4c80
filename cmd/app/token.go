package main

import (
	"fmt"

	"bakery/cmd"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/auth"

	"github.com/spf13/cobra"
)

var (
	tokenUserID string
	tokenRole   string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for local testing",
	RunE: func(c *cobra.Command, _ []string) error {
		cfg, _, err := bootstrap()
		if err != nil {
			return err
		}
		if err = cfg.RequireJWTSecret(); err != nil {
			return err
		}

		id, err := kernel.UUIDFromString(tokenUserID)
		if err != nil {
			return err
		}
		role, err := kernel.ParseRole(tokenRole)
		if err != nil {
			return err
		}
		actor, err := kernel.NewActor(id, role)
		if err != nil {
			return err
		}

		token, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL).Issue(actor)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.OutOrStdout(), token)
		return err
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUserID, "user", cmd.DemoCustomerAID, "user id to put in the token")
	tokenCmd.Flags().StringVar(&tokenRole, "role", string(kernel.RoleCustomer), "customer or admin")
}
