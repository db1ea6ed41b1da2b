package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"bogenliga/internal/infrastructure/storage/postgres"
	"bogenliga/internal/infrastructure/storage/postgres/catalog_repo"
)

func newMigrateCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, closeFn, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			if err := postgres.Migrate(cmd.Context(), e.pool); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func newVerifySchemaCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "verify-schema",
		Short: "Compare the repository column maps with the database tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, closeFn, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			verifier, db := postgres.NewPoolSchemaVerifier(e.pool)
			defer db.Close()

			tables := catalog_repo.Tables()
			if err := verifier.Verify(cmd.Context(), tables); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d tables match their column maps\n", len(tables))
			return nil
		},
	}
}

func newUserCmd(open opener) *cobra.Command {
	user := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}

	var (
		password string
		clubID   int64
		roles    []string
	)
	create := &cobra.Command{
		Use:   "create <email>",
		Short: "Create an account and assign roles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, closeFn, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			created, err := e.authService().CreateUser(cmd.Context(), args[0], password, clubID, roles...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %d (%s)\n", created.ID, created.Email)
			return nil
		},
	}
	create.Flags().StringVar(&password, "password", "", "initial password")
	create.Flags().Int64Var(&clubID, "club", 0, "club id for club-scoped roles")
	create.Flags().StringSliceVar(&roles, "role", nil, "role name, repeatable (ADMIN, LIGALEITER, SPORTLEITER, USER)")
	_ = create.MarkFlagRequired("password")

	user.AddCommand(create)
	return user
}

func newTokenCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "token <email>",
		Short: "Issue an access token for an existing account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, closeFn, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			res, err := e.authService().IssueTokenFor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", res.ExpiresAt.UTC().Format(time.RFC3339))
			return nil
		},
	}
}
