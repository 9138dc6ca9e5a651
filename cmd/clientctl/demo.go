package main

import (
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/BruksfildServices01/client-registry/internal/domain/client"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a create/update/search/delete round trip against the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if err := a.repo.InitializeSchema(ctx); err != nil {
				return err
			}

			clientID, err := a.uc.Create.Execute(ctx, domain.NewClient{
				Name:       "Ivan",
				Secondname: "Ivanov",
				Email:      "ivanov@example.com",
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Created client with ID: %d\n", clientID)

			phone, err := a.uc.AddPhone.Execute(ctx, clientID, "123456789")
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Added phone: %d %s\n", phone.ID, phone.Phone)

			if err := a.uc.Update.Execute(ctx, clientID, domain.Fields{
				domain.FieldName:       domain.Value("Ivan"),
				domain.FieldSecondname: domain.Value("Sidorov"),
			}); err != nil {
				return err
			}
			fmt.Fprintln(out, "Client updated.")

			rows, err := a.uc.Find.Execute(ctx, domain.Fields{domain.FieldName: domain.Value("Ivan")})
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Search results:")
			if err := printRows(out, "table", rows); err != nil {
				return err
			}

			deletedPhone, err := a.uc.DeletePhone.Execute(ctx, clientID, "123456789")
			if err != nil {
				return err
			}
			if deletedPhone != nil {
				fmt.Fprintf(out, "Deleted phone with ID: %d\n", *deletedPhone)
			}

			deletedClient, err := a.uc.DeleteClient.Execute(ctx, clientID)
			if err != nil {
				return err
			}
			if deletedClient != nil {
				fmt.Fprintf(out, "Deleted client with ID: %d\n", *deletedClient)
			}
			return nil
		},
	}
}
