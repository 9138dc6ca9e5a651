package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/client-registry/internal/auth"
	domain "github.com/BruksfildServices01/client-registry/internal/domain/client"
)

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid client id %q", s)
	}
	return uint(id), nil
}

// fieldFlags maps flag names to the client fields they set or filter.
var fieldFlags = []struct {
	flag  string
	field domain.Field
	usage string
}{
	{"name", domain.FieldName, "client name"},
	{"secondname", domain.FieldSecondname, "client second name"},
	{"email", domain.FieldEmail, "client email"},
	{"phone", domain.FieldPhone, "phone number"},
}

// addFieldFlags registers a string flag for every field accepted by allow.
func addFieldFlags(cmd *cobra.Command, verb string, allow func(domain.Field) bool) {
	for _, ff := range fieldFlags {
		if allow(ff.field) {
			cmd.Flags().String(ff.flag, "", verb+" "+ff.usage)
		}
	}
}

// changedFields collects only the flags given on the command line, so an
// explicit empty value is kept while an omitted flag is skipped.
func changedFields(cmd *cobra.Command) domain.Fields {
	fields := domain.Fields{}
	for _, ff := range fieldFlags {
		f := cmd.Flags().Lookup(ff.flag)
		if f == nil || !f.Changed {
			continue
		}
		fields[ff.field] = domain.Value(f.Value.String())
	}
	return fields
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the client tables if they do not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.repo.InitializeSchema(cmd.Context()); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema initialized.")
			return nil
		},
	}
}

func newCreateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME SECONDNAME EMAIL",
		Short: "Register a new client",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.uc.Create.Execute(cmd.Context(), domain.NewClient{
				Name:       args[0],
				Secondname: args[1],
				Email:      args[2],
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created client with ID: %d\n", id)
			return nil
		},
	}
}

func newAddPhoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-phone CLIENT_ID PHONE",
		Short: "Attach a phone number to a client",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			phone, err := a.uc.AddPhone.Execute(cmd.Context(), id, args[1])
			if err != nil {
				return fmt.Errorf("failed to add phone: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added phone %s (id %d) to client %d\n", phone.Phone, phone.ID, id)
			return nil
		},
	}
}

func newUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update CLIENT_ID",
		Short: "Change a client's name, second name or email",
		Long: `Only the flags given are applied. Passing a flag with an empty value
(--name "") asks for an empty value, which the registry rejects.
Updating an unknown client changes nothing and is not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			fields := changedFields(cmd)
			if len(fields) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to update.")
				return nil
			}

			if err := a.uc.Update.Execute(cmd.Context(), id, fields); err != nil {
				return fmt.Errorf("failed to update client: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Client %d updated.\n", id)
			return nil
		},
	}
	addFieldFlags(cmd, "new", domain.Field.Updatable)
	return cmd
}

func newDeletePhoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-phone CLIENT_ID PHONE",
		Short: "Remove a phone number from a client",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			deleted, err := a.uc.DeletePhone.Execute(cmd.Context(), id, args[1])
			if err != nil {
				return fmt.Errorf("failed to delete phone: %w", err)
			}
			if deleted == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Phone %s not found for client %d.\n", args[1], id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted phone with ID: %d\n", *deleted)
			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete CLIENT_ID",
		Short: "Delete a client and all of its phone numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			deleted, err := a.uc.DeleteClient.Execute(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to delete client: %w", err)
			}
			if deleted == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Client %d not found.\n", id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted client with ID: %d\n", *deleted)
			return nil
		},
	}
}

func newFindCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Search clients by case-insensitive substring",
		Long: `Every given flag must match (substring, case-insensitive). Without
flags all clients are listed, one row per phone number.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")

			rows, err := a.uc.Find.Execute(cmd.Context(), changedFields(cmd))
			if err != nil {
				return fmt.Errorf("failed to find clients: %w", err)
			}
			return printRows(cmd.OutOrStdout(), format, rows)
		},
	}
	addFieldFlags(cmd, "match", domain.Field.Searchable)
	cmd.Flags().StringP("output", "o", "table", "output format (table, json, yaml)")
	return cmd
}

func newPhonesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phones CLIENT_ID",
		Short: "List a client's phone numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("output")

			phones, err := a.uc.ListPhones.Execute(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to list phones: %w", err)
			}
			return printPhones(cmd.OutOrStdout(), format, phones)
		},
	}
	cmd.Flags().StringP("output", "o", "table", "output format (table, json, yaml)")
	return cmd
}

func newTokenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "token",
		Short:       "Issue a bearer token for the HTTP API",
		Long:        `Signs an HS256 token with the configured JWT secret (JWT_SECRET or jwt.secret).`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipDB: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			token, err := auth.IssueToken(a.cfg.JWTSecret, subject, ttl)
			if err != nil {
				return fmt.Errorf("failed to issue token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().String("subject", "clientctl", "token subject")
	cmd.Flags().Duration("ttl", 24*time.Hour, "token lifetime (0 for no expiry)")
	return cmd
}
