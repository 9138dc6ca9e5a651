package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/client-registry/internal/config"
	domain "github.com/BruksfildServices01/client-registry/internal/domain/client"
	"github.com/BruksfildServices01/client-registry/internal/export"
)

// newUploader is swapped in tests.
var newUploader = func(cfg *config.Config) (export.Uploader, error) {
	return export.NewS3Client(cfg)
}

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a snapshot of the clients to a file, stdout or S3",
		Long: `Exports the result of a search (same flags as find) as JSON or YAML.
With --bucket and --key the snapshot is uploaded to S3 (or an S3-compatible
store when s3.endpoint / S3_ENDPOINT is set); otherwise it is written to
--out, or stdout when --out is empty or "-".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			out, _ := cmd.Flags().GetString("out")
			bucket, _ := cmd.Flags().GetString("bucket")
			key, _ := cmd.Flags().GetString("key")

			rows, err := a.uc.Find.Execute(cmd.Context(), changedFields(cmd))
			if err != nil {
				return fmt.Errorf("failed to find clients: %w", err)
			}
			snap := export.NewSnapshot(rows, time.Now())

			if bucket == "" && key == "" {
				return export.ToFile(out, format, snap, cmd.OutOrStdout())
			}

			up, err := newUploader(a.cfg)
			if err != nil {
				return err
			}
			if err := export.ToS3(cmd.Context(), up, bucket, key, format, snap); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to s3://%s/%s\n", snap.Total, bucket, key)
			return nil
		},
	}
	addFieldFlags(cmd, "match", domain.Field.Searchable)
	cmd.Flags().StringP("format", "f", export.FormatJSON, "snapshot format (json, yaml)")
	cmd.Flags().StringP("out", "o", "", `output file ("-" or empty for stdout)`)
	cmd.Flags().String("bucket", "", "S3 bucket")
	cmd.Flags().String("key", "", "S3 object key")
	return cmd
}
