// clientctl manages the client registry from the command line. It talks to
// the same database as the API and goes through the same use cases.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/client-registry/internal/audit"
	"github.com/BruksfildServices01/client-registry/internal/config"
	dbpkg "github.com/BruksfildServices01/client-registry/internal/db"
	"github.com/BruksfildServices01/client-registry/internal/infra/repository"
	"github.com/BruksfildServices01/client-registry/internal/logging"
	ucClient "github.com/BruksfildServices01/client-registry/internal/usecase/client"
)

var version = "dev" // set by the linker

// skipDB marks commands that run without a database.
const skipDB = "skip-db"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}

// app holds what PersistentPreRunE builds for the subcommands. Every root
// command gets its own app and viper instance so tests stay isolated.
type app struct {
	v       *viper.Viper
	cfgFile string

	cfg        *config.Config
	db         *gorm.DB
	repo       *repository.ClientGormRepository
	dispatcher *audit.Dispatcher
	uc         *ucClient.Set
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	base := config.Load()

	a.v.SetDefault("database.driver", base.DBDriver)
	a.v.SetDefault("database.dsn", base.DBUrl)
	a.v.SetDefault("database.max_open_conns", base.DBMaxOpenConns)
	a.v.SetDefault("database.max_idle_conns", base.DBMaxIdleConns)
	a.v.SetDefault("log.level", base.LogLevel)
	a.v.SetDefault("jwt.secret", base.JWTSecret)
	a.v.SetDefault("audit.queue_size", base.AuditQueueSize)
	a.v.SetDefault("s3.region", base.S3Region)
	a.v.SetDefault("s3.endpoint", base.S3Endpoint)
	a.v.SetDefault("s3.access_key_id", base.S3AccessKeyID)
	a.v.SetDefault("s3.secret_access_key", base.S3SecretAccessKey)

	cmd := &cobra.Command{
		Use:   "clientctl",
		Short: "clientctl manages clients and their phone numbers.",
		Long: `clientctl stores clients (name, second name, unique email) and any
number of phone numbers per client in PostgreSQL or SQLite.

Settings come from flags, CLIENTCTL_* environment variables, a YAML config
file (.clientctl.yaml in the home or current directory), and finally the
same environment the API server reads (DATABASE_URL, DB_DRIVER, ...).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			logging.Setup(cmd.ErrOrStderr(), a.cfg.LogLevel)

			if cmd.Annotations[skipDB] == "true" {
				return nil
			}
			return a.open()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	cmd.Version = version

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.clientctl.yaml or ./.clientctl.yaml)")
	cmd.PersistentFlags().String("db-driver", "", `Database driver ("postgres", "sqlite")`)
	cmd.PersistentFlags().String("db-dsn", "", "Database connection string (DSN)")
	cmd.PersistentFlags().String("log-level", "", `Log level ("debug", "info", "warn", "error")`)

	a.v.BindPFlag("database.driver", cmd.PersistentFlags().Lookup("db-driver"))
	a.v.BindPFlag("database.dsn", cmd.PersistentFlags().Lookup("db-dsn"))
	a.v.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(
		newInitCmd(a),
		newCreateCmd(a),
		newAddPhoneCmd(a),
		newUpdateCmd(a),
		newDeletePhoneCmd(a),
		newDeleteCmd(a),
		newFindCmd(a),
		newPhonesCmd(a),
		newExportCmd(a),
		newTokenCmd(a),
		newDemoCmd(a),
	)

	// PersistentPostRunE is skipped when RunE fails.
	for _, sub := range cmd.Commands() {
		run := sub.RunE
		sub.RunE = func(c *cobra.Command, args []string) error {
			if err := run(c, args); err != nil {
				a.close()
				return err
			}
			return nil
		}
	}

	return cmd
}

// initConfig reads the config file and CLIENTCTL_* variables into a.cfg.
// A missing default config file is not an error; a missing explicit one is.
func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".clientctl")
	}

	a.v.SetEnvPrefix("CLIENTCTL")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	a.cfg = &config.Config{
		DBDriver:          a.v.GetString("database.driver"),
		DBUrl:             a.v.GetString("database.dsn"),
		DBMaxOpenConns:    a.v.GetInt("database.max_open_conns"),
		DBMaxIdleConns:    a.v.GetInt("database.max_idle_conns"),
		LogLevel:          a.v.GetString("log.level"),
		JWTSecret:         a.v.GetString("jwt.secret"),
		AuditQueueSize:    a.v.GetInt("audit.queue_size"),
		S3Region:          a.v.GetString("s3.region"),
		S3Endpoint:        a.v.GetString("s3.endpoint"),
		S3AccessKeyID:     a.v.GetString("s3.access_key_id"),
		S3SecretAccessKey: a.v.GetString("s3.secret_access_key"),
	}
	return nil
}

func (a *app) open() error {
	db, err := dbpkg.NewDB(a.cfg)
	if err != nil {
		return err
	}

	a.db = db
	a.repo = repository.NewClientGormRepository(db)
	a.dispatcher = audit.NewDispatcher(audit.New(nil), a.cfg.AuditQueueSize)
	a.uc = ucClient.NewSet(a.repo, a.dispatcher)
	return nil
}

func (a *app) close() error {
	a.dispatcher.Close()
	a.dispatcher = nil

	if a.db == nil {
		return nil
	}
	err := dbpkg.Close(a.db)
	a.db = nil
	return err
}
