// Command tzselect lists, picks and serves localized time zone options.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	tzselect "github.com/goliatone/go-tzselect"
	"github.com/goliatone/go-tzselect/internal/config"
	"github.com/goliatone/go-tzselect/pkg/translations"
)

type app struct {
	envFile     string
	logLevel    string
	localeDir   string
	templateDir string

	cfg     *config.Config
	logger  zerolog.Logger
	catalog *translations.Catalog
	helper  *tzselect.Helper
	picker  Picker
}

func main() {
	root := newRootCmd(newSurveyPicker())
	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(picker Picker) *cobra.Command {
	a := &app{picker: picker}

	root := &cobra.Command{
		Use:           "tzselect",
		Short:         "Localized time zone option lists.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.envFile, "env", ".env", "The env file to read.")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error).")
	root.PersistentFlags().StringVar(&a.localeDir, "locale-dir", "", "Directory of YAML translation catalogs.")
	root.PersistentFlags().StringVar(&a.templateDir, "template-dir", "", "Directory overriding the option templates.")

	root.AddCommand(
		newListCmd(a),
		newPickCmd(a),
		newCheckCmd(a),
		newServeCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	a.logger = newLogger(cmd.ErrOrStderr(), zerolog.InfoLevel)

	cfg, err := config.Load(a.envFile)
	if err != nil {
		return a.fail(cmd, err)
	}
	a.cfg = cfg

	if a.localeDir == "" {
		a.localeDir = cfg.Locale.Dir
	}
	if a.templateDir == "" {
		a.templateDir = cfg.TemplateDir
	}

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = a.logLevel
	}
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return a.fail(cmd, fmt.Errorf("invalid log level %q: %w", level, err))
	}
	a.logger = a.logger.Level(parsed)

	if a.localeDir != "" {
		a.catalog, err = translations.LoadCatalogFS(os.DirFS(a.localeDir), ".")
		if err != nil {
			return a.fail(cmd, err)
		}
		a.logger.Debug().Str("dir", a.localeDir).Strs("locales", a.catalog.Locales()).Msg("loaded translations")
	} else {
		a.catalog, err = translations.DefaultCatalog()
		if err != nil {
			return a.fail(cmd, err)
		}
	}

	a.helper, err = tzselect.New(
		tzselect.WithTranslator(a.catalog),
		tzselect.WithDefaultLocale(cfg.Locale.Default),
		tzselect.WithTemplateDir(a.templateDir),
	)
	if err != nil {
		return a.fail(cmd, err)
	}
	return nil
}

// fail logs err before handing it back to cobra, which runs silenced.
func (a *app) fail(cmd *cobra.Command, err error) error {
	a.logger.Error().Err(err).Str("command", cmd.Name()).Msg("command failed")
	return err
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
