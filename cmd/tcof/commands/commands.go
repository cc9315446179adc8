package commands

import (
	"context"
	"io"

	"github.com/alecthomas/kingpin/v2"
	"k8s.io/client-go/util/homedir"

	"github.com/Greg-CLD/tcof/internal/conventions"
	"github.com/Greg-CLD/tcof/internal/log"
	"github.com/Greg-CLD/tcof/internal/printer"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug       bool
	NoLog       bool
	NoColor     bool
	LoggerType  string
	DBPath      string
	APIURL      string
	APIToken    string
	CatalogPath string

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)

	defaultDBPath := conventions.DBPath(homedir.HomeDir())
	app.Flag("db-path", "Path to the SQLite database file.").Envar("TCOF_DB_PATH").Default(defaultDBPath).StringVar(&c.DBPath)

	app.Flag("api-url", "Base URL of a remote API server. When set, commands work against the API instead of the local database.").Envar("TCOF_API_URL").StringVar(&c.APIURL)
	app.Flag("api-token", "Bearer token for the remote API (see the login command).").Envar("TCOF_API_TOKEN").StringVar(&c.APIToken)
	app.Flag("catalog", "Path to the catalog YAML file (defaults to ~/.tcof/catalog.yaml for local commands).").Envar("TCOF_CATALOG").StringVar(&c.CatalogPath)

	return c
}

// remote reports whether commands should talk to an API server instead of
// the local database.
func (c *RootCommand) remote() bool { return c.APIURL != "" }

// newPrinter returns the printer for the requested output format.
func newPrinter(rootCmd *RootCommand, format string) printer.Printer {
	if format == "json" {
		return printer.NewJSONPrinter(rootCmd.Stdout)
	}
	return printer.NewTablePrinter(rootCmd.Stdout)
}
