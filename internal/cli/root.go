package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Nikita06122002/credstore/pkg/logging"
	"github.com/alecthomas/kong"
)

var logger = logging.Component("internal/cli")

type Globals struct {
	Verbose        bool   `help:"Enable verbose logging." short:"v"`
	NonInteractive bool   `help:"Disable interactive prompts."`
	Service        string `help:"Service namespace for stored credentials." env:"CREDSTORE_SERVICE"`
	Backend        string `help:"Secret storage backend (system, keyring, memory)." env:"CREDSTORE_BACKEND"`
	Retry          bool   `help:"Retry transient storage failures." env:"CREDSTORE_RETRY"`
	ConfigDir      string `help:"Override configuration directory."`
	LogToFile      bool   `help:"Enable logging to file." env:"CREDSTORE_LOG_TO_FILE"`
	LogFilePath    string `help:"Override default log file path." env:"CREDSTORE_LOG_FILE"`
}

type CLI struct {
	Globals `embed:""`

	Set     SetCmd     `cmd:"" help:"Store a credential."`
	Get     GetCmd     `cmd:"" help:"Print a stored credential."`
	Update  UpdateCmd  `cmd:"" help:"Replace the value of an existing credential."`
	Delete  DeleteCmd  `cmd:"" help:"Remove a stored credential."`
	Exists  ExistsCmd  `cmd:"" help:"Check whether a credential is stored."`
	Version VersionCmd `cmd:"" help:"Show application version."`
}

func Main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("credstore"),
		kong.Description("Secure key-value credential store backed by the OS secret service"),
		kong.UsageOnError(),
	)

	logPath := cli.Globals.LogFilePath
	if (cli.Globals.LogToFile || os.Getenv("CREDSTORE_LOG_TO_FILE") == "true") && logPath == "" {
		logPath = filepath.Join(logging.GetDefaultLogDir(), "credstore.log")
	}

	logging.SetupLogging(cli.Globals.Verbose, logPath)

	err := kctx.Run(&cli.Globals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
