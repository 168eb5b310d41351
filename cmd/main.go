// Package main is the entry point for the drive-access CLI.
//
// drive-access checks a Google client secret by obtaining an OAuth2 access token,
// caching it for the backup tool, and listing up to 50 Drive files with it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/simon/drive-access/pkg/bootstrap"
	"github.com/simon/drive-access/pkg/config"
)

const appName = "drive-access"

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fmt.Fprintf(stdout, "%s %s\n\n", appName, version)

	flags := flag.NewFlagSet(appName, flag.ContinueOnError)
	flags.SetOutput(stdout)
	logLevel := flags.String("log-level", "warn", "Log level: trace, debug, info, warn, error")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: %s [client_secret.json] [client_access.json]\n\n", appName)
		fmt.Fprintf(flags.Output(), "  -h, --help\n    \tPrint this usage information\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	// Setup logger
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
		With().Timestamp().Logger().
		Level(level)

	secretPath, err := config.ResolveSecretPath(flags.Args())
	if err != nil {
		logger.Error().Err(err).Msg("resolving client secret")
		return 1
	}
	accessPath := config.ResolveAccessPath(flags.Args())
	logger.Debug().Str("secret", secretPath).Str("access", accessPath).Msg("credential files resolved")

	err = bootstrap.Run(ctx, bootstrap.Options{
		SecretPath: secretPath,
		AccessPath: accessPath,
		Stdin:      stdin,
		Stdout:     stdout,
		Logger:     logger,
	})
	if err != nil {
		logger.Error().Err(err).Msg("credential check failed")
		return 1
	}

	return 0
}
