// Package bootstrap runs the credential check: it obtains (or reuses) the cached
// access token and lists a page of Drive files with it.
package bootstrap

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"

	"github.com/simon/drive-access/pkg/cache"
	"github.com/simon/drive-access/pkg/config"
	"github.com/simon/drive-access/pkg/drive"
	"github.com/simon/drive-access/pkg/listing"
)

// Options configures a single Run.
type Options struct {
	SecretPath string
	AccessPath string
	Stdin      io.Reader
	Stdout     io.Writer
	Logger     zerolog.Logger
	// DriveOptions are passed to the Drive client, e.g. option.WithEndpoint.
	DriveOptions []option.ClientOption
}

// Run loads the client secret, obtains the access token and prints the file listing.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger

	cfg, err := config.LoadClientSecret(opts.SecretPath)
	if err != nil {
		return err
	}
	logger.Debug().Str("secret", opts.SecretPath).Str("client_id", cfg.ClientID).Msg("client secret loaded")

	tok, err := ObtainAccessToken(ctx, opts.AccessPath, cfg, opts.Stdin, opts.Stdout, logger)
	if err != nil {
		return err
	}

	client, err := drive.NewClient(ctx, cfg.Client(ctx, tok.OAuth2()), logger, opts.DriveOptions...)
	if err != nil {
		return err
	}

	files, err := client.ListFiles(ctx)
	if err != nil {
		return err
	}

	if err := listing.Write(opts.Stdout, files); err != nil {
		return err
	}

	fmt.Fprintf(opts.Stdout, "\nFind your credentials file at: %s\n", opts.AccessPath)
	return nil
}

// ObtainAccessToken returns the token cached at accessPath unmodified. When there is
// none, it prints the consent URL, reads one authorization code line from in,
// exchanges it and stores the new token at accessPath before returning it.
func ObtainAccessToken(ctx context.Context, accessPath string, cfg *oauth2.Config, in io.Reader, out io.Writer, logger zerolog.Logger) (*cache.Token, error) {
	tok, err := cache.Load(accessPath, logger)
	if err != nil {
		return nil, err
	}
	if tok != nil {
		logger.Debug().Str("path", accessPath).Msg("using cached access token")
		return tok, nil
	}

	logger.Debug().Str("path", accessPath).Msg("no cached access token, requesting authorization")
	fmt.Fprintf(out, "Open the following link in your browser:\n\n%s\n\n", drive.AuthorizationURL(cfg))
	fmt.Fprint(out, "Enter verification code: ")

	code, err := ReadCode(in)
	if err != nil {
		return nil, err
	}

	exchanged, err := drive.ExchangeAuthorizationCode(ctx, cfg, code)
	if err != nil {
		return nil, err
	}

	tok = cache.FromOAuth2(exchanged)
	if err := cache.Save(accessPath, tok); err != nil {
		return nil, err
	}
	logger.Info().Str("path", accessPath).Msg("access token stored")

	return tok, nil
}

// ReadCode reads one line from r and returns it without surrounding whitespace.
// There is no timeout.
func ReadCode(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading verification code: %w", err)
	}

	code := strings.TrimSpace(line)
	if code == "" {
		return "", fmt.Errorf("no verification code entered")
	}
	return code, nil
}
