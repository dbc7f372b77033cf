// Command token-generator prints a signed bearer token for an owner, for
// exercising a deployment that rejects anonymous requests.
//
// Usage:
//
//	TASKFLOW_AUTH_JWT_SECRET=... token-generator -owner alice [-lifetime 2h]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/phrazzld/taskflow-api/internal/config"
	"github.com/phrazzld/taskflow-api/internal/service/auth"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, config.Load); err != nil {
		fmt.Fprintf(os.Stderr, "token-generator: %v\n", err)
		os.Exit(2)
	}
}

// run parses args, signs a token with the configured secret and writes it
// to out followed by a newline.
func run(args []string, out io.Writer, load func() (*config.Config, error)) error {
	fs := flag.NewFlagSet("token-generator", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	owner := fs.String("owner", "", "owner ID to place in the token subject (required)")
	lifetime := fs.Duration("lifetime", 0, "token lifetime; defaults to auth.token_lifetime_minutes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *owner == "" {
		return errors.New("-owner is required")
	}
	if *lifetime < 0 {
		return fmt.Errorf("-lifetime must be positive, got %s", *lifetime)
	}

	cfg, err := load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	authCfg := cfg.Auth
	if *lifetime > 0 {
		minutes := int(lifetime.Round(time.Minute) / time.Minute)
		if minutes < 1 {
			minutes = 1
		}
		authCfg.TokenLifetimeMinutes = minutes
	}

	tokens, err := auth.NewTokenService(authCfg)
	if err != nil {
		return err
	}

	token, err := tokens.GenerateToken(context.Background(), *owner)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, token)
	return err
}
