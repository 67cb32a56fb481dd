package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/client"
	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/onboarding"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const defaultAPIURL = "http://localhost:8080"

type app struct {
	store  *onboarding.FileStore
	api    *client.APIClient
	stdin  io.Reader
	stdout io.Writer
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.SetFlags(0)
		log.Fatalf("semerrar: %v", err)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	var storePath, apiURL string
	flagSet := pflag.NewFlagSet("semerrar", pflag.ContinueOnError)
	flagSet.SetInterspersed(false)
	flagSet.SetOutput(stdout)
	flagSet.StringVar(&storePath, "store", getEnv("SEMERRAR_STORE", ""), "answers file (default: $SEMERRAR_STORE or the user config dir)")
	flagSet.StringVar(&apiURL, "api", getEnv("SEMERRAR_API_URL", defaultAPIURL), "backend base url")
	flagSet.Usage = func() {
		fmt.Fprintln(stdout, "usage: semerrar [--store FILE] [--api URL] [wizard|summary|signup|login|status|reset] [flags]")
		flagSet.PrintDefaults()
	}
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if storePath == "" {
		path, err := defaultStorePath()
		if err != nil {
			return err
		}
		storePath = path
	}
	store, err := onboarding.OpenFileStore(storePath)
	if err != nil {
		return err
	}

	a := &app{
		store:  store,
		api:    client.New(apiURL),
		stdin:  stdin,
		stdout: stdout,
	}

	rest := flagSet.Args()
	command := "wizard"
	if len(rest) > 0 {
		command, rest = rest[0], rest[1:]
	}

	switch command {
	case "wizard":
		return a.wizard(ctx, rest)
	case "summary":
		return a.summary(rest)
	case "signup":
		return a.signup(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "status":
		return a.status(ctx, rest)
	case "reset":
		return a.reset(rest)
	default:
		return fmt.Errorf("unknown command %q (want wizard, summary, signup, login, status, reset)", command)
	}
}

func defaultStorePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "semerrar", "perfil.yaml"), nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
