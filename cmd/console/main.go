package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sbilibin2017/gw-admin-console/internal/client"
	"github.com/sbilibin2017/gw-admin-console/internal/console"
	"github.com/sbilibin2017/gw-admin-console/internal/logger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the console
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

func main() {
	printBuildInfo()
	configPath := parseFlags()

	apiURL, timeout, logLevel, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), apiURL, timeout, logLevel); err != nil {
		log.Fatalf("console stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting console version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the API
// base URL, the request timeout and the log level.
func parseConfig(path string) (apiURL string, timeout time.Duration, logLevel string, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	apiURL = getEnv("CONSOLE_API_URL", "http://localhost:8080/api/v1")
	logLevel = getEnv("APP_LOG_LEVEL", "warn")

	var seconds int
	if seconds, err = strconv.Atoi(getEnv("CONSOLE_TIMEOUT_SECOND", "10")); err != nil {
		return
	}
	timeout = time.Duration(seconds) * time.Second
	return
}

// run starts the interactive console on stdin and stdout.
func run(ctx context.Context, apiURL string, timeout time.Duration, logLevel string) error {
	if err := logger.InitializeConsole(logLevel); err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.New(apiURL, nil, timeout)
	in := bufio.NewScanner(os.Stdin)
	r := newREPL(in, os.Stdout, func(confirm console.Confirmer) *console.Page {
		return console.NewPage(api.Users(), api.Posts(), confirm)
	})

	logger.Log.Infow("console started", "api", apiURL)
	return r.run(ctx)
}
