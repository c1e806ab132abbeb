package main

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/streamingfast/logging"
	"go.uber.org/zap"

	"github.com/suparena/itemfetch"
	"github.com/suparena/itemfetch/config"
	"github.com/suparena/itemfetch/datastore"
	"github.com/suparena/itemfetch/datastore/ddb"
	"github.com/suparena/itemfetch/errors"
	"github.com/suparena/itemfetch/registry"
	"github.com/suparena/itemfetch/storagemodels"
)

const usage = `
Usage:
    getitem [flags] <table> <name> [projection_expression]
    getitem [flags] -name <name> [-name <name> ...] <table> [projection_expression]

Where:
    table - the table to get an item from.
    name  - the item to get. Each -name is looked up on its own.

You can add an optional projection expression (a quote-delimited,
comma-separated list of attributes to retrieve) to limit the
fields returned from the table.

Example:
    getitem HelloTable World
    getitem SiteColors text "default, bold"
    getitem -name World -name Moon HelloTable

Flags:
`

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type options struct {
	configPath string
	envPath    string
	region     string
	endpoint   string
	consistent bool
	timing     bool
	json       bool
	verbose    bool
	version    bool
	names      nameList
}

// nameList collects repeated -name flags.
type nameList []string

func (n *nameList) String() string {
	return strings.Join(*n, ",")
}

func (n *nameList) Set(v string) error {
	*n = append(*n, v)
	return nil
}

// store is the closeable Getter the CLI reads through.
type store interface {
	datastore.Getter
	Close() error
}

// openStore connects to DynamoDB. Tests replace it with an in-memory store.
var openStore = func(ctx context.Context, cfg ddb.ClientConfig, logger *zap.Logger) (store, error) {
	client, err := ddb.NewClient(ctx, cfg, ddb.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return client, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options

	fs := flag.NewFlagSet("getitem", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML configuration file")
	fs.StringVar(&opts.envPath, "env", ".env", "dotenv file loaded before reading the environment")
	fs.StringVar(&opts.region, "region", "", "AWS region (overrides config and AWS_REGION)")
	fs.StringVar(&opts.endpoint, "endpoint", "", "DynamoDB endpoint, e.g. http://localhost:8000")
	fs.BoolVar(&opts.consistent, "consistent", false, "use a strongly consistent read")
	fs.BoolVar(&opts.timing, "timing", false, "report init, per-request, exit and overall durations on stderr")
	fs.BoolVar(&opts.json, "json", false, "print the item as a JSON object")
	fs.BoolVar(&opts.verbose, "v", false, "enable debug logging")
	fs.BoolVar(&opts.version, "version", false, "show version information")
	fs.Var(&opts.names, "name", "item to get; may be repeated, the table is then the only required argument")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}

	if opts.version {
		info := itemfetch.GetVersionInfo()
		fmt.Fprintf(stdout, "itemfetch getitem version %s\n", info.Version)
		fmt.Fprintf(stdout, "Git commit: %s\n", info.GitCommit)
		fmt.Fprintf(stdout, "Build date: %s\n", info.BuildDate)
		fmt.Fprintf(stdout, "Go version: %s\n", info.GoVersion)
		return exitOK
	}

	table, names, projection, ok := parseArgs(fs.Args(), opts.names)
	if !ok {
		fs.Usage()
		return exitUsage
	}

	overall := time.Now()

	logger := zap.NewNop()
	if opts.verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintf(stderr, "error: create logger: %v\n", err)
			return exitFailure
		}
		defer logger.Sync()
		logging.Override(logger)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}
	if err := cfg.RegisterTables(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	start := time.Now()
	st, err := openStore(ctx, cfg.ClientConfig(), logger)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}
	if opts.timing {
		reportTiming(stderr, "Init", time.Since(start))
	}

	fetcher := itemfetch.New(newGetter(st, opts.timing, stderr), itemfetch.WithLogger(logger))
	code := exitOK
	for _, name := range names {
		if c := lookup(ctx, fetcher, table, name, projection, fetchOptions(opts, cfg), opts.json, stdout, stderr); c > code {
			code = c
		}
	}

	start = time.Now()
	if err := st.Close(); err != nil {
		logger.Warn("close store", zap.Error(err))
	}
	if opts.timing {
		reportTiming(stderr, "Exit", time.Since(start))
		reportTiming(stderr, "Overall", time.Since(overall))
	}
	return code
}

// parseArgs splits the positional arguments. Without -name flags they are
// <table> <name> [projection]; with them, <table> [projection].
func parseArgs(args []string, flagNames []string) (table string, names []string, projection []string, ok bool) {
	rest := args
	if len(flagNames) > 0 {
		if len(rest) < 1 || len(rest) > 2 {
			return "", nil, nil, false
		}
		table, names, rest = rest[0], flagNames, rest[1:]
	} else {
		if len(rest) < 2 || len(rest) > 3 {
			return "", nil, nil, false
		}
		table, names, rest = rest[0], []string{rest[1]}, rest[2:]
	}
	if len(rest) == 1 {
		projection = parseProjection(rest[0])
	}
	return table, names, projection, true
}

// newGetter wraps g with per-request timing on stderr when timing is set.
func newGetter(g datastore.Getter, timing bool, stderr io.Writer) datastore.Getter {
	if !timing {
		return g
	}
	return itemfetch.NewTimedGetter(g, func(params *storagemodels.GetParams, elapsed time.Duration, err error) {
		reportTiming(stderr, "GetItem "+params.TableName, elapsed)
	})
}

// fetchOptions returns the per-lookup options selected by flags and config.
func fetchOptions(opts options, cfg *config.Config) []itemfetch.FetchOption {
	var fetchOpts []itemfetch.FetchOption
	if opts.consistent || cfg.ConsistentRead {
		fetchOpts = append(fetchOpts, itemfetch.WithConsistentRead())
	}
	return fetchOpts
}

func reportTiming(w io.Writer, label string, elapsed time.Duration) {
	fmt.Fprintf(w, "%s = %d[µs]\n", label, elapsed.Microseconds())
}

func loadConfig(opts options) (*config.Config, error) {
	if err := config.LoadEnvFile(opts.envPath); err != nil {
		return nil, err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.region != "" {
		cfg.Region = opts.region
	}
	if opts.endpoint != "" {
		cfg.Endpoint = opts.endpoint
	}
	return cfg, nil
}

// lookup fetches one item and prints it. Its outcome depends only on its own
// Fetch call.
func lookup(ctx context.Context, fetcher *itemfetch.ItemFetcher, table, name string, projection []string, fetchOpts []itemfetch.FetchOption, asJSON bool, stdout, stderr io.Writer) int {
	key := storagemodels.StringKey(registry.KeyAttribute(table), name)

	res, err := fetcher.Fetch(ctx, table, key, projection, fetchOpts...)
	if err != nil {
		var se *errors.StoreError
		if stderrors.As(err, &se) {
			fmt.Fprintf(stdout, "Failed to get item: %s\n", se.Message)
			return exitFailure
		}
		fmt.Fprintf(stderr, "Invalid request: %v\n", err)
		return exitUsage
	}

	if !res.Found {
		fmt.Fprintf(stdout, "No item found with the key %s\n", name)
		return exitOK
	}

	if asJSON {
		m, err := itemfetch.ItemToMap(res.Item)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitFailure
		}
		if err := json.NewEncoder(stdout).Encode(m); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitFailure
		}
		return exitOK
	}

	if err := itemfetch.WriteItem(stdout, res.Item); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}
	return exitOK
}

// parseProjection splits a comma-separated attribute list. An empty
// expression means no projection.
func parseProjection(expr string) []string {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	parts := strings.Split(expr, ",")
	attrs := make([]string, 0, len(parts))
	for _, part := range parts {
		attrs = append(attrs, strings.TrimSpace(part))
	}
	return attrs
}
