package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"
	yaml "gopkg.in/yaml.v3"

	"github.com/moriyoshi/emailaddr"
	"github.com/moriyoshi/emailaddr/internal/logging"
)

type CLI struct {
	Addresses       []string   `arg:"" optional:"" name:"addresses" help:"Email addresses to validate."`
	Input           string     `name:"input" short:"i" help:"File with one address per line ('-' for stdin); blank lines and '#' comments are skipped." env:"EMAILADDR_INPUT" optional:""`
	MinSubDomains   int        `name:"min-sub-domains" help:"Minimum number of sub-domains required in the domain." env:"EMAILADDR_MIN_SUB_DOMAINS" default:"0"`
	NoDomainLiteral bool       `name:"no-domain-literal" help:"Reject bracketed domain literals." env:"EMAILADDR_NO_DOMAIN_LITERAL" default:"false"`
	NoDisplayName   bool       `name:"no-display-name" help:"Reject 'Name <addr>' forms." env:"EMAILADDR_NO_DISPLAY_NAME" default:"false"`
	Format          string     `name:"format" short:"f" help:"Output format." env:"EMAILADDR_FORMAT" default:"text" enum:"text,json,yaml"`
	Jobs            int        `name:"jobs" short:"j" help:"Number of parallel validation workers." env:"EMAILADDR_JOBS" default:"4"`
	Quiet           bool       `name:"quiet" short:"q" help:"Suppress log output."`
	LogLevel        slog.Level `name:"log-level" help:"Log level." env:"EMAILADDR_LOG_LEVEL" default:"INFO" enum:"DEBUG,INFO,WARN,ERROR"`
}

// Result is one line of the validation report.
type Result struct {
	Address     string `json:"address" yaml:"address"`
	Valid       bool   `json:"valid" yaml:"valid"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
	LocalPart   string `json:"local_part,omitempty" yaml:"local_part,omitempty"`
	Domain      string `json:"domain,omitempty" yaml:"domain,omitempty"`
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	URI         string `json:"uri,omitempty" yaml:"uri,omitempty"`
}

func (CLI *CLI) initLogger(*kong.Context) *slog.Logger {
	if CLI.Quiet {
		return slog.New(logging.DiscardHandler{})
	}
	var handler slog.Handler
	if isatty.IsTerminal(os.Stdout.Fd()) {
		handler = tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{Level: CLI.LogLevel})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: CLI.LogLevel})
	}
	return slog.New(handler)
}

func (CLI *CLI) options() emailaddr.Options {
	opts := emailaddr.DefaultOptions().WithMinimumSubDomains(CLI.MinSubDomains)
	if CLI.NoDomainLiteral {
		opts = opts.WithoutDomainLiteral()
	}
	if CLI.NoDisplayName {
		opts = opts.WithoutDisplayText()
	}
	return opts
}

func (CLI *CLI) collectAddresses() ([]string, error) {
	addresses := make([]string, 0, len(CLI.Addresses))
	addresses = append(addresses, CLI.Addresses...)
	if CLI.Input != "" {
		var r io.Reader
		if CLI.Input == "-" {
			r = os.Stdin
		} else {
			f, err := os.Open(CLI.Input)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			r = f
		}
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			addresses = append(addresses, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}
	return addresses, nil
}

// validate runs the batch on a bounded worker pool. Results are written
// by index so the report keeps the input order.
func validate(addresses []string, opts emailaddr.Options, jobs int) []Result {
	results := make([]Result, len(addresses))
	var eg errgroup.Group
	eg.SetLimit(jobs)
	for i, address := range addresses {
		i, address := i, address
		eg.Go(func() error {
			a, err := emailaddr.ParseWithOptions(address, opts)
			if err != nil {
				results[i] = Result{Address: address, Error: err.Error()}
				return nil
			}
			results[i] = Result{
				Address:     address,
				Valid:       true,
				LocalPart:   a.LocalPart(),
				Domain:      a.Domain(),
				DisplayName: a.DisplayPart(),
				URI:         a.URI(),
			}
			return nil
		})
	}
	_ = eg.Wait()
	return results
}

func writeReport(w io.Writer, results []Result, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(results)
	default:
		for _, r := range results {
			if r.Valid {
				fmt.Fprintf(w, "ok\t%s\n", r.Address)
			} else {
				fmt.Fprintf(w, "invalid\t%s\t%s\n", r.Address, r.Error)
			}
		}
		return nil
	}
}

func main() {
	var CLI CLI
	kongCtx := kong.Parse(&CLI)
	logger := CLI.initLogger(kongCtx)

	addresses, err := CLI.collectAddresses()
	if err != nil {
		kongCtx.FatalIfErrorf(err)
	}
	if len(addresses) == 0 {
		kongCtx.Printf("no addresses given")
		kongCtx.Exit(1)
	}
	jobs := CLI.Jobs
	if jobs < 1 {
		jobs = 1
	}
	logger.Debug("validating batch",
		slog.Int("addresses", len(addresses)),
		slog.Int("jobs", jobs),
		slog.Int("min_sub_domains", CLI.MinSubDomains))

	results := validate(addresses, CLI.options(), jobs)
	err = writeReport(os.Stdout, results, CLI.Format)
	if err != nil {
		kongCtx.FatalIfErrorf(err)
	}

	invalid := 0
	for _, r := range results {
		if !r.Valid {
			invalid++
		}
	}
	if invalid > 0 {
		logger.Warn("batch contains invalid addresses",
			slog.Int("invalid", invalid), slog.Int("total", len(results)))
		kongCtx.Exit(1)
	}
}
