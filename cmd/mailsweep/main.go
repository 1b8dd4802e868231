package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/mailsweep/mailsweep/internal/config"
	"github.com/mailsweep/mailsweep/internal/imapclient"
	"github.com/mailsweep/mailsweep/internal/retry"
	"github.com/mailsweep/mailsweep/internal/rules"
	"github.com/mailsweep/mailsweep/internal/sweep"
)

const defaultEnvFile = ".env"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "mailsweep",
		Usage: "classify mailbox messages by sender rules and optionally delete the matches",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a YAML config file",
			},
			&cli.StringFlag{
				Name:  "rules",
				Usage: "comma-separated rules (domain, host glob-mask, or full-address glob-mask)",
			},
			&cli.StringFlag{
				Name:  "folders",
				Usage: `folders to process: comma-separated or "*" for all selectable`,
			},
			&cli.StringFlag{
				Name:  "skip-folders",
				Usage: `folders to skip, e.g. "Sent Messages,Drafts,Trash"`,
			},
			&cli.BoolFlag{
				Name:  "list-folders",
				Usage: "list selectable IMAP folders and exit",
			},
			&cli.BoolFlag{
				Name:  "delete",
				Usage: "actually delete matched messages (otherwise dry-run)",
			},
			&cli.IntFlag{
				Name:  "batch",
				Usage: "batch size for envelope fetch and delete",
			},
			&cli.IntFlag{
				Name:  "retries",
				Usage: "attempts for calls hitting server lock/indexing contention",
			},
			&cli.Float64Flag{
				Name:  "retry-delay",
				Usage: "base delay in seconds between retries",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	if err := loadEnvFile(); err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	applyFlags(c, &cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	imapEnv, err := config.IMAPEnvFromEnv()
	if err != nil {
		return err
	}

	client := &imapclient.Client{
		Addr:     fmt.Sprintf("%s:%d", imapEnv.Host, imapEnv.Port),
		Username: imapEnv.User,
		Password: imapEnv.Pass,
	}
	if err := client.Connect(); err != nil {
		return err
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			logger.Warn("logout failed", slog.Any("error", cerr))
		}
	}()

	selectable, err := client.Mailboxes()
	if err != nil {
		return err
	}

	if c.Bool("list-folders") {
		fmt.Fprintln(c.App.Writer, "Selectable folders:")
		for _, name := range selectable {
			fmt.Fprintf(c.App.Writer, " - %s\n", name)
		}
		return nil
	}

	ruleSet := make([]rules.Rule, 0, len(cfg.Rules))
	for _, raw := range cfg.Rules {
		ruleSet = append(ruleSet, rules.New(raw))
	}

	mode := "DRY-RUN"
	if c.Bool("delete") {
		mode = "DELETE"
	}
	folders := sweep.ResolveFolders(selectable, cfg.Folders, cfg.SkipFolders)
	fmt.Fprintf(c.App.Writer, "Server: %s | Folders: %d | Mode: %s\n", client.Addr, len(folders), mode)
	fmt.Fprintln(c.App.Writer, "Rules:")
	for _, rule := range ruleSet {
		fmt.Fprintf(c.App.Writer, "  %s  (%s)\n", rule, rule.Kind())
	}
	fmt.Fprintln(c.App.Writer)

	runner, err := sweep.NewRunner(
		sweep.WithSession(client),
		sweep.WithLogger(logger),
		sweep.WithCtx(c.Context),
		sweep.WithRules(ruleSet),
		sweep.WithBatchSize(cfg.BatchSize),
		sweep.WithRetryConfig(retry.Config{
			MaxAttempts: cfg.RetryAttempts,
			BaseDelay:   time.Duration(cfg.RetryDelaySeconds * float64(time.Second)),
		}),
		sweep.WithDelete(c.Bool("delete")),
	)
	if err != nil {
		return err
	}

	stats, runErr := runner.Run(folders)
	printSummary(c.App.Writer, stats, c.Bool("delete"))
	return runErr
}

func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("rules") {
		cfg.Rules = splitList(c.String("rules"))
	}
	if c.IsSet("folders") {
		cfg.Folders = splitList(c.String("folders"))
	}
	if c.IsSet("skip-folders") {
		cfg.SkipFolders = splitList(c.String("skip-folders"))
	}
	if c.IsSet("batch") {
		cfg.BatchSize = c.Int("batch")
	}
	if c.IsSet("retries") {
		cfg.RetryAttempts = c.Int("retries")
	}
	if c.IsSet("retry-delay") {
		cfg.RetryDelaySeconds = c.Float64("retry-delay")
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func printSummary(w io.Writer, stats *sweep.RunStats, deleteMode bool) {
	if stats == nil {
		return
	}

	for _, mailbox := range stats.Mailboxes {
		box := stats.PerBox[mailbox]
		if box.Unique == 0 && box.MissingSender == 0 {
			continue
		}
		fmt.Fprintf(w, "Folder: %s\n", mailbox)
		for _, rule := range sortedRules(box.PerRule) {
			fmt.Fprintf(w, "  %-55s: %d\n", rule, box.PerRule[rule])
		}
		fmt.Fprintf(w, "  -> Unique matched in folder: %d\n", box.Unique)
		if box.MissingSender > 0 {
			fmt.Fprintf(w, "  (note: %d messages had no resolvable sender; skipped)\n", box.MissingSender)
		}
		if deleteMode {
			fmt.Fprintf(w, "  Deleted: %d\n", box.Deleted)
		} else {
			fmt.Fprintln(w, "  (dry-run: nothing deleted)")
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "=== SUMMARY ===")
	fmt.Fprintf(w, "Total unique matched (across processed folders): %d\n", stats.Unique)
	if deleteMode {
		fmt.Fprintf(w, "Total deleted: %d\n", stats.Deleted)
	}
	fmt.Fprintln(w, "Counts by rule (may overlap across folders):")
	for _, rule := range sortedRules(stats.PerRule) {
		fmt.Fprintf(w, "  %-55s: %d\n", rule, stats.PerRule[rule])
	}
}

func sortedRules(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for rule := range counts {
		keys = append(keys, rule)
	}
	sort.Strings(keys)
	return keys
}

func loadEnvFile() error {
	if _, err := os.Stat(defaultEnvFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(defaultEnvFile)
}
