// Command prefixmap exercises the trie package from the command line.
// It demonstrates insert, search and delete against either PrefixMap
// implementation and can replay session scripts.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/shawn28e7/trie/internal/config"
	"github.com/shawn28e7/trie/internal/logging"
	"github.com/shawn28e7/trie/internal/session"
	"github.com/shawn28e7/trie/internal/trie"
)

const version = "0.1.0"

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "prefixmap: recovered from panic: %v\n", r)
			os.Exit(1)
		}
	}()

	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "prefixmap: %v\n", err)
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "prefixmap",
		Usage:     "insert, search and delete keys in a letter trie",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "config",
				Aliases:   []string{"c"},
				Usage:     "path to a config file (yaml, json or toml)",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:  "variant",
				Usage: "trie implementation: arena or tree",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "trace, debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "console or json",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "insert one key, look it up, delete it and look it up again",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return runDemo(cmd, stdout, stderr)
				},
			},
			{
				Name:      "exec",
				Usage:     "run a session script from a file, or stdin when no file is given",
				ArgsUsage: "[script]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return runExec(cmd, stdin, stdout, stderr)
				},
			},
		},
	}
}

// setup loads configuration, applies flag overrides and builds the logger and map.
func setup(cmd *cli.Command, stderr io.Writer) (trie.PrefixMap, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(cmd.String("config"))
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	if cmd.IsSet("variant") {
		cfg.Trie.Variant = cmd.String("variant")
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.Log.Format = cmd.String("log-format")
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), err
	}

	logger, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	kind, err := cfg.Trie.Kind()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	m, err := trie.New(kind, cfg.Trie.Options(logger)...)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	logger.Debug().Str("variant", string(kind)).Int("capacity", cfg.Trie.Capacity).Msg("created prefix map")
	return m, logger, nil
}

func runDemo(cmd *cli.Command, stdout, stderr io.Writer) error {
	m, logger, err := setup(cmd, stderr)
	if err != nil {
		return err
	}

	const key = "example"
	m.Insert(key, 42)
	fmt.Fprintf(stdout, "ID of '%s': %s\n", key, formatID(m.Search(key)))

	deleted := m.Delete(key)
	logger.Info().Str("key", key).Bool("deleted", deleted).Msg("deleted key")
	fmt.Fprintf(stdout, "ID of '%s' after deletion: %s\n", key, formatID(m.Search(key)))
	return nil
}

func runExec(cmd *cli.Command, stdin io.Reader, stdout, stderr io.Writer) error {
	m, logger, err := setup(cmd, stderr)
	if err != nil {
		return err
	}

	in := stdin
	if path := cmd.Args().First(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	if err := session.New(m, stdout, logger).Run(in); err != nil {
		return err
	}
	logger.Info().Int("keys", m.Len()).Int("nodes", m.NodeCount()).Msg("session finished")
	return nil
}

func formatID(id int32, ok bool) string {
	if !ok {
		return session.Absent
	}
	return strconv.Itoa(int(id))
}
