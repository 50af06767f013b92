// Package session drives a PrefixMap from line-oriented commands.
//
// Each line holds one command:
//
//	insert <key> <id>
//	search <key>
//	delete <key>
//	len
//	nodes
//
// A key written as "" stands for the empty key. Blank lines and lines starting
// with '#' are skipped. Every command writes exactly one result line.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/shawn28e7/trie/internal/trie"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong number of arguments")
	ErrInvalidID      = errors.New("invalid id")
)

// Absent is printed by search when no id is stored under the key.
const Absent = "absent"

// Command is one session verb.
type Command struct {
	Name        string
	Args        []string
	Description string
	Run         func(s *Session, args []string) (string, error)
}

// Usage returns the command with its argument placeholders.
func (c Command) Usage() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Commands lists the verbs a session understands.
var Commands = []Command{
	{
		Name:        "insert",
		Args:        []string{"<key>", "<id>"},
		Description: "Store id under key, replacing any previous id",
		Run:         runInsert,
	},
	{
		Name:        "search",
		Args:        []string{"<key>"},
		Description: "Print the id stored under key",
		Run:         runSearch,
	},
	{
		Name:        "delete",
		Args:        []string{"<key>"},
		Description: "Remove key and print whether it was present",
		Run:         runDelete,
	},
	{
		Name:        "len",
		Description: "Print the number of stored keys",
		Run:         runLen,
	},
	{
		Name:        "nodes",
		Description: "Print the number of linked nodes",
		Run:         runNodes,
	},
}

// Session executes commands against a PrefixMap and writes results to out.
type Session struct {
	m   trie.PrefixMap
	out io.Writer
	log zerolog.Logger
}

// New creates a session over m.
func New(m trie.PrefixMap, out io.Writer, logger zerolog.Logger) *Session {
	return &Session{m: m, out: out, log: logger}
}

// Run executes every line read from r and stops at the first failing line.
func (s *Session) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := s.Exec(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read session input: %w", err)
	}
	return nil
}

// Exec executes a single line.
func (s *Session) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	var cmd *Command
	for i := range Commands {
		if Commands[i].Name == fields[0] {
			cmd = &Commands[i]
			break
		}
	}
	if cmd == nil {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}

	args := fields[1:]
	if len(args) != len(cmd.Args) {
		return fmt.Errorf("%w: usage: %s", ErrUsage, cmd.Usage())
	}

	result, err := cmd.Run(s, args)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	s.log.Debug().Str("command", cmd.Name).Strs("args", args).Str("result", result).Msg("executed")

	if _, err := fmt.Fprintln(s.out, result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

func runInsert(s *Session, args []string) (string, error) {
	key, err := parseKey(args[0])
	if err != nil {
		return "", err
	}
	id, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, args[1])
	}
	s.m.Insert(key, int32(id))
	return "ok", nil
}

func runSearch(s *Session, args []string) (string, error) {
	key, err := parseKey(args[0])
	if err != nil {
		return "", err
	}
	id, ok := s.m.Search(key)
	if !ok {
		return Absent, nil
	}
	return strconv.Itoa(int(id)), nil
}

func runDelete(s *Session, args []string) (string, error) {
	key, err := parseKey(args[0])
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(s.m.Delete(key)), nil
}

func parseKey(arg string) (string, error) {
	if arg == `""` {
		return "", nil
	}
	if err := trie.ValidateKey(arg); err != nil {
		return "", err
	}
	return arg, nil
}

func runLen(s *Session, _ []string) (string, error) {
	return strconv.Itoa(s.m.Len()), nil
}

func runNodes(s *Session, _ []string) (string, error) {
	return strconv.Itoa(s.m.NodeCount()), nil
}
