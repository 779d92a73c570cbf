package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studybuddy/studybuddy/internal/api"
	"github.com/studybuddy/studybuddy/internal/config"
	"github.com/studybuddy/studybuddy/internal/screens"
	"github.com/studybuddy/studybuddy/internal/session"
)

// cli is the state shared by the commands of one invocation
type cli struct {
	apiBase   string
	sessionDB string
	envFile   string
	verbose   bool

	opts    config.Options
	client  api.Client
	store   *session.SQLiteStore
	session *session.Context
	in      *bufio.Reader

	root *cobra.Command
}

func newCLI() *cli {
	c := &cli{}

	root := &cobra.Command{
		Use:           "studybuddy",
		Short:         "Study assistant for your courses",
		Long:          "StudyBuddy turns course material into summaries, flashcards and quizzes.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&c.apiBase, "api", "", "backend URL (overrides "+config.EnvAPIBase+")")
	root.PersistentFlags().StringVar(&c.sessionDB, "session-db", "", "session database path")
	root.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "environment file to load")
	root.PersistentFlags().BoolVar(&c.verbose, "verbose", false, "log requests and state changes")

	root.AddCommand(
		c.loginCmd(),
		c.signupCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.coursesCmd(),
		c.courseCmd(),
		c.summaryCmd(),
		c.flashcardsCmd(),
		c.quizCmd(),
		c.chatCmd(),
		c.communityCmd(),
	)
	c.root = root
	return c
}

// execute runs the command line and releases the session store, also when
// the command failed
func (c *cli) execute(ctx context.Context) error {
	defer func() {
		if err := c.close(); err != nil {
			log.Printf("Warning: failed to close session store: %v", err)
		}
	}()
	return c.root.ExecuteContext(ctx)
}

func (c *cli) setup(cmd *cobra.Command) error {
	if !c.verbose {
		log.SetOutput(io.Discard)
	}
	if err := config.LoadEnv(c.envFile); err != nil {
		return fmt.Errorf("failed to load %s: %w", c.envFile, err)
	}

	c.opts = config.DefaultOptions().WithEnv()
	if c.apiBase != "" {
		c.opts.APIBaseURL = strings.TrimRight(c.apiBase, "/")
	}
	c.client = c.opts.NewClient()

	path := c.sessionDB
	if path == "" {
		var err error
		if path, err = session.DefaultSQLitePath(); err != nil {
			return err
		}
	}
	store, err := session.OpenSQLiteStore(path)
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	c.store = store
	c.session = session.NewContext(store)
	c.in = bufio.NewReader(cmd.InOrStdin())
	return nil
}

func (c *cli) close() error {
	if c.store == nil {
		return nil
	}
	err := c.store.Close()
	c.store = nil
	return err
}

// userID returns the signed-in user or an error telling how to sign in
func (c *cli) userID() (string, error) {
	id, err := c.session.UserID()
	if err != nil {
		return "", errors.New("not signed in, run `studybuddy login` first")
	}
	return id, nil
}

// prompt prints label and reads one trimmed line. io.EOF is returned once
// input is exhausted.
func (c *cli) prompt(out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// userError turns a screen error into the message shown on that screen
func userError(err error) error {
	if err == nil {
		return nil
	}
	return errors.New(screens.Message(err))
}

func parseID(arg, what string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", what, arg)
	}
	return id, nil
}
