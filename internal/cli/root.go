// Package cli implements the mynotes entry command.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aiptu/mynotes/internal/config"
	"github.com/aiptu/mynotes/internal/flow"
	"github.com/aiptu/mynotes/internal/share"
	"github.com/aiptu/mynotes/internal/store"
	"github.com/aiptu/mynotes/internal/termui"
	"github.com/aiptu/mynotes/internal/textres"
)

var (
	configPath string
	playerName string
)

// RootCmd is the entry command: it opens the main menu for the player at
// this terminal.
var RootCmd = &cobra.Command{
	Use:   "mynotes",
	Short: "Personal notes with sharing",
	Long:  "Create, view, edit, delete and share short notes through a sequence of menu screens. SQLite-backed, single binary.",
	Args:  cobra.NoArgs,
	Run:   runOpen,
}

func init() {
	RootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config path (default: $MYNOTES_CONFIG or ~/.mynotes/config.yml)")
	RootCmd.Flags().StringVarP(&playerName, "player", "p", "", "Player name (default: $MYNOTES_PLAYER or $USER)")
}

func getConfigPath() string {
	if configPath != "" {
		return configPath
	}
	if env := os.Getenv("MYNOTES_CONFIG"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".mynotes", "config.yml")
}

func getPlayerName() string {
	if playerName != "" {
		return playerName
	}
	if env := os.Getenv("MYNOTES_PLAYER"); env != "" {
		return env
	}
	return os.Getenv("USER")
}

// loadDotEnv loads .env files without overwriting already-set variables, so
// OS env vars win and .env.local wins over .env.
func loadDotEnv() {
	candidates := []string{".env.local", ".env"}
	var found []string
	for _, f := range candidates {
		if _, err := os.Stat(f); err == nil {
			found = append(found, f)
		}
	}
	if len(found) > 0 {
		_ = godotenv.Load(found...)
	}
}

func newLogger() zerolog.Logger {
	var w io.Writer = os.Stderr
	if isTerminal(os.Stderr) {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).With().Timestamp().Str("service", "mynotes").Logger()
}

func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

func runOpen(cmd *cobra.Command, args []string) {
	loadDotEnv()
	log := newLogger()

	cfg, err := config.Load(getConfigPath())
	if err != nil {
		exitErr("load config", err)
	}
	res, err := cfg.Resources()
	if err != nil {
		exitErr("load config", err)
	}

	// The menu is interactive only; anything else gets the in-game-only
	// message and a failure result.
	if !isTerminal(os.Stdin) {
		fmt.Fprintln(os.Stderr, res.Message(textres.MessageCommandOnlyIngame))
		os.Exit(1)
	}

	player := getPlayerName()
	if player == "" {
		exitErr("resolve player", fmt.Errorf("no player name (set --player or MYNOTES_PLAYER)"))
	}

	s, err := store.NewSQLiteStore(cfg.Database.Path, log)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	ctx := cmd.Context()
	if err := s.Touch(ctx, player, ulid.Make().String()); err != nil {
		log.Warn().Err(err).Msg("register session failed")
	}

	// Deliver notifications queued while the player was away.
	pending, err := s.Drain(ctx, player)
	if err != nil {
		log.Warn().Err(err).Msg("drain inbox failed")
	}
	for _, body := range pending {
		fmt.Printf("* %s\n", body)
	}

	post := termui.NewPost(player, os.Stdout, s)
	ctrl := flow.New(flow.Config{
		Store:     s,
		Resources: res,
		Renderer:  termui.New(os.Stdin, os.Stdout),
		Directory: store.NewDirectory(s, store.DefaultLiveness),
		Messenger: post,
		Sharer:    share.New(s, res, post, log),
		Log:       log,
	})

	if err := ctrl.Run(ctx, player); err != nil {
		exitErr("menu", err)
	}
}
