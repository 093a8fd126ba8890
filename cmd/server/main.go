// glaive-server hosts the game over SSH: every connection gets its own
// single-player session rendered through the client's terminal.
//
//	go build -o glaive-server ./cmd/server
//	./glaive-server [--config glaive.toml]
//
// Connect with:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/terminfo"
	_ "github.com/gdamore/tcell/v2/terminfo/extended"
	gossh "github.com/gliderlabs/ssh"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	xssh "golang.org/x/crypto/ssh"

	"glaive/internal/config"
	"glaive/internal/game"
	"glaive/internal/sshtty"
)

// allowedTerms lists TERM values we trust to name a real terminfo entry.
// Anything else falls back to xterm-256color rather than reaching into the
// terminfo database with client-controlled input.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"rxvt-unicode-256color": true,
	"linux":                 true,
	"vt100":                 true,
}

func main() {
	configPath := flag.String("config", "glaive.toml", "Path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	signer, err := loadOrCreateHostKey(cfg.Server.HostKeyPath, logger)
	if err != nil {
		logger.Fatal("host key", zap.Error(err))
	}

	srv := &gossh.Server{
		Addr: cfg.Server.BindAddress,
		Handler: func(s gossh.Session) {
			handleSession(s, cfg, logger)
		},
		// Accept PTY requests from any client; no auth, a toy dungeon is
		// not a secret worth a password.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("listening", zap.String("addr", cfg.Server.BindAddress))
	logger.Fatal("server stopped", zap.Error(srv.ListenAndServe()))
}

// handleSession runs one complete game for one SSH connection. It blocks
// until the player quits so the SSH channel stays open.
func handleSession(s gossh.Session, cfg *config.Config, logger *zap.Logger) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t <host>")
		return
	}

	term := "xterm-256color"
	for _, env := range s.Environ() {
		if v, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[v] {
			term = v
			break
		}
	}

	logger = logger.With(
		zap.String("user", s.User()),
		zap.String("remote", s.RemoteAddr().String()))
	logger.Info("session opened", zap.String("term", term))

	// Resolve terminfo explicitly instead of through $TERM: sessions run
	// concurrently, so mutating the process environment would race.
	ti, err := terminfo.LookupTerminfo(term)
	if err != nil {
		ti, err = terminfo.LookupTerminfo("xterm-256color")
		if err != nil {
			fmt.Fprintln(s, "No usable terminfo entry.")
			return
		}
	}

	tty := sshtty.New(s, pty, winCh)
	screen, err := tcell.NewTerminfoScreenFromTtyTerminfo(tty, ti)
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		logger.Warn("terminal setup failed", zap.Error(err))
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	g, err := game.NewWithScreen(screen, cfg, logger)
	if err != nil {
		logger.Warn("game setup failed", zap.Error(err))
		return
	}
	g.Run()
	logger.Info("session closed")
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
	}
	return zapCfg.Build()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key when the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *zap.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", zap.String("path", path))
			return signer, nil
		}
	}

	logger.Info("generating host key", zap.String("path", path))
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run; non-fatal if it fails.
	if pemBlock, err := xssh.MarshalPrivateKey(key, "glaive server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
	}
	return signer, nil
}
