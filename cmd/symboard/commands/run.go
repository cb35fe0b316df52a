package commands

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/symboard/internal/nav"
	"github.com/jask/symboard/internal/speech"
	"github.com/jask/symboard/internal/tui"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the home board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd.Context())
		},
	}
}

func runBoard(ctx context.Context) error {
	// the alt screen owns stdout, so diagnostics go to --log or nowhere
	logger := log.New(io.Discard, "", 0)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger = log.New(f, "symboard ", log.LstdFlags)
	}

	boards, release, err := openCatalog(ctx)
	if err != nil {
		return err
	}
	defer release()

	var speaker nav.Dispatcher = speech.Silent{Logger: logger}
	if cfg.Speech.Enabled {
		engine, err := speech.NewCommandEngine(cfg.Speech.Command, cfg.Speech.Language, cfg.Speech.Rate)
		if err != nil {
			return fmt.Errorf("speech: %w", err)
		}
		d := speech.NewDispatcher(engine, logger)
		defer d.Close()
		speaker = d
	}

	ctrl := nav.New(boards, speaker, cfg.Board.Home, nav.WithLogger(logger))
	app := tui.New(ctx, ctrl, tui.Options{LabelWidth: cfg.UI.LabelWidth, Logger: logger})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
