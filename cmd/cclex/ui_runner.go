package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"cclex/internal/progress"
	"cclex/internal/ui"
)

// uiMode is the --ui flag: auto draws the TUI only when stderr is a terminal.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	m := uiMode(strings.ToLower(strings.TrimSpace(value)))
	switch m {
	case "":
		return uiModeAuto, nil
	case uiModeAuto, uiModeOn, uiModeOff:
		return m, nil
	}
	return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

// shouldUseTUI: прогресс бывает только у каталога с файлами и без --quiet;
// рисуется он в stderr, поэтому auto смотрит на stderr.
func shouldUseTUI(mode uiMode, files int, quiet bool) bool {
	if quiet || files == 0 || mode == uiModeOff {
		return false
	}
	return mode == uiModeOn || isTerminal(os.Stderr)
}

// runWithUI запускает run в фоне и рисует его прогресс в stderr.
func runWithUI(ctx context.Context, title string, files []string, run func(context.Context, progress.Sink) error) error {
	events := make(chan progress.Event, 256)
	errCh := make(chan error, 1)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		err := run(ctx, progress.ChannelSink{Ch: events})
		close(events)
		errCh <- err
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()

	// UI мог выйти раньше (ctrl+c): останавливаем работу и дочитываем канал
	cancel()
	go func() {
		for range events {
		}
	}()
	runErr := <-errCh
	if uiErr != nil {
		return uiErr
	}
	return runErr
}
