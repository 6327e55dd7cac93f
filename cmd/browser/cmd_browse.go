package main

import (
	"fmt"
	"os"

	"book-catalog/cmd/browser/ui"
	"book-catalog/pkg/logger"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var themeFlag string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive catalog browser",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&themeFlag, "theme", "", "day or night (default: follow the terminal)")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "day or night (default: follow the terminal)")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	c, err := loadContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer c.Cleanup()

	theme := ui.PreferredTheme()
	switch ui.ThemeName(themeFlag) {
	case ui.ThemeDay, ui.ThemeNight:
		theme = ui.ThemeName(themeFlag)
	case "":
	default:
		return fmt.Errorf("unknown theme %q (want day or night)", themeFlag)
	}

	// the alt screen owns the terminal from here on
	if path := c.Config.App.LogFile; path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger.Init(c.Config.App.Environment, f)
	} else {
		logger.Disable()
	}

	program := tea.NewProgram(
		ui.NewModel(c.BookService.NewSession(), theme),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browser: %w", err)
	}
	return nil
}
