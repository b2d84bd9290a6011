// Package main provides the CLI entrypoint for speedtype.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/KR1PT1CS/LP1SpeedType/internal/config"
	"github.com/KR1PT1CS/LP1SpeedType/internal/game"
	"github.com/KR1PT1CS/LP1SpeedType/internal/sentences"
	"github.com/KR1PT1CS/LP1SpeedType/internal/stats"
	"github.com/KR1PT1CS/LP1SpeedType/internal/tui"
)

const defaultColorMode = "auto"

var (
	playSentences string
	playColor     string

	listSentences string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "speedtype",
		Short:         "Terminal typing speed game",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playSentences, "sentences", "", "path to a custom sentence file (one sentence per line)")
	rootCmd.Flags().StringVar(&playColor, "color", defaultColorMode, "chart color mode: auto, always, never")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newSentencesCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "sentences", &playSentences, fileCfg.Play.Sentences)
	applyStringConfig(cmd, "color", &playColor, fileCfg.Play.Color)

	list, _, err := resolveSentences(playSentences)
	if err != nil {
		return err
	}
	useColor, err := resolveColor(playColor)
	if err != nil {
		return err
	}

	history := game.NewHistory()
	model := tui.NewModel(list, sentences.NewPicker(), history, useColor)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newSentencesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sentences",
		Short: "Show the resolved sentence source",
		Args:  cobra.NoArgs,
		RunE:  runSentencesCmd,
	}
	cmd.Flags().StringVar(&listSentences, "sentences", "", "path to a custom sentence file (one sentence per line)")
	return cmd
}

func runSentencesCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "sentences", &listSentences, fileCfg.Play.Sentences)

	list, source, err := resolveSentences(listSentences)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Source: %s\nSentences: %d\n", source, len(list)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// resolveSentences loads the sentence list in priority order: explicit path,
// the default XDG sentence file if present, then the built-in set.
func resolveSentences(path string) ([]string, string, error) {
	if path != "" {
		list, err := sentences.Load(path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load sentences from %s: %w", path, err)
		}
		return list, path, nil
	}
	defaultPath := config.DefaultSentencesPath()
	if _, err := os.Stat(defaultPath); err == nil {
		list, err := sentences.Load(defaultPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load sentences from %s: %w", defaultPath, err)
		}
		return list, defaultPath, nil
	}
	return sentences.Default(), "built-in", nil
}

func resolveColor(mode string) (bool, error) {
	switch mode {
	case "always":
		return stats.ShouldUseColor(os.Stdout, true), nil
	case "never":
		return false, nil
	case "auto":
		return stats.ShouldUseColor(os.Stdout, false), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (use auto, always, never)", mode)
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# speedtype configuration
# Uncomment a value to enable it. CLI flags override config values.

[play]
# sentences = ""          # Path to a custom sentence file (one per line)
# color = %q          # Chart color mode: auto, always, never
`,
		defaultColorMode,
	)
}
