package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/adapters/driven/config/file"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/ports/driving"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/render"
)

// Flags for ask and summarise.
var (
	askThreadID     string
	askPlain        bool
	askJSON         bool
	askNoTypewriter bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the research assistant a question",
	Long: `Ask the AI research assistant a legal question.

Replies are broken into sections (Overview, Key Points, Important Terms,
Sources) and revealed progressively. Use --thread to continue an earlier
conversation and --plain to print the full reply at once.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

var summariseCmd = &cobra.Command{
	Use:     "summarise [document-id]",
	Aliases: []string{"summarize"},
	Short:   "Summarise a document",
	Args:    cobra.ExactArgs(1),
	RunE:    runSummarise,
}

func init() {
	askCmd.Flags().StringVar(&askThreadID, "thread", "", "continue an existing thread")
	askCmd.Flags().BoolVar(&askPlain, "plain", false, "print the reply without the typewriter effect")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the raw reply as JSON")
	askCmd.Flags().BoolVar(&askNoTypewriter, "no-typewriter", false, "keep formatting but skip the reveal effect")
	summariseCmd.Flags().BoolVar(&askPlain, "plain", false, "print the reply without the typewriter effect")
	summariseCmd.Flags().BoolVar(&askJSON, "json", false, "output the raw reply as JSON")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(summariseCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	result, err := assistantService.Ask(cmd.Context(), askThreadID, args[0])
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		return outputAskJSON(cmd, result)
	}

	outputSections(cmd, result.Sections)
	if result.Message != nil {
		outputCitations(cmd, result.Message.Sources)
		if result.Message.ThreadID != "" {
			cmd.Printf("\nThread: %s (continue with --thread %s)\n",
				result.Message.ThreadID, result.Message.ThreadID)
		}
	}
	return nil
}

// outputCitations prints the structured citations the backend attaches
// alongside the markdown reply, when any were returned.
func outputCitations(cmd *cobra.Command, sources []domain.SourceRef) {
	if len(sources) == 0 {
		return
	}
	cmd.Println()
	cmd.Println(color.New(color.FgCyan, color.Bold).Sprint("CITATIONS"))
	for _, src := range sources {
		line := src.Title
		if src.Citation != "" {
			line += ", " + src.Citation
		}
		if src.LinkURL != "" {
			line += " <" + src.LinkURL + ">"
		}
		cmd.Printf("  • %s\n", line)
	}
}

func runSummarise(cmd *cobra.Command, args []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	result, err := assistantService.Summarise(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("summarise failed: %w", err)
	}

	if askJSON {
		return outputAskJSON(cmd, result)
	}

	outputSections(cmd, result.Sections)
	return nil
}

func outputAskJSON(cmd *cobra.Command, result *driving.AskResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling reply: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// outputSections prints the reply section by section. Interactive
// terminals get the typewriter reveal; pipes and --plain get the text
// in one write.
func outputSections(cmd *cobra.Command, sections []domain.Section) {
	heading := color.New(color.FgCyan, color.Bold)
	rule := strings.Repeat("─", terminalWidth())

	for i, section := range sections {
		if i > 0 {
			cmd.Println()
		}
		cmd.Println(heading.Sprint(section.Title))
		cmd.Println(rule)
		writeRevealed(cmd, section.Content)
		cmd.Println()
	}
}

// writeRevealed streams text through the typewriter, printing only the
// delta of each emitted prefix.
func writeRevealed(cmd *cobra.Command, text string) {
	enabled := !askPlain && !askNoTypewriter && term.IsTerminal(int(os.Stdout.Fd()))
	if enabled && configStore != nil {
		if v, ok := configStore.Get(file.KeyTypewriter); ok {
			if b, isBool := v.(bool); isBool {
				enabled = b
			}
		}
	}
	reveal := render.NewReveal(text, enabled, revealOptions()...)

	printed := 0
	for prefix := range reveal.C {
		if len(prefix) > printed {
			cmd.Print(prefix[printed:])
			printed = len(prefix)
		}
	}
}

// revealOptions maps configured cadence overrides onto the typewriter.
func revealOptions() []render.RevealOption {
	var opts []render.RevealOption
	if configStore == nil {
		return opts
	}
	if ms := configStore.GetInt(file.KeyRevealInterval); ms > 0 {
		opts = append(opts, render.WithInterval(time.Duration(ms)*time.Millisecond))
	}
	if n := configStore.GetInt(file.KeyRevealChunkSize); n > 0 {
		opts = append(opts, render.WithChunkSize(n))
	}
	return opts
}

// terminalWidth returns the terminal width, capped for readability.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}
	if width > 100 {
		width = 100
	}
	return width
}
