package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
)

var threadCmd = &cobra.Command{
	Use:   "thread",
	Short: "Browse cached assistant conversations",
}

var threadListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached conversation threads",
	RunE:  runThreadList,
}

var threadShowCmd = &cobra.Command{
	Use:   "show [thread-id]",
	Short: "Replay a cached conversation",
	Args:  cobra.ExactArgs(1),
	RunE:  runThreadShow,
}

func init() {
	threadCmd.AddCommand(threadListCmd)
	threadCmd.AddCommand(threadShowCmd)
	rootCmd.AddCommand(threadCmd)
}

func runThreadList(cmd *cobra.Command, _ []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	threads, err := assistantService.Threads(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing threads: %w", err)
	}
	if len(threads) == 0 {
		cmd.Println("No cached conversations. Ask something with 'lawadmin ask'.")
		return nil
	}

	for _, thread := range threads {
		cmd.Printf("%s  %s  %s\n",
			thread.ID, thread.UpdatedAt.Local().Format("2006-01-02 15:04"), thread.Title)
	}
	return nil
}

func runThreadShow(cmd *cobra.Command, args []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	thread, err := assistantService.Thread(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("loading thread: %w", err)
	}

	title := color.New(color.Bold)
	you := color.New(color.FgGreen, color.Bold)
	assistant := color.New(color.FgCyan, color.Bold)

	cmd.Println(title.Sprint(thread.Title))
	for _, msg := range thread.Messages {
		cmd.Println()
		if msg.Role == domain.RoleUser {
			cmd.Println(you.Sprint("You:"))
		} else {
			cmd.Println(assistant.Sprint("Assistant:"))
		}
		cmd.Println(msg.ContentMarkdown)
	}
	return nil
}
