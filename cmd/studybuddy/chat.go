package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studybuddy/studybuddy/internal/model"
	"github.com/studybuddy/studybuddy/internal/screens"
)

func (c *cli) chatCmd() *cobra.Command {
	var pdf string

	cmd := &cobra.Command{
		Use:   "chat [question]",
		Short: "Ask the study chatbot, or start a conversation without a question",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			chat := screens.NewChat(c.client)

			if pdf != "" {
				f, err := os.Open(pdf)
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", pdf, err)
				}
				err = chat.UploadPDF(ctx, filepath.Base(pdf), f)
				f.Close()
				fmt.Fprintln(out, chat.UploadStatus())
				if err != nil {
					return userError(err)
				}
			}

			if len(args) > 0 {
				return ask(ctx, out, chat, strings.Join(args, " "))
			}
			if pdf != "" {
				return nil
			}

			fmt.Fprintln(out, "💬 Ask anything. An empty line or Ctrl+D ends the chat.")
			for {
				line, err := c.prompt(out, "> ")
				if err != nil || line == "" {
					return nil
				}
				if err := ask(ctx, out, chat, line); err != nil {
					return err
				}
			}
		},
	}

	cmd.Flags().StringVar(&pdf, "pdf", "", "upload a PDF for the chatbot to read first")
	return cmd
}

// ask sends one question and prints the reply. A failed request still
// prints the error reply the chat appended.
func ask(ctx context.Context, out io.Writer, chat *screens.Chat, question string) error {
	if err := chat.Ask(ctx, question); errors.Is(err, screens.ErrBusy) {
		return userError(err)
	}
	messages := chat.Messages()
	if n := len(messages); n > 0 && messages[n-1].Role == model.ChatRoleBot {
		fmt.Fprintf(out, "🤖 %s\n", messages[n-1].Text)
	}
	return nil
}
