package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rishi-212005/portfolio-server/internal/chat"
	"github.com/rishi-212005/portfolio-server/internal/config"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the portfolio assistant from the terminal",
	Long:  `Opens an interactive chat session using the configured engine. Type "exit" to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		engine, err := buildEngine(cfg)
		if err != nil {
			return err
		}
		conv := chat.NewConversation(engine)

		if verbose {
			fmt.Fprintf(os.Stderr, "using the %s engine\n", engine.Name())
		}
		fmt.Printf("assistant> %s\n", chat.Greeting)

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("you> ")
			if !scanner.Scan() {
				break
			}
			question := strings.TrimSpace(scanner.Text())
			if question == "exit" || question == "quit" {
				break
			}

			fmt.Print("assistant> ")
			_, err := conv.Send(cmd.Context(), question, func(chunk string) {
				fmt.Print(chunk)
			})
			if errors.Is(err, chat.ErrEmptyQuestion) {
				fmt.Println("(say something first)")
				continue
			}
			exitOnError(err)
			fmt.Println()
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
