package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rorical/GitLingo/internal/clipboard"
	"github.com/Rorical/GitLingo/internal/core"
	"github.com/Rorical/GitLingo/internal/translator"
)

var (
	copyFlag bool
	jsonFlag bool
)

var errEmptyQuery = errors.New("query must not be empty")

var translateCmd = &cobra.Command{
	Use:          "translate [words...]",
	Short:        "Translate a single request and print the suggested command",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client := translator.NewClient(cfg.GetEndpoint(), translator.WithTimeout(cfg.GetTimeout()))
		service := core.NewTranslationService(client, clipboard.NewSystem(), nil, stderrLogger(cfg))
		defer service.Stop()

		return runTranslate(cmd.OutOrStdout(), service, strings.Join(args, " "), copyFlag, jsonFlag)
	},
}

func init() {
	translateCmd.Flags().BoolVarP(&copyFlag, "copy", "c", false, "copy the suggested command to the clipboard")
	translateCmd.Flags().BoolVar(&jsonFlag, "json", false, "print the result as JSON")

	rootCmd.AddCommand(translateCmd)
}

func runTranslate(out io.Writer, service *core.TranslationService, query string, copyResult, asJSON bool) error {
	if !service.Submit(query) {
		return errEmptyQuery
	}

	snap := service.Snapshot()
	if snap.Error != nil {
		return snap.Error
	}
	if snap.Result == nil {
		return errors.New("no result received")
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap.Result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	} else {
		fmt.Fprintf(out, "Suggested Command: %s\n", snap.Result.Command)
		if snap.Result.Description != "" {
			fmt.Fprintf(out, "%s\n", snap.Result.Description)
		}
	}

	if copyResult {
		// Clipboard failures are logged by the service and otherwise ignored
		if copied, _ := service.CopyCommand(); copied && !asJSON {
			fmt.Fprintln(out, core.CopiedMessage)
		}
	}

	return nil
}
