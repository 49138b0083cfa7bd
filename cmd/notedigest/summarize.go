package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/note-digest/internal/export"
	"github.com/nguyentantai21042004/note-digest/internal/logger"
	"github.com/nguyentantai21042004/note-digest/internal/models"
)

func newSummarizeCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var docxPath string

	cmd := &cobra.Command{
		Use:   "summarize <audio-file>",
		Short: "Transcribe and summarize one local audio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			runCtx := cmd.Context()
			if runCtx == nil {
				runCtx = context.Background()
			}
			level := cfg.Logging.Level
			if jsonOutput {
				level = "error"
			}
			log := logger.NewWithWriter(level, cmd.ErrOrStderr())

			svc, err := buildServices(runCtx, cfg, log)
			if err != nil {
				return err
			}

			staged, err := svc.intake.StageFile(runCtx, args[0])
			if err != nil {
				return err
			}
			defer staged.Release(runCtx)

			result, err := svc.pipeline.Process(runCtx, staged.Payload())
			if err != nil {
				return err
			}

			if docxPath != "" {
				report := export.Report{
					Title:       strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0])),
					Source:      filepath.Base(args[0]),
					GeneratedAt: time.Now(),
					Result:      result,
				}
				if err := export.WriteDocx(report, docxPath); err != nil {
					return fmt.Errorf("write docx: %w", err)
				}
				log.Info(runCtx, "Report written to %s", docxPath)
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderResult(result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the API response body as JSON")
	cmd.Flags().StringVar(&docxPath, "docx", "", "Also write a .docx report to this path")

	return cmd
}

// renderResult prints the summary tables followed by the transcript.
func renderResult(result models.Result) string {
	var b strings.Builder

	summary := result.Summary.Normalized()
	b.WriteString(renderTable([]string{"#", "Key point"}, numbered(summary.KeyPoints), []columnAlignment{alignRight, alignLeft}))
	b.WriteString("\n")
	if len(summary.ActionItems) > 0 {
		b.WriteString(renderTable([]string{"#", "Action item"}, numbered(summary.ActionItems), []columnAlignment{alignRight, alignLeft}))
		b.WriteString("\n")
	} else {
		b.WriteString("No action items.\n")
	}
	if result.Degraded {
		b.WriteString("Note: the model reply was not valid JSON; it is shown verbatim as the only key point.\n")
	}

	b.WriteString("\nTranscript:\n")
	b.WriteString(result.Transcript)
	b.WriteString("\n")
	return b.String()
}

func numbered(items []string) [][]string {
	rows := make([][]string, 0, len(items))
	for i, item := range items {
		rows = append(rows, []string{strconv.Itoa(i + 1), item})
	}
	return rows
}
