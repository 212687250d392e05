package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"foldersort/internal/auditlog"
	"foldersort/internal/config"
	"foldersort/internal/faults"
	"foldersort/internal/logging"
	"foldersort/internal/organizer"
)

const dryRunHint = "Dry run - no files were actually moved. To apply changes run without --dry-run"

type organizeFlags struct {
	path      string
	recursive bool
	dryRun    bool
	csvLog    string
	humanLog  string
	mapFile   string
	json      bool
	details   bool
}

// organizeReport is the --json document.
type organizeReport struct {
	RunID    string                  `json:"run_id"`
	Folder   string                  `json:"folder"`
	DryRun   bool                    `json:"dry_run"`
	Outcomes []organizer.MoveOutcome `json:"outcomes"`
	Summary  organizer.RunSummary    `json:"summary"`
}

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var flags organizeFlags

	cmd := &cobra.Command{
		Use:   "organize [folder]",
		Short: "Move files into category subfolders",
		Long: "Scan a folder and move each file into a subfolder named after its category.\n" +
			"Every examined file is appended to the CSV audit log, including dry runs.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return runOrganize(cmd, cfg, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.path, "path", "p", "", "Folder to organize (alternative to the positional argument)")
	cmd.Flags().BoolVarP(&flags.recursive, "recursive", "r", false, "Include files in subdirectories")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show planned moves without changing any file")
	cmd.Flags().StringVar(&flags.csvLog, "log", config.DefaultCSVLog, "CSV audit log path")
	cmd.Flags().StringVar(&flags.humanLog, "log-human", "", "Optional human-readable log path")
	cmd.Flags().StringVar(&flags.mapFile, "map", "", "Extension override file (extension,category per line)")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Output the run as JSON")
	cmd.Flags().BoolVar(&flags.details, "details", false, "List every outcome after the summary")
	return cmd
}

func runOrganize(cmd *cobra.Command, cfg *config.Config, args []string, flags organizeFlags) error {
	folder, err := resolveFolderArg(args, flags.path)
	if err != nil {
		return err
	}

	recursive := cfg.Organize.Recursive
	if cmd.Flags().Changed("recursive") {
		recursive = flags.recursive
	}
	dryRun := cfg.Organize.DryRun
	if cmd.Flags().Changed("dry-run") {
		dryRun = flags.dryRun
	}
	csvLog := cfg.Audit.CSVLog
	if cmd.Flags().Changed("log") {
		if csvLog, err = absPath(flags.csvLog); err != nil {
			return err
		}
	}
	humanLog := cfg.Audit.HumanLog
	if cmd.Flags().Changed("log-human") {
		if humanLog, err = absPath(flags.humanLog); err != nil {
			return err
		}
	}

	mapping, err := buildMapping(cfg, flags.mapFile)
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return faults.Wrap(faults.ErrConfiguration, "cli", "create logger", "", err)
	}

	runID := uuid.NewString()
	runCtx := logging.WithRunID(cmd.Context(), runID)

	exclude := append([]string{}, cfg.Organize.Exclude...)
	for _, p := range []string{csvLog, humanLog, cfg.Logging.File} {
		if strings.TrimSpace(p) != "" {
			exclude = append(exclude, p, p+".lock")
		}
	}

	out := cmd.OutOrStdout()
	if !flags.json {
		fmt.Fprintf(out, "Scanning: %s\n", folder)
		fmt.Fprintf(out, "Recursive: %s  Dry-run: %s\n", yesNo(recursive), yesNo(dryRun))
		fmt.Fprintf(out, "Log file: %s\n", csvLog)
	}

	outcomes, summary, err := organizer.Organize(runCtx, folder, mapping, organizer.Options{
		Recursive: recursive,
		DryRun:    dryRun,
		Exclude:   exclude,
		Logger:    logger,
	})
	if err != nil && !errors.Is(err, cmd.Context().Err()) {
		return err
	}
	runErr := err

	now := time.Now()
	if csvLog != "" {
		if err := auditlog.AppendCSV(csvLog, outcomes, now); err != nil {
			return err
		}
	}
	if humanLog != "" {
		if err := auditlog.AppendHuman(humanLog, outcomes, now); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}

	if flags.json {
		if outcomes == nil {
			outcomes = []organizer.MoveOutcome{}
		}
		return writeJSON(cmd, organizeReport{
			RunID:    runID,
			Folder:   folder,
			DryRun:   dryRun,
			Outcomes: outcomes,
			Summary:  summary,
		})
	}

	printOrganizeSummary(out, folder, outcomes, summary, dryRun, flags.details)
	return nil
}

func printOrganizeSummary(out io.Writer, folder string, outcomes []organizer.MoveOutcome, summary organizer.RunSummary, dryRun, details bool) {
	colorize := shouldColorize(out)
	fmt.Fprintln(out)
	for _, line := range renderSectionHeader("Summary", colorize) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Examined", "Moved", "Skipped", "Errors"},
		[][]string{{
			strconv.Itoa(summary.Examined),
			strconv.Itoa(summary.Moved),
			strconv.Itoa(summary.Skipped),
			strconv.Itoa(summary.Errors),
		}},
		[]columnAlignment{alignRight, alignRight, alignRight, alignRight},
	))
	kind, message := summaryStatus(summary, dryRun)
	fmt.Fprintln(out, renderStatusLine("Result", kind, message, colorize))

	if details && len(outcomes) > 0 {
		rows := make([][]string, 0, len(outcomes))
		for _, o := range outcomes {
			rows = append(rows, []string{relativeTo(folder, o.Source), relativeTo(folder, o.Destination), outcomeStatus(o)})
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, tableSpec{
			headers: []string{"Source", "Destination", "Result"},
			rows:    rows,
			footer:  []string{"", "", fmt.Sprintf("%d files", len(outcomes))},
		}.render())
	}

	if dryRun {
		fmt.Fprintln(out)
		fmt.Fprintln(out, dryRunHint)
	}
}

func resolveFolderArg(args []string, pathFlag string) (string, error) {
	var folder string
	pathFlag = strings.TrimSpace(pathFlag)
	switch {
	case len(args) > 0 && pathFlag != "" && filepath.Clean(args[0]) != filepath.Clean(pathFlag):
		return "", faults.Wrap(faults.ErrValidation, "cli", "resolve folder",
			fmt.Sprintf("conflicting folders %q and --path %q", args[0], pathFlag), nil)
	case len(args) > 0:
		folder = args[0]
	case pathFlag != "":
		folder = pathFlag
	default:
		return "", faults.Wrap(faults.ErrValidation, "cli", "resolve folder", "a folder is required (positional argument or --path)", nil)
	}
	return absPath(folder)
}

func absPath(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", nil
	}
	return config.ExpandPath(p)
}

func relativeTo(base, path string) string {
	if rel, err := filepath.Rel(base, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}
