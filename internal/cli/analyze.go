package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thinkflow/thinkflow/internal/extract"
	"github.com/thinkflow/thinkflow/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "analyze [notes]",
		Short: "Analyze notes into a plan",
		Long: "Run a full analysis pass. Notes can be a positional arg or piped via stdin; " +
			"reference documents (PDF, image, text) are added with --file.",
		Run: runAnalyze,
	}

	cmd.Flags().StringSliceP("file", "f", nil, "Reference document path (repeatable)")
	RootCmd.AddCommand(cmd)
}

func runAnalyze(cmd *cobra.Command, args []string) {
	files, _ := cmd.Flags().GetStringSlice("file")

	notes := readInput(args)

	cfg := loadConfig()
	log := newLogger()

	var parts []string
	if notes != "" {
		parts = append(parts, notes)
	}
	if len(files) > 0 {
		fileText, err := extract.New(cfg.UpstageAPIKey).Text(cmd.Context(), files)
		if err != nil {
			// Extraction failure is visible but non-fatal: the typed
			// notes still go through.
			warn("reference documents skipped: %v", err)
		} else if fileText != "" {
			parts = append(parts, fileText)
		}
	}
	combined := strings.Join(parts, "\n\n")

	if strings.TrimSpace(combined) == "" {
		exitErr("analyze", fmt.Errorf("nothing to analyze: give notes or --file"))
	}

	a := newAgent(cfg, log)
	result := a.Analyze(cmd.Context(), combined)

	if !result.NeedsClarification {
		s := openStore(cfg)
		defer s.Close()
		if _, err := s.Save(cmd.Context(), store.SaveParams{Context: combined, Result: result}); err != nil {
			warn("session not saved: %v", err)
		}
	}

	b, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(b))
}

// readInput joins positional args, falling back to piped stdin.
func readInput(args []string) string {
	if len(args) > 0 {
		return strings.TrimSpace(strings.Join(args, " "))
	}
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			exitErr("read stdin", err)
		}
		return strings.TrimSpace(string(b))
	}
	return ""
}
