package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thinkflow/thinkflow/internal/ics"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the current plan as a calendar file",
		Long: "Write the current action list as an iCalendar (.ics) file. Actions " +
			"without a YYYY-MM-DD due date are skipped.",
		Run: runExport,
	}

	cmd.Flags().StringP("out", "o", "thinkflow_actions.ics", "Output path ('-' for stdout)")
	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	out, _ := cmd.Flags().GetString("out")

	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	sess, err := s.Current(cmd.Context())
	if err != nil || sess.Result == nil {
		exitErr("export", fmt.Errorf("no plan to export; run analyze first"))
	}

	actions := sess.Result.Actions
	if ics.EventCount(actions) == 0 {
		exitErr("export", fmt.Errorf("no action has a due date; nothing to export"))
	}

	payload := ics.NewEncoder().Encode(actions)
	if out == "-" {
		os.Stdout.Write(payload)
		return
	}
	if err := os.WriteFile(out, payload, 0o644); err != nil {
		exitErr("export", err)
	}
	fmt.Printf("wrote %d events to %s\n", ics.EventCount(actions), out)
}
