package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thinkflow/thinkflow/internal/agent"
	"github.com/thinkflow/thinkflow/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "refine [request]",
		Short: "Revise the current plan",
		Long: "Re-run the analysis with a revision request folded into the previous " +
			"context and plan. The model derives a fresh plan; nothing is patched in place.",
		Run: runRefine,
	}
	RootCmd.AddCommand(cmd)
}

func runRefine(cmd *cobra.Command, args []string) {
	request := readInput(args)
	if request == "" {
		exitErr("refine", fmt.Errorf("revision request is required (positional arg or stdin)"))
	}

	cfg := loadConfig()
	log := newLogger()
	s := openStore(cfg)
	defer s.Close()

	sess, err := s.Current(cmd.Context())
	if err != nil {
		exitErr("refine", fmt.Errorf("no session to refine; run analyze first"))
	}

	combined := agent.RefineContext(sess.Context, sess.Result, request)

	a := newAgent(cfg, log)
	result := a.Analyze(cmd.Context(), combined)

	if !result.NeedsClarification {
		if _, err := s.Save(cmd.Context(), store.SaveParams{Context: combined, Result: result}); err != nil {
			warn("session not saved: %v", err)
		}
	}

	b, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(b))
}
