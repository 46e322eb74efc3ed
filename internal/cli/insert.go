package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thinkflow/thinkflow/internal/model"
	"github.com/thinkflow/thinkflow/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "insert [summary]",
		Short: "Add one action to the current plan",
		Long: "Splice a single action into the current action list without calling the " +
			"model. Position it with --before or --after (matching an existing action's " +
			"summary); default is the end of the list.",
		Args: cobra.MinimumNArgs(1),
		Run:  runInsert,
	}

	cmd.Flags().String("before", "", "Insert before the action with this summary")
	cmd.Flags().String("after", "", "Insert after the action with this summary")
	RootCmd.AddCommand(cmd)
}

func runInsert(cmd *cobra.Command, args []string) {
	before, _ := cmd.Flags().GetString("before")
	after, _ := cmd.Flags().GetString("after")
	summary := readInput(args)

	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	sess, err := s.Current(cmd.Context())
	if err != nil || sess.Result == nil {
		exitErr("insert", fmt.Errorf("no plan to insert into; run analyze first"))
	}

	item := model.NewManualAction(summary)
	updated := *sess.Result
	updated.Actions = model.InsertAction(sess.Result.Actions, item, model.InsertPosition{
		Before: before,
		After:  after,
	})

	if _, err := s.Save(cmd.Context(), store.SaveParams{Context: sess.Context, Result: &updated}); err != nil {
		exitErr("insert", err)
	}

	b, _ := json.MarshalIndent(updated.Actions, "", "  ")
	fmt.Println(string(b))
}
