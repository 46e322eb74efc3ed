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
		Use:   "history",
		Short: "List past analysis passes",
		Long:  "List stored session versions, newest first. Use --search for full-text search over past contexts.",
		Run:   runHistory,
	}

	cmd.Flags().StringP("search", "s", "", "Full-text search query")
	cmd.Flags().IntP("limit", "l", 20, "Max results")
	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	query, _ := cmd.Flags().GetString("search")
	limit, _ := cmd.Flags().GetInt("limit")

	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	var (
		sessions []model.Session
		err      error
	)
	if query != "" {
		sessions, err = s.Search(cmd.Context(), store.SearchParams{Query: query, Limit: limit})
	} else {
		sessions, err = s.History(cmd.Context(), limit)
	}
	if err != nil {
		exitErr("history", err)
	}

	b, _ := json.MarshalIndent(sessions, "", "  ")
	fmt.Println(string(b))
}
