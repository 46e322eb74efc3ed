package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard the current session",
		Long:  "Discard all stored session versions and start fresh on the next analyze.",
		Run:   runReset,
	}
	RootCmd.AddCommand(cmd)
}

func runReset(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	if err := s.Reset(cmd.Context()); err != nil {
		exitErr("reset", err)
	}
	fmt.Println("session cleared")
}
