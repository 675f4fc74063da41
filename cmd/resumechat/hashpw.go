package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shrey-c/resume-chatbot/internal/auth"
)

// hashpwCmd generates the bcrypt hash for ADMIN_PASSWORD_HASH.
var hashpwCmd = &cobra.Command{
	Use:   "hashpw <password>",
	Short: "Hash an admin password for the environment file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := auth.HashPassword(args[0])
		if err != nil {
			return err
		}
		fmt.Println(hash)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashpwCmd)
}
