package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mmscan/internal/auth"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage API tokens for the HTTP server",
}

var tokenNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a new API token",
	Long: `Generate a new API token and its bcrypt hash.

Give the token to API clients and store only the hash in the server config:

  {
    "server": {
      "auth": { "enabled": true, "tokenHash": "<hash>" }
    }
  }`,
	RunE: runTokenNew,
}

func init() {
	tokenCmd.AddCommand(tokenNewCmd)
	rootCmd.AddCommand(tokenCmd)
}

func runTokenNew(cmd *cobra.Command, args []string) error {
	token, err := auth.GenerateToken()
	if err != nil {
		return err
	}

	hash, err := auth.HashToken(token)
	if err != nil {
		return err
	}

	fmt.Println("Token (give to clients, shown only once):")
	fmt.Printf("  %s\n\n", token)
	fmt.Println("Hash (store as server.auth.tokenHash):")
	fmt.Printf("  %s\n", hash)
	return nil
}
