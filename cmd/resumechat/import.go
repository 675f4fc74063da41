package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/shrey-c/resume-chatbot/internal/llm"
	"github.com/shrey-c/resume-chatbot/internal/pdfimport"
)

// importCmd parses a resume PDF through the LLM and prints the structured
// record, useful for previewing an import before uploading it.
var importCmd = &cobra.Command{
	Use:   "import <resume.pdf>",
	Short: "Parse a resume PDF into structured JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		if err := godotenv.Load(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "warning: no environment file loaded from %s\n", envFile)
		}

		var cfg llm.Config
		if err := envconfig.Process("", &cfg); err != nil {
			return err
		}

		parser := pdfimport.NewParser(llm.NewClient(cfg))
		parsed, err := parser.ParseResume(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(parsed)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
