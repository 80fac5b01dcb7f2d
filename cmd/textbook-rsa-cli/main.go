// Package main is the entry point for the textbook-rsa-cli application.
// Run without arguments it performs the 512-bit key generation and
// encrypt/decrypt demonstration; sub-commands expose each step on its own.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/textbook-rsa/cmd/textbook-rsa-cli/internal/commands"

	"github.com/spf13/cobra"
)

// Exit codes; a failed round trip is told apart from bad input.
const (
	exitFailure  = 1
	exitMismatch = 2
)

func main() {
	if err := run(); err != nil {
		code := exitCode(err)
		if code == exitMismatch {
			log.Printf("Round trip failed: %v", err)
		} else {
			log.Printf("Error: %v", err)
		}
		os.Exit(code)
	}
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if commands.IsRoundTripMismatch(err) {
		return exitMismatch
	}
	return exitFailure
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "textbook-rsa-cli",
		Short: "Textbook RSA demonstration tool",
		Long: `textbook-rsa-cli implements unpadded RSA for teaching purposes.

Without a sub-command it generates a 512-bit key pair, prints the public
modulus and exponent and the private exponent, then encrypts and decrypts a
fixed message and checks the round trip.

512-bit keys and unpadded RSA offer no real secrecy. Do not use this tool to
protect data.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
