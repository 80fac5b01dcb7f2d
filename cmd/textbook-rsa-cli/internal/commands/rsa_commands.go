package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/app"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// DemoMessage is the text round-tripped when no --message is given.
const DemoMessage = "A matemática é a chave para o RSA!"

// RSACommandHandler encapsulates logic for handling textbook RSA operations via CLI.
type RSACommandHandler struct {
	logger logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler with logging.
func NewRSACommandHandler() (*RSACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &RSACommandHandler{
		logger: loggerInstance,
	}, nil
}

// DemoCmd generates a key pair, prints it, and round-trips a message.
// A mismatch is returned as an error so the process exits non-zero.
func (commandHandler *RSACommandHandler) DemoCmd(cmd *cobra.Command, _ []string) error {
	keySize, message := config.DefaultKeySize, DemoMessage
	if f := cmd.Flags().Lookup("key-size"); f != nil {
		var err error
		if keySize, err = cmd.Flags().GetInt("key-size"); err != nil {
			return fmt.Errorf("invalid key-size flag: %w", err)
		}
	}
	if f := cmd.Flags().Lookup("message"); f != nil {
		var err error
		if message, err = cmd.Flags().GetString("message"); err != nil {
			return fmt.Errorf("invalid message flag: %w", err)
		}
	}

	settings := config.DefaultRSASettings()
	settings.KeySize = keySize
	processor, err := newProcessor(settings, commandHandler.logger)
	if err != nil {
		return err
	}

	service, err := app.NewRoundTripService(processor, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create round trip service: %w", err)
	}

	result, err := service.Run(cmdContext(cmd), keySize, message)
	if result != nil {
		printRoundTrip(cmd.OutOrStdout(), keySize, result)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "\nSuccess: the original and decrypted messages match.")
	return nil
}

// GenerateKeysCmd generates a key pair and prints n, e and d.
func (commandHandler *RSACommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}

	settings := config.DefaultRSASettings()
	settings.KeySize = keySize
	processor, err := newProcessor(settings, commandHandler.logger)
	if err != nil {
		return err
	}

	privateKey, publicKey, err := processor.GenerateKeys(keySize)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "n: %s\n", publicKey.N())
	fmt.Fprintf(out, "e: %s\n", publicKey.E())
	fmt.Fprintf(out, "d: %s\n", privateKey.D())
	return nil
}

// EncryptCmd encrypts a text message under (n, e) and prints the ciphertext integer.
func (commandHandler *RSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	publicKey, err := readPublicKey(cmd)
	if err != nil {
		return err
	}
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}

	processor, err := newProcessor(config.DefaultRSASettings(), commandHandler.logger)
	if err != nil {
		return err
	}

	c, err := processor.EncryptText(message, publicKey)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), c)
	return nil
}

// DecryptCmd decrypts a ciphertext integer under (n, d) and prints the text.
func (commandHandler *RSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	modulus, err := parseFlagInt(cmd, "modulus")
	if err != nil {
		return err
	}
	exponent, err := parseFlagInt(cmd, "exponent")
	if err != nil {
		return err
	}
	ciphertext, err := parseFlagInt(cmd, "ciphertext")
	if err != nil {
		return err
	}

	privateKey, err := cryptoalg.NewPrivateKey(modulus, exponent)
	if err != nil {
		return err
	}

	processor, err := newProcessor(config.DefaultRSASettings(), commandHandler.logger)
	if err != nil {
		return err
	}

	text, err := processor.DecryptText(ciphertext, privateKey)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

// IsPrimeCmd runs Miller-Rabin on a number and prints the verdict.
func (commandHandler *RSACommandHandler) IsPrimeCmd(cmd *cobra.Command, _ []string) error {
	n, err := parseFlagInt(cmd, "number")
	if err != nil {
		return err
	}
	rounds, err := cmd.Flags().GetInt("rounds")
	if err != nil {
		return fmt.Errorf("invalid rounds flag: %w", err)
	}

	settings := config.DefaultRSASettings()
	settings.Rounds = rounds
	processor, err := newProcessor(settings, commandHandler.logger)
	if err != nil {
		return err
	}

	prime, err := processor.IsProbablyPrime(n)
	if err != nil {
		return err
	}

	verdict := "composite"
	if prime {
		verdict = "probably prime"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is %s\n", n, verdict)
	return nil
}

// GeneratePrimeCmd prints a probable prime of the requested size.
func (commandHandler *RSACommandHandler) GeneratePrimeCmd(cmd *cobra.Command, _ []string) error {
	bits, err := cmd.Flags().GetInt("bits")
	if err != nil {
		return fmt.Errorf("invalid bits flag: %w", err)
	}

	processor, err := newProcessor(config.DefaultRSASettings(), commandHandler.logger)
	if err != nil {
		return err
	}

	prime, err := processor.GeneratePrime(bits)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), prime)
	return nil
}

func readPublicKey(cmd *cobra.Command) (*cryptoalg.PublicKey, error) {
	modulus, err := parseFlagInt(cmd, "modulus")
	if err != nil {
		return nil, err
	}
	exponent, err := parseFlagInt(cmd, "exponent")
	if err != nil {
		return nil, err
	}
	return cryptoalg.NewPublicKey(modulus, exponent)
}

func parseFlagInt(cmd *cobra.Command, name string) (*big.Int, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", name, err)
	}
	return parseBigInt(name, value)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printRoundTrip(out io.Writer, keySize int, result *cryptoalg.RoundTripResult) {
	fmt.Fprintf(out, "--- Textbook RSA (educational example, %d-bit key) ---\n", keySize)

	fmt.Fprintln(out, "\nPublic key (n, e):")
	fmt.Fprintf(out, "  n: %s\n", result.PublicKey.N())
	fmt.Fprintf(out, "  e: %s\n", result.PublicKey.E())

	fmt.Fprintln(out, "\nPrivate key (n, d), keep it secret:")
	fmt.Fprintf(out, "  d: %s\n", result.PrivateKey.D())

	fmt.Fprintf(out, "\nOriginal message: %q\n", result.Message)
	fmt.Fprintf(out, "Message as integer (m): %s\n", result.Plain)

	if result.Cipher != nil {
		fmt.Fprintf(out, "\nCiphertext (c): %s\n", result.Cipher)
	}
	if result.Recovered != nil {
		fmt.Fprintf(out, "\nDecrypted integer (m'): %s\n", result.Recovered)
		fmt.Fprintf(out, "Decrypted message: %q\n", result.Decoded)
	}
}

// InitRSACommands registers the demonstration as the root action and the
// textbook RSA sub-commands.
func InitRSACommands(rootCmd *cobra.Command) error {
	handler, err := NewRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler %w", err)
	}

	rootCmd.RunE = handler.DemoCmd

	var demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Generate a key pair and round-trip a message",
		RunE:  handler.DemoCmd,
	}
	demoCmd.Flags().IntP("key-size", "", config.DefaultKeySize, "RSA modulus size in bits (512 is for demonstration only)")
	demoCmd.Flags().StringP("message", "", DemoMessage, "Text to encrypt and decrypt")
	rootCmd.AddCommand(demoCmd)

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate a textbook RSA key pair and print n, e and d",
		RunE:  handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().IntP("key-size", "", config.DefaultKeySize, "RSA modulus size in bits")
	rootCmd.AddCommand(generateKeysCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a text message with a public key (n, e)",
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("modulus", "", "", "Public modulus n (decimal)")
	encryptCmd.Flags().StringP("exponent", "", fmt.Sprint(cryptoalg.PublicExponent), "Public exponent e (decimal)")
	encryptCmd.Flags().StringP("message", "", "", "Text to encrypt")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a ciphertext integer with a private key (n, d)",
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("modulus", "", "", "Modulus n (decimal)")
	decryptCmd.Flags().StringP("exponent", "", "", "Private exponent d (decimal)")
	decryptCmd.Flags().StringP("ciphertext", "", "", "Ciphertext integer c (decimal)")
	rootCmd.AddCommand(decryptCmd)

	var isPrimeCmd = &cobra.Command{
		Use:   "is-prime",
		Short: "Run the Miller-Rabin test on a number",
		RunE:  handler.IsPrimeCmd,
	}
	isPrimeCmd.Flags().StringP("number", "", "", "Number to test (decimal)")
	isPrimeCmd.Flags().IntP("rounds", "", config.DefaultPrimalityRounds, "Number of Miller-Rabin witnesses")
	rootCmd.AddCommand(isPrimeCmd)

	var generatePrimeCmd = &cobra.Command{
		Use:   "generate-prime",
		Short: "Generate a probable prime with an exact bit length",
		RunE:  handler.GeneratePrimeCmd,
	}
	generatePrimeCmd.Flags().IntP("bits", "", 256, "Bit length of the prime")
	rootCmd.AddCommand(generatePrimeCmd)

	return nil
}

// IsRoundTripMismatch reports whether err came from a failed round trip.
func IsRoundTripMismatch(err error) bool {
	return errors.Is(err, cryptoalg.ErrRoundTripMismatch)
}
