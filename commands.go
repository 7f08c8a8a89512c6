package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/erc7824/fieldsig/pkg/codec"
	"github.com/erc7824/fieldsig/pkg/log"
	"github.com/erc7824/fieldsig/pkg/protocol"
	"github.com/erc7824/fieldsig/pkg/sign"
)

// errVerificationFailed is returned by the verify commands for a signature
// that does not check out. It maps to exitInvalidSignature.
var errVerificationFailed = errors.New("signature verification failed")

const (
	exitOK               = 0
	exitError            = 1
	exitInvalidSignature = 2
)

// app holds what every command needs. It is built once per process run.
type app struct {
	conf    *Config
	metrics *Metrics
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fieldsig",
		Short: "Sign and verify canonical field sets with secp256k1 keys",
		Long: `fieldsig canonicalises a list of fields, hashes them and signs the digest
with a secp256k1 key. Keys and signatures are accepted as hex, Base64 or PEM.

Examples:
  fieldsig keygen --format pem
  fieldsig sign --key-file key.pem transfer alice bob 100
  fieldsig verify --key-file pub.pem --sig 3045... transfer alice bob 100`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		a.newKeygenCmd(),
		a.newPubkeyCmd(),
		a.newSignCmd(),
		a.newSignHashCmd(),
		a.newVerifyCmd(),
		a.newVerifyHashCmd(),
		a.newHashCmd(),
		a.newUUIDCmd(),
		a.newEncryptCmd(),
		a.newDecryptCmd(),
		a.newConvertCmd(),
		a.newDetectCmd(),
	)
	return cmd
}

// run wraps a command body with logging and metrics.
func (a *app) run(name string, fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger := log.FromContext(cmd.Context()).WithName(name)
		ctx := log.SetContextLogger(cmd.Context(), logger)
		cmd.SetContext(ctx)

		started := time.Now()
		err := fn(cmd, args)
		a.metrics.ObserveCommand(name, started, err)

		switch {
		case err == nil:
			logger.Debug("command completed", "duration", time.Since(started))
		case errors.Is(err, errVerificationFailed):
			logger.Warn("signature rejected")
		default:
			logger.Error("command failed", "error", err)
		}
		return err
	}
}

// protocolFor returns a protocol using the named convention, or the configured
// one when name is empty, and the configured field digest algorithm.
func (a *app) protocolFor(name string) (*protocol.Protocol, error) {
	conv := a.conf.SigningConvention()
	if name != "" {
		var err error
		if conv, err = protocol.ParseConvention(name); err != nil {
			return nil, err
		}
	}

	opts := []protocol.Option{protocol.WithConvention(conv)}
	if a.conf.HashAlgorithm != "" {
		opts = append(opts, protocol.WithHashAlgorithm(a.conf.HashAlgorithm))
	}
	return protocol.New(opts...)
}

// keyFlags are the two ways of passing key text to a command.
type keyFlags struct {
	Key     string `validate:"required_without=KeyFile,excluded_with=KeyFile"`
	KeyFile string `validate:"omitempty,file"`
}

func (k *keyFlags) register(cmd *cobra.Command, what string) {
	cmd.Flags().StringVar(&k.Key, "key", "", what+" as hex, Base64 or PEM text")
	cmd.Flags().StringVar(&k.KeyFile, "key-file", "", "file holding the "+what)
}

// text returns the key text from --key or the contents of --key-file.
func (k *keyFlags) text() (string, error) {
	if err := getValidator().Struct(k); err != nil {
		return "", fmt.Errorf("exactly one of --key or --key-file is required: %w", err)
	}
	if k.Key != "" {
		return k.Key, nil
	}
	data, err := os.ReadFile(k.KeyFile)
	if err != nil {
		return "", fmt.Errorf("failed to read key file: %w", err)
	}
	return string(data), nil
}

func (k *keyFlags) privateKey() (sign.KeyPair, error) {
	text, err := k.text()
	if err != nil {
		return sign.KeyPair{}, err
	}
	der, err := codec.Base64OrHexToBytes(text)
	if err != nil {
		return sign.KeyPair{}, fmt.Errorf("failed to decode private key: %w", err)
	}
	return sign.ParsePrivateKey(der)
}

func (k *keyFlags) publicKey() (sign.KeyPair, error) {
	text, err := k.text()
	if err != nil {
		return sign.KeyPair{}, err
	}
	der, err := codec.Base64OrHexToBytes(text)
	if err != nil {
		return sign.KeyPair{}, fmt.Errorf("failed to decode public key: %w", err)
	}
	return sign.ParsePublicKey(der)
}

// fieldArgs turns positional arguments into canonical fields.
func fieldArgs(args []string) []any {
	fields := make([]any, len(args))
	for i, a := range args {
		fields[i] = a
	}
	return fields
}

func validateRequest(req any) error {
	if err := getValidator().Struct(req); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, strings.TrimRight(s, "\n"))
	return err
}
