package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/erc7824/fieldsig/pkg/codec"
	"github.com/erc7824/fieldsig/pkg/log"
	"github.com/erc7824/fieldsig/pkg/sign"
)

// keyPairOutput is the keygen document. Keys are Base64 DER.
type keyPairOutput struct {
	PrivateKey string `json:"privateKey" yaml:"privateKey"`
	PublicKey  string `json:"publicKey" yaml:"publicKey"`
	Address    string `json:"address" yaml:"address"`
}

type keygenRequest struct {
	Format string `validate:"oneof=json yaml pem"`
}

func (a *app) newKeygenCmd() *cobra.Command {
	var req keygenRequest

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a secp256k1 key pair",
		Args:  cobra.NoArgs,
		RunE: a.run("keygen", func(cmd *cobra.Command, _ []string) error {
			if err := validateRequest(req); err != nil {
				return err
			}

			kp, err := sign.GenerateKeyPair()
			if err != nil {
				return err
			}
			a.metrics.KeysGenerated.Inc()

			out, err := renderKeyPair(kp, req.Format)
			if err != nil {
				return err
			}

			addr, _ := kp.Address()
			log.FromContext(cmd.Context()).Info("key pair generated", "address", addr.Hex())
			return writeLine(cmd.OutOrStdout(), out)
		}),
	}

	cmd.Flags().StringVar(&req.Format, "format", "json", "output format: json, yaml or pem")
	return cmd
}

func renderKeyPair(kp sign.KeyPair, format string) (string, error) {
	if format == "pem" {
		priv, err := kp.ExportPrivateKeyToPEM()
		if err != nil {
			return "", err
		}
		pub, err := kp.ExportPublicKeyToPEM()
		if err != nil {
			return "", err
		}
		return priv + "\n" + pub, nil
	}

	addr, err := kp.Address()
	if err != nil {
		return "", err
	}
	doc := keyPairOutput{
		PrivateKey: codec.BytesToBase64(kp.PrivateKeyBytes()),
		PublicKey:  codec.BytesToBase64(kp.PublicKeyBytes()),
		Address:    addr.Hex(),
	}

	var data []byte
	if format == "yaml" {
		data, err = yaml.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode key pair: %w", err)
	}
	return string(data), nil
}

type pubkeyRequest struct {
	Format string `validate:"oneof=pem base64 hex address"`
}

func (a *app) newPubkeyCmd() *cobra.Command {
	var keys keyFlags
	var req pubkeyRequest

	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Derive the public key of a private key",
		Args:  cobra.NoArgs,
		RunE: a.run("pubkey", func(cmd *cobra.Command, _ []string) error {
			if err := validateRequest(req); err != nil {
				return err
			}
			signer, err := keys.privateKey()
			if err != nil {
				return err
			}

			kp := signer.WithDerivedPublic()
			var out string
			switch req.Format {
			case "pem":
				out, err = kp.ExportPublicKeyToPEM()
			case "base64":
				out = codec.BytesToBase64(kp.PublicKeyBytes())
			case "hex":
				out = codec.BytesToHex(kp.PublicKeyBytes())
			case "address":
				addr, addrErr := kp.Address()
				out, err = addr.Hex(), addrErr
			}
			if err != nil {
				return err
			}
			return writeLine(cmd.OutOrStdout(), out)
		}),
	}

	keys.register(cmd, "private key")
	cmd.Flags().StringVar(&req.Format, "format", "pem", "output format: pem, base64, hex or address")
	return cmd
}

type messageRequest struct {
	Message string `validate:"required"`
}

func (a *app) newEncryptCmd() *cobra.Command {
	var keys keyFlags

	cmd := &cobra.Command{
		Use:   "encrypt <text>",
		Short: "Encrypt text to a public key with ECIES; prints Base64",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.run("encrypt", func(cmd *cobra.Command, args []string) error {
			req := messageRequest{Message: strings.Join(args, " ")}
			if err := validateRequest(req); err != nil {
				return err
			}
			kp, err := keys.publicKey()
			if err != nil {
				return err
			}

			ct, err := kp.Encrypt([]byte(req.Message))
			if err != nil {
				return err
			}
			return writeLine(cmd.OutOrStdout(), codec.BytesToBase64(ct))
		}),
	}

	keys.register(cmd, "public key")
	return cmd
}

func (a *app) newDecryptCmd() *cobra.Command {
	var keys keyFlags

	cmd := &cobra.Command{
		Use:   "decrypt <ciphertext>",
		Short: "Decrypt Base64 or hex ECIES ciphertext with a private key",
		Args:  cobra.ExactArgs(1),
		RunE: a.run("decrypt", func(cmd *cobra.Command, args []string) error {
			ct, err := codec.Base64OrHexToBytes(args[0])
			if err != nil {
				return fmt.Errorf("failed to decode ciphertext: %w", err)
			}
			kp, err := keys.privateKey()
			if err != nil {
				return err
			}

			pt, err := kp.Decrypt(ct)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(pt, '\n'))
			return err
		}),
	}

	keys.register(cmd, "private key")
	return cmd
}
