package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erc7824/fieldsig/pkg/canonical"
	"github.com/erc7824/fieldsig/pkg/codec"
	"github.com/erc7824/fieldsig/pkg/digest"
	"github.com/erc7824/fieldsig/pkg/log"
)

type digestRequest struct {
	Algorithm string `validate:"hashalg"`
}

type convertRequest struct {
	To string `validate:"oneof=hex base64"`
}

func (a *app) newHashCmd() *cobra.Command {
	var req digestRequest

	cmd := &cobra.Command{
		Use:   "hash <field>...",
		Short: "Print the hex digest of the canonical form of the given fields",
		Long: `Print the hex digest of the canonical form of the given fields.

A single argument is hashed as its UTF-8 text. Available algorithms are
` + fmt.Sprint(digest.DefaultRegistry().Algorithms()) + `.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.run("hash", func(cmd *cobra.Command, args []string) error {
			if req.Algorithm == "" {
				req.Algorithm = a.conf.HashAlgorithm
			}
			if err := validateRequest(req); err != nil {
				return err
			}

			d, err := digest.Hash([]byte(canonical.Concatenate(fieldArgs(args)...)), req.Algorithm)
			if err != nil {
				return err
			}
			log.FromContext(cmd.Context()).Debug("digest computed", "algorithm", d.Algorithm)
			return writeLine(cmd.OutOrStdout(), d.Hex())
		}),
	}

	cmd.Flags().StringVar(&req.Algorithm, "alg", "", "hash algorithm (default from FIELDSIG_HASH_ALG)")
	return cmd
}

func (a *app) newUUIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uuid",
		Short: "Print a random version 4 UUID",
		Args:  cobra.NoArgs,
		RunE: a.run("uuid", func(cmd *cobra.Command, _ []string) error {
			return writeLine(cmd.OutOrStdout(), digest.UUID())
		}),
	}
}

func (a *app) newConvertCmd() *cobra.Command {
	var req convertRequest

	cmd := &cobra.Command{
		Use:   "convert <text>",
		Short: "Re-encode hex, Base64 or PEM text as hex or Base64",
		Args:  cobra.ExactArgs(1),
		RunE: a.run("convert", func(cmd *cobra.Command, args []string) error {
			if err := validateRequest(req); err != nil {
				return err
			}

			b, err := codec.Base64OrHexToBytes(args[0])
			if err != nil {
				return err
			}
			out := codec.BytesToHex(b)
			if req.To == "base64" {
				out = codec.BytesToBase64(b)
			}
			return writeLine(cmd.OutOrStdout(), out)
		}),
	}

	cmd.Flags().StringVar(&req.To, "to", "hex", "target encoding: hex or base64")
	return cmd
}

func (a *app) newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <text>",
		Short: "Report whether text decodes as hex or Base64",
		Long: `Report whether text decodes as hex or Base64.

Hex is tried first, so text made only of hex digits is reported as hex even
when it is also valid Base64.`,
		Args: cobra.ExactArgs(1),
		RunE: a.run("detect", func(cmd *cobra.Command, args []string) error {
			return writeLine(cmd.OutOrStdout(), codec.Detect(args[0]).String())
		}),
	}
}
