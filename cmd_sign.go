package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erc7824/fieldsig/pkg/log"
	"github.com/erc7824/fieldsig/pkg/sign"
)

type signRequest struct {
	Convention string   `validate:"omitempty,oneof=raw hex-text"`
	Fields     []string `validate:"min=1"`
}

type hashRequest struct {
	Convention string `validate:"omitempty,oneof=raw hex-text"`
	Hash       string `validate:"required,hexadecimal"`
}

type verifyRequest struct {
	Convention string `validate:"omitempty,oneof=raw hex-text"`
	Signature  string `validate:"required"`
}

func (a *app) newSignCmd() *cobra.Command {
	var keys keyFlags
	var req signRequest

	cmd := &cobra.Command{
		Use:   "sign <field>...",
		Short: "Sign the canonical form of the given fields",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.run("sign", func(cmd *cobra.Command, args []string) error {
			req.Fields = args
			if err := validateRequest(req); err != nil {
				return err
			}
			p, err := a.protocolFor(req.Convention)
			if err != nil {
				return err
			}
			signer, err := keys.privateKey()
			if err != nil {
				return err
			}

			fields := fieldArgs(args)
			sig, err := p.SignWith(signer, fields...)
			if err != nil {
				return err
			}
			log.FromContext(cmd.Context()).Info("fields signed",
				"fields", len(fields),
				"hash", p.HashHex(fields...),
				"convention", p.Convention().String(),
			)
			return writeLine(cmd.OutOrStdout(), sig)
		}),
	}

	keys.register(cmd, "private key")
	cmd.Flags().StringVar(&req.Convention, "convention", "", "signing convention: raw or hex-text (default from FIELDSIG_CONVENTION)")
	return cmd
}

func (a *app) newSignHashCmd() *cobra.Command {
	var keys keyFlags
	var req hashRequest

	cmd := &cobra.Command{
		Use:   "sign-hash",
		Short: "Sign a precomputed hex digest",
		Args:  cobra.NoArgs,
		RunE: a.run("sign-hash", func(cmd *cobra.Command, _ []string) error {
			if err := validateRequest(req); err != nil {
				return err
			}
			p, err := a.protocolFor(req.Convention)
			if err != nil {
				return err
			}
			text, err := keys.text()
			if err != nil {
				return err
			}

			sig, err := p.SignHash(text, req.Hash)
			if err != nil {
				return err
			}
			log.FromContext(cmd.Context()).Info("hash signed", "hash", req.Hash, "convention", p.Convention().String())
			return writeLine(cmd.OutOrStdout(), sig)
		}),
	}

	keys.register(cmd, "private key")
	cmd.Flags().StringVar(&req.Hash, "hash", "", "hex digest to sign")
	cmd.Flags().StringVar(&req.Convention, "convention", "", "signing convention: raw or hex-text (default from FIELDSIG_CONVENTION)")
	return cmd
}

func (a *app) newVerifyCmd() *cobra.Command {
	var keys keyFlags
	var req verifyRequest

	cmd := &cobra.Command{
		Use:   "verify <field>...",
		Short: "Verify a signature over the canonical form of the given fields",
		Long: `Verify a signature over the canonical form of the given fields.

Prints valid, invalid-signature or malformed-input. The exit status is 2 for
anything but a valid signature.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.run("verify", func(cmd *cobra.Command, args []string) error {
			if err := validateRequest(req); err != nil {
				return err
			}
			p, err := a.protocolFor(req.Convention)
			if err != nil {
				return err
			}
			text, err := keys.text()
			if err != nil {
				return err
			}

			hashHex := p.HashHex(fieldArgs(args)...)
			return a.reportVerification(cmd, p.CheckSignatureHash(text, req.Signature, hashHex), hashHex)
		}),
	}

	keys.register(cmd, "public key")
	cmd.Flags().StringVar(&req.Signature, "sig", "", "signature as hex or Base64")
	cmd.Flags().StringVar(&req.Convention, "convention", "", "signing convention: raw or hex-text (default from FIELDSIG_CONVENTION)")
	return cmd
}

func (a *app) newVerifyHashCmd() *cobra.Command {
	var keys keyFlags
	var req verifyRequest
	var hashHex string

	cmd := &cobra.Command{
		Use:   "verify-hash",
		Short: "Verify a signature over a precomputed hex digest",
		Args:  cobra.NoArgs,
		RunE: a.run("verify-hash", func(cmd *cobra.Command, _ []string) error {
			if err := validateRequest(req); err != nil {
				return err
			}
			if err := validateRequest(hashRequest{Convention: req.Convention, Hash: hashHex}); err != nil {
				return err
			}
			p, err := a.protocolFor(req.Convention)
			if err != nil {
				return err
			}
			text, err := keys.text()
			if err != nil {
				return err
			}

			return a.reportVerification(cmd, p.CheckSignatureHash(text, req.Signature, hashHex), hashHex)
		}),
	}

	keys.register(cmd, "public key")
	cmd.Flags().StringVar(&req.Signature, "sig", "", "signature as hex or Base64")
	cmd.Flags().StringVar(&hashHex, "hash", "", "hex digest that was signed")
	cmd.Flags().StringVar(&req.Convention, "convention", "", "signing convention: raw or hex-text (default from FIELDSIG_CONVENTION)")
	return cmd
}

func (a *app) reportVerification(cmd *cobra.Command, result sign.Result, hashHex string) error {
	a.metrics.ObserveVerification(result)
	log.FromContext(cmd.Context()).Info("signature checked", "result", result, "hash", hashHex)

	if err := writeLine(cmd.OutOrStdout(), result.String()); err != nil {
		return err
	}
	if !result.Valid() {
		return fmt.Errorf("%w: %s", errVerificationFailed, result)
	}
	return nil
}
