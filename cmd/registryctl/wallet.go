package main

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newKeygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Print a new wallet keypair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wallet := solana.NewWallet()
			fmt.Fprintf(cmd.OutOrStdout(), "address:     %s\nprivate key: %s\n", wallet.PublicKey(), wallet.PrivateKey)

			return nil
		},
	}
}

func newSignCmd() *cobra.Command {
	var key, message string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a login challenge with a base58 private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			signature, err := signMessage(key, message)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signature)

			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "base58 encoded private key")
	cmd.Flags().StringVar(&message, "message", "", "challenge message to sign")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

// signMessage returns the base58 ed25519 signature of message.
func signMessage(key, message string) (string, error) {
	privateKey, err := solana.PrivateKeyFromBase58(key)
	if err != nil {
		return "", errors.Wrap(err, "invalid private key")
	}
	if message == "" {
		return "", errors.New("message must not be empty")
	}

	signature, err := privateKey.Sign([]byte(message))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign message")
	}

	return signature.String(), nil
}
