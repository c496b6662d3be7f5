package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"fairdice/internal/domain"
	"fairdice/internal/protocol/fairrandom"
)

func verifyCmd() *cobra.Command {
	var (
		keyHex    string
		digestHex string
		value     int
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a revealed key and value against the HMAC shown before the roll",
		Args:  cobra.NoArgs,
		// Replaces the root hook: checking a digest needs no game config.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			if !fairrandom.VerifyHex(keyHex, value, digestHex) {
				return domain.ErrDigestMismatch
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
	cmd.Flags().StringVar(&keyHex, "key", "", "revealed key (hex)")
	cmd.Flags().IntVar(&value, "value", 0, "revealed value")
	cmd.Flags().StringVar(&digestHex, "hmac", "", "HMAC published before the roll (hex)")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("value")
	_ = cmd.MarkFlagRequired("hmac")
	return cmd
}
