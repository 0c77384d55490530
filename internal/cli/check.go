// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/z5labs/dotenv"

	"github.com/spf13/cobra"
)

func checkCmd(c *command) *cobra.Command {
	return &cobra.Command{
		Use:   "check KEY...",
		Short: "Verify that every given key is present",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := c.readEnv()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var errs []error
			for _, key := range args {
				status := "ok"
				if !env.Has(key) {
					status = "missing"
					errs = append(errs, dotenv.MissingKeyError{Key: key})
				}
				_, err := fmt.Fprintf(out, "%s %s\n", key, status)
				if err != nil {
					return err
				}
			}
			return errors.Join(errs...)
		},
	}
}
