// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"fmt"

	"github.com/z5labs/dotenv"
	"github.com/z5labs/dotenv/pkg/slogfield"

	"github.com/spf13/cobra"
)

type lookupFunc func(env *dotenv.Environment, key string, def *string) (any, error)

var lookups = map[string]lookupFunc{
	"string":   lookup(dotenv.String),
	"int":      lookup(dotenv.Int64),
	"float":    lookup(dotenv.Float64),
	"bool":     lookup(dotenv.Bool),
	"url":      lookup(dotenv.URL),
	"duration": lookup(dotenv.Duration),
}

func lookup[T any](c dotenv.Converter[T]) lookupFunc {
	return func(env *dotenv.Environment, key string, def *string) (any, error) {
		if def == nil {
			return dotenv.Require(env, key, c)
		}

		d, ok := c.Convert(*def)
		if !ok {
			return nil, InvalidDefaultError{Value: *def, Type: fmt.Sprintf("%T", d)}
		}
		return dotenv.GetOr(env, key, d, c), nil
	}
}

func getCmd(c *command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Print the value of a single key",
		Long: `Print the value of a single key converted to the given type.

Without --default a missing key or a value which can not be converted
is an error. With --default both result in the default being printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ := c.v.GetString("type")
			f, ok := lookups[typ]
			if !ok {
				return UnknownTypeError{Type: typ}
			}

			env, err := c.readEnv()
			if err != nil {
				return err
			}

			var def *string
			if c.v.IsSet("default") {
				s := c.v.GetString("default")
				def = &s
			}

			key := args[0]
			v, err := f(env, key, def)
			if err != nil {
				return err
			}
			c.log.Debug("resolved key", slogfield.Key(key), slogfield.String("type", typ))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}

	flags := cmd.Flags()
	flags.String("type", "string", "value type: string, int, float, bool, url or duration")
	flags.String("default", "", "value to print if the key is missing or invalid")
	bindFlags(c.v, flags.Lookup("type"), flags.Lookup("default"))

	return cmd
}
