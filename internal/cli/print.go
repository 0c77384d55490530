// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/z5labs/dotenv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func printCmd(c *command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the merged environment",
		Long: `Print the merged environment to stdout.

Values whose key looks sensitive, e.g. DB_PASSWORD or API_KEY,
are masked unless --reveal is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := c.v.GetString("format")
			write, ok := writers[format]
			if !ok {
				return UnknownFormatError{Format: format}
			}

			env, err := c.readEnv()
			if err != nil {
				return err
			}
			if !c.v.GetBool("reveal") {
				env = env.Masked()
			}
			return write(cmd.OutOrStdout(), env)
		},
	}

	flags := cmd.Flags()
	flags.String("format", "env", "output format: env, json or yaml")
	flags.Bool("reveal", false, "print sensitive values as is")
	bindFlags(c.v, flags.Lookup("format"), flags.Lookup("reveal"))

	return cmd
}

var writers = map[string]func(io.Writer, *dotenv.Environment) error{
	"env":  writeEnv,
	"json": writeJSON,
	"yaml": writeYAML,
}

func writeEnv(w io.Writer, env *dotenv.Environment) error {
	for k, v := range env.All() {
		_, err := fmt.Fprintf(w, "%s=%s\n", k, quote(v))
		if err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, env *dotenv.Environment) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env.Map())
}

func writeYAML(w io.Writer, env *dotenv.Environment) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	err := enc.Encode(env.Map())
	if err != nil {
		return err
	}
	return enc.Close()
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// quote renders v so that parsing it back yields v again.
func quote(v string) string {
	if !needsQuotes(v) {
		return v
	}
	return `"` + escaper.Replace(v) + `"`
}

func needsQuotes(v string) bool {
	if v == "" {
		return false
	}
	if strings.TrimSpace(v) != v {
		return true
	}
	return strings.ContainsAny(v, "\"'\\\n\r\t")
}
