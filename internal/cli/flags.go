// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func bindFlags(v *viper.Viper, flags ...*pflag.Flag) {
	for _, f := range flags {
		err := v.BindPFlag(f.Name, f)
		if err != nil {
			// only fails for a nil flag
			panic(err)
		}
	}
}

// UnknownFormatError occurs when the print command is asked
// for an output format it does not support.
type UnknownFormatError struct {
	Format string
}

// Error implements the error interface.
func (e UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown output format: %s", e.Format)
}

// UnknownTypeError occurs when the get command is asked
// to convert a value to a type it does not support.
type UnknownTypeError struct {
	Type string
}

// Error implements the error interface.
func (e UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown value type: %s", e.Type)
}

// InvalidDefaultError occurs when the default given to the get
// command can not be converted to the requested type.
type InvalidDefaultError struct {
	Value string
	Type  string
}

// Error implements the error interface.
func (e InvalidDefaultError) Error() string {
	return fmt.Sprintf("default value %q is not a valid %s", e.Value, e.Type)
}
