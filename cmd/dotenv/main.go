// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command dotenv inspects and validates .env files.
package main

import (
	"fmt"
	"os"

	"github.com/z5labs/dotenv/internal/cli"
)

func main() {
	err := cli.New().Run(os.Args[1:]...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
