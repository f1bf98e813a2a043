// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/quietroom/clipfix"
)

func formatsCommand() *cli.Command {
	return &cli.Command{
		Name:  "formats",
		Usage: "List the formats clipfix can decode",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			for _, format := range clipfix.Formats() {
				fmt.Println(format)
			}

			return nil
		},
	}
}
