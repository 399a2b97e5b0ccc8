package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/carlmjohnson/exitcode"
	"github.com/spf13/cobra"

	"lorraxs/whiten/config"
	"lorraxs/whiten/controllers"
)

const usage = "Usage: whiten image1.png image2.png ..."

var ErrUsage = errors.New("no image paths given")

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whiten <image> [<image> ...]",
		Short: "Recolor images to white, keeping their transparency",
		Args:  cobra.ArbitraryArgs,
		// every argument is a path, even one starting with '-'
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE:               runRecolor,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func runRecolor(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), usage)
		return exitcode.Set(ErrUsage, 1)
	}

	controllers.NewRecolorController(cmd.OutOrStdout(), cmd.ErrOrStderr(), config.GetConfig()).Run(args)
	return nil
}
