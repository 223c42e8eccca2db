package main

import (
	"fmt"
	"log"
	"regexp"

	"github.com/johann/sgetools/internal/cstr"
	"github.com/spf13/cobra"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func newRootCmd() *cobra.Command {
	var (
		output   string
		variable string
	)

	cmd := &cobra.Command{
		Use:   "file2cstr [flags] <filename>",
		Short: "Convert binary file to C-style array",
		Long: `file2cstr writes a C header declaring the contents of a binary file as a
const unsigned char array, for embedding the file into a compiled program.

Example: file2cstr -o font.h -v font_ttf assets/font.ttf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runFile2CStr(cmd, args[0], output, variable)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write output to a file")
	cmd.Flags().StringVarP(&variable, "variable", "v", "", "the name of the variable written in the C-Header that contains the data")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("variable")

	return cmd
}

func runFile2CStr(cmd *cobra.Command, input, output, variable string) error {
	if !identRe.MatchString(variable) {
		log.Printf("[WARN] variable %q is not a valid C identifier", variable)
	}

	if err := cstr.Emit(input, output, variable); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", output, variable)
	return nil
}
