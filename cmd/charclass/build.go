package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/antithesishq/charclass"
	"github.com/antithesishq/charclass/internal/classes"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build [chars...]",
	Short: "Print the pattern for a character set",
	Long:  "Print the most compact pattern matching one character from the union of the argument characters and any --class sets.",
	Run: func(cmd *cobra.Command, args []string) {
		var chars []rune
		for _, arg := range args {
			chars = append(chars, []rune(arg)...)
		}
		for _, name := range orFatal(cmd.Flags().GetStringArray("class")) {
			class, err := classes.Lookup(name)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			chars = append(chars, class...)
		}

		pattern, err := charclass.Build(chars, orFatal(cmd.Flags().GetBool("invert")))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(pattern)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().BoolP("invert", "i", false, "match characters NOT in the set")
	buildCmd.Flags().StringArray("class", nil, "include a named class (repeatable); one of "+strings.Join(classes.Names(), ", "))
}
