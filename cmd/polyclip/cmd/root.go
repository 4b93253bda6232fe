package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "polyclip",
	Short: "boolean operations on 2D polygons",
	Long: `This is the command-line application accompanying polyclip:
	- run boolean clipping operations (union, intersection, difference, xor)
	  on polygons described in YAML job files,
	- report signed areas and orientations of paths,
	- print results as YAML for further processing.`,
}

// Execute runs the root command and exits the process when it returns an
// error. This is called by main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
