package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

var runCmd = &cobra.Command{
	Use:   "run jobfile.yml",
	Short: "run the clipping operation described in a YAML job file",
	Long: `Run loads a YAML job file describing subject paths, clip paths, the
boolean operation and the fill rule, executes the operation and prints the
resulting paths as YAML on standard output.

Example job file:

    cliptype: intersection
    fillrule: nonzero
    precision: 2
    subjects:
      - [[0, 0], [10, 0], [10, 10], [0, 10]]
    clips:
      - [[5, 5], [15, 5], [15, 15], [5, 15]]`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var job Job
		if err := yaml.Unmarshal(buf, &job); err != nil {
			return fmt.Errorf("parsing %s: %w", args[0], err)
		}
		result, err := job.Run()
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(result)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(runCmd)
}
