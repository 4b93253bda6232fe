package cmd

import (
	"fmt"
	"os"

	"github.com/go-polyclip/polyclip"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

var areaCmd = &cobra.Command{
	Use:   "area pathsfile.yml",
	Short: "report the signed area and orientation of each path in a file",
	Long: `Area loads a YAML file containing a list of paths (each a list of
[x, y] pairs) and prints the signed area and winding orientation of each.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var raw [][][]float64
		if err := yaml.Unmarshal(buf, &raw); err != nil {
			return fmt.Errorf("parsing %s: %w", args[0], err)
		}
		paths, err := toPathsD(raw)
		if err != nil {
			return err
		}
		total := 0.0
		for i, path := range paths {
			a := polyclip.AreaD(path)
			orientation := "positive"
			if a < 0 {
				orientation = "negative"
			}
			fmt.Printf("path %d: area %.2f (%s)\n", i, a, orientation)
			total += a
		}
		fmt.Printf("total: %.2f\n", total)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(areaCmd)
}
