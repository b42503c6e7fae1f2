package cmd

import "fmt"

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Print version information",
		Usage: "arbor version",
		Run: func(args []string) error {
			fmt.Printf("arbor %s (built %s)\n", Version, BuildTime)
			return nil
		},
	})
}
