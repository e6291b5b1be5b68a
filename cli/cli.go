package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "create-next-elysia [project-name]",
	Short: "Scaffold a Next.js + Elysia fullstack project",
	Long: `create-next-elysia clones the Next.js + Elysia template (with its
back-end and front-end submodules) into a new directory, optionally installs
dependencies, and can rewire the clone's remotes to your own repositories.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		return runScaffold(cmd.Context(), name)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
