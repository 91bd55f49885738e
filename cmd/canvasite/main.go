package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/canvasite/canvasite-terminal/cmd/commands"
	"github.com/canvasite/canvasite-terminal/internal/cli"
	"github.com/canvasite/canvasite-terminal/pkg/files"
	"github.com/canvasite/canvasite-terminal/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagQuiet   bool
	flagNoColor bool
	flagYes     bool
)

var rootCmd = &cobra.Command{
	Use:   "canvasite",
	Short: "Terminal-based visual website builder",
	Long:  `CanvaSite is a terminal-based visual website builder. Drag sections from the palette onto a canvas, style them, preview the page with a color scheme, and publish. Sites are stored as plain YAML files under .canvasite/.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(flagQuiet, flagNoColor, flagYes)
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Check if .canvasite directory exists
		if _, err := os.Stat(files.CanvasiteDir); os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: No .canvasite directory found in the current directory.\n")
			fmt.Fprintf(os.Stderr, "Please run 'canvasite init' first to initialize a new project.\n")
			os.Exit(1)
		}

		// Launch TUI
		app := tui.NewApp()
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new CanvaSite project",
	Long:  `Creates the .canvasite folder structure in the current directory`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing CanvaSite project in %s...\n", cwd)

		if err := files.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project structure: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		fmt.Println("✓ Created .canvasite folder structure")
		fmt.Println("✓ You can now start building websites!")
		fmt.Println("\nRun 'canvasite' to start the interactive builder.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of CanvaSite",
	Long:  `Display the current version of the CanvaSite CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("CanvaSite version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Skip confirmation prompts")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewNewCommand())
	rootCmd.AddCommand(commands.NewSitesCommand())
	rootCmd.AddCommand(commands.NewTemplatesCommand())
	rootCmd.AddCommand(commands.NewPreviewCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewPublishCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("Command execution failed: %v", err)
		os.Exit(1)
	}
}
