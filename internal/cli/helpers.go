package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Global output flags, set once from the root command's persistent flags.
var (
	quiet       bool
	noColor     bool
	skipConfirm bool
)

// SetGlobalFlags wires the root command's --quiet, --no-color, and --yes
// flags into this package.
func SetGlobalFlags(q, nc, sc bool) {
	quiet = q
	noColor = nc
	skipConfirm = sc
}

// Confirm asks the user a yes/no question on stdin. With --yes it answers
// yes without prompting, so destructive commands stay scriptable.
func Confirm(prompt string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}
	fmt.Print(prompt + suffix)

	response, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))
	if response == "" {
		return defaultYes, nil
	}
	return response == "y" || response == "yes", nil
}

// PrintSuccess reports a completed action on stdout. Quiet mode drops it.
func PrintSuccess(format string, args ...interface{}) {
	if quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if noColor {
		fmt.Printf("OK: %s\n", msg)
		return
	}
	fmt.Printf("✓ %s\n", msg)
}

// PrintInfo reports progress on stdout. Quiet mode drops it.
func PrintInfo(format string, args ...interface{}) {
	if quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if noColor {
		fmt.Printf("INFO: %s\n", msg)
		return
	}
	fmt.Printf("ℹ %s\n", msg)
}

// PrintWarning goes to stderr and is never silenced by quiet mode.
func PrintWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if noColor {
		fmt.Fprintf(os.Stderr, "WARNING: %s\n", msg)
		return
	}
	fmt.Fprintf(os.Stderr, "⚠ %s\n", msg)
}

// PrintError goes to stderr and is never silenced by quiet mode.
func PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if noColor {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", msg)
		return
	}
	fmt.Fprintf(os.Stderr, "✗ %s\n", msg)
}
