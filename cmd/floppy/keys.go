package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/floppy-monster/internal/config"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the key bindings of the active configuration",
	Long: `Print the key bindings from the configuration that 'floppy play'
would use (honours --config and the default search order).`,
	Args: cobra.NoArgs,
	Run:  runKeys,
}

func runKeys(cmd *cobra.Command, args []string) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Key bindings (%s)\n", source)
	fmt.Println(strings.Repeat("=", 40))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	rows := []struct {
		action string
		keys   []string
	}{
		{"Jump", cfg.Keys.Jump},
		{"Restart", cfg.Keys.Restart},
		{"Start / Restart button", cfg.Keys.Confirm},
		{"Run history", cfg.Keys.History},
		{"Quit", cfg.Keys.Quit},
	}
	for _, r := range rows {
		keys := strings.Join(r.keys, ", ")
		if keys == "" {
			keys = "(unbound)"
		}
		fmt.Fprintf(w, "  %s\t%s\n", r.action, keys)
	}
	mouse := "off"
	if cfg.Keys.Mouse {
		mouse = "primary click jumps and presses on-screen buttons"
	}
	fmt.Fprintf(w, "  Mouse\t%s\n", mouse)
	w.Flush()
}
