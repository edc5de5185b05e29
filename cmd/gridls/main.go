// Command gridls arranges names in columns that fit the terminal, like a
// multi-column file listing. Names come from arguments, standard input,
// or a directory.
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quillback/termgrid"
)

var (
	maxWidth    int
	across      bool
	separator   string
	spacing     int
	rightAlign  bool
	dirPath     string
	interactive bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridls [names...]",
		Short: "arrange names in columns that fit the terminal",
		Long: "gridls lays out names in as few rows as fit the available width.\n" +
			"With no arguments it reads one name per line from standard input;\n" +
			"with --dir it lists a directory's entries instead.",
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().IntVar(&maxWidth, "width", 0, "maximum width in columns (0 = detect terminal width)")
	rootCmd.Flags().BoolVar(&across, "across", false, "fill rows left to right instead of columns top to bottom")
	rootCmd.Flags().StringVar(&separator, "separator", "", "literal separator between columns (overrides --spacing)")
	rootCmd.Flags().IntVar(&spacing, "spacing", 2, "spaces between columns")
	rootCmd.Flags().BoolVar(&rightAlign, "right", false, "right-align every cell")
	rootCmd.Flags().StringVar(&dirPath, "dir", "", "lay out the entries of a directory")
	rootCmd.Flags().BoolVar(&interactive, "interactive", false, "re-fit the grid live as the terminal resizes")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gridls:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	names, err := collectNames(args)
	if err != nil {
		return err
	}

	if interactive {
		return runInteractive(names)
	}

	width := maxWidth
	if width == 0 {
		width = terminalWidth()
	}

	grid := buildGrid(names)
	display, ok := grid.FitIntoWidth(width)
	if !ok {
		// Nothing fits the requested width; print one name per line.
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	fmt.Print(display)
	return nil
}

// buildGrid turns names into a grid configured by the command flags.
func buildGrid(names []string) *termgrid.Grid {
	filling := termgrid.SpaceFill(spacing)
	if separator != "" {
		filling = termgrid.TextFill(separator)
	}
	direction := termgrid.ColumnMajor
	if across {
		direction = termgrid.RowMajor
	}

	grid := termgrid.New(filling, direction)
	grid.Reserve(len(names))
	for _, name := range names {
		cell := termgrid.NewCell(name)
		if rightAlign {
			cell.Alignment = termgrid.AlignRight
		}
		grid.Add(cell)
	}
	return grid
}

func collectNames(args []string) ([]string, error) {
	if dirPath != "" {
		entries, err := os.ReadDir(dirPath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", dirPath, err)
		}
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
		sort.Strings(names)
		return names, nil
	}

	if len(args) > 0 {
		return args, nil
	}

	var names []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		names = append(names, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return names, nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
