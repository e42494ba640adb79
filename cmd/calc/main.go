package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/graeme-hill/calcstuff-go/lib"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7C3AED")).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

func main() {
	cmd := &cli.Command{
		Name:      "calc",
		Usage:     "Evaluate arithmetic expressions with standard operator precedence",
		ArgsUsage: "[expression]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Evaluate expressions from a file, one per line",
			},
		},
		Action: run,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := cmd.Run(ctx, os.Args); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	if filePath := cmd.String("file"); filePath != "" {
		return runBatch(filePath)
	}

	if cmd.Args().Len() > 0 {
		expression := strings.Join(cmd.Args().Slice(), " ")
		result, err := lib.Eval(expression)
		if err != nil {
			return err
		}
		fmt.Println(formatResult(result))
		return nil
	}

	return repl()
}

func runBatch(filePath string) error {
	batch, err := lib.ReadBatchFromFile(filePath)
	if err != nil {
		return err
	}

	for _, result := range batch.Results {
		if result.Err != nil {
			fmt.Printf("%s = %s\n", result.Expression, errStyle.Render(result.Err.Error()))
			continue
		}
		fmt.Printf("%s = %s\n", result.Expression, resultStyle.Render(formatResult(result.Value)))
	}
	return nil
}

func repl() error {
	fmt.Println(bannerStyle.Render(banner()))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(promptStyle.Render("calc> "))
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		expression := strings.TrimSpace(scanner.Text())
		if expression == "" {
			fmt.Println(mutedStyle.Render("Please enter an expression"))
			continue
		}
		if expression == "exit" || expression == "quit" {
			fmt.Println(mutedStyle.Render("Goodbye!"))
			return nil
		}

		result, err := lib.Eval(expression)
		if err != nil {
			fmt.Println(errStyle.Render("Error: " + err.Error()))
			continue
		}
		fmt.Printf("%s %s\n", resultStyle.Render("="), resultStyle.Render(formatResult(result)))
	}
}

func banner() string {
	return strings.Join([]string{
		"CALCULATOR",
		"",
		"Operators: + - * / and parentheses",
		"Examples:  5 + 3 * 2",
		"           (10 + 20) * 3",
		"           ((5 + 3) * 2) - 10 / 5",
		"",
		"Type 'exit' or 'quit' to leave",
	}, "\n")
}

// formatResult prints integral results without a decimal part, like the
// shortest float representation does for whole numbers.
func formatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
