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

	"github.com/urfave/cli/v3"

	"github.com/graeme-hill/calcstuff-go/story"
)

func main() {
	cmd := &cli.Command{
		Name:  "storygen",
		Usage: "Generate short stories with a local Ollama model",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML config file",
			},
			&cli.StringFlag{
				Name:  "model",
				Usage: "Ollama model name (overrides config)",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "Ollama base URL (overrides config)",
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

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	generator, err := story.NewGenerator(ctx, cfg)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)

	for {
		params := readParams(reader)

		fmt.Println()
		fmt.Println(strings.Repeat("=", 60))
		fmt.Printf("%s STORY\n", strings.ToUpper(params.Genre))
		fmt.Println(strings.Repeat("=", 60))
		fmt.Println()

		if _, err := generator.Stream(ctx, params, func(chunk string) {
			fmt.Print(chunk)
		}); err != nil {
			fmt.Fprintf(os.Stderr, "\nError generating story: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure Ollama is running and %s is installed (ollama pull %s).\n",
				cfg.Model, cfg.Model)
		}

		fmt.Println()
		fmt.Println(strings.Repeat("-", 60))

		if !askYesNo(reader, "Generate another story? (yes/no): ") {
			fmt.Println("Thank you for using Story Generator! Goodbye!")
			return nil
		}
	}
}

func loadConfig(cmd *cli.Command) (*story.Config, error) {
	cfg := story.DefaultConfig()
	if path := cmd.String("config"); path != "" {
		loaded, err := story.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if model := cmd.String("model"); model != "" {
		cfg.Model = model
	}
	if baseURL := cmd.String("base-url"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return cfg, nil
}

func readParams(reader *bufio.Reader) story.Params {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("STORY GENERATOR")
	fmt.Println(strings.Repeat("=", 60))

	count := 0
	for count <= 0 {
		n, err := strconv.Atoi(readLine(reader, "\nHow many characters in the story? "))
		if err != nil || n <= 0 {
			fmt.Println("Please enter a positive number")
			continue
		}
		count = n
	}

	characters := []string{}
	fmt.Printf("\nEnter %d character name(s):\n", count)
	for i := 0; i < count; i++ {
		name := readLine(reader, fmt.Sprintf("  Character %d: ", i+1))
		if name != "" {
			characters = append(characters, name)
		}
	}

	place := readLine(reader, "\nWhere does the story take place? ")

	fmt.Println("\nWhat type of story?")
	for i, genre := range story.Genres {
		fmt.Printf("  %d. %s\n", i+1, genre)
	}
	genre := story.NormalizeGenre(readLine(reader, fmt.Sprintf("Enter choice (1-%d): ", len(story.Genres))))

	return story.Params{
		Characters: characters,
		Place:      place,
		Genre:      genre,
	}
}

func readLine(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func askYesNo(reader *bufio.Reader, prompt string) bool {
	answer := strings.ToLower(readLine(reader, "\n"+prompt))
	return answer == "yes" || answer == "y"
}
