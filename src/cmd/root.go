package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dmsolve/truthtable/src/config"
	"github.com/dmsolve/truthtable/src/environment"
	"github.com/dmsolve/truthtable/src/explainer"
	"github.com/dmsolve/truthtable/src/lexicon"
	"github.com/dmsolve/truthtable/src/phraser"
	"github.com/dmsolve/truthtable/src/solver"
	"github.com/dmsolve/truthtable/src/tui"
)

var (
	configPath string
	outputFile string
	csvFile    string
	noExplain  bool
)

var rootCmd = &cobra.Command{
	Use:   "truthtable [expression]",
	Short: "Builds truth tables for propositional-logic expressions with localized operators",
	Long: `truthtable evaluates a propositional-logic expression written with
localized keyword operators over single-letter variables, prints a truth table
with every intermediate evaluation step as its own column, and optionally asks
a text-generation service for a natural-language explanation.

With an expression argument the table is printed once; without one an
interactive loop starts.`,
	Example:      `  truthtable "((A конъюнкция B) дизъюнкция C) импликация B"`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "truthtable.yaml", "path to the config file")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "file the result document is written to (overrides the config)")
	rootCmd.Flags().StringVar(&csvFile, "csv", "", "export every solved table as CSV to this file (overrides the config)")
	rootCmd.Flags().BoolVar(&noExplain, "no-explain", false, "skip the natural-language explanation")
}

// Execute runs the root command. It is the only thing main calls.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// the .env file is optional; the API key may come from the real
	// environment instead
	_ = godotenv.Load()

	cfg := loadConfig()
	if outputFile != "" {
		cfg.ResultFile = outputFile
	}
	if csvFile != "" {
		cfg.CSVFile = csvFile
	}

	s := solver.New(buildExplainer(cfg), cfg.ResultFile, cfg.CSVFile)

	term := tui.New()
	term.EnableSpinner(environment.IsInteractive())

	if len(args) == 1 {
		return runOnce(term, s, args[0])
	}

	if !environment.IsInteractive() {
		return fmt.Errorf("no expression given and not running interactively, see `truthtable --help`")
	}
	return runLoop(term, s)
}

func loadConfig() *config.Config {
	cfg, err := config.LoadConfig(configPath)
	if os.IsNotExist(err) {
		return config.Default()
	}
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "path", configPath, "error", err)
		return config.Default()
	}
	return cfg
}

// buildExplainer returns nil when explanations are off, which the solver
// treats as "table only".
func buildExplainer(cfg *config.Config) solver.Explainer {
	if noExplain {
		return nil
	}

	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		slog.Info("GOOGLE_API_KEY is not set, explanations are disabled")
		return nil
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = explainer.DefaultEndpoint
	}

	return explainer.New(endpoint, cfg.Model, apiKey, http.DefaultTransport)
}

func runOnce(term *tui.TUI, s *solver.Solver, expression string) error {
	result, err := solve(term, s, expression)
	if err != nil {
		return err
	}

	term.Println(result.Document)
	return nil
}

func runLoop(term *tui.TUI, s *solver.Solver) error {
	printBanner(term)

	intros := phraser.New([]string{
		"Solving %s",
		"Let's work through %s",
		"Next up: %s",
		"Breaking down %s",
	})

	for {
		expression, err := term.ReadLine("\nEnter logical expression (or 'q' to quit): ")
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read user input: %w", err)
		}

		if strings.ToLower(expression) == "q" {
			break
		}
		if expression == "" {
			continue
		}

		term.Println(intros.Get(expression))

		result, err := solve(term, s, expression)
		if err != nil {
			term.Printf("Error: %v\n", err)
			continue
		}

		term.Println("\nResult:")
		term.Println(result.Document)
	}

	term.Println(s.Report().Summary())
	return nil
}

func solve(term *tui.TUI, s *solver.Solver, expression string) (*solver.Result, error) {
	var result *solver.Result
	err := term.WithSpinner("solving", func() error {
		var err error
		result, err = s.Solve(expression)
		return err
	})
	return result, err
}

func printBanner(term *tui.TUI) {
	term.Println("Discrete Mathematics Expression Solver")
	term.Println("\nAvailable operators:")
	for _, entry := range lexicon.Entries() {
		term.Printf("- %s (%s)\n", entry.Phrase, entry.Tag)
	}
	term.Println("\nExample: ((A конъюнкция B) дизъюнкция C) импликация B")
}
