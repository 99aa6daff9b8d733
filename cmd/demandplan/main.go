package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/vsinha/demandplan/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		productsFile = flag.String("products", "", "Path to products CSV file")
		salesFile    = flag.String("sales", "", "Path to sales CSV file")
		historyDays  = flag.Int("history-days", 30, "Sales history retention window in days")
		windowDays   = flag.Int("window", 7, "Moving average window in days")
		horizonDays  = flag.Int("horizon", 14, "Forecast horizon in days")
		topK         = flag.Int("top", 5, "Number of products in the demand ranking")
		showHistory  = flag.String("show-history", "", "Print retained history for one product")
		format       = flag.String("format", "text", "Output format: text, json")
		verbose      = flag.Bool("verbose", false, "Enable verbose output")
		help         = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	config := commands.Config{
		ProductsFile:   *productsFile,
		SalesFile:      *salesFile,
		HistoryDays:    *historyDays,
		WindowDays:     *windowDays,
		HorizonDays:    *horizonDays,
		TopK:           *topK,
		HistoryProduct: *showHistory,
		Format:         *format,
		Verbose:        *verbose,
		Help:           *help,
	}

	cmd := commands.NewPlanCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
