package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/vsinha/demandplan/pkg/application/dto"
)

// Config holds configuration for report rendering
type Config struct {
	Format string
	Writer io.Writer
}

// Render writes a planning report in the configured format
func Render(result *dto.PlanResult, config Config) error {
	w := config.Writer
	if w == nil {
		w = os.Stdout
	}

	switch config.Format {
	case "", "text":
		return renderText(w, result)
	case "json":
		return renderJSON(w, result)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func renderText(w io.Writer, result *dto.PlanResult) error {
	fmt.Fprintf(w, "📊 Demand Plan (window=%dd, horizon=%dd)\n", result.WindowDays, result.HorizonDays)
	fmt.Fprintf(w, "=========================================\n\n")

	if len(result.Snapshot) > 0 {
		fmt.Fprintf(w, "📦 Inventory Snapshot:\n")
		fmt.Fprintf(w, "%-20s %-8s %-10s %-10s %-10s\n",
			"Product", "Stock", "Cost", "Price", "Daily Avg")
		fmt.Fprintf(w, "%-20s %-8s %-10s %-10s %-10s\n",
			"--------------------", "--------", "----------", "----------", "----------")
		for _, p := range result.Snapshot {
			fmt.Fprintf(w, "%-20s %-8d %-10s %-10s %-10d\n",
				p.Name, p.Stock, p.UnitCost.StringFixed(2), p.UnitPrice.StringFixed(2), p.DailyAverage)
		}
		fmt.Fprintln(w)
	}

	if len(result.TopDemand) > 0 {
		fmt.Fprintf(w, "🔥 Top Demanded Products:\n")
		for i, rank := range result.TopDemand {
			fmt.Fprintf(w, "%d) %s - forecast/daily=%d, stock=%d\n",
				i+1, rank.Name, rank.DailyAverage, rank.Stock)
		}
		fmt.Fprintln(w)
	}

	if len(result.Reorders) > 0 {
		fmt.Fprintf(w, "📋 Reorder Recommendations:\n")
		fmt.Fprintf(w, "%-20s %-10s %-12s\n", "Product", "Qty", "Est. Cost")
		fmt.Fprintf(w, "%-20s %-10s %-12s\n", "--------------------", "----------", "------------")
		for _, entry := range result.Reorders {
			fmt.Fprintf(w, "%-20s %-10d %-12s\n",
				entry.Name, entry.NeededQty, entry.EstCost.StringFixed(2))
		}
		fmt.Fprintln(w)
	} else {
		fmt.Fprintf(w, "📋 No items to reorder.\n\n")
	}

	fmt.Fprintf(w, "💰 Expected profit over next %d days (sellable portion only): %s\n",
		result.HorizonDays, result.ExpectedProfit.StringFixed(2))

	for _, history := range result.Histories {
		fmt.Fprintf(w, "\n📈 Sales history for %s (oldest -> today):\n", history.Name)
		for _, day := range history.Days {
			fmt.Fprintf(w, "day %3d : %d\n", day.Day, day.Quantity)
		}
	}

	return nil
}

func renderJSON(w io.Writer, result *dto.PlanResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
