package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/coursegrid/internal/ctxlog"
	"github.com/specialistvlad/coursegrid/internal/discount"
	"github.com/specialistvlad/coursegrid/internal/walkthrough"
)

const (
	pricePrompt   = "Enter the price of the item: "
	percentPrompt = "Enter the discount percentage: "
)

// RunLists executes the list walkthrough and prints one line per step.
func (a *App) RunLists(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	steps := walkthrough.Default()
	if path := a.config.WalkthroughPath; path != "" {
		model, err := loaderFor(path).Load(ctx, path)
		if err != nil {
			return fmt.Errorf("failed to load walkthrough: %w", err)
		}
		steps = model.Steps
		a.logger.Debug("Walkthrough loaded from file.", "path", path, "steps", len(steps))
	}

	a.logger.Info("Running list walkthrough.", "steps", len(steps))
	snapshots, err := walkthrough.Run(ctx, steps)
	// Steps completed before a failure are still printed.
	for _, s := range snapshots {
		if _, werr := fmt.Fprintln(a.outW, s.String()); werr != nil {
			return werr
		}
	}
	if err != nil {
		return fmt.Errorf("walkthrough failed: %w", err)
	}

	a.logger.Info("List walkthrough finished.", "final", walkthrough.Final(snapshots))
	return nil
}

// RunDiscount prompts for a price and a discount percentage and prints the
// resulting price. Nothing is calculated unless both answers are valid.
func (a *App) RunDiscount(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Info("Running discount calculator.", "threshold", discount.Threshold)

	price, err := a.prompter.ReadFloat(ctx, pricePrompt)
	if err != nil {
		return fmt.Errorf("failed to read price: %w", err)
	}
	percent, err := a.prompter.ReadFloat(ctx, percentPrompt)
	if err != nil {
		return fmt.Errorf("failed to read discount percentage: %w", err)
	}

	q := discount.NewQuote(price, percent)
	a.logger.Debug("Discount calculated.", "price", q.Price, "percent", q.Percent, "final", q.Final, "applied", q.Applied)

	_, err = fmt.Fprintln(a.outW, q.String())
	return err
}
