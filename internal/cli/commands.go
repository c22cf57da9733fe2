package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

// boundedCommand connects the k closest pairs and reports the three largest circuits.
func (c *CLI) boundedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bounded",
		Short: "Connect the k closest pairs and multiply the three largest circuit sizes",
		Long: `Examine the k closest pairs of junction boxes in order, connecting each
pair unless it is already in the same circuit. Every examined pair counts
toward k. Prints the product of the sizes of the three largest circuits.

Without --budget (or a configured budget) k is 10 for a 20-box input and
1000 otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := c.loadPoints(cmd.Context())
			if err != nil {
				return err
			}
			return c.runBounded(cmd.Context(), pts)
		},
	}
	cmd.Flags().IntP("budget", "k", defaultBudget, "number of closest pairs to examine")
	return cmd
}

// singleCommand connects pairs until every box is in one circuit.
func (c *CLI) singleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "single",
		Short: "Connect until one circuit remains and report the final pair",
		Long: `Keep connecting the closest unconnected pairs until every junction box is
in a single circuit. Prints the product of the X coordinates of the pair
whose connection completed it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := c.loadPoints(cmd.Context())
			if err != nil {
				return err
			}
			return c.runSingle(cmd.Context(), pts)
		},
	}
}

// solveCommand runs both policies over the same input.
func (c *CLI) solveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run both the bounded and the single-circuit policy",
		Long: `Run the bounded policy, then the single-circuit policy, on the same input.
The single-circuit answer is printed even when the bounded policy ends with
fewer than three circuits; both failures are reported.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := c.loadPoints(cmd.Context())
			if err != nil {
				return err
			}
			// Fewer than three circuits does not prevent the single-circuit
			// answer; an interrupt does.
			boundedErr := c.runBounded(cmd.Context(), pts)
			if boundedErr != nil {
				if cmd.Context().Err() != nil {
					return boundedErr
				}
				loggerFromContext(cmd.Context()).Warn("Bounded policy failed", "err", boundedErr)
			}
			return errors.Join(boundedErr, c.runSingle(cmd.Context(), pts))
		},
	}
	cmd.Flags().IntP("budget", "k", defaultBudget, "number of closest pairs to examine in the bounded policy")
	return cmd
}
