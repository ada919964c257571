package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
	"github.com/spf13/cobra"
)

// systemCapability is the administrator identity used by operator commands.
var systemCapability = domain.NewCapability("system", domain.RoleAdmin)

func recomputeCmd() *cobra.Command {
	var safeID string

	cmd := &cobra.Command{
		Use:   "recompute",
		Short: "Recompute cached safe balances from their movements",
		Long: `Recompute folds every movement of a safe into its cached balance.
Without --safe every safe is repaired. Running it repeatedly is harmless.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			svc, closeFn, err := initServices(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			if safeID != "" {
				balance, err := svc.Ledger.RecomputeBalance(ctx, systemCapability, safeID)
				if err != nil {
					return err
				}
				cmd.Printf("%s\t%s\n", safeID, balance.StringFixed(2))
				return nil
			}

			balances, err := svc.Ledger.RecomputeAllBalances(ctx, systemCapability)
			if err != nil {
				return err
			}

			ids := make([]string, 0, len(balances))
			for id := range balances {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			for _, id := range ids {
				balance := balances[id]
				fmt.Fprintf(w, "%s\t%s\n", id, balance.StringFixed(2))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&safeID, "safe", "", "only recompute this safe")
	return cmd
}
