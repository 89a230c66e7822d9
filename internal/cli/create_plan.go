package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
)

type CreatePlanOptions struct {
	GlobalOptions

	Inventory string
	StartDate string
}

func DefaultCreatePlanOptions() *CreatePlanOptions {
	return &CreatePlanOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdCreatePlan() *cobra.Command {
	o := DefaultCreatePlanOptions()
	cmd := &cobra.Command{
		Use:     "plan",
		Short:   "Build a migration plan for a stored inventory",
		Example: "create plan --inventory 0194fdc2-fa2f-4cc0-81d3-ff12045b73c8 --start-date 2026-01-05",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *CreatePlanOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVar(&o.Inventory, "inventory", o.Inventory, "Id of the inventory to plan against")
	fs.StringVar(&o.StartDate, "start-date", o.StartDate, "Project start date (2006-01-02). Defaults to today")
}

func (o *CreatePlanOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	if _, err := parseUUID(o.Inventory); err != nil {
		return fmt.Errorf("invalid inventory id %q: %w", o.Inventory, err)
	}

	if o.StartDate != "" {
		if _, err := time.Parse("2006-01-02", o.StartDate); err != nil {
			return fmt.Errorf("invalid start date %q: expected 2006-01-02", o.StartDate)
		}
	}
	return nil
}

func (o *CreatePlanOptions) Run(ctx context.Context, args []string) error {
	plan, err := o.Client().CreatePlan(ctx, api.PlanForm{
		InventoryID: o.Inventory,
		StartDate:   o.StartDate,
	})
	if err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}

	summary := plan.Result.ProjectSummary
	fmt.Printf("%s %s (%d servers, %.1fh effort, %s)\n",
		color.GreenString("plan created:"), plan.ID, summary.TotalServers, summary.TotalEffort, summary.Duration)
	for _, warning := range plan.Result.Warnings {
		fmt.Printf("%s %s: %s\n", color.YellowString("excluded"), warning.ServerID, warning.Message)
	}
	return nil
}
