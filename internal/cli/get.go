package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"sigs.k8s.io/yaml"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
	"github.com/fleetforge/migration-compass/internal/client"
)

const (
	jsonFormat = "json"
	yamlFormat = "yaml"
)

var (
	legalOutputTypes = []string{jsonFormat, yamlFormat}
)

type GetOptions struct {
	GlobalOptions

	Output    string
	Inventory string
}

func DefaultGetOptions() *GetOptions {
	return &GetOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdGet() *cobra.Command {
	o := DefaultGetOptions()
	cmd := &cobra.Command{
		Use:   "get (TYPE | TYPE/ID)",
		Short: "Display one or many resources.",
		Args:  cobra.ExactArgs(1),
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

func (o *GetOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
	fs.StringVar(&o.Inventory, "inventory", o.Inventory, "Only list plans built from this inventory id")
}

func (o *GetOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	return nil
}

func (o *GetOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	_, _, err := parseAndValidateKindId(args[0])
	if err != nil {
		return err
	}

	if len(o.Output) > 0 && !funk.Contains(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}

	return nil
}

func (o *GetOptions) Run(ctx context.Context, args []string) error {
	c := o.Client()

	kind, id, err := parseAndValidateKindId(args[0])
	if err != nil {
		return err
	}

	var resource interface{}
	switch {
	case kind == InventoryKind && id != nil:
		resource, err = c.GetInventory(ctx, *id)
	case kind == InventoryKind && id == nil:
		resource, err = c.ListInventories(ctx, "")
	case kind == PlanKind && id != nil:
		resource, err = c.GetPlan(ctx, *id)
	case kind == PlanKind && id == nil:
		resource, err = o.listPlans(ctx, c)
	default:
		return fmt.Errorf("unsupported resource kind: %s", kind)
	}
	if err != nil {
		if id == nil {
			return fmt.Errorf("listing %s: %w", plural(kind), err)
		}
		return fmt.Errorf("reading %s/%s: %w", kind, id, err)
	}

	switch o.Output {
	case jsonFormat:
		marshalled, err := json.Marshal(resource)
		if err != nil {
			return fmt.Errorf("marshalling resource: %w", err)
		}
		fmt.Printf("%s\n", string(marshalled))
		return nil
	case yamlFormat:
		marshalled, err := yaml.Marshal(resource)
		if err != nil {
			return fmt.Errorf("marshalling resource: %w", err)
		}
		fmt.Printf("%s\n", string(marshalled))
		return nil
	default:
		return printTable(resource)
	}
}

func (o *GetOptions) listPlans(ctx context.Context, c *client.Client) ([]api.Plan, error) {
	if o.Inventory == "" {
		return c.ListPlans(ctx, nil)
	}
	inventoryID, err := parseUUID(o.Inventory)
	if err != nil {
		return nil, fmt.Errorf("invalid inventory id %q: %w", o.Inventory, err)
	}
	return c.ListPlans(ctx, inventoryID)
}

func printTable(resource interface{}) error {
	table := tablewriter.NewWriter(os.Stdout)

	var err error
	switch r := resource.(type) {
	case []api.Inventory:
		err = printInventoriesTable(table, r...)
	case *api.Inventory:
		err = printInventoriesTable(table, *r)
	case []api.Plan:
		err = printPlansTable(table, r...)
	case *api.Plan:
		err = printPlansTable(table, *r)
	default:
		return fmt.Errorf("unknown resource type %T", resource)
	}
	if err != nil {
		return err
	}
	return table.Render()
}

func printInventoriesTable(table *tablewriter.Table, inventories ...api.Inventory) error {
	table.Header([]string{"ID", "Name", "Servers", "Created"})

	rows := make([][]string, 0, len(inventories))
	for _, inventory := range inventories {
		rows = append(rows, []string{
			inventory.ID,
			inventory.Name,
			strconv.Itoa(len(inventory.Servers)),
			inventory.CreatedAt,
		})
	}
	return table.Bulk(rows)
}

func printPlansTable(table *tablewriter.Table, plans ...api.Plan) error {
	table.Header([]string{"ID", "Inventory", "Start", "Duration", "Servers", "Effort (h)", "Expires"})

	rows := make([][]string, 0, len(plans))
	for _, plan := range plans {
		summary := plan.Result.ProjectSummary
		rows = append(rows, []string{
			plan.ID,
			plan.InventoryID,
			plan.StartDate,
			summary.Duration,
			strconv.Itoa(summary.TotalServers),
			fmt.Sprintf("%.1f", summary.TotalEffort),
			plan.ExpiresAt,
		})
	}
	return table.Bulk(rows)
}
