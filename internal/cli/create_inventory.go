package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
	"github.com/fleetforge/migration-compass/internal/inventory"
)

type CreateInventoryOptions struct {
	GlobalOptions

	Filename string
}

func DefaultCreateInventoryOptions() *CreateInventoryOptions {
	return &CreateInventoryOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdCreateInventory() *cobra.Command {
	o := DefaultCreateInventoryOptions()
	cmd := &cobra.Command{
		Use:     "inventory NAME",
		Short:   "Create an inventory from a fleet snapshot file",
		Example: "create inventory prod-fleet -f fleet.json\ncreate inventory prod-fleet -f fleet.xlsx",
		Args:    cobra.ExactArgs(1),
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

func (o *CreateInventoryOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Filename, "filename", "f", o.Filename, "Path to the fleet snapshot (.json or .xlsx)")
}

func (o *CreateInventoryOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	if o.Filename == "" {
		return fmt.Errorf("a fleet snapshot file is required")
	}

	switch strings.ToLower(filepath.Ext(o.Filename)) {
	case ".json", ".xlsx":
	default:
		return fmt.Errorf("unsupported snapshot format %q: expected .json or .xlsx", filepath.Ext(o.Filename))
	}
	return nil
}

func (o *CreateInventoryOptions) Run(ctx context.Context, args []string) error {
	content, err := os.ReadFile(o.Filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", o.Filename, err)
	}

	form := api.InventoryForm{Name: args[0]}
	switch strings.ToLower(filepath.Ext(o.Filename)) {
	case ".xlsx":
		servers, err := inventory.ParseFleetWorkbook(content)
		if err != nil {
			return fmt.Errorf("failed to parse fleet workbook: %w", err)
		}
		form.Servers = servers
	default:
		parsed, err := inventory.ParseSnapshot(content)
		if err != nil {
			return fmt.Errorf("failed to parse fleet snapshot: %w", err)
		}
		form.Servers = parsed.Servers
		if form.Name == "" {
			form.Name = parsed.Name
		}
	}

	if err := inventory.ValidateForm(form); err != nil {
		return err
	}

	created, err := o.Client().CreateInventory(ctx, form)
	if err != nil {
		return fmt.Errorf("failed to create inventory: %w", err)
	}

	fmt.Printf("%s %s (%d servers)\n", color.GreenString("inventory created:"), created.ID, len(created.Servers))
	return nil
}
