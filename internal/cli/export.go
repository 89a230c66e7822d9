package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
)

var (
	legalReportFormats = []string{"csv", "xlsx"}
)

type ExportOptions struct {
	GlobalOptions

	Format string
	Output string
}

func DefaultExportOptions() *ExportOptions {
	return &ExportOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Format:        "csv",
	}
}

func NewCmdExport() *cobra.Command {
	o := DefaultExportOptions()
	cmd := &cobra.Command{
		Use:     "export plan/ID",
		Short:   "Export a plan report.",
		Example: "export plan/0194fdc2-fa2f-4cc0-81d3-ff12045b73c8 --format xlsx -o plan.xlsx",
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

func (o *ExportOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVar(&o.Format, "format", o.Format, "Report format. One of: (csv, xlsx).")
	fs.StringVarP(&o.Output, "output", "o", o.Output, "Destination file. Defaults to migration-plan-ID.FORMAT")
}

func (o *ExportOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	kind, id, err := parseAndValidateKindId(args[0])
	if err != nil {
		return err
	}
	if kind != PlanKind || id == nil {
		return fmt.Errorf("expected plan/ID, got %s", args[0])
	}

	if !funk.Contains(legalReportFormats, o.Format) {
		return fmt.Errorf("report format must be one of (csv, xlsx)")
	}
	return nil
}

func (o *ExportOptions) Run(ctx context.Context, args []string) error {
	_, id, err := parseAndValidateKindId(args[0])
	if err != nil {
		return err
	}

	report, err := o.Client().DownloadReport(ctx, *id, o.Format)
	if err != nil {
		return fmt.Errorf("failed to export plan: %w", err)
	}

	destination := o.Output
	if destination == "" {
		destination = fmt.Sprintf("migration-plan-%s.%s", id, o.Format)
	}

	if err := os.WriteFile(destination, report, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", destination, err)
	}

	fmt.Printf("%s %s\n", color.GreenString("report written:"), destination)
	return nil
}
