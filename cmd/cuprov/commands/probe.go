package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/cuprov/internal/app"
)

func (c *CLI) newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Inspect the machine's CUDA installation without building",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Probe(cmd.Context())
			if err != nil {
				return err
			}
			renderReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

func renderReport(w io.Writer, report *app.Report) {
	out := termenv.NewOutput(w, termenv.WithProfile(colorProfile()))

	label := func(s string) string {
		return out.String(fmt.Sprintf("%-16s", s)).Bold().String()
	}
	value := func(s string) string {
		if s == "" {
			return out.String("not found").Foreground(out.Color("3")).String()
		}
		return s
	}

	fmt.Fprintln(out, label("runtime")+value(report.RuntimeLibrary))
	if report.RuntimeLibrary != "" {
		fmt.Fprintln(out, label("version")+report.Version.String())
	}
	fmt.Fprintln(out, label("driver")+value(report.Driver.Library))
	fmt.Fprintln(out, label("nvidia-smi")+value(report.Driver.DiagnosticSMI))
	fmt.Fprintln(out, label("nvcc")+value(report.Toolchain.Nvcc))
	fmt.Fprintln(out, label("host compiler")+value(report.Toolchain.HostCompiler))

	if len(report.Devices) > 0 {
		caps := make([]string, len(report.Devices))
		for i, c := range report.Devices {
			caps[i] = c.String()
		}
		fmt.Fprintln(out, label("devices")+strings.Join(caps, ", "))
	} else {
		fmt.Fprintln(out, label("devices")+value(""))
	}

	for _, note := range report.Notes {
		fmt.Fprintln(out, out.String("! "+note).Foreground(out.Color("1")).String())
	}
}

func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}
