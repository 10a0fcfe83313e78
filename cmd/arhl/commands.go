package main

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/RMahshie/arhl/internal/config"
	"github.com/RMahshie/arhl/internal/engine"
	"github.com/RMahshie/arhl/internal/estimation"
	"github.com/RMahshie/arhl/internal/render"
	"github.com/RMahshie/arhl/pkg/models"
)

type reportFlags struct {
	sex    string
	age    float64
	format string
	file   string
}

func (f *reportFlags) register(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	flags.StringVar(&f.sex, "sex", string(cfg.Defaults.Sex), "Patient sex: male or female")
	flags.Float64Var(&f.age, "age", cfg.Defaults.Age, "Patient age in years (clamped to 20-80)")
	flags.StringVar(&f.format, "format", "text", "Output format: text, md or json")
}

func newEstimateCmd(cfg *config.Config) *cobra.Command {
	f := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Print population median and 95th percentile thresholds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, f, nil)
		},
	}
	f.register(cmd, cfg)
	return cmd
}

func newCompareCmd(cfg *config.Config) *cobra.Command {
	f := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a patient audiogram against population norms",
		Long: `Compare a patient audiogram against population norms.

Thresholds come from a YAML file (--file) and/or repeated --threshold
FREQ=DB flags; flags win over the file. --sex and --age, when given,
override the values in the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := &audiogramFile{}
			if f.file != "" {
				loaded, err := loadAudiogram(f.file)
				if err != nil {
					return exitError(2, "failed to load audiogram: %v", err)
				}
				in = loaded
			}
			if in.Sex != "" && !cmd.Flags().Changed("sex") {
				f.sex = in.Sex
			}
			if in.Age != nil && !cmd.Flags().Changed("age") {
				f.age = *in.Age
			}

			overrides, err := cmd.Flags().GetStringToString("threshold")
			if err != nil {
				return err
			}
			raw, err := mergeThresholds(in.Thresholds, overrides)
			if err != nil {
				return exitError(2, "%v", err)
			}
			thresholds, err := estimation.ParseThresholds(raw)
			if err != nil {
				return exitError(2, "invalid thresholds: %v", err)
			}
			return runReport(cmd, f, thresholds)
		},
	}
	f.register(cmd, cfg)
	cmd.Flags().StringVar(&f.file, "file", "", "YAML audiogram file")
	cmd.Flags().StringToString("threshold", nil, "Patient threshold as FREQ=DB, e.g. --threshold 2k=35 (may be repeated)")
	return cmd
}

func newClassifyCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "classify <dB>",
		Short: "Grade a threshold on the ASHA scale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return exitError(2, "invalid threshold %q: must be a number", args[0])
			}
			res, err := estimation.NewEstimationService().Classify(cmd.Context(), db)
			if err != nil {
				return exitError(2, "%v", err)
			}
			if format == string(render.FormatJSON) {
				out, err := render.JSON(res)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), out)
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Label)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")
	return cmd
}

func newScaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale",
		Short: "Print the ASHA degree of hearing loss scale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bands := estimation.NewEstimationService().Scale(cmd.Context())
			_, err := fmt.Fprint(cmd.OutOrStdout(), render.Scale(bands))
			return err
		},
	}
}

func runReport(cmd *cobra.Command, f *reportFlags, thresholds engine.PatientThresholds) error {
	format, err := render.ParseFormat(f.format)
	if err != nil {
		return exitError(2, "%v", err)
	}
	sex, err := engine.ParseSex(f.sex)
	if err != nil {
		return exitError(2, "%v", err)
	}

	ctx := cmd.Context()
	svc := estimation.NewEstimationService()
	var report *models.Report
	if thresholds == nil {
		report, err = svc.Estimate(ctx, sex, f.age)
	} else {
		report, err = svc.Compare(ctx, sex, f.age, thresholds)
	}
	if err != nil {
		return exitError(2, "%v", err)
	}
	log.Debug().Str("reportID", report.ID).Str("format", string(format)).Msg("Rendering report")

	out, err := render.Report(report, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
