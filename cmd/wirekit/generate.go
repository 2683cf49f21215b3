package main

import (
	"errors"
	"fmt"

	"github.com/dogmatiq/wirekit/gen"
	"github.com/dogmatiq/wirekit/marshaler"
	"github.com/dogmatiq/wirekit/schema"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// report is the JSON document produced by --report.
type report struct {
	Emitted       []string        `json:"emitted"`
	SkippedFields int             `json:"skipped_fields"`
	Failed        []reportFailure `json:"failed,omitempty"`
}

type reportFailure struct {
	Target string `json:"target"`
	Error  string `json:"error"`
}

func newGenerateCommand() *cobra.Command {
	var (
		configFile    string
		descriptorSet string
		outputDir     string
		packageName   string
		packages      []string
		types         []string
		withReport    bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "generate message types from a descriptor set",
		Long: `Generate one Go source unit per selected message or enum.

The selection, output location and package name may be given on the command
line or in a TOML manifest; flags take precedence over the manifest.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs := afero.NewOsFs()

			var c gen.Config
			if configFile != "" {
				var err error
				if c, err = gen.LoadConfig(fs, configFile); err != nil {
					return err
				}
			}

			if descriptorSet != "" {
				c.DescriptorSet = descriptorSet
			}
			if outputDir != "" {
				c.OutputDir = outputDir
			}
			if packageName != "" {
				c.PackageName = packageName
			}
			if len(packages) != 0 {
				c.Packages = packages
			}
			if len(types) != 0 {
				c.Types = types
			}

			if c.DescriptorSet == "" {
				return errors.New("no descriptor set given, use --descriptor-set or a manifest")
			}

			fds, err := gen.LoadDescriptorSet(fs, c.DescriptorSet)
			if err != nil {
				return err
			}

			g := gen.NewGenerator(
				append(c.Options(), gen.WithFS(fs))...,
			)

			rep, err := g.Run(cmd.Context(), schema.NewIndex(fds))
			if err != nil {
				return err
			}

			for _, n := range rep.Emitted {
				logrus.WithField("target", n).Debug("unit generated")
			}
			for _, f := range rep.Failed {
				logrus.WithField("target", f.Name).WithError(f.Err).Error("target failed")
			}

			logrus.WithFields(logrus.Fields{
				"emitted":        len(rep.Emitted),
				"failed":         len(rep.Failed),
				"skipped_fields": rep.SkippedFields,
			}).Info("generation complete")

			if withReport {
				if err := writeReport(cmd, rep); err != nil {
					return err
				}
			}

			if !rep.Ok() {
				return fmt.Errorf(
					"%d of %d targets failed",
					len(rep.Failed),
					len(rep.Emitted)+len(rep.Failed),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "path of a TOML generation manifest")
	cmd.Flags().StringVarP(&descriptorSet, "descriptor-set", "d", "", "path of the (optionally gzipped) descriptor set")
	cmd.Flags().StringVarP(&outputDir, "out", "o", "", "directory to write generated units to")
	cmd.Flags().StringVar(&packageName, "package", "", "Go package name declared by the generated units")
	cmd.Flags().StringSliceVar(&packages, "packages", nil, "generate only types declared in these schema packages")
	cmd.Flags().StringSliceVar(&types, "types", nil, "generate only these named types")
	cmd.Flags().BoolVar(&withReport, "report", false, "write a JSON run report to stdout")

	return cmd
}

func writeReport(cmd *cobra.Command, rep *gen.Report) error {
	r := report{
		Emitted:       make([]string, len(rep.Emitted)),
		SkippedFields: rep.SkippedFields,
	}
	for i, n := range rep.Emitted {
		r.Emitted[i] = string(n)
	}
	for _, f := range rep.Failed {
		r.Failed = append(r.Failed, reportFailure{
			Target: f.Name,
			Error:  f.Err.Error(),
		})
	}

	data, err := marshaler.NewJSON[report]().Marshal(r)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
