package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"entity-annotator/internal/descriptor"
	"entity-annotator/internal/diagnostic"
	"entity-annotator/internal/dialect"
	"entity-annotator/internal/logging"
	"entity-annotator/internal/model"
	"entity-annotator/internal/pipeline"
)

type annotateOptions struct {
	*globalOptions

	out       string
	dialect   string
	jhiPrefix string
	keepGoing bool
	workers   int
}

func newAnnotateCommand(global *globalOptions) *cobra.Command {
	opts := &annotateOptions{globalOptions: global}

	cmd := &cobra.Command{
		Use:   "annotate <file>...",
		Short: "Annotate entity description files",
		Long: `Load entity descriptions (YAML or JSON), validate and default their
annotations, derive column names and write the annotated descriptions as YAML.

Entities that fail validation stop the run unless --keep-going is set, in
which case they are left out of the output and the command exits non-zero.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the result to this file instead of stdout")
	cmd.Flags().StringVar(&opts.dialect, "dialect", "", "Default prodDatabaseType for entities without one")
	cmd.Flags().StringVar(&opts.jhiPrefix, "jhi-prefix", "", "Default jhiPrefix for entities without one")
	cmd.Flags().BoolVar(&opts.keepGoing, "keep-going", false, "Skip entities that fail validation")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Entities processed concurrently (0 = number of CPUs)")

	return cmd
}

func (o *annotateOptions) run(cmd *cobra.Command, paths []string) error {
	log := o.logger(cmd)

	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("dialect") {
		cfg.Dialect = model.Dialect(o.dialect).Normalize()
	}

	if cmd.Flags().Changed("jhi-prefix") {
		cfg.JhiPrefix = model.String(o.jhiPrefix)
	}

	if cmd.Flags().Changed("keep-going") {
		cfg.KeepGoing = o.keepGoing
	}

	var entities []*model.Entity

	for _, path := range paths {
		doc, err := descriptor.LoadFile(path)
		if err != nil {
			return err
		}

		doc.ApplyDefaults(descriptor.Defaults{JhiPrefix: cfg.JhiPrefix, Dialect: cfg.Dialect})
		log.Verbose("Loaded %d entities from %s", len(doc.Entities), path)

		entities = append(entities, doc.Entities...)
	}

	resolver := dialect.Builtin().With(cfg.ExtraReservedWords)
	p := pipeline.NewDefault(pipeline.Config{Resolver: resolver})

	results, runErr := p.RunAll(context.Background(), entities, pipeline.BatchOptions{
		Workers:   o.workers,
		KeepGoing: cfg.KeepGoing,
	})

	out := &descriptor.Document{}

	var diags diagnostic.Diagnostics

	for _, res := range results {
		if res == nil {
			continue
		}

		diags.Merge(res.Diagnostics)

		if res.Entity.State == model.StateProcessed {
			out.Entities = append(out.Entities, res.Entity)
		}
	}

	logging.Report(log, diags)
	log.Verbose("%d errors, %d warnings", len(diags.Errors), len(diags.Warnings))

	if runErr != nil && !cfg.KeepGoing {
		return runErr
	}

	if err := o.write(cmd, out); err != nil {
		return err
	}

	log.Verbose("Annotated %d of %d entities", len(out.Entities), len(entities))

	if runErr != nil {
		return fmt.Errorf("%d of %d entities failed validation", len(entities)-len(out.Entities), len(entities))
	}

	return nil
}

func (o *annotateOptions) write(cmd *cobra.Command, doc *descriptor.Document) error {
	if o.out != "" {
		return descriptor.WriteFile(doc, o.out)
	}

	data, err := descriptor.Marshal(doc)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)

	return err
}
