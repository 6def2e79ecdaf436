package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"entity-annotator/internal/dialect"
	"entity-annotator/internal/model"
	"entity-annotator/internal/naming"
)

func newReservedCommand(global *globalOptions) *cobra.Command {
	var jhiPrefix string

	cmd := &cobra.Command{
		Use:   "reserved <dialect> <name>...",
		Short: "Check names against a dialect's reserved keywords",
		Long: `Print, for each name, whether its snake_case form is a reserved keyword of
the dialect and the column name that @column(<name>) would produce.

Known dialects: mysql, mariadb, postgresql, oracle, mssql, h2.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.loadConfig()
			if err != nil {
				return err
			}

			prefix := cfg.Prefix()
			if cmd.Flags().Changed("jhi-prefix") {
				prefix = jhiPrefix
			}

			resolver := dialect.Builtin().With(cfg.ExtraReservedWords)
			d := model.Dialect(args[0]).Normalize()

			if resolver.Len(d) == 0 {
				global.logger(cmd).Warn("dialect %q has no reserved keywords", d)
			}

			deriver := naming.NewDeriver(resolver)
			w := cmd.OutOrStdout()

			for _, name := range args[1:] {
				snake := naming.SnakeCase(name)
				column, warn := deriver.ColumnName(name, naming.SnakeCase(prefix), d)

				status := "free"
				if resolver.IsReserved(snake, d) {
					status = "reserved"
				}

				fmt.Fprintf(w, "%s\t%s\t%s\n", name, status, column)

				if warn != nil {
					global.logger(cmd).Warn("%s", warn.String())
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&jhiPrefix, "jhi-prefix", "", "Prefix for reserved names (defaults to the configured jhiPrefix)")

	return cmd
}
