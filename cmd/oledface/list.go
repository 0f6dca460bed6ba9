package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/iancoleman/strcase"
	"github.com/spf13/cobra"

	"github.com/srlehn/oledface/face"
	"github.com/srlehn/oledface/surface"
)

func init() { rootCmd.AddCommand(listCmd) }

var listCmd = &cobra.Command{
	Use:   listCmdStr,
	Short: `list expressions`,
	Long:  `list expressions with their frame count on a fresh face`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(listFunc)
	},
}

var listCmdStr = "list"

func listFunc(s *session) error {
	r, _, err := s.newRenderer([]surface.Flusher{})
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tFRAMES")
	for _, expr := range face.Expressions() {
		n, err := r.Frames(expr)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", expr, strcase.ToCamel(expr.String()), n)
	}
	return w.Flush()
}
