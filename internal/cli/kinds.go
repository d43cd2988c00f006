package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jmgilman/vimfault"
)

// kindView is the JSON form of a kind.
type kindView struct {
	Name           string      `json:"name"`
	WireName       string      `json:"wireName"`
	Base           string      `json:"base,omitempty"`
	Code           string      `json:"code"`
	Classification string      `json:"classification"`
	Lineage        []string    `json:"lineage"`
	Fields         []fieldView `json:"fields,omitempty"`
}

type fieldView struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Optional bool   `json:"optional,omitempty"`
}

func viewOf(k *vimfault.Kind) kindView {
	v := kindView{
		Name:           k.Name(),
		WireName:       k.WireName(),
		Code:           string(k.Code()),
		Classification: string(k.Classification()),
		Lineage:        k.Lineage(),
	}
	if b := k.Base(); b != nil {
		v.Base = b.Name()
	}
	for _, f := range k.Fields() {
		v.Fields = append(v.Fields, fieldView{Name: f.Name, Type: f.Type.String(), Optional: f.Optional})
	}
	return v
}

func newKindsCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the fault kinds in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kinds := a.registry.Kinds()
			if asJSON {
				views := make([]kindView, len(kinds))
				for i, k := range kinds {
					views[i] = viewOf(k)
				}
				return writeJSON(cmd.OutOrStdout(), views)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "KIND\tWIRE NAME\tBASE\tCODE")
			for _, k := range kinds {
				v := viewOf(k)
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", v.Name, v.WireName, v.Base, v.Code)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newDescribeCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "describe <wire-or-type-name>",
		Short: "Show the schema and lineage of one fault kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := a.resolve(args[0])
			if err != nil {
				return err
			}
			v := viewOf(k)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), v)
			}
			return writeDescription(cmd.OutOrStdout(), v)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func writeDescription(w io.Writer, v kindView) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kind:\t%s\n", v.Name)
	fmt.Fprintf(tw, "Wire name:\t%s\n", v.WireName)
	fmt.Fprintf(tw, "Lineage:\t%s\n", strings.Join(v.Lineage, " > "))
	fmt.Fprintf(tw, "Code:\t%s\n", v.Code)
	fmt.Fprintf(tw, "Classification:\t%s\n", v.Classification)
	if len(v.Fields) > 0 {
		fmt.Fprintln(tw, "Fields:")
		for _, f := range v.Fields {
			opt := ""
			if f.Optional {
				opt = "optional"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", f.Name, f.Type, opt)
		}
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
