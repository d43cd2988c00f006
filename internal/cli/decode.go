package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmgilman/vimfault/faultlog"
)

func newDecodeCommand(a *app) *cobra.Command {
	var (
		message string
		fields  []string
	)

	cmd := &cobra.Command{
		Use:   "decode <wire-name>",
		Short: "Bind a fault payload and print it as JSON",
		Long: `Bind a fault payload the way a client would and print the result.

Detail fields are given as name=value. Repeat a name to build a list value.`,
		Example: `  vimfault decode FileNotFoundFault -m "File was not found" -f "file=[ds1] vm/vm.vmx"
  vimfault decode vim25:TaskInProgressFault -f task=Task:task-12`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := parseFields(fields)
			if err != nil {
				return err
			}

			fe := a.registry.Decode(args[0], message, raw, nil)
			if fe.Unwrap() != nil {
				faultlog.WithFault(a.logger.WithField("input", args[0]), fe).
					Warn("fault detail was only partially recovered")
			}
			a.logger.WithFields(faultlog.Fields(fe)).Debug("bound fault")

			return writeJSON(cmd.OutOrStdout(), fe)
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "fault message")
	cmd.Flags().StringArrayVarP(&fields, "field", "f", nil, "detail field as name=value (repeatable)")
	return cmd
}

// parseFields turns name=value pairs into a raw detail map. A repeated name
// collects its values into a list.
func parseFields(pairs []string) (map[string]any, error) {
	raw := make(map[string]any, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid field %q: expected name=value", p)
		}
		switch prev := raw[name].(type) {
		case nil:
			raw[name] = value
		case string:
			raw[name] = []any{prev, value}
		case []any:
			raw[name] = append(prev, value)
		}
	}
	return raw, nil
}
