package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sand-ca/internal/rules"
)

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print a rule table",
		Long: `Print a built-in rule set or an authored rule file.

By default the symmetry-expanded table is printed, each base rule followed
by its left-right mirror. Use --base to print only the authored rules.`,
		RunE: runRules,
	}
	cmd.Flags().String("set", rules.DefaultSet, "Built-in rule set: "+strings.Join(rules.SetNames(), ", "))
	cmd.Flags().String("file", "", "YAML rule file to load instead of a built-in set")
	cmd.Flags().String("format", "text", "Output format: text or yaml")
	cmd.Flags().Bool("base", false, "Print only the base rules, without mirrors")
	return cmd
}

func runRules(cmd *cobra.Command, args []string) error {
	set, _ := cmd.Flags().GetString("set")
	file, _ := cmd.Flags().GetString("file")
	format, _ := cmd.Flags().GetString("format")
	baseOnly, _ := cmd.Flags().GetBool("base")

	var (
		base []rules.Rule
		err  error
	)
	if file != "" {
		base, err = rules.LoadFile(file)
	} else {
		base, err = rules.Named(set)
	}
	if err != nil {
		return err
	}
	table, err := rules.Build(base)
	if err != nil {
		return err
	}
	list := table.Rules()
	if baseOnly {
		list = table.Base()
	}

	out := cmd.OutOrStdout()
	switch format {
	case "yaml":
		data, err := rules.Encode(list)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	case "text":
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, r := range list {
			fmt.Fprintf(tw, "%s\t%v\t->\t%v\n", r.Name, r.Pattern, r.Replacement)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(out, "%d rules\n", len(list))
		return nil
	default:
		return fmt.Errorf("unknown format %q (valid: text, yaml)", format)
	}
}
