// Command katsuyo conjugates Japanese verbs from the command line.
package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nihongo-drills/katsuyo"
)

func main() {
	if err := rootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd(out io.Writer) *cobra.Command {
	var dataDir string

	lexicon := func() (*katsuyo.Lexicon, error) {
		return katsuyo.New(dataDir)
	}
	lookup := func(key string) (katsuyo.Verb, error) {
		lex, err := lexicon()
		if err != nil {
			return katsuyo.Verb{}, err
		}
		v, ok := lex.Verb(key)
		if !ok {
			return katsuyo.Verb{}, fmt.Errorf("verb %q not found", key)
		}
		return v, nil
	}

	cmd := &cobra.Command{
		Use:           "katsuyo",
		Short:         "Japanese verb conjugator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.PersistentFlags().StringVar(&dataDir, "data", "", "directory holding verbs.txt (default: built-in samples)")

	cmd.AddCommand(&cobra.Command{
		Use:   "conjugate <verb> <form>",
		Short: "Print one conjugated form, e.g. conjugate みる past_polite_negative_potential",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := lookup(args[0])
			if err != nil {
				return err
			}
			f, err := katsuyo.ParseForm(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", v.Conjugate(f), v.Translate(f))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "table <verb>",
		Short: "Print all sixteen forms of a verb",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := lookup(args[0])
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, c := range katsuyo.InflectionTable(v).Cells {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Form.Name(), c.Surface, c.Gloss)
			}
			return tw.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "translate <verb> <tense> <polarity> <mode>",
		Short: "Print the English gloss of a form",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := lookup(args[0])
			if err != nil {
				return err
			}
			t, err := katsuyo.ParseTense(args[1])
			if err != nil {
				return err
			}
			p, err := katsuyo.ParsePolarity(args[2])
			if err != nil {
				return err
			}
			m, err := katsuyo.ParseMode(args[3])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), katsuyo.Translate(v, t, p, m))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "forms",
		Short: "List the form names",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, f := range katsuyo.AllForms() {
				fmt.Fprintln(cmd.OutOrStdout(), f.Name())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "random",
		Short: "Print a random verb, form and its conjugation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lex, err := lexicon()
			if err != nil {
				return err
			}
			v := katsuyo.RandomVerb(lex.Verbs())
			f := katsuyo.RandomForm()
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", v.Dictionary, f.Name(), v.Conjugate(f), v.Translate(f))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "analyze <surface>",
		Short: "Identify which verb and form produce a conjugated string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lex, err := lexicon()
			if err != nil {
				return err
			}
			found := lex.Analyze(args[0])
			if len(found) == 0 {
				return fmt.Errorf("%q is not a form of any known verb", args[0])
			}
			for _, a := range found {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", a.Verb.Name(), a.Form.Name(), a.Gloss)
			}
			return nil
		},
	})

	return cmd
}
