package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get PATH",
		Short: "Print the translation at a dot-separated path",
		Example: `  lexicon get user.greeting --file translations.json --lang id
  lexicon get checkout.title --lang de --default "Checkout"`,
		Args: cobra.ExactArgs(1),
		RunE: runGet,
	}

	cmd.Flags().StringP("lang", "l", "", "locale to look up (default: the default locale)")
	cmd.Flags().StringP("default", "d", "", "value printed when nothing is found")

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()
	store := s.Store()

	lang, _ := cmd.Flags().GetString("lang")
	if lang == "" {
		lang = store.DefaultLocale()
	}
	def, _ := cmd.Flags().GetString("default")

	_, err = fmt.Fprintln(cmd.OutOrStdout(), i18n.TOr(store, args[0], lang, def))
	return err
}
