package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

func newLocalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List the locales of the document",
		Long:  `Lists top-level locale codes. The default locale is marked with '*'; codes that are not well-formed BCP 47 tags are flagged.`,
		Args:  cobra.NoArgs,
		RunE:  runLocales,
	}
}

func runLocales(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()
	store := s.Store()

	out := cmd.OutOrStdout()
	for _, code := range store.Locales() {
		marker := " "
		if code == store.DefaultLocale() {
			marker = "*"
		}

		note := ""
		if _, err := language.Parse(code); err != nil {
			note = "\t(not a BCP 47 tag)"
		}

		if _, err := fmt.Fprintf(out, "%s %s%s\n", marker, code, note); err != nil {
			return err
		}
	}

	if !store.HasLocale(store.DefaultLocale()) {
		_, err = fmt.Fprintf(out, "default locale %q is not in the document\n", store.DefaultLocale())
	}
	return err
}
