package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/NewsReader/internal/domain"
	"github.com/NewsReader/internal/reader"
	"github.com/spf13/cobra"
)

func newHeadlinesCmd(opts *options) *cobra.Command {
	var category, search string

	cmd := &cobra.Command{
		Use:           "headlines",
		Short:         "Print headlines for a category or search term and exit",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := opts.newController()
			if err != nil {
				return err
			}

			var f reader.Fetch
			if search != "" {
				_, f = ctrl.Search(search)
			} else {
				_, f = ctrl.SelectCategory(category)
			}

			s := ctrl.Wait(cmd.Context(), f)

			printState(cmd.OutOrStdout(), s)
			if s.Err != "" {
				return errors.New(s.Err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", domain.DefaultCategory, "category to browse")
	cmd.Flags().StringVarP(&search, "search", "s", "", "search term; overrides --category")
	return cmd
}

func printState(w io.Writer, s reader.State) {
	fmt.Fprintln(w, s.Heading())
	fmt.Fprintln(w)

	if s.Err != "" {
		fmt.Fprintf(w, "Error: %s\n", s.Err)
		return
	}
	if s.Empty() {
		fmt.Fprintln(w, reader.EmptyText)
		return
	}

	for i, a := range s.Articles {
		fmt.Fprintf(w, "%2d. %s\n", i+1, a.Title)
		fmt.Fprintf(w, "    %s · %s\n", a.SourceName(), a.DisplayDate())
		fmt.Fprintf(w, "    %s\n", a.DisplayDescription())
		fmt.Fprintf(w, "    %s\n\n", a.URL)
	}
	fmt.Fprintln(w, "Data provided by NewsAPI.org")
}
