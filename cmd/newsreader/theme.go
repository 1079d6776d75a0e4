package main

import (
	"fmt"

	"github.com/NewsReader/internal/domain"
	"github.com/NewsReader/internal/infra/repository"
	"github.com/spf13/cobra"
)

func newThemeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the saved colour theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withThemes(opts, func(repo *repository.BoltThemeRepository) error {
				theme, err := repo.LoadTheme()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), theme)
				return nil
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withThemes(opts, func(repo *repository.BoltThemeRepository) error {
				theme, err := repo.LoadTheme()
				if err != nil {
					return err
				}
				next := theme.Toggle()
				if err := repo.SaveTheme(next); err != nil {
					return fmt.Errorf("saving theme: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), next)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set [light|dark]",
		Short:     "Save a specific theme",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(domain.ThemeLight), string(domain.ThemeDark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withThemes(opts, func(repo *repository.BoltThemeRepository) error {
				theme := domain.ParseTheme(args[0])
				if err := repo.SaveTheme(theme); err != nil {
					return fmt.Errorf("saving theme: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), theme)
				return nil
			})
		},
	})

	return cmd
}

func withThemes(opts *options, fn func(*repository.BoltThemeRepository) error) error {
	repo, err := repository.NewBoltThemeRepository(opts.cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening preferences: %w", err)
	}
	defer repo.Close()
	return fn(repo)
}
