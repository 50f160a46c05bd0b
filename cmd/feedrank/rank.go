package main

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/gcbaptista/feedrank/internal/errors"
	"github.com/gcbaptista/feedrank/model"
)

func (a *app) rankCmd() *cobra.Command {
	var (
		pinned   []string
		noRerank bool
	)

	cmd := &cobra.Command{
		Use:   "rank <text>...",
		Short: "Classify and rerank texts in the terminal",
		Long: `Assign a category to each text, rerank them by category priority and print
both orders, the share of hateful content and the category distribution.

Exactly feed.post_count texts (5 by default) are required; pass "" for an empty one.`,
		Example: `  feedrank rank "good morning" "hello" "nice day" "meh" "bye"
  feedrank rank --categories "positive,sexist,hate speech,not hate speech,positive" a b c d e`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(pinned) > 0 && len(pinned) != a.cfg.Feed.PostCount {
				return apperrors.NewValidationError("categories",
					fmt.Sprintf("expected %d categories, got %d", a.cfg.Feed.PostCount, len(pinned)))
			}

			categories := make([]model.Category, len(pinned))
			for i, c := range pinned {
				categories[i] = model.Category(c)
			}

			svc, err := a.newService(categories, nil)
			if err != nil {
				return err
			}

			result, err := svc.Process(cmd.Context(), args, !noRerank)
			if err != nil {
				return err
			}

			renderFeed(cmd.OutOrStdout(), result, svc.HatefulCategories())
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&pinned, "categories", nil, "assign these categories in order instead of drawing at random")
	cmd.Flags().BoolVar(&noRerank, "no-rerank", false, "only print the classified input")

	return cmd
}
