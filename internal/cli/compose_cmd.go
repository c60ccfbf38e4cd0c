package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/discourse/internal/composer"
)

func newProposeCmd(app *App) *cobra.Command {
	var toClipboard bool

	cmd := &cobra.Command{
		Use:   "propose SITUATION...",
		Short: "Draft a conversation for a described situation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Composer.Propose(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return app.fail(cmd, err)
			}

			fmt.Fprint(cmd.OutOrStdout(), RenderProposal(result, app.Formatter.Links()))
			if toClipboard {
				return app.writeClipboard(cmd, result.CopyText())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&toClipboard, "copy", "c", false, "copy the summary to the clipboard")
	return cmd
}

func newPolishCmd(app *App) *cobra.Command {
	var (
		style       string
		toClipboard bool
	)

	cmd := &cobra.Command{
		Use:   "polish DRAFT...",
		Short: "Rewrite a draft message in the selected style",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := composer.ParseStyle(style)
			if err != nil {
				return err
			}

			result, err := app.Composer.Polish(cmd.Context(), strings.Join(args, " "), s)
			if err != nil {
				return app.fail(cmd, err)
			}

			fmt.Fprint(cmd.OutOrStdout(), RenderPolish(result, app.Formatter.Links()))
			if toClipboard {
				return app.writeClipboard(cmd, result.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&style, "style", "s", string(composer.StyleWarm), "style: warm, polite, natural, short, long")
	cmd.Flags().BoolVarP(&toClipboard, "copy", "c", false, "copy the polished text to the clipboard")
	return cmd
}

func (a *App) fail(cmd *cobra.Command, err error) error {
	if errors.Is(err, composer.ErrEmptyInput) {
		return err
	}
	f := a.Composer.Classify(err)
	fmt.Fprint(cmd.ErrOrStderr(), RenderFailure(f))
	return f
}

func (a *App) writeClipboard(cmd *cobra.Command, text string) error {
	if err := a.Clipboard(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), renderCopied())
	return nil
}
