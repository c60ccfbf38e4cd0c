package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/discourse/internal/cards"
	"github.com/JaimeStill/discourse/internal/composer"
)

func newTopicsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List topics in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, header("주제"))
			for _, t := range app.Catalog.Topics() {
				fmt.Fprintf(out, "%s %s %s\n", t.Icon, t.Name, paint(styleDim, "("+strconv.Itoa(t.Count)+")"))
			}
			return nil
		},
	}
}

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List delivery modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, m := range cards.Modes() {
				fmt.Fprintf(out, "%-13s %s\n", m.Mode, m.Label)
			}
			return nil
		},
	}
}

func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List polishing styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, s := range composer.Styles() {
				fmt.Fprintf(out, "%-8s %s %s\n", s.Style, s.Label, paint(styleDim, s.Instruction))
			}
			return nil
		},
	}
}

func newCardCmd(app *App) *cobra.Command {
	var (
		mode        string
		toClipboard bool
	)

	cmd := &cobra.Command{
		Use:   "card TOPIC [INDEX]",
		Short: "Print the cards of a topic, or one card by its 1-based index",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := cards.ParseMode(mode)
			if err != nil {
				return err
			}
			topic := args[0]
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				if toClipboard {
					return ErrCopyNeedsIndex
				}
				list, err := app.Formatter.FormatTopic(m, app.Catalog, topic)
				if err != nil {
					return err
				}
				for i, c := range list {
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprint(out, RenderCard(c))
				}
				return nil
			}

			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return fmt.Errorf("%w: %q", ErrInvalidIndex, args[1])
			}

			c, err := app.Formatter.FormatItem(m, app.Catalog, topic, n-1)
			if err != nil {
				return err
			}
			fmt.Fprint(out, RenderCard(c))

			if !toClipboard {
				return nil
			}
			if !c.Copyable {
				return fmt.Errorf("%w: %s", ErrNotCopyable, m)
			}
			if err := app.Clipboard(c.Copy); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			fmt.Fprint(out, renderCopied())
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", string(cards.ModeConversation), "delivery mode: conversation, phone, text, letter")
	cmd.Flags().BoolVarP(&toClipboard, "copy", "c", false, "copy the card text to the clipboard")

	return cmd
}
