package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordfeud-go/internal/client"
	"github.com/mcoot/wordfeud-go/internal/model"
)

func newGameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "game <game-id>",
		Short: "Get a game's state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(c *client.Client, session string) error {
				game, err := c.GetGame(cmd.Context(), model.ID(args[0]), session)
				if err != nil {
					return err
				}
				NewOutput(cfg.Output, cmd.OutOrStdout()).Print(game)
				return nil
			})
		},
	}
}

func newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat <game-id>",
		Short: "Show a game's chat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(c *client.Client, session string) error {
				messages, err := c.GetChat(cmd.Context(), model.ID(args[0]), session)
				if err != nil {
					return err
				}
				NewOutput(cfg.Output, cmd.OutOrStdout()).Print(messages)
				return nil
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "send <game-id> <message...>",
		Short: "Send a chat message",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(c *client.Client, session string) error {
				sent, err := c.Chat(cmd.Context(), model.ID(args[0]), strings.Join(args[1:], " "), session)
				if err != nil {
					return err
				}
				NewOutput(cfg.Output, cmd.OutOrStdout()).Print(sent)
				return nil
			})
		},
	})

	return cmd
}

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <game-id> <ruleset-id> <tiles-json> <word...>",
		Short: "Play tiles",
		Long: `Play tiles on a game's board.

tiles-json is sent to the server unchanged, for example:
  wf move 123 0 '[[7,7,"C",false],[8,7,"A",false],[9,7,"T",false]]' CAT`,
		Args: cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			tiles := json.RawMessage(args[2])
			if !json.Valid(tiles) {
				return fmt.Errorf("tiles must be valid JSON")
			}

			return withSession(func(c *client.Client, session string) error {
				result, err := c.Move(cmd.Context(), model.ID(args[0]), model.ID(args[1]), tiles, args[3:], session)
				if err != nil {
					return err
				}
				NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
				return nil
			})
		},
	}
}

func newSwapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swap <game-id> <tile...>",
		Short: "Exchange tiles",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tiles := make([]string, len(args)-1)
			for i, t := range args[1:] {
				tiles[i] = strings.ToUpper(t)
			}

			return withSession(func(c *client.Client, session string) error {
				result, err := c.Swap(cmd.Context(), model.ID(args[0]), tiles, session)
				if err != nil {
					return err
				}
				NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
				return nil
			})
		},
	}
}

func newPassCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pass <game-id>",
		Short: "Pass your turn",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(c *client.Client, session string) error {
				game, err := c.Pass(cmd.Context(), model.ID(args[0]), session)
				if err != nil {
					return err
				}
				NewOutput(cfg.Output, cmd.OutOrStdout()).Print(game)
				return nil
			})
		},
	}
}

func newResignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resign <game-id>",
		Short: "Resign a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(c *client.Client, session string) error {
				game, err := c.Resign(cmd.Context(), model.ID(args[0]), session)
				if err != nil {
					return err
				}
				NewOutput(cfg.Output, cmd.OutOrStdout()).Print(game)
				return nil
			})
		},
	}
}

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board <board-id>",
		Short: "Show a board layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(c *client.Client, session string) error {
				board, err := c.GetBoard(cmd.Context(), model.ID(args[0]), session)
				if err != nil {
					return err
				}
				NewOutput(cfg.Output, cmd.OutOrStdout()).Print(board)
				return nil
			})
		},
	}
}

func newRulesetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ruleset <ruleset-id>",
		Short: "Show a ruleset's tile points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(c *client.Client, session string) error {
				points, err := c.GetRuleset(cmd.Context(), model.ID(args[0]), session)
				if err != nil {
					return err
				}
				NewOutput(cfg.Output, cmd.OutOrStdout()).Print(points)
				return nil
			})
		},
	}
}
