package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/wordfeud-go/internal/client"
	"github.com/mcoot/wordfeud-go/internal/model"
)

func newInviteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invite",
		Short: "Invitation commands",
	}

	cmd.AddCommand(newInviteUserCmd())
	cmd.AddCommand(newInviteRandomCmd())
	cmd.AddCommand(newInviteAcceptCmd())
	cmd.AddCommand(newInviteRejectCmd())

	return cmd
}

func newInviteUserCmd() *cobra.Command {
	var boardType string

	cmd := &cobra.Command{
		Use:   "user <username> <ruleset-id>",
		Short: "Invite a user to a new game",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(c *client.Client, session string) error {
				inv, err := c.InviteUser(cmd.Context(), args[0], model.ID(args[1]), boardType, session)
				if err != nil {
					return err
				}
				NewOutput(cfg.Output, cmd.OutOrStdout()).Print(inv)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&boardType, "board-type", "BoardNormal", "Board type: BoardNormal, BoardRandom")
	return cmd
}

func newInviteRandomCmd() *cobra.Command {
	var boardType string

	cmd := &cobra.Command{
		Use:   "random <ruleset-id>",
		Short: "Request a game against a random opponent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(c *client.Client, session string) error {
				req, err := c.InviteRandom(cmd.Context(), model.ID(args[0]), boardType, session)
				if err != nil {
					return err
				}
				NewOutput(cfg.Output, cmd.OutOrStdout()).Print(req)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&boardType, "board-type", "BoardNormal", "Board type: BoardNormal, BoardRandom")
	return cmd
}

func newInviteAcceptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accept <invite-id>",
		Short: "Accept an invitation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(c *client.Client, session string) error {
				gameID, err := c.AcceptInvite(cmd.Context(), model.ID(args[0]), session)
				if err != nil {
					return err
				}
				out := NewOutput(cfg.Output, cmd.OutOrStdout())
				if cfg.Output == "json" {
					out.Print(map[string]model.ID{"game_id": gameID})
				} else {
					out.PrintMessage("Accepted, game " + gameID.String())
				}
				return nil
			})
		},
	}
}

func newInviteRejectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reject <invite-id>",
		Short: "Reject an invitation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(c *client.Client, session string) error {
				if err := c.RejectInvite(cmd.Context(), model.ID(args[0]), session); err != nil {
					return err
				}
				NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage("Invitation rejected")
				return nil
			})
		},
	}
}
