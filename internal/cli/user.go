package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordfeud-go/internal/client"
	"github.com/mcoot/wordfeud-go/internal/model"
)

func newLoginCmd() *cobra.Command {
	var byID bool

	cmd := &cobra.Command{
		Use:   "login <username|email|id> <password>",
		Short: "Log in and save the session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				result *model.LoginResult
				err    error
			)
			if byID {
				result, err = app.Client.LoginWithID(cmd.Context(), model.ID(args[0]), args[1], "")
			} else {
				result, err = app.Client.Login(cmd.Context(), args[0], args[1])
			}
			if err != nil {
				return err
			}

			if err := cfg.SaveSession(result.SessionID); err != nil {
				return fmt.Errorf("saving session: %w", err)
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&byID, "id", false, "Treat the first argument as a user id")
	return cmd
}

func newGamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List your games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(c *client.Client, session string) error {
				games, err := c.GetGames(cmd.Context(), session)
				if err != nil {
					return err
				}
				NewOutput(cfg.Output, cmd.OutOrStdout()).Print(games)
				return nil
			})
		},
	}
}

func newNotificationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notifications",
		Short: "List your notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(c *client.Client, session string) error {
				entries, err := c.GetNotifications(cmd.Context(), session)
				if err != nil {
					return err
				}
				NewOutput(cfg.Output, cmd.OutOrStdout()).Print(entries)
				return nil
			})
		},
	}
}

func newRelationshipsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relationships",
		Short: "List your friends and blocked users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(c *client.Client, session string) error {
				rel, err := c.GetRelationships(cmd.Context(), session)
				if err != nil {
					return err
				}
				NewOutput(cfg.Output, cmd.OutOrStdout()).Print(rel)
				return nil
			})
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show your account status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(c *client.Client, session string) error {
				status, err := c.GetStatus(cmd.Context(), session)
				if err != nil {
					return err
				}
				NewOutput(cfg.Output, cmd.OutOrStdout()).Print(status)
				return nil
			})
		},
	}
}
