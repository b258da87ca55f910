package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameGuessCmd())
	cmd.AddCommand(newGameStatusCmd())
	cmd.AddCommand(newGameRevealCmd())
	cmd.AddCommand(newGameNamesCmd())
	cmd.AddCommand(newGameDailyCmd())
	cmd.AddCommand(newGameSessionsCmd())

	return cmd
}

func newGameNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new game against today's firearm",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result NewGame

			if err := client.Post("/api/v1/game/new", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <session-id> <firearm-name>",
		Short: "Submit a guess for a session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID := args[0]
			name := args[1]

			req := map[string]string{"firearm_name": name}
			var result GuessResult

			if err := client.Post(fmt.Sprintf("/api/v1/game/%s/guess", sessionID), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <session-id>",
		Short: "Get current session status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameStatus

			if err := client.Get(fmt.Sprintf("/api/v1/game/%s/status", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameRevealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <session-id>",
		Short: "Reveal the target of a completed session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameReveal

			if err := client.Get(fmt.Sprintf("/api/v1/game/%s/reveal", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List guessable firearm names",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []string

			if err := client.Get("/api/v1/game/firearm-names", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameDailyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Show today's target firearm (debug)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result DailyFirearm

			if err := client.Get("/api/v1/game/daily-firearm", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSessionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List all game sessions (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []GameSession

			if err := client.Get("/api/v1/game/admin/sessions", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
