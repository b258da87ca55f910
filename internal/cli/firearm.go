package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newFirearmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "firearm",
		Short: "Catalog commands",
	}

	cmd.AddCommand(newFirearmListCmd())
	cmd.AddCommand(newFirearmGetCmd())
	cmd.AddCommand(newFirearmAddCmd())
	cmd.AddCommand(newFirearmUpdateCmd())
	cmd.AddCommand(newFirearmDeleteCmd())

	return cmd
}

func newFirearmListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all firearms in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Firearm

			if err := client.Get("/api/v1/firearms", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFirearmGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a firearm by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Firearm

			if err := client.Get(fmt.Sprintf("/api/v1/firearms/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFirearmAddCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "add -f <file>",
		Short: "Add a firearm from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			firearm, err := readFirearmFile(file)
			if err != nil {
				return err
			}

			var result Firearm
			if err := client.Post("/api/v1/firearms", firearm, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file describing the firearm")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newFirearmUpdateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "update <id> -f <file>",
		Short: "Update a firearm from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			firearm, err := readFirearmFile(file)
			if err != nil {
				return err
			}

			var result Firearm
			if err := client.Put(fmt.Sprintf("/api/v1/firearms/%s", args[0]), firearm, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file describing the firearm")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newFirearmDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a firearm from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/firearms/%s", args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Firearm deleted")
			return nil
		},
	}
}

func readFirearmFile(path string) (Firearm, error) {
	var firearm Firearm

	data, err := os.ReadFile(path)
	if err != nil {
		return firearm, fmt.Errorf("failed to read file: %w", err)
	}

	if err := json.Unmarshal(data, &firearm); err != nil {
		return firearm, fmt.Errorf("failed to parse file: %w", err)
	}

	return firearm, nil
}
