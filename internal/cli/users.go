package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [key=value...]",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseQuery(args)
			if err != nil {
				return err
			}
			v, err := a.client.List(cmd.Context(), params)
			if err != nil {
				return err
			}
			return a.print(v)
		},
	}
}

func (a *app) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <uuid> [key=value...]",
		Short: "Show a user",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseQuery(args[1:])
			if err != nil {
				return err
			}
			v, err := a.client.Get(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			return a.print(v)
		},
	}
}

func (a *app) createCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <json>",
		Short: "Create a user from a JSON object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseJSONObject(args[0])
			if err != nil {
				return err
			}
			v, err := a.client.Create(cmd.Context(), params)
			if err != nil {
				return err
			}
			return a.print(v)
		},
	}
}

func (a *app) updateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update <uuid> <json>",
		Short: "Update a user from a JSON object",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseJSONObject(args[1])
			if err != nil {
				return err
			}
			v, err := a.client.Update(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			return a.print(v)
		},
	}
}

func (a *app) mergeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <uuid1> <uuid2>",
		Short: "Merge two users",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.client.Merge(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return a.print(v)
		},
	}
}

func (a *app) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <uuid>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.client.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(v)
		},
	}
}

func (a *app) ownerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "owner [key=value...]",
		Short: "Show the account owner (requires an access token)",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseQuery(args)
			if err != nil {
				return err
			}
			v, err := a.client.Owner(cmd.Context(), params)
			if err != nil {
				return err
			}
			return a.print(v)
		},
	}
}
