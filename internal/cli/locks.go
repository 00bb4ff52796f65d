package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) locksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locks",
		Short: "Manage user locks",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list <uuid>",
			Short: "List the locks of a user",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := a.client.ListUserLocks(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.print(v)
			},
		},
		&cobra.Command{
			Use:   "add <uuid> <scope> [reason]",
			Short: "Lock a user",
			Args:  cobra.RangeArgs(2, 3),
			RunE: func(cmd *cobra.Command, args []string) error {
				reason := ""
				if len(args) == 3 {
					reason = args[2]
				}
				v, err := a.client.AddUserLock(cmd.Context(), args[0], args[1], reason)
				if err != nil {
					return err
				}
				return a.print(v)
			},
		},
		&cobra.Command{
			Use:   "delete <uuid> <lock-id>",
			Short: "Remove a user lock",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := a.client.DeleteUserLock(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				return a.print(v)
			},
		},
	)

	return cmd
}
