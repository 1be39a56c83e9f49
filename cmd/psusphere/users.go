package main

import (
	"github.com/spf13/cobra"

	"github.com/Chodoro/psusphere/internal/service"
)

func createUserCmd() *cobra.Command {
	var req service.CreateUserRequest

	cmd := &cobra.Command{
		Use:   "createuser",
		Short: "Create an administrator, or reset the password of an existing one",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.migrate(); err != nil {
				return err
			}

			created, err := a.services().auth.CreateUser(cmd.Context(), req)
			if err != nil {
				return err
			}
			if created {
				cmd.Printf("user %q created\n", req.Username)
			} else {
				cmd.Printf("password of %q reset\n", req.Username)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "Login name")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password, at least 8 characters")
	cmd.Flags().StringVar(&req.Email, "email", "", "Contact email")
	cmd.Flags().StringVar(&req.FullName, "full-name", "", "Display name")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
