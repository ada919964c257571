package main

import (
	"fmt"
	"strings"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
	"github.com/SscSPs/cashflow_app/internal/dto"
	"github.com/spf13/cobra"
)

func createUserCmd() *cobra.Command {
	var req dto.CreateUserRequest
	var role string

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a login",
		Long:  `Create a login. Use this to bootstrap the first administrator.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.Role = domain.Role(strings.ToUpper(role))
			if !req.Role.IsValid() {
				return fmt.Errorf("invalid role %q: use ADMIN or STANDARD", role)
			}
			if len(req.Password) < 8 {
				return fmt.Errorf("password must be at least 8 characters")
			}
			if req.Name == "" {
				req.Name = req.Username
			}

			ctx := cmd.Context()
			svc, closeFn, err := initServices(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			user, err := svc.User.CreateUser(ctx, systemCapability, req)
			if err != nil {
				return err
			}
			cmd.Printf("Created user %s (%s) with role %s\n", user.Username, user.UserID, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "login name")
	cmd.Flags().StringVar(&req.Password, "password", "", "initial password")
	cmd.Flags().StringVar(&req.Name, "name", "", "display name (defaults to username)")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleStandard), "ADMIN or STANDARD")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func grantCmd() *cobra.Command {
	var req dto.AssignSafeRequest

	cmd := &cobra.Command{
		Use:   "grant",
		Short: "Give a user access to a safe",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			svc, closeFn, err := initServices(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			grant, err := svc.AccessGrant.AssignSafe(ctx, systemCapability, req)
			if err != nil {
				return err
			}
			cmd.Printf("Granted safe %s to user %s\n", grant.SafeID, grant.UserID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.UserID, "user", "", "user ID")
	cmd.Flags().StringVar(&req.SafeID, "safe", "", "safe ID")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("safe")
	return cmd
}
