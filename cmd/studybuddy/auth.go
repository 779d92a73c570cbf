package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studybuddy/studybuddy/internal/model"
	"github.com/studybuddy/studybuddy/internal/screens"
)

func (c *cli) loginCmd() *cobra.Command {
	var creds model.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var err error
			if creds.Email == "" {
				if creds.Email, err = c.prompt(out, "Email: "); err != nil {
					return err
				}
			}
			if creds.Password == "" {
				if creds.Password, err = c.prompt(out, "Password: "); err != nil {
					return err
				}
			}

			auth := screens.NewAuth(c.client, c.session)
			if _, err := auth.Login(cmd.Context(), creds); err != nil {
				return userError(err)
			}
			fmt.Fprintf(out, "✅ Signed in as %s\n", c.session.Session().UserID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&creds.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&creds.Password, "password", "p", "", "account password (prompted when empty)")
	return cmd
}

func (c *cli) signupCmd() *cobra.Command {
	var form model.SignupForm

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if form.Password == "" {
				var err error
				if form.Password, err = c.prompt(out, "Password: "); err != nil {
					return err
				}
				if form.ConfirmPassword, err = c.prompt(out, "Confirm password: "); err != nil {
					return err
				}
			} else if form.ConfirmPassword == "" {
				form.ConfirmPassword = form.Password
			}

			auth := screens.NewAuth(c.client, c.session)
			path, err := auth.Signup(cmd.Context(), form)
			if err != nil {
				return userError(err)
			}
			if path == screens.AuthPath() {
				fmt.Fprintln(out, "✅", auth.Notice())
				return nil
			}
			fmt.Fprintf(out, "✅ Account created, signed in as %s\n", c.session.Session().UserID)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&form.LastName, "last-name", "", "last name")
	cmd.Flags().StringVarP(&form.Email, "email", "e", "", "account email")
	cmd.Flags().StringVar(&form.University, "university", "", "university")
	cmd.Flags().StringVar(&form.CurrentSemester, "semester", "", "current semester")
	cmd.Flags().StringVarP(&form.Password, "password", "p", "", "password (prompted when empty)")
	cmd.Flags().StringVar(&form.ConfirmPassword, "confirm-password", "", "password confirmation (defaults to --password)")
	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			screens.NewAuth(c.client, c.session).Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "👋 Signed out")
			return nil
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := c.userID()
			if err != nil {
				return err
			}
			header := screens.NewHeader(c.client)
			header.Load(cmd.Context(), userID)
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", header.Greeting(), userID)
			return nil
		},
	}
}
