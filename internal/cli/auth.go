package cli

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"

	"portfolio-admin/internal/domain"
	"portfolio-admin/pkg/jwt"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the portfolio API",
	Run: func(cmd *cobra.Command, _ []string) {
		a, err := newApp()
		if err != nil {
			exitErr("failed to initialize", err)
		}

		password := loginPassword
		if password == "" {
			fmt.Print("Password: ")
			raw, err := terminal.ReadPassword(int(syscall.Stdin))
			fmt.Println()
			if err != nil {
				exitErr("failed to read password", err)
			}
			password = string(raw)
		}

		err = a.session.Login(cmd.Context(), domain.LoginRequest{
			Email:    loginEmail,
			Password: password,
		})
		if err != nil {
			exitErr("login failed", fmt.Errorf("%s", a.session.Err()))
		}

		fmt.Printf("Signed in as %s (%s)\n", a.session.User().Name, a.session.User().Email)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear stored credentials",
	Run: func(cmd *cobra.Command, _ []string) {
		a, err := newApp()
		if err != nil {
			exitErr("failed to initialize", err)
		}

		a.session.Logout(cmd.Context())
		fmt.Println("Signed out")
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Run: func(_ *cobra.Command, _ []string) {
		a, err := newApp()
		if err != nil {
			exitErr("failed to initialize", err)
		}

		user := a.session.User()
		if user == nil {
			fmt.Println("Not signed in")
			return
		}

		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		if token := a.storage.AccessToken(); token != "" {
			if exp, err := jwt.ExpiresAt(token); err == nil {
				fmt.Printf("access token expires %s\n", exp.Format("2006-01-02 15:04:05"))
			}
		}
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password (prompted when omitted)")
	loginCmd.MarkFlagRequired("email")
}
