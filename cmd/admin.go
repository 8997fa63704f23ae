package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/rishi-212005/portfolio-server/internal/auth"
	"github.com/rishi-212005/portfolio-server/internal/config"
	"github.com/rishi-212005/portfolio-server/internal/content"
	"github.com/rishi-212005/portfolio-server/internal/db"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage the persisted admin session",
	Long: `Sign the admin in or out directly against the content database.
The session flag is the same one the web sign-in writes, so a session
started here is visible to the running site and vice versa.`,
}

var adminSignInCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in as the configured admin",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, gate, closeDB, err := openGate(cmd)
		if err != nil {
			return err
		}
		defer closeDB()

		emailPrompt := promptui.Prompt{
			Label:   "Admin email",
			Default: cfg.AdminEmail,
		}
		email, err := emailPrompt.Run()
		if err != nil {
			return fmt.Errorf("email prompt: %w", err)
		}

		passwordPrompt := promptui.Prompt{
			Label: "Password",
			Mask:  '*',
		}
		password, err := passwordPrompt.Run()
		if err != nil {
			return fmt.Errorf("password prompt: %w", err)
		}

		if err := gate.SignIn(cmd.Context(), email, password); err != nil {
			return err
		}
		fmt.Println("Signed in. The admin session is persisted until signout.")
		return nil
	},
}

var adminSignOutCmd = &cobra.Command{
	Use:   "signout",
	Short: "End the persisted admin session",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, gate, closeDB, err := openGate(cmd)
		if err != nil {
			return err
		}
		defer closeDB()

		gate.SignOut(cmd.Context())
		fmt.Println("Signed out.")
		return nil
	},
}

var adminStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether an admin session is active",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, gate, closeDB, err := openGate(cmd)
		if err != nil {
			return err
		}
		defer closeDB()

		if gate.IsAdmin() {
			fmt.Println("Admin session: active")
		} else {
			fmt.Println("Admin session: none")
		}
		return nil
	},
}

// openGate loads config, opens the database and restores the session gate.
func openGate(cmd *cobra.Command) (*config.Config, *auth.Gate, func(), error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	database, err := db.Open(cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening database: %w", err)
	}

	store := content.NewStore(database)
	gate := auth.NewGate(cmd.Context(), store, cfg.AdminEmail, cfg.AdminPassword)
	return cfg, gate, func() { database.Close() }, nil
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminSignInCmd)
	adminCmd.AddCommand(adminSignOutCmd)
	adminCmd.AddCommand(adminStatusCmd)
}
