package main

import (
	"errors"
	"fmt"
	"strconv"
	"syscall"

	"SiteCMS/internal/models"
	"SiteCMS/internal/service"
	"SiteCMS/internal/store"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	addAdminUsername string
	addAdminRole     int
)

var addAdminCmd = &cobra.Command{
	Use:   "add-admin",
	Short: "Create an administrator; the password is read from the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if addAdminUsername == "" {
			return errors.New("add-admin: --username is required")
		}

		password, err := readPassword()
		if err != nil {
			return err
		}

		cfg, d, err := setup()
		if err != nil {
			return err
		}
		defer d.Close()
		if err := d.Bootstrap(cmd.Context(), cfg.Seed); err != nil {
			return err
		}

		admins := service.NewAdminService(store.NewAdminStore(d))
		err = admins.Create(cmd.Context(), addAdminUsername, password, strconv.Itoa(addAdminRole))
		if errors.Is(err, service.ErrConflict) {
			return fmt.Errorf("add-admin: %s already exists", addAdminUsername)
		}
		if err != nil {
			return fmt.Errorf("add-admin: %w", err)
		}
		fmt.Printf("admin %s created with role %d\n", addAdminUsername, addAdminRole)
		return nil
	},
}

func init() {
	addAdminCmd.Flags().StringVar(&addAdminUsername, "username", "", "login of the new admin")
	addAdminCmd.Flags().IntVar(&addAdminRole, "role", models.RoleDefault, "1 default, 2 content editor, 3 super-admin")
}

// readPassword спрашивает пароль дважды, без эха.
func readPassword() (string, error) {
	fmt.Print("Password: ")
	first, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	fmt.Print("Repeat password: ")
	second, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	if len(first) == 0 {
		return "", errors.New("add-admin: empty password")
	}
	if string(first) != string(second) {
		return "", errors.New("add-admin: passwords do not match")
	}
	return string(first), nil
}
