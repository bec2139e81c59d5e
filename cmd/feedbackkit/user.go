package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/swiftlydeveloped/feedbackkit-go/models"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new user and make it the active identity",
	RunE:  runRegister,
}

var (
	registerEmail      string
	registerName       string
	registerExternalID string
	registerMeta       []string
)

var loginCmd = &cobra.Command{
	Use:   "login [user-id]",
	Short: "Set the active user identity",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLogin,
}

var loginAnonymous bool

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the active identity and all persisted user data",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active user",
	RunE:  runWhoami,
}

func init() {
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email address")
	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name")
	registerCmd.Flags().StringVar(&registerExternalID, "external-id", "", "External id linking to your own user system")
	registerCmd.Flags().StringArrayVar(&registerMeta, "meta", nil, "Metadata as key=value (repeatable)")

	loginCmd.Flags().BoolVar(&loginAnonymous, "anonymous", false, "Generate and persist a fresh anonymous id")
}

func runRegister(cmd *cobra.Command, args []string) error {
	metadata, err := parseKV(registerMeta)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	user, err := client.Users.Register(context.Background(), models.RegisterUserRequest{
		Email:      registerEmail,
		Name:       registerName,
		ExternalID: registerExternalID,
		Metadata:   metadata,
	})
	if err != nil {
		return err
	}

	if err := client.SetUserIDAndPersist(user.ID); err != nil {
		return err
	}
	if store := client.Storage(); store != nil {
		if err := store.SetUserInfo(user.ID, user.Email, user.Name); err != nil {
			return err
		}
	}

	fmt.Printf("Registered and logged in as %s\n", user.ID)
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	var userID string
	switch {
	case loginAnonymous:
		userID = "anon-" + uuid.NewString()
	case len(args) == 1:
		userID = args[0]
	default:
		return fmt.Errorf("provide a user id or --anonymous")
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.SetUserIDAndPersist(userID); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", userID)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	user, err := client.Users.CurrentUser(context.Background())
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	fmt.Printf("User:  %s\n", user.ID)
	if user.Name != "" {
		fmt.Printf("Name:  %s\n", user.Name)
	}
	if user.Email != "" {
		fmt.Printf("Email: %s\n", user.Email)
	}
	if user.ExternalID != "" {
		fmt.Printf("External id: %s\n", user.ExternalID)
	}
	return nil
}
