package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/Rahulkholi70/Pizza-delivery-app/api"
)

// -------- Account maintenance commands --------

func (a *app) cmdProfile(ctx context.Context, args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	name := fs.String("name", "", "new display name")
	phone := fs.String("phone", "", "new phone number")
	address := fs.String("address", "", "new delivery address")
	fs.Parse(args)

	if *name == "" && *phone == "" && *address == "" {
		user, _ := a.store.CurrentUser()
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		if user.Phone != "" {
			fmt.Printf("Phone:   %s\n", user.Phone)
		}
		if user.Address != "" {
			fmt.Printf("Address: %s\n", user.Address)
		}
		return nil
	}

	user, err := a.store.UpdateProfile(ctx, api.ProfileUpdate{
		Name:    *name,
		Phone:   *phone,
		Address: *address,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Profile updated for %s.\n", user.Name)
	return nil
}

func (a *app) cmdChangePassword(ctx context.Context, args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("change-password", flag.ExitOnError)
	current := fs.String("current", "", "current password")
	next := fs.String("new", "", "new password")
	fs.Parse(args)

	if *current == "" || *next == "" {
		return fmt.Errorf("current and new passwords are required")
	}
	msg, err := a.store.ChangePassword(ctx, *current, *next)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

func (a *app) cmdForgotPassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("forgot-password", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	fs.Parse(args)

	if *email == "" {
		return fmt.Errorf("email is required")
	}
	msg, err := a.store.ForgotPassword(ctx, *email)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

func (a *app) cmdResetPassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset-password", flag.ExitOnError)
	token := fs.String("token", "", "reset token from the email")
	password := fs.String("password", "", "new password")
	fs.Parse(args)

	if *token == "" || *password == "" {
		return fmt.Errorf("token and password are required")
	}
	msg, err := a.store.ResetPassword(ctx, *token, *password)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

func (a *app) cmdVerifyEmail(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("verify-email", flag.ExitOnError)
	token := fs.String("token", "", "verification token from the email")
	fs.Parse(args)

	if *token == "" {
		return fmt.Errorf("token is required")
	}
	msg, err := a.store.VerifyEmail(ctx, *token)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}
