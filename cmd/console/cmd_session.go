package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"delivery-admin/internal/pkg/i18n"
	"delivery-admin/internal/session"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <customer-id>",
	Short: "Open a session for a customer and cache it",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the cached session after checking it with the backend",
	RunE:  runWhoami,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the cached session and close it remotely",
	RunE:  runLogout,
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep revalidating the cached session and print every state change",
	Long: `Revalidates the cached session on a fixed interval (revalidate_interval)
until it ends, expires, or the process is interrupted. Sessions are never
renewed; once it is gone a new login is required.`,
	RunE: runWatch,
}

func runLogin(cmd *cobra.Command, args []string) error {
	customerID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || customerID <= 0 {
		return fail(session.ErrInvalidCustomer.Error())
	}

	ctx := cmd.Context()
	d, err := newDeps(ctx)
	if err != nil {
		return err
	}
	defer d.closer()

	k, state := d.newKeeper(ctx)
	defer k.Close()

	if state == session.StateAuthenticated {
		_, rec := k.Current()
		fmt.Fprintf(cmd.OutOrStdout(), "Already logged in as %s (session %d); run logout first.\n", rec.Customer.Email, rec.SessionID)
		return nil
	}

	rec, err := k.Login(ctx, customerID)
	if err != nil {
		return fail(err.Error())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s <%s>\nsession %d expires at %s\n",
		rec.Customer.FullName, rec.Customer.Email, rec.SessionID, rec.ExpiresAt.Local().Format(time.RFC3339))
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	d, err := newDeps(ctx)
	if err != nil {
		return err
	}
	defer d.closer()

	k, state := d.newKeeper(ctx)
	defer k.Close()

	_, rec := k.Current()
	if state != session.StateAuthenticated || rec == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
		return nil
	}

	me, err := d.client.Me(ctx, rec.Token)
	if err != nil {
		return fail(err.Error())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> %s\nsession %d, %s left\n",
		me.Customer.FullName, me.Customer.Email, me.Customer.Type,
		me.ID, time.Until(me.ExpiresAt).Round(time.Second))
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	d, err := newDeps(ctx)
	if err != nil {
		return err
	}
	defer d.closer()

	k, _ := d.newKeeper(ctx)
	defer k.Close()

	if err := k.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
	return nil
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	d, err := newDeps(ctx)
	if err != nil {
		return err
	}
	defer d.closer()

	k, _ := d.newKeeper(ctx)
	defer k.Close()

	out := cmd.OutOrStdout()
	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-k.Changes():
			if !ok {
				return nil
			}
			who := ""
			if change.Customer != nil {
				who = " " + change.Customer.Email
			}
			fmt.Fprintf(out, "%s %s -> %s%s\n", change.At.Local().Format(time.TimeOnly), change.From, change.To, who)
			if change.To == session.StateAnonymous {
				return nil
			}
		}
	}
}

// fail localizes msg for the configured language. Messages coming back from
// the API client are already localized and pass through unchanged.
func fail(msg string) error {
	return errors.New(i18n.New(cfg.Language).Translate(cfg.Language, msg))
}
