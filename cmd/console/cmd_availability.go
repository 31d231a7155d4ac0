package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"delivery-admin/internal/domain/availability"
	"delivery-admin/internal/pkg/ptr"
	"delivery-admin/internal/usecase/queries"

	"github.com/spf13/cobra"
)

var (
	availAddressID     int64
	availSelectedID    int64
	availPreserveStale bool
	availRemote        bool
)

var availabilityCmd = &cobra.Command{
	Use:   "availability",
	Short: "List the delivery slots an address may reserve",
	Long: `Without --address every active slot is listed. With it, only the slot
linked by the address's coverage zone is allowed.

By default the catalog is fetched and evaluated locally; --remote asks the
backend to evaluate instead.`,
	RunE: runAvailability,
}

func init() {
	availabilityCmd.Flags().Int64Var(&availAddressID, "address", 0, "delivery address id")
	availabilityCmd.Flags().Int64Var(&availSelectedID, "selected", 0, "slot already held by the reservation being edited")
	availabilityCmd.Flags().BoolVar(&availPreserveStale, "preserve-stale", false, "keep --selected even when the rules drop it")
	availabilityCmd.Flags().BoolVar(&availRemote, "remote", false, "let the backend evaluate")
}

func optionalID(v int64) *int64 {
	if v <= 0 {
		return nil
	}
	return ptr.Of(v)
}

func runAvailability(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	_, client := newClient()
	addressID := optionalID(availAddressID)
	selected := optionalID(availSelectedID)

	if availRemote {
		view, err := client.Availability(ctx, addressID, selected, availPreserveStale)
		if err != nil {
			return fail(err.Error())
		}
		printSlotViews(cmd.OutOrStdout(), view.Slots, view.Preserved)
		if addressID != nil {
			if s, err := client.Suggestion(ctx, *addressID); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "\nsuggested: slot %d on %s at %s\n", s.DeliverySlotID, s.ReservationDate, s.ReservationTime)
			}
		}
		return nil
	}

	snap, err := client.Snapshot(ctx, addressID)
	if err != nil {
		return fail(err.Error())
	}
	res := availability.Resolve(availability.Input{
		Address:  snap.Address,
		Zones:    snap.Zones,
		Slots:    snap.Slots,
		Selected: selected,
	}, availability.Policy{PreserveStale: availPreserveStale})

	printSlots(cmd.OutOrStdout(), res.Slots, snap.Templates, res.Preserved)
	if s, ok := availability.SuggestFor(res, snap.Slots, snap.Templates); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "\nsuggested: slot %d on %s at %s\n", s.SlotID, s.Date.Format(queries.DateLayout), s.Time)
	}
	return nil
}

func printSlots(w io.Writer, slots []availability.Slot, templates []availability.Template, preserved bool) {
	byID := make(map[int64]availability.Template, len(templates))
	for _, t := range templates {
		byID[t.ID] = t
	}
	views := make([]queries.SlotView, 0, len(slots))
	for _, s := range slots {
		v := queries.SlotView{
			ID:                 s.ID,
			TimeSlotTemplateID: s.TemplateID,
			DeliveryDate:       s.DeliveryDate.Format(queries.DateLayout),
			DeliveryCost:       float64(s.CostCents) / 100,
			MaxCapacity:        s.MaxCapacity,
			ReservedCount:      s.ReservedCount,
			IsActive:           s.Active,
		}
		if t, ok := byID[s.TemplateID]; ok {
			v.StartTime, v.EndTime = t.Start.String(), t.End.String()
		}
		views = append(views, v)
	}
	printSlotViews(w, views, preserved)
}

func printSlotViews(w io.Writer, slots []queries.SlotView, preserved bool) {
	if len(slots) == 0 {
		fmt.Fprintln(w, "No delivery slots available.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tWINDOW\tCOST\tRESERVED\tACTIVE")
	for _, s := range slots {
		fmt.Fprintf(tw, "%d\t%s\t%s-%s\t%.2f\t%d/%d\t%t\n",
			s.ID, s.DeliveryDate, s.StartTime, s.EndTime, s.DeliveryCost, s.ReservedCount, s.MaxCapacity, s.IsActive)
	}
	_ = tw.Flush()
	if preserved {
		fmt.Fprintln(w, "(the last slot is kept from the current selection)")
	}
}
