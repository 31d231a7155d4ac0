package main

import (
	"fmt"
	"strconv"
	"strings"

	"delivery-admin/internal/domain/availability"

	"github.com/spf13/cobra"
)

// Local checks run the same validators the server applies and never issue a
// request.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate inputs locally before sending them",
}

var checkTimeRangeCmd = &cobra.Command{
	Use:   "time-range <start HH:MM> <end HH:MM>",
	Short: "Check a time slot template window",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := availability.ParseClock(args[0])
		if err != nil {
			return fail(err.Error())
		}
		end, err := availability.ParseClock(args[1])
		if err != nil {
			return fail(err.Error())
		}
		if err := availability.CheckTimeRange(start, end); err != nil {
			return fail(err.Error())
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}

var checkCapacityCmd = &cobra.Command{
	Use:   "capacity <max-capacity> <reserved-count> <delivery-cost>",
	Short: "Check delivery slot capacity and cost",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		vals := make([]float64, len(args))
		for i, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return fail("invalid request")
			}
			vals[i] = v
		}
		report := availability.CheckCapacity(vals[0], vals[1], vals[2])
		if report.Valid() {
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		}
		var msgs []string
		for _, e := range []error{report.Capacity, report.Cost} {
			if e != nil {
				msgs = append(msgs, fail(e.Error()).Error())
			}
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	},
}

var checkPolygonCmd = &cobra.Command{
	Use:   "polygon <lat,lng>...",
	Short: "Check a coverage zone boundary",
	RunE: func(cmd *cobra.Command, args []string) error {
		ring := make([]availability.Point, 0, len(args))
		for _, a := range args {
			latStr, lngStr, ok := strings.Cut(a, ",")
			if !ok {
				return fail("invalid request")
			}
			lat, err1 := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
			lng, err2 := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
			if err1 != nil || err2 != nil {
				return fail("invalid request")
			}
			ring = append(ring, availability.Point{Lat: lat, Lng: lng})
		}
		if err := availability.CheckPolygon(ring); err != nil {
			return fail(err.Error())
		}
		c := availability.Centroid(ring)
		fmt.Fprintf(cmd.OutOrStdout(), "ok (%d vertices, centroid %.6f,%.6f)\n", availability.DistinctCount(ring), c.Lat, c.Lng)
		return nil
	},
}

func init() {
	checkCmd.AddCommand(checkTimeRangeCmd, checkCapacityCmd, checkPolygonCmd)
}
