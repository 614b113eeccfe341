package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/brewhub-app/brewhub-backend-go/internal/console"
)

func main() {
	var (
		baseURL        = flag.String("server", envOr("BREWHUB_SERVER", "http://localhost:8080"), "backend base URL")
		token          = flag.String("token", os.Getenv("BREWHUB_TOKEN"), "access token")
		employeeID     = flag.String("employee", os.Getenv("BREWHUB_EMPLOYEE_ID"), "employee id")
		workScheduleID = flag.String("schedule", "", "work schedule id (check-in only)")
		cachePath      = flag.String("cache", defaultCachePath(), "attendance cache file")
	)
	flag.Parse()

	cmd := flag.Arg(0)
	if cmd == "" {
		fmt.Fprintln(os.Stderr, "usage: attendctl [flags] checkin|checkout|status")
		os.Exit(2)
	}
	if *token == "" || *employeeID == "" {
		fmt.Fprintln(os.Stderr, "attendctl: -token and -employee are required (or BREWHUB_TOKEN / BREWHUB_EMPLOYEE_ID)")
		os.Exit(2)
	}

	client := console.NewClient(*baseURL, *token)
	tracker := console.NewTracker(client, *cachePath, *employeeID)
	if err := tracker.Restore(); err != nil {
		fmt.Fprintln(os.Stderr, "attendctl:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	switch cmd {
	case "checkin":
		if err := tracker.CheckIn(ctx, *workScheduleID); err != nil {
			exitWith(err)
		}
		fmt.Printf("checked in at %s\n", tracker.Session().CheckIn)
	case "checkout":
		if err := tracker.CheckOut(ctx); err != nil {
			exitWith(err)
		}
		fmt.Println("checked out")
	case "status":
		fmt.Println(tracker.State())
		if session := tracker.Session(); session != nil {
			fmt.Printf("open since %s (timesheet %s)\n", session.CheckIn, session.TimesheetID)
		}
	default:
		fmt.Fprintln(os.Stderr, "attendctl: unknown command", cmd)
		os.Exit(2)
	}
}

func exitWith(err error) {
	var validation *console.ValidationError
	var rejection *console.BackendRejection
	switch {
	case errors.As(err, &validation):
		fmt.Fprintln(os.Stderr, "attendctl: invalid input:")
		for field, msg := range validation.Fields {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
		}
	case errors.As(err, &rejection):
		fmt.Fprintln(os.Stderr, "attendctl:", rejection.Message)
	default:
		fmt.Fprintln(os.Stderr, "attendctl:", err)
	}
	os.Exit(1)
}

func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "brewhub", "attendance.json")
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
