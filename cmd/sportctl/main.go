// Command sportctl is the Sportdesk operations CLI.
//
// Usage:
//
//	sportctl list athletes --search Smith --limit 20
//	sportctl list teams --sport BASKETBALL
//	sportctl performances 42
//	sportctl overview
//	sportctl create team --name "Hawks" --sport BASKETBALL
//	sportctl create event --name "City Finals" --sport ATHLETICS --start 2026-09-01
//	sportctl watch --interval 300ms
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/athlonet/sportdesk/internal/backend"
	"github.com/athlonet/sportdesk/internal/catalog"
	"github.com/athlonet/sportdesk/internal/config"
	"github.com/athlonet/sportdesk/internal/fetch"
	"github.com/athlonet/sportdesk/internal/perf"
	"github.com/athlonet/sportdesk/internal/stats"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "sportctl",
		Short: "Sportdesk operations CLI",
	}

	root.AddCommand(listCmd())
	root.AddCommand(performancesCmd())
	root.AddCommand(overviewCmd())
	root.AddCommand(createCmd())
	root.AddCommand(watchCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// list command
// --------------------------------------------------------------------------

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List backend resources",
	}
	cmd.AddCommand(listAthletesCmd())
	cmd.AddCommand(listTeamsCmd())
	cmd.AddCommand(listEventsCmd())
	return cmd
}

func listAthletesCmd() *cobra.Command {
	var params listFlags
	cmd := &cobra.Command{
		Use:   "athletes",
		Short: "List athletes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, client *backend.Client) error {
				page, err := client.ListAthletes(ctx, params.toParams())
				if err != nil {
					return err
				}
				for _, a := range page.Data {
					fmt.Printf("%-6d %-12s %-25s %-8s %s\n",
						a.AthleteID, a.Code, a.FirstName+" "+a.LastName, a.Gender, a.Nationality)
				}
				fmt.Printf("-- page %d/%d, %d total\n", page.Page, page.TotalPages, page.Total)
				return nil
			})
		},
	}
	params.bind(cmd)
	return cmd
}

func listTeamsCmd() *cobra.Command {
	var params listFlags
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "List teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, client *backend.Client) error {
				page, err := client.ListTeams(ctx, params.toParams())
				if err != nil {
					return err
				}
				for _, t := range page.Data {
					sport := ""
					if t.Sport != nil {
						sport = t.Sport.Name
					}
					fmt.Printf("%-6d %-10s %-25s %s\n", t.TeamID, t.Code, t.Name, sport)
				}
				fmt.Printf("-- page %d/%d, %d total\n", page.Page, page.TotalPages, page.Total)
				return nil
			})
		},
	}
	params.bind(cmd)
	return cmd
}

func listEventsCmd() *cobra.Command {
	var params listFlags
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List events",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, client *backend.Client) error {
				page, err := client.ListEvents(ctx, params.toParams())
				if err != nil {
					return err
				}
				for _, e := range page.Data {
					fmt.Printf("%-6d %-10s %-30s %-12s %s\n",
						e.EventID, e.Code, e.Name, e.Status, e.StartDate)
				}
				fmt.Printf("-- page %d/%d, %d total\n", page.Page, page.TotalPages, page.Total)
				return nil
			})
		},
	}
	params.bind(cmd)
	return cmd
}

// listFlags is the shared search/pagination flag set for list subcommands.
type listFlags struct {
	search string
	page   int
	limit  int
	sport  string
}

func (f *listFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.search, "search", "", "Search term")
	cmd.Flags().IntVar(&f.page, "page", 1, "Page number")
	cmd.Flags().IntVar(&f.limit, "limit", 20, "Page size")
	cmd.Flags().StringVar(&f.sport, "sport", "", "Sport filter (BASKETBALL, FOOTBALL, ATHLETICS, WRESTLING, BOXING)")
}

func (f *listFlags) toParams() backend.ListParams {
	return backend.ListParams{
		Search:    f.search,
		Page:      f.page,
		Limit:     f.limit,
		SportType: catalog.SportType(f.sport),
	}
}

// --------------------------------------------------------------------------
// performances command
// --------------------------------------------------------------------------

func performancesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "performances <athlete-id>",
		Short: "Show an athlete's normalized performance history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("athlete id must be an integer: %q", args[0])
			}
			return run(func(ctx context.Context, client *backend.Client) error {
				records, err := client.PerformancesByAthlete(ctx, id)
				if err != nil {
					return err
				}
				if len(records) == 0 {
					fmt.Println("no performances recorded")
					return nil
				}
				for _, s := range perf.SummarizeAll(records) {
					best := s.BestLabel
					if best == "" {
						best = "-"
					}
					fmt.Printf("%-10s %-25s %-20s %-25s %s\n",
						s.Date, s.EventName, s.Result, s.Discipline, best)
				}
				return nil
			})
		},
	}
	return cmd
}

// --------------------------------------------------------------------------
// overview command
// --------------------------------------------------------------------------

func overviewCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Aggregate dashboard statistics from the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, client *backend.Client) error {
				athletes, err := client.ListAthletes(ctx, backend.ListParams{Limit: limit})
				if err != nil {
					return err
				}
				performances, err := client.ListPerformances(ctx, backend.ListParams{Limit: limit})
				if err != nil {
					return err
				}

				totals := stats.Compute(athletes.Data, performances.Data)
				fmt.Printf("athletes: %d  performances: %d  personal bests: %d  active sports: %d\n",
					totals.Athletes, totals.Performances, totals.PersonalBests, totals.ActiveSports)

				fmt.Println("\nby sport:")
				for _, s := range stats.CountBySport(performances.Data) {
					fmt.Printf("  %-12s %d\n", s.Sport, s.Count)
				}

				fmt.Println("\ntop athletes by appearances:")
				for i, a := range stats.RankByAppearances(performances.Data, 10) {
					fmt.Printf("  %2d. %-25s %d\n", i+1, a.AthleteName, a.Appearances)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 500, "Maximum rows fetched per resource")
	return cmd
}

// --------------------------------------------------------------------------
// create command
// --------------------------------------------------------------------------

func createCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create resources with generated codes",
	}
	cmd.AddCommand(createTeamCmd())
	cmd.AddCommand(createEventCmd())
	cmd.AddCommand(createAthleteCmd())
	return cmd
}

func createTeamCmd() *cobra.Command {
	var (
		name  string
		sport string
		code  string
	)
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Create a team (code generated from the sport prefix)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			st := catalog.SportType(sport)
			sportID := catalog.SportID(st)
			if sportID == 0 {
				return fmt.Errorf("unknown sport %q", sport)
			}
			if !catalog.IsTeamSport(st) {
				return fmt.Errorf("%s is an individual sport", st)
			}
			return run(func(ctx context.Context, client *backend.Client) error {
				team, err := client.CreateTeamWithRetry(ctx, backend.CreateTeam{
					Code:    code,
					Name:    name,
					SportID: sportID,
				})
				if err != nil {
					return err
				}
				logger.Info("Team created", "team_id", team.TeamID, "code", team.Code, "name", team.Name)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Team name")
	cmd.Flags().StringVar(&sport, "sport", "BASKETBALL", "Team sport (BASKETBALL, FOOTBALL)")
	cmd.Flags().StringVar(&code, "code", "", "Team code; generated when empty")
	return cmd
}

func createEventCmd() *cobra.Command {
	var (
		name     string
		sport    string
		start    string
		end      string
		location string
		code     string
	)
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Create an event (EVT-prefixed code generated)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || start == "" {
				return fmt.Errorf("--name and --start are required")
			}
			return run(func(ctx context.Context, client *backend.Client) error {
				event, err := client.CreateEventWithRetry(ctx, backend.CreateEvent{
					Code:      code,
					Name:      name,
					SportType: catalog.SportType(sport),
					StartDate: start,
					EndDate:   end,
					Location:  location,
					Status:    catalog.StatusScheduled,
				})
				if err != nil {
					return err
				}
				logger.Info("Event created", "event_id", event.EventID, "code", event.Code, "name", event.Name)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Event name")
	cmd.Flags().StringVar(&sport, "sport", "ATHLETICS", "Event sport")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&location, "location", "", "Venue")
	cmd.Flags().StringVar(&code, "code", "", "Event code; generated when empty")
	return cmd
}

func createAthleteCmd() *cobra.Command {
	var (
		first       string
		last        string
		sport       string
		gender      string
		dob         string
		nationality string
		height      float64
		weight      float64
		teamCode    string
		position    string
		disciplines []string
	)
	cmd := &cobra.Command{
		Use:   "athlete",
		Short: "Create an athlete (individual or team route by sport)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if first == "" || last == "" {
				return fmt.Errorf("--first and --last are required")
			}
			st := catalog.SportType(sport)
			if catalog.SportID(st) == 0 {
				return fmt.Errorf("unknown sport %q", sport)
			}
			return run(func(ctx context.Context, client *backend.Client) error {
				var (
					athlete backend.Athlete
					err     error
				)
				if catalog.IsTeamSport(st) {
					if teamCode == "" || position == "" {
						return fmt.Errorf("--team and --position are required for %s", st)
					}
					athlete, err = client.CreateTeamAthleteWithRetry(ctx, backend.CreateTeamAthlete{
						FirstName:    first,
						LastName:     last,
						TeamCode:     teamCode,
						PositionCode: position,
						SportType:    st,
						DateOfBirth:  dob,
						Nationality:  nationality,
						Gender:       catalog.Gender(gender),
						Height:       height,
						Weight:       weight,
					})
				} else {
					enrollments := make([]backend.DisciplineEnrollment, 0, len(disciplines))
					for _, d := range disciplines {
						if catalog.SportForDiscipline(d) != st {
							return fmt.Errorf("discipline %q does not belong to %s", d, st)
						}
						enrollments = append(enrollments, backend.DisciplineEnrollment{Code: d})
					}
					if len(enrollments) == 0 {
						return fmt.Errorf("--discipline is required for %s", st)
					}
					athlete, err = client.CreateIndividualAthleteWithRetry(ctx, backend.CreateIndividualAthlete{
						FirstName:   first,
						LastName:    last,
						DateOfBirth: dob,
						Nationality: nationality,
						Gender:      catalog.Gender(gender),
						Height:      height,
						Weight:      weight,
						SportType:   st,
						Disciplines: enrollments,
					})
				}
				if err != nil {
					return err
				}
				logger.Info("Athlete created",
					"athlete_id", athlete.AthleteID, "code", athlete.Code,
					"name", athlete.FirstName+" "+athlete.LastName)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&first, "first", "", "First name")
	cmd.Flags().StringVar(&last, "last", "", "Last name")
	cmd.Flags().StringVar(&sport, "sport", "ATHLETICS", "Sport")
	cmd.Flags().StringVar(&gender, "gender", "MALE", "Gender (MALE, FEMALE, OTHER)")
	cmd.Flags().StringVar(&dob, "dob", "", "Date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&nationality, "nationality", "", "Nationality")
	cmd.Flags().Float64Var(&height, "height", 0, "Height in cm")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight in kg")
	cmd.Flags().StringVar(&teamCode, "team", "", "Team code (team sports)")
	cmd.Flags().StringVar(&position, "position", "", "Position code (team sports)")
	cmd.Flags().StringSliceVar(&disciplines, "discipline", nil, "Discipline codes (individual sports)")
	return cmd
}

// --------------------------------------------------------------------------
// watch command
// --------------------------------------------------------------------------

func watchCmd() *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Interactive athlete search; type to filter, newest query wins",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, client *backend.Client) error {
				debouncer := fetch.NewDebouncer(interval)
				defer debouncer.Cancel()
				var seq fetch.Sequencer

				search := func(term string) {
					token := seq.Next()
					page, err := client.ListAthletes(ctx, backend.ListParams{Search: term, Limit: 10})
					if !seq.Accept(token) {
						return // a newer query is already in flight or done
					}
					if err != nil {
						logger.Error("search failed", "term", term, "error", err)
						return
					}
					fmt.Printf("\n%q -> %d match(es)\n", term, page.Total)
					for _, a := range page.Data {
						fmt.Printf("  %-12s %s %s\n", a.Code, a.FirstName, a.LastName)
					}
					fmt.Print("> ")
				}

				fmt.Println("type a search term, empty line lists all, Ctrl-D exits")
				fmt.Print("> ")
				scanner := bufio.NewScanner(os.Stdin)
				for scanner.Scan() {
					term := strings.TrimSpace(scanner.Text())
					debouncer.Do(func() { search(term) })
				}
				return scanner.Err()
			})
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 300*time.Millisecond, "Debounce interval between keystrokes and query")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// run handles config loading, client construction, and context cancellation.
func run(fn func(ctx context.Context, client *backend.Client) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	client := backend.New(cfg.BackendURL, cfg.BackendRateLimit, logger)
	return fn(ctx, client)
}
