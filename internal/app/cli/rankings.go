package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"appraisal/internal/app/server"
	"appraisal/internal/domain/goals"
	"appraisal/internal/domain/rankings"
	"appraisal/internal/platform/config"
	"appraisal/internal/platform/jobs"
)

type periodFlags struct {
	year  int
	month int
}

func (p *periodFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.year, "year", 0, "Year (default: current IST year)")
	cmd.Flags().IntVar(&p.month, "month", 0, "Month 1-12 (default: current IST month)")
}

func (c *cli) resolve(p periodFlags) (int, int) {
	local := c.now().In(goals.IST)
	year, month := p.year, p.month
	if year == 0 {
		year = local.Year()
	}
	if month == 0 {
		month = int(local.Month())
	}
	return year, month
}

func (c *cli) rankingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rankings",
		Short: "Team ranking dashboard and snapshot history",
	}
	cmd.AddCommand(c.rankingsShowCmd(), c.rankingsSaveCmd(), c.rankingsHistoryCmd())
	return cmd
}

func (c *cli) rankingsShowCmd() *cobra.Command {
	var manager string
	var period periodFlags
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Rank a manager's team for one month",
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month := c.resolve(period)
			return c.withStores(cmd.Context(), func(cfg config.Config, stores *server.Stores) error {
				svc := c.rankingService(cfg, stores)
				rows, err := svc.Dashboard(cmd.Context(), manager, year, month)
				if err != nil {
					return err
				}
				if c.asJSON {
					return writeJSON(c.out, rows)
				}
				if len(rows) == 0 {
					fmt.Fprintf(c.out, "No goals found for %s.\n", goals.MonthLabel(year, month))
					return nil
				}
				renderTable(c.out, "Team rankings, "+goals.MonthLabel(year, month),
					[]string{"Rank", "Employee", "Department", "Goals", "Done", "Completion", "Progress", "On time", "Score", "Avg rank", "Trend"},
					dashboardRows(rows))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&manager, "manager", "", "Manager user id")
	_ = cmd.MarkFlagRequired("manager")
	period.bind(cmd)
	return cmd
}

func dashboardRows(rows []rankings.DashboardRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		avg := "N/A"
		if row.Average != nil {
			avg = strconv.FormatFloat(row.Average.AvgRank, 'f', 1, 64)
		}
		out = append(out, []string{
			strconv.Itoa(row.Rank),
			row.Name,
			row.Department,
			strconv.Itoa(row.TotalGoals),
			strconv.Itoa(row.CompletedGoals),
			pct(row.CompletionRate),
			pct(row.AvgProgress),
			pct(row.OnTimeRate),
			strconv.FormatFloat(row.Score, 'f', 1, 64),
			avg,
			trendLabel(row.Trend),
		})
	}
	return out
}

func (c *cli) rankingsSaveCmd() *cobra.Command {
	var manager string
	var period periodFlags
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Store the month's rankings as snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month := c.resolve(period)
			return c.withStores(cmd.Context(), func(cfg config.Config, stores *server.Stores) error {
				svc := c.rankingService(cfg, stores)
				out, err := jobs.New(stores.Runs).RunNow(cmd.Context(), jobs.JobRankingSnapshot, manager, func(ctx context.Context) (any, error) {
					return svc.SaveSnapshot(ctx, manager, year, month)
				})
				if err != nil {
					return err
				}
				if saved, _ := out.(bool); !saved {
					fmt.Fprintf(c.out, "Nothing to save for %s.\n", goals.MonthLabel(year, month))
					return nil
				}
				fmt.Fprintf(c.out, "Saved rankings for %s.\n", goals.MonthLabel(year, month))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&manager, "manager", "", "Manager user id")
	_ = cmd.MarkFlagRequired("manager")
	period.bind(cmd)
	return cmd
}

func (c *cli) rankingsHistoryCmd() *cobra.Command {
	var manager, employee string
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List an employee's stored monthly ranks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStores(cmd.Context(), func(cfg config.Config, stores *server.Stores) error {
				svc := c.rankingService(cfg, stores)
				history := svc.HistoricalRankings(cmd.Context(), manager, employee, limit)
				if c.asJSON {
					return writeJSON(c.out, history)
				}
				if len(history) == 0 {
					fmt.Fprintln(c.out, "No ranking history.")
					return nil
				}
				rows := make([][]string, 0, len(history))
				for _, snap := range history {
					rows = append(rows, []string{
						goals.MonthLabel(snap.Year, snap.Month),
						strconv.Itoa(snap.Rank),
						strconv.FormatFloat(snap.Score, 'f', 1, 64),
						pct(snap.CompletionRate),
					})
				}
				renderTable(c.out, "", []string{"Month", "Rank", "Score", "Completion"}, rows)
				if avg, ok := svc.AverageRanking(cmd.Context(), manager, employee, limit); ok {
					fmt.Fprintf(c.out, "\nAverage rank %.1f (best %d, worst %d) over %d months\n", avg.AvgRank, avg.BestRank, avg.WorstRank, avg.MonthsTracked)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&manager, "manager", "", "Manager user id")
	cmd.Flags().StringVar(&employee, "employee", "", "Employee user id")
	cmd.Flags().IntVar(&limit, "limit", rankings.DefaultHistoryMonths, "Months of history")
	_ = cmd.MarkFlagRequired("manager")
	_ = cmd.MarkFlagRequired("employee")
	return cmd
}

func (c *cli) rankingService(cfg config.Config, stores *server.Stores) *rankings.Service {
	svc := server.NewRankingService(cfg, stores)
	svc.Now = c.now
	return svc
}
