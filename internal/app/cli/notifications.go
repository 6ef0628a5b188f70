package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"appraisal/internal/app/server"
	"appraisal/internal/domain/notifications"
	"appraisal/internal/domain/performance"
	"appraisal/internal/platform/config"
)

func (c *cli) notificationsCmd() *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Print a user's notification feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStores(cmd.Context(), func(cfg config.Config, stores *server.Stores) error {
				user, err := stores.Goals.UserByID(cmd.Context(), userID)
				if err != nil {
					return fmt.Errorf("look up user %s: %w", userID, err)
				}
				feed, err := server.NewNotificationService(cfg, stores).Feed(cmd.Context(), user, c.now())
				if err != nil {
					return err
				}
				if c.asJSON {
					return writeJSON(c.out, feed)
				}
				if len(feed) == 0 {
					fmt.Fprintln(c.out, "No notifications.")
					return nil
				}
				rows := make([][]string, 0, len(feed))
				for _, n := range feed {
					rows = append(rows, []string{priorityLabel(n.Priority), string(n.Kind), n.Title, n.Message, n.Time})
				}
				summary := notifications.Summarize(feed)
				renderTable(c.out, fmt.Sprintf("Notifications for %s (%d, %d urgent)", user.Name, summary.Total, summary.Urgent),
					[]string{"Priority", "Type", "Title", "Message", "When"}, rows)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "User id")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func (c *cli) trendCmd() *cobra.Command {
	var userID string
	var months int
	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Print a user's monthly completion trend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStores(cmd.Context(), func(cfg config.Config, stores *server.Stores) error {
				points, err := performance.NewService(stores.Goals).MonthlyTrend(cmd.Context(), userID, months, c.now())
				if err != nil {
					return err
				}
				if c.asJSON {
					return writeJSON(c.out, points)
				}
				if len(points) == 0 {
					fmt.Fprintln(c.out, "No goals in range.")
					return nil
				}
				rows := make([][]string, 0, len(points))
				for _, p := range points {
					rows = append(rows, []string{p.Month, strconv.Itoa(p.TotalGoals), strconv.Itoa(p.Completed), pct(p.CompletionRate), pct(p.AvgProgress)})
				}
				renderTable(c.out, "", []string{"Month", "Goals", "Done", "Completion", "Progress"}, rows)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "User id")
	cmd.Flags().IntVar(&months, "months", 6, "Months to look back")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
