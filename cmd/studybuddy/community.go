package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/studybuddy/studybuddy/internal/community"
	"github.com/studybuddy/studybuddy/internal/screens"
)

func (c *cli) communityCmd() *cobra.Command {
	var topic, order, query string

	cmd := &cobra.Command{
		Use:   "community",
		Short: "Browse quizzes that need review and the mentor leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page := screens.NewCommunity(community.DefaultCatalog())
			if topic != "" {
				page.SetTopic(topic)
			}
			if order != "" {
				page.SetOrder(community.ParseSortOrder(order))
			}
			page.SetQuery(query)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "🔎 Needs review (%s, %s)\n", page.Topic(), page.Order().Label())
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tQuiz\tTopic\tDate\tScore")
			for _, q := range page.Quizzes() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", q.ID, q.Title, q.Topic, q.DateLabel(), q.ScoreLabel())
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintln(out, "\n🏆 Top mentors")
			for i, m := range page.Leaderboard() {
				fmt.Fprintf(out, "%d. %s (%s) · %d pts\n", i+1, m.Name, m.College, m.Points)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&topic, "topic", "t", "", "only quizzes of this topic")
	cmd.Flags().StringVar(&order, "sort", "", "sort order: scoreAsc, scoreDesc or dateDesc")
	cmd.Flags().StringVarP(&query, "search", "s", "", "fuzzy filter on quiz titles")
	cmd.AddCommand(c.communityHelpCmd())
	return cmd
}

func (c *cli) communityHelpCmd() *cobra.Command {
	var mentorID, message string

	cmd := &cobra.Command{
		Use:   "help [quiz id]",
		Short: "Ask a mentor for help with a quiz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quizID, err := parseID(args[0], "quiz id")
			if err != nil {
				return err
			}
			page := screens.NewCommunity(community.DefaultCatalog())
			if !page.OpenHelp(quizID) {
				return fmt.Errorf("no community quiz with id %d", quizID)
			}

			out := cmd.OutOrStdout()
			suggestions := page.Suggestions()
			if mentorID == "" {
				fmt.Fprintln(out, "Suggested mentors:")
				for _, m := range suggestions {
					fmt.Fprintf(out, "  %s  %s · %s\n", m.ID, m.Name, strings.Join(m.Expertise, ", "))
				}
				if mentorID, err = c.prompt(out, "Mentor id: "); err != nil {
					return err
				}
			}
			if !page.SelectMentor(mentorID) {
				return fmt.Errorf("unknown mentor %q", mentorID)
			}
			if message == "" {
				if message, err = c.prompt(out, "What do you need help with? "); err != nil {
					return err
				}
			}
			page.SetMessage(message)

			toast, err := page.SendHelp()
			if err != nil {
				return userError(err)
			}
			fmt.Fprintln(out, "✅", toast)
			for _, r := range page.Resources() {
				fmt.Fprintf(out, "📎 %s: %s\n", r.Title, r.Href)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mentorID, "mentor", "m", "", "mentor id (prompted when empty)")
	cmd.Flags().StringVar(&message, "message", "", "what was confusing (prompted when empty)")
	return cmd
}
