package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/studybuddy/studybuddy/internal/model"
	"github.com/studybuddy/studybuddy/internal/screens"
)

// contents opens the contents screen of the course named by arg
func (c *cli) contents(arg string, length model.SummaryLength) (*screens.Contents, error) {
	if _, err := c.userID(); err != nil {
		return nil, err
	}
	courseID, err := parseID(arg, "course id")
	if err != nil {
		return nil, err
	}
	if length == "" {
		length = c.opts.SummaryLength
	}
	return screens.NewContents(c.client, courseID, length), nil
}

func (c *cli) summaryCmd() *cobra.Command {
	var (
		length   string
		generate bool
		listen   bool
		play     bool
		language string
	)

	cmd := &cobra.Command{
		Use:   "summary [course id]",
		Short: "Show, generate or listen to a course summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var summaryLength model.SummaryLength
			if length != "" {
				l, ok := model.ParseSummaryLength(length)
				if !ok {
					return fmt.Errorf("invalid length %q, use short, medium or long", length)
				}
				summaryLength = l
			}
			ct, err := c.contents(args[0], summaryLength)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			ct.Open(ctx)
			if generate {
				if err := ct.GenerateSummary(ctx); err != nil {
					return userError(err)
				}
			}

			out := cmd.OutOrStdout()
			if msg := ct.CourseError(); msg != "" {
				fmt.Fprintln(out, "⚠️", msg)
			}
			if msg := ct.SummaryError(); msg != "" {
				return errors.New(msg)
			}

			summary := ct.Summary().Value
			fmt.Fprintf(out, "📘 %s (%s)\n\n", ct.CourseName(), ct.SummaryLength().Label())
			if summary.IsEmpty() {
				fmt.Fprintln(out, screens.MsgSummaryEmpty)
				return nil
			}
			fmt.Fprintln(out, summary.Text)

			if listen {
				if !play {
					ct.Speech.SetPlayer(nil)
				}
				if language == "" {
					language = c.opts.SpeechLanguage
				}
				path, err := ct.Listen(ctx, language, c.opts.AudioDir)
				if err != nil {
					return userError(err)
				}
				fmt.Fprintf(out, "\n🔊 Audio saved: %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&length, "length", "l", "", "summary length: short, medium or long")
	cmd.Flags().BoolVarP(&generate, "generate", "g", false, "generate a new summary first")
	cmd.Flags().BoolVar(&listen, "listen", false, "save the summary as speech audio")
	cmd.Flags().BoolVar(&play, "play", false, "open the saved audio with the system player")
	cmd.Flags().StringVar(&language, "language", "", "speech language (English, Hindi, Marathi)")
	return cmd
}

func (c *cli) flashcardsCmd() *cobra.Command {
	var (
		generate bool
		study    bool
	)

	cmd := &cobra.Command{
		Use:   "flashcards [course id]",
		Short: "Show or study the flashcards of a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := c.contents(args[0], "")
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			ct.ShowSection(ctx, screens.SectionFlashcards)
			if generate {
				if err := ct.GenerateFlashcards(ctx); err != nil {
					return userError(err)
				}
			}
			if msg := ct.FlashcardsError(); msg != "" {
				return errors.New(msg)
			}

			out := cmd.OutOrStdout()
			cards := ct.Flashcards().Value.Cards
			if len(cards) == 0 {
				fmt.Fprintln(out, "No flashcards yet. Run with --generate to create a set.")
				return nil
			}

			if study {
				return c.studyCards(out, ct, len(cards))
			}
			for i, card := range cards {
				fmt.Fprintf(out, "%d. Q: %s\n   A: %s\n", i+1, card.Front, card.Back)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&generate, "generate", "g", false, "generate a new set first")
	cmd.Flags().BoolVar(&study, "study", false, "show one card at a time, Enter flips")
	return cmd
}

// studyCards walks the set card by card, flipping on Enter
func (c *cli) studyCards(out io.Writer, ct *screens.Contents, total int) error {
	for i := 0; i < total; i++ {
		card := ct.Flashcards().Value.Cards[i]
		fmt.Fprintf(out, "\n[%d/%d] %s\n", i+1, total, card.Front)
		if _, err := c.prompt(out, "Press Enter to flip..."); err != nil {
			return nil
		}
		ct.FlipCard(i)
		card = ct.Flashcards().Value.Cards[i]
		fmt.Fprintf(out, "  → %s\n", card.Face())
	}
	fmt.Fprintln(out, "\n✅ Done!")
	return nil
}

func (c *cli) quizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Take and review quizzes",
	}
	cmd.AddCommand(c.quizNewCmd(), c.quizPastCmd(), c.quizShowCmd())
	return cmd
}

func (c *cli) quizNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new [course id]",
		Short: "Generate a quiz and answer it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := c.contents(args[0], "")
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := ct.GenerateQuiz(ctx); err != nil {
				return userError(err)
			}

			out := cmd.OutOrStdout()
			quiz := ct.Quiz.View().Quiz
			fmt.Fprintf(out, "📝 %s\n", quiz.Title)
			for i, q := range quiz.Questions {
				option, err := c.askOption(out, i, q)
				if err != nil {
					return err
				}
				ct.Quiz.Pick(i, option)
			}

			if err := ct.SubmitQuiz(ctx); err != nil {
				return userError(err)
			}
			fmt.Fprintf(out, "\n%s\n", ct.Quiz.View().Banner)
			return nil
		},
	}
}

// askOption prompts until a valid option number is entered
func (c *cli) askOption(out io.Writer, i int, q model.Question) (int, error) {
	fmt.Fprintf(out, "\n%d. %s\n", i+1, q.Question)
	for j, option := range q.Options {
		fmt.Fprintf(out, "   %d) %s\n", j+1, option)
	}
	for {
		line, err := c.prompt(out, "Answer: ")
		if err != nil {
			return 0, fmt.Errorf("quiz abandoned: %w", err)
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= 1 && n <= len(q.Options) {
			return n - 1, nil
		}
		fmt.Fprintf(out, "Enter a number between 1 and %d\n", len(q.Options))
	}
}

func (c *cli) quizPastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "past [course id]",
		Short: "List the quizzes taken for a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := c.contents(args[0], "")
			if err != nil {
				return err
			}
			ct.ShowSection(cmd.Context(), screens.SectionQuiz)
			if msg := ct.PastQuizzesError(); msg != "" {
				return errors.New(msg)
			}

			past := ct.PastQuizzes().Value
			out := cmd.OutOrStdout()
			if len(past) == 0 {
				fmt.Fprintln(out, "No quizzes yet.")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tQuiz\tDate\tScore")
			fmt.Fprintln(w, "--\t----\t----\t-----")
			for _, q := range past {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", q.QuizID, q.Title, model.FormatNiceDate(q.CreatedAt), q.ScoreLabel())
			}
			return w.Flush()
		},
	}
}

func (c *cli) quizShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [course id] [quiz id]",
		Short: "Review the answers of a past quiz",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := c.contents(args[0], "")
			if err != nil {
				return err
			}
			quizID, err := parseID(args[1], "quiz id")
			if err != nil {
				return err
			}

			ct.OpenPastQuiz(cmd.Context(), quizID)
			if msg := ct.PastQuizDetailError(); msg != "" {
				return errors.New(msg)
			}
			st, _ := ct.PastQuizDetail()
			detail := st.Value

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "📝 %s · %d/%d\n", detail.Title, detail.CorrectCount(), model.QuizQuestionCount)
			for i, q := range detail.Questions {
				fmt.Fprintf(out, "\n%d. %s\n", i+1, q.Question)
				for j, option := range q.Options {
					mark := "  "
					switch {
					case j == q.CorrectIndex:
						mark = "✓ "
					case q.StudentSelectedIndex != nil && *q.StudentSelectedIndex == j:
						mark = "✗ "
					}
					fmt.Fprintf(out, "   %s%s\n", mark, option)
				}
			}
			return nil
		},
	}
}
