package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/studybuddy/studybuddy/internal/platform"
	"github.com/studybuddy/studybuddy/internal/screens"
)

func (c *cli) dashboard() (*screens.Dashboard, error) {
	if _, err := c.userID(); err != nil {
		return nil, err
	}
	importer := platform.NewLectureImporter()
	importer.SetTimeout(c.opts.Timeout)
	return screens.NewDashboard(c.client, c.session, importer), nil
}

func (c *cli) coursesCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List your courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.dashboard()
			if err != nil {
				return err
			}
			if err := d.Load(cmd.Context()); err != nil {
				return userError(err)
			}
			d.SetQuery(query)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, d.Headline())
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCourse\tContent")
			fmt.Fprintln(w, "--\t------\t-------")
			for _, course := range d.Visible() {
				fmt.Fprintf(w, "%d\t%s\t%d chars\n", course.CourseID, course.Name, course.ContentLength)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&query, "search", "s", "", "fuzzy filter on course names")
	return cmd
}

func (c *cli) courseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Create courses",
	}
	cmd.AddCommand(c.courseAddCmd(), c.courseImportCmd())
	return cmd
}

func (c *cli) courseAddCmd() *cobra.Command {
	var content, file string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a course from text or a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.dashboard()
			if err != nil {
				return err
			}
			name := args[0]

			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", file, err)
				}
				defer f.Close()
				err = d.UploadCourse(cmd.Context(), name, filepath.Base(file), f)
				if err != nil {
					return userError(err)
				}
			} else if err := d.CreateCourse(cmd.Context(), name, content); err != nil {
				return userError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Created '%s'\n", name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&content, "content", "c", "", "course text")
	cmd.Flags().StringVarP(&file, "file", "f", "", "upload a pdf, docx, txt or md file instead")
	cmd.MarkFlagsMutuallyExclusive("content", "file")
	return cmd
}

func (c *cli) courseImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [name] [playlist url]",
		Short: "Create a course from a YouTube lecture playlist",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.dashboard()
			if err != nil {
				return err
			}
			if err := d.ImportLectures(cmd.Context(), args[0], args[1]); err != nil {
				return userError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Imported lectures into '%s'\n", args[0])
			return nil
		},
	}
}
