package cmd

import (
	"errors"
	"fmt"
	"strings"

	"trendfeed/internal/feed"
	"trendfeed/internal/source"

	"github.com/spf13/cobra"
)

var feedPage int

var feedCmd = &cobra.Command{
	Use:   "feed <slug>",
	Short: "Print one page of a subject's ranked feed with its trend summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(GetConfig())
		if err != nil {
			return err
		}
		defer a.Close()

		v, err := a.service.View(cmd.Context(), args[0], feedPage)
		if errors.Is(err, source.ErrInvalidSubject) {
			return fmt.Errorf("subject not found: %s", args[0])
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s community, %d active)\n", v.Subject.Name, v.Level, v.ActivityCount)
		if v.Empty {
			fmt.Fprintln(out, v.Message)
			return nil
		}
		s := v.Summary
		fmt.Fprintf(out, "posts: %d  avg engagement (top %d): %.1f  trend: %s %.1f%%\n",
			s.PostCount, s.HeadlineSize, s.AverageScore, s.Trend.Direction, s.Trend.MagnitudePercent)
		fmt.Fprintf(out, "top post: %s (%d likes)\n\n", s.TopPost.Content, s.TopPost.LikeCount)
		for i, p := range v.Posts {
			fmt.Fprintf(out, "%2d. [%d] %s\n    %s · %s · %d likes · %d comments\n",
				v.Page.Start+i+1, p.Engagement(), p.Content, p.AuthorHandle, formatTime(p.CreatedAt), p.LikeCount, p.CommentCount)
		}
		fmt.Fprintf(out, "\npage %d of %d  %s\n", v.Page.Current, v.Page.Total, renderLinks(v.Links))
		fmt.Fprintf(out, "search trends: %s\n", v.TrendsURL)
		return nil
	},
}

func renderLinks(links []feed.Link) string {
	parts := make([]string, 0, len(links))
	for _, l := range links {
		switch {
		case l.Gap:
			parts = append(parts, "…")
		case l.Current:
			parts = append(parts, fmt.Sprintf("[%d]", l.Page))
		default:
			parts = append(parts, fmt.Sprint(l.Page))
		}
	}
	return strings.Join(parts, " ")
}

func init() {
	feedCmd.Flags().IntVar(&feedPage, "page", 1, "page number (clamped to the available pages)")
	rootCmd.AddCommand(feedCmd)
}
