package session

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"reelpick/internal/recommend"
)

const (
	colorReset  = "\x1b[0m"
	colorRed    = "\x1b[31m"
	colorGreen  = "\x1b[32m"
	colorYellow = "\x1b[33m"
	colorBlue   = "\x1b[34m"
	colorCyan   = "\x1b[36m"
)

const (
	animationDots     = 3
	animationInterval = 500 * time.Millisecond
)

func (c *Controller) print(color, text string) {
	if c.colorize && color != "" {
		fmt.Fprint(c.out, color+text+colorReset)
		return
	}
	fmt.Fprint(c.out, text)
}

func (c *Controller) println(color, text string) {
	c.print(color, text+"\n")
}

// animate prints the dot "processing" animation after an in-progress message.
func (c *Controller) animate() {
	for i := 0; i < animationDots; i++ {
		c.print(colorYellow, ".")
		c.sleep(animationInterval)
	}
}

// showGenres lists the genre catalog as a numbered row, mirroring the
// inline listing the session has always shown.
func (c *Controller) showGenres() {
	c.print(colorGreen, "Available Genres: ")
	for i, genre := range c.genres {
		c.print(colorCyan, fmt.Sprintf("%d. %s  ", i+1, genre))
	}
	c.println("", "\n")
}

// echoMood scores the mood text and reports its polarity to the user.
func (c *Controller) echoMood(mood string) {
	c.print(colorBlue, "\nAnalyzing mood")
	c.animate()
	polarity := 0.0
	if mood != "" {
		polarity = c.scorer.Score(mood)
	}
	c.println(colorGreen, fmt.Sprintf("\nYour mood is %s (Polarity: %.2f).\n",
		polarityDescription(polarity), polarity))
}

// showResults renders the recommendation table, or the no-results message
// when nothing matched.
func (c *Controller) showResults(name string, recs []recommend.Recommendation) {
	if len(recs) == 0 {
		c.println(colorRed, "No suitable movie recommendations found.\n")
		return
	}

	c.println(colorYellow, fmt.Sprintf("\n🍿 Movie Recommendations for %s:", name))

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Title", "Polarity", "Sentiment"})
	for i, rec := range recs {
		tw.AppendRow(table.Row{i + 1, rec.Title, fmt.Sprintf("%.2f", rec.Polarity), sentimentLabel(rec.Polarity)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	c.println("", tw.Render())
}

func polarityDescription(polarity float64) string {
	switch {
	case polarity > 0:
		return "positive 😊"
	case polarity < 0:
		return "negative 😞"
	default:
		return "neutral 😐"
	}
}

func sentimentLabel(polarity float64) string {
	switch {
	case polarity > 0:
		return "Positive 😊"
	case polarity < 0:
		return "Negative 😞"
	default:
		return "Neutral 😐"
	}
}
