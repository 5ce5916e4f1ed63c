package session

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// prompt writes the prompt text and reads one trimmed line. ok is false once
// input is exhausted.
func (c *Controller) prompt(color, text string) (line string, ok bool) {
	c.print(color, text)
	if !c.scanner.Scan() {
		c.println("", "")
		return "", false
	}
	return strings.TrimSpace(c.scanner.Text()), true
}

// collectGenre accepts a 1-based index into the genre catalog or a genre name
// (any casing) matching a catalog entry, re-prompting until one is given.
func (c *Controller) collectGenre() (string, bool) {
	for {
		input, ok := c.prompt(colorYellow, "Enter genre number or name: ")
		if !ok {
			return "", false
		}
		if idx, err := strconv.Atoi(input); err == nil {
			if idx >= 1 && idx <= len(c.genres) {
				return c.genres[idx-1], true
			}
			c.println(colorRed, "Invalid input. Try again.\n")
			continue
		}
		if genre, found := c.matchGenre(input); found {
			return genre, true
		}
		c.println(colorRed, "Invalid input. Try again.\n")
	}
}

// matchGenre resolves a typed genre name against the catalog. Title-casing
// handles the common lowercase entry ("drama" -> "Drama"); the fold
// comparison covers entries title-casing cannot reproduce.
func (c *Controller) matchGenre(input string) (string, bool) {
	titled := titleCaser.String(strings.ToLower(input))
	for _, genre := range c.genres {
		if genre == titled || strings.EqualFold(genre, input) {
			return genre, true
		}
	}
	return "", false
}

// collectMood reads a free-text mood description; empty input means no mood
// constraint.
func (c *Controller) collectMood() (string, bool) {
	return c.prompt(colorYellow, "How do you feel today? (Describe your mood): ")
}

// collectRating reads "skip" or a rating within the configured bounds.
// nil means no rating constraint.
func (c *Controller) collectRating() (*float64, bool) {
	promptText := fmt.Sprintf("Enter minimum rating (%.1f-%.1f) or 'skip': ",
		c.limits.RatingFloor, c.limits.RatingCeiling)
	for {
		input, ok := c.prompt(colorYellow, promptText)
		if !ok {
			return nil, false
		}
		if strings.EqualFold(input, "skip") {
			return nil, true
		}
		rating, err := strconv.ParseFloat(input, 64)
		if err != nil {
			c.println(colorRed, "Invalid input. Try again.\n")
			continue
		}
		// Acceptance form so NaN (which fails every comparison) lands in
		// the re-prompt branch instead of slipping through.
		if !(rating >= c.limits.RatingFloor && rating <= c.limits.RatingCeiling) {
			c.println(colorRed, "Rating out of range. Try again.\n")
			continue
		}
		return &rating, true
	}
}

// collectRepeat asks whether to run another round with the same constraints.
func (c *Controller) collectRepeat() (again, ok bool) {
	for {
		input, ok := c.prompt(colorYellow, "\nWould you like more recommendations? (yes/no): ")
		if !ok {
			return false, false
		}
		switch strings.ToLower(input) {
		case "yes":
			return true, true
		case "no":
			return false, true
		default:
			c.println(colorRed, "Invalid choice. Try again.\n")
		}
	}
}
