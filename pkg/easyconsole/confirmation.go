package easyconsole

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

func boolPrompt(prompt string, def bool) string {
	if def {
		return fmt.Sprintf("%s ([yes]/no)", prompt)
	}
	return fmt.Sprintf("%s ([no]/yes)", prompt)
}

// ReadBool asks a yes/no question. Answers are matched on their first letter;
// a blank line picks def.
func (c *Console) ReadBool(prompt string, def bool) (bool, error) {
	full := boolPrompt(prompt, def)
	c.DisplayPrompt(full)
	return readUntil(c, func(line string) readOutcome[bool] {
		answer := strings.ToLower(strings.TrimSpace(line))
		switch {
		case answer == "":
			return accept(def)
		case strings.HasPrefix(answer, "y"):
			return accept(true)
		case strings.HasPrefix(answer, "n"):
			return accept(false)
		}
		return renotice[bool](localize(msgInvalidInput, nil), full)
	})
}

// parseDateTime reads dates leniently. Input without a zone is taken as UTC.
func parseDateTime(s string) (time.Time, error) {
	return dateparse.ParseIn(strings.TrimSpace(s), time.UTC)
}

// ReadDateTime reads a date/time; a blank line picks def.
func (c *Console) ReadDateTime(prompt string, def time.Time) (time.Time, error) {
	full := withDefault(prompt, def.Format(time.RFC3339))
	c.DisplayPrompt(full)
	return readUntil(c, func(line string) readOutcome[time.Time] {
		if strings.TrimSpace(line) == "" {
			return accept(def)
		}
		t, err := parseDateTime(line)
		if err != nil {
			return renotice[time.Time](localize(msgInvalidInput, nil), full)
		}
		return accept(t)
	})
}

func isNullWord(answer string) bool {
	switch answer {
	case "n", "no", "none", "null":
		return true
	}
	return false
}

// ReadDateTimeNullable reads an optional date/time. "no", "none" and "null"
// give nil, a blank line gives def, and an answer starting with "y" asks for
// the date on a second prompt.
func (c *Console) ReadDateTimeNullable(prompt string, def *time.Time) (*time.Time, error) {
	full := fmt.Sprintf("%s ([no/none/null]/date)", prompt)
	if def != nil {
		full = fmt.Sprintf("%s ([%s]/no/none/null)", prompt, def.Format(time.RFC3339))
	}

	now := time.Now()
	hint := localize(msgDateHint, map[string]interface{}{
		"Date":     now.UTC().Format(time.DateOnly),
		"DateTime": now.Format(time.RFC3339),
	})
	invalid := localize(msgInvalidInput, nil) + "\n" + hint

	c.DisplayPrompt(full)
	return readUntil(c, func(line string) readOutcome[*time.Time] {
		answer := strings.ToLower(strings.TrimSpace(line))
		switch {
		case answer == "":
			return accept(def)
		case strings.HasPrefix(answer, "y"):
			t, err := c.readExplicitDate(def)
			if errors.Is(err, ErrInputCancelled) {
				return cancelled[*time.Time]()
			}
			if err != nil {
				return renotice[*time.Time](err.Error(), full)
			}
			return accept(t)
		case isNullWord(answer):
			return accept[*time.Time](nil)
		}

		t, err := parseDateTime(line)
		if err != nil {
			return renotice[*time.Time](invalid, full)
		}
		return accept(&t)
	})
}

// readExplicitDate is the follow-up question after a "yes". A blank answer is
// only valid when there is a default to fall back on.
func (c *Console) readExplicitDate(def *time.Time) (*time.Time, error) {
	question := localize(msgWhatDate, nil)
	if def != nil {
		question = withDefault(question, def.Format(time.RFC3339))
	}

	line, err := c.ReadString(question)
	if err != nil {
		return nil, err
	}

	invalid := errors.New(localize(msgDateInvalid, map[string]interface{}{
		"Example": time.Now().UTC().Format(time.RFC3339),
	}))

	if strings.TrimSpace(line) == "" {
		if def != nil {
			return def, nil
		}
		return nil, invalid
	}

	t, err := parseDateTime(line)
	if err != nil {
		return nil, invalid
	}
	return &t, nil
}
