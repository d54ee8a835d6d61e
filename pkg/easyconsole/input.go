package easyconsole

import (
	"fmt"
	"strconv"
	"strings"
)

type outcomeKind int

const (
	outcomeAccepted outcomeKind = iota
	outcomeReprompt
	outcomeCancelled
)

// readOutcome classifies one line of user input. A reprompt carries an
// optional notice line and an optional prompt to show before reading again.
type readOutcome[T any] struct {
	kind   outcomeKind
	value  T
	notice string
	prompt string
}

func accept[T any](value T) readOutcome[T] {
	return readOutcome[T]{kind: outcomeAccepted, value: value}
}

func reprompt[T any](prompt string) readOutcome[T] {
	return readOutcome[T]{kind: outcomeReprompt, prompt: prompt}
}

func renotice[T any](notice, prompt string) readOutcome[T] {
	return readOutcome[T]{kind: outcomeReprompt, notice: notice, prompt: prompt}
}

func cancelled[T any]() readOutcome[T] {
	return readOutcome[T]{kind: outcomeCancelled}
}

// readUntil reads lines until classify accepts one. Validation failures never
// leave this loop; only cancellation and read errors do.
func readUntil[T any](c *Console, classify func(line string) readOutcome[T]) (T, error) {
	var zero T
	for {
		line, err := c.ReadLine()
		if err != nil {
			return zero, err
		}

		outcome := classify(line)
		switch outcome.kind {
		case outcomeAccepted:
			return outcome.value, nil
		case outcomeCancelled:
			return zero, ErrInputCancelled
		}

		if outcome.notice != "" {
			c.WriteLine(outcome.notice)
		}
		if outcome.prompt != "" {
			c.DisplayPrompt(outcome.prompt)
		}
	}
}

func checkRange(r IntRange) error {
	if r.Min > r.Max {
		return fmt.Errorf("%w: min was %d, max was %d", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

func checkDefault(r IntRange, def int) error {
	if r.IsOutside(def) {
		return fmt.Errorf("%w: %d is not in %s", ErrDefaultOutOfRange, def, r)
	}
	return nil
}

func betweenPrompt(r IntRange) string {
	return localize(msgEnterIntegerBetween, map[string]interface{}{"Min": r.Min, "Max": r.Max})
}

func withDefault(prompt string, def any) string {
	return fmt.Sprintf("%s [%v]", prompt, def)
}

// ReadIntAny reads any integer.
func (c *Console) ReadIntAny(prompt string) (int, error) {
	c.DisplayPrompt(prompt)
	return readUntil(c, func(line string) readOutcome[int] {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return reprompt[int](localize(msgEnterInteger, nil))
		}
		return accept(n)
	})
}

// ReadInt reads an integer inside r, inclusive at both ends.
func (c *Console) ReadInt(prompt string, r IntRange) (int, error) {
	if err := checkRange(r); err != nil {
		return 0, err
	}
	c.DisplayPrompt(prompt)
	return readUntil(c, func(line string) readOutcome[int] {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return reprompt[int](localize(msgEnterInteger, nil))
		}
		if r.IsOutside(n) {
			return reprompt[int](betweenPrompt(r))
		}
		return accept(n)
	})
}

// ReadIntDefault is ReadInt where a blank line picks def. The default is shown
// after the prompt.
func (c *Console) ReadIntDefault(prompt string, r IntRange, def int) (int, error) {
	return c.readIntDefault(withDefault(prompt, def), r, def)
}

// readIntDefault prompts with text as given, leaving the caller to describe
// the default.
func (c *Console) readIntDefault(prompt string, r IntRange, def int) (int, error) {
	if err := checkRange(r); err != nil {
		return 0, err
	}
	if err := checkDefault(r, def); err != nil {
		return 0, err
	}

	c.DisplayPrompt(prompt)
	return readUntil(c, func(line string) readOutcome[int] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return accept(def)
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil || r.IsOutside(n) {
			return reprompt[int](withDefault(betweenPrompt(r), def))
		}
		return accept(n)
	})
}

func (c *Console) ReadIntAnyDefault(prompt string, def int) (int, error) {
	c.DisplayPrompt(withDefault(prompt, def))
	return readUntil(c, func(line string) readOutcome[int] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return accept(def)
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return reprompt[int](withDefault(localize(msgEnterInteger, nil), def))
		}
		return accept(n)
	})
}

// parseIntList splits a comma delimited answer. Empty entries are skipped;
// every remaining entry must be an integer inside r and at least one must be
// present. Order and duplicates are kept.
func parseIntList(line string, r IntRange) ([]int, bool) {
	var values []int
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || r.IsOutside(n) {
			return nil, false
		}
		values = append(values, n)
	}
	return values, len(values) > 0
}

func listPrompt(r IntRange) string {
	return localize(msgEnterIntegerList, map[string]interface{}{"Min": r.Min, "Max": r.Max})
}

// ReadMultiChoiceInt reads a comma delimited list of integers inside r.
func (c *Console) ReadMultiChoiceInt(prompt string, r IntRange) ([]int, error) {
	if err := checkRange(r); err != nil {
		return nil, err
	}
	c.DisplayPrompt(prompt)
	return readUntil(c, func(line string) readOutcome[[]int] {
		values, ok := parseIntList(line, r)
		if !ok {
			return reprompt[[]int](listPrompt(r))
		}
		return accept(values)
	})
}

// ReadMultiChoiceIntDefault is ReadMultiChoiceInt where a blank line picks the
// single value def.
func (c *Console) ReadMultiChoiceIntDefault(prompt string, r IntRange, def int) ([]int, error) {
	return c.readMultiChoiceIntDefault(withDefault(prompt, def), r, def)
}

func (c *Console) readMultiChoiceIntDefault(prompt string, r IntRange, def int) ([]int, error) {
	if err := checkRange(r); err != nil {
		return nil, err
	}
	if err := checkDefault(r, def); err != nil {
		return nil, err
	}

	c.DisplayPrompt(prompt)
	return readUntil(c, func(line string) readOutcome[[]int] {
		if strings.TrimSpace(line) == "" {
			return accept([]int{def})
		}
		values, ok := parseIntList(line, r)
		if !ok {
			return reprompt[[]int](withDefault(listPrompt(r), def))
		}
		return accept(values)
	})
}

// ReadString reads one line as typed.
func (c *Console) ReadString(prompt string) (string, error) {
	c.DisplayPrompt(prompt)
	return c.ReadLine()
}
