package easyconsole

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/internal"
)

type selectionRequest struct {
	prompt       string
	customPrompt bool
	labels       []string
	defaultIndex int // 1-based, 0 when there is no default
}

func (r selectionRequest) bounds() IntRange {
	return IntRange{Min: 1, Max: len(r.labels)}
}

func (r selectionRequest) defaultSuffix(prompt string) string {
	return fmt.Sprintf("%s  [%d. %s]", prompt, r.defaultIndex, r.labels[r.defaultIndex-1])
}

// selection reads 1-based option indices for a menu.
type selection interface {
	defaultPrompt() string
	read(c *Console, request selectionRequest) ([]int, error)
}

type singleChoice struct{}

func (singleChoice) defaultPrompt() string {
	return localize(msgChooseOption, nil)
}

func (singleChoice) read(c *Console, request selectionRequest) ([]int, error) {
	bounds := request.bounds()
	hasDefault := request.defaultIndex > 0

	retry := betweenPrompt(bounds)
	if hasDefault {
		retry = withDefault(retry, request.defaultIndex)
		c.DisplayPrompt(request.defaultSuffix(request.prompt))
	} else {
		c.DisplayPrompt(request.prompt)
	}

	index, err := readUntil(c, func(line string) readOutcome[int] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" && hasDefault {
			return accept(request.defaultIndex)
		}

		n, err := strconv.Atoi(trimmed)
		if err != nil {
			if hint := suggestOption(trimmed, request.labels); hint != "" {
				return renotice[int](hint, retry)
			}
			if hasDefault {
				return reprompt[int](retry)
			}
			return reprompt[int](localize(msgEnterInteger, nil))
		}
		if bounds.IsOutside(n) {
			return reprompt[int](retry)
		}
		return accept(n)
	})
	if err != nil {
		return nil, err
	}
	return []int{index}, nil
}

// suggestOption names the option closest to a mistyped answer, or returns ""
// when nothing is close.
func suggestOption(answer string, labels []string) string {
	i := internal.ClosestLabel(answer, labels)
	if i < 0 {
		return ""
	}
	return localize(msgDidYouMean, map[string]interface{}{"Index": i + 1, "Name": labels[i]})
}

type multiChoice struct{}

func (multiChoice) defaultPrompt() string {
	return localize(msgChooseOptions, nil)
}

// read shows a custom prompt on its own line and always asks with the comma
// delimited wording, so the user knows several answers are accepted.
func (m multiChoice) read(c *Console, request selectionRequest) ([]int, error) {
	if request.customPrompt {
		c.WriteLine(strings.TrimSpace(request.prompt))
	}

	ask := m.defaultPrompt()
	if request.defaultIndex > 0 {
		return c.readMultiChoiceIntDefault(request.defaultSuffix(ask), request.bounds(), request.defaultIndex)
	}
	return c.ReadMultiChoiceInt(ask, request.bounds())
}
