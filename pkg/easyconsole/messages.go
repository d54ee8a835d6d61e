package easyconsole

import (
	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/constants"
	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/i18n"
)

var (
	msgChooseOption = &i18n.Message{
		ID:    "choose_option",
		Other: "Choose an option",
	}
	msgChooseOptions = &i18n.Message{
		ID:    "choose_options",
		Other: "Choose options (comma delimited)",
	}
	msgEnterInteger = &i18n.Message{
		ID:    "enter_integer",
		Other: "Please enter an integer",
	}
	msgEnterIntegerBetween = &i18n.Message{
		ID:    "enter_integer_between",
		Other: "Please enter an integer between {{.Min}} and {{.Max}} (inclusive)",
	}
	msgEnterIntegerList = &i18n.Message{
		ID:    "enter_integer_list",
		Other: "Please enter a comma delimited list of integers between {{.Min}} and {{.Max}} (inclusive)",
	}
	msgDidYouMean = &i18n.Message{
		ID:    "did_you_mean",
		Other: "Did you mean {{.Index}}. {{.Name}}?",
	}
	msgInvalidInput = &i18n.Message{
		ID:    "invalid_input",
		Other: "Invalid Input",
	}
	msgDateHint = &i18n.Message{
		ID:    "date_hint",
		Other: "You can type 'no' or 'none' or 'null' or enter a date/time like '{{.Date}}' or '{{.DateTime}}'",
	}
	msgDateInvalid = &i18n.Message{
		ID:    "date_invalid",
		Other: "Invalid Input. You can specify dates and times like '{{.Example}}'. Time is assumed to be UTC unless otherwise specified.",
	}
	msgWhatDate = &i18n.Message{
		ID:    "what_date",
		Other: "What date/time?",
	}
	msgDisplayMore = &i18n.Message{
		ID:    "display_more",
		Other: "Finished displaying items 1 through {{.Shown}} of {{.Total}}. Display more?",
	}
	msgTasksRunning = &i18n.Message{
		ID:    "tasks_running",
		One:   "Waiting for {{.Count}} task to finish.",
		Other: "Waiting for {{.Count}} tasks to finish.",
	}
	msgTasksQueued = &i18n.Message{
		ID:    "tasks_queued",
		One:   "{{.Count}} task queued but not started.",
		Other: "{{.Count}} tasks queued but not started.",
	}
	msgGoBack = &i18n.Message{
		ID:    "go_back",
		Other: constants.GoBackOptionName,
	}
	msgPressEnterToExit = &i18n.Message{
		ID:    "press_enter_to_exit",
		Other: "Press [Enter] to exit",
	}
	msgDone = &i18n.Message{
		ID:    "done",
		Other: "done",
	}
	msgFailed = &i18n.Message{
		ID:    "failed",
		Other: "failed",
	}
)

func localize(message *i18n.Message, data map[string]interface{}) string {
	return i18n.Localize(message, data)
}

// localizeCount picks the plural form for count and exposes it as {{.Count}}.
func localizeCount(message *i18n.Message, count int) string {
	return i18n.LocalizePlural(message, count, map[string]interface{}{"Count": count})
}
