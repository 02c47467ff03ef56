package menu

// State is the position of the menu loop.
type State int

const (
	StateAwaitingChoice State = iota
	StateRunningAction
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAwaitingChoice:
		return "awaiting-choice"
	case StateRunningAction:
		return "running-action"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Choice is one entry of the closed command set.
type Choice int

const (
	ChoiceMonthly Choice = iota + 1
	ChoiceCategory
	ChoiceCategoryMonth
	ChoicePredict
	ChoiceExit
)

var choiceTitles = map[Choice]string{
	ChoiceMonthly:       "View monthly spendings",
	ChoiceCategory:      "View category spendings",
	ChoiceCategoryMonth: "View category spendings by month",
	ChoicePredict:       "Predict future spendings for a category",
	ChoiceExit:          "Exit",
}

func (c Choice) String() string {
	if t, ok := choiceTitles[c]; ok {
		return t
	}
	return "invalid"
}

// parseChoice maps the raw answer to the choice prompt. Only the exact
// strings "1" to "5" select an entry.
func parseChoice(answer string) (Choice, bool) {
	if len(answer) != 1 || answer[0] < '1' || answer[0] > '5' {
		return 0, false
	}
	return Choice(answer[0] - '0'), true
}
