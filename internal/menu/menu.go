// Package menu runs the interactive numbered menu over a loaded dataset.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fjacquet/card-spend/internal/analysis"
	"fjacquet/card-spend/internal/chart"
	"fjacquet/card-spend/internal/logging"
	"fjacquet/card-spend/internal/models"
	"fjacquet/card-spend/internal/parsererror"
	"fjacquet/card-spend/internal/predictor"
	"fjacquet/card-spend/internal/report"

	"github.com/fatih/color"
)

// Prompts shown to the user.
const (
	PromptChoice             = "Enter your choice (1-5): "
	PromptMonth              = "Enter month (1-12): "
	PromptCategory           = "Enter category number: "
	PromptCategoryPrediction = "Enter category number for prediction: "

	InvalidChoiceMessage = "Invalid choice. Please enter a number between 1 and 5."
)

// ErrNotANumber is wrapped by the InputError returned for non-integer answers.
var ErrNotANumber = errors.New("expected a whole number")

// Options carries the components a Menu drives.
type Options struct {
	Dataset   *models.Dataset
	Generator *report.Generator
	Predictor *predictor.Predictor
	Chart     *chart.BarChart // nil disables charts
	Logger    logging.Logger
}

// Menu is the interactive loop. It reads answers line by line from in and
// writes prompts, reports and charts to out.
type Menu struct {
	opts  Options
	in    *bufio.Reader
	out   io.Writer
	state State

	lines   chan readResult
	done    chan struct{}
	readErr error

	heading *color.Color
	warn    *color.Color
}

type readResult struct {
	line string
	err  error
}

// New creates a Menu in StateAwaitingChoice.
func New(opts Options, in io.Reader, out io.Writer) *Menu {
	if opts.Logger == nil {
		opts.Logger = logging.NewLogrusAdapter("info", "text")
	}
	if opts.Predictor == nil {
		opts.Predictor = predictor.New(opts.Logger)
	}
	if opts.Generator == nil {
		opts.Generator = report.NewGenerator(opts.Logger, 2, models.DefaultCSVDelimiter)
	}
	return &Menu{
		opts:    opts,
		in:      bufio.NewReader(in),
		out:     out,
		state:   StateAwaitingChoice,
		heading: color.New(color.FgCyan, color.Bold),
		warn:    color.New(color.FgRed),
	}
}

// State returns the current loop state.
func (m *Menu) State() State {
	return m.state
}

// Run loops until the user picks Exit, input reaches EOF or ctx is done.
// Cancelling ctx also ends a prompt that is waiting for input.
// Bad answers are reported and the loop goes on; only write failures and
// unexpected errors end it with an error.
func (m *Menu) Run(ctx context.Context) error {
	log := m.opts.Logger.WithField(logging.FieldOperation, "menu")

	m.startReader()
	defer close(m.done)

	for m.state != StateTerminated {
		if ctx.Err() != nil {
			log.Debug("Menu interrupted")
			m.state = StateTerminated
			break
		}

		if err := m.printMenu(); err != nil {
			return err
		}
		answer, err := m.readLine(ctx, PromptChoice)
		if errors.Is(err, io.EOF) || isCancelled(ctx, err) {
			log.Debug("Menu input closed", logging.F("reason", err.Error()))
			m.state = StateTerminated
			break
		}
		if err != nil {
			return err
		}

		choice, ok := parseChoice(answer)
		if !ok {
			fmt.Fprintln(m.out, InvalidChoiceMessage)
			continue
		}
		if choice == ChoiceExit {
			m.state = StateTerminated
			break
		}

		m.state = StateRunningAction
		log.Debug("Running menu action", logging.F(logging.FieldState, m.state.String()), logging.F("choice", int(choice)))
		err = m.runAction(ctx, choice)
		m.state = StateAwaitingChoice

		var inputErr *parsererror.InputError
		switch {
		case err == nil:
		case errors.Is(err, io.EOF), isCancelled(ctx, err):
			log.Debug("Menu input closed", logging.F("reason", err.Error()))
			m.state = StateTerminated
		case errors.As(err, &inputErr):
			log.WithError(err).Debug("Rejected input")
			m.warn.Fprintln(m.out, inputErr.Error())
		case errors.Is(err, analysis.ErrNoCategories):
			m.warn.Fprintln(m.out, "The data has no Category column.")
		default:
			return err
		}
	}

	log.Debug("Menu terminated", logging.F(logging.FieldState, m.state.String()))
	return nil
}

func isCancelled(ctx context.Context, err error) bool {
	return ctx.Err() != nil && errors.Is(err, ctx.Err())
}

func (m *Menu) runAction(ctx context.Context, choice Choice) error {
	ds := m.opts.Dataset

	switch choice {
	case ChoiceMonthly:
		month, err := m.readInt(ctx, PromptMonth, "month")
		if err != nil {
			return err
		}
		return m.writeReport(analysis.MonthlySpendings(ds, month))

	case ChoiceCategory:
		code, err := m.promptCategory(ctx, PromptCategory)
		if err != nil {
			return err
		}
		r, err := analysis.CategorySpendings(ds, code)
		if err != nil {
			return err
		}
		return m.writeReport(r)

	case ChoiceCategoryMonth:
		code, err := m.promptCategory(ctx, PromptCategory)
		if err != nil {
			return err
		}
		month, err := m.readInt(ctx, PromptMonth, "month")
		if err != nil {
			return err
		}
		r, err := analysis.CategoryMonthSpendings(ds, code, month)
		if err != nil {
			return err
		}
		return m.writeReport(r)

	case ChoicePredict:
		code, err := m.promptCategory(ctx, PromptCategoryPrediction)
		if err != nil {
			return err
		}
		p, err := m.opts.Predictor.Predict(ds, code)
		if err != nil {
			return err
		}
		out, err := m.opts.Generator.GeneratePrediction(p, report.FormatText)
		if err != nil {
			return err
		}
		_, err = m.out.Write(out)
		return err
	}
	return nil
}

// promptCategory lists the mapping and asks for a code.
func (m *Menu) promptCategory(ctx context.Context, prompt string) (int, error) {
	if !m.opts.Dataset.HasCategories() {
		return 0, analysis.ErrNoCategories
	}
	listing, err := m.opts.Generator.GenerateMapping(m.opts.Dataset.Categories, report.FormatText)
	if err != nil {
		return 0, err
	}
	if _, err := m.out.Write(listing); err != nil {
		return 0, err
	}
	return m.readInt(ctx, prompt, "category number")
}

func (m *Menu) writeReport(r models.Report) error {
	return m.opts.Generator.WriteReport(m.out, r, report.FormatText, m.opts.Chart)
}

func (m *Menu) printMenu() error {
	if _, err := m.heading.Fprintln(m.out, "\nSelect an option:"); err != nil {
		return err
	}
	for c := ChoiceMonthly; c <= ChoiceExit; c++ {
		if _, err := fmt.Fprintf(m.out, "%d. %s\n", int(c), c); err != nil {
			return err
		}
	}
	return nil
}

// startReader pumps lines from the input in the background so a prompt can
// give up when the context is cancelled. The goroutine stops after the first
// read error or once Run has returned.
func (m *Menu) startReader() {
	m.lines = make(chan readResult)
	m.done = make(chan struct{})
	go func() {
		for {
			line, err := m.in.ReadString('\n')
			select {
			case m.lines <- readResult{line: line, err: err}:
			case <-m.done:
				return
			}
			if err != nil {
				return
			}
		}
	}()
}

// readLine prints prompt and returns the next line without surrounding
// whitespace. A final line without a newline is still returned; io.EOF
// comes back only once nothing is left. A cancelled ctx wins over input.
func (m *Menu) readLine(ctx context.Context, prompt string) (string, error) {
	if m.readErr != nil {
		return "", m.readErr
	}
	if _, err := io.WriteString(m.out, prompt); err != nil {
		return "", err
	}

	var r readResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r = <-m.lines:
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if r.err != nil {
		m.readErr = r.err
		if !errors.Is(r.err, io.EOF) || r.line == "" {
			return "", r.err
		}
	}
	return strings.TrimSpace(r.line), nil
}

func (m *Menu) readInt(ctx context.Context, prompt, name string) (int, error) {
	answer, err := m.readLine(ctx, prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, &parsererror.InputError{Prompt: name, Value: answer, Err: ErrNotANumber}
	}
	return n, nil
}
