// Package cli implements the interactive terminal drill loop on top of
// the session service.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/tpnguyen/vocadrill/internal/difficulty"
	"github.com/tpnguyen/vocadrill/internal/learn"
	"github.com/tpnguyen/vocadrill/internal/session"
)

var (
	promptColor  = color.New(color.FgCyan, color.Bold)
	correctColor = color.New(color.FgGreen)
	minorColor   = color.New(color.FgYellow)
	wrongColor   = color.New(color.FgRed)
	faintColor   = color.New(color.Faint)
)

// Drill runs the interactive question loop for one session until the
// deck is finished or the learner quits.
type Drill struct {
	service *session.Service
	in      *bufio.Scanner
	out     io.Writer
}

// NewDrill creates a drill reading answers from in and writing to out.
func NewDrill(service *session.Service, in io.Reader, out io.Writer) *Drill {
	return &Drill{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run drives the loop for the given user and library.
func (d *Drill) Run(ctx context.Context, userID, libraryID string) error {
	sc, err := d.service.GetSession(ctx, userID, libraryID)
	if err != nil {
		return err
	}
	if sc.RestoreErr != nil {
		faintColor.Fprintf(d.out, "saved progress was unreadable, starting over: %v\n", sc.RestoreErr)
	}

	fmt.Fprintln(d.out, "Answer each question. Type !hard to flag a card, !quit to stop.")
	fmt.Fprintln(d.out)

	for {
		q := sc.NextQuestion()
		if q == nil {
			correctColor.Fprintln(d.out, "All cards mastered. Nothing left to review.")
			return sc.Flush(ctx)
		}

		answer, quit := d.ask(q)
		if quit {
			if err := sc.Flush(ctx); err != nil {
				return err
			}
			fmt.Fprintln(d.out, "Progress saved.")
			return nil
		}
		if answer == "!hard" {
			if err := sc.MarkCardAsHard(ctx, q.CardID); err != nil {
				return err
			}
			minorColor.Fprintln(d.out, "Marked as hard; it will come back soon.")
			fmt.Fprintln(d.out)
			continue
		}

		result, err := sc.SubmitAnswer(ctx, q.CardID, answer)
		if err != nil {
			return err
		}
		d.showResult(sc, q, result)

		if meta, ok := sc.DifficultyMeta(q.CardID); ok && meta.ShouldPrompt && meta.CanAdjust {
			if err := d.promptDifficulty(ctx, sc, q.CardID); err != nil {
				return err
			}
		}
		fmt.Fprintln(d.out)
	}
}

// ask renders one question and reads the learner's input.
// The second return is true when input ended or the learner quit.
func (d *Drill) ask(q *learn.Question) (string, bool) {
	promptColor.Fprintln(d.out, q.Prompt)
	if q.Mode == learn.ModeMultipleChoice {
		for i, opt := range q.Options {
			fmt.Fprintf(d.out, "  %d) %s\n", i+1, opt)
		}
	}
	fmt.Fprint(d.out, "> ")

	if !d.in.Scan() {
		return "", true
	}
	line := strings.TrimSpace(d.in.Text())
	if line == "!quit" {
		return "", true
	}

	// For multiple choice, a bare number picks that option.
	if q.Mode == learn.ModeMultipleChoice {
		if idx, err := strconv.Atoi(line); err == nil && idx >= 1 && idx <= len(q.Options) {
			return q.Options[idx-1], false
		}
	}
	return line, false
}

func (d *Drill) showResult(sc *session.Context, q *learn.Question, result learn.Result) {
	cs := sc.GetCardState(q.CardID)
	switch result {
	case learn.ResultCorrect:
		correctColor.Fprintln(d.out, "Correct!")
	case learn.ResultCorrectMinor:
		minorColor.Fprintln(d.out, "Close enough, watch the spelling.")
	case learn.ResultIncorrect:
		wrongColor.Fprintln(d.out, "Incorrect.")
	case learn.ResultSkip:
		faintColor.Fprintln(d.out, "Skipped.")
		return
	}
	if cs != nil {
		answer := "?"
		if card, ok := sc.Card(q.CardID); ok {
			answer = card.Back
		}
		faintColor.Fprintf(d.out, "answer: %s  mastery: %d/%d  wrong: %d\n",
			answer, cs.Mastery, learn.MaxMastery, cs.WrongCount)
	}
}

func (d *Drill) promptDifficulty(ctx context.Context, sc *session.Context, cardID string) error {
	fmt.Fprintln(d.out, "How hard is this card for you?")
	fmt.Fprintln(d.out, "  1) very hard   2) hard   3) again   4) normal   (enter to skip)")
	fmt.Fprint(d.out, "> ")

	if !d.in.Scan() {
		return nil
	}
	choice, ok := parseChoiceInput(strings.TrimSpace(d.in.Text()))
	if !ok {
		return nil
	}

	err := sc.RecordChoice(ctx, cardID, choice)
	var locked *difficulty.RatingLockedError
	if errors.As(err, &locked) {
		faintColor.Fprintln(d.out, "Your last rating for this card is still in effect.")
		return nil
	}
	return err
}

func parseChoiceInput(s string) (difficulty.Choice, bool) {
	switch s {
	case "1":
		return difficulty.ChoiceVeryHard, true
	case "2":
		return difficulty.ChoiceHard, true
	case "3":
		return difficulty.ChoiceAgain, true
	case "4":
		return difficulty.ChoiceNormal, true
	}
	return "", false
}
