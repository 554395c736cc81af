package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/cee-lo/domain/ceelo"
	"github.com/luca-patrignani/cee-lo/domain/dice"
)

const (
	optShake  = "Shake dice"
	optRoll   = "Roll dice"
	optHelp   = "Print help"
	optHowTo  = "How to play"
	optQuit   = "Quit game"
	menuTitle = "Let's play Cee-Lo"
)

var menuOptions = []string{optShake, optRoll, optHelp, optHowTo, optQuit}

// ASCII art by R. Shawn Butler
const diceArt = `   _______
  /\ o o o\
 /o \ o o o\_______
<    >------>   o /|
 \ o/  o   /_____/o|
  \/______/     |oo|
        |   o   |o/
        |_______|/`

const rules = `Cee-Lo (also known as 456) is a dice game played between multiple people originating from mainland China.

It is very simple to play. You have 3 6-sided dice.
One player rolls and gets three numbers, then the second player rolls and gets three numbers.

If you get [4-5-6], then you automatically win!
If you get two of the same numbers, then the third different number is the number
that will be used to compare against the other player's number.

For example, I roll [2-2-3] and you roll [6-6-1], so we are comparing [3] vs. [1],
so my [3] is bigger than your [1] so I win that round.
Another example, if you roll three of the same number, that is better than any combination of two of the same number.
EG: [2-2-2] is better than [3-3-6]
Again, if you roll a [4-5-6] then you automatically win!
You only have three chances to roll any of these patterns,
otherwise it is the computer's turn to roll and even if it gets a 1 (i.e. [6-6-1]) it beats you.
Make sense? Well then go play and emerge a winner!`

func invalidAttemptLine(p ceelo.Party, r dice.Roll, attempt int) string {
	if p == ceelo.PartyUser {
		return fmt.Sprintf("You rolled a %s, which is not valid. Attempt #%d.", r, attempt)
	}
	return fmt.Sprintf("The computer rolled a %s, which is not valid. Attempt #%d.", r, attempt)
}

func outOfTurnsLine(p ceelo.Party) string {
	if p == ceelo.PartyUser {
		return "You are out of turns and you rolled no valid numbers."
	}
	return "The computer is out of turns and the computer rolled no valid numbers."
}

func finalRollLine(p ceelo.Party, r dice.Roll) string {
	if p == ceelo.PartyUser {
		return fmt.Sprintf("Your final roll is a %s.", r)
	}
	return fmt.Sprintf("The computer's final roll is a %s.", r)
}

func resultLine(res ceelo.RoundResult) string {
	user, computer := res.User.Final, res.Computer.Final
	switch res.Winner {
	case ceelo.UserWins:
		return fmt.Sprintf("Your %s beat the computer's %s! Great work :D", user, computer)
	case ceelo.ComputerWins:
		return fmt.Sprintf("Ah dang, your %s lost to the computer's %s! Roll again :|", user, computer)
	default:
		return fmt.Sprintf("It's a tie between %s and %s! So much suspense ...", user, computer)
	}
}

func statisticsLines(s ceelo.Snapshot) [2]string {
	c := s.Computer()
	return [2]string{
		fmt.Sprintf("You have %d wins, %d losses, and %d ties so far.", s.Wins, s.Losses, s.Ties),
		fmt.Sprintf("The computer has %d wins, %d losses, and %d ties so far.", c.Wins, c.Losses, c.Ties),
	}
}

func describeOutcome(o dice.Outcome) string {
	switch o.Kind() {
	case dice.KindFourFiveSix:
		return "4-5-6, automatic win"
	case dice.KindTriple:
		return fmt.Sprintf("three %ds", o.Rank-6)
	case dice.KindPoint:
		return fmt.Sprintf("point of %d", o.Rank)
	default:
		return "no score"
	}
}

func printBanner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Cee", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("-", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("Lo", pterm.FgRed.ToStyle()),
	).Render()
}

func printMenu() {
	body := ""
	for i, opt := range menuOptions {
		body += fmt.Sprintf("%d. %s\n", i+1, opt)
	}
	pterm.DefaultBox.WithTitle(pterm.LightYellow(menuTitle)).WithTitleTopCenter().
		WithHorizontalPadding(4).Println(body)
}

func printRules() {
	pterm.DefaultSection.Println("How to play")
	pterm.Println(rules)
	pterm.Println()
	pterm.Println(diceArt)
}

func printTurn(t ceelo.Turn) {
	for i, r := range t.Attempts {
		if i == len(t.Attempts)-1 && t.Outcome.Valid {
			break
		}
		pterm.Warning.Println(invalidAttemptLine(t.Party, r, i+1))
	}
	if t.OutOfTurns() {
		pterm.Warning.Println(outOfTurnsLine(t.Party))
	}
	pterm.Info.Printfln("%s (%s)", finalRollLine(t.Party, t.Final), describeOutcome(t.Outcome))
}

func printRound(res ceelo.RoundResult) {
	printTurn(res.User)
	pterm.Println()
	printTurn(res.Computer)
	pterm.Println()

	switch res.Winner {
	case ceelo.UserWins:
		pterm.Success.Println(resultLine(res))
	case ceelo.ComputerWins:
		pterm.Error.Println(resultLine(res))
	default:
		pterm.Info.Println(resultLine(res))
	}
}

func printStatistics(name string, s ceelo.Snapshot) {
	lines := statisticsLines(s)
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	pbox.WithTitle(pterm.LightCyan(name)).WithTitleTopLeft().Println(lines[0] + "\n" + lines[1])
}
