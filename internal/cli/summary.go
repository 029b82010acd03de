package cli

import (
	"fmt"
	"io"
	"os"

	"luhi_tools/internal/ledger"
	"luhi_tools/internal/month"
	"luhi_tools/internal/transfer"
)

type SummaryCommand struct {
	Args struct {
		File string `positional-arg-name:"<file>" description:"Exported time_data.json"`
	} `positional-args:"true" required:"true"`
	ShowMinutes bool `short:"m" long:"minutes" description:"Show minutes in durations"`

	out io.Writer
}

func (command *SummaryCommand) Execute(args []string) error {
	l := ledger.New(ledger.NewMemoryStore())
	if _, err := transfer.ImportFile(l, command.Args.File); err != nil {
		return err
	}

	out := command.out
	if out == nil {
		out = os.Stdout
	}
	return writeSummary(out, l, command.ShowMinutes)
}

func writeSummary(w io.Writer, l *ledger.Ledger, showMinutes bool) error {
	records, err := l.Records()
	if err != nil {
		return err
	}
	totals, err := l.Totals()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%-16s %10s %10s %10s\n", "Month", "Expected", "Actual", "Difference")
	for _, r := range records {
		fmt.Fprintf(w, "%-16s %10s %10s %10s\n",
			r.Name,
			month.FormatDuration(r.Expected, showMinutes),
			month.FormatDuration(r.Actual, showMinutes),
			month.FormatSigned(r.Diff, showMinutes),
		)
	}
	fmt.Fprintf(w, "%-16s %10s %10s %10s\n",
		fmt.Sprintf("Total (%d)", totals.Months),
		month.FormatDuration(totals.Expected, showMinutes),
		month.FormatDuration(totals.Actual, showMinutes),
		month.FormatSigned(totals.Diff, showMinutes),
	)
	fmt.Fprintf(w, "≈ %d work days\n", totals.WorkDays())
	return nil
}
