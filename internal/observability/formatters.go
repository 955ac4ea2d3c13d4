// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/andras/talent-sonar/internal/matching"
	"github.com/andras/talent-sonar/internal/outreach"
	"github.com/andras/talent-sonar/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJob outputs a human-readable summary of a job posting.
func (p *Printer) PrintJob(job *types.Job) {
	if job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:      %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Department: %s\n", job.Department))
	sb.WriteString(fmt.Sprintf("Location:   %s\n", job.Location))
	sb.WriteString(fmt.Sprintf("Seniority:  %s\n", job.ExperienceLevel))
	sb.WriteString("\n")

	if len(job.Requirements) > 0 {
		sb.WriteString("Requirements:\n")
		count := min(len(job.Requirements), maxItemsToShow)
		for i := 0; i < count; i++ {
			req := job.Requirements[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)", req.Skill, req.Level))
			if !req.Required {
				sb.WriteString(" [optional]")
			}
			sb.WriteString("\n")
		}
		if len(job.Requirements) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.Requirements)-maxItemsToShow))
		}
	}

	p.printBox("JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs the top ranked matches with scores and skills.
func (p *Printer) PrintMatches(result *matching.Result) {
	if result == nil || len(result.Matches) == 0 {
		p.printBox("MATCH RESULTS", "No candidates cleared the score threshold")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Evaluated %d candidates, returning %d\n\n",
		result.TotalCandidatesEvaluated, len(result.Matches)))

	count := min(len(result.Matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := result.Matches[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, m.CandidateID))
		sb.WriteString(fmt.Sprintf("    %s\n", types.MatchSummary(m)))

		matched := types.MatchedSkills(m)
		if len(matched) > 0 {
			names := make([]string, len(matched))
			for j, sm := range matched {
				names[j] = sm.SkillName
			}
			skills := strings.Join(names, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(result.Matches)-maxItemsToShow))
	}

	p.printBox("MATCH RESULTS", sb.String())
}

// PrintOutreach outputs a drafted outreach message.
func (p *Printer) PrintOutreach(resp *outreach.DraftResponse) {
	if resp == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Subject: %s\n", resp.Message.Subject))
	sb.WriteString(fmt.Sprintf("Tone:    %s\n", resp.Message.Tone))

	if len(resp.Message.PersonalizationElements) > 0 {
		sb.WriteString("\nPersonalization:\n")
		for _, el := range resp.Message.PersonalizationElements {
			sb.WriteString(fmt.Sprintf("  • %s\n", el))
		}
	}

	if len(resp.AlternativeSubjects) > 0 {
		sb.WriteString("\nAlternative subjects:\n")
		for _, alt := range resp.AlternativeSubjects {
			if len(alt) > 50 {
				alt = alt[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", alt))
		}
	}

	p.printBox("OUTREACH DRAFT", strings.TrimSuffix(sb.String(), "\n"))

	// The body prints unboxed so it stays copy-pasteable.
	fmt.Fprintf(p.out, "\n%s\n", resp.Message.Body) //nolint:errcheck
}
