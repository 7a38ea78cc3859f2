package palette

import (
	"sort"

	"github.com/opencode-ai/contrast/internal/color"
	"github.com/opencode-ai/contrast/internal/contrast"
)

// Finding is one role evaluated against one background.
type Finding struct {
	Role       string `json:"role"`
	Background string `json:"background_name"`
	contrast.Result
}

// Duplicate is a color value shared by several roles.
type Duplicate struct {
	Color color.Color `json:"color"`
	Roles []string    `json:"roles"`
}

// Report is the audit of a single palette.
type Report struct {
	Palette    string      `json:"palette"`
	Source     string      `json:"source"`
	Findings   []Finding   `json:"findings"`
	Duplicates []Duplicate `json:"duplicates,omitempty"`
}

// Failures returns findings below the minimum threshold.
func (r Report) Failures() []Finding {
	failed := make([]Finding, 0)
	for _, f := range r.Findings {
		if !f.Passes {
			failed = append(failed, f)
		}
	}
	return failed
}

// Passed reports whether every finding meets its minimum.
func (r Report) Passed() bool {
	for _, f := range r.Findings {
		if !f.Passes {
			return false
		}
	}
	return true
}

// Audit evaluates every role against every background it is drawn on.
// Pinned roles are checked only against their own background, and a
// background that any role is pinned to is not shared with the rest.
// Findings are ordered by background (primary first) then role.
func Audit(p *Palette, ev *contrast.Evaluator) Report {
	dedicated := make(map[string]bool, len(p.On))
	for _, bg := range p.On {
		dedicated[bg] = true
	}

	report := Report{
		Palette:    p.Name,
		Source:     p.Source,
		Findings:   make([]Finding, 0, len(p.Colors)*len(p.Backgrounds)),
		Duplicates: Duplicates(p),
	}

	for _, bgName := range p.BackgroundNames() {
		bg := p.Backgrounds[bgName]
		for _, role := range p.RoleNames() {
			pinned, isPinned := p.On[role]
			if isPinned && pinned != bgName {
				continue
			}
			if !isPinned && dedicated[bgName] {
				continue
			}
			report.Findings = append(report.Findings, Finding{
				Role:       role,
				Background: bgName,
				Result:     ev.Evaluate(bg, p.Colors[role], p.IsLargeText(role)),
			})
		}
	}
	return report
}

// Duplicates lists color values used by more than one role, sorted by color.
func Duplicates(p *Palette) []Duplicate {
	byColor := make(map[color.Color][]string)
	for _, role := range p.RoleNames() {
		c := p.Colors[role]
		byColor[c] = append(byColor[c], role)
	}

	dups := make([]Duplicate, 0)
	for c, roles := range byColor {
		if len(roles) > 1 {
			dups = append(dups, Duplicate{Color: c, Roles: roles})
		}
	}
	sort.Slice(dups, func(i, j int) bool {
		return dups[i].Color.Hex() < dups[j].Color.Hex()
	})
	return dups
}
