package render

import (
	"fmt"
	"strings"
)

// answerRowStyle is the look of one revealed answer row on multi-select
// backs.
const answerRowStyle = "margin: 4px 0; padding: 6px 10px; " +
	"background-color: #14532d; border: 1px solid #22c55e; border-radius: 4px;"

// orderAnswerRowStyle is the look of one revealed row on ordering backs.
const orderAnswerRowStyle = "margin: 4px 0; padding: 8px 12px; " +
	"background-color: #14532d; border: 1px solid #22c55e; " +
	"border-radius: 4px; display: flex; gap: 10px;"

// AnswerSingle renders the back-side reveal for single-choice cards as
// "B (option text)", or the bare letter when it points outside the option
// list.
func (r *Renderer) AnswerSingle(letter string, options []string) string {
	display := esc(letter)
	up := strings.ToUpper(letter)
	if len(up) == 1 {
		idx := int(up[0]) - 'A'
		if idx >= 0 && idx < len(options) && options[idx] != "" {
			display = fmt.Sprintf("%s (%s)", esc(letter), esc(options[idx]))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div style="%s">`, r.styles.CorrectBox)
	b.WriteString(`<span style="color: #4ade80; font-weight: bold; font-size: 20px;">&#10004; Correct Answer:</span> `)
	fmt.Fprintf(&b, `<strong style="font-size: 18px; color: #86efac;">%s</strong>`, display)
	b.WriteString("</div>")
	return b.String()
}

// AnswerMulti renders the back-side reveal for multi-select cards: one row
// per correct letter, in answer order, with the total in the heading.
func (r *Renderer) AnswerMulti(letters []string, options []string) string {
	var items strings.Builder
	for _, letter := range letters {
		optionText := ""
		up := strings.ToUpper(letter)
		if len(up) == 1 {
			idx := int(up[0]) - 'A'
			if idx >= 0 && idx < len(options) {
				optionText = options[idx]
			}
		}
		fmt.Fprintf(&items, `<div style="%s">`, answerRowStyle)
		fmt.Fprintf(&items, `<strong style="color: #86efac;">%s.</strong> `, esc(letter))
		fmt.Fprintf(&items, `<span style="color: #bbf7d0;">%s</span></div>`, esc(optionText))
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div style="%s">`, r.styles.CorrectBox)
	fmt.Fprintf(&b, `<span style="color: #4ade80; font-weight: bold; font-size: 20px;">&#10004; Correct Answers (%d):</span>`, len(letters))
	fmt.Fprintf(&b, `<div style="margin-top: 8px;">%s</div>`, items.String())
	b.WriteString("</div>")
	return b.String()
}

// AnswerOrdering renders the back-side reveal for ordering cards: the items
// numbered in canonical order as they appear in the deck file.
func (r *Renderer) AnswerOrdering(orderItems []string) string {
	var items strings.Builder
	for i, item := range orderItems {
		fmt.Fprintf(&items, `<div style="%s">`, orderAnswerRowStyle)
		fmt.Fprintf(&items, `<strong style="color: #4ade80; min-width: 24px;">%d.</strong>`, i+1)
		fmt.Fprintf(&items, `<span style="color: #bbf7d0;">%s</span></div>`, esc(item))
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div style="%s">`, r.styles.CorrectBox)
	b.WriteString(`<span style="color: #4ade80; font-weight: bold; font-size: 20px;">&#10004; Correct Order:</span>`)
	fmt.Fprintf(&b, `<div style="margin-top: 8px;">%s</div>`, items.String())
	b.WriteString("</div>")
	return b.String()
}

// AnswerCodeHotarea renders the back-side reveal for code-hotarea cards:
// the full code block with the faulty lines highlighted and marked. Error
// positions are zero-based.
func (r *Renderer) AnswerCodeHotarea(codeLines []string, errorPositions []int) string {
	isError := make(map[int]bool, len(errorPositions))
	for _, pos := range errorPositions {
		isError[pos] = true
	}

	var lines strings.Builder
	for i, line := range codeLines {
		bg := "transparent"
		borderColor := "transparent"
		marker := ""
		if isError[i] {
			bg = "#3b1219"
			borderColor = "#ef4444"
			marker = ` <span style="color: #ef4444; font-weight: bold;">&larr; ERROR</span>`
		}
		fmt.Fprintf(&lines, `<div style="padding: 4px 10px; background-color: %s; border-left: 3px solid %s; `, bg, borderColor)
		lines.WriteString("font-family: 'Courier New', monospace; font-size: 14px; white-space: pre; color: #e6edf3;\">")
		fmt.Fprintf(&lines, `<span style="color: #6e7681; margin-right: 12px;">%2d</span>`, i+1)
		lines.WriteString(esc(line))
		lines.WriteString(marker)
		lines.WriteString("</div>")
	}

	// The error frame is the correct-answer box recolored from green to red.
	errorBox := strings.ReplaceAll(r.styles.CorrectBox, "#14532d", "#1a1a1a")
	errorBox = strings.ReplaceAll(errorBox, "#22c55e", "#ef4444")

	plural := ""
	if len(errorPositions) > 1 {
		plural = "s"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div style="%s">`, errorBox)
	fmt.Fprintf(&b, `<span style="color: #ef4444; font-weight: bold; font-size: 20px;">&#128681; Error Line%s:</span>`, plural)
	fmt.Fprintf(&b, "<div style=\"%s\">\n", r.codeFrameStyle())
	b.WriteString(lines.String())
	b.WriteString("</div></div>")
	return b.String()
}

// Explanation renders the back-side explanation box.
func (r *Renderer) Explanation(text string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div style="%s">`, r.styles.ExplanationBox)
	b.WriteString(`<span style="color: #60a5fa; font-weight: bold; font-size: 20px;">&#128214; Explanation:</span><br><br>`)
	b.WriteString(esc(text))
	b.WriteString("</div>")
	return b.String()
}

// KeyPoints renders the back-side key point list.
func (r *Renderer) KeyPoints(points []string) string {
	var items strings.Builder
	for _, p := range points {
		fmt.Fprintf(&items, `<li style="margin-bottom: 6px;">%s</li>`, esc(p))
	}

	var b strings.Builder
	b.WriteString("<div style=\"max-width: 600px; margin: 20px auto; color: #ffffff;\">\n")
	b.WriteString("<span style=\"color: #fb923c; font-weight: bold; font-size: 20px;\">&#128273; Key Points:</span>\n")
	b.WriteString("<ul style=\"margin-top: 10px; margin-left: 20px; line-height: 1.8; color: #ffffff;\">\n")
	b.WriteString(items.String())
	b.WriteString("</ul>\n</div>")
	return b.String()
}

// Reference renders the back-side reference link. Anything that is not an
// http or https URL is replaced with an inert "#" so deck files cannot
// smuggle javascript: or other schemes into the href.
func (r *Renderer) Reference(url string) string {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "#"
	}
	safe := esc(url)

	var b strings.Builder
	fmt.Fprintf(&b, `<div style="%s">`, r.styles.ReferenceBox)
	b.WriteString(`<span style="color: #c084fc; font-weight: bold; font-size: 18px;">&#128279; Reference:</span><br>`)
	fmt.Fprintf(&b, `<a href="%s" style="color: #a78bfa; text-decoration: underline;" target="_blank">%s</a></div>`, safe, safe)
	return b.String()
}
