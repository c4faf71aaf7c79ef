package render

import (
	"fmt"
	"strings"

	"github.com/phrazzld/deckpush/internal/domain"
)

// optionItemStyle is the resting look of a clickable option row.
const optionItemStyle = "margin-bottom: 12px; cursor: pointer; padding: 8px; " +
	"background-color: #2a2a2a; border-radius: 4px; border: 2px solid #444;"

// orderItemStyle is the look of one reorderable row.
const orderItemStyle = "margin-bottom: 8px; padding: 10px; " +
	"background-color: #2a2a2a; border-radius: 4px; border: 2px solid #444; " +
	"display: flex; align-items: center; gap: 10px;"

// arrowButtonStyle is the look of the up and down reorder buttons.
const arrowButtonStyle = "padding: 2px 8px; background: #374151; color: #fff; " +
	"border: 1px solid #555; border-radius: 3px; cursor: pointer; font-size: 14px;"

// checkboxStyle keeps the multi-select checkbox aligned with its label and
// transparent to clicks, so the row handler owns all state changes.
const checkboxStyle = "margin-right: 8px; width: 18px; height: 18px; " +
	"vertical-align: middle; pointer-events: none;"

// codeLineStyle is the look of one clickable code line on the front side.
const codeLineStyle = "padding: 4px 10px; cursor: pointer; " +
	"border-left: 3px solid transparent; " +
	"font-family: 'Courier New', monospace; font-size: 14px; " +
	"white-space: pre; color: #e6edf3;"

// singleChoiceToggle highlights the clicked option and resets its siblings,
// so at most one option ever shows as picked. Clicking a highlighted option
// clears it. Browsers echo hex colors back as rgb() from the style object,
// hence the rgb comparison.
const singleChoiceToggle = "var s=this.style; " +
	"if(s.borderColor==='rgb(59, 130, 246)'){s.borderColor='#444';s.backgroundColor='#2a2a2a';}" +
	"else{var p=this.parentNode.children;for(var j=0;j<p.length;j++){p[j].style.borderColor='#444';p[j].style.backgroundColor='#2a2a2a';}" +
	"s.borderColor='#3b82f6';s.backgroundColor='#1e3a5a';}"

// orderScript drives the ordering front: moveItem swaps a row with its
// neighbor, renumber rewrites the position labels, and shuffleOrder
// randomizes the list on load so the card never shows the canonical order.
const orderScript = "<script>" +
	"function moveItem(elId, dir) {" +
	"  var list = document.getElementById('orderList');" +
	"  var el = document.getElementById(elId);" +
	"  if (!el) return;" +
	"  var items = list.children;" +
	"  var curIdx = -1;" +
	"  for (var k = 0; k < items.length; k++) {" +
	"    if (items[k] === el) { curIdx = k; break; }" +
	"  }" +
	"  if (curIdx < 0) return;" +
	"  var target = curIdx + dir;" +
	"  if (target < 0 || target >= items.length) return;" +
	"  if (dir === -1) {" +
	"    list.insertBefore(el, items[target]);" +
	"  } else {" +
	"    list.insertBefore(items[target], el);" +
	"  }" +
	"  renumber();" +
	"}" +
	"function renumber() {" +
	"  var list = document.getElementById('orderList');" +
	"  var items = list.children;" +
	"  for (var i = 0; i < items.length; i++) {" +
	"    items[i].querySelector('span').textContent = (i + 1) + '.';" +
	"  }" +
	"}" +
	"function shuffleOrder() {" +
	"  var list = document.getElementById('orderList');" +
	"  var items = Array.prototype.slice.call(list.children);" +
	"  for (var i = items.length - 1; i > 0; i--) {" +
	"    var j = Math.floor(Math.random() * (i + 1));" +
	"    var temp = items[i]; items[i] = items[j]; items[j] = temp;" +
	"  }" +
	"  for (var i = 0; i < items.length; i++) {" +
	"    list.appendChild(items[i]);" +
	"  }" +
	"  renumber();" +
	"}" +
	"setTimeout(shuffleOrder, 0);" +
	"</script>"

// Question renders the front-side question box. Multi-select, ordering and
// code-hotarea cards get an instructional hint under the question; the
// multi-select hint is suppressed when the question text already tells the
// reader to select.
func (r *Renderer) Question(text string, cardType domain.CardType, correctCount int) string {
	hint := ""
	switch cardType {
	case domain.CardTypeMultiSelect:
		if !strings.Contains(strings.ToLower(text), "select") {
			plural := ""
			if correctCount > 1 {
				plural = "s"
			}
			hint = fmt.Sprintf(`<div style="%s">Select %d answer%s</div>`,
				r.styles.HintBox, correctCount, plural)
		}
	case domain.CardTypeOrdering:
		hint = fmt.Sprintf(`<div style="%s">Drag or use arrows to arrange in correct order</div>`,
			r.styles.HintBox)
	case domain.CardTypeCodeHotarea:
		hint = fmt.Sprintf(`<div style="%s">Click on the line(s) with errors</div>`,
			r.styles.HintBox)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div style="%s">`, r.styles.Container)
	b.WriteString(`<strong style="color: #ffffff; font-size: 20px;">Question:</strong><br><br>`)
	fmt.Fprintf(&b, `<div style="%s">%s</div>`, r.styles.QuestionBox, esc(text))
	b.WriteString(hint)
	b.WriteString("</div>")
	return b.String()
}

// OptionsSingle renders the clickable option list for single-choice cards.
// Options are lettered A, B, C in input order.
func (r *Renderer) OptionsSingle(options []string) string {
	var items strings.Builder
	for i, opt := range options {
		fmt.Fprintf(&items, `<li style="%s" onclick="%s"><strong>%s.</strong> %s</li>`,
			optionItemStyle, singleChoiceToggle, optionLetter(i), esc(opt))
	}
	return r.optionsBlock(items.String())
}

// OptionsMulti renders the checkbox option list for multi-select cards.
// Clicking anywhere on a row toggles its checkbox and highlight.
func (r *Renderer) OptionsMulti(options []string) string {
	var items strings.Builder
	for i, opt := range options {
		toggle := fmt.Sprintf(
			"var cb=document.getElementById('cb_%d');cb.checked=!cb.checked;"+
				"var el=document.getElementById('opt_%d');"+
				"if(cb.checked){el.style.borderColor='#3b82f6';el.style.backgroundColor='#1e3a5a';}"+
				"else{el.style.borderColor='#444';el.style.backgroundColor='#2a2a2a';}",
			i, i)
		fmt.Fprintf(&items, `<li style="%s" id="opt_%d" onclick="%s">`,
			optionItemStyle, i, toggle)
		fmt.Fprintf(&items, `<input type="checkbox" id="cb_%d" style="%s" onclick="event.stopPropagation()">`,
			i, checkboxStyle)
		fmt.Fprintf(&items, `<strong>%s.</strong> %s</li>`, optionLetter(i), esc(opt))
	}
	return r.optionsBlock(items.String())
}

// optionsBlock wraps rendered option rows in the shared Options section.
func (r *Renderer) optionsBlock(items string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<div style=\"%s\">\n", r.styles.Container)
	b.WriteString("<strong style=\"color: #ffffff; font-size: 18px;\">Options:</strong>\n")
	b.WriteString("<ul style=\"margin-top: 10px; margin-left: 20px; " +
		"line-height: 1.8; color: #ffffff; list-style: none; padding-left: 0;\">\n")
	b.WriteString(items)
	b.WriteString("</ul>\n</div>")
	return b.String()
}

// OrderItems renders the reorderable list for ordering cards. Items arrive
// in canonical order; the embedded script shuffles them as soon as the card
// is shown so the front never leaks the solution.
func (r *Renderer) OrderItems(items []string) string {
	var lis strings.Builder
	for i, item := range items {
		fmt.Fprintf(&lis, `<li id="ord_%d" style="%s">`, i, orderItemStyle)
		fmt.Fprintf(&lis, `<span style="min-width: 24px; color: #9ca3af;">%d.</span>`, i+1)
		fmt.Fprintf(&lis, `<span style="flex: 1;">%s</span>`, esc(item))
		lis.WriteString(`<span style="display: flex; flex-direction: column; gap: 2px;">`)
		fmt.Fprintf(&lis, `<button onclick="moveItem('ord_%d',-1)" style="%s">&#9650;</button>`,
			i, arrowButtonStyle)
		fmt.Fprintf(&lis, `<button onclick="moveItem('ord_%d',1)" style="%s">&#9660;</button>`,
			i, arrowButtonStyle)
		lis.WriteString("</span></li>")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<div style=\"%s\">\n", r.styles.Container)
	b.WriteString("<strong style=\"color: #ffffff; font-size: 18px;\">Arrange in order:</strong>\n")
	b.WriteString("<ul id=\"orderList\" style=\"margin-top: 10px; list-style: none; padding-left: 0;\">\n")
	b.WriteString(lis.String())
	b.WriteString("</ul>\n")
	b.WriteString(orderScript)
	b.WriteString("\n</div>")
	return b.String()
}

// CodeHotarea renders the clickable code block for code-hotarea cards.
// Line numbers are right-aligned to two columns; whitespace is preserved so
// indentation survives.
func (r *Renderer) CodeHotarea(codeLines []string, language string) string {
	var lines strings.Builder
	for i, line := range codeLines {
		toggle := fmt.Sprintf(
			"var el=document.getElementById('codeline_%d');"+
				"if(el.style.backgroundColor==='rgb(30, 58, 90)'){el.style.backgroundColor='transparent';el.style.borderLeftColor='transparent';}"+
				"else{el.style.backgroundColor='#1e3a5a';el.style.borderLeftColor='#3b82f6';}",
			i)
		fmt.Fprintf(&lines, `<div id="codeline_%d" style="%s" onclick="%s">`,
			i, codeLineStyle, toggle)
		fmt.Fprintf(&lines, `<span style="color: #6e7681; margin-right: 12px; user-select: none;">%2d</span>`,
			i+1)
		lines.WriteString(esc(line))
		lines.WriteString("</div>")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<div style=\"%s\">\n", r.styles.Container)
	fmt.Fprintf(&b, "<strong style=\"color: #ffffff; font-size: 18px;\">Code (%s):</strong>\n", esc(language))
	fmt.Fprintf(&b, "<div style=\"%s\">\n", r.codeFrameStyle())
	b.WriteString(lines.String())
	b.WriteString("</div>\n</div>")
	return b.String()
}

// codeFrameStyle is the scrollable dark frame around rendered code lines,
// shared by the front hot area and the back error reveal.
func (r *Renderer) codeFrameStyle() string {
	return fmt.Sprintf("margin-top: 10px; %s border-radius: 6px; "+
		"padding: 12px 0; overflow-x: auto; border: 1px solid #30363d;",
		r.styles.CodeBackground)
}
