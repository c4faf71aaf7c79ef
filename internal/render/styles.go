package render

// Styles carries the inline CSS applied to every fragment the renderer
// produces. Passing it in explicitly keeps the renderer free of package
// state and lets tests pin exact output.
type Styles struct {
	// Container wraps each front-side section.
	Container string

	// QuestionBox highlights the question text.
	QuestionBox string

	// HintBox holds the instructional hint under the question.
	HintBox string

	// CorrectBox wraps the back-side answer reveal.
	CorrectBox string

	// ExplanationBox wraps the back-side explanation.
	ExplanationBox string

	// ReferenceBox wraps the back-side reference link.
	ReferenceBox string

	// CodeBackground is the background declaration for code blocks.
	CodeBackground string
}

// DefaultStyles returns the stock dark theme.
func DefaultStyles() Styles {
	return Styles{
		Container: "max-width: 600px; margin: 0 auto; font-size: 18px; " +
			"line-height: 1.8; padding: 15px; font-family: Arial, sans-serif; " +
			"color: #ffffff; background-color: #1a1a1a; border-radius: 8px;",
		QuestionBox: "padding: 12px; background-color: #1e3a8a; " +
			"border: 2px solid #3b82f6; border-left: 4px solid #60a5fa; " +
			"border-radius: 4px; color: #ffffff;",
		HintBox: "margin-top: 10px; padding: 6px 12px; " +
			"background-color: #854d0e; border: 1px solid #ca8a04; " +
			"border-radius: 4px; color: #fde047; font-size: 14px;",
		CorrectBox: "max-width: 600px; margin: 0 auto; " +
			"background-color: #14532d; border: 2px solid #22c55e; " +
			"padding: 15px; border-radius: 8px;",
		ExplanationBox: "max-width: 600px; margin: 20px auto; padding: 12px; " +
			"background-color: #1e3a8a; border: 2px solid #3b82f6; " +
			"border-radius: 6px; color: #ffffff;",
		ReferenceBox: "max-width: 600px; margin: 20px auto; padding: 8px; " +
			"background-color: #581c87; border: 2px solid #9333ea; " +
			"border-radius: 4px;",
		CodeBackground: "background-color: #0d1117;",
	}
}
