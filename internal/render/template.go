package render

// Card templates for the note model. Each note fills every field, so the
// front template can concatenate all front slots: exactly one of Options,
// OrderItems and CodeBlock is non-empty for any given card, and the rest
// vanish.
const (
	// FrontTemplate is the question side of the single card template.
	FrontTemplate = "{{Question}}{{Options}}{{OrderItems}}{{CodeBlock}}"

	// BackTemplate repeats the front above the answer divider, then the
	// reveal sections.
	BackTemplate = "{{FrontSide}}<hr id=answer>" +
		"{{Answer}}" +
		"{{Explanation}}" +
		"{{KeyPoints}}" +
		"{{Reference}}"

	// CardCSS is the model-level stylesheet. Fragments carry their own
	// inline styles; this only sets the dark canvas behind them.
	CardCSS = ".card { background-color: #1a1a1a; color: #ffffff; " +
		"font-family: Arial, sans-serif; font-size: 18px; }"

	// TemplateName is the name of the model's single card template.
	TemplateName = "Card 1"
)
