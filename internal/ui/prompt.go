package ui

// Prompt is the fixed interactive prompt text. It is deliberately not
// run through a lipgloss style: readline needs to know its exact visible
// width, and an ANSI-wrapped prompt risks throwing off cursor placement
// for a two-character prompt with no real styling need.
const Prompt = "$ "

// Banner renders the one-line startup banner printed when dwsh attaches
// to an interactive terminal, styled for cosmetic effect only.
func Banner() string {
	return BannerStyle.Render("dwsh")
}
