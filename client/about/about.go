package about

import "github.com/pterm/pterm"

// HandleAbout выводит сообщение с помощью.
func HandleAbout() {
	title, _ := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("Zig", pterm.NewStyle(pterm.FgLightMagenta)),
		pterm.NewLettersFromStringWithStyle("Zin", pterm.NewStyle(pterm.FgCyan))).
		Srender()

	pterm.DefaultCenter.Println(title)
	pterm.DefaultCenter.WithCenterEachLineSeparately().Println(
		"NFA to DFA conversion and tokenizing tool\n" +
			"GitHub repo: 'https://github.com/GDVFox/zigzin'")
}
