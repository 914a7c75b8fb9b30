package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for Canopy.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Forest gradient, dark to light.
	s1 := termenv.String("   ____                            ").Foreground(p.Color("#166534"))
	s2 := termenv.String("  / ___|__ _ _ __   ___  _ __  _   _ ").Foreground(p.Color("#15803d"))
	s3 := termenv.String(" | |   / _` | '_ \\ / _ \\| '_ \\| | | |").Foreground(p.Color("#16a34a"))
	s4 := termenv.String(" | |__| (_| | | | | (_) | |_) | |_| |").Foreground(p.Color("#22c55e"))
	s5 := termenv.String("  \\____\\__,_|_| |_|\\___/| .__/ \\__, |").Foreground(p.Color("#4ade80"))
	s6 := termenv.String("                        |_|    |___/ ").Foreground(p.Color("#86efac"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
