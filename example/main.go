// Demo for the generated settings wrapper. Regenerate with:
//
//go:generate go run github.com/vhdirk/gsettings-gen/cmd/gsettings-gen -file io.github.vhdirk.Example.gschema.xml -id io.github.vhdirk.Example -pkg main -o settings_gen.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

func main() {
	settings := NewSettings()

	// Defaults come straight from the schema.
	fmt.Printf("maximized: %v, size: %dx%d, volume: %.2f\n",
		settings.IsMaximized(), settings.WindowWidth(), settings.WindowHeight(), settings.Volume())

	cancel := settings.ConnectWindowWidthChanged(func() {
		fmt.Printf("window-width changed to %d\n", settings.WindowWidth())
	})
	defer cancel()

	if err := settings.SetWindowWidth(800); err != nil {
		log.Fatal("set window-width:", err)
	}
	if err := settings.SetPreferredAudioSource(PreferredAudioSourceDesktopAudio); err != nil {
		log.Fatal("set preferred-audio-source:", err)
	}

	source, err := settings.PreferredAudioSource()
	if err != nil {
		log.Fatal("read preferred-audio-source:", err)
	}
	fmt.Println("audio source:", source)

	// The store persists values as TOML.
	path := filepath.Join(os.TempDir(), "example-settings.toml")
	if err := settings.Store().SaveFile(path); err != nil {
		log.Fatal("save:", err)
	}
	fmt.Println("saved to", path)
}
