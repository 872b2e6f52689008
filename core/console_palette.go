package core

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/Germanized/GradleInstaller/contracts"
)

var ConsoleKey = contracts.Namespace{Hive: contracts.UserHive, Key: "Console"}

// consoleColorTable holds COLORREF values (0x00BBGGRR) for ColorTable00..15.
var consoleColorTable = [16]uint32{
	0x001E1E1E, 0x00C84A33, 0x003EC84A, 0x00D0B000,
	0x00334AC8, 0x00C83ED0, 0x000080D0, 0x00E0E0E0,
	0x00808080, 0x00FF8A70, 0x007EFF8A, 0x00FFFF00,
	0x00708AFF, 0x00FF7EF0, 0x0000FFFF, 0x00FFFFFF,
}

const (
	consoleScreenColors = 0x0000000E // yellow on black
	consolePopupColors  = 0x000000F5
)

type ConsolePalette struct {
	store contracts.KeyValueStore
}

func NewConsolePalette(store contracts.KeyValueStore) *ConsolePalette {
	return &ConsolePalette{store: store}
}

// Apply writes every palette value, continuing past individual failures.
func (this *ConsolePalette) Apply() error {
	var result *multierror.Error
	for index, color := range consoleColorTable {
		name := fmt.Sprintf("ColorTable%02d", index)
		if err := this.store.Set(ConsoleKey, name, contracts.NewDWordValue(color)); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", name, err))
		}
	}
	if err := this.store.Set(ConsoleKey, "ScreenColors", contracts.NewDWordValue(consoleScreenColors)); err != nil {
		result = multierror.Append(result, fmt.Errorf("ScreenColors: %w", err))
	}
	if err := this.store.Set(ConsoleKey, "PopupColors", contracts.NewDWordValue(consolePopupColors)); err != nil {
		result = multierror.Append(result, fmt.Errorf("PopupColors: %w", err))
	}
	return result.ErrorOrNil()
}
