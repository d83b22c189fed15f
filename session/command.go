package session

import (
	"errors"

	"github.com/iw2rmb/marknote/format"
)

// ErrUnknownCommand is returned by Dispatch for a kind with no handler.
var ErrUnknownCommand = errors.New("unknown command")

// CommandKind identifies a user intent.
type CommandKind uint8

const (
	CmdFormat CommandKind = iota
	CmdUndo
	CmdRedo
	CmdToggleTheme
	CmdToggleBackground
	CmdSwitchFolder
	CmdShowSettings
	// CmdInput reports that the surface changed the document directly
	// (typing, deleting, pasting).
	CmdInput
	// CmdFlush writes the document to the store without any other effect.
	CmdFlush
)

func (k CommandKind) String() string {
	switch k {
	case CmdFormat:
		return "format"
	case CmdUndo:
		return "undo"
	case CmdRedo:
		return "redo"
	case CmdToggleTheme:
		return "toggle-theme"
	case CmdToggleBackground:
		return "toggle-background"
	case CmdSwitchFolder:
		return "switch-folder"
	case CmdShowSettings:
		return "show-settings"
	case CmdInput:
		return "input"
	case CmdFlush:
		return "flush"
	default:
		return "unknown"
	}
}

// Command is one dispatched intent. Only the field matching Kind is read.
type Command struct {
	Kind   CommandKind
	Format format.Format
	Folder string
}

func Format(f format.Format) Command { return Command{Kind: CmdFormat, Format: f} }
func Undo() Command { return Command{Kind: CmdUndo} }
func Redo() Command { return Command{Kind: CmdRedo} }
func ToggleTheme() Command { return Command{Kind: CmdToggleTheme} }
func ToggleBackground() Command { return Command{Kind: CmdToggleBackground} }
func SwitchFolder(id string) Command { return Command{Kind: CmdSwitchFolder, Folder: id} }
func ShowSettings() Command { return Command{Kind: CmdShowSettings} }
func Input() Command { return Command{Kind: CmdInput} }
func Flush() Command { return Command{Kind: CmdFlush} }

// Result describes what a dispatched command did.
type Result struct {
	// Changed is true when the document text was replaced or reported as
	// edited.
	Changed bool
	// Settings is true when display settings changed.
	Settings bool
	// Summary is set by CmdShowSettings.
	Summary string
}
