package render

import (
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/text"
)

// CommandKind identifies a recorded draw command.
type CommandKind int

const (
	CommandFillRect CommandKind = iota
	CommandStrokeRect
	CommandFillText
	CommandPushClip
	CommandPopClip
	CommandPushTranslate
	CommandPopTransform
	CommandSave
	CommandRestore
)

// String returns the command name as emitted by backends and tests.
func (k CommandKind) String() string {
	switch k {
	case CommandFillRect:
		return "fillRect"
	case CommandStrokeRect:
		return "strokeRect"
	case CommandFillText:
		return "fillText"
	case CommandPushClip:
		return "pushClip"
	case CommandPopClip:
		return "popClip"
	case CommandPushTranslate:
		return "pushTranslate"
	case CommandPopTransform:
		return "popTransform"
	case CommandSave:
		return "save"
	case CommandRestore:
		return "restore"
	default:
		return "unknown"
	}
}

// Command is one recorded draw operation. Only the fields relevant to its
// kind are populated.
type Command struct {
	Kind         CommandKind
	Rect         graphics.Rect
	Color        graphics.Color
	CornerRadius float64
	LineWidth    float64
	Text         string
	X, Y         float64
	Font         text.Font
	DX, DY       float64
}

// CommandList records draw commands for later replay onto any Sink.
// The zero value is ready to use.
type CommandList struct {
	commands []Command
}

// Commands returns the recorded commands in paint order.
// The returned slice must not be mutated.
func (l *CommandList) Commands() []Command {
	return l.commands
}

// Len returns the number of recorded commands.
func (l *CommandList) Len() int {
	return len(l.commands)
}

// Reset discards all recorded commands, retaining capacity.
func (l *CommandList) Reset() {
	l.commands = l.commands[:0]
}

// Replay emits the recorded commands onto the sink in order.
func (l *CommandList) Replay(sink Sink) {
	for _, c := range l.commands {
		switch c.Kind {
		case CommandFillRect:
			sink.FillRect(c.Rect, c.Color, c.CornerRadius)
		case CommandStrokeRect:
			sink.StrokeRect(c.Rect, c.Color, c.LineWidth, c.CornerRadius)
		case CommandFillText:
			sink.FillText(c.Text, c.X, c.Y, c.Font, c.Color)
		case CommandPushClip:
			sink.PushClip(c.Rect)
		case CommandPopClip:
			sink.PopClip()
		case CommandPushTranslate:
			sink.PushTranslate(c.DX, c.DY)
		case CommandPopTransform:
			sink.PopTransform()
		case CommandSave:
			sink.Save()
		case CommandRestore:
			sink.Restore()
		}
	}
}

func (l *CommandList) FillRect(rect graphics.Rect, color graphics.Color, cornerRadius float64) {
	l.commands = append(l.commands, Command{Kind: CommandFillRect, Rect: rect, Color: color, CornerRadius: cornerRadius})
}

func (l *CommandList) StrokeRect(rect graphics.Rect, color graphics.Color, lineWidth, cornerRadius float64) {
	l.commands = append(l.commands, Command{Kind: CommandStrokeRect, Rect: rect, Color: color, LineWidth: lineWidth, CornerRadius: cornerRadius})
}

func (l *CommandList) FillText(content string, x, y float64, font text.Font, color graphics.Color) {
	l.commands = append(l.commands, Command{Kind: CommandFillText, Text: content, X: x, Y: y, Font: font, Color: color})
}

func (l *CommandList) PushClip(rect graphics.Rect) {
	l.commands = append(l.commands, Command{Kind: CommandPushClip, Rect: rect})
}

func (l *CommandList) PopClip() {
	l.commands = append(l.commands, Command{Kind: CommandPopClip})
}

func (l *CommandList) PushTranslate(dx, dy float64) {
	l.commands = append(l.commands, Command{Kind: CommandPushTranslate, DX: dx, DY: dy})
}

func (l *CommandList) PopTransform() {
	l.commands = append(l.commands, Command{Kind: CommandPopTransform})
}

func (l *CommandList) Save() {
	l.commands = append(l.commands, Command{Kind: CommandSave})
}

func (l *CommandList) Restore() {
	l.commands = append(l.commands, Command{Kind: CommandRestore})
}
