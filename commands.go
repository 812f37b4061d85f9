package flick

// Command is a side effect returned by a handler. The Application runs it on
// the event loop once the handler returned.
type Command any

type (
	// BatchCommand runs its commands in order.
	BatchCommand []Command
	// RedrawCommand asks for the screen to be redrawn.
	RedrawCommand struct{}
	// QuitCommand stops the application.
	QuitCommand struct{}
	// SetFocusCommand moves the keyboard focus to Target.
	SetFocusCommand struct {
		Target Primitive
	}
	// SetTitleCommand sets the terminal window title.
	SetTitleCommand string
)

// AppendCommand combines two commands, either of which may be nil. Batches
// are flattened rather than nested.
func AppendCommand(current, next Command) Command {
	switch {
	case next == nil:
		return current
	case current == nil:
		return next
	}
	return append(flatten(current), flatten(next)...)
}

func flatten(cmd Command) BatchCommand {
	if batch, ok := cmd.(BatchCommand); ok {
		return append(BatchCommand(nil), batch...)
	}
	return BatchCommand{cmd}
}
