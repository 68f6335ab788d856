// Package messages defines how errors and status messages travel through
// yank.
//
// # Clipboard layer (internal/clipboard)
//
// Return standard Go errors that wrap clipboard.ErrWriteFailed:
//
//	if err := s.writeAll(text); err != nil {
//	    return fmt.Errorf("%w: system: %w", ErrWriteFailed, err)
//	}
//
// # Controller layer (internal/copystatus)
//
// Never return or panic on write failures. The status becomes NotCopied and
// the caller's onError callback receives the error.
//
// # UI layer (internal/app, internal/components)
//
// Turn errors into a types.StatusMsg via the helpers in this package. The
// status bar clears itself after components.StatusBarDisplayDuration:
//
//	case types.StatusMsg:
//	    seq := m.statusBar.SetMessage(msg.Message, msg.Type)
//	    return m, tea.Tick(components.StatusBarDisplayDuration, func(time.Time) tea.Msg {
//	        return types.ClearStatusMsg{Seq: seq}
//	    })
//
// Messages start with what failed: "Copy failed: no clipboard utility
// available on this platform".
package messages
