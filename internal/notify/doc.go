// Package notify builds and delivers a single desktop notification and
// watches for the user clicking it.
//
// # Pipeline
//
//   - Builder maps parsed command-line Options to an immutable Payload,
//     resolving image references through ImageResolver.
//   - Dispatcher asks the Sender for permission, submits the Payload, and
//     arms a ClickHandler.
//   - ClickHandler races the Delivery's activation channel against a
//     timeout. The winner cancels the loser, then acts: an activated
//     notification opens the action URL with the desktop's default handler.
//
// # Backends
//
//   - dbus: org.freedesktop.Notifications over the session bus; observes clicks
//     through the ActionInvoked signal
//   - notify-send: libnotify CLI; observes clicks with --action when supported
//   - gosx: macOS terminal-notifier via gosx-notifier; attaches images and
//     opens the action URL itself on click (LinkSender)
//   - osascript: macOS "display notification"; clicks are not observable
//   - beeep: cross-platform fallback; clicks are not observable
//
// Backend "auto" picks dbus (falling back to notify-send) on Linux, gosx
// (falling back to osascript) on macOS and beeep elsewhere.
//
// # Usage
//
//	sender, _ := notify.NewSender("auto", log)
//	builder := notify.NewBuilder("notifier", notify.UrgencyNormal, images)
//	payload := builder.Build(ctx, opts)
//	d := notify.NewDispatcher(sender, notify.NewClickHandler(500*time.Millisecond, notify.NewURLOpener(log), log), log)
//	state, err := d.Dispatch(ctx, payload, opts.OpenURL)
package notify
