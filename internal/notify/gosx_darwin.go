//go:build darwin

package notify

import gosxnotifier "github.com/deckarep/gosx-notifier"

func gosxPush(n gosxNote) error {
	note := gosxnotifier.NewNotification(n.Message)
	note.Title = n.Title
	note.Subtitle = n.Subtitle
	note.ContentImage = n.ContentImage
	note.Link = n.Link
	switch {
	case n.DefaultSound:
		note.Sound = gosxnotifier.Default
	case n.Sound != "":
		note.Sound = gosxnotifier.Sound(n.Sound)
	}
	return note.Push()
}
