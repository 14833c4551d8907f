package notify

import "fmt"

// Sound tokens with special meaning on the command line.
const (
	SoundTokenNone    = "none"
	SoundTokenDefault = "default"
)

// SoundMode says what kind of sound, if any, the notification requests.
type SoundMode int

const (
	// SoundUnset leaves sound to the platform's default behavior.
	SoundUnset SoundMode = iota
	// SoundSilent explicitly suppresses sound.
	SoundSilent
	// SoundDefault requests the platform's default notification sound.
	SoundDefault
	// SoundNamed requests a specific system sound by name.
	SoundNamed
)

func (m SoundMode) String() string {
	switch m {
	case SoundUnset:
		return "unset"
	case SoundSilent:
		return "silent"
	case SoundDefault:
		return "default"
	case SoundNamed:
		return "named"
	default:
		return fmt.Sprintf("SoundMode(%d)", int(m))
	}
}

// Sound is the parsed --sound option.
type Sound struct {
	Mode SoundMode
	// Name is set only for SoundNamed.
	Name string
}

// ParseSound interprets a --sound value. The empty string means unset.
func ParseSound(s string) Sound {
	switch s {
	case "":
		return Sound{Mode: SoundUnset}
	case SoundTokenNone:
		return Sound{Mode: SoundSilent}
	case SoundTokenDefault:
		return Sound{Mode: SoundDefault}
	default:
		return Sound{Mode: SoundNamed, Name: s}
	}
}

// Urgency maps to the freedesktop urgency hint and notify-send -u.
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyNormal   Urgency = "normal"
	UrgencyCritical Urgency = "critical"
)

// ValidUrgency checks if the given string is a valid urgency level
func ValidUrgency(s string) bool {
	switch Urgency(s) {
	case UrgencyLow, UrgencyNormal, UrgencyCritical:
		return true
	default:
		return false
	}
}

// Level returns the freedesktop urgency byte (0 low, 1 normal, 2 critical).
func (u Urgency) Level() byte {
	switch u {
	case UrgencyLow:
		return 0
	case UrgencyCritical:
		return 2
	default:
		return 1
	}
}

// Payload is the notification content handed to a Sender.
// The action URL is not part of it; the dispatcher carries that separately.
type Payload struct {
	AppName  string
	Title    string
	Body     string
	Subtitle string
	Sound    Sound
	// Image is an absolute path to a local image file, or empty.
	Image   string
	Urgency Urgency
}

// DisplayBody is the body for backends without a subtitle field: the
// subtitle, when present, goes on its own first line.
func (p Payload) DisplayBody() string {
	if p.Subtitle == "" {
		return p.Body
	}
	return p.Subtitle + "\n" + p.Body
}
