// Package args scans the notifier command line into an Options record.
//
// The scanner does not follow pflag rules. A value flag in last position
// is a no-op, and only the first unmatched token can become the message.
package args

// DefaultTitle is used when no -t/--title flag is given.
const DefaultTitle = "Notification"

// Options holds everything parsed from the command line.
type Options struct {
	Title    string
	Message  string
	Subtitle string
	Sound    string
	Image    string
	OpenURL  string
	Help     bool
	Version  bool
}

// valueFlags maps every accepted spelling of a value-taking flag to a setter.
var valueFlags = map[string]func(o *Options, v string){
	"-t":         func(o *Options, v string) { o.Title = v },
	"--title":    func(o *Options, v string) { o.Title = v },
	"-m":         func(o *Options, v string) { o.Message = v },
	"--message":  func(o *Options, v string) { o.Message = v },
	"-s":         func(o *Options, v string) { o.Subtitle = v },
	"--subtitle": func(o *Options, v string) { o.Subtitle = v },
	"--sound":    func(o *Options, v string) { o.Sound = v },
	"-i":         func(o *Options, v string) { o.Image = v },
	"--image":    func(o *Options, v string) { o.Image = v },
	"-o":         func(o *Options, v string) { o.OpenURL = v },
	"--open":     func(o *Options, v string) { o.OpenURL = v },
}

// Parse scans argv (without the program name) into Options.
// It never fails; validation of the result is left to the caller.
func Parse(argv []string) Options {
	opts := Options{Title: DefaultTitle}

	for i := 0; i < len(argv); i++ {
		arg := argv[i]

		switch arg {
		case "-h", "--help":
			opts.Help = true
			continue
		case "--version":
			opts.Version = true
			continue
		}

		if set, ok := valueFlags[arg]; ok {
			// Trailing value flag: consumed, value left unset.
			if i+1 < len(argv) {
				set(&opts, argv[i+1])
				i++
			}
			continue
		}

		if opts.Message == "" {
			opts.Message = arg
		}
	}

	return opts
}

// HasMessage reports whether a non-empty message was supplied.
func (o Options) HasMessage() bool {
	return o.Message != ""
}
