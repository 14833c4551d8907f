package notify

import (
	"context"

	"github.com/ariel-frischer/notifier/internal/args"
)

// Builder turns parsed Options into a Payload.
type Builder struct {
	appName string
	urgency Urgency
	images  *ImageResolver
}

// NewBuilder creates a Builder. images may be nil, in which case image
// references are ignored.
func NewBuilder(appName string, urgency Urgency, images *ImageResolver) *Builder {
	if !ValidUrgency(string(urgency)) {
		urgency = UrgencyNormal
	}
	return &Builder{appName: appName, urgency: urgency, images: images}
}

// Build maps opts to a Payload. Title and message are copied verbatim; an
// image that cannot be resolved is dropped without error.
func (b *Builder) Build(ctx context.Context, opts args.Options) Payload {
	p := Payload{
		AppName:  b.appName,
		Title:    opts.Title,
		Body:     opts.Message,
		Subtitle: opts.Subtitle,
		Sound:    ParseSound(opts.Sound),
		Urgency:  b.urgency,
	}

	if opts.Image != "" && b.images != nil {
		p.Image = b.images.Resolve(ctx, opts.Image)
	}

	return p
}
