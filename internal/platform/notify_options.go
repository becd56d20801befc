package platform

import "time"

// DefaultTimeout is how long a notification stays up when Options leaves it unset.
const DefaultTimeout = 5 * time.Second

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// AppName identifies the sender to the notification center.
	AppName string
	// IconPath, when non-empty, points to an image file shown next to the
	// notification where supported.
	IconPath string
	Timeout  time.Duration
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultTimeout
	}
	return o.Timeout
}

func (o Options) appName() string {
	if o.AppName == "" {
		return "easel"
	}
	return o.AppName
}
