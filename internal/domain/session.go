package domain

// Screen is the top-level display state of a session.
type Screen int

const (
	ScreenSplash Screen = iota
	ScreenBrowsing
	ScreenThankYou
)

func (s Screen) String() string {
	switch s {
	case ScreenSplash:
		return "splash"
	case ScreenBrowsing:
		return "browsing"
	case ScreenThankYou:
		return "thank-you"
	default:
		return "unknown"
	}
}

// Overlay is the modal opened on top of the browsing screen.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayCart
	OverlayCheckout
)

func (o Overlay) String() string {
	switch o {
	case OverlayNone:
		return "none"
	case OverlayCart:
		return "cart"
	case OverlayCheckout:
		return "checkout"
	default:
		return "unknown"
	}
}
