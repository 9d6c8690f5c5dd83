package domain

// Slot is one of the two image attachment points on an account. Each slot
// has its own storage prefix and fixed output dimensions.
type Slot string

const (
	SlotProfile Slot = "profile"
	SlotBanner  Slot = "banner"
)

// Dimensions returns the target width and height for images stored in the
// slot. Uploads are resized to exactly these dimensions regardless of the
// source aspect ratio.
func (s Slot) Dimensions() (width, height int) {
	switch s {
	case SlotBanner:
		return 1200, 360
	default:
		return 400, 400
	}
}

func (s Slot) String() string {
	return string(s)
}
