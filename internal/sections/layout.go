package sections

// Layout selects between the desktop table projection and the mobile card
// projection of a section.
type Layout string

const (
	LayoutDesktop Layout = "desktop"
	LayoutMobile  Layout = "mobile"
)

// mobileMaxWidth is the widest viewport still rendered as cards.
const mobileMaxWidth = 768

// LayoutForWidth maps a viewport width in logical pixels to a layout.
// Unknown widths (w <= 0) fall back to desktop.
func LayoutForWidth(w int) Layout {
	if w > 0 && w <= mobileMaxWidth {
		return LayoutMobile
	}
	return LayoutDesktop
}
