package models

// Screen is the page currently shown to the user
type Screen string

const (
	ScreenSearch  Screen = "search"
	ScreenLoading Screen = "loading"
	ScreenResults Screen = "results"
)

// Modal is a blocking message overlay
type Modal struct {
	Message string `json:"message"`
}

// ViewState holds the screen and the optional modal. The modal is orthogonal
// to the screen and may overlay any of them.
type ViewState struct {
	Screen Screen `json:"screen"`
	Modal  *Modal `json:"modal,omitempty"`
}

// ModalVisible reports whether a modal is showing
func (v ViewState) ModalVisible() bool {
	return v.Modal != nil
}
