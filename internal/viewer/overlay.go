package viewer

type OverlayKind int

const (
	OverlayNone OverlayKind = iota
	OverlayDetail
	OverlayPanel
)

func (k OverlayKind) String() string {
	switch k {
	case OverlayDetail:
		return "detail"
	case OverlayPanel:
		return "panel"
	default:
		return "none"
	}
}

// Overlay is the single overlay shown over the story. IngredientID is set
// only for OverlayDetail.
type Overlay struct {
	Kind         OverlayKind
	IngredientID string
}

func detailOverlay(ingredientID string) Overlay {
	return Overlay{Kind: OverlayDetail, IngredientID: ingredientID}
}

func panelOverlay() Overlay {
	return Overlay{Kind: OverlayPanel}
}

// Open reports whether any overlay is shown.
func (o Overlay) Open() bool {
	return o.Kind != OverlayNone
}
