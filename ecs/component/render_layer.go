package component

// RenderLayer is used to sort draw order deterministically. Lower draws first.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
