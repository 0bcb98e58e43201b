package cart

// PanelState flags de UI del storefront: drawer del carrito y overlay de
// búsqueda. No persisten; un proceso nuevo arranca con ambos cerrados.
// Se inyecta al servicio de carrito (que abre el drawer al agregar) y a
// cualquier otra capa que reaccione a él.
type PanelState struct {
	CartOpen   bool
	SearchOpen bool
}

// NewPanelState estado inicial: todo cerrado.
func NewPanelState() *PanelState {
	return &PanelState{}
}

func (p *PanelState) OpenCart()    { p.CartOpen = true }
func (p *PanelState) CloseCart()   { p.CartOpen = false }
func (p *PanelState) OpenSearch()  { p.SearchOpen = true }
func (p *PanelState) CloseSearch() { p.SearchOpen = false }
