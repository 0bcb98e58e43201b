package cart

import (
	"fmt"

	"github.com/tu-usuario/libreria-api/internal/domain"
	"github.com/tu-usuario/libreria-api/internal/domain/entity"
	"github.com/tu-usuario/libreria-api/internal/domain/repository"
)

// Service mantiene los invariantes del carrito sobre un CartStore:
// 0 < cantidad <= tope de stock por línea, IDs únicos, y eliminación de la
// línea cuando la cantidad llega a cero. Toda mutación es leer la colección
// completa, calcular la nueva y guardarla entera; en caso de rechazo no se
// escribe nada.
//
// Ejecuta en un solo hilo lógico por sesión de navegación; dos pestañas sobre
// la misma clave compiten con last-write-wins (limitación aceptada).
type Service struct {
	store  repository.CartStore
	panels *PanelState
}

// New construye el servicio con su almacenamiento y el estado de paneles a sincronizar.
func New(store repository.CartStore, panels *PanelState) *Service {
	return &Service{store: store, panels: panels}
}

// Items devuelve la colección actual del carrito.
func (s *Service) Items() ([]entity.CartItem, error) {
	items, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("leer carrito: %w", err)
	}
	return items, nil
}

// AddItem agrega un producto al carrito o incrementa su cantidad si ya existe.
// La cantidad del candidato se ignora: una línea nueva siempre nace con 1.
// Si la línea ya está en su tope de stock retorna ErrStockExceeded sin mutar
// nada y sin abrir el panel. En éxito abre el drawer del carrito.
func (s *Service) AddItem(candidate entity.CartItem) error {
	items, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("leer carrito: %w", err)
	}

	for i := range items {
		if items[i].ID != candidate.ID {
			continue
		}
		if items[i].Quantity >= items[i].MaxStock {
			return domain.ErrStockExceeded
		}
		items[i].Quantity++
		if err := s.store.Save(items); err != nil {
			return fmt.Errorf("guardar carrito: %w", err)
		}
		s.panels.OpenCart()
		return nil
	}

	// Línea nueva: cantidad 1, tope capturado del candidato.
	candidate.Quantity = 1
	items = append(items, candidate)
	if err := s.store.Save(items); err != nil {
		return fmt.Errorf("guardar carrito: %w", err)
	}
	s.panels.OpenCart()
	return nil
}

// RemoveItem elimina la línea con el ID dado. Si no existe es un no-op, no un error.
func (s *Service) RemoveItem(id int64) error {
	items, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("leer carrito: %w", err)
	}
	kept, removed := removeByID(items, id)
	if !removed {
		return nil
	}
	if err := s.store.Save(kept); err != nil {
		return fmt.Errorf("guardar carrito: %w", err)
	}
	return nil
}

// UpdateQuantity fija la cantidad de una línea (botones +/-).
//   - ID inexistente: no-op.
//   - newQuantity <= 0: equivale a RemoveItem.
//   - newQuantity dentro del tope: se fija la cantidad.
//   - newQuantity > tope: no se muta nada y se señala ErrStockExceeded para
//     que el caller pueda dar feedback en lugar de descartar en silencio.
func (s *Service) UpdateQuantity(id int64, newQuantity int) error {
	items, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("leer carrito: %w", err)
	}

	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	if newQuantity <= 0 {
		kept, _ := removeByID(items, id)
		if err := s.store.Save(kept); err != nil {
			return fmt.Errorf("guardar carrito: %w", err)
		}
		return nil
	}

	if newQuantity > items[idx].MaxStock {
		return domain.ErrStockExceeded
	}

	items[idx].Quantity = newQuantity
	if err := s.store.Save(items); err != nil {
		return fmt.Errorf("guardar carrito: %w", err)
	}
	return nil
}

func removeByID(items []entity.CartItem, id int64) ([]entity.CartItem, bool) {
	kept := make([]entity.CartItem, 0, len(items))
	removed := false
	for _, it := range items {
		if it.ID == id {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	return kept, removed
}
