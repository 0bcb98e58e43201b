package cart_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/libreria-api/internal/application/cart"
	"github.com/tu-usuario/libreria-api/internal/domain"
	"github.com/tu-usuario/libreria-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// memStore CartStore en memoria para aislar el servicio de la persistencia.
// Cuenta los Save para verificar que los rechazos no escriben nada.
type memStore struct {
	items []entity.CartItem
	saves int
}

func (s *memStore) Load() ([]entity.CartItem, error) {
	out := make([]entity.CartItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *memStore) Save(items []entity.CartItem) error {
	s.items = make([]entity.CartItem, len(items))
	copy(s.items, items)
	s.saves++
	return nil
}

func newService(seed ...entity.CartItem) (*cart.Service, *memStore, *cart.PanelState) {
	store := &memStore{items: seed}
	panels := cart.NewPanelState()
	return cart.New(store, panels), store, panels
}

func libro(id int64, qty, maxStock int) entity.CartItem {
	return entity.CartItem{
		ID:       id,
		Slug:     "cien-anos-de-soledad",
		Title:    "Cien años de soledad",
		Price:    decimal.NewFromInt(45000),
		Quantity: qty,
		MaxStock: maxStock,
	}
}

// checkInvariants verifica los invariantes del carrito: cantidades dentro de
// (0, max_stock] y sin IDs repetidos.
func checkInvariants(t *testing.T, items []entity.CartItem) {
	t.Helper()
	seen := make(map[int64]bool, len(items))
	for _, it := range items {
		assert.Greater(t, it.Quantity, 0, "ninguna línea puede quedar con cantidad 0")
		assert.LessOrEqual(t, it.Quantity, it.MaxStock, "la cantidad no puede superar el tope de stock")
		assert.False(t, seen[it.ID], "no puede haber dos líneas con el mismo ID")
		seen[it.ID] = true
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// AddItem
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_CarritoVacio_CreaLineaConCantidadUnoYAbrePanel(t *testing.T) {
	svc, store, panels := newService()

	require.NoError(t, svc.AddItem(libro(1, 0, 2)))

	require.Len(t, store.items, 1)
	assert.Equal(t, int64(1), store.items[0].ID)
	assert.Equal(t, 1, store.items[0].Quantity, "una línea nueva nace con cantidad 1")
	assert.True(t, panels.CartOpen, "agregar debe abrir el drawer del carrito")
}

func TestAddItem_LineaExistente_IncrementaCantidad(t *testing.T) {
	svc, store, _ := newService(libro(1, 1, 3))

	require.NoError(t, svc.AddItem(libro(1, 0, 3)))

	require.Len(t, store.items, 1, "repetir un ID no crea una segunda línea")
	assert.Equal(t, 2, store.items[0].Quantity)
}

func TestAddItem_EnElTope_SeñalaStockExcedidoSinMutar(t *testing.T) {
	svc, store, panels := newService(libro(1, 2, 2))
	savesBefore := store.saves

	err := svc.AddItem(libro(1, 0, 2))

	require.ErrorIs(t, err, domain.ErrStockExceeded)
	assert.Equal(t, 2, store.items[0].Quantity, "la colección queda intacta")
	assert.Equal(t, savesBefore, store.saves, "un rechazo no escribe nada")
	assert.False(t, panels.CartOpen, "un rechazo no abre el panel")
}

func TestAddItem_IgnoraCantidadDelCandidato(t *testing.T) {
	svc, store, _ := newService()

	candidato := libro(7, 99, 5) // cantidad 99 en la entrada
	require.NoError(t, svc.AddItem(candidato))

	assert.Equal(t, 1, store.items[0].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// RemoveItem
// ──────────────────────────────────────────────────────────────────────────────

func TestRemoveItem_EliminaLaLineaCompleta(t *testing.T) {
	svc, store, _ := newService(libro(1, 2, 3), libro2())

	require.NoError(t, svc.RemoveItem(1))

	require.Len(t, store.items, 1)
	assert.Equal(t, int64(2), store.items[0].ID)
}

func TestRemoveItem_IDInexistente_EsNoOp(t *testing.T) {
	svc, store, _ := newService(libro(1, 1, 3))
	savesBefore := store.saves

	require.NoError(t, svc.RemoveItem(99), "eliminar un ID ausente no es un error")
	assert.Equal(t, savesBefore, store.saves)
	assert.Len(t, store.items, 1)
}

func libro2() entity.CartItem {
	return entity.CartItem{
		ID:       2,
		Slug:     "pedro-paramo",
		Title:    "Pedro Páramo",
		Price:    decimal.NewFromInt(38000),
		Quantity: 1,
		MaxStock: 4,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateQuantity
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateQuantity_DentroDelTope_FijaLaCantidad(t *testing.T) {
	svc, store, _ := newService(libro(1, 1, 5))

	require.NoError(t, svc.UpdateQuantity(1, 4))
	assert.Equal(t, 4, store.items[0].Quantity)
}

func TestUpdateQuantity_Cero_EliminaLaLinea(t *testing.T) {
	svc, store, _ := newService(libro(1, 2, 5))

	require.NoError(t, svc.UpdateQuantity(1, 0))
	assert.Empty(t, store.items, "bajar a 0 equivale a eliminar")
}

func TestUpdateQuantity_Negativa_EliminaLaLinea(t *testing.T) {
	svc, store, _ := newService(libro(1, 2, 5))

	require.NoError(t, svc.UpdateQuantity(1, -3))
	assert.Empty(t, store.items)
}

func TestUpdateQuantity_IDInexistente_EsNoOp(t *testing.T) {
	svc, store, _ := newService(libro(1, 2, 5))
	savesBefore := store.saves

	require.NoError(t, svc.UpdateQuantity(42, 3))
	assert.Equal(t, savesBefore, store.saves)
	assert.Equal(t, 2, store.items[0].Quantity)
}

func TestUpdateQuantity_SobreElTope_SeñalaStockExcedidoSinMutar(t *testing.T) {
	svc, store, _ := newService(libro(1, 2, 5))

	err := svc.UpdateQuantity(1, 6)

	require.ErrorIs(t, err, domain.ErrStockExceeded,
		"superar el tope debe señalarse al caller en vez de descartarse en silencio")
	assert.Equal(t, 2, store.items[0].Quantity, "sin mutación")
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariantes sobre secuencias de operaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestSecuenciaDeMutaciones_MantieneInvariantes(t *testing.T) {
	svc, store, _ := newService()

	ops := []func() error{
		func() error { return svc.AddItem(libro(1, 0, 2)) },
		func() error { return svc.AddItem(libro2()) },
		func() error { return svc.AddItem(libro(1, 0, 2)) },
		func() error { return svc.AddItem(libro(1, 0, 2)) }, // tope: rechazada
		func() error { return svc.UpdateQuantity(2, 4) },
		func() error { return svc.UpdateQuantity(2, 9) }, // sobre tope: rechazada
		func() error { return svc.RemoveItem(1) },
		func() error { return svc.UpdateQuantity(99, 3) }, // inexistente: no-op
		func() error { return svc.AddItem(libro(3, 0, 1)) },
		func() error { return svc.UpdateQuantity(3, 0) },
	}
	for i, op := range ops {
		if err := op(); err != nil {
			require.ErrorIs(t, err, domain.ErrStockExceeded, "operación %d", i)
		}
		checkInvariants(t, store.items)
	}

	// Estado final esperado: solo el libro 2 con cantidad 4.
	require.Len(t, store.items, 1)
	assert.Equal(t, int64(2), store.items[0].ID)
	assert.Equal(t, 4, store.items[0].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propagación de errores del store
// ──────────────────────────────────────────────────────────────────────────────

type failingStore struct{ err error }

func (s *failingStore) Load() ([]entity.CartItem, error) { return nil, s.err }
func (s *failingStore) Save([]entity.CartItem) error     { return s.err }

func TestAddItem_ErrorDelStore_SePropaga(t *testing.T) {
	boom := errors.New("disco lleno")
	svc := cart.New(&failingStore{err: boom}, cart.NewPanelState())

	err := svc.AddItem(libro(1, 0, 2))
	require.ErrorIs(t, err, boom)
}
