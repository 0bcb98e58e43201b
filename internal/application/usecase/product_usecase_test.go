package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/libreria-api/internal/application/dto"
	"github.com/tu-usuario/libreria-api/internal/domain"
	"github.com/tu-usuario/libreria-api/internal/domain/entity"
	"github.com/tu-usuario/libreria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake con registro de escrituras
// ──────────────────────────────────────────────────────────────────────────────

type recordingProductRepo struct {
	existing *entity.Product
	created  *entity.Product
	updated  *entity.Product
	deleted  int64
	err      error
}

func (r *recordingProductRepo) Search(context.Context, string, int) ([]repository.SearchResult, error) {
	return nil, nil
}

func (r *recordingProductRepo) Create(_ context.Context, p *entity.Product) error {
	if r.err != nil {
		return r.err
	}
	p.ID = 100
	r.created = p
	return nil
}

func (r *recordingProductRepo) GetByID(_ context.Context, _ int64) (*entity.Product, error) {
	return r.existing, r.err
}

func (r *recordingProductRepo) Update(_ context.Context, p *entity.Product) error {
	if r.err != nil {
		return r.err
	}
	r.updated = p
	return nil
}

func (r *recordingProductRepo) Delete(_ context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	r.deleted = id
	return nil
}

func newProductUC(repo *recordingProductRepo, now time.Time) *ProductUseCase {
	uc := NewProductUseCase(repo)
	uc.now = func() time.Time { return now }
	return uc
}

func libroValido() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Title:      "El Túnel",
		Author:     "Ernesto Sábato",
		Price:      decimal.NewFromInt(39000),
		StockQty:   4,
		CoverImage: "https://cdn.example.com/el-tunel.jpg",
		CategoryID: 3,
		ISBN:       "9789875666482",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_DerivaElSlugDelTitulo(t *testing.T) {
	repo := &recordingProductRepo{}
	uc := newProductUC(repo, time.UnixMilli(1726000005678))

	resp, err := uc.Create(context.Background(), libroValido())

	require.NoError(t, err)
	assert.Equal(t, "el-tunel-5678", resp.Slug)
	assert.Equal(t, int64(100), resp.ID)
	require.NotNil(t, repo.created)
	assert.Equal(t, "el-tunel-5678", repo.created.Slug)
}

func TestCreateProduct_DefaultsDeIdiomaYEstado(t *testing.T) {
	repo := &recordingProductRepo{}
	uc := newProductUC(repo, time.Now())

	resp, err := uc.Create(context.Background(), libroValido())

	require.NoError(t, err)
	assert.Equal(t, entity.LanguageES, resp.Language)
	assert.Equal(t, entity.ProductStatusActive, resp.Status)
}

func TestCreateProduct_ValidacionesDeEntrada(t *testing.T) {
	uc := newProductUC(&recordingProductRepo{}, time.Now())
	negativo := decimal.NewFromInt(-1)

	casos := []struct {
		nombre string
		mutar  func(*dto.CreateProductRequest)
	}{
		{"título muy corto", func(in *dto.CreateProductRequest) { in.Title = "El" }},
		{"autor muy corto", func(in *dto.CreateProductRequest) { in.Author = "S" }},
		{"precio negativo", func(in *dto.CreateProductRequest) { in.Price = negativo }},
		{"promo negativa", func(in *dto.CreateProductRequest) { in.PromotionalPrice = &negativo }},
		{"stock negativo", func(in *dto.CreateProductRequest) { in.StockQty = -1 }},
		{"portada sin URL", func(in *dto.CreateProductRequest) { in.CoverImage = "no-es-una-url" }},
		{"portada con esquema raro", func(in *dto.CreateProductRequest) { in.CoverImage = "ftp://x/y.jpg" }},
		{"sin categoría", func(in *dto.CreateProductRequest) { in.CategoryID = 0 }},
		{"idioma desconocido", func(in *dto.CreateProductRequest) { in.Language = "fr" }},
		{"estado desconocido", func(in *dto.CreateProductRequest) { in.Status = "publicado" }},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			in := libroValido()
			tc.mutar(&in)
			_, err := uc.Create(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCreateProduct_SlugDuplicado_SePropaga(t *testing.T) {
	uc := newProductUC(&recordingProductRepo{err: domain.ErrDuplicate}, time.Now())

	_, err := uc.Create(context.Background(), libroValido())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update
// ──────────────────────────────────────────────────────────────────────────────

func productoExistente() *entity.Product {
	return &entity.Product{
		ID:         7,
		Slug:       "el-tunel-5678",
		Title:      "El Túnel",
		Author:     "Ernesto Sábato",
		Price:      decimal.NewFromInt(39000),
		StockQty:   4,
		CoverImage: "https://cdn.example.com/el-tunel.jpg",
		CategoryID: 3,
		Language:   entity.LanguageES,
		Status:     entity.ProductStatusActive,
	}
}

func TestUpdateProduct_AplicaSoloLosCamposEnviados(t *testing.T) {
	repo := &recordingProductRepo{existing: productoExistente()}
	uc := newProductUC(repo, time.Now())

	nuevoStock := 9
	nuevoPrecio := decimal.NewFromInt(42000)
	resp, err := uc.Update(context.Background(), dto.UpdateProductRequest{
		ID: 7,
		Updates: dto.ProductUpdates{
			StockQty: &nuevoStock,
			Price:    &nuevoPrecio,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 9, resp.StockQty)
	assert.True(t, resp.Price.Equal(nuevoPrecio))
	assert.Equal(t, "El Túnel", resp.Title, "los campos no enviados quedan intactos")
	require.NotNil(t, repo.updated)
}

func TestUpdateProduct_NuncaRecalculaElSlug(t *testing.T) {
	repo := &recordingProductRepo{existing: productoExistente()}
	uc := newProductUC(repo, time.Now())

	nuevoTitulo := "El Túnel (edición aniversario)"
	resp, err := uc.Update(context.Background(), dto.UpdateProductRequest{
		ID:      7,
		Updates: dto.ProductUpdates{Title: &nuevoTitulo},
	})

	require.NoError(t, err)
	assert.Equal(t, nuevoTitulo, resp.Title)
	assert.Equal(t, "el-tunel-5678", resp.Slug, "las URLs publicadas no se rompen por un cambio de título")
}

func TestUpdateProduct_ProductoInexistente_DevuelveNil(t *testing.T) {
	uc := newProductUC(&recordingProductRepo{existing: nil}, time.Now())

	resp, err := uc.Update(context.Background(), dto.UpdateProductRequest{ID: 7})

	require.NoError(t, err)
	assert.Nil(t, resp, "producto ausente se reporta como (nil, nil), el handler decide el 404")
}

func TestUpdateProduct_ValidaLosCamposEnviados(t *testing.T) {
	uc := newProductUC(&recordingProductRepo{existing: productoExistente()}, time.Now())

	tituloCorto := "El"
	_, err := uc.Update(context.Background(), dto.UpdateProductRequest{
		ID:      7,
		Updates: dto.ProductUpdates{Title: &tituloCorto},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateProduct_SinID_ErrValidation(t *testing.T) {
	uc := newProductUC(&recordingProductRepo{}, time.Now())

	_, err := uc.Update(context.Background(), dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteProduct_Exitoso(t *testing.T) {
	repo := &recordingProductRepo{}
	uc := newProductUC(repo, time.Now())

	require.NoError(t, uc.Delete(context.Background(), 7))
	assert.Equal(t, int64(7), repo.deleted)
}

func TestDeleteProduct_SinID_ErrValidation(t *testing.T) {
	uc := newProductUC(&recordingProductRepo{}, time.Now())
	assert.ErrorIs(t, uc.Delete(context.Background(), 0), domain.ErrValidation)
}
