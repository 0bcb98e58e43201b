package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/tu-usuario/libreria-api/internal/application/dto"
	"github.com/tu-usuario/libreria-api/internal/domain"
	"github.com/tu-usuario/libreria-api/internal/domain/entity"
	"github.com/tu-usuario/libreria-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos del catálogo (acciones privilegiadas).
type ProductUseCase struct {
	repo repository.ProductRepository
	now  func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, now: time.Now}
}

// Create valida los datos, deriva el slug del título y persiste el producto.
// Una colisión de slug la atrapa el constraint único y se reporta como fallo
// genérico de creación.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if utf8.RuneCountInString(in.Title) < 3 {
		return nil, fmt.Errorf("%w: el título es muy corto", domain.ErrValidation)
	}
	if utf8.RuneCountInString(in.Author) < 2 {
		return nil, fmt.Errorf("%w: el autor es muy corto", domain.ErrValidation)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrValidation)
	}
	if in.PromotionalPrice != nil && in.PromotionalPrice.IsNegative() {
		return nil, fmt.Errorf("%w: el precio promocional no puede ser negativo", domain.ErrValidation)
	}
	if in.StockQty < 0 {
		return nil, fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrValidation)
	}
	if !validURL(in.CoverImage) {
		return nil, fmt.Errorf("%w: la portada debe ser una URL válida", domain.ErrValidation)
	}
	if in.CategoryID == 0 {
		return nil, fmt.Errorf("%w: la categoría es requerida", domain.ErrValidation)
	}
	if in.Language == "" {
		in.Language = entity.LanguageES
	}
	if !entity.ValidLanguage(in.Language) {
		return nil, fmt.Errorf("%w: idioma desconocido", domain.ErrValidation)
	}
	if in.Status == "" {
		in.Status = entity.ProductStatusActive
	}
	if !entity.ValidProductStatus(in.Status) {
		return nil, fmt.Errorf("%w: estado de producto desconocido", domain.ErrValidation)
	}

	now := uc.now()
	product := &entity.Product{
		Slug:             deriveSlug(in.Title, now),
		Title:            in.Title,
		Author:           in.Author,
		Price:            in.Price,
		PromotionalPrice: in.PromotionalPrice,
		StockQty:         in.StockQty,
		CoverImage:       in.CoverImage,
		CategoryID:       in.CategoryID,
		ISBN:             in.ISBN,
		PublishedYear:    in.PublishedYear,
		Description:      in.Description,
		Language:         in.Language,
		Status:           in.Status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update aplica actualizaciones parciales. El slug nunca se recalcula: las
// URLs publicadas no deben romperse por un cambio de título.
func (uc *ProductUseCase) Update(ctx context.Context, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.ID == 0 {
		return nil, fmt.Errorf("%w: id es requerido", domain.ErrValidation)
	}
	product, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	up := in.Updates
	if up.Title != nil {
		if utf8.RuneCountInString(*up.Title) < 3 {
			return nil, fmt.Errorf("%w: el título es muy corto", domain.ErrValidation)
		}
		product.Title = *up.Title
	}
	if up.Author != nil {
		if utf8.RuneCountInString(*up.Author) < 2 {
			return nil, fmt.Errorf("%w: el autor es muy corto", domain.ErrValidation)
		}
		product.Author = *up.Author
	}
	if up.Price != nil {
		if up.Price.IsNegative() {
			return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrValidation)
		}
		product.Price = *up.Price
	}
	if up.PromotionalPrice != nil {
		if up.PromotionalPrice.IsNegative() {
			return nil, fmt.Errorf("%w: el precio promocional no puede ser negativo", domain.ErrValidation)
		}
		product.PromotionalPrice = up.PromotionalPrice
	}
	if up.StockQty != nil {
		if *up.StockQty < 0 {
			return nil, fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrValidation)
		}
		product.StockQty = *up.StockQty
	}
	if up.CoverImage != nil {
		if !validURL(*up.CoverImage) {
			return nil, fmt.Errorf("%w: la portada debe ser una URL válida", domain.ErrValidation)
		}
		product.CoverImage = *up.CoverImage
	}
	if up.CategoryID != nil {
		product.CategoryID = *up.CategoryID
	}
	if up.ISBN != nil {
		product.ISBN = *up.ISBN
	}
	if up.Description != nil {
		product.Description = *up.Description
	}
	if up.Language != nil {
		if !entity.ValidLanguage(*up.Language) {
			return nil, fmt.Errorf("%w: idioma desconocido", domain.ErrValidation)
		}
		product.Language = *up.Language
	}
	if up.Status != nil {
		if !entity.ValidProductStatus(*up.Status) {
			return nil, fmt.Errorf("%w: estado de producto desconocido", domain.ErrValidation)
		}
		product.Status = *up.Status
	}
	product.UpdatedAt = uc.now()

	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if id == 0 {
		return fmt.Errorf("%w: id es requerido", domain.ErrValidation)
	}
	return uc.repo.Delete(ctx, id)
}

func validURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:               p.ID,
		Slug:             p.Slug,
		Title:            p.Title,
		Author:           p.Author,
		Price:            p.Price,
		PromotionalPrice: p.PromotionalPrice,
		StockQty:         p.StockQty,
		CoverImage:       p.CoverImage,
		CategoryID:       p.CategoryID,
		ISBN:             p.ISBN,
		PublishedYear:    p.PublishedYear,
		Description:      p.Description,
		Language:         p.Language,
		Status:           p.Status,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
