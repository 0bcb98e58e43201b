package usecase

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/tu-usuario/libreria-api/internal/application/dto"
	"github.com/tu-usuario/libreria-api/internal/domain"
	"github.com/tu-usuario/libreria-api/internal/domain/repository"
)

// searchLimit máximo de resultados del buscador del storefront.
const searchLimit = 6

// CatalogUseCase búsqueda pública del catálogo (full-text en español).
type CatalogUseCase struct {
	repo repository.ProductRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Search busca productos por texto. La consulta debe tener al menos 2 letras.
func (uc *CatalogUseCase) Search(ctx context.Context, query string) ([]dto.SearchResult, error) {
	if utf8.RuneCountInString(query) < 2 {
		return nil, fmt.Errorf("%w: escribe al menos 2 letras", domain.ErrValidation)
	}

	rows, err := uc.repo.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, err
	}

	results := make([]dto.SearchResult, 0, len(rows))
	for _, row := range rows {
		r := dto.SearchResult{
			Title:      row.Product.Title,
			Slug:       row.Product.Slug,
			Price:      row.Product.Price,
			CoverImage: row.Product.CoverImage,
			Author:     row.Product.Author,
		}
		if row.Category != nil {
			r.Category = &dto.CategoryRef{Name: row.Category.Name, Slug: row.Category.Slug}
		}
		results = append(results, r)
	}
	return results, nil
}
