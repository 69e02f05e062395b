package usecase

import (
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/projection"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// CatalogUseCase renderiza las vistas públicas de la tienda a partir del
// snapshot de proyección. Funciones puras sobre estado de solo lectura:
// ningún renderer muta dominio.
type CatalogUseCase struct {
	state *projection.State
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(state *projection.State) *CatalogUseCase {
	return &CatalogUseCase{state: state}
}

// Catalog arma la grilla del catálogo: solo productos disponibles,
// filtrados por categoría cuando category no es "all" ni vacía.
func (uc *CatalogUseCase) Catalog(category string) *dto.CatalogView {
	if category == "" {
		category = "all"
	}
	view := &dto.CatalogView{Category: category, Items: []dto.CatalogItemView{}}
	for _, p := range uc.state.Snapshot().Products {
		if !p.Available {
			continue
		}
		if category != "all" && p.Category != category {
			continue
		}
		view.Items = append(view.Items, toCatalogItem(p))
	}
	return view
}

// Carousel arma los slides promocionales: productos en promoción y disponibles.
func (uc *CatalogUseCase) Carousel() *dto.CarouselView {
	view := &dto.CarouselView{Slides: []dto.CatalogItemView{}}
	for _, p := range uc.state.Snapshot().Products {
		if p.Promotion && p.Available {
			view.Slides = append(view.Slides, toCatalogItem(p))
		}
	}
	return view
}

func toCatalogItem(p entity.Product) dto.CatalogItemView {
	return dto.CatalogItemView{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Description:   p.Description,
		Price:         p.Price,
		ImageURL:      p.ImageURL,
		Promotion:     p.Promotion,
		OriginalPrice: p.OriginalPrice,
	}
}
