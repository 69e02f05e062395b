package usecase

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/projection"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD de productos (panel admin).
// Toda mutación pasa por el almacén; la lista admin no filtra disponibilidad.
type ProductUseCase struct {
	store repository.RecordStore
	state *projection.State
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store repository.RecordStore, state *projection.State) *ProductUseCase {
	return &ProductUseCase{store: store, state: state}
}

// Create crea un producto nuevo. Sin imagen se usa la de relleno; los
// productos nacen disponibles.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	imageURL := in.ImageURL
	if imageURL == "" {
		imageURL = entity.DefaultProductImage
	}
	p := entity.Product{
		Name:          in.Name,
		Category:      in.Category,
		Description:   in.Description,
		Price:         in.Price,
		ImageURL:      imageURL,
		Promotion:     in.Promotion,
		OriginalPrice: in.OriginalPrice,
		Available:     true,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	rec, err := uc.store.Create(ctx, entity.NewProductRecord(p))
	if err != nil {
		return nil, err
	}
	return toProductResponse(rec.Product), nil
}

// Update actualiza un producto aplicando solo los campos presentes.
// Id desconocido devuelve (nil, nil): el handler decide el mensaje.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	existing := uc.findByID(id)
	if existing == nil {
		return nil, nil
	}
	p := *existing
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.Promotion != nil {
		p.Promotion = *in.Promotion
	}
	if in.OriginalPrice != nil {
		p.OriginalPrice = *in.OriginalPrice
	}
	if in.Available != nil {
		p.Available = *in.Available
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	ok, err := uc.store.Update(ctx, entity.NewProductRecord(p))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return toProductResponse(&p), nil
}

// ToggleAvailability invierte la disponibilidad del producto (ocultar/mostrar
// en el catálogo sin eliminarlo). Id desconocido -> (nil, nil).
func (uc *ProductUseCase) ToggleAvailability(ctx context.Context, id string) (*dto.ProductResponse, error) {
	existing := uc.findByID(id)
	if existing == nil {
		return nil, nil
	}
	p := *existing
	p.Available = !p.Available
	ok, err := uc.store.Update(ctx, entity.NewProductRecord(p))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return toProductResponse(&p), nil
}

// Delete elimina el producto. Devuelve false si el id no existe (no-op).
// Los pedidos históricos no se ven afectados: sus líneas son copias.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (bool, error) {
	return uc.store.Delete(ctx, id)
}

// List lista todos los productos para el panel admin, incluidos los no disponibles.
func (uc *ProductUseCase) List() *dto.ProductListResponse {
	products := uc.state.Snapshot().Products
	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, *toProductResponse(&products[i]))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}

func (uc *ProductUseCase) findByID(id string) *entity.Product {
	snap := uc.state.Snapshot()
	for i := range snap.Products {
		if snap.Products[i].ID == id {
			return &snap.Products[i]
		}
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Description:   p.Description,
		Price:         p.Price,
		ImageURL:      p.ImageURL,
		Promotion:     p.Promotion,
		OriginalPrice: p.OriginalPrice,
		Available:     p.Available,
		CreatedAt:     p.CreatedAt,
	}
}
