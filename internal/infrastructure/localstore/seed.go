package localstore

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// Imágenes de demostración (SVG embebidos), heredadas del sistema original.
const (
	seedImageBurger = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iNDAwIiBoZWlnaHQ9IjMwMCIgdmlld0JveD0iMCAwIDQwMCAzMDAiIGZpbGw9Im5vbmUiIHhtbG5zPSJodHRwOi8vd3d3LnczLm9yZy8yMDAwL3N2ZyI+PHJlY3Qgd2lkdGg9IjQwMCIgaGVpZ2h0PSIzMDAiIGZpbGw9IiNGNUY1RjUiLz48dGV4dCB4PSIyMDAiIHk9IjE1MCIgdGV4dC1hbmNob3I9Im1pZGRsZSIgZm9udC1mYW1pbHk9IkFyaWFsIiBmb250LXNpemU9IjI0IiBmaWxsPSIjOTk5Ij7imqAgQnVyZ2VyIMKbPC90ZXh0Pjwvc3ZnPg=="
	seedImagePizza  = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iNDAwIiBoZWlnaHQ9IjMwMCIgdmlld0JveD0iMCAwIDQwMCAzMDAiIGZpbGw9Im5vbmUiIHhtbG5zPSJodHRwOi8vd3d3LnczLm9yZy8yMDAwL3N2ZyI+PHJlY3Qgd2lkdGg9IjQwMCIgaGVpZ2h0PSIzMDAiIGZpbGw9IiNGNUY1RjUiLz48dGV4dCB4PSIyMDAiIHk9IjE1MCIgdGV4dC1hbmNob3I9Im1pZGRsZSIgZm9udC1mYW1pbHk9IkFyaWFsIiBmb250LXNpemU9IjI0IiBmaWxsPSIjOTk5Ij7imqAgUGl6emEgwps8L3RleHQ+PC9zdmc+"
	seedImageDrink  = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iNDAwIiBoZWlnaHQ9IjMwMCIgdmlld0JveD0iMCAwIDQwMCAzMDAiIGZpbGw9Im5vbmUiIHhtbG5zPSJodHRwOi8vd3d3LnczLm9yZy8yMDAwL3N2ZyI+PHJlY3Qgd2lkdGg9IjQwMCIgaGVpZ2h0PSIzMDAiIGZpbGw9IiNGNUY1RjUiLz48dGV4dCB4PSIyMDAiIHk9IjE1MCIgdGV4dC1hbmNob3I9Im1pZGRsZSIgZm9udC1mYW1pbHk9IkFyaWFsIiBmb250LXNpemU9IjI0IiBmaWxsPSIjOTk5Ij7imqAgQmViaWRhIMKbPC90ZXh0Pjwvc3ZnPg=="
)

// Seed carga los tres productos de demostración si la colección está vacía
// (primer arranque). Devuelve cuántos registros creó. Llamar después de
// Initialize: clave ausente -> lista vacía -> se siembra el catálogo demo.
func Seed(ctx context.Context, store repository.RecordStore) (int, error) {
	records, err := store.Records(ctx)
	if err != nil {
		return 0, err
	}
	if len(records) > 0 {
		return 0, nil
	}

	demo := []entity.Product{
		{
			Name:        "Hambúrguer Clássico",
			Category:    "burgers",
			Description: "Pão, carne, queijo e salada",
			Price:       decimal.NewFromInt(150),
			ImageURL:    seedImageBurger,
			Available:   true,
		},
		{
			Name:          "Pizza Margherita",
			Category:      "pizzas",
			Description:   "Molho, mussarela e manjericão",
			Price:         decimal.NewFromInt(350),
			ImageURL:      seedImagePizza,
			Promotion:     true,
			OriginalPrice: decimal.NewFromInt(400),
			Available:     true,
		},
		{
			Name:        "Coca-Cola",
			Category:    "bebidas",
			Description: "Lata 350ml",
			Price:       decimal.NewFromInt(40),
			ImageURL:    seedImageDrink,
			Available:   true,
		},
	}
	for _, p := range demo {
		if _, err := store.Create(ctx, entity.NewProductRecord(p)); err != nil {
			return 0, err
		}
	}
	return len(demo), nil
}
