package wire

import (
	"github.com/go-chi/chi/v5"

	"storefront/internal/adaptor"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	r.Route("/api/items", func(r chi.Router) {
		r.Post("/", catalogHandler.CreateItem)
		r.Get("/", catalogHandler.ListItems)
		r.Get("/{id}", catalogHandler.GetItem)
		r.Patch("/quantity", catalogHandler.UpdateQuantity)
		r.Delete("/", catalogHandler.DeleteItem)
		r.Post("/upload", catalogHandler.UploadImage)
	})

	r.Get("/api/categories", catalogHandler.ListCategories)
	r.Post("/api/categories", catalogHandler.CreateCategory)
}
