package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/nodirbekm/koreancosmetics/app/repositories"
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	render       *render.Render
	categoryRepo repositories.CategoryRepository
}

func NewCategoryHandler(rnd *render.Render, categoryRepo repositories.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{
		render:       rnd,
		categoryRepo: categoryRepo,
	}
}

type categoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("CategoryHandler.List: %v", err)
		writeServerError(h.render, w)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, categoryResponse{ID: category.ID, Name: category.Name, Slug: category.Slug})
	}
	_ = h.render.JSON(w, http.StatusOK, out)
}

// Detail looks up by slug, categories are addressed by slug in public URLs.
func (h *CategoryHandler) Detail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	category, err := h.categoryRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("CategoryHandler.Detail: %v", err)
		writeServerError(h.render, w)
		return
	}
	if category == nil {
		writeNotFound(h.render, w)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, categoryResponse{ID: category.ID, Name: category.Name, Slug: category.Slug})
}
