package admin

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/nodirbekm/koreancosmetics/app/models"
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

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("CategoryHandler.List: %v", err)
		redirectWithMessage(w, r, "/admin/", "error", "Could not load categories.")
		return
	}

	data := baseData(r, map[string]interface{}{
		"Title":      "Categories",
		"Categories": categories,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/categories", data)
}

// Create takes the name and an optional explicit slug; the model hook
// derives the slug from the name otherwise.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithMessage(w, r, "/admin/categories", "error", "Could not read the submitted form.")
		return
	}

	name := r.FormValue("name")
	if name == "" {
		redirectWithMessage(w, r, "/admin/categories", "error", "Name is required.")
		return
	}

	category := &models.Category{
		Name: name,
		Slug: r.FormValue("slug"),
	}
	if err := h.categoryRepo.Create(r.Context(), category); err != nil {
		log.Printf("CategoryHandler.Create: %v", err)
		redirectWithMessage(w, r, "/admin/categories", "error", "Could not create category.")
		return
	}
	redirectWithMessage(w, r, "/admin/categories", "success", "Category created.")
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)

	category, err := h.categoryRepo.GetByID(r.Context(), uint(id))
	if err != nil || category == nil {
		redirectWithMessage(w, r, "/admin/categories", "error", "Category not found.")
		return
	}

	if err := r.ParseForm(); err != nil {
		redirectWithMessage(w, r, "/admin/categories", "error", "Could not read the submitted form.")
		return
	}

	name := r.FormValue("name")
	if name == "" {
		redirectWithMessage(w, r, "/admin/categories", "error", "Name is required.")
		return
	}

	category.Name = name
	category.Slug = r.FormValue("slug")
	if err := h.categoryRepo.Update(r.Context(), category); err != nil {
		log.Printf("CategoryHandler.Update: %v", err)
		redirectWithMessage(w, r, "/admin/categories", "error", "Could not update category.")
		return
	}
	redirectWithMessage(w, r, "/admin/categories", "success", "Category updated.")
}

// Delete refuses while products still reference the category.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)

	err := h.categoryRepo.Delete(r.Context(), uint(id))
	if errors.Is(err, repositories.ErrCategoryInUse) {
		redirectWithMessage(w, r, "/admin/categories", "error", "Category still has products and cannot be deleted.")
		return
	}
	if err != nil {
		log.Printf("CategoryHandler.Delete: %v", err)
		redirectWithMessage(w, r, "/admin/categories", "error", "Could not delete category.")
		return
	}
	redirectWithMessage(w, r, "/admin/categories", "success", "Category deleted.")
}
