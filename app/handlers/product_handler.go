package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/nodirbekm/koreancosmetics/app/helpers"
	"github.com/nodirbekm/koreancosmetics/app/models"
	"github.com/nodirbekm/koreancosmetics/app/repositories"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	render      *render.Render
	productRepo repositories.ProductRepository
}

func NewProductHandler(rnd *render.Render, productRepo repositories.ProductRepository) *ProductHandler {
	return &ProductHandler{
		render:      rnd,
		productRepo: productRepo,
	}
}

type productResponse struct {
	ID        uint              `json:"id"`
	Title     string            `json:"title"`
	Brand     string            `json:"brand"`
	Category  string            `json:"category"`
	Price     int64             `json:"price"`
	Available bool              `json:"available"`
	Img       string            `json:"img"`
	BigImg    string            `json:"big_img"`
	Desc      map[string]string `json:"desc"`
	DescFull  string            `json:"descFull"`
}

func serializeProduct(r *http.Request, product *models.Product, lang string) productResponse {
	return productResponse{
		ID:        product.ID,
		Title:     product.Title,
		Brand:     product.Brand,
		Category:  product.CategorySlug,
		Price:     product.Price,
		Available: product.Available,
		Img:       helpers.AbsoluteMediaURL(r, product.Img),
		BigImg:    helpers.AbsoluteMediaURL(r, product.BigImg),
		Desc:      product.ShortDesc(),
		DescFull:  product.FullDesc(lang),
	}
}

// List serves /api/products/ with ?category=, ?brand=, ?brand__icontains=
// and ?ordering= filters. Only available products are ever listed.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repositories.ProductFilter{
		CategorySlug:  query.Get("category"),
		Brand:         query.Get("brand"),
		BrandContains: query.Get("brand__icontains"),
		Ordering:      query.Get("ordering"),
	}

	products, err := h.productRepo.GetAvailable(r.Context(), filter)
	if err != nil {
		log.Printf("ProductHandler.List: %v", err)
		writeServerError(h.render, w)
		return
	}

	lang := helpers.ResolveLang(r)
	out := make([]productResponse, 0, len(products))
	for i := range products {
		out = append(out, serializeProduct(r, &products[i], lang))
	}
	_ = h.render.JSON(w, http.StatusOK, out)
}

func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeNotFound(h.render, w)
		return
	}

	product, err := h.productRepo.GetAvailableByID(r.Context(), uint(id))
	if err != nil {
		log.Printf("ProductHandler.Detail: %v", err)
		writeServerError(h.render, w)
		return
	}
	if product == nil {
		writeNotFound(h.render, w)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, serializeProduct(r, product, helpers.ResolveLang(r)))
}
