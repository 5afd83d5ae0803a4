package admin

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/nodirbekm/koreancosmetics/app/models"
	"github.com/nodirbekm/koreancosmetics/app/repositories"
	"github.com/unrolled/render"
)

const adminPageSize = 20

type ProductHandler struct {
	render       *render.Render
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	validator    *validator.Validate
}

func NewProductHandler(rnd *render.Render, productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, validate *validator.Validate) *ProductHandler {
	return &ProductHandler{
		render:       rnd,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		validator:    validate,
	}
}

type productForm struct {
	Title      string `validate:"required,max=200"`
	Price      int64  `validate:"gte=0"`
	Brand      string `validate:"max=100"`
	CategoryID uint   `validate:"required"`
	DescRu     string
	DescUz     string
	DescEn     string
	DescFullRu string
	DescFullUz string
	DescFullEn string
	Img        string
	BigImg     string
	Available  bool
}

func parseProductForm(r *http.Request) (*productForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	price, err := strconv.ParseInt(r.FormValue("price"), 10, 64)
	if err != nil {
		return nil, errors.New("price must be an integer")
	}
	categoryID, err := strconv.ParseUint(r.FormValue("category_id"), 10, 64)
	if err != nil {
		return nil, errors.New("category is required")
	}

	return &productForm{
		Title:      r.FormValue("title"),
		Price:      price,
		Brand:      r.FormValue("brand"),
		CategoryID: uint(categoryID),
		DescRu:     r.FormValue("desc_ru"),
		DescUz:     r.FormValue("desc_uz"),
		DescEn:     r.FormValue("desc_en"),
		DescFullRu: r.FormValue("desc_full_ru"),
		DescFullUz: r.FormValue("desc_full_uz"),
		DescFullEn: r.FormValue("desc_full_en"),
		Img:        r.FormValue("img"),
		BigImg:     r.FormValue("big_img"),
		Available:  r.FormValue("available") == "on",
	}, nil
}

func (f *productForm) apply(product *models.Product) {
	product.Title = f.Title
	product.Price = f.Price
	product.Brand = f.Brand
	product.CategoryID = f.CategoryID
	product.DescRu = f.DescRu
	product.DescUz = f.DescUz
	product.DescEn = f.DescEn
	product.DescFullRu = f.DescFullRu
	product.DescFullUz = f.DescFullUz
	product.DescFullEn = f.DescFullEn
	product.Img = f.Img
	product.BigImg = f.BigImg
	product.Available = f.Available
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	products, total, err := h.productRepo.GetPaginated(r.Context(), adminPageSize, (page-1)*adminPageSize)
	if err != nil {
		log.Printf("ProductHandler.List: %v", err)
		redirectWithMessage(w, r, "/admin/", "error", "Could not load products.")
		return
	}

	data := baseData(r, map[string]interface{}{
		"Title":    "Products",
		"Products": products,
		"Total":    total,
		"Page":     page,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/products", data)
}

func (h *ProductHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("ProductHandler.NewForm: %v", err)
		redirectWithMessage(w, r, "/admin/products", "error", "Could not load categories.")
		return
	}

	data := baseData(r, map[string]interface{}{
		"Title":      "New product",
		"Categories": categories,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/product_form", data)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, err := parseProductForm(r)
	if err != nil {
		redirectWithMessage(w, r, "/admin/products/new", "error", err.Error())
		return
	}
	if err := h.validator.Struct(form); err != nil {
		redirectWithMessage(w, r, "/admin/products/new", "error", "Invalid product data.")
		return
	}

	product := &models.Product{}
	form.apply(product)

	if err := h.productRepo.Create(r.Context(), product); err != nil {
		log.Printf("ProductHandler.Create: %v", err)
		redirectWithMessage(w, r, "/admin/products/new", "error", "Could not create product.")
		return
	}
	redirectWithMessage(w, r, "/admin/products", "success", "Product created.")
}

func (h *ProductHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)

	product, err := h.productRepo.GetByID(r.Context(), uint(id))
	if err != nil || product == nil {
		log.Printf("ProductHandler.EditForm: product %d: %v", id, err)
		redirectWithMessage(w, r, "/admin/products", "error", "Product not found.")
		return
	}

	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("ProductHandler.EditForm: %v", err)
		redirectWithMessage(w, r, "/admin/products", "error", "Could not load categories.")
		return
	}

	data := baseData(r, map[string]interface{}{
		"Title":      "Edit product",
		"Product":    product,
		"Categories": categories,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/product_form", data)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)

	product, err := h.productRepo.GetByID(r.Context(), uint(id))
	if err != nil || product == nil {
		redirectWithMessage(w, r, "/admin/products", "error", "Product not found.")
		return
	}

	form, err := parseProductForm(r)
	if err != nil {
		redirectWithMessage(w, r, "/admin/products", "error", err.Error())
		return
	}
	if err := h.validator.Struct(form); err != nil {
		redirectWithMessage(w, r, "/admin/products", "error", "Invalid product data.")
		return
	}

	form.apply(product)
	if err := h.productRepo.Update(r.Context(), product); err != nil {
		log.Printf("ProductHandler.Update: %v", err)
		redirectWithMessage(w, r, "/admin/products", "error", "Could not update product.")
		return
	}
	redirectWithMessage(w, r, "/admin/products", "success", "Product updated.")
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)

	if err := h.productRepo.Delete(r.Context(), uint(id)); err != nil {
		log.Printf("ProductHandler.Delete: %v", err)
		redirectWithMessage(w, r, "/admin/products", "error", "Could not delete product.")
		return
	}
	redirectWithMessage(w, r, "/admin/products", "success", "Product deleted.")
}
