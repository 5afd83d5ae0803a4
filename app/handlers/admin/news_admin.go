package admin

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/nodirbekm/koreancosmetics/app/models"
	"github.com/nodirbekm/koreancosmetics/app/repositories"
	"github.com/unrolled/render"
)

type NewsHandler struct {
	render   *render.Render
	newsRepo repositories.NewsRepository
}

func NewNewsHandler(rnd *render.Render, newsRepo repositories.NewsRepository) *NewsHandler {
	return &NewsHandler{
		render:   rnd,
		newsRepo: newsRepo,
	}
}

func applyNewsForm(r *http.Request, news *models.News) {
	news.TitleRu = r.FormValue("title_ru")
	news.TitleEn = r.FormValue("title_en")
	news.TitleUz = r.FormValue("title_uz")
	news.DescRu = r.FormValue("desc_ru")
	news.DescEn = r.FormValue("desc_en")
	news.DescUz = r.FormValue("desc_uz")
	news.BannerBg = r.FormValue("banner_bg")
	news.LargeImg = r.FormValue("large_img")
	news.Thumbnail = r.FormValue("thumbnail")
	news.IsFeatured = r.FormValue("is_featured") == "on"
}

func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	news, err := h.newsRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("NewsHandler.List: %v", err)
		redirectWithMessage(w, r, "/admin/", "error", "Could not load news.")
		return
	}

	data := baseData(r, map[string]interface{}{
		"Title": "News",
		"News":  news,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/news", data)
}

func (h *NewsHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	data := baseData(r, map[string]interface{}{"Title": "New article"})
	_ = h.render.HTML(w, http.StatusOK, "admin/news_form", data)
}

func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithMessage(w, r, "/admin/news", "error", "Could not read the submitted form.")
		return
	}

	news := &models.News{}
	applyNewsForm(r, news)

	if news.TitleRu == "" && news.TitleEn == "" && news.TitleUz == "" {
		redirectWithMessage(w, r, "/admin/news/new", "error", "At least one title is required.")
		return
	}

	if err := h.newsRepo.Create(r.Context(), news); err != nil {
		log.Printf("NewsHandler.Create: %v", err)
		redirectWithMessage(w, r, "/admin/news/new", "error", "Could not create the article.")
		return
	}
	redirectWithMessage(w, r, "/admin/news", "success", "Article created.")
}

func (h *NewsHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)

	news, err := h.newsRepo.GetByID(r.Context(), uint(id))
	if err != nil || news == nil {
		redirectWithMessage(w, r, "/admin/news", "error", "Article not found.")
		return
	}

	data := baseData(r, map[string]interface{}{
		"Title": "Edit article",
		"Item":  news,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/news_form", data)
}

func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)

	news, err := h.newsRepo.GetByID(r.Context(), uint(id))
	if err != nil || news == nil {
		redirectWithMessage(w, r, "/admin/news", "error", "Article not found.")
		return
	}

	if err := r.ParseForm(); err != nil {
		redirectWithMessage(w, r, "/admin/news", "error", "Could not read the submitted form.")
		return
	}

	applyNewsForm(r, news)
	if err := h.newsRepo.Update(r.Context(), news); err != nil {
		log.Printf("NewsHandler.Update: %v", err)
		redirectWithMessage(w, r, "/admin/news", "error", "Could not update the article.")
		return
	}
	redirectWithMessage(w, r, "/admin/news", "success", "Article updated.")
}

func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)

	if err := h.newsRepo.Delete(r.Context(), uint(id)); err != nil {
		log.Printf("NewsHandler.Delete: %v", err)
		redirectWithMessage(w, r, "/admin/news", "error", "Could not delete the article.")
		return
	}
	redirectWithMessage(w, r, "/admin/news", "success", "Article deleted.")
}
