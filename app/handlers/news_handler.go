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

type newsResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Desc        string `json:"desc"`
	BannerBgURL string `json:"banner_bg_url"`
	LargeImgURL string `json:"large_img_url"`
	PhotoCard   string `json:"photo_card"`
	IsFeatured  bool   `json:"is_featured"`
}

func serializeNews(r *http.Request, news *models.News, lang string) newsResponse {
	return newsResponse{
		ID:          news.ID,
		Title:       news.LocalizedTitle(lang),
		Desc:        news.LocalizedDesc(lang),
		BannerBgURL: helpers.AbsoluteMediaURL(r, news.BannerBg),
		LargeImgURL: helpers.AbsoluteMediaURL(r, news.LargeImg),
		PhotoCard:   helpers.AbsoluteMediaURL(r, news.Thumbnail),
		IsFeatured:  news.IsFeatured,
	}
}

func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	news, err := h.newsRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("NewsHandler.List: %v", err)
		writeServerError(h.render, w)
		return
	}

	lang := helpers.ResolveLang(r)
	out := make([]newsResponse, 0, len(news))
	for i := range news {
		out = append(out, serializeNews(r, &news[i], lang))
	}
	_ = h.render.JSON(w, http.StatusOK, out)
}

func (h *NewsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeNotFound(h.render, w)
		return
	}

	news, err := h.newsRepo.GetByID(r.Context(), uint(id))
	if err != nil {
		log.Printf("NewsHandler.Detail: %v", err)
		writeServerError(h.render, w)
		return
	}
	if news == nil {
		writeNotFound(h.render, w)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, serializeNews(r, news, helpers.ResolveLang(r)))
}
