package handlers

import (
	"net/http"

	"github.com/unrolled/render"
)

type detailResponse struct {
	Detail string `json:"detail"`
}

func writeDetail(rnd *render.Render, w http.ResponseWriter, status int, detail string) {
	_ = rnd.JSON(w, status, detailResponse{Detail: detail})
}

func writeNotFound(rnd *render.Render, w http.ResponseWriter) {
	writeDetail(rnd, w, http.StatusNotFound, "Not found.")
}

func writeServerError(rnd *render.Render, w http.ResponseWriter) {
	writeDetail(rnd, w, http.StatusInternalServerError, "Internal server error.")
}
